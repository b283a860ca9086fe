package middleware

import (
	"strings"

	"siap-spj-backend/internal/access"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Auth(secret string) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		// 1. Ambil token dari Header Authorization
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak ditemukan"})
		}

		// Format header: "Bearer <token>"
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		// 2. Parse dan validasi token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
		}

		// 3. Simpan claims ke context untuk handler
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
		}
		username, _ := claims["username"].(string)
		role, _ := claims["role"].(string)
		if username == "" || !access.Role(role).IsValid() {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
		}

		c.Locals("user_id", claims["user_id"])
		c.Locals("username", username)
		c.Locals("role", role)

		return c.Next()
	}
}

// CurrentUsername dan CurrentRole membaca Locals yang diisi Auth.
func CurrentUsername(c *fiber.Ctx) string {
	u, _ := c.Locals("username").(string)
	return u
}

func CurrentRole(c *fiber.Ctx) access.Role {
	r, _ := c.Locals("role").(string)
	return access.Role(r)
}
