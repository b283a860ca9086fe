package middleware

import (
	"siap-spj-backend/internal/access"

	"github.com/gofiber/fiber/v2"
)

func Role(allowedRoles ...access.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Ambil role user dari context (diset di Auth middleware)
		userRole := CurrentRole(c)
		if !userRole.IsValid() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}

		for _, role := range allowedRoles {
			if role == userRole {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role " + string(userRole) + " tidak diizinkan"})
	}
}
