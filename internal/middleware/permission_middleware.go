package middleware

import (
	"siap-spj-backend/internal/access"

	"github.com/gofiber/fiber/v2"
)

// Permission mengizinkan request bila menu terlihat untuk role user.
func Permission(menu access.MenuID) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userRole := CurrentRole(c)
		if !userRole.IsValid() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Role tidak valid"})
		}

		if !access.Allowed(userRole, menu) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Akses ditolak: Anda tidak memiliki izin " + string(menu)})
		}

		return c.Next()
	}
}
