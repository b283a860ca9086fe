package handler

import (
	"siap-spj-backend/internal/access"

	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct{}

func NewRoleHandler() *RoleHandler {
	return &RoleHandler{}
}

// GET /api/admin/roles: daftar role beserta menu yang terlihat
func (h *RoleHandler) GetAll(c *fiber.Ctx) error {
	roles := make([]fiber.Map, 0, len(access.AllRoles))
	for _, r := range access.AllRoles {
		roles = append(roles, fiber.Map{
			"role": r,
			"menu": access.VisibleMenu(r),
		})
	}
	return c.JSON(fiber.Map{"data": roles})
}
