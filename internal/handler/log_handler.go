package handler

import (
	"siap-spj-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type LogHandler struct {
	repo repository.LogRepository
}

func NewLogHandler(repo repository.LogRepository) *LogHandler {
	return &LogHandler{repo: repo}
}

// GET /api/admin/logs?limit=100
func (h *LogHandler) GetAll(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	list, err := h.repo.GetAll(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil log aktivitas"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil log aktivitas",
		"data":    list,
	})
}
