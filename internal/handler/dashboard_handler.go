package handler

import (
	"log"

	"siap-spj-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.SpjRepository
}

func NewDashboardHandler(repo repository.SpjRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

// GET /api/stats
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.repo.GetStats(c.UserContext())
	if err != nil {
		log.Printf("❌ Gagal menghitung statistik: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data dashboard"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data":    stats,
	})
}
