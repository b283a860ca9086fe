package handler

import (
	"log"
	"time"

	"siap-spj-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	repo repository.ReportRepository
}

func NewReportHandler(repo repository.ReportRepository) *ReportHandler {
	return &ReportHandler{repo: repo}
}

// GetRecap menyediakan data untuk ekspor Laporan (rekap sumber, jenis, KKP, perusahaan).
// GET /api/reports?mulai=2026-01-01&selesai=2026-03-31
func (h *ReportHandler) GetRecap(c *fiber.Ctx) error {
	mulai := c.Query("mulai")
	selesai := c.Query("selesai")

	for _, d := range []string{mulai, selesai} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format tanggal harus YYYY-MM-DD"})
		}
	}
	if mulai != "" && selesai != "" && mulai > selesai {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal mulai melewati tanggal selesai"})
	}

	recap, err := h.repo.Recap(c.UserContext(), mulai, selesai)
	if err != nil {
		log.Printf("❌ Gagal menyusun rekap: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data laporan"})
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil rekap",
		"data":    recap,
	})
}
