package handler

import (
	"errors"
	"log"

	"siap-spj-backend/internal/composer"
	"siap-spj-backend/internal/middleware"
	"siap-spj-backend/internal/model"
	"siap-spj-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type SpjHandler struct {
	usecase *usecase.SpjUsecase
}

func NewSpjHandler(u *usecase.SpjUsecase) *SpjHandler {
	return &SpjHandler{usecase: u}
}

// GET /api/spj
func (h *SpjHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.usecase.List(c.UserContext())
	if err != nil {
		log.Printf("❌ Gagal mengambil SPJ: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data SPJ"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data SPJ",
		"data":    list,
	})
}

// POST /api/spj
func (h *SpjHandler) Create(c *fiber.Ctx) error {
	return h.create(c, middleware.CurrentUsername(c))
}

// POST /api/public/spj, dicatat atas nama IP pengirim
func (h *SpjHandler) PublicCreate(c *fiber.Ctx) error {
	return h.create(c, "public@"+c.IP())
}

func (h *SpjHandler) create(c *fiber.Ctx, actor string) error {
	var input model.SpjPayload
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}

	spj, err := h.usecase.Create(c.UserContext(), actor, &input)
	if err != nil {
		var fe composer.FieldErrors
		if errors.As(err, &fe) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":  "Validasi gagal",
				"errors": fe,
			})
		}
		log.Printf("❌ Gagal menyimpan SPJ (reqid=%v, user=%s): %v", c.Locals("reqid"), actor, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan SPJ"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "SPJ berhasil disimpan",
		"data": fiber.Map{
			"id":     spj.ID,
			"no_spj": spj.NoSpj,
		},
	})
}
