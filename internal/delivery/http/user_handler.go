package http

import (
	"errors"
	"log"

	"siap-spj-backend/internal/access"
	"siap-spj-backend/internal/middleware"
	"siap-spj-backend/internal/repository"
	"siap-spj-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	usecase *usecase.UserUsecase
}

func NewUserHandler(u *usecase.UserUsecase) *UserHandler {
	return &UserHandler{usecase: u}
}

// POST /api/admin/users
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Username string      `json:"username"`
		Nama     string      `json:"nama"`
		Password string      `json:"password"`
		Role     access.Role `json:"role"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input salah"})
	}

	user, err := h.usecase.Register(c.UserContext(), input.Username, input.Nama, input.Password, input.Role)
	switch {
	case errors.Is(err, usecase.ErrMissingField), errors.Is(err, usecase.ErrInvalidRole):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrDuplicateUsername):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		log.Printf("❌ Gagal registrasi %s: %v", input.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal registrasi"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User berhasil terdaftar!",
		"data":    user,
	})
}

// POST /api/auth/login
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Input tidak valid"})
	}

	token, user, err := h.usecase.Login(c.UserContext(), input.Username, input.Password)
	if errors.Is(err, usecase.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		log.Printf("❌ Login %s gagal: %v", input.Username, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal login"})
	}

	return c.JSON(fiber.Map{
		"message": "Login Berhasil!",
		"token":   token,
		"data": fiber.Map{
			"user": user,
			"menu": access.VisibleMenu(user.Role),
		},
	})
}

// GET /api/auth/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.usecase.GetByUsername(c.UserContext(), middleware.CurrentUsername(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User tidak ditemukan"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil profil",
		"data": fiber.Map{
			"user": user,
			"menu": access.VisibleMenu(user.Role),
		},
	})
}
