package routes

import (
	"time"

	"siap-spj-backend/config"
	"siap-spj-backend/internal/access"
	deliveryHttp "siap-spj-backend/internal/delivery/http"
	"siap-spj-backend/internal/middleware"
	"siap-spj-backend/internal/repository"
	"siap-spj-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo, usecase.NewBcryptAuthenticator(repo), cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	hdl := deliveryHttp.NewUserHandler(uc)

	auth := app.Group("/api/auth")
	auth.Post("/login", middleware.LoginRateLimiter(), hdl.Login)
	auth.Get("/me", middleware.Auth(cfg.JWTSecret), hdl.Me)

	admin := app.Group("/api/admin/users", middleware.Auth(cfg.JWTSecret), middleware.Role(access.RoleAdmin))
	admin.Post("/", hdl.Register)
}
