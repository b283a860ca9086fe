package routes

import (
	"siap-spj-backend/config"
	"siap-spj-backend/internal/access"
	"siap-spj-backend/internal/handler"
	"siap-spj-backend/internal/middleware"
	"siap-spj-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLogRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	repo := repository.NewLogRepository(db)
	hdl := handler.NewLogHandler(repo)

	api := app.Group("/api/admin/logs", middleware.Auth(cfg.JWTSecret), middleware.Role(access.RoleAdmin))
	api.Get("/", hdl.GetAll)
}
