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

func SetupReportRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	repo := repository.NewReportRepository(db)
	hdl := handler.NewReportHandler(repo)

	api := app.Group("/api/reports", middleware.Auth(cfg.JWTSecret), middleware.Permission(access.MenuReports))
	api.Get("/", hdl.GetRecap)
}
