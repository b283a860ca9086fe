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

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, cfg config.Config) {
	repo := repository.NewSpjRepository(db)
	hdl := handler.NewDashboardHandler(repo)

	api := app.Group("/api/stats", middleware.Auth(cfg.JWTSecret), middleware.Permission(access.MenuDashboard))
	api.Get("/", hdl.GetStats)
}
