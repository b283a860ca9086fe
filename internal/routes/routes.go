package routes

import (
	"siap-spj-backend/config"
	"siap-spj-backend/internal/notify"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg config.Config, notifier notify.Notifier) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	SetupAuthRoutes(app, db, cfg)
	SetupSpjRoutes(app, db, cfg, notifier)
	SetupDashboardRoutes(app, db, cfg)
	SetupLogRoutes(app, db, cfg)
	SetupReportRoutes(app, db, cfg)
	SetupRoleRoutes(app, cfg)
}
