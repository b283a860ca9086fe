package routes

import (
	"siap-spj-backend/config"
	"siap-spj-backend/internal/access"
	"siap-spj-backend/internal/handler"
	"siap-spj-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoleRoutes(app *fiber.App, cfg config.Config) {
	hdl := handler.NewRoleHandler()

	api := app.Group("/api/admin/roles", middleware.Auth(cfg.JWTSecret), middleware.Role(access.RoleAdmin))
	api.Get("/", hdl.GetAll)
}
