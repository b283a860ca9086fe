package routes

import (
	"siap-spj-backend/config"
	"siap-spj-backend/internal/access"
	"siap-spj-backend/internal/handler"
	"siap-spj-backend/internal/middleware"
	"siap-spj-backend/internal/notify"
	"siap-spj-backend/internal/repository"
	"siap-spj-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSpjRoutes(app *fiber.App, db *gorm.DB, cfg config.Config, notifier notify.Notifier) {
	repo := repository.NewSpjRepository(db)
	uc := usecase.NewSpjUsecase(repo, notifier)
	hdl := handler.NewSpjHandler(uc)

	api := app.Group("/api/spj", middleware.Auth(cfg.JWTSecret))
	api.Get("/", middleware.Permission(access.MenuList), hdl.GetAll)
	api.Post("/", middleware.Role(access.RoleAdmin, access.RoleBendaharaPengeluaran, access.RoleBendaharaPenerimaan), hdl.Create)

	if cfg.PublicSubmission {
		app.Post("/api/public/spj", middleware.PublicSubmitRateLimiter(), hdl.PublicCreate)
	}
}
