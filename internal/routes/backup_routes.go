package routes

import (
	"sirup-monitor/internal/handler"
	"sirup-monitor/internal/middleware"
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupBackupRoutes(app *fiber.App, state *usecase.StateUsecase, secret []byte) {
	hdl := handler.NewBackupHandler(state)

	auth := middleware.Auth(secret)
	role := middleware.Role(model.RoleSuperAdmin, model.RoleAdminPBJ)

	app.Get("/api/backup", auth, role, hdl.Backup)
	app.Post("/api/restore", auth, role, hdl.Restore)

	settings := app.Group("/api/settings", auth, role)
	settings.Get("/", hdl.GetSettings)
	settings.Put("/", hdl.UpdateSettings)
}
