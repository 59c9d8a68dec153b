package routes

import (
	"sirup-monitor/internal/handler"
	"sirup-monitor/internal/middleware"
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, state *usecase.StateUsecase, secret []byte) {
	hdl := handler.NewDashboardHandler(state)

	// Public (halaman depan)
	app.Get("/api/status", hdl.GetStatus)
	app.Get("/api/public/rekap", hdl.GetPublicRekap)

	api := app.Group("/api/dashboard", middleware.Auth(secret),
		middleware.Role(model.RoleSuperAdmin, model.RoleAdminPBJ, model.RoleAdminOPD, model.RoleViewer))
	api.Get("/", hdl.GetStats)
}
