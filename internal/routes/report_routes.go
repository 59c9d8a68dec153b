package routes

import (
	"sirup-monitor/internal/handler"
	"sirup-monitor/internal/middleware"
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupReportRoutes(app *fiber.App, state *usecase.StateUsecase, secret []byte) {
	hdl := handler.NewReportHandler(state)

	api := app.Group("/api/reports", middleware.Auth(secret),
		middleware.Role(model.RoleSuperAdmin, model.RoleAdminPBJ, model.RoleViewer))
	api.Get("/official", hdl.GetOfficialReport)
}
