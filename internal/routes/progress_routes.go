package routes

import (
	"sirup-monitor/internal/handler"
	"sirup-monitor/internal/middleware"
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App, state *usecase.StateUsecase, secret []byte) {
	hdl := handler.NewProgressHandler(state)

	api := app.Group("/api/progress", middleware.Auth(secret),
		middleware.Role(model.RoleSuperAdmin, model.RoleAdminPBJ, model.RoleAdminOPD))
	api.Get("/", hdl.GetAll)
	api.Get("/export", hdl.Export) // Taruh SEBELUM :opdId
	api.Post("/import", hdl.Import)
	api.Put("/:opdId", hdl.Update)
}
