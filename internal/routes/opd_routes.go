package routes

import (
	"sirup-monitor/internal/handler"
	"sirup-monitor/internal/middleware"
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupOPDRoutes(app *fiber.App, state *usecase.StateUsecase, secret []byte) {
	hdl := handler.NewOPDHandler(state)

	api := app.Group("/api/opd", middleware.Auth(secret), middleware.Role(model.RoleSuperAdmin, model.RoleAdminPBJ))
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Post("/", hdl.Create)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
