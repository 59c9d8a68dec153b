package routes

import (
	"sirup-monitor/internal/handler"
	"sirup-monitor/internal/middleware"
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupNewsRoutes(app *fiber.App, state *usecase.StateUsecase, secret []byte) {
	hdl := handler.NewNewsHandler(state)

	app.Get("/api/public/news", hdl.GetAll) // Ticker halaman depan

	admin := app.Group("/api/news", middleware.Auth(secret), middleware.Role(model.RoleSuperAdmin, model.RoleAdminPBJ))
	admin.Get("/", hdl.GetAll)
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
}
