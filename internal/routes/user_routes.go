package routes

import (
	"sirup-monitor/internal/handler"
	"sirup-monitor/internal/middleware"
	"sirup-monitor/internal/model"
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, state *usecase.StateUsecase, auth *usecase.AuthUsecase, secret []byte) {
	hdl := handler.NewUserHandler(state, auth)

	// Auth Routes
	app.Post("/api/auth/login", hdl.Login)

	// Kelola User (Super Admin)
	admin := app.Group("/api/users", middleware.Auth(secret), middleware.Role(model.RoleSuperAdmin))
	admin.Get("/", hdl.GetAll)
	admin.Post("/", hdl.Create)
	admin.Put("/:id", hdl.Update)
	admin.Delete("/:id", hdl.Delete)
}
