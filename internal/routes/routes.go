package routes

import (
	"sirup-monitor/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// Setup mendaftarkan semua route API.
func Setup(app *fiber.App, state *usecase.StateUsecase, auth *usecase.AuthUsecase, secret []byte) {
	SetupDashboardRoutes(app, state, secret)
	SetupUserRoutes(app, state, auth, secret)
	SetupReportRoutes(app, state, secret)
	SetupProgressRoutes(app, state, secret)
	SetupOPDRoutes(app, state, secret)
	SetupNewsRoutes(app, state, secret)
	SetupBackupRoutes(app, state, secret)
}
