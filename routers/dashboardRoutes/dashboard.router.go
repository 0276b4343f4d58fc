package dashboardRoutes

import (
	controller "prflow/controllers/dashboard"
	"prflow/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")

	dashboard.Get("/metrics", middleware.JWTMiddleware, controller.DashboardMetrics)
}
