package notificationRoutes

import (
	controller "prflow/controllers/notification"
	"prflow/middleware"
	validator "prflow/validators/notification"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notification := app.Group("/notification")

	notification.Get("/list", middleware.JWTMiddleware, controller.NotificationList)
	notification.Post("/mark-read", validator.MarkRead(), middleware.JWTMiddleware, controller.MarkNotificationRead)
}
