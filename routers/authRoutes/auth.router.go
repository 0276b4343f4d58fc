package authRoutes

import (
	controller "prflow/controllers/auth"
	"prflow/middleware"
	validator "prflow/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/login", validator.Login(), controller.Login)
	auth.Post("/login-as", validator.LoginAs(), middleware.JWTMiddleware, controller.LoginAs)
}
