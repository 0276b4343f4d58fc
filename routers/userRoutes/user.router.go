package userRoutes

import (
	controller "prflow/controllers/userControllers"
	"prflow/middleware"
	validator "prflow/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/user")

	user.Get("/me", middleware.JWTMiddleware, controller.Me)
	user.Get("/list", middleware.JWTMiddleware, controller.UserList)
	user.Post("/create", validator.CreateUser(), middleware.JWTMiddleware, controller.CreateUser)
	user.Post("/update", validator.UpdateUser(), middleware.JWTMiddleware, controller.UpdateUser)
}
