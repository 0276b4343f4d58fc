package prRoutes

import (
	controller "prflow/controllers/pr"
	"prflow/middleware"
	validator "prflow/validators/pr"

	"github.com/gofiber/fiber/v2"
)

func SetupPRRoutes(app *fiber.App) {
	pr := app.Group("/pr")

	pr.Post("/create", validator.CreatePR(), middleware.JWTMiddleware, controller.CreatePR)
	pr.Get("/list", middleware.JWTMiddleware, controller.PRList)
	pr.Get("/:id", middleware.JWTMiddleware, controller.PRDetail)
	pr.Post("/approve", validator.ApprovePR(), middleware.JWTMiddleware, controller.ApprovePR)
	pr.Post("/reject", validator.RejectPR(), middleware.JWTMiddleware, controller.RejectPR)
}
