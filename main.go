package main

import (
	"log"

	"prflow/config"
	"prflow/database"
	authRoutes "prflow/routers/authRoutes"
	dashboardRoutes "prflow/routers/dashboardRoutes"
	notificationRoutes "prflow/routers/notificationRoutes"
	prRoutes "prflow/routers/prRoutes"
	userRoutes "prflow/routers/userRoutes"
	"prflow/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	prRoutes.SetupPRRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)

	reminders := utils.StartReminderScheduler()
	defer reminders.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
