package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/clinicdesk/citas-api/cron"
	"github.com/clinicdesk/citas-api/routes"
	"github.com/clinicdesk/citas-api/store"
)

func main() {
	app := fiber.New()
	store.Init()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Static("/", "./frontend")

	routes.SetupPacienteRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupCitaRoutes(app)
	routes.SetupEstadisticasRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Fatal(app.Listen(":" + port))
}
