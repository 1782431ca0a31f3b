package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/citas-api/controllers"
)

// SetupCitaRoutes configures all cita related routes. "proximas" is
// registered before the :id wildcard.
func SetupCitaRoutes(app *fiber.App) {
	cita := app.Group("/citas")
	cita.Post("/", controllers.CreateCita)
	cita.Get("/", controllers.GetAllCitas)
	cita.Get("/proximas", controllers.GetCitasProximas)
	cita.Get("/:id", controllers.GetCita)
	cita.Put("/:id/cancelar", controllers.CancelCita)
}
