package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/citas-api/controllers"
)

// SetupPacienteRoutes configures all patient related routes
func SetupPacienteRoutes(app *fiber.App) {
	paciente := app.Group("/pacientes")
	paciente.Post("/", controllers.CreatePaciente)
	paciente.Get("/", controllers.GetAllPacientes)
	paciente.Get("/:id", controllers.GetPaciente)
	paciente.Put("/:id", controllers.UpdatePaciente)
	paciente.Get("/:id/historial", controllers.GetHistorialPaciente)
}
