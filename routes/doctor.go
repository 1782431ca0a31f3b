package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/citas-api/controllers"
)

// SetupDoctorRoutes configures all doctor related routes. Literal paths
// (disponibles, especialidad) are registered before the :id wildcard.
func SetupDoctorRoutes(app *fiber.App) {
	doctor := app.Group("/doctores")
	doctor.Post("/", controllers.CreateDoctor)
	doctor.Get("/", controllers.GetAllDoctores)
	doctor.Get("/disponibles", controllers.GetDoctoresDisponibles)
	doctor.Get("/especialidad/:esp", controllers.GetDoctoresByEspecialidad)
	doctor.Get("/:id", controllers.GetDoctor)
	doctor.Put("/:id", controllers.UpdateDoctor)
	doctor.Get("/:id/citas", controllers.GetAgendaDoctor)
}
