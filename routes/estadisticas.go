package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/citas-api/controllers"
)

// SetupEstadisticasRoutes configures the dashboard statistics routes
func SetupEstadisticasRoutes(app *fiber.App) {
	estadisticas := app.Group("/estadisticas")
	estadisticas.Get("/doctores", controllers.GetEstadisticasDoctores)
	estadisticas.Get("/especialidades", controllers.GetEspecialidadMasSolicitada)
}
