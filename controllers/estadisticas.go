package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/citas-api/models"
	"github.com/clinicdesk/citas-api/store"
)

type doctorStats struct {
	Doctor models.Doctor `json:"doctor"`
	Citas  int           `json:"citas"`
}

// GetEstadisticasDoctores returns the scheduled-cita count per doctor, in
// roster order, zero-filled for doctors with no citas.
func GetEstadisticasDoctores(c *fiber.Ctx) error {
	doctores, err := store.DB.Doctores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al calcular estadísticas",
		})
	}
	citas, err := store.DB.Citas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al calcular estadísticas",
		})
	}

	conteo := make(map[string]int, len(doctores))
	for _, d := range doctores {
		conteo[d.ID] = 0
	}
	for _, cita := range citas {
		if cita.Estado != models.StatusScheduled {
			continue
		}
		if _, ok := conteo[cita.DoctorID]; ok {
			conteo[cita.DoctorID]++
		}
	}

	resultado := make([]doctorStats, 0, len(doctores))
	for _, d := range doctores {
		resultado = append(resultado, doctorStats{Doctor: d, Citas: conteo[d.ID]})
	}
	return c.JSON(resultado)
}

// GetEspecialidadMasSolicitada returns the specialty with the most scheduled
// citas.
func GetEspecialidadMasSolicitada(c *fiber.Ctx) error {
	doctores, err := store.DB.Doctores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al calcular especialidad más solicitada",
		})
	}
	citas, err := store.DB.Citas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al calcular especialidad más solicitada",
		})
	}

	especialidades := make(map[string]string, len(doctores))
	for _, d := range doctores {
		especialidades[d.ID] = d.Especialidad
	}

	conteo := make(map[string]int)
	for _, cita := range citas {
		if cita.Estado != models.StatusScheduled {
			continue
		}
		if esp, ok := especialidades[cita.DoctorID]; ok {
			conteo[esp]++
		}
	}

	var maxEspecialidad string
	maxCitas := 0
	for esp, cantidad := range conteo {
		if cantidad > maxCitas {
			maxCitas = cantidad
			maxEspecialidad = esp
		}
	}

	return c.JSON(fiber.Map{
		"especialidad": maxEspecialidad,
		"citas":        maxCitas,
	})
}
