package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/citas-api/models"
	"github.com/clinicdesk/citas-api/store"
	"github.com/clinicdesk/citas-api/utils"
)

// CreatePaciente registers a new patient and assigns the next "P" id.
func CreatePaciente(c *fiber.Ctx) error {
	pacientes, err := store.DB.Pacientes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al registrar paciente",
		})
	}

	var nuevo models.Patient
	if err := c.BodyParser(&nuevo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido",
		})
	}

	// Edad is not part of the missing-field check: with a plain int an
	// absent edad and an explicit 0 are indistinguishable, and both belong
	// to the mayor-a-0 rule below.
	if nuevo.Nombre == "" || nuevo.Telefono == "" || nuevo.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Faltan datos obligatorios",
		})
	}
	for _, p := range pacientes {
		if p.Email == nuevo.Email {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "El email ya está registrado",
			})
		}
	}
	if nuevo.Edad <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "La edad debe ser mayor a 0",
		})
	}
	if !utils.IsValidNombre(nuevo.Nombre) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El nombre solo puede contener letras y espacios",
		})
	}
	if !utils.IsValidTelefono(nuevo.Telefono) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Teléfono inválido. Solo números y mínimo 10 dígitos",
		})
	}
	if !utils.IsValidEmail(nuevo.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email inválido",
		})
	}

	ids := make([]string, 0, len(pacientes))
	for _, p := range pacientes {
		ids = append(ids, p.ID)
	}
	nuevo.ID = utils.NextID("P", ids)
	nuevo.FechaRegistro = time.Now().Format("2006-01-02")

	pacientes = append(pacientes, nuevo)
	if err := store.DB.SavePacientes(pacientes); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al registrar paciente",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(nuevo)
}

// GetAllPacientes lists every registered patient.
func GetAllPacientes(c *fiber.Ctx) error {
	pacientes, err := store.DB.Pacientes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al leer pacientes",
		})
	}
	return c.JSON(pacientes)
}

// GetPaciente returns one patient by id.
func GetPaciente(c *fiber.Ctx) error {
	pacientes, err := store.DB.Pacientes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al leer paciente",
		})
	}
	for _, p := range pacientes {
		if p.ID == c.Params("id") {
			return c.JSON(p)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Paciente no encontrado",
	})
}

// UpdatePaciente merges the supplied fields onto an existing patient. The id
// is immutable; supplied fields are re-validated with the same rules as
// registration.
func UpdatePaciente(c *fiber.Ctx) error {
	pacientes, err := store.DB.Pacientes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al actualizar paciente",
		})
	}

	idx := -1
	for i, p := range pacientes {
		if p.ID == c.Params("id") {
			idx = i
			break
		}
	}
	if idx == -1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Paciente no encontrado",
		})
	}

	actualizado := pacientes[idx]
	if err := c.BodyParser(&actualizado); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido",
		})
	}
	actualizado.ID = pacientes[idx].ID
	actualizado.FechaRegistro = pacientes[idx].FechaRegistro

	if actualizado.Edad <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "La edad debe ser mayor a 0",
		})
	}
	if !utils.IsValidNombre(actualizado.Nombre) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El nombre solo puede contener letras y espacios",
		})
	}
	if !utils.IsValidTelefono(actualizado.Telefono) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Teléfono inválido. Solo números y mínimo 10 dígitos",
		})
	}
	if !utils.IsValidEmail(actualizado.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email inválido",
		})
	}
	for _, p := range pacientes {
		if p.Email == actualizado.Email && p.ID != actualizado.ID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "El email ya está registrado",
			})
		}
	}

	pacientes[idx] = actualizado
	if err := store.DB.SavePacientes(pacientes); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al actualizar paciente",
		})
	}
	return c.JSON(actualizado)
}

// GetHistorialPaciente returns every cita referencing the patient.
func GetHistorialPaciente(c *fiber.Ctx) error {
	pacientes, err := store.DB.Pacientes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al leer historial",
		})
	}

	id := c.Params("id")
	encontrado := false
	for _, p := range pacientes {
		if p.ID == id {
			encontrado = true
			break
		}
	}
	if !encontrado {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Paciente no encontrado",
		})
	}

	citas, err := store.DB.Citas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al leer historial",
		})
	}

	historial := make([]models.Appointment, 0)
	for _, cita := range citas {
		if cita.PacienteID == id {
			historial = append(historial, cita)
		}
	}
	if len(historial) == 0 {
		return c.JSON(fiber.Map{"mensaje": "No hay historial de citas"})
	}
	return c.JSON(historial)
}
