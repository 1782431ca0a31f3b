package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/citas-api/models"
	"github.com/clinicdesk/citas-api/scheduling"
	"github.com/clinicdesk/citas-api/store"
	"github.com/clinicdesk/citas-api/utils"
)

// CreateCita admits a new cita: the scheduling pipeline validates the request
// against a fresh snapshot of the three collections, and only an admitted
// cita is appended and persisted. A confirmation mail to the patient is
// best-effort and never fails the request.
func CreateCita(c *fiber.Ctx) error {
	citas, err := store.DB.Citas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al crear cita",
		})
	}
	pacientes, err := store.DB.Pacientes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al crear cita",
		})
	}
	doctores, err := store.DB.Doctores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al crear cita",
		})
	}

	var req scheduling.AdmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido",
		})
	}

	nueva, err := scheduling.Admit(req, doctores, pacientes, citas, time.Now())
	if err != nil {
		var admErr *scheduling.AdmissionError
		if errors.As(err, &admErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": admErr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al crear cita",
		})
	}

	citas = append(citas, nueva)
	if err := store.DB.SaveCitas(citas); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al crear cita",
		})
	}

	sendConfirmacion(nueva, pacientes, doctores)

	return c.Status(fiber.StatusCreated).JSON(nueva)
}

// sendConfirmacion mails the patient after a successful admission. Failures
// are logged only; the cita is already persisted.
func sendConfirmacion(cita models.Appointment, pacientes []models.Patient, doctores []models.Doctor) {
	if !utils.EmailConfigured() {
		return
	}

	var paciente models.Patient
	for _, p := range pacientes {
		if p.ID == cita.PacienteID {
			paciente = p
			break
		}
	}
	var doctor models.Doctor
	for _, d := range doctores {
		if d.ID == cita.DoctorID {
			doctor = d
			break
		}
	}

	body := fmt.Sprintf(`
		<p>Estimado/a %s,</p>
		<p>Su cita ha sido registrada.</p>
		<ul>
			<li><strong>Cita:</strong> %s</li>
			<li><strong>Doctor:</strong> %s (%s)</li>
			<li><strong>Fecha:</strong> %s</li>
			<li><strong>Hora:</strong> %s</li>
		</ul>
		<p>Gracias por su preferencia.</p>
	`, paciente.Nombre, cita.ID, doctor.Nombre, doctor.Especialidad, cita.Fecha, cita.Hora)

	if err := utils.SendEmail(paciente.Email, "Confirmación de cita "+cita.ID, body); err != nil {
		log.Printf("Failed to send confirmation for cita %s: %v", cita.ID, err)
	}
}

// GetAllCitas lists every cita. An empty collection answers with the message
// envelope the front end expects.
func GetAllCitas(c *fiber.Ctx) error {
	citas, err := store.DB.Citas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al leer las citas",
		})
	}
	if len(citas) == 0 {
		return c.JSON(fiber.Map{"mensaje": "No hay citas registradas"})
	}
	return c.JSON(citas)
}

// GetCitasProximas returns scheduled citas starting within the next 24 hours.
func GetCitasProximas(c *fiber.Ctx) error {
	citas, err := store.DB.Citas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener citas próximas",
		})
	}

	ahora := time.Now()
	fin := ahora.Add(24 * time.Hour)

	proximas := make([]models.Appointment, 0)
	for _, cita := range citas {
		if cita.Estado != models.StatusScheduled {
			continue
		}
		t, err := time.ParseInLocation("2006-01-02 15:04", cita.Fecha+" "+cita.Hora, ahora.Location())
		if err != nil {
			continue
		}
		if !t.Before(ahora) && !t.After(fin) {
			proximas = append(proximas, cita)
		}
	}
	return c.JSON(proximas)
}

// GetCita returns one cita by id.
func GetCita(c *fiber.Ctx) error {
	citas, err := store.DB.Citas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al leer la cita",
		})
	}
	for _, cita := range citas {
		if cita.ID == c.Params("id") {
			return c.JSON(cita)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Cita no encontrada",
	})
}

// CancelCita moves a scheduled cita to cancelled. Cancelled citas stop
// occupying their slot immediately; the record itself is never deleted.
func CancelCita(c *fiber.Ctx) error {
	citas, err := store.DB.Citas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al cancelar cita",
		})
	}

	idx := -1
	for i, cita := range citas {
		if cita.ID == c.Params("id") {
			idx = i
			break
		}
	}
	if idx == -1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Cita no encontrada",
		})
	}

	if err := citas[idx].Cancel(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Solo se pueden cancelar citas programadas",
		})
	}
	if err := store.DB.SaveCitas(citas); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al cancelar cita",
		})
	}
	return c.JSON(citas[idx])
}
