package controllers

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/citas-api/models"
	"github.com/clinicdesk/citas-api/scheduling"
	"github.com/clinicdesk/citas-api/store"
	"github.com/clinicdesk/citas-api/utils"
)

// validateDoctor checks the roster invariants shared by create and update:
// canonical day names, at least one day, and inicio < fin.
func validateDoctor(d models.Doctor) error {
	if len(d.DiasDisponibles) == 0 {
		return fmt.Errorf("Debe especificar al menos un día disponible")
	}
	invalidos := make([]string, 0)
	for _, dia := range d.DiasDisponibles {
		if !scheduling.IsValidDay(dia) {
			invalidos = append(invalidos, dia)
		}
	}
	if len(invalidos) > 0 {
		return fmt.Errorf("Días inválidos: %s", strings.Join(invalidos, ", "))
	}

	inicio, err := scheduling.MinutesOfDay(d.HorarioInicio)
	if err != nil {
		return fmt.Errorf("Horario de inicio inválido (se espera HH:MM)")
	}
	fin, err := scheduling.MinutesOfDay(d.HorarioFin)
	if err != nil {
		return fmt.Errorf("Horario de fin inválido (se espera HH:MM)")
	}
	if inicio >= fin {
		return fmt.Errorf("El horario de inicio debe ser menor al fin")
	}
	return nil
}

// CreateDoctor registers a doctor and assigns the next "D" id.
func CreateDoctor(c *fiber.Ctx) error {
	doctores, err := store.DB.Doctores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al registrar doctor",
		})
	}

	var nuevo models.Doctor
	if err := c.BodyParser(&nuevo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido",
		})
	}

	if nuevo.Nombre == "" || nuevo.Especialidad == "" || nuevo.HorarioInicio == "" || nuevo.HorarioFin == "" || len(nuevo.DiasDisponibles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Faltan datos obligatorios",
		})
	}
	if err := validateDoctor(nuevo); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	for _, d := range doctores {
		if d.Nombre == nuevo.Nombre && d.Especialidad == nuevo.Especialidad {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Ya existe un doctor con ese nombre y especialidad",
			})
		}
	}

	ids := make([]string, 0, len(doctores))
	for _, d := range doctores {
		ids = append(ids, d.ID)
	}
	nuevo.ID = utils.NextID("D", ids)

	doctores = append(doctores, nuevo)
	if err := store.DB.SaveDoctores(doctores); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al registrar doctor",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(nuevo)
}

// GetAllDoctores lists the roster.
func GetAllDoctores(c *fiber.Ctx) error {
	doctores, err := store.DB.Doctores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al leer doctores",
		})
	}
	return c.JSON(doctores)
}

// GetDoctor returns one doctor by id.
func GetDoctor(c *fiber.Ctx) error {
	doctores, err := store.DB.Doctores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al leer doctor",
		})
	}
	for _, d := range doctores {
		if d.ID == c.Params("id") {
			return c.JSON(d)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Doctor no encontrado",
	})
}

// GetDoctoresByEspecialidad filters the roster by specialty, case-insensitive.
func GetDoctoresByEspecialidad(c *fiber.Ctx) error {
	doctores, err := store.DB.Doctores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al buscar doctores",
		})
	}

	filtrados := make([]models.Doctor, 0)
	for _, d := range doctores {
		if strings.EqualFold(d.Especialidad, c.Params("esp")) {
			filtrados = append(filtrados, d)
		}
	}
	return c.JSON(filtrados)
}

// UpdateDoctor merges supplied fields onto an existing doctor, keeping the
// id, and re-checks the roster invariants on the merged record.
func UpdateDoctor(c *fiber.Ctx) error {
	doctores, err := store.DB.Doctores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al actualizar doctor",
		})
	}

	idx := -1
	for i, d := range doctores {
		if d.ID == c.Params("id") {
			idx = i
			break
		}
	}
	if idx == -1 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor no encontrado",
		})
	}

	actualizado := doctores[idx]
	if err := c.BodyParser(&actualizado); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la petición inválido",
		})
	}
	actualizado.ID = doctores[idx].ID

	if err := validateDoctor(actualizado); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	for _, d := range doctores {
		if d.Nombre == actualizado.Nombre && d.Especialidad == actualizado.Especialidad && d.ID != actualizado.ID {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Ya existe un doctor con ese nombre y especialidad",
			})
		}
	}

	doctores[idx] = actualizado
	if err := store.DB.SaveDoctores(doctores); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al actualizar doctor",
		})
	}
	return c.JSON(actualizado)
}

// agendaItem is a cita annotated with the patient's name for the doctor's
// schedule view.
type agendaItem struct {
	models.Appointment
	PacienteNombre string `json:"pacienteNombre"`
}

// GetAgendaDoctor returns every cita of the doctor with patient names.
func GetAgendaDoctor(c *fiber.Ctx) error {
	doctores, err := store.DB.Doctores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener citas del doctor",
		})
	}

	id := c.Params("id")
	encontrado := false
	for _, d := range doctores {
		if d.ID == id {
			encontrado = true
			break
		}
	}
	if !encontrado {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Doctor no encontrado",
		})
	}

	citas, err := store.DB.Citas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener citas del doctor",
		})
	}
	pacientes, err := store.DB.Pacientes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al obtener citas del doctor",
		})
	}

	nombres := make(map[string]string, len(pacientes))
	for _, p := range pacientes {
		nombres[p.ID] = p.Nombre
	}

	agenda := make([]agendaItem, 0)
	for _, cita := range citas {
		if cita.DoctorID != id {
			continue
		}
		nombre, ok := nombres[cita.PacienteID]
		if !ok {
			nombre = "—"
		}
		agenda = append(agenda, agendaItem{Appointment: cita, PacienteNombre: nombre})
	}
	return c.JSON(agenda)
}

// GetDoctoresDisponibles answers "which doctors are free at hora on fecha"
// over a fresh snapshot of the roster and cita set.
func GetDoctoresDisponibles(c *fiber.Ctx) error {
	fecha := c.Query("fecha")
	hora := c.Query("hora")
	if fecha == "" || hora == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Falta fecha u hora",
		})
	}

	doctores, err := store.DB.Doctores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al buscar doctores disponibles",
		})
	}
	citas, err := store.DB.Citas()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al buscar doctores disponibles",
		})
	}

	return c.JSON(scheduling.FindAvailableDoctors(fecha, hora, doctores, citas))
}
