package scheduling

import (
	"fmt"
	"time"

	"github.com/clinicdesk/citas-api/models"
	"github.com/clinicdesk/citas-api/utils"
)

// AdmissionRequest is the wire shape of POST /citas.
type AdmissionRequest struct {
	PacienteID string `json:"pacienteId"`
	DoctorID   string `json:"doctorId"`
	Fecha      string `json:"fecha"`
	Hora       string `json:"hora"`
	Motivo     string `json:"motivo"`
}

// Admission rejection codes.
const (
	CodeMissingFields       = "missing_fields"
	CodeUnknownPatient      = "unknown_patient"
	CodeUnknownDoctor       = "unknown_doctor"
	CodeInvalidDateTime     = "invalid_datetime"
	CodePastDateTime        = "past_datetime"
	CodeOutsideWorkingHours = "outside_working_hours"
	CodeDoubleBooked        = "double_booked"
)

// AdmissionError is a validation rejection from the admission pipeline. The
// message is user-facing; the code identifies the taxonomy category.
type AdmissionError struct {
	Code    string
	Message string
}

func (e *AdmissionError) Error() string { return e.Message }

// Admit runs the write-path gatekeeper over a fresh snapshot of the three
// collections. Checks run in a fixed order and the first failure wins:
// required fields, patient exists, doctor exists, slot in the future, slot
// inside the doctor's window, slot free. On success it returns the new cita
// with the next sequential "C" id and estado scheduled; appending it to the
// collection and persisting is the caller's responsibility. Admit itself has
// no side effects.
func Admit(req AdmissionRequest, doctores []models.Doctor, pacientes []models.Patient, citas []models.Appointment, now time.Time) (models.Appointment, error) {
	if req.PacienteID == "" || req.DoctorID == "" || req.Fecha == "" || req.Hora == "" {
		return models.Appointment{}, &AdmissionError{
			Code:    CodeMissingFields,
			Message: "Faltan datos obligatorios (pacienteId, doctorId, fecha, hora)",
		}
	}

	if findPaciente(pacientes, req.PacienteID) == nil {
		return models.Appointment{}, &AdmissionError{
			Code:    CodeUnknownPatient,
			Message: "El paciente no existe",
		}
	}

	doctor := findDoctor(doctores, req.DoctorID)
	if doctor == nil {
		return models.Appointment{}, &AdmissionError{
			Code:    CodeUnknownDoctor,
			Message: "El doctor no existe",
		}
	}

	// Wall-clock comparison in the server's location, same clock the clinic
	// front desk runs on.
	fechaCita, err := time.ParseInLocation("2006-01-02 15:04", req.Fecha+" "+req.Hora, now.Location())
	if err != nil {
		return models.Appointment{}, &AdmissionError{
			Code:    CodeInvalidDateTime,
			Message: "Fecha u hora inválida (se espera YYYY-MM-DD y HH:MM)",
		}
	}
	if !fechaCita.After(now) {
		return models.Appointment{}, &AdmissionError{
			Code:    CodePastDateTime,
			Message: "La fecha y hora deben ser futuras",
		}
	}

	if err := CheckWorkingHours(*doctor, req.Fecha, req.Hora); err != nil {
		return models.Appointment{}, &AdmissionError{
			Code:    CodeOutsideWorkingHours,
			Message: err.Error(),
		}
	}

	if conflicto := FindConflict(req.DoctorID, req.Fecha, req.Hora, citas); conflicto != nil {
		return models.Appointment{}, &AdmissionError{
			Code:    CodeDoubleBooked,
			Message: fmt.Sprintf("El doctor ya tiene una cita programada que genera conflicto (Cita #%s a las %s)", conflicto.ID, conflicto.Hora),
		}
	}

	ids := make([]string, 0, len(citas))
	for _, c := range citas {
		ids = append(ids, c.ID)
	}

	return models.Appointment{
		ID:         utils.NextID("C", ids),
		PacienteID: req.PacienteID,
		DoctorID:   req.DoctorID,
		Fecha:      req.Fecha,
		Hora:       req.Hora,
		Motivo:     req.Motivo,
		Estado:     models.StatusScheduled,
	}, nil
}

func findPaciente(pacientes []models.Patient, id string) *models.Patient {
	for i := range pacientes {
		if pacientes[i].ID == id {
			return &pacientes[i]
		}
	}
	return nil
}

func findDoctor(doctores []models.Doctor, id string) *models.Doctor {
	for i := range doctores {
		if doctores[i].ID == id {
			return &doctores[i]
		}
	}
	return nil
}
