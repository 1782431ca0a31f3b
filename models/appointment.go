package models

import "fmt"

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment is a cita binding a patient and a doctor by id. Dates are
// wall-clock strings: Fecha "YYYY-MM-DD", Hora "HH:MM" (24h). Every cita
// occupies a fixed 60-minute slot.
type Appointment struct {
	ID         string            `json:"id"`
	PacienteID string            `json:"pacienteId"`
	DoctorID   string            `json:"doctorId"`
	Fecha      string            `json:"fecha"`
	Hora       string            `json:"hora"`
	Motivo     string            `json:"motivo,omitempty"`
	Estado     AppointmentStatus `json:"estado"`
}

// Cancel moves the cita to cancelled. Only scheduled citas can transition;
// completed and cancelled are terminal states.
func (a *Appointment) Cancel() error {
	if a.Estado != StatusScheduled {
		return fmt.Errorf("solo se pueden cancelar citas programadas")
	}
	a.Estado = StatusCancelled
	return nil
}
