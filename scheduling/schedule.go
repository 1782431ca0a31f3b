// Package scheduling is the single authoritative implementation of the
// clinic's slot rules: doctor working windows, cita conflicts, availability
// queries and the admission pipeline. Everything here is a pure function over
// its inputs; loading and persisting the collections is the caller's job.
package scheduling

import (
	"fmt"
	"time"

	"github.com/clinicdesk/citas-api/models"
)

// SlotMinutes is the fixed duration of every cita.
const SlotMinutes = 60

// Weekdays is the canonical Sunday-first weekday table (index 0 = Domingo).
// Dates map onto it through time.Weekday, never through host locale.
var Weekdays = [7]string{"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado"}

// IsValidDay reports whether dia is one of the seven canonical weekday names.
func IsValidDay(dia string) bool {
	for _, d := range Weekdays {
		if d == dia {
			return true
		}
	}
	return false
}

// WeekdayOf returns the canonical weekday name for a "YYYY-MM-DD" date.
// The date is parsed in UTC so the mapping cannot shift across timezones.
func WeekdayOf(fecha string) (string, error) {
	t, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return "", fmt.Errorf("fecha inválida: %q", fecha)
	}
	return Weekdays[int(t.Weekday())], nil
}

// CanonicalDate normalizes a date string to "YYYY-MM-DD" form.
func CanonicalDate(fecha string) (string, error) {
	t, err := time.Parse("2006-01-02", fecha)
	if err != nil {
		return "", fmt.Errorf("fecha inválida: %q", fecha)
	}
	return t.Format("2006-01-02"), nil
}

// MinutesOfDay converts an "HH:MM" string to minutes since midnight.
func MinutesOfDay(hora string) (int, error) {
	t, err := time.Parse("15:04", hora)
	if err != nil {
		return 0, fmt.Errorf("hora inválida: %q", hora)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// DayOffError reports a date falling outside the doctor's available days.
type DayOffError struct {
	Dia string
}

func (e *DayOffError) Error() string {
	return fmt.Sprintf("El doctor no está disponible el día %s", e.Dia)
}

// TooEarlyError reports a cita starting before the doctor's window opens.
type TooEarlyError struct {
	Inicio string
}

func (e *TooEarlyError) Error() string {
	return fmt.Sprintf("La cita es demasiado temprano. El doctor inicia a las %s", e.Inicio)
}

// PastClosingError reports a cita that would run past the doctor's window.
type PastClosingError struct {
	Fin string
}

func (e *PastClosingError) Error() string {
	return fmt.Sprintf("La cita terminaría después del horario. El doctor termina a las %s", e.Fin)
}

// CheckWorkingHours validates that a cita at fecha/hora falls entirely inside
// the doctor's working window. The slot must start at or after the window
// opens and end (start + SlotMinutes) at or before it closes; starting inside
// the window is not enough. Returns nil when the slot fits, or a typed error
// saying which rule failed.
func CheckWorkingHours(d models.Doctor, fecha, hora string) error {
	dia, err := WeekdayOf(fecha)
	if err != nil {
		return err
	}

	disponible := false
	for _, dd := range d.DiasDisponibles {
		if dd == dia {
			disponible = true
			break
		}
	}
	if !disponible {
		return &DayOffError{Dia: dia}
	}

	inicio, err := MinutesOfDay(d.HorarioInicio)
	if err != nil {
		return err
	}
	fin, err := MinutesOfDay(d.HorarioFin)
	if err != nil {
		return err
	}
	cita, err := MinutesOfDay(hora)
	if err != nil {
		return err
	}

	if cita < inicio {
		return &TooEarlyError{Inicio: d.HorarioInicio}
	}
	if cita+SlotMinutes > fin {
		return &PastClosingError{Fin: d.HorarioFin}
	}
	return nil
}

// IsWithinWorkingHours reports whether the slot fits the doctor's window.
func IsWithinWorkingHours(d models.Doctor, fecha, hora string) bool {
	return CheckWorkingHours(d, fecha, hora) == nil
}
