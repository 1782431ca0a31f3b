package scheduling

import "github.com/clinicdesk/citas-api/models"

// FindAvailableDoctors filters the roster down to doctors whose window covers
// the slot and who have no scheduled cita overlapping it. Roster order is
// preserved; callers wanting a different order sort the result themselves.
func FindAvailableDoctors(fecha, hora string, doctores []models.Doctor, citas []models.Appointment) []models.Doctor {
	disponibles := make([]models.Doctor, 0)
	for _, d := range doctores {
		if !IsWithinWorkingHours(d, fecha, hora) {
			continue
		}
		if HasConflict(d.ID, fecha, hora, citas) {
			continue
		}
		disponibles = append(disponibles, d)
	}
	return disponibles
}
