package scheduling

import "github.com/clinicdesk/citas-api/models"

// FindConflict returns the first scheduled cita of the doctor on the same
// date whose 60-minute slot overlaps the proposed one, or nil when the slot
// is free. Intervals are half-open, so a cita ending exactly when the next
// one starts does not conflict. Citas with malformed dates or times cannot
// match and are skipped.
func FindConflict(doctorID, fecha, hora string, citas []models.Appointment) *models.Appointment {
	dia, err := CanonicalDate(fecha)
	if err != nil {
		return nil
	}
	inicio, err := MinutesOfDay(hora)
	if err != nil {
		return nil
	}
	fin := inicio + SlotMinutes

	for i := range citas {
		c := &citas[i]
		if c.DoctorID != doctorID || c.Estado != models.StatusScheduled {
			continue
		}
		diaExistente, err := CanonicalDate(c.Fecha)
		if err != nil || diaExistente != dia {
			continue
		}
		inicioExistente, err := MinutesOfDay(c.Hora)
		if err != nil {
			continue
		}
		finExistente := inicioExistente + SlotMinutes

		if inicio < finExistente && fin > inicioExistente {
			return c
		}
	}
	return nil
}

// HasConflict reports whether the proposed slot overlaps any scheduled cita
// of the doctor.
func HasConflict(doctorID, fecha, hora string, citas []models.Appointment) bool {
	return FindConflict(doctorID, fecha, hora, citas) != nil
}
