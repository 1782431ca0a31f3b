package scheduling

import (
	"testing"

	"github.com/clinicdesk/citas-api/models"
)

func TestFindAvailableDoctors(t *testing.T) {
	doctores := []models.Doctor{
		{ID: "D001", Nombre: "Ana Torres", Especialidad: "Cardiología",
			HorarioInicio: "09:00", HorarioFin: "17:00", DiasDisponibles: []string{"Lunes"}},
		{ID: "D002", Nombre: "Luis Mora", Especialidad: "Pediatría",
			HorarioInicio: "09:00", HorarioFin: "17:00", DiasDisponibles: []string{"Lunes", "Martes"}},
		{ID: "D003", Nombre: "Carmen Ruiz", Especialidad: "Dermatología",
			HorarioInicio: "09:00", HorarioFin: "17:00", DiasDisponibles: []string{"Martes"}},
	}
	citas := []models.Appointment{
		{ID: "C001", PacienteID: "P001", DoctorID: "D002", Fecha: "2099-01-05", Hora: "10:00", Estado: models.StatusScheduled},
	}

	// Monday 10:00: D001 free, D002 booked, D003 off.
	got := FindAvailableDoctors("2099-01-05", "10:00", doctores, citas)
	if len(got) != 1 || got[0].ID != "D001" {
		t.Fatalf("FindAvailableDoctors = %v, want [D001]", ids(got))
	}

	// Monday 11:00: D002's 10:00 cita ends exactly at 11:00, so both Monday
	// doctors are free.
	got = FindAvailableDoctors("2099-01-05", "11:00", doctores, citas)
	if len(got) != 2 || got[0].ID != "D001" || got[1].ID != "D002" {
		t.Fatalf("FindAvailableDoctors = %v, want [D001 D002] in roster order", ids(got))
	}

	// Sunday: nobody works.
	got = FindAvailableDoctors("2099-01-04", "10:00", doctores, citas)
	if len(got) != 0 {
		t.Fatalf("FindAvailableDoctors on Sunday = %v, want empty", ids(got))
	}
}

func TestFindAvailableDoctors_RosterOrderPreserved(t *testing.T) {
	doctores := []models.Doctor{
		{ID: "D009", Nombre: "Zoe", Especialidad: "B", HorarioInicio: "08:00", HorarioFin: "18:00", DiasDisponibles: []string{"Lunes"}},
		{ID: "D002", Nombre: "Ana", Especialidad: "A", HorarioInicio: "08:00", HorarioFin: "18:00", DiasDisponibles: []string{"Lunes"}},
	}

	got := FindAvailableDoctors("2099-01-05", "10:00", doctores, nil)
	if len(got) != 2 || got[0].ID != "D009" || got[1].ID != "D002" {
		t.Fatalf("roster order not preserved: %v", ids(got))
	}
}

func ids(doctores []models.Doctor) []string {
	out := make([]string, 0, len(doctores))
	for _, d := range doctores {
		out = append(out, d.ID)
	}
	return out
}
