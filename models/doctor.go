package models

// Doctor is a roster record. HorarioInicio/HorarioFin are "HH:MM" (24h) and
// must satisfy inicio < fin. DiasDisponibles holds canonical weekday names
// from the Sunday-first table in the scheduling package.
type Doctor struct {
	ID              string   `json:"id"`
	Nombre          string   `json:"nombre"`
	Especialidad    string   `json:"especialidad"`
	HorarioInicio   string   `json:"horarioInicio"`
	HorarioFin      string   `json:"horarioFin"`
	DiasDisponibles []string `json:"diasDisponibles"`
}
