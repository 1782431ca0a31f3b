package controllers_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/clinicdesk/citas-api/models"
	"github.com/clinicdesk/citas-api/store"
)

func doctorBody(over map[string]any) map[string]any {
	body := map[string]any{
		"nombre":          "Ana Torres",
		"especialidad":    "Cardiología",
		"horarioInicio":   "09:00",
		"horarioFin":      "17:00",
		"diasDisponibles": []string{"Lunes", "Martes"},
	}
	for k, v := range over {
		body[k] = v
	}
	return body
}

func TestCreateDoctor(t *testing.T) {
	app := setupApp(t)

	resp, body := doJSON(t, app, "POST", "/doctores", doctorBody(nil))
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d (%v)", resp.StatusCode, body)
	}
	if body["id"] != "D001" {
		t.Errorf("id = %v, want D001", body["id"])
	}
}

func TestCreateDoctor_Validation(t *testing.T) {
	tests := []struct {
		name string
		over map[string]any
		want string
	}{
		{"missing especialidad", map[string]any{"especialidad": ""}, "Faltan datos obligatorios"},
		{"empty dias", map[string]any{"diasDisponibles": []string{}}, "Faltan datos obligatorios"},
		{"invalid day name", map[string]any{"diasDisponibles": []string{"Lunes", "Monday"}}, "Días inválidos: Monday"},
		{"window inverted", map[string]any{"horarioInicio": "17:00", "horarioFin": "09:00"}, "El horario de inicio debe ser menor al fin"},
		{"window empty", map[string]any{"horarioInicio": "09:00", "horarioFin": "09:00"}, "El horario de inicio debe ser menor al fin"},
		{"bad hora format", map[string]any{"horarioInicio": "9am"}, "Horario de inicio inválido (se espera HH:MM)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupApp(t)
			resp, body := doJSON(t, app, "POST", "/doctores", doctorBody(tt.over))
			if resp.StatusCode != fiber.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%v)", resp.StatusCode, body)
			}
			if body["error"] != tt.want {
				t.Errorf("error = %v, want %q", body["error"], tt.want)
			}
		})
	}
}

func TestCreateDoctor_Duplicate(t *testing.T) {
	app := setupApp(t)
	if resp, _ := doJSON(t, app, "POST", "/doctores", doctorBody(nil)); resp.StatusCode != fiber.StatusCreated {
		t.Fatal("first registration failed")
	}

	resp, body := doJSON(t, app, "POST", "/doctores", doctorBody(nil))
	if resp.StatusCode != fiber.StatusBadRequest || body["error"] != "Ya existe un doctor con ese nombre y especialidad" {
		t.Errorf("status = %d, error = %v", resp.StatusCode, body["error"])
	}

	// Same name, different specialty is a different doctor.
	resp, _ = doJSON(t, app, "POST", "/doctores", doctorBody(map[string]any{"especialidad": "Pediatría"}))
	if resp.StatusCode != fiber.StatusCreated {
		t.Errorf("status = %d, want 201", resp.StatusCode)
	}
}

func TestUpdateDoctor(t *testing.T) {
	app := setupApp(t)
	if resp, _ := doJSON(t, app, "POST", "/doctores", doctorBody(nil)); resp.StatusCode != fiber.StatusCreated {
		t.Fatal("registration failed")
	}

	resp, body := doJSON(t, app, "PUT", "/doctores/D001", map[string]any{"horarioFin": "18:00"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d (%v)", resp.StatusCode, body)
	}
	if body["horarioFin"] != "18:00" || body["nombre"] != "Ana Torres" || body["id"] != "D001" {
		t.Errorf("merged record = %v", body)
	}

	// The merged window must still satisfy inicio < fin.
	resp, body = doJSON(t, app, "PUT", "/doctores/D001", map[string]any{"horarioFin": "08:00"})
	if resp.StatusCode != fiber.StatusBadRequest || body["error"] != "El horario de inicio debe ser menor al fin" {
		t.Errorf("status = %d, error = %v", resp.StatusCode, body["error"])
	}
}

func TestGetDoctoresByEspecialidad(t *testing.T) {
	app := setupApp(t)
	seedClinic(t)

	for _, esp := range []string{"Cardiología", "cardiología", "CARDIOLOGÍA"} {
		req := httptest.NewRequest("GET", "/doctores/especialidad/"+esp, nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		var doctores []models.Doctor
		if err := json.NewDecoder(resp.Body).Decode(&doctores); err != nil {
			t.Fatal(err)
		}
		if len(doctores) != 1 {
			t.Errorf("especialidad %q matched %d doctors, want 1", esp, len(doctores))
		}
	}

	req := httptest.NewRequest("GET", "/doctores/especialidad/Neurología", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var doctores []models.Doctor
	if err := json.NewDecoder(resp.Body).Decode(&doctores); err != nil {
		t.Fatal(err)
	}
	if len(doctores) != 0 {
		t.Errorf("unexpected matches: %v", doctores)
	}
}

func TestGetAgendaDoctor(t *testing.T) {
	app := setupApp(t)
	seedClinic(t)
	if resp, _ := doJSON(t, app, "POST", "/citas", citaBody("10:00")); resp.StatusCode != fiber.StatusCreated {
		t.Fatal("seeding cita failed")
	}

	// A cita whose patient no longer resolves still shows up, with the
	// placeholder name.
	citas, err := store.DB.Citas()
	if err != nil {
		t.Fatal(err)
	}
	citas = append(citas, models.Appointment{
		ID: "C002", PacienteID: "P404", DoctorID: "D001",
		Fecha: "2099-01-05", Hora: "12:00", Estado: models.StatusScheduled,
	})
	mustSave(t, store.DB.SaveCitas(citas))

	req := httptest.NewRequest("GET", "/doctores/D001/citas", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	var agenda []struct {
		models.Appointment
		PacienteNombre string `json:"pacienteNombre"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&agenda); err != nil {
		t.Fatal(err)
	}
	if len(agenda) != 2 {
		t.Fatalf("agenda length = %d, want 2", len(agenda))
	}
	if agenda[0].PacienteNombre != "Juan Pérez" {
		t.Errorf("pacienteNombre = %q, want Juan Pérez", agenda[0].PacienteNombre)
	}
	if agenda[1].PacienteNombre != "—" {
		t.Errorf("pacienteNombre for missing patient = %q, want —", agenda[1].PacienteNombre)
	}

	resp2, _ := doJSON(t, app, "GET", "/doctores/D404/citas", nil)
	if resp2.StatusCode != fiber.StatusNotFound {
		t.Errorf("unknown doctor status = %d, want 404", resp2.StatusCode)
	}
}
