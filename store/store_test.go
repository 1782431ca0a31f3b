package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clinicdesk/citas-api/models"
)

func TestReadMissingFileIsEmptyCollection(t *testing.T) {
	s := New(t.TempDir())

	pacientes, err := s.Pacientes()
	if err != nil {
		t.Fatalf("Pacientes: %v", err)
	}
	if len(pacientes) != 0 {
		t.Errorf("expected empty collection, got %d records", len(pacientes))
	}
}

func TestRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	in := []models.Appointment{
		{ID: "C001", PacienteID: "P001", DoctorID: "D001", Fecha: "2099-01-05", Hora: "10:00", Motivo: "Control", Estado: models.StatusScheduled},
		{ID: "C002", PacienteID: "P002", DoctorID: "D001", Fecha: "2099-01-05", Hora: "11:00", Estado: models.StatusCancelled},
	}
	if err := s.SaveCitas(in); err != nil {
		t.Fatalf("SaveCitas: %v", err)
	}

	out, err := s.Citas()
	if err != nil {
		t.Fatalf("Citas: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d citas, want 2", len(out))
	}
	if out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

// Each save rewrites the whole file; the collection on disk is exactly the
// last slice written.
func TestSaveRewritesWholeFile(t *testing.T) {
	s := New(t.TempDir())

	if err := s.SaveDoctores([]models.Doctor{{ID: "D001", Nombre: "Ana"}, {ID: "D002", Nombre: "Luis"}}); err != nil {
		t.Fatalf("SaveDoctores: %v", err)
	}
	if err := s.SaveDoctores([]models.Doctor{{ID: "D002", Nombre: "Luis"}}); err != nil {
		t.Fatalf("SaveDoctores: %v", err)
	}

	doctores, err := s.Doctores()
	if err != nil {
		t.Fatalf("Doctores: %v", err)
	}
	if len(doctores) != 1 || doctores[0].ID != "D002" {
		t.Errorf("expected only D002 after rewrite, got %+v", doctores)
	}
}

func TestCorruptFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "citas.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(dir)
	if _, err := s.Citas(); err == nil {
		t.Fatal("expected decode error for corrupt file")
	} else if !strings.Contains(err.Error(), "citas.json") {
		t.Errorf("error should name the file: %v", err)
	}
}

// A write failure must surface as an error, never be swallowed. A directory
// squatting on the collection's filename makes the rewrite fail for any user,
// root included.
func TestWriteFailureIsAnError(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "citas.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	s := New(dir)
	err := s.SaveCitas([]models.Appointment{{ID: "C001"}})
	if err == nil {
		t.Fatal("expected write error")
	}
	if !strings.Contains(err.Error(), "citas.json") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestSaveCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir)

	if err := s.SavePacientes([]models.Patient{{ID: "P001", Nombre: "Juan"}}); err != nil {
		t.Fatalf("SavePacientes: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "pacientes.json")); err != nil {
		t.Errorf("pacientes.json not created: %v", err)
	}
}
