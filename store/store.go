// Package store persists the three clinic collections as flat JSON files,
// one per collection: every mutation rewrites the whole file. Handlers load
// a fresh snapshot per request and write the full slice back.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"github.com/clinicdesk/citas-api/models"
)

const (
	pacientesFile = "pacientes.json"
	doctoresFile  = "doctores.json"
	citasFile     = "citas.json"
)

// DB is the process-wide store, set by Init.
var DB *Store

// Store reads and writes the clinic collections under a data directory. The
// mutex serializes file rewrites within the process; cross-process access is
// out of scope (single serving process, last writer wins).
type Store struct {
	dir string
	mu  sync.Mutex
}

// New returns a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Init sets up the global store from the environment (DATA_DIR, default
// ./data), loading .env first when present.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	dir := os.Getenv("DATA_DIR")
	if dir == "" {
		dir = "./data"
	}
	DB = New(dir)
	log.Printf("Store initialized at %s", dir)
}

func (s *Store) Pacientes() ([]models.Patient, error) {
	return readCollection[models.Patient](s, pacientesFile)
}

func (s *Store) SavePacientes(pacientes []models.Patient) error {
	return writeCollection(s, pacientesFile, pacientes)
}

func (s *Store) Doctores() ([]models.Doctor, error) {
	return readCollection[models.Doctor](s, doctoresFile)
}

func (s *Store) SaveDoctores(doctores []models.Doctor) error {
	return writeCollection(s, doctoresFile, doctores)
}

func (s *Store) Citas() ([]models.Appointment, error) {
	return readCollection[models.Appointment](s, citasFile)
}

func (s *Store) SaveCitas(citas []models.Appointment) error {
	return writeCollection(s, citasFile, citas)
}

// readCollection decodes a whole collection file. A file that does not exist
// yet is an empty collection; any other failure is surfaced, never defaulted.
func readCollection[T any](s *Store, name string) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leyendo %s: %w", name, err)
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decodificando %s: %w", name, err)
	}
	return out, nil
}

// writeCollection rewrites the whole collection file, indented like the
// original data files.
func writeCollection[T any](s *Store, name string, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("codificando %s: %w", name, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creando directorio de datos: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("escribiendo %s: %w", name, err)
	}
	return nil
}
