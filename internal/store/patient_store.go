package store

import (
	"sort"
	"strings"
	"sync"

	"practmd-server/internal/models"
)

// PatientStore is the read-mostly patient directory. Appointments reference
// its records weakly via PatientRef.
type PatientStore struct {
	mu       sync.RWMutex
	patients []models.Patient
}

// NewPatientStore seeds the directory.
func NewPatientStore(patients []models.Patient) *PatientStore {
	return &PatientStore{patients: append([]models.Patient(nil), patients...)}
}

// Patients returns the roster, optionally filtered by a case-insensitive
// substring over name and MRN, sorted by last name.
func (s *PatientStore) Patients(query string) []models.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []models.Patient
	for _, p := range s.patients {
		if q == "" ||
			strings.Contains(strings.ToLower(p.Name()), q) ||
			strings.Contains(strings.ToLower(p.MRN), q) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastName < out[j].LastName
	})
	return out
}

// Patient looks up a directory record by id.
func (s *PatientStore) Patient(id string) (models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.patients {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Patient{}, ErrNotFound
}
