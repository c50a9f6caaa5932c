package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"practmd-server/internal/models"
)

// ErrNotFound is returned when an id does not match any record.
var ErrNotFound = errors.New("record not found")

// ScheduleStore owns the session's appointment and availability collections.
// The source application mutated these in single-threaded component state;
// behind an HTTP server the collections need a lock.
type ScheduleStore struct {
	mu           sync.RWMutex
	appointments []models.Appointment
	availability []models.AvailabilitySlot
}

// NewScheduleStore seeds a store with the given collections.
func NewScheduleStore(appointments []models.Appointment, availability []models.AvailabilitySlot) *ScheduleStore {
	return &ScheduleStore{
		appointments: append([]models.Appointment(nil), appointments...),
		availability: append([]models.AvailabilitySlot(nil), availability...),
	}
}

// Appointments returns a copy of the appointment collection in insertion order.
func (s *ScheduleStore) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Appointment(nil), s.appointments...)
}

// AvailabilitySlots returns a copy of the availability collection.
func (s *ScheduleStore) AvailabilitySlots() []models.AvailabilitySlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.AvailabilitySlot(nil), s.availability...)
}

// Appointment looks up a single appointment by id.
func (s *ScheduleStore) Appointment(id string) (models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Appointment{}, ErrNotFound
}

// SearchAppointments filters by a case-insensitive substring over the patient
// name and visit type, sorts by start time, and returns the requested page
// along with the total match count.
func (s *ScheduleStore) SearchAppointments(query string, page, pageSize int) ([]models.Appointment, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var matches []models.Appointment
	for _, a := range s.appointments {
		if q == "" ||
			strings.Contains(strings.ToLower(a.Patient.Name), q) ||
			strings.Contains(strings.ToLower(string(a.Type)), q) {
			matches = append(matches, a)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].StartTime.Before(matches[j].StartTime)
	})

	total := len(matches)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		return matches, total
	}
	start := (page - 1) * pageSize
	if start >= total {
		return nil, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return matches[start:end], total
}

// SetAppointmentStatus overwrites the status unconditionally. Any status may
// follow any other; there is no transition state machine.
func (s *ScheduleStore) SetAppointmentStatus(id string, status models.AppointmentStatus) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].Status = status
			return s.appointments[i], nil
		}
	}
	return models.Appointment{}, ErrNotFound
}

// RescheduleAppointment moves an appointment to a new start time and marks
// it Rescheduled.
func (s *ScheduleStore) RescheduleAppointment(id string, newStart time.Time) (models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			s.appointments[i].StartTime = newStart
			s.appointments[i].Status = models.StatusRescheduled
			return s.appointments[i], nil
		}
	}
	return models.Appointment{}, ErrNotFound
}

// AddAvailabilitySlot assigns a fresh id and appends the slot.
func (s *ScheduleStore) AddAvailabilitySlot(slot models.AvailabilitySlot) models.AvailabilitySlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot.ID = uuid.New().String()
	s.availability = append(s.availability, slot)
	return slot
}

// DeleteAvailabilitySlot removes the slot by id. Confirmation is the
// caller's responsibility before invoking this.
func (s *ScheduleStore) DeleteAvailabilitySlot(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, slot := range s.availability {
		if slot.ID == id {
			s.availability = append(s.availability[:i], s.availability[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
