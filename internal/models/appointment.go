package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled   AppointmentStatus = "Scheduled"
	StatusCheckedIn   AppointmentStatus = "Checked In"
	StatusInProgress  AppointmentStatus = "In Progress"
	StatusCompleted   AppointmentStatus = "Completed"
	StatusCancelled   AppointmentStatus = "Cancelled"
	StatusNoShow      AppointmentStatus = "No Show"
	StatusRescheduled AppointmentStatus = "Rescheduled"
)

// AppointmentType represents the kind of visit
type AppointmentType string

const (
	TypeNewPatient   AppointmentType = "New Patient"
	TypeFollowUp     AppointmentType = "Follow-up"
	TypeConsultation AppointmentType = "Consultation"
	TypeProcedure    AppointmentType = "Procedure"
	TypeUrgent       AppointmentType = "Urgent"
	TypeTelehealth   AppointmentType = "Telehealth"
)

// PatientRef is a weak reference into the patient directory, carrying only
// the display fields the schedule needs. The directory owns the full record.
type PatientRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	MRN   string `json:"mrn"`
	DOB   string `json:"dob"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Appointment represents a scheduled patient visit
type Appointment struct {
	ID              string            `json:"id"`
	Patient         PatientRef        `json:"patient"`
	Status          AppointmentStatus `json:"status"`
	Type            AppointmentType   `json:"type"`
	StartTime       time.Time         `json:"startTime"`
	DurationMinutes int               `json:"durationMinutes"`
	Reason          string            `json:"reason,omitempty"`
	Location        string            `json:"location"`
	Provider        string            `json:"provider"`
	TelehealthLink  string            `json:"telehealthLink,omitempty"`
	InsuranceStatus string            `json:"insuranceStatus,omitempty"`
}

// EndTime returns the appointment's end derived from its duration.
func (a Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
