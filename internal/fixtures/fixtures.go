// Package fixtures seeds the in-memory stores. All data is mock: the service
// has no persistence, so every boot starts from this snapshot, anchored to
// the current date so the default views have content.
package fixtures

import (
	"time"

	"practmd-server/internal/models"
)

// PracticeInfo describes the practice for display and calendar metadata.
type PracticeInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Practice is the mocked practice identity.
var Practice = PracticeInfo{
	Name:    "Pract MD Medical Group",
	Address: "123 Healthcare Blvd, Suite 100, Springfield, IL 62704",
	Phone:   "(555) 123-4567",
}

// Patients returns the seed patient roster.
func Patients() []models.Patient {
	return []models.Patient{
		{
			ID: "p1", FirstName: "Sarah", LastName: "Connor", MRN: "88421",
			DOB: "1984-05-12", Gender: "Female",
			Email: "sarah.connor@example.com", Phone: "(555) 123-4567",
			Address:          models.Address{Street: "123 SkyNet Blvd", City: "Los Angeles", State: "CA", Zip: "90001"},
			RegistrationDate: "2023-01-15", Status: models.PatientActive, InsuranceStatus: "Verified",
		},
		{
			ID: "p2", FirstName: "James", LastName: "Howlett", MRN: "99211",
			DOB: "1970-01-01", Gender: "Male",
			Email: "james.howlett@example.com", Phone: "(555) 987-6543",
			Address:          models.Address{Street: "17 Birch Rd", City: "Edmonton", State: "AB", Zip: "T5J"},
			RegistrationDate: "2023-03-02", Status: models.PatientActive, InsuranceStatus: "Pending Verification",
		},
		{
			ID: "p3", FirstName: "Diana", LastName: "Prince", MRN: "11234",
			DOB: "1990-03-21", Gender: "Female",
			Email: "diana.prince@example.com", Phone: "(555) 888-8888",
			Address:          models.Address{Street: "9 Paradise Way", City: "Washington", State: "DC", Zip: "20001"},
			RegistrationDate: "2024-06-11", Status: models.PatientActive, InsuranceStatus: "Verified",
		},
		{
			ID: "p4", FirstName: "Wade", LastName: "Wilson", MRN: "55122",
			DOB: "1988-11-02", Gender: "Male",
			Email: "wade.wilson@example.com", Phone: "(555) 555-0199",
			Address:          models.Address{Street: "42 Blind Al Ct", City: "New York", State: "NY", Zip: "10002"},
			RegistrationDate: "2022-09-30", Status: models.PatientActive, InsuranceStatus: "Rejected",
		},
		{
			ID: "p5", FirstName: "Tony", LastName: "Stark", MRN: "77711",
			DOB: "1975-05-29", Gender: "Male",
			Email: "tony.stark@example.com", Phone: "(555) 314-1592",
			Address:          models.Address{Street: "10880 Malibu Point", City: "Malibu", State: "CA", Zip: "90265"},
			RegistrationDate: "2021-04-04", Status: models.PatientActive, InsuranceStatus: "Verified",
		},
		{
			ID: "p6", FirstName: "Steve", LastName: "Rogers", MRN: "19201",
			DOB: "1920-07-04", Gender: "Male",
			Email: "steve.rogers@example.com", Phone: "(555) 194-5678",
			Address:          models.Address{Street: "569 Leaman Place", City: "Brooklyn", State: "NY", Zip: "11201"},
			RegistrationDate: "2023-07-04", Status: models.PatientInactive, InsuranceStatus: "Verified",
		},
	}
}

// Appointments returns the seed schedule, anchored to today.
func Appointments(now time.Time) []models.Appointment {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	at := func(hour, minute int) time.Time {
		return today.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}

	patients := Patients()
	ref := func(i int) models.PatientRef { return patients[i].Ref() }

	return []models.Appointment{
		{
			ID: "a1", Patient: ref(0), Status: models.StatusCheckedIn, Type: models.TypeFollowUp,
			StartTime: at(9, 0), DurationMinutes: 30, Reason: "Post-op checkup",
			Location: "Room 302", Provider: "Dr. Smith", InsuranceStatus: "Verified",
		},
		{
			ID: "a2", Patient: ref(1), Status: models.StatusInProgress, Type: models.TypeConsultation,
			StartTime: at(9, 30), DurationMinutes: 45, Reason: "Chronic joint pain",
			Location: "Room 101", Provider: "Dr. Smith", InsuranceStatus: "Pending",
		},
		{
			ID: "a3", Patient: ref(2), Status: models.StatusScheduled, Type: models.TypeNewPatient,
			StartTime: at(10, 30), DurationMinutes: 60, Reason: "Initial intake",
			Location: "Room 205", Provider: "Dr. Smith", InsuranceStatus: "Verified",
		},
		{
			ID: "a4", Patient: ref(3), Status: models.StatusScheduled, Type: models.TypeUrgent,
			StartTime: at(13, 0), DurationMinutes: 15, Reason: "Skin rash",
			Location: "Room 302", Provider: "Dr. Smith", InsuranceStatus: "Rejected",
		},
		{
			ID: "a5", Patient: ref(4), Status: models.StatusCancelled, Type: models.TypeFollowUp,
			StartTime: at(14, 0), DurationMinutes: 30, Reason: "Cardiac review",
			Location: "Room 404", Provider: "Dr. Smith", InsuranceStatus: "Verified",
		},
		{
			ID: "a6", Patient: ref(5), Status: models.StatusScheduled, Type: models.TypeTelehealth,
			StartTime: at(15, 0), DurationMinutes: 30, Reason: "Mental health check",
			Location: "Telehealth", TelehealthLink: "https://meet.practmd.com/v/rogers-123",
			Provider: "Dr. Smith", InsuranceStatus: "Verified",
		},
		{
			ID: "a7", Patient: ref(2), Status: models.StatusScheduled, Type: models.TypeFollowUp,
			StartTime: at(11, 0).AddDate(0, 0, 1), DurationMinutes: 30, Reason: "Lab results review",
			Location: "Room 205", Provider: "Dr. Smith", InsuranceStatus: "Verified",
		},
		{
			ID: "a8", Patient: ref(1), Status: models.StatusScheduled, Type: models.TypeProcedure,
			StartTime: at(8, 0).AddDate(0, 0, 2), DurationMinutes: 90, Reason: "Minor surgery",
			Location: "OR 2", Provider: "Dr. Smith", InsuranceStatus: "Verified",
		},
	}
}

// AvailabilitySlots returns the seed time-off and break rules.
func AvailabilitySlots(now time.Time) []models.AvailabilitySlot {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// A one-off vacation starting next Monday, three days long.
	nextMonday := today.AddDate(0, 0, (8-int(today.Weekday()))%7)
	if nextMonday.Equal(today) {
		nextMonday = today.AddDate(0, 0, 7)
	}

	return []models.AvailabilitySlot{
		{
			ID: "av1", Title: "Lunch", Type: models.AvailabilityBreak,
			Weekly: &models.WeeklyRule{
				Days: []time.Weekday{
					time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
				},
				Start: models.ClockTime{Hour: 12},
				End:   models.ClockTime{Hour: 13},
			},
		},
		{
			ID: "av2", Title: "Vacation", Type: models.AvailabilityLeave,
			OneOff: &models.DateSpan{
				Start: nextMonday.Add(7 * time.Hour),
				End:   nextMonday.AddDate(0, 0, 2).Add(19 * time.Hour),
			},
		},
		{
			ID: "av3", Title: "On Call", Type: models.AvailabilityOnCall,
			Weekly: &models.WeeklyRule{
				Days:  []time.Weekday{time.Saturday},
				Start: models.ClockTime{Hour: 8},
				End:   models.ClockTime{Hour: 17, Minute: 30},
			},
		},
	}
}
