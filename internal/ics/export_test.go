package ics

import (
	"strings"
	"testing"
	"time"

	"practmd-server/internal/models"
)

func TestBuildCalendar_AppointmentsAndOneOffSlots(t *testing.T) {
	appts := []models.Appointment{
		{
			ID:              "a1",
			Patient:         models.PatientRef{ID: "p1", Name: "Sarah Connor"},
			Status:          models.StatusScheduled,
			Type:            models.TypeFollowUp,
			StartTime:       time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			DurationMinutes: 30,
			Location:        "Room 302",
			Reason:          "Post-op checkup",
		},
		{
			ID:        "a2",
			Patient:   models.PatientRef{ID: "p5", Name: "Tony Stark"},
			Status:    models.StatusCancelled,
			Type:      models.TypeFollowUp,
			StartTime: time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC),
		},
	}
	slots := []models.AvailabilitySlot{
		{
			ID: "av2", Title: "Vacation", Type: models.AvailabilityLeave,
			OneOff: &models.DateSpan{
				Start: time.Date(2024, 1, 15, 7, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 1, 17, 19, 0, 0, 0, time.UTC),
			},
		},
	}

	cal, err := BuildCalendar(appts, slots, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("BuildCalendar: %v", err)
	}
	out := cal.Serialize()

	if !strings.Contains(out, "Sarah Connor") {
		t.Error("feed missing scheduled appointment summary")
	}
	if strings.Contains(out, "Tony Stark") {
		t.Error("cancelled appointment leaked into the feed")
	}
	if !strings.Contains(out, "appt-a1@practmd") {
		t.Error("feed missing appointment UID")
	}
	if !strings.Contains(out, "avail-av2@practmd") {
		t.Error("feed missing availability UID")
	}
}

func TestBuildCalendar_WeeklyRuleBecomesRRule(t *testing.T) {
	slots := []models.AvailabilitySlot{
		{
			ID: "av1", Title: "Lunch", Type: models.AvailabilityBreak,
			Weekly: &models.WeeklyRule{
				Days:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
				Start: models.ClockTime{Hour: 12},
				End:   models.ClockTime{Hour: 13},
			},
		},
	}

	// 2024-01-10 is a Wednesday, so the anchor is that day at noon.
	from := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	cal, err := BuildCalendar(nil, slots, from)
	if err != nil {
		t.Fatalf("BuildCalendar: %v", err)
	}
	out := cal.Serialize()

	if !strings.Contains(out, "FREQ=WEEKLY") {
		t.Error("feed missing weekly RRULE")
	}
	if !strings.Contains(out, "BYDAY=MO,WE,FR") {
		t.Error("feed missing BYDAY weekday set")
	}
	if !strings.Contains(out, "20240110T120000") {
		t.Error("weekly rule not anchored to the first matching day at its start clock")
	}
}

func TestBuildCalendar_RejectsEmptyWeekdaySet(t *testing.T) {
	slots := []models.AvailabilitySlot{
		{
			ID: "bad", Title: "Broken", Type: models.AvailabilityBreak,
			Weekly: &models.WeeklyRule{
				Start: models.ClockTime{Hour: 9},
				End:   models.ClockTime{Hour: 10},
			},
		},
	}
	if _, err := BuildCalendar(nil, slots, time.Now()); err == nil {
		t.Error("expected an error for a weekly rule with no weekdays")
	}
}
