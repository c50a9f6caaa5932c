package schedule

import (
	"testing"
	"time"

	"practmd-server/internal/models"
)

func weeklySlot(days []time.Weekday, start, end models.ClockTime) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		ID:    "w1",
		Title: "Lunch",
		Type:  models.AvailabilityBreak,
		Weekly: &models.WeeklyRule{
			Days:  days,
			Start: start,
			End:   end,
		},
	}
}

func oneOffSlot(start, end time.Time) models.AvailabilitySlot {
	return models.AvailabilitySlot{
		ID:     "o1",
		Title:  "Vacation",
		Type:   models.AvailabilityLeave,
		OneOff: &models.DateSpan{Start: start, End: end},
	}
}

func TestAppliesOnDay_WeeklyMatchesWeekdaySetOnly(t *testing.T) {
	slot := weeklySlot(
		[]time.Weekday{time.Monday, time.Wednesday, time.Friday},
		models.ClockTime{Hour: 12}, models.ClockTime{Hour: 13},
	)

	// 2024-01-08 is a Monday; walk two full weeks.
	start := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		day := start.AddDate(0, 0, i)
		want := day.Weekday() == time.Monday || day.Weekday() == time.Wednesday || day.Weekday() == time.Friday
		if got := AppliesOnDay(slot, day); got != want {
			t.Errorf("AppliesOnDay(%s %s) = %v, want %v", day.Format("2006-01-02"), day.Weekday(), got, want)
		}
	}
}

func TestAppliesOnDay_OneOffInclusiveRange(t *testing.T) {
	slot := oneOffSlot(
		time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 12, 17, 0, 0, 0, time.UTC),
	)

	cases := []struct {
		day  string
		want bool
	}{
		{"2024-01-09", false},
		{"2024-01-10", true},
		{"2024-01-11", true},
		{"2024-01-12", true},
		{"2024-01-13", false},
	}
	for _, tc := range cases {
		day, err := time.Parse("2006-01-02", tc.day)
		if err != nil {
			t.Fatalf("bad test date %q: %v", tc.day, err)
		}
		if got := AppliesOnDay(slot, day); got != tc.want {
			t.Errorf("AppliesOnDay(%s) = %v, want %v", tc.day, got, tc.want)
		}
	}
}

func TestAppliesOnDay_OneOffSingleDay(t *testing.T) {
	// Start and end on the same calendar day; the range check must still match it.
	slot := oneOffSlot(
		time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 5, 13, 0, 0, 0, time.UTC),
	)
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	if !AppliesOnDay(slot, day) {
		t.Error("expected single-day one-off slot to match its own day")
	}
	if AppliesOnDay(slot, day.AddDate(0, 0, 1)) {
		t.Error("expected single-day one-off slot not to match the next day")
	}
}

func TestAppliesInHour_ExactHourEndExcluded(t *testing.T) {
	slot := weeklySlot(
		[]time.Weekday{time.Monday},
		models.ClockTime{Hour: 9}, models.ClockTime{Hour: 10},
	)

	if !AppliesInHour(slot, 9) {
		t.Error("slot 09:00-10:00 should occupy hour 9")
	}
	if AppliesInHour(slot, 10) {
		t.Error("slot 09:00-10:00 should not occupy hour 10 (exact-hour end)")
	}
}

func TestAppliesInHour_PartialHourEndIncluded(t *testing.T) {
	slot := weeklySlot(
		[]time.Weekday{time.Monday},
		models.ClockTime{Hour: 9}, models.ClockTime{Hour: 10, Minute: 30},
	)

	for _, hour := range []int{9, 10} {
		if !AppliesInHour(slot, hour) {
			t.Errorf("slot 09:00-10:30 should occupy hour %d", hour)
		}
	}
	if AppliesInHour(slot, 11) {
		t.Error("slot 09:00-10:30 should not occupy hour 11")
	}
}

func TestAppliesInHour_SpanningHours(t *testing.T) {
	slot := oneOffSlot(
		time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC),
		time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
	)

	cases := map[int]bool{
		7:  false,
		8:  true, // starts here
		9:  true, // spans through
		10: true,
		11: true,
		12: false, // ends exactly on the boundary
	}
	for hour, want := range cases {
		if got := AppliesInHour(slot, hour); got != want {
			t.Errorf("AppliesInHour(hour=%d) = %v, want %v", hour, got, want)
		}
	}
}
