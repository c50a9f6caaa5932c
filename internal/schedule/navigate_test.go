package schedule

import (
	"testing"
	"time"
)

func TestNavigation_StepSizes(t *testing.T) {
	ref := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	if got := Next(ViewDay, ref); got.Day() != 11 {
		t.Errorf("Next(day) = %s, want 2024-01-11", got.Format("2006-01-02"))
	}
	if got := Prev(ViewDay, ref); got.Day() != 9 {
		t.Errorf("Prev(day) = %s, want 2024-01-09", got.Format("2006-01-02"))
	}
	if got := Next(ViewWeek, ref); got.Day() != 17 {
		t.Errorf("Next(week) = %s, want 2024-01-17", got.Format("2006-01-02"))
	}
	if got := Next(ViewMonth, ref); got.Month() != time.February {
		t.Errorf("Next(month) = %s, want February", got.Format("2006-01-02"))
	}
	if got := Prev(ViewMonth, ref); got.Month() != time.December || got.Year() != 2023 {
		t.Errorf("Prev(month) = %s, want 2023-12-10", got.Format("2006-01-02"))
	}
}

func TestWeekStart(t *testing.T) {
	cases := []struct {
		ref  string
		want string
	}{
		{"2024-01-10", "2024-01-07"}, // Wednesday -> previous Sunday
		{"2024-01-07", "2024-01-07"}, // Sunday maps to itself
		{"2024-01-13", "2024-01-07"}, // Saturday
		{"2024-01-01", "2023-12-31"}, // week crossing a year boundary
	}
	for _, tc := range cases {
		ref, err := time.Parse("2006-01-02", tc.ref)
		if err != nil {
			t.Fatalf("bad test date %q: %v", tc.ref, err)
		}
		got := WeekStart(ref)
		if got.Format("2006-01-02") != tc.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tc.ref, got.Format("2006-01-02"), tc.want)
		}
		if got.Weekday() != time.Sunday {
			t.Errorf("WeekStart(%s) falls on %s", tc.ref, got.Weekday())
		}
	}
}

func TestHeaderLabel(t *testing.T) {
	ref := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	if got := HeaderLabel(ViewDay, ref); got != "Wednesday, January 10" {
		t.Errorf("day label = %q", got)
	}
	if got := HeaderLabel(ViewMonth, ref); got != "January 2024" {
		t.Errorf("month label = %q", got)
	}
	if got := HeaderLabel(ViewWeek, ref); got != "Jan 7 - Jan 13, 2024" {
		t.Errorf("week label = %q", got)
	}
}
