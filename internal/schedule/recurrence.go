package schedule

import (
	"time"

	"practmd-server/internal/models"
)

// DateOnly truncates a timestamp to midnight of its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// AppliesOnDay reports whether an availability slot is visible on the given
// calendar day. A weekly slot matches purely on its weekday set; a one-off
// slot matches any day inside its date range, inclusive on both ends. The
// inclusive range check subsumes the start-date-equality case, so single-day
// and multi-day one-off slots go through the same path.
func AppliesOnDay(s models.AvailabilitySlot, day time.Time) bool {
	if s.Weekly != nil {
		return s.Weekly.OnDay(day.Weekday())
	}
	d := DateOnly(day)
	start := DateOnly(s.OneOff.Start)
	end := DateOnly(s.OneOff.End)
	return !d.Before(start) && !d.After(end)
}

// AppliesInHour reports whether the slot occupies any part of the given hour
// bucket. The slot is counted when it starts in the hour, spans through it,
// or ends partway into it. A slot ending exactly on the hour boundary
// (minute 0) does not occupy that hour.
func AppliesInHour(s models.AvailabilitySlot, hour int) bool {
	start := s.StartClock()
	end := s.EndClock()

	if hour > start.Hour && hour < end.Hour {
		return true
	}
	if hour == start.Hour {
		return true
	}
	if hour == end.Hour && end.Minute > 0 {
		return true
	}
	return false
}
