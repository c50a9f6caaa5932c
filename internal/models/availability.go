package models

import (
	"fmt"
	"time"
)

// AvailabilityType classifies a blocked-out stretch of provider time
type AvailabilityType string

const (
	AvailabilityLeave  AvailabilityType = "Leave"
	AvailabilityBreak  AvailabilityType = "Break"
	AvailabilityOnCall AvailabilityType = "OnCall"
)

// ClockTime is a time of day with minute resolution, independent of any date.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a "15:04" style string.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// ClockOf extracts the time-of-day component of a timestamp.
func ClockOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// On anchors the clock time onto the given day's date.
func (c ClockTime) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, day.Location())
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalJSON renders the clock time as "HH:MM".
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON accepts "HH:MM".
func (c *ClockTime) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid clock time %s", string(b))
	}
	parsed, err := ParseClockTime(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// DateSpan is a one-off absolute time range. Start and End carry both the
// date and time-of-day components.
type DateSpan struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// WeeklyRule repeats a time-of-day range on a fixed set of weekdays.
// No reference date is involved; only the weekday set and clock range matter.
type WeeklyRule struct {
	Days  []time.Weekday `json:"days"`
	Start ClockTime      `json:"startTime"`
	End   ClockTime      `json:"endTime"`
}

// OnDay reports whether the rule fires on the given weekday.
func (r WeeklyRule) OnDay(d time.Weekday) bool {
	for _, day := range r.Days {
		if day == d {
			return true
		}
	}
	return false
}

// AvailabilitySlot blocks out provider time on the calendar. Exactly one of
// OneOff or Weekly is set: OneOff spans an absolute date range, Weekly
// repeats a clock range on selected weekdays.
type AvailabilitySlot struct {
	ID     string           `json:"id"`
	Title  string           `json:"title"`
	Type   AvailabilityType `json:"type"`
	OneOff *DateSpan        `json:"oneOff,omitempty"`
	Weekly *WeeklyRule      `json:"weekly,omitempty"`
}

// Recurring reports whether the slot follows a weekly rule.
func (s AvailabilitySlot) Recurring() bool {
	return s.Weekly != nil
}

// StartClock resolves the slot's starting time of day for either variant.
func (s AvailabilitySlot) StartClock() ClockTime {
	if s.Weekly != nil {
		return s.Weekly.Start
	}
	return ClockOf(s.OneOff.Start)
}

// EndClock resolves the slot's ending time of day for either variant.
func (s AvailabilitySlot) EndClock() ClockTime {
	if s.Weekly != nil {
		return s.Weekly.End
	}
	return ClockOf(s.OneOff.End)
}
