// Package ics renders the practice schedule as an iCalendar feed.
// Appointments become plain VEVENTs; weekly availability rules are
// serialized as RRULEs so subscribing calendars repeat them.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"practmd-server/internal/models"
)

const productID = "-//Pract MD//Scheduling//EN"

var rruleWeekdays = map[time.Weekday]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// BuildCalendar assembles the feed. Cancelled appointments are omitted.
// Weekly availability is anchored to its first occurrence on or after `from`.
func BuildCalendar(appointments []models.Appointment, slots []models.AvailabilitySlot, from time.Time) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	now := time.Now()

	for _, a := range appointments {
		if a.Status == models.StatusCancelled {
			continue
		}
		ev := cal.AddEvent(fmt.Sprintf("appt-%s@practmd", a.ID))
		ev.SetDtStampTime(now)
		ev.SetStartAt(a.StartTime)
		ev.SetEndAt(a.EndTime())
		ev.SetSummary(fmt.Sprintf("%s - %s", a.Patient.Name, a.Type))
		ev.SetLocation(a.Location)
		if a.Reason != "" {
			ev.SetDescription(a.Reason)
		}
	}

	for _, s := range slots {
		ev := cal.AddEvent(fmt.Sprintf("avail-%s@practmd", s.ID))
		ev.SetDtStampTime(now)
		ev.SetSummary(fmt.Sprintf("%s (%s)", s.Title, s.Type))

		if s.Weekly != nil {
			anchor, err := firstOccurrence(*s.Weekly, from)
			if err != nil {
				return nil, err
			}
			ev.SetStartAt(anchor)
			ev.SetEndAt(time.Date(anchor.Year(), anchor.Month(), anchor.Day(),
				s.Weekly.End.Hour, s.Weekly.End.Minute, 0, 0, anchor.Location()))

			rule, err := weeklyRRule(*s.Weekly)
			if err != nil {
				return nil, err
			}
			ev.AddRrule(rule)
			continue
		}

		ev.SetStartAt(s.OneOff.Start)
		ev.SetEndAt(s.OneOff.End)
	}

	return cal, nil
}

// weeklyRRule renders a weekly rule as an RRULE value string.
func weeklyRRule(rule models.WeeklyRule) (string, error) {
	if len(rule.Days) == 0 {
		return "", fmt.Errorf("weekly rule has no weekdays")
	}
	days := make([]rrule.Weekday, 0, len(rule.Days))
	for _, d := range rule.Days {
		days = append(days, rruleWeekdays[d])
	}
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: days,
	})
	if err != nil {
		return "", fmt.Errorf("building rrule: %w", err)
	}
	return r.String(), nil
}

// firstOccurrence finds the rule's first firing on or after `from`,
// at the rule's starting clock time.
func firstOccurrence(rule models.WeeklyRule, from time.Time) (time.Time, error) {
	if len(rule.Days) == 0 {
		return time.Time{}, fmt.Errorf("weekly rule has no weekdays")
	}
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for i := 0; i < 7; i++ {
		if rule.OnDay(day.Weekday()) {
			return day.Add(time.Duration(rule.Start.Hour)*time.Hour +
				time.Duration(rule.Start.Minute)*time.Minute), nil
		}
		day = day.AddDate(0, 0, 1)
	}
	return time.Time{}, fmt.Errorf("weekly rule never fires")
}
