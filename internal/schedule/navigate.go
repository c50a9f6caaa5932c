package schedule

import (
	"fmt"
	"time"
)

// WeekStart returns midnight of the Sunday of the week containing ref.
func WeekStart(ref time.Time) time.Time {
	return DateOnly(ref).AddDate(0, 0, -int(ref.Weekday()))
}

// Next advances the reference date by one step of the active view:
// a day, a week, or a calendar month. Navigation is unbounded.
func Next(mode ViewMode, ref time.Time) time.Time {
	return step(mode, ref, 1)
}

// Prev moves the reference date back by one step of the active view.
func Prev(mode ViewMode, ref time.Time) time.Time {
	return step(mode, ref, -1)
}

func step(mode ViewMode, ref time.Time, dir int) time.Time {
	switch mode {
	case ViewDay:
		return ref.AddDate(0, 0, dir)
	case ViewWeek:
		return ref.AddDate(0, 0, 7*dir)
	case ViewMonth:
		return ref.AddDate(0, dir, 0)
	}
	return ref
}

// Today resets navigation to the current date.
func Today(now time.Time) time.Time {
	return DateOnly(now)
}

// HeaderLabel formats the toolbar heading for the active view.
func HeaderLabel(mode ViewMode, ref time.Time) string {
	switch mode {
	case ViewDay:
		return ref.Format("Monday, January 2")
	case ViewMonth:
		return ref.Format("January 2006")
	default:
		start := WeekStart(ref)
		end := start.AddDate(0, 0, 6)
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	}
}
