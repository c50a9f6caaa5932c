package schedule

import (
	"time"

	"practmd-server/internal/models"
)

// ViewMode selects the calendar layout.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// The visible grid covers 7 AM through 7 PM inclusive, 13 one-hour rows.
// Appointments starting outside this window are not rendered anywhere.
const (
	FirstHour = 7
	LastHour  = 19
)

// MonthDayCap is the number of entries a month cell shows before
// collapsing the rest into an overflow count.
const MonthDayCap = 3

// VisibleHours returns the hour-row labels of the Day/Week grid.
func VisibleHours() []int {
	hours := make([]int, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// AppointmentBlock is an appointment placed in an hour row.
type AppointmentBlock struct {
	Appointment models.Appointment `json:"appointment"`
	Geometry    Geometry           `json:"geometry"`
}

// AvailabilityBlock is an availability slot's visible portion in an hour row.
type AvailabilityBlock struct {
	Slot     models.AvailabilitySlot `json:"slot"`
	Geometry Geometry                `json:"geometry"`
}

// HourBucket is one hour row of a day column.
type HourBucket struct {
	Hour         int                 `json:"hour"`
	Appointments []AppointmentBlock  `json:"appointments"`
	Availability []AvailabilityBlock `json:"availability"`
}

// DayColumn is a full day of hour rows.
type DayColumn struct {
	Date    time.Time    `json:"date"`
	Weekday time.Weekday `json:"weekday"`
	Hours   []HourBucket `json:"hours"`
}

// WeekPlan is seven consecutive day columns starting on Sunday.
type WeekPlan struct {
	Days []DayColumn `json:"days"`
}

// MonthDay is one cell of the month grid: up to MonthDayCap appointments in
// insertion order, an overflow count, and a leave marker.
type MonthDay struct {
	Date          time.Time            `json:"date"`
	Appointments  []models.Appointment `json:"appointments"`
	OverflowCount int                  `json:"overflowCount"`
	OnLeave       bool                 `json:"onLeave"`
}

// MonthPlan is the month grid. LeadingBlanks is the number of empty cells
// before the 1st so that columns line up with weekdays; there is no trailing
// padding.
type MonthPlan struct {
	LeadingBlanks int        `json:"leadingBlanks"`
	Days          []MonthDay `json:"days"`
}

// DayAppointments returns the appointments falling on the given calendar day,
// in collection order.
func DayAppointments(appointments []models.Appointment, day time.Time) []models.Appointment {
	var out []models.Appointment
	for _, a := range appointments {
		if SameDay(a.StartTime, day) {
			out = append(out, a)
		}
	}
	return out
}

// BuildDay produces the render plan for a single day.
func BuildDay(appointments []models.Appointment, slots []models.AvailabilitySlot, ref time.Time) DayColumn {
	return buildDayColumn(DayAppointments(appointments, ref), slots, DateOnly(ref))
}

// BuildWeek produces the render plan for the Sunday-started week containing
// the reference date.
func BuildWeek(appointments []models.Appointment, slots []models.AvailabilitySlot, ref time.Time) WeekPlan {
	start := WeekStart(ref)
	plan := WeekPlan{Days: make([]DayColumn, 0, 7)}
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		plan.Days = append(plan.Days, buildDayColumn(DayAppointments(appointments, day), slots, day))
	}
	return plan
}

// BuildMonth produces the render plan for the calendar month containing the
// reference date.
func BuildMonth(appointments []models.Appointment, slots []models.AvailabilitySlot, ref time.Time) MonthPlan {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	plan := MonthPlan{
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]MonthDay, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(ref.Year(), ref.Month(), d, 0, 0, 0, 0, ref.Location())
		dayAppts := DayAppointments(appointments, day)

		cell := MonthDay{
			Date:         day,
			Appointments: dayAppts,
			OnLeave:      onLeave(slots, day),
		}
		if len(dayAppts) > MonthDayCap {
			cell.Appointments = dayAppts[:MonthDayCap]
			cell.OverflowCount = len(dayAppts) - MonthDayCap
		}
		plan.Days = append(plan.Days, cell)
	}
	return plan
}

func buildDayColumn(dayAppts []models.Appointment, slots []models.AvailabilitySlot, day time.Time) DayColumn {
	col := DayColumn{
		Date:    day,
		Weekday: day.Weekday(),
		Hours:   make([]HourBucket, 0, LastHour-FirstHour+1),
	}

	for _, hour := range VisibleHours() {
		bucket := HourBucket{Hour: hour}

		for _, s := range slots {
			if AppliesOnDay(s, day) && AppliesInHour(s, hour) {
				bucket.Availability = append(bucket.Availability, AvailabilityBlock{
					Slot:     s,
					Geometry: SlotGeometry(s, hour),
				})
			}
		}

		for _, a := range dayAppts {
			if a.StartTime.Hour() == hour {
				bucket.Appointments = append(bucket.Appointments, AppointmentBlock{
					Appointment: a,
					Geometry:    AppointmentGeometry(a),
				})
			}
		}

		col.Hours = append(col.Hours, bucket)
	}
	return col
}

// onLeave marks a month cell when a Leave slot covers that day. It shares
// AppliesOnDay with the hour-bucket gathering so the two stay consistent.
func onLeave(slots []models.AvailabilitySlot, day time.Time) bool {
	for _, s := range slots {
		if s.Type == models.AvailabilityLeave && AppliesOnDay(s, day) {
			return true
		}
	}
	return false
}
