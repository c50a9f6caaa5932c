package schedule

import (
	"practmd-server/internal/models"
)

// Geometry is the normalized vertical placement of a block inside a
// fixed-height hour row, expressed as percentages for absolute positioning.
type Geometry struct {
	TopPercent    float64 `json:"topPercent"`
	HeightPercent float64 `json:"heightPercent"`
}

// SlotGeometry positions an availability slot's visible portion within one
// hour row. A slot that started in an earlier hour is pinned to the row top;
// a slot that continues past the row is capped at the row bottom. An end
// exactly on this hour's boundary leaves nothing to draw here (the filter in
// AppliesInHour excludes that case when the slot also starts on the
// boundary, so this is only reachable for slots begun in earlier hours).
func SlotGeometry(s models.AvailabilitySlot, hour int) Geometry {
	start := s.StartClock()
	end := s.EndClock()

	startMin := start.Minute
	if start.Hour < hour {
		startMin = 0
	}

	var endMin int
	switch {
	case end.Hour > hour:
		endMin = 60
	case end.Hour == hour:
		endMin = end.Minute
	default:
		endMin = 0
	}

	height := float64(endMin-startMin) / 60 * 100
	if height < 0 {
		// Inverted ranges (end before start) would render upside down.
		height = 0
	}

	return Geometry{
		TopPercent:    float64(startMin) / 60 * 100,
		HeightPercent: height,
	}
}

// AppointmentGeometry positions an appointment inside its starting hour row.
// Appointments are drawn once, in the row their start time falls into, with
// the height taken from the full duration; a long visit visually overflows
// into the rows below rather than being clipped per row.
func AppointmentGeometry(a models.Appointment) Geometry {
	return Geometry{
		TopPercent:    float64(a.StartTime.Minute()) / 60 * 100,
		HeightPercent: float64(a.DurationMinutes) / 60 * 100,
	}
}
