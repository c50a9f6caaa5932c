package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"practmd-server/internal/ics"
	"practmd-server/internal/schedule"
	"practmd-server/internal/store"
	"practmd-server/internal/utils"
)

// ScheduleHandler serves the calendar render plans and the ICS feed.
type ScheduleHandler struct {
	Store *store.ScheduleStore
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(s *store.ScheduleStore) *ScheduleHandler {
	return &ScheduleHandler{Store: s}
}

// Navigation carries the reference dates the toolbar buttons jump to.
type Navigation struct {
	Prev  string `json:"prev"`
	Next  string `json:"next"`
	Today string `json:"today"`
}

// ScheduleViewResponse is the render plan for one view mode. Exactly one of
// Day, Week or Month is populated.
type ScheduleViewResponse struct {
	Mode          schedule.ViewMode   `json:"mode"`
	ReferenceDate string              `json:"referenceDate"`
	HeaderLabel   string              `json:"headerLabel"`
	Hours         []int               `json:"hours,omitempty"`
	Navigation    Navigation          `json:"navigation"`
	Day           *schedule.DayColumn `json:"day,omitempty"`
	Week          *schedule.WeekPlan  `json:"week,omitempty"`
	Month         *schedule.MonthPlan `json:"month,omitempty"`
}

const dateParamLayout = "2006-01-02"

// GetView handles GET /schedule/view: it reconciles the appointment and
// availability collections against the requested calendar grid.
func (h *ScheduleHandler) GetView(c *gin.Context) {
	mode := schedule.ViewMode(c.DefaultQuery("mode", string(schedule.ViewWeek)))
	switch mode {
	case schedule.ViewDay, schedule.ViewWeek, schedule.ViewMonth:
	default:
		utils.BadRequest(c, "mode must be one of day, week, month")
		return
	}

	ref := schedule.Today(time.Now())
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation(dateParamLayout, dateStr, time.Local)
		if err != nil {
			utils.BadRequest(c, "date must be formatted as YYYY-MM-DD")
			return
		}
		ref = parsed
	}

	appointments := h.Store.Appointments()
	slots := h.Store.AvailabilitySlots()

	resp := ScheduleViewResponse{
		Mode:          mode,
		ReferenceDate: ref.Format(dateParamLayout),
		HeaderLabel:   schedule.HeaderLabel(mode, ref),
		Navigation: Navigation{
			Prev:  schedule.Prev(mode, ref).Format(dateParamLayout),
			Next:  schedule.Next(mode, ref).Format(dateParamLayout),
			Today: schedule.Today(time.Now()).Format(dateParamLayout),
		},
	}

	switch mode {
	case schedule.ViewDay:
		plan := schedule.BuildDay(appointments, slots, ref)
		resp.Day = &plan
		resp.Hours = schedule.VisibleHours()
	case schedule.ViewWeek:
		plan := schedule.BuildWeek(appointments, slots, ref)
		resp.Week = &plan
		resp.Hours = schedule.VisibleHours()
	case schedule.ViewMonth:
		plan := schedule.BuildMonth(appointments, slots, ref)
		resp.Month = &plan
	}

	utils.Success(c, "Schedule view built successfully", resp)
}

// ExportICS handles GET /schedule/export, returning the schedule as an
// iCalendar feed.
func (h *ScheduleHandler) ExportICS(c *gin.Context) {
	cal, err := ics.BuildCalendar(h.Store.Appointments(), h.Store.AvailabilitySlots(), time.Now())
	if err != nil {
		utils.InternalServerError(c, "Failed to build calendar feed: "+err.Error())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="practmd-schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}
