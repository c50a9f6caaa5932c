package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"practmd-server/internal/models"
	"practmd-server/internal/store"
	"practmd-server/internal/utils"
)

// AvailabilityHandler handles provider availability slots.
type AvailabilityHandler struct {
	Store *store.ScheduleStore
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(s *store.ScheduleStore) *AvailabilityHandler {
	return &AvailabilityHandler{Store: s}
}

// ListAvailability handles GET /availability.
func (h *AvailabilityHandler) ListAvailability(c *gin.Context) {
	utils.Success(c, "Availability slots retrieved successfully", h.Store.AvailabilitySlots())
}

// CreateAvailabilityRequest is the draft form for a new availability slot.
// Recurring slots use recurringDays; one-off slots use startDate/endDate.
type CreateAvailabilityRequest struct {
	Title         string `json:"title" binding:"required"`
	Type          string `json:"type" binding:"required,oneof=Leave Break OnCall"`
	IsRecurring   bool   `json:"isRecurring"`
	RecurringDays []int  `json:"recurringDays" binding:"omitempty,dive,min=0,max=6"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	StartTime     string `json:"startTime" binding:"required"`
	EndTime       string `json:"endTime" binding:"required"`
}

// CreateAvailability handles POST /availability.
func (h *AvailabilityHandler) CreateAvailability(c *gin.Context) {
	var req CreateAvailabilityRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	startClock, err := models.ParseClockTime(req.StartTime)
	if err != nil {
		utils.BadRequest(c, "startTime must be formatted as HH:MM")
		return
	}
	endClock, err := models.ParseClockTime(req.EndTime)
	if err != nil {
		utils.BadRequest(c, "endTime must be formatted as HH:MM")
		return
	}

	slot := models.AvailabilitySlot{
		Title: req.Title,
		Type:  models.AvailabilityType(req.Type),
	}

	if req.IsRecurring {
		if len(req.RecurringDays) == 0 {
			utils.BadRequest(c, "recurringDays must not be empty for a recurring slot")
			return
		}
		days := make([]time.Weekday, 0, len(req.RecurringDays))
		for _, d := range req.RecurringDays {
			days = append(days, time.Weekday(d))
		}
		slot.Weekly = &models.WeeklyRule{Days: days, Start: startClock, End: endClock}
	} else {
		if req.StartDate == "" || req.EndDate == "" {
			utils.BadRequest(c, "startDate and endDate are required for a one-off slot")
			return
		}
		startDay, err := time.ParseInLocation(dateParamLayout, req.StartDate, time.Local)
		if err != nil {
			utils.BadRequest(c, "startDate must be formatted as YYYY-MM-DD")
			return
		}
		endDay, err := time.ParseInLocation(dateParamLayout, req.EndDate, time.Local)
		if err != nil {
			utils.BadRequest(c, "endDate must be formatted as YYYY-MM-DD")
			return
		}
		slot.OneOff = &models.DateSpan{
			Start: startClock.On(startDay),
			End:   endClock.On(endDay),
		}
	}

	created := h.Store.AddAvailabilitySlot(slot)
	utils.Created(c, "Availability slot created successfully", created)
}

// DeleteAvailability handles DELETE /availability/:id. Deletion requires an
// explicit confirm=true query parameter.
func (h *AvailabilityHandler) DeleteAvailability(c *gin.Context) {
	if c.Query("confirm") != "true" {
		utils.BadRequest(c, "Deletion must be confirmed with confirm=true")
		return
	}

	if err := h.Store.DeleteAvailabilitySlot(c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Availability slot not found")
			return
		}
		utils.InternalServerError(c, "Failed to delete availability slot")
		return
	}
	utils.Success(c, "Availability slot deleted successfully", nil)
}
