package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"practmd-server/internal/models"
	"practmd-server/internal/store"
	"practmd-server/internal/utils"
)

// AppointmentHandler handles appointment listing and state changes.
type AppointmentHandler struct {
	Store *store.ScheduleStore
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(s *store.ScheduleStore) *AppointmentHandler {
	return &AppointmentHandler{Store: s}
}

// AppointmentPage is the paginated envelope for appointment listings.
type AppointmentPage struct {
	Items    []models.Appointment `json:"items"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

// ListAppointments handles GET /appointments with optional search and paging.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	search := c.Query("search")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.BadRequest(c, "page must be a positive integer")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 {
		utils.BadRequest(c, "pageSize must be a positive integer")
		return
	}

	items, total := h.Store.SearchAppointments(search, page, pageSize)
	utils.Success(c, "Appointments retrieved successfully", AppointmentPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// GetAppointmentByID handles GET /appointments/:id.
func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appt, err := h.Store.Appointment(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
			return
		}
		utils.InternalServerError(c, "Failed to retrieve appointment")
		return
	}
	utils.Success(c, "Appointment retrieved successfully", appt)
}

// UpdateStatusRequest carries the new appointment status. Any non-empty
// value is accepted; the practice front desk uses free-form workflow states.
type UpdateStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required"`
}

// UpdateAppointmentStatus handles PATCH /appointments/:id/status.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt, err := h.Store.SetAppointmentStatus(c.Param("id"), req.Status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
			return
		}
		utils.InternalServerError(c, "Failed to update appointment status")
		return
	}
	utils.Success(c, "Appointment status updated successfully", appt)
}

// RescheduleRequest carries the new start time for an appointment.
type RescheduleRequest struct {
	NewStartTime time.Time `json:"newStartTime" binding:"required"`
}

// RescheduleAppointment handles PATCH /appointments/:id/reschedule. The
// appointment keeps its duration and is marked Rescheduled.
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	var req RescheduleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appt, err := h.Store.RescheduleAppointment(c.Param("id"), req.NewStartTime)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Appointment not found")
			return
		}
		utils.InternalServerError(c, "Failed to reschedule appointment")
		return
	}
	utils.Success(c, "Appointment rescheduled successfully", appt)
}
