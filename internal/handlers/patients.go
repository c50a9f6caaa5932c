package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"practmd-server/internal/store"
	"practmd-server/internal/utils"
)

// PatientHandler serves the patient directory.
type PatientHandler struct {
	Store *store.PatientStore
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(s *store.PatientStore) *PatientHandler {
	return &PatientHandler{Store: s}
}

// ListPatients handles GET /patients with an optional name or MRN search.
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients := h.Store.Patients(c.Query("search"))
	utils.Success(c, "Patients retrieved successfully", patients)
}

// GetPatientByID handles GET /patients/:id.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	patient, err := h.Store.Patient(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.NotFound(c, "Patient not found")
			return
		}
		utils.InternalServerError(c, "Failed to retrieve patient")
		return
	}
	utils.Success(c, "Patient retrieved successfully", patient)
}
