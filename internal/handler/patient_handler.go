package handler

import (
	"net/http"
	"strconv"

	"clinic-appointment-backend/internal/models"
	"clinic-appointment-backend/internal/service"
	"clinic-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// RegisterPatient creates a new patient
func (h *PatientHandler) RegisterPatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.patientService.RegisterPatient(&patient); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.CreatedResponse(c, patient)
}

// GetPatient retrieves a patient by ID
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	patient, err := h.patientService.GetPatient(id)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.SuccessResponse(c, patient)
}

// ListPatients retrieves patients, optionally filtered by surname
// (?last_name=Doe), the indexed fast path.
func (h *PatientHandler) ListPatients(c *gin.Context) {
	patients, err := h.patientService.ListPatients(c.Query("last_name"))
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), "Failed to fetch patients")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

// UpdatePatient updates an existing patient
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	patient.PatientID = id

	if err := h.patientService.UpdatePatient(&patient); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.SuccessResponse(c, patient)
}

// DeletePatient removes a patient
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	if err := h.patientService.DeletePatient(id); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.MessageResponse(c, "Patient deleted successfully")
}
