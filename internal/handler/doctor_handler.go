package handler

import (
	"net/http"
	"strconv"

	"clinic-appointment-backend/internal/models"
	"clinic-appointment-backend/internal/service"
	"clinic-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{doctorService: doctorService}
}

// HireDoctor creates a new doctor
func (h *DoctorHandler) HireDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.doctorService.HireDoctor(&doctor); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.CreatedResponse(c, doctor)
}

// GetDoctor retrieves a doctor by ID with their supervisor
func (h *DoctorHandler) GetDoctor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorService.GetDoctor(id)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.SuccessResponse(c, doctor)
}

// ListDoctors retrieves doctors, optionally filtered by specialization
// (?specialization=Cardiology), the indexed fast path.
func (h *DoctorHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.doctorService.ListDoctors(c.Query("specialization"))
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), "Failed to fetch doctors")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// ListSupervisees retrieves the doctors directly supervised by a doctor
func (h *DoctorHandler) ListSupervisees(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	doctors, err := h.doctorService.ListSupervisees(id)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"doctors": doctors,
		"count":   len(doctors),
	})
}

// UpdateDoctor updates an existing doctor
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	doctor.DoctorID = id

	if err := h.doctorService.UpdateDoctor(&doctor); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.SuccessResponse(c, doctor)
}

// DeleteDoctor removes a doctor
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	if err := h.doctorService.DeleteDoctor(id); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.MessageResponse(c, "Doctor deleted successfully")
}
