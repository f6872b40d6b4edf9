package handler

import (
	"net/http"
	"strconv"
	"time"

	"clinic-appointment-backend/internal/models"
	"clinic-appointment-backend/internal/service"
	"clinic-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// BookAppointment creates a new appointment. Status defaults to Scheduled
// when omitted; a taken (doctor, timestamp) slot returns 409.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.appointmentService.BookAppointment(&appointment); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.CreatedResponse(c, appointment)
}

// GetAppointment retrieves an appointment with patient and doctor details
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	appointment, err := h.appointmentService.GetAppointment(id)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.SuccessResponse(c, appointment)
}

// ListAppointments retrieves appointments filtered by ?doctor_id, ?patient_id
// or a ?from/?to RFC 3339 date range, the indexed fast path.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	doctorID, _ := strconv.Atoi(c.Query("doctor_id"))
	patientID, _ := strconv.Atoi(c.Query("patient_id"))

	var from, to time.Time
	if v := c.Query("from"); v != "" {
		from, _ = time.Parse(time.RFC3339, v)
	}
	if v := c.Query("to"); v != "" {
		to, _ = time.Parse(time.RFC3339, v)
	}

	appointments, err := h.appointmentService.ListAppointments(doctorID, patientID, from, to)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), "Failed to fetch appointments")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

// UpdateAppointment updates an existing appointment; status changes must
// follow the lifecycle.
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	appointment.AppointmentID = id

	if err := h.appointmentService.UpdateAppointment(&appointment); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.SuccessResponse(c, appointment)
}

// CancelAppointment moves an appointment to Cancelled
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.CancelAppointment(id); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.MessageResponse(c, "Appointment cancelled")
}

// DeleteAppointment removes an appointment
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.DeleteAppointment(id); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.MessageResponse(c, "Appointment deleted successfully")
}

// AddService links a catalog service to an appointment
func (h *AppointmentHandler) AddService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var link models.AppointmentService
	if err := c.ShouldBindJSON(&link); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	link.AppointmentID = id

	if err := h.appointmentService.AddService(&link); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.CreatedResponse(c, link)
}

// ListServices retrieves the services rendered within an appointment
func (h *AppointmentHandler) ListServices(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	links, err := h.appointmentService.ListServices(id)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"services": links,
		"count":    len(links),
	})
}

// UpdateServiceQuantity sets the quantity on an appointment's service link
func (h *AppointmentHandler) UpdateServiceQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}
	serviceID, err := strconv.Atoi(c.Param("serviceId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.appointmentService.UpdateServiceQuantity(id, serviceID, body.Quantity); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.MessageResponse(c, "Quantity updated")
}

// RemoveService unlinks a service from an appointment
func (h *AppointmentHandler) RemoveService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}
	serviceID, err := strconv.Atoi(c.Param("serviceId"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	if err := h.appointmentService.RemoveService(id, serviceID); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.MessageResponse(c, "Service removed from appointment")
}
