package handler

import (
	"net/http"
	"strconv"

	"clinic-appointment-backend/internal/models"
	"clinic-appointment-backend/internal/service"
	"clinic-appointment-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// AddService creates a new catalog entry
func (h *CatalogHandler) AddService(c *gin.Context) {
	var medService models.MedicalService
	if err := c.ShouldBindJSON(&medService); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.catalogService.AddService(&medService); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.CreatedResponse(c, medService)
}

// GetService retrieves a catalog entry by ID
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	medService, err := h.catalogService.GetService(id)
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.SuccessResponse(c, medService)
}

// ListServices retrieves catalog entries, optionally by exact name
// (?name=Bloodwork), the indexed fast path.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalogService.ListServices(c.Query("name"))
	if err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"services": services,
		"count":    len(services),
	})
}

// UpdateService updates an existing catalog entry
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	var medService models.MedicalService
	if err := c.ShouldBindJSON(&medService); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	medService.ServiceID = id

	if err := h.catalogService.UpdateService(&medService); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.SuccessResponse(c, medService)
}

// DeleteService removes a catalog entry
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid service ID")
		return
	}

	if err := h.catalogService.DeleteService(id); err != nil {
		utils.ErrorResponse(c, statusFor(err), err.Error())
		return
	}

	utils.MessageResponse(c, "Service deleted successfully")
}
