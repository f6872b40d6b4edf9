package repository

import (
	"clinic-appointment-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppointmentServiceRepository struct {
	db *gorm.DB
}

func NewAppointmentServiceRepo(db *gorm.DB) *AppointmentServiceRepository {
	return &AppointmentServiceRepository{db: db}
}

// AddServiceToAppointment inserts a link row. Re-adding the same
// (appointment, service) pair fails with ErrDuplicate; Quantity is the way to
// express repetition.
func (r *AppointmentServiceRepository) AddServiceToAppointment(link *models.AppointmentService) error {
	return translate(r.db.Omit(clause.Associations).Create(link).Error)
}

// GetLink retrieves a single link row by its composite key
func (r *AppointmentServiceRepository) GetLink(appointmentID, serviceID int) (*models.AppointmentService, error) {
	var link models.AppointmentService
	err := r.db.First(&link, "AppointmentID = ? AND ServiceID = ?", appointmentID, serviceID).Error
	if err != nil {
		return nil, translate(err)
	}
	return &link, nil
}

// GetServicesForAppointment retrieves all link rows for an appointment with
// the catalog entry preloaded
func (r *AppointmentServiceRepository) GetServicesForAppointment(appointmentID int) ([]models.AppointmentService, error) {
	var links []models.AppointmentService
	err := r.db.Where("AppointmentID = ?", appointmentID).
		Preload("Service").
		Order("ServiceID ASC").
		Find(&links).Error
	return links, translate(err)
}

// UpdateQuantity sets the quantity on an existing link row
func (r *AppointmentServiceRepository) UpdateQuantity(appointmentID, serviceID, quantity int) error {
	res := r.db.Model(&models.AppointmentService{}).
		Where("AppointmentID = ? AND ServiceID = ?", appointmentID, serviceID).
		Update("Quantity", quantity)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveServiceFromAppointment deletes a link row by its composite key
func (r *AppointmentServiceRepository) RemoveServiceFromAppointment(appointmentID, serviceID int) error {
	res := r.db.Delete(&models.AppointmentService{}, "AppointmentID = ? AND ServiceID = ?", appointmentID, serviceID)
	if res.Error != nil {
		return translateDelete(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
