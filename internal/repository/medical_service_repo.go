package repository

import (
	"clinic-appointment-backend/internal/models"

	"gorm.io/gorm"
)

type MedicalServiceRepository struct {
	db *gorm.DB
}

func NewMedicalServiceRepo(db *gorm.DB) *MedicalServiceRepository {
	return &MedicalServiceRepository{db: db}
}

// CreateService inserts a new catalog entry. ServiceName uniqueness is
// enforced by the engine and surfaced as ErrDuplicate.
func (r *MedicalServiceRepository) CreateService(service *models.MedicalService) error {
	return translate(r.db.Create(service).Error)
}

// GetServiceByID retrieves a service by ID
func (r *MedicalServiceRepository) GetServiceByID(id int) (*models.MedicalService, error) {
	var service models.MedicalService
	err := r.db.First(&service, "ServiceID = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

// GetServiceByName retrieves a service by its unique name
func (r *MedicalServiceRepository) GetServiceByName(name string) (*models.MedicalService, error) {
	var service models.MedicalService
	err := r.db.First(&service, "ServiceName = ?", name).Error
	if err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

// GetAllServices retrieves the whole catalog ordered by name
func (r *MedicalServiceRepository) GetAllServices() ([]models.MedicalService, error) {
	var services []models.MedicalService
	err := r.db.Order("ServiceName ASC").Find(&services).Error
	return services, translate(err)
}

// UpdateService updates an existing service; name uniqueness re-validates
// exactly as on insert.
func (r *MedicalServiceRepository) UpdateService(service *models.MedicalService) error {
	return translate(r.db.Save(service).Error)
}

// DeleteService removes a catalog entry. Fails with ErrStillReferenced while
// appointment links still point at it.
func (r *MedicalServiceRepository) DeleteService(id int) error {
	res := r.db.Delete(&models.MedicalService{}, "ServiceID = ?", id)
	if res.Error != nil {
		return translateDelete(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
