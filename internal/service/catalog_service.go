package service

import (
	"fmt"

	"clinic-appointment-backend/internal/models"
	"clinic-appointment-backend/internal/repository"
)

// CatalogService manages the MedicalServices catalog.
type CatalogService struct {
	serviceRepo *repository.MedicalServiceRepository
}

func NewCatalogService(serviceRepo *repository.MedicalServiceRepository) *CatalogService {
	return &CatalogService{serviceRepo: serviceRepo}
}

// AddService validates and inserts a new catalog entry
func (s *CatalogService) AddService(service *models.MedicalService) error {
	if err := validateService(service); err != nil {
		return err
	}
	if err := s.serviceRepo.CreateService(service); err != nil {
		return fmt.Errorf("failed to add service: %w", err)
	}
	return nil
}

// GetService retrieves a catalog entry by ID
func (s *CatalogService) GetService(id int) (*models.MedicalService, error) {
	return s.serviceRepo.GetServiceByID(id)
}

// ListServices retrieves catalog entries, optionally by exact name
func (s *CatalogService) ListServices(name string) ([]models.MedicalService, error) {
	if name != "" {
		service, err := s.serviceRepo.GetServiceByName(name)
		if err != nil {
			return nil, err
		}
		return []models.MedicalService{*service}, nil
	}
	return s.serviceRepo.GetAllServices()
}

// UpdateService validates and updates an existing catalog entry
func (s *CatalogService) UpdateService(service *models.MedicalService) error {
	if _, err := s.serviceRepo.GetServiceByID(service.ServiceID); err != nil {
		return err
	}
	if err := validateService(service); err != nil {
		return err
	}
	if err := s.serviceRepo.UpdateService(service); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

// DeleteService removes a catalog entry. Deletion fails closed while
// appointment links still reference it.
func (s *CatalogService) DeleteService(id int) error {
	return s.serviceRepo.DeleteService(id)
}

func validateService(service *models.MedicalService) error {
	if service.ServiceName == "" {
		return fmt.Errorf("%w: ServiceName", repository.ErrRequired)
	}
	if service.Cost < 0 {
		return fmt.Errorf("%w: Cost %.2f", repository.ErrDomain, service.Cost)
	}
	return nil
}
