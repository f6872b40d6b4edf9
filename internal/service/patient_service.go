package service

import (
	"fmt"

	"clinic-appointment-backend/internal/models"
	"clinic-appointment-backend/internal/repository"
)

type PatientService struct {
	patientRepo *repository.PatientRepository
}

func NewPatientService(patientRepo *repository.PatientRepository) *PatientService {
	return &PatientService{patientRepo: patientRepo}
}

// RegisterPatient validates and inserts a new patient
func (s *PatientService) RegisterPatient(patient *models.Patient) error {
	if err := validatePatient(patient); err != nil {
		return err
	}
	if err := s.patientRepo.CreatePatient(patient); err != nil {
		return fmt.Errorf("failed to register patient: %w", err)
	}
	return nil
}

// GetPatient retrieves a patient by ID
func (s *PatientService) GetPatient(id int) (*models.Patient, error) {
	return s.patientRepo.GetPatientByID(id)
}

// ListPatients retrieves patients, optionally filtered by exact surname
func (s *PatientService) ListPatients(lastName string) ([]models.Patient, error) {
	if lastName != "" {
		return s.patientRepo.GetPatientsByLastName(lastName)
	}
	return s.patientRepo.GetAllPatients()
}

// UpdatePatient validates and updates an existing patient
func (s *PatientService) UpdatePatient(patient *models.Patient) error {
	existing, err := s.patientRepo.GetPatientByID(patient.PatientID)
	if err != nil {
		return err
	}
	if err := validatePatient(patient); err != nil {
		return err
	}
	// RegistrationDate is engine-assigned; keep it when the caller omits it.
	if patient.RegistrationDate.IsZero() {
		patient.RegistrationDate = existing.RegistrationDate
	}
	if err := s.patientRepo.UpdatePatient(patient); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}
	return nil
}

// DeletePatient removes a patient. Deletion fails closed while appointments
// still reference the patient.
func (s *PatientService) DeletePatient(id int) error {
	return s.patientRepo.DeletePatient(id)
}

func validatePatient(patient *models.Patient) error {
	if patient.FirstName == "" {
		return fmt.Errorf("%w: FirstName", repository.ErrRequired)
	}
	if patient.LastName == "" {
		return fmt.Errorf("%w: LastName", repository.ErrRequired)
	}
	if patient.DateOfBirth.IsZero() {
		return fmt.Errorf("%w: DateOfBirth", repository.ErrRequired)
	}
	if patient.ContactNumber == "" {
		return fmt.Errorf("%w: ContactNumber", repository.ErrRequired)
	}
	if !models.ValidGender(patient.Gender) {
		return fmt.Errorf("%w: Gender %q", repository.ErrDomain, patient.Gender)
	}
	return nil
}
