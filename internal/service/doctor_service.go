package service

import (
	"errors"
	"fmt"

	"clinic-appointment-backend/internal/models"
	"clinic-appointment-backend/internal/repository"
)

// ErrSupervisionCycle is returned when assigning a supervisor would make a
// doctor (transitively) supervise themselves. The schema does not prevent
// this, so the check lives here at the write boundary.
var ErrSupervisionCycle = errors.New("supervision chain would form a cycle")

// maxSupervisionDepth bounds the chain walk so a corrupted chain cannot make
// the check spin.
const maxSupervisionDepth = 32

type DoctorService struct {
	doctorRepo *repository.DoctorRepository
}

func NewDoctorService(doctorRepo *repository.DoctorRepository) *DoctorService {
	return &DoctorService{doctorRepo: doctorRepo}
}

// HireDoctor validates and inserts a new doctor
func (s *DoctorService) HireDoctor(doctor *models.Doctor) error {
	if err := validateDoctor(doctor); err != nil {
		return err
	}
	// A new doctor cannot appear in anyone's chain yet, so only resolve the
	// supervisor reference.
	if doctor.SupervisorID != nil {
		if _, err := s.doctorRepo.GetDoctorByID(*doctor.SupervisorID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: SupervisorID %d", repository.ErrForeignKey, *doctor.SupervisorID)
			}
			return err
		}
	}
	if err := s.doctorRepo.CreateDoctor(doctor); err != nil {
		return fmt.Errorf("failed to hire doctor: %w", err)
	}
	return nil
}

// GetDoctor retrieves a doctor by ID
func (s *DoctorService) GetDoctor(id int) (*models.Doctor, error) {
	return s.doctorRepo.GetDoctorWithSupervisor(id)
}

// ListDoctors retrieves doctors, optionally filtered by exact specialization
func (s *DoctorService) ListDoctors(specialization string) ([]models.Doctor, error) {
	if specialization != "" {
		return s.doctorRepo.GetDoctorsBySpecialization(specialization)
	}
	return s.doctorRepo.GetAllDoctors()
}

// ListSupervisees retrieves the doctors directly supervised by a doctor
func (s *DoctorService) ListSupervisees(supervisorID int) ([]models.Doctor, error) {
	if _, err := s.doctorRepo.GetDoctorByID(supervisorID); err != nil {
		return nil, err
	}
	return s.doctorRepo.GetSupervisees(supervisorID)
}

// UpdateDoctor validates and updates an existing doctor, rejecting supervisor
// assignments that would close a supervision cycle.
func (s *DoctorService) UpdateDoctor(doctor *models.Doctor) error {
	if _, err := s.doctorRepo.GetDoctorByID(doctor.DoctorID); err != nil {
		return err
	}
	if err := validateDoctor(doctor); err != nil {
		return err
	}
	if doctor.SupervisorID != nil {
		if err := s.checkSupervisionCycle(doctor.DoctorID, *doctor.SupervisorID); err != nil {
			return err
		}
	}
	if err := s.doctorRepo.UpdateDoctor(doctor); err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}
	return nil
}

// DeleteDoctor removes a doctor. Deletion fails closed while appointments or
// supervised doctors still reference them.
func (s *DoctorService) DeleteDoctor(id int) error {
	return s.doctorRepo.DeleteDoctor(id)
}

// checkSupervisionCycle walks up the supervision chain starting at
// supervisorID and fails if it reaches doctorID within the depth bound.
func (s *DoctorService) checkSupervisionCycle(doctorID, supervisorID int) error {
	current := supervisorID
	for depth := 0; depth < maxSupervisionDepth; depth++ {
		if current == doctorID {
			return ErrSupervisionCycle
		}
		supervisor, err := s.doctorRepo.GetDoctorByID(current)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: SupervisorID %d", repository.ErrForeignKey, current)
			}
			return err
		}
		if supervisor.SupervisorID == nil {
			return nil
		}
		current = *supervisor.SupervisorID
	}
	return ErrSupervisionCycle
}

func validateDoctor(doctor *models.Doctor) error {
	if doctor.FirstName == "" {
		return fmt.Errorf("%w: FirstName", repository.ErrRequired)
	}
	if doctor.LastName == "" {
		return fmt.Errorf("%w: LastName", repository.ErrRequired)
	}
	if doctor.Specialization == "" {
		return fmt.Errorf("%w: Specialization", repository.ErrRequired)
	}
	return nil
}
