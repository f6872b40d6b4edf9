package service

import (
	"errors"
	"fmt"
	"time"

	"clinic-appointment-backend/internal/models"
	"clinic-appointment-backend/internal/repository"
)

// ErrInvalidTransition is returned when a status update does not follow the
// appointment lifecycle (Scheduled -> Confirmed/Cancelled,
// Confirmed -> Completed/Cancelled; Cancelled and Completed are terminal).
var ErrInvalidTransition = errors.New("status transition not allowed")

type AppointmentService struct {
	appointmentRepo *repository.AppointmentRepository
	patientRepo     *repository.PatientRepository
	doctorRepo      *repository.DoctorRepository
	linkRepo        *repository.AppointmentServiceRepository
	serviceRepo     *repository.MedicalServiceRepository
}

func NewAppointmentService(
	appointmentRepo *repository.AppointmentRepository,
	patientRepo *repository.PatientRepository,
	doctorRepo *repository.DoctorRepository,
	linkRepo *repository.AppointmentServiceRepository,
	serviceRepo *repository.MedicalServiceRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		linkRepo:        linkRepo,
		serviceRepo:     serviceRepo,
	}
}

// BookAppointment validates and inserts a new appointment. The patient and
// doctor references are resolved up front for a caller-friendly error; the
// composite unique index on (DoctorID, AppointmentDate) remains the sole
// authority on slot conflicts, so two racing bookings cannot both succeed.
func (s *AppointmentService) BookAppointment(appointment *models.Appointment) error {
	if err := validateAppointment(appointment); err != nil {
		return err
	}
	if _, err := s.patientRepo.GetPatientByID(appointment.PatientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: PatientID %d", repository.ErrForeignKey, appointment.PatientID)
		}
		return err
	}
	if _, err := s.doctorRepo.GetDoctorByID(appointment.DoctorID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: DoctorID %d", repository.ErrForeignKey, appointment.DoctorID)
		}
		return err
	}
	// Scheduled is the implicit initial state; the column default is the
	// backstop for writes that bypass this service.
	if appointment.Status == "" {
		appointment.Status = models.StatusScheduled
	}
	if err := s.appointmentRepo.CreateAppointment(appointment); err != nil {
		return fmt.Errorf("failed to book appointment: %w", err)
	}
	return nil
}

// GetAppointment retrieves an appointment with patient and doctor details
func (s *AppointmentService) GetAppointment(id int) (*models.Appointment, error) {
	return s.appointmentRepo.GetAppointmentWithDetails(id)
}

// ListAppointments retrieves appointments filtered by doctor, patient, or a
// date range; with no filter the whole table is returned in chronological
// order.
func (s *AppointmentService) ListAppointments(doctorID, patientID int, from, to time.Time) ([]models.Appointment, error) {
	switch {
	case doctorID != 0:
		return s.appointmentRepo.GetAppointmentsByDoctorID(doctorID)
	case patientID != 0:
		return s.appointmentRepo.GetAppointmentsByPatientID(patientID)
	case !from.IsZero() && !to.IsZero():
		return s.appointmentRepo.GetAppointmentsBetween(from, to)
	}
	return s.appointmentRepo.GetAllAppointments()
}

// UpdateAppointment validates and updates an existing appointment. Status
// changes must follow the lifecycle; all other fields keep the insert-time
// constraints.
func (s *AppointmentService) UpdateAppointment(appointment *models.Appointment) error {
	existing, err := s.appointmentRepo.GetAppointmentByID(appointment.AppointmentID)
	if err != nil {
		return err
	}
	if err := validateAppointment(appointment); err != nil {
		return err
	}
	// An omitted status means "leave it alone", not a transition to empty.
	if appointment.Status == "" {
		appointment.Status = existing.Status
	}
	if appointment.Status != existing.Status && !existing.Status.CanTransitionTo(appointment.Status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.Status, appointment.Status)
	}
	if err := s.appointmentRepo.UpdateAppointment(appointment); err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}
	return nil
}

// CancelAppointment moves an appointment to Cancelled through the lifecycle
// check.
func (s *AppointmentService) CancelAppointment(id int) error {
	appointment, err := s.appointmentRepo.GetAppointmentByID(id)
	if err != nil {
		return err
	}
	if !appointment.Status.CanTransitionTo(models.StatusCancelled) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, models.StatusCancelled)
	}
	appointment.Status = models.StatusCancelled
	return s.appointmentRepo.UpdateAppointment(appointment)
}

// DeleteAppointment removes an appointment. Deletion fails closed while
// service links still reference it.
func (s *AppointmentService) DeleteAppointment(id int) error {
	return s.appointmentRepo.DeleteAppointment(id)
}

// AddService links a catalog service to an appointment. A duplicate
// (appointment, service) pair is rejected; callers repeat a service by
// updating the quantity instead.
func (s *AppointmentService) AddService(link *models.AppointmentService) error {
	if link.Quantity < 0 {
		return fmt.Errorf("%w: Quantity %d", repository.ErrDomain, link.Quantity)
	}
	if _, err := s.appointmentRepo.GetAppointmentByID(link.AppointmentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: AppointmentID %d", repository.ErrForeignKey, link.AppointmentID)
		}
		return err
	}
	if _, err := s.serviceRepo.GetServiceByID(link.ServiceID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: ServiceID %d", repository.ErrForeignKey, link.ServiceID)
		}
		return err
	}
	if err := s.linkRepo.AddServiceToAppointment(link); err != nil {
		return fmt.Errorf("failed to add service to appointment: %w", err)
	}
	return nil
}

// ListServices retrieves the services rendered within an appointment
func (s *AppointmentService) ListServices(appointmentID int) ([]models.AppointmentService, error) {
	if _, err := s.appointmentRepo.GetAppointmentByID(appointmentID); err != nil {
		return nil, err
	}
	return s.linkRepo.GetServicesForAppointment(appointmentID)
}

// UpdateServiceQuantity sets the quantity on an existing link
func (s *AppointmentService) UpdateServiceQuantity(appointmentID, serviceID, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: Quantity %d", repository.ErrDomain, quantity)
	}
	return s.linkRepo.UpdateQuantity(appointmentID, serviceID, quantity)
}

// RemoveService unlinks a service from an appointment
func (s *AppointmentService) RemoveService(appointmentID, serviceID int) error {
	return s.linkRepo.RemoveServiceFromAppointment(appointmentID, serviceID)
}

func validateAppointment(appointment *models.Appointment) error {
	if appointment.PatientID == 0 {
		return fmt.Errorf("%w: PatientID", repository.ErrRequired)
	}
	if appointment.DoctorID == 0 {
		return fmt.Errorf("%w: DoctorID", repository.ErrRequired)
	}
	if appointment.AppointmentDate.IsZero() {
		return fmt.Errorf("%w: AppointmentDate", repository.ErrRequired)
	}
	if appointment.Reason == "" {
		return fmt.Errorf("%w: Reason", repository.ErrRequired)
	}
	if appointment.Status != "" && !models.ValidStatus(appointment.Status) {
		return fmt.Errorf("%w: Status %q", repository.ErrDomain, appointment.Status)
	}
	return nil
}
