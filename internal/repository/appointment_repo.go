package repository

import (
	"time"

	"clinic-appointment-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// CreateAppointment inserts a new appointment row. The composite unique index
// on (DoctorID, AppointmentDate) is the authority on slot conflicts: under
// concurrent booking one insert succeeds and the other returns ErrDuplicate.
func (r *AppointmentRepository) CreateAppointment(appointment *models.Appointment) error {
	return translate(r.db.Omit(clause.Associations).Create(appointment).Error)
}

// GetAppointmentByID retrieves an appointment by ID
func (r *AppointmentRepository) GetAppointmentByID(id int) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.First(&appointment, "AppointmentID = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

// GetAppointmentWithDetails retrieves an appointment with patient and doctor
// preloaded
func (r *AppointmentRepository) GetAppointmentWithDetails(id int) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("Patient").Preload("Doctor").
		First(&appointment, "AppointmentID = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &appointment, nil
}

// GetAllAppointments retrieves all appointments in chronological order
func (r *AppointmentRepository) GetAllAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Order("AppointmentDate ASC").Find(&appointments).Error
	return appointments, translate(err)
}

// GetAppointmentsByDoctorID retrieves a doctor's appointments in
// chronological order
func (r *AppointmentRepository) GetAppointmentsByDoctorID(doctorID int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("DoctorID = ?", doctorID).
		Order("AppointmentDate ASC").
		Find(&appointments).Error
	return appointments, translate(err)
}

// GetAppointmentsByPatientID retrieves a patient's appointments in
// chronological order
func (r *AppointmentRepository) GetAppointmentsByPatientID(patientID int) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("PatientID = ?", patientID).
		Order("AppointmentDate ASC").
		Find(&appointments).Error
	return appointments, translate(err)
}

// GetAppointmentsBetween retrieves appointments in [from, to).
// Backed by the secondary index on AppointmentDate.
func (r *AppointmentRepository) GetAppointmentsBetween(from, to time.Time) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("AppointmentDate >= ? AND AppointmentDate < ?", from, to).
		Order("AppointmentDate ASC").
		Find(&appointments).Error
	return appointments, translate(err)
}

// UpdateAppointment updates an existing appointment; the slot uniqueness and
// both foreign keys re-validate exactly as on insert.
func (r *AppointmentRepository) UpdateAppointment(appointment *models.Appointment) error {
	return translate(r.db.Omit(clause.Associations).Save(appointment).Error)
}

// DeleteAppointment removes an appointment row. Fails with ErrStillReferenced
// while service links still point at it.
func (r *AppointmentRepository) DeleteAppointment(id int) error {
	res := r.db.Delete(&models.Appointment{}, "AppointmentID = ?", id)
	if res.Error != nil {
		return translateDelete(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
