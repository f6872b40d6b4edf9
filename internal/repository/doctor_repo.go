package repository

import (
	"clinic-appointment-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// CreateDoctor inserts a new doctor row. A non-null SupervisorID must resolve
// to an existing doctor or the engine rejects the insert.
func (r *DoctorRepository) CreateDoctor(doctor *models.Doctor) error {
	return translate(r.db.Omit(clause.Associations).Create(doctor).Error)
}

// GetDoctorByID retrieves a doctor by ID
func (r *DoctorRepository) GetDoctorByID(id int) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.First(&doctor, "DoctorID = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

// GetDoctorWithSupervisor retrieves a doctor with the supervisor preloaded
func (r *DoctorRepository) GetDoctorWithSupervisor(id int) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Preload("Supervisor").First(&doctor, "DoctorID = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &doctor, nil
}

// GetAllDoctors retrieves all doctors ordered by surname
func (r *DoctorRepository) GetAllDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("LastName ASC, FirstName ASC").Find(&doctors).Error
	return doctors, translate(err)
}

// GetDoctorsBySpecialization retrieves doctors by exact specialization.
// Backed by the secondary index on Specialization.
func (r *DoctorRepository) GetDoctorsBySpecialization(specialization string) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Where("Specialization = ?", specialization).
		Order("LastName ASC").
		Find(&doctors).Error
	return doctors, translate(err)
}

// GetSupervisees retrieves the doctors directly supervised by the given doctor
func (r *DoctorRepository) GetSupervisees(supervisorID int) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Where("SupervisorID = ?", supervisorID).
		Order("LastName ASC").
		Find(&doctors).Error
	return doctors, translate(err)
}

// UpdateDoctor updates an existing doctor; constraints re-validate exactly as
// on insert.
func (r *DoctorRepository) UpdateDoctor(doctor *models.Doctor) error {
	return translate(r.db.Omit(clause.Associations).Save(doctor).Error)
}

// DeleteDoctor removes a doctor row. Fails with ErrStillReferenced while
// appointments or supervised doctors still point at it.
func (r *DoctorRepository) DeleteDoctor(id int) error {
	res := r.db.Delete(&models.Doctor{}, "DoctorID = ?", id)
	if res.Error != nil {
		return translateDelete(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
