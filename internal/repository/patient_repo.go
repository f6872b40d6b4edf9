package repository

import (
	"clinic-appointment-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// CreatePatient inserts a new patient row. Uniqueness of ContactNumber and
// Email is enforced by the engine and surfaced as ErrDuplicate.
func (r *PatientRepository) CreatePatient(patient *models.Patient) error {
	return translate(r.db.Create(patient).Error)
}

// GetPatientByID retrieves a patient by ID
func (r *PatientRepository) GetPatientByID(id int) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, "PatientID = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &patient, nil
}

// GetAllPatients retrieves all patients ordered by surname
func (r *PatientRepository) GetAllPatients() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("LastName ASC, FirstName ASC").Find(&patients).Error
	return patients, translate(err)
}

// GetPatientsByLastName retrieves patients by exact surname.
// Backed by the secondary index on LastName.
func (r *PatientRepository) GetPatientsByLastName(lastName string) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Where("LastName = ?", lastName).
		Order("FirstName ASC").
		Find(&patients).Error
	return patients, translate(err)
}

// GetPatientByContactNumber retrieves a patient by their unique contact number
func (r *PatientRepository) GetPatientByContactNumber(contactNumber string) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, "ContactNumber = ?", contactNumber).Error
	if err != nil {
		return nil, translate(err)
	}
	return &patient, nil
}

// UpdatePatient updates an existing patient; constraints re-validate exactly
// as on insert.
func (r *PatientRepository) UpdatePatient(patient *models.Patient) error {
	return translate(r.db.Save(patient).Error)
}

// DeletePatient removes a patient row. Fails with ErrStillReferenced while
// appointments still point at the patient.
func (r *PatientRepository) DeletePatient(id int) error {
	res := r.db.Delete(&models.Patient{}, "PatientID = ?", id)
	if res.Error != nil {
		return translateDelete(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
