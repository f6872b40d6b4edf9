package repository

import (
	"testing"
	"time"

	"clinic-appointment-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a private in-memory SQLite database with foreign key
// enforcement on. A single connection keeps every statement on the same
// in-memory instance.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Patient{},
		&models.Doctor{},
		&models.MedicalService{},
		&models.Appointment{},
		&models.AppointmentService{},
	))
	return db
}

func newPatient(contact string) *models.Patient {
	return &models.Patient{
		FirstName:     "John",
		LastName:      "Doe",
		DateOfBirth:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:        models.GenderMale,
		ContactNumber: contact,
	}
}

func newDoctor(specialization string) *models.Doctor {
	return &models.Doctor{
		FirstName:      "Jane",
		LastName:       "Smith",
		Specialization: specialization,
	}
}

func strPtr(s string) *string { return &s }

func TestPatientContactNumberUnique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPatientRepo(db)

	require.NoError(t, repo.CreatePatient(newPatient("555-0100")))

	dup := newPatient("555-0100")
	dup.FirstName = "Jack"
	err := repo.CreatePatient(dup)
	assert.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, repo.CreatePatient(newPatient("555-0101")))
}

func TestPatientEmailUniqueWhenPresent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPatientRepo(db)

	first := newPatient("555-0100")
	first.Email = strPtr("john@example.com")
	require.NoError(t, repo.CreatePatient(first))

	dup := newPatient("555-0101")
	dup.Email = strPtr("john@example.com")
	assert.ErrorIs(t, repo.CreatePatient(dup), ErrDuplicate)

	// NULL emails do not collide with each other.
	require.NoError(t, repo.CreatePatient(newPatient("555-0102")))
	require.NoError(t, repo.CreatePatient(newPatient("555-0103")))
}

func TestPatientRegistrationDateDefaults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPatientRepo(db)

	patient := newPatient("555-0100")
	require.NoError(t, repo.CreatePatient(patient))

	stored, err := repo.GetPatientByID(patient.PatientID)
	require.NoError(t, err)
	assert.False(t, stored.RegistrationDate.IsZero())
}

func TestPatientLastNameLookup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPatientRepo(db)

	doe := newPatient("555-0100")
	require.NoError(t, repo.CreatePatient(doe))
	roe := newPatient("555-0101")
	roe.LastName = "Roe"
	require.NoError(t, repo.CreatePatient(roe))

	found, err := repo.GetPatientsByLastName("Doe")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, doe.PatientID, found[0].PatientID)
}

func TestDoctorSupervisorMustResolve(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDoctorRepo(db)

	orphan := newDoctor("Cardiology")
	missing := 999
	orphan.SupervisorID = &missing
	assert.ErrorIs(t, repo.CreateDoctor(orphan), ErrForeignKey)

	head := newDoctor("Cardiology")
	require.NoError(t, repo.CreateDoctor(head))

	junior := newDoctor("Cardiology")
	junior.LastName = "Jones"
	junior.SupervisorID = &head.DoctorID
	require.NoError(t, repo.CreateDoctor(junior))

	stored, err := repo.GetDoctorWithSupervisor(junior.DoctorID)
	require.NoError(t, err)
	require.NotNil(t, stored.Supervisor)
	assert.Equal(t, head.DoctorID, stored.Supervisor.DoctorID)
}

func TestDeleteSupervisorFailsWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDoctorRepo(db)

	head := newDoctor("Cardiology")
	require.NoError(t, repo.CreateDoctor(head))
	junior := newDoctor("Cardiology")
	junior.SupervisorID = &head.DoctorID
	require.NoError(t, repo.CreateDoctor(junior))

	assert.ErrorIs(t, repo.DeleteDoctor(head.DoctorID), ErrStillReferenced)

	require.NoError(t, repo.DeleteDoctor(junior.DoctorID))
	require.NoError(t, repo.DeleteDoctor(head.DoctorID))
}

func TestDoctorSlotUnique(t *testing.T) {
	db := setupTestDB(t)
	patientRepo := NewPatientRepo(db)
	doctorRepo := NewDoctorRepo(db)
	repo := NewAppointmentRepo(db)

	patient := newPatient("555-0100")
	require.NoError(t, patientRepo.CreatePatient(patient))
	doctor := newDoctor("Cardiology")
	require.NoError(t, doctorRepo.CreateDoctor(doctor))

	slot := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	first := &models.Appointment{
		PatientID:       patient.PatientID,
		DoctorID:        doctor.DoctorID,
		AppointmentDate: slot,
		Reason:          "Checkup",
	}
	require.NoError(t, repo.CreateAppointment(first))

	// Status defaults to Scheduled at the engine.
	stored, err := repo.GetAppointmentByID(first.AppointmentID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, stored.Status)

	// Same doctor, identical timestamp: exactly one booking wins.
	second := &models.Appointment{
		PatientID:       patient.PatientID,
		DoctorID:        doctor.DoctorID,
		AppointmentDate: slot,
		Reason:          "Follow-up",
	}
	assert.ErrorIs(t, repo.CreateAppointment(second), ErrDuplicate)

	// A different timestamp books fine.
	second.AppointmentDate = slot.Add(30 * time.Minute)
	require.NoError(t, repo.CreateAppointment(second))
}

func TestAppointmentReferencesMustResolve(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAppointmentRepo(db)

	err := repo.CreateAppointment(&models.Appointment{
		PatientID:       42,
		DoctorID:        42,
		AppointmentDate: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Reason:          "Checkup",
	})
	assert.ErrorIs(t, err, ErrForeignKey)
}

func TestAppointmentDateRangeLookup(t *testing.T) {
	db := setupTestDB(t)
	patientRepo := NewPatientRepo(db)
	doctorRepo := NewDoctorRepo(db)
	repo := NewAppointmentRepo(db)

	patient := newPatient("555-0100")
	require.NoError(t, patientRepo.CreatePatient(patient))
	doctor := newDoctor("Cardiology")
	require.NoError(t, doctorRepo.CreateDoctor(doctor))

	for _, day := range []int{1, 2, 3} {
		require.NoError(t, repo.CreateAppointment(&models.Appointment{
			PatientID:       patient.PatientID,
			DoctorID:        doctor.DoctorID,
			AppointmentDate: time.Date(2025, 6, day, 10, 0, 0, 0, time.UTC),
			Reason:          "Checkup",
		}))
	}

	got, err := repo.GetAppointmentsBetween(
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestServiceNameUnique(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMedicalServiceRepo(db)

	require.NoError(t, repo.CreateService(&models.MedicalService{ServiceName: "Bloodwork", Cost: 50.00}))
	err := repo.CreateService(&models.MedicalService{ServiceName: "Bloodwork", Cost: 75.00})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestAppointmentServiceCompositeKey(t *testing.T) {
	db := setupTestDB(t)
	patientRepo := NewPatientRepo(db)
	doctorRepo := NewDoctorRepo(db)
	appointmentRepo := NewAppointmentRepo(db)
	serviceRepo := NewMedicalServiceRepo(db)
	repo := NewAppointmentServiceRepo(db)

	patient := newPatient("555-0100")
	require.NoError(t, patientRepo.CreatePatient(patient))
	doctor := newDoctor("Cardiology")
	require.NoError(t, doctorRepo.CreateDoctor(doctor))
	appointment := &models.Appointment{
		PatientID:       patient.PatientID,
		DoctorID:        doctor.DoctorID,
		AppointmentDate: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Reason:          "Checkup",
	}
	require.NoError(t, appointmentRepo.CreateAppointment(appointment))
	bloodwork := &models.MedicalService{ServiceName: "Bloodwork", Cost: 50.00}
	require.NoError(t, serviceRepo.CreateService(bloodwork))

	link := &models.AppointmentService{AppointmentID: appointment.AppointmentID, ServiceID: bloodwork.ServiceID}
	require.NoError(t, repo.AddServiceToAppointment(link))

	// Quantity defaults to 1 at the engine.
	stored, err := repo.GetLink(appointment.AppointmentID, bloodwork.ServiceID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Quantity)

	// Linking the same service twice fails; quantity expresses repetition.
	again := &models.AppointmentService{AppointmentID: appointment.AppointmentID, ServiceID: bloodwork.ServiceID}
	assert.ErrorIs(t, repo.AddServiceToAppointment(again), ErrDuplicate)

	require.NoError(t, repo.UpdateQuantity(appointment.AppointmentID, bloodwork.ServiceID, 2))
	stored, err = repo.GetLink(appointment.AppointmentID, bloodwork.ServiceID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Quantity)
}

func TestLinkReferencesMustResolve(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAppointmentServiceRepo(db)

	err := repo.AddServiceToAppointment(&models.AppointmentService{AppointmentID: 1, ServiceID: 1, Quantity: 1})
	assert.ErrorIs(t, err, ErrForeignKey)
}

func TestDeleteFailsClosedWhileReferenced(t *testing.T) {
	db := setupTestDB(t)
	patientRepo := NewPatientRepo(db)
	doctorRepo := NewDoctorRepo(db)
	appointmentRepo := NewAppointmentRepo(db)
	serviceRepo := NewMedicalServiceRepo(db)
	linkRepo := NewAppointmentServiceRepo(db)

	patient := newPatient("555-0100")
	require.NoError(t, patientRepo.CreatePatient(patient))
	doctor := newDoctor("Cardiology")
	require.NoError(t, doctorRepo.CreateDoctor(doctor))
	appointment := &models.Appointment{
		PatientID:       patient.PatientID,
		DoctorID:        doctor.DoctorID,
		AppointmentDate: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Reason:          "Checkup",
	}
	require.NoError(t, appointmentRepo.CreateAppointment(appointment))
	bloodwork := &models.MedicalService{ServiceName: "Bloodwork", Cost: 50.00}
	require.NoError(t, serviceRepo.CreateService(bloodwork))
	require.NoError(t, linkRepo.AddServiceToAppointment(&models.AppointmentService{
		AppointmentID: appointment.AppointmentID,
		ServiceID:     bloodwork.ServiceID,
	}))

	// Every referenced row refuses deletion while dependents exist.
	assert.ErrorIs(t, serviceRepo.DeleteService(bloodwork.ServiceID), ErrStillReferenced)
	assert.ErrorIs(t, appointmentRepo.DeleteAppointment(appointment.AppointmentID), ErrStillReferenced)
	assert.ErrorIs(t, patientRepo.DeletePatient(patient.PatientID), ErrStillReferenced)
	assert.ErrorIs(t, doctorRepo.DeleteDoctor(doctor.DoctorID), ErrStillReferenced)

	// Unwinding bottom-up succeeds.
	require.NoError(t, linkRepo.RemoveServiceFromAppointment(appointment.AppointmentID, bloodwork.ServiceID))
	require.NoError(t, serviceRepo.DeleteService(bloodwork.ServiceID))
	require.NoError(t, appointmentRepo.DeleteAppointment(appointment.AppointmentID))
	require.NoError(t, patientRepo.DeletePatient(patient.PatientID))
	require.NoError(t, doctorRepo.DeleteDoctor(doctor.DoctorID))
}

func TestDeleteMissingRowReturnsNotFound(t *testing.T) {
	db := setupTestDB(t)

	assert.ErrorIs(t, NewPatientRepo(db).DeletePatient(99), ErrNotFound)
	assert.ErrorIs(t, NewDoctorRepo(db).DeleteDoctor(99), ErrNotFound)
	assert.ErrorIs(t, NewAppointmentRepo(db).DeleteAppointment(99), ErrNotFound)
	assert.ErrorIs(t, NewMedicalServiceRepo(db).DeleteService(99), ErrNotFound)
	assert.ErrorIs(t, NewAppointmentServiceRepo(db).RemoveServiceFromAppointment(99, 99), ErrNotFound)
}

func TestUpdateRevalidatesUniqueness(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPatientRepo(db)

	first := newPatient("555-0100")
	require.NoError(t, repo.CreatePatient(first))
	second := newPatient("555-0101")
	require.NoError(t, repo.CreatePatient(second))

	second.ContactNumber = "555-0100"
	assert.ErrorIs(t, repo.UpdatePatient(second), ErrDuplicate)
}

func TestDoctorSpecializationLookup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDoctorRepo(db)

	require.NoError(t, repo.CreateDoctor(newDoctor("Cardiology")))
	derm := newDoctor("Dermatology")
	require.NoError(t, repo.CreateDoctor(derm))

	found, err := repo.GetDoctorsBySpecialization("Dermatology")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, derm.DoctorID, found[0].DoctorID)
}
