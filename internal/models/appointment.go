package models

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCancelled AppointmentStatus = "Cancelled"
	StatusCompleted AppointmentStatus = "Completed"
)

// ValidStatus reports whether s is one of the accepted status values.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether an appointment may move from s to next.
// Scheduled appointments can be confirmed or cancelled, confirmed ones
// completed or cancelled; Cancelled and Completed are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusScheduled:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

// Appointment represents the Appointments table
// The composite unique index on (DoctorID, AppointmentDate) guarantees a
// doctor holds at most one appointment per timestamp; under concurrent
// booking exactly one of two racing inserts succeeds.
type Appointment struct {
	AppointmentID   int               `gorm:"column:AppointmentID;primaryKey;autoIncrement" json:"appointment_id"`
	PatientID       int               `gorm:"column:PatientID;not null;index" json:"patient_id"`
	DoctorID        int               `gorm:"column:DoctorID;not null;uniqueIndex:uq_appointments_doctor_slot" json:"doctor_id"`
	AppointmentDate time.Time         `gorm:"column:AppointmentDate;not null;index:idx_appointments_date;uniqueIndex:uq_appointments_doctor_slot" json:"appointment_date"`
	Reason          string            `gorm:"column:Reason;size:255;not null" json:"reason"`
	Status          AppointmentStatus `gorm:"column:Status;type:varchar(10);not null;default:'Scheduled';check:chk_appointments_status,Status IN ('Scheduled','Confirmed','Cancelled','Completed')" json:"status"`
	Notes           *string           `gorm:"column:Notes;type:text" json:"notes,omitempty"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID;references:PatientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"patient,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID;references:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "Appointments"
}
