package models

import "time"

// Gender is the fixed set of values accepted by Patients.Gender.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// ValidGender reports whether g is one of the accepted gender values.
func ValidGender(g Gender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Patient represents the Patients table
type Patient struct {
	PatientID        int       `gorm:"column:PatientID;primaryKey;autoIncrement" json:"patient_id"`
	FirstName        string    `gorm:"column:FirstName;size:50;not null" json:"first_name"`
	LastName         string    `gorm:"column:LastName;size:50;not null;index:idx_patients_lastname" json:"last_name"`
	DateOfBirth      time.Time `gorm:"column:DateOfBirth;type:date;not null" json:"date_of_birth"`
	Gender           Gender    `gorm:"column:Gender;type:varchar(10);not null;check:chk_patients_gender,Gender IN ('Male','Female','Other')" json:"gender"`
	ContactNumber    string    `gorm:"column:ContactNumber;size:20;not null;uniqueIndex:uq_patients_contact" json:"contact_number"`
	Email            *string   `gorm:"column:Email;size:100;uniqueIndex:uq_patients_email" json:"email,omitempty"`
	Address          *string   `gorm:"column:Address;size:255" json:"address,omitempty"`
	RegistrationDate time.Time `gorm:"column:RegistrationDate;default:CURRENT_TIMESTAMP" json:"registration_date"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "Patients"
}
