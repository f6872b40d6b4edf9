package models

import "time"

// Doctor represents the Doctors table
// SupervisorID is a self-referential foreign key: a doctor may report to at
// most one supervising doctor.
type Doctor struct {
	DoctorID       int        `gorm:"column:DoctorID;primaryKey;autoIncrement" json:"doctor_id"`
	FirstName      string     `gorm:"column:FirstName;size:50;not null" json:"first_name"`
	LastName       string     `gorm:"column:LastName;size:50;not null" json:"last_name"`
	Specialization string     `gorm:"column:Specialization;size:100;not null;index:idx_doctors_specialization" json:"specialization"`
	Email          *string    `gorm:"column:Email;size:100;uniqueIndex:uq_doctors_email" json:"email,omitempty"`
	ContactNumber  *string    `gorm:"column:ContactNumber;size:20;uniqueIndex:uq_doctors_contact" json:"contact_number,omitempty"`
	RoomNumber     *string    `gorm:"column:RoomNumber;size:10" json:"room_number,omitempty"`
	HireDate       *time.Time `gorm:"column:HireDate;type:date" json:"hire_date,omitempty"`
	SupervisorID   *int       `gorm:"column:SupervisorID;index" json:"supervisor_id,omitempty"`

	// Relationships
	Supervisor *Doctor `gorm:"foreignKey:SupervisorID;references:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"supervisor,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "Doctors"
}
