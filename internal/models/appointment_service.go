package models

// AppointmentService represents the AppointmentServices join table
// The composite primary key (AppointmentID, ServiceID) means a service
// appears at most once per appointment; Quantity expresses repetition.
type AppointmentService struct {
	AppointmentID int `gorm:"column:AppointmentID;primaryKey;autoIncrement:false" json:"appointment_id"`
	ServiceID     int `gorm:"column:ServiceID;primaryKey;autoIncrement:false" json:"service_id"`
	Quantity      int `gorm:"column:Quantity;not null;default:1" json:"quantity"`

	// Relationships
	Appointment *Appointment    `gorm:"foreignKey:AppointmentID;references:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"appointment,omitempty"`
	Service     *MedicalService `gorm:"foreignKey:ServiceID;references:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"service,omitempty"`
}

// TableName specifies the table name for AppointmentService model
func (AppointmentService) TableName() string {
	return "AppointmentServices"
}
