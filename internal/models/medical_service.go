package models

// MedicalService represents the MedicalServices table
// ServiceName is globally unique so the service catalog cannot hold
// duplicate entries.
type MedicalService struct {
	ServiceID   int     `gorm:"column:ServiceID;primaryKey;autoIncrement" json:"service_id"`
	ServiceName string  `gorm:"column:ServiceName;size:100;not null;uniqueIndex:uq_services_name" json:"service_name"`
	Description *string `gorm:"column:Description;type:text" json:"description,omitempty"`
	Cost        float64 `gorm:"column:Cost;type:decimal(10,2);not null" json:"cost"`
}

// TableName specifies the table name for MedicalService model
func (MedicalService) TableName() string {
	return "MedicalServices"
}
