package entity

import "time"

// Dentist represents a care provider. Inactive dentists are excluded from
// new-appointment choices but stay valid on historical appointments.
type Dentist struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Specialization string    `gorm:"type:varchar(100);not null" json:"specialization"`
	Phone          string    `gorm:"type:varchar(15)" json:"phone,omitempty"`
	Email          string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	LicenseNumber  string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"license_number"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:DentistID" json:"appointments,omitempty"`
}

func (Dentist) TableName() string {
	return "dentists"
}
