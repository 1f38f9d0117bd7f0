package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient represents a clinic patient record. Its lifecycle is independent
// from the User account that may link to it.
type Patient struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name             string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Gender           string    `gorm:"type:char(1);not null" json:"gender"`
	DateOfBirth      time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Phone            string    `gorm:"type:varchar(17);not null" json:"phone"`
	Email            string    `gorm:"type:varchar(255);index" json:"email,omitempty"`
	Address          string    `gorm:"type:text" json:"address,omitempty"`
	Allergy          string    `gorm:"type:text" json:"allergy,omitempty"`
	MedicalHistory   string    `gorm:"type:text" json:"medical_history,omitempty"`
	EmergencyContact string    `gorm:"type:varchar(100)" json:"emergency_contact,omitempty"`
	EmergencyPhone   string    `gorm:"type:varchar(17)" json:"emergency_phone,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// Age returns the patient's age in whole years as of now.
func (p *Patient) Age() int {
	now := time.Now()
	age := now.Year() - p.DateOfBirth.Year()
	if now.Month() < p.DateOfBirth.Month() ||
		(now.Month() == p.DateOfBirth.Month() && now.Day() < p.DateOfBirth.Day()) {
		age--
	}
	return age
}
