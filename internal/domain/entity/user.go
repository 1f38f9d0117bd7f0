package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table.
// A patient account carries an explicit link to its patient record via
// PatientID; the link is set during self-registration and never inferred
// from email matching.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int        `gorm:"not null;index" json:"role_id"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string     `gorm:"type:text;not null" json:"-"`
	FullName  string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone     string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	PatientID *uuid.UUID `gorm:"type:uuid;index" json:"patient_id,omitempty"`
	IsActive  bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role    Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsStaff reports whether the user holds the clinic-staff role.
func (u *User) IsStaff() bool {
	return u.RoleID == RoleIDStaff
}

// IsPatient reports whether the user holds the patient role.
func (u *User) IsPatient() bool {
	return u.RoleID == RoleIDPatient
}
