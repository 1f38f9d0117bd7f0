package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service represents a billable clinic service. Inactive services are
// excluded from new-appointment choices but stay valid on historical rows.
type Service struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string          `gorm:"type:varchar(100);not null;index" json:"name"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	Price           decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	DurationMinutes int             `gorm:"not null;default:30" json:"duration_minutes"`
	IsActive        bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:ServiceID" json:"appointments,omitempty"`
}

func (Service) TableName() string {
	return "services"
}
