package entity

import (
	"time"

	"github.com/google/uuid"
)

// OneTimeCode is a short-lived numeric credential for password reset.
// Multiple unexpired codes may coexist for a user; only the most recently
// created one is ever checked.
type OneTimeCode struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_one_time_codes_user_created,priority:1" json:"user_id"`
	Code      string    `gorm:"type:char(6);not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_one_time_codes_user_created,priority:2" json:"created_at"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (OneTimeCode) TableName() string {
	return "one_time_codes"
}

// Matches reports whether the submitted code is an exact match and the code
// has not expired at the given instant.
func (c *OneTimeCode) Matches(code string, now time.Time) bool {
	return c.Code == code && !now.After(c.ExpiresAt)
}

// IsExpired reports whether the code's TTL has elapsed at the given instant.
func (c *OneTimeCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
