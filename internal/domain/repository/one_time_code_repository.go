package repository

import (
	"context"
	"time"

	"dental-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

type OneTimeCodeRepository interface {
	Create(ctx context.Context, code *entity.OneTimeCode) error
	// FindLatestByUserID returns the most recently created code for the
	// user, or nil when none exists.
	FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.OneTimeCode, error)
	// DeleteExpired purges the user's codes whose expiry precedes the given
	// instant. Unexpired codes are left alone.
	DeleteExpired(ctx context.Context, userID uuid.UUID, before time.Time) error
	DeleteByID(ctx context.Context, id int64) error
}
