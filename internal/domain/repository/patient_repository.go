package repository

import (
	"context"

	"dental-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
)

// DailyCount is one day's worth of new patient registrations.
type DailyCount struct {
	Day   int
	Count int64
}

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByGender(ctx context.Context, gender string) (int64, error)
	CountCreatedDaily(ctx context.Context, year, month int) ([]DailyCount, error)
}
