package repository

import (
	"context"

	"dental-clinic-api/internal/domain/entity"
)

type DentistRepository interface {
	Create(ctx context.Context, dentist *entity.Dentist) error
	FindByID(ctx context.Context, id int) (*entity.Dentist, error)
	FindAll(ctx context.Context) ([]entity.Dentist, error)
	// FindActive returns dentists eligible for new bookings.
	FindActive(ctx context.Context) ([]entity.Dentist, error)
	Update(ctx context.Context, dentist *entity.Dentist) error
	Delete(ctx context.Context, id int) (int64, error)
	Count(ctx context.Context) (int64, error)
}
