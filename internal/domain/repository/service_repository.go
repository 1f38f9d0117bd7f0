package repository

import (
	"context"

	"dental-clinic-api/internal/domain/entity"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	FindByID(ctx context.Context, id int) (*entity.Service, error)
	FindAll(ctx context.Context) ([]entity.Service, error)
	// FindActive returns services eligible for new bookings.
	FindActive(ctx context.Context) ([]entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id int) (int64, error)
}
