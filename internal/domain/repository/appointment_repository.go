package repository

import (
	"context"
	"time"

	"dental-clinic-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusCount is the number of appointments carrying one status token.
type StatusCount struct {
	Status string
	Count  int64
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindAll(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// ExistsDentistSlot reports whether any appointment occupies the
	// (dentist, date, start time) slot. excludeID skips one row so that an
	// edit does not collide with itself; pass uuid.Nil to check all rows.
	ExistsDentistSlot(ctx context.Context, dentistID int, date time.Time, startTime string, excludeID uuid.UUID) (bool, error)
	// ExistsPatientSlot is the patient-axis counterpart. There is no
	// storage-level constraint backing this check.
	ExistsPatientSlot(ctx context.Context, patientID uuid.UUID, date time.Time, startTime string, excludeID uuid.UUID) (bool, error)

	Count(ctx context.Context) (int64, error)
	CountByStatusInMonth(ctx context.Context, year, month int) ([]StatusCount, error)
	SumCompletedRevenue(ctx context.Context, year, month int) (decimal.Decimal, error)
}
