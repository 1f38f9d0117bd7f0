package usecase

import (
	"context"
	"testing"

	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newDashboardFixture() (*MockAppointmentRepository, *MockPatientRepository, *MockDentistRepository, DashboardUsecase) {
	appointmentRepo := &MockAppointmentRepository{}
	patientRepo := &MockPatientRepository{}
	dentistRepo := &MockDentistRepository{}
	uc := NewDashboardUsecase(testLogger(), appointmentRepo, patientRepo, dentistRepo)
	return appointmentRepo, patientRepo, dentistRepo, uc
}

func TestDashboard_StaffOnly(t *testing.T) {
	_, _, _, uc := newDashboardFixture()

	_, err := uc.GetMonthly(patientContext(uuid.New(), uuid.New()), 2026, 8)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDashboard_InvalidMonth(t *testing.T) {
	_, _, _, uc := newDashboardFixture()

	_, err := uc.GetMonthly(staffContext(uuid.New()), 2026, 0)
	assert.ErrorIs(t, err, ErrInvalidMonth)

	_, err = uc.GetMonthly(staffContext(uuid.New()), 2026, 13)
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestDashboard_AggregatesMonth(t *testing.T) {
	appointmentRepo, patientRepo, dentistRepo, uc := newDashboardFixture()

	patientRepo.CountFunc = func(ctx context.Context) (int64, error) { return 40, nil }
	dentistRepo.CountFunc = func(ctx context.Context) (int64, error) { return 3, nil }
	appointmentRepo.CountFunc = func(ctx context.Context) (int64, error) { return 120, nil }
	appointmentRepo.CountByStatusInMonthFunc = func(ctx context.Context, year, month int) ([]repository.StatusCount, error) {
		return []repository.StatusCount{
			{Status: "scheduled", Count: 5},
			{Status: "completed", Count: 9},
		}, nil
	}
	patientRepo.CountByGenderFunc = func(ctx context.Context, gender string) (int64, error) {
		if gender == entity.GenderMale {
			return 18, nil
		}
		return 22, nil
	}
	patientRepo.CountCreatedDailyFunc = func(ctx context.Context, year, month int) ([]repository.DailyCount, error) {
		return []repository.DailyCount{{Day: 1, Count: 2}, {Day: 28, Count: 1}}, nil
	}
	appointmentRepo.SumCompletedRevenueFunc = func(ctx context.Context, year, month int) (decimal.Decimal, error) {
		return decimal.NewFromInt(1350), nil
	}

	resp, err := uc.GetMonthly(staffContext(uuid.New()), 2026, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(40), resp.PatientsCount)
	assert.Equal(t, int64(3), resp.DentistsCount)
	assert.Equal(t, int64(120), resp.AppointmentsCount)

	// Every status token is present, zero-filled where the month had none.
	assert.Len(t, resp.StatusCounts, len(entity.AppointmentStatuses))
	assert.Equal(t, int64(5), resp.StatusCounts["scheduled"])
	assert.Equal(t, int64(9), resp.StatusCounts["completed"])
	assert.Equal(t, int64(0), resp.StatusCounts["no_show"])

	assert.Equal(t, int64(18), resp.PatientsByGender[entity.GenderMale])
	assert.Equal(t, int64(22), resp.PatientsByGender[entity.GenderFemale])

	// February 2026 has 28 days.
	assert.Len(t, resp.DailyNewPatients, 28)
	assert.Equal(t, int64(2), resp.DailyNewPatients[0])
	assert.Equal(t, int64(1), resp.DailyNewPatients[27])

	assert.True(t, resp.CompletedRevenue.Equal(decimal.NewFromInt(1350)))
}
