package usecase

import (
	"context"
	"time"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/domain/entity"
	"dental-clinic-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// DashboardUsecase builds the staff-only monthly overview.
type DashboardUsecase interface {
	GetMonthly(ctx context.Context, year, month int) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	dentistRepo     repository.DentistRepository
}

func NewDashboardUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	dentistRepo repository.DentistRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		dentistRepo:     dentistRepo,
	}
}

func (u *dashboardUsecase) GetMonthly(ctx context.Context, year, month int) (*dto.DashboardResponse, error) {
	act, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := requireRole(act, entity.RoleIDStaff); err != nil {
		return nil, err
	}

	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	patientsCount, err := u.patientRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	dentistsCount, err := u.dentistRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count dentists: %+v", err)
		return nil, err
	}

	appointmentsCount, err := u.appointmentRepo.Count(ctx)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	// Every status token appears in the map even when its count is zero.
	statusCounts := make(map[string]int64, len(entity.AppointmentStatuses))
	for _, status := range entity.AppointmentStatuses {
		statusCounts[string(status)] = 0
	}
	monthCounts, err := u.appointmentRepo.CountByStatusInMonth(ctx, year, month)
	if err != nil {
		u.log.Warnf("Failed to count appointments by status: %+v", err)
		return nil, err
	}
	for _, sc := range monthCounts {
		statusCounts[sc.Status] = sc.Count
	}

	maleCount, err := u.patientRepo.CountByGender(ctx, entity.GenderMale)
	if err != nil {
		u.log.Warnf("Failed to count male patients: %+v", err)
		return nil, err
	}
	femaleCount, err := u.patientRepo.CountByGender(ctx, entity.GenderFemale)
	if err != nil {
		u.log.Warnf("Failed to count female patients: %+v", err)
		return nil, err
	}

	// One slot per calendar day of the requested month, zero-filled.
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	dailyNewPatients := make([]int64, daysInMonth)
	dailyCounts, err := u.patientRepo.CountCreatedDaily(ctx, year, month)
	if err != nil {
		u.log.Warnf("Failed to count daily patient registrations: %+v", err)
		return nil, err
	}
	for _, dc := range dailyCounts {
		if dc.Day >= 1 && dc.Day <= daysInMonth {
			dailyNewPatients[dc.Day-1] = dc.Count
		}
	}

	revenue, err := u.appointmentRepo.SumCompletedRevenue(ctx, year, month)
	if err != nil {
		u.log.Warnf("Failed to sum completed revenue: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		Year:              year,
		Month:             month,
		PatientsCount:     patientsCount,
		DentistsCount:     dentistsCount,
		AppointmentsCount: appointmentsCount,
		StatusCounts:      statusCounts,
		PatientsByGender: map[string]int64{
			entity.GenderMale:   maleCount,
			entity.GenderFemale: femaleCount,
		},
		DailyNewPatients: dailyNewPatients,
		CompletedRevenue: revenue,
	}, nil
}
