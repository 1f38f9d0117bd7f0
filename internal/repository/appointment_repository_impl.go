package repository

import (
	"context"
	"errors"

	"time"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").Preload("Dentist").Preload("Service").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := r.db.WithContext(ctx).
		Preload("Patient").Preload("Dentist").Preload("Service")

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.PatientID != uuid.Nil {
			query = query.Where("patient_id = ?", filter.PatientID)
		}
		if filter.DentistID != 0 {
			query = query.Where("dentist_id = ?", filter.DentistID)
		}
		if filter.StartAt != "" {
			query = query.Where("appointment_date >= ?", filter.StartAt)
		}
		if filter.EndAt != "" {
			query = query.Where("appointment_date <= ?", filter.EndAt)
		}
	}

	err := query.
		Order("appointment_date DESC, start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).
		Omit("Patient", "Dentist", "Service", "CreatedBy", "CreatedByID").
		Save(appointment).Error
}

// UpdateStatus writes the status in a single statement so the row is either
// fully updated or left untouched. Returns affected rows.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AppointmentStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) ExistsDentistSlot(ctx context.Context, dentistID int, date time.Time, startTime string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("dentist_id = ? AND appointment_date = ? AND start_time = ?", dentistID, date.Format("2006-01-02"), startTime)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) ExistsPatientSlot(ctx context.Context, patientID uuid.UUID, date time.Time, startTime string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("patient_id = ? AND appointment_date = ? AND start_time = ?", patientID, date.Format("2006-01-02"), startTime)
	if excludeID != uuid.Nil {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

func (r *appointmentRepository) CountByStatusInMonth(ctx context.Context, year, month int) ([]domainRepo.StatusCount, error) {
	var rows []domainRepo.StatusCount
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("status, COUNT(*) AS count").
		Where("EXTRACT(YEAR FROM appointment_date) = ? AND EXTRACT(MONTH FROM appointment_date) = ?", year, month).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *appointmentRepository) SumCompletedRevenue(ctx context.Context, year, month int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Table("appointments").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.status = ?", entity.AppointmentStatusCompleted).
		Where("EXTRACT(YEAR FROM appointments.appointment_date) = ? AND EXTRACT(MONTH FROM appointments.appointment_date) = ?", year, month).
		Select("COALESCE(SUM(services.price), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}
