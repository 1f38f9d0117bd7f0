package repository

import (
	"context"
	"errors"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"gorm.io/gorm"
)

type dentistRepository struct {
	db *gorm.DB
}

func NewDentistRepository(db *gorm.DB) domainRepo.DentistRepository {
	return &dentistRepository{db: db}
}

func (r *dentistRepository) Create(ctx context.Context, dentist *entity.Dentist) error {
	return r.db.WithContext(ctx).Create(dentist).Error
}

func (r *dentistRepository) FindByID(ctx context.Context, id int) (*entity.Dentist, error) {
	var dentist entity.Dentist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dentist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &dentist, nil
}

func (r *dentistRepository) FindAll(ctx context.Context) ([]entity.Dentist, error) {
	var dentists []entity.Dentist
	err := r.db.WithContext(ctx).Order("name ASC").Find(&dentists).Error
	if err != nil {
		return nil, err
	}
	return dentists, nil
}

func (r *dentistRepository) FindActive(ctx context.Context) ([]entity.Dentist, error) {
	var dentists []entity.Dentist
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&dentists).Error
	if err != nil {
		return nil, err
	}
	return dentists, nil
}

func (r *dentistRepository) Update(ctx context.Context, dentist *entity.Dentist) error {
	return r.db.WithContext(ctx).Omit("Appointments").Save(dentist).Error
}

func (r *dentistRepository) Delete(ctx context.Context, id int) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Dentist{})
	return result.RowsAffected, result.Error
}

func (r *dentistRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Dentist{}).Count(&count).Error
	return count, err
}
