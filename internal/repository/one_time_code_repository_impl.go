package repository

import (
	"context"
	"errors"
	"time"

	"dental-clinic-api/internal/domain/entity"
	domainRepo "dental-clinic-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type oneTimeCodeRepository struct {
	db *gorm.DB
}

func NewOneTimeCodeRepository(db *gorm.DB) domainRepo.OneTimeCodeRepository {
	return &oneTimeCodeRepository{db: db}
}

func (r *oneTimeCodeRepository) Create(ctx context.Context, code *entity.OneTimeCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *oneTimeCodeRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.OneTimeCode, error) {
	var code entity.OneTimeCode
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &code, nil
}

func (r *oneTimeCodeRepository) DeleteExpired(ctx context.Context, userID uuid.UUID, before time.Time) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND expires_at < ?", userID, before).
		Delete(&entity.OneTimeCode{}).Error
}

func (r *oneTimeCodeRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.OneTimeCode{}).Error
}
