package personal

import (
	"career-bridge/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	PersonalRepository interface {
		Create(ctx context.Context, details *entities.PersonalDetails) error
		Save(ctx context.Context, details *entities.PersonalDetails) error
		GetLatestByUser(ctx context.Context, userID uuid.UUID) (*entities.PersonalDetails, error)
		GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.PersonalDetails, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entities.PersonalDetails, error)
		GetAll(ctx context.Context, page, limit int) ([]*entities.PersonalDetails, int64, error)
	}

	personalRepository struct {
		db *gorm.DB
	}
)

func NewPersonalRepository(db *gorm.DB) PersonalRepository {
	return &personalRepository{
		db: db,
	}
}

func (r *personalRepository) Create(ctx context.Context, details *entities.PersonalDetails) error {
	return r.db.WithContext(ctx).Create(details).Error
}

func (r *personalRepository) Save(ctx context.Context, details *entities.PersonalDetails) error {
	return r.db.WithContext(ctx).Save(details).Error
}

func (r *personalRepository) GetLatestByUser(ctx context.Context, userID uuid.UUID) (*entities.PersonalDetails, error) {
	var details entities.PersonalDetails
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&details).Error; err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *personalRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.PersonalDetails, error) {
	var details []*entities.PersonalDetails
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *personalRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.PersonalDetails, error) {
	var details entities.PersonalDetails
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&details).Error; err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *personalRepository) GetAll(ctx context.Context, page, limit int) ([]*entities.PersonalDetails, int64, error) {
	var details []*entities.PersonalDetails
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.PersonalDetails{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&details).Error; err != nil {
		return nil, 0, err
	}

	return details, count, nil
}
