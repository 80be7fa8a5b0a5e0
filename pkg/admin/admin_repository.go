package admin

import (
	"career-bridge/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AdminRepository interface {
		Create(ctx context.Context, admin *entities.Admin) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error)
		GetByEmail(ctx context.Context, email string) (*entities.Admin, error)
		EmailExists(ctx context.Context, email string) (bool, error)
		UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
		UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
		Count(ctx context.Context) (int64, error)
	}

	adminRepository struct {
		db *gorm.DB
	}
)

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{
		db: db,
	}
}

func (r *adminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error) {
	var admin entities.Admin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	var admin entities.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Admin{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Admin{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password":   hashedPassword,
			"updated_at": time.Now(),
		}).Error
}

func (r *adminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.Admin{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Admin{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
