package education

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EducationRepository interface {
		Create(ctx context.Context, details *entities.EducationDetails) error
		Save(ctx context.Context, details *entities.EducationDetails) error
		GetLatestByUser(ctx context.Context, userID uuid.UUID) (*entities.EducationDetails, error)
		GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.EducationDetails, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entities.EducationDetails, error)
		GetAll(ctx context.Context, page, limit int) ([]*entities.EducationDetails, int64, error)
		GetByCollege(ctx context.Context, collegeName string) ([]*entities.EducationDetails, error)
		GetColleges(ctx context.Context) ([]domain.NameCount, error)
	}

	educationRepository struct {
		db *gorm.DB
	}
)

func NewEducationRepository(db *gorm.DB) EducationRepository {
	return &educationRepository{
		db: db,
	}
}

func (r *educationRepository) Create(ctx context.Context, details *entities.EducationDetails) error {
	return r.db.WithContext(ctx).Create(details).Error
}

func (r *educationRepository) Save(ctx context.Context, details *entities.EducationDetails) error {
	return r.db.WithContext(ctx).Save(details).Error
}

func (r *educationRepository) GetLatestByUser(ctx context.Context, userID uuid.UUID) (*entities.EducationDetails, error) {
	var details entities.EducationDetails
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&details).Error; err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *educationRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.EducationDetails, error) {
	var details []*entities.EducationDetails
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *educationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.EducationDetails, error) {
	var details entities.EducationDetails
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&details).Error; err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *educationRepository) GetAll(ctx context.Context, page, limit int) ([]*entities.EducationDetails, int64, error) {
	var details []*entities.EducationDetails
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.EducationDetails{}).Count(&count).Error; err != nil {
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

// GetByCollege matches college names case-insensitively on a substring.
func (r *educationRepository) GetByCollege(ctx context.Context, collegeName string) ([]*entities.EducationDetails, error) {
	var details []*entities.EducationDetails
	pattern := "%" + strings.ToLower(strings.TrimSpace(collegeName)) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(college_name) LIKE ?", pattern).
		Order("created_at DESC").
		Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *educationRepository) GetColleges(ctx context.Context) ([]domain.NameCount, error) {
	var colleges []domain.NameCount
	if err := r.db.WithContext(ctx).
		Model(&entities.EducationDetails{}).
		Select("college_name AS name, COUNT(*) AS count").
		Where("college_name IS NOT NULL AND college_name <> ''").
		Group("college_name").
		Order("count DESC, name ASC").
		Scan(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}
