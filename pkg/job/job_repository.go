package job

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	JobRepository interface {
		Create(ctx context.Context, details *entities.JobDetails) error
		Save(ctx context.Context, details *entities.JobDetails) error
		GetLatestByUser(ctx context.Context, userID uuid.UUID) (*entities.JobDetails, error)
		GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.JobDetails, error)
		GetByID(ctx context.Context, id uuid.UUID) (*entities.JobDetails, error)
		GetAll(ctx context.Context, page, limit int) ([]*entities.JobDetails, int64, error)
		GetByCompany(ctx context.Context, companyName string) ([]*entities.JobDetails, error)
		GetCompanies(ctx context.Context) ([]domain.NameCount, error)
	}

	jobRepository struct {
		db *gorm.DB
	}
)

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{
		db: db,
	}
}

func (r *jobRepository) Create(ctx context.Context, details *entities.JobDetails) error {
	return r.db.WithContext(ctx).Create(details).Error
}

func (r *jobRepository) Save(ctx context.Context, details *entities.JobDetails) error {
	return r.db.WithContext(ctx).Save(details).Error
}

func (r *jobRepository) GetLatestByUser(ctx context.Context, userID uuid.UUID) (*entities.JobDetails, error) {
	var details entities.JobDetails
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&details).Error; err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *jobRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]*entities.JobDetails, error) {
	var details []*entities.JobDetails
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.JobDetails, error) {
	var details entities.JobDetails
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&details).Error; err != nil {
		return nil, err
	}
	return &details, nil
}

func (r *jobRepository) GetAll(ctx context.Context, page, limit int) ([]*entities.JobDetails, int64, error) {
	var details []*entities.JobDetails
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.JobDetails{}).Count(&count).Error; err != nil {
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

// GetByCompany matches company names case-insensitively on a substring.
func (r *jobRepository) GetByCompany(ctx context.Context, companyName string) ([]*entities.JobDetails, error) {
	var details []*entities.JobDetails
	pattern := "%" + strings.ToLower(strings.TrimSpace(companyName)) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(company_name) LIKE ?", pattern).
		Order("created_at DESC").
		Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *jobRepository) GetCompanies(ctx context.Context) ([]domain.NameCount, error) {
	var companies []domain.NameCount
	if err := r.db.WithContext(ctx).
		Model(&entities.JobDetails{}).
		Select("company_name AS name, COUNT(*) AS count").
		Where("company_name IS NOT NULL AND company_name <> ''").
		Group("company_name").
		Order("count DESC, name ASC").
		Scan(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}
