package dashboard

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type (
	// DashboardRepository runs the read-only aggregates behind the admin
	// dashboard. Column names are fixed by the callers in this package.
	DashboardRepository interface {
		CountEducation(ctx context.Context) (int64, error)
		CountJobs(ctx context.Context) (int64, error)
		CountCurrentlyStudying(ctx context.Context) (int64, error)
		CountCurrentlyWorking(ctx context.Context) (int64, error)
		AverageCgpa(ctx context.Context) (decimal.Decimal, error)
		AverageExperience(ctx context.Context) (decimal.Decimal, error)
		EducationDistribution(ctx context.Context, column string) ([]domain.NameCount, error)
		JobDistribution(ctx context.Context, column string) ([]domain.NameCount, error)
	}

	dashboardRepository struct {
		db *gorm.DB
	}
)

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

func (r *dashboardRepository) CountEducation(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.EducationDetails{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountJobs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.JobDetails{}).Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountCurrentlyStudying(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.EducationDetails{}).
		Where("currently_studying = ?", true).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountCurrentlyWorking(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.JobDetails{}).
		Where("currently_working = ?", true).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) AverageCgpa(ctx context.Context) (decimal.Decimal, error) {
	return r.average(ctx, &entities.EducationDetails{}, "cgpa")
}

func (r *dashboardRepository) AverageExperience(ctx context.Context) (decimal.Decimal, error) {
	return r.average(ctx, &entities.JobDetails{}, "experience")
}

func (r *dashboardRepository) average(ctx context.Context, model any, column string) (decimal.Decimal, error) {
	var avg decimal.NullDecimal
	if err := r.db.WithContext(ctx).
		Model(model).
		Where(column + " IS NOT NULL").
		Select(fmt.Sprintf("AVG(%s)", column)).
		Row().Scan(&avg); err != nil {
		return decimal.Zero, err
	}
	if !avg.Valid {
		return decimal.Zero, nil
	}
	return avg.Decimal, nil
}

func (r *dashboardRepository) EducationDistribution(ctx context.Context, column string) ([]domain.NameCount, error) {
	return r.distribution(ctx, &entities.EducationDetails{}, column)
}

func (r *dashboardRepository) JobDistribution(ctx context.Context, column string) ([]domain.NameCount, error) {
	return r.distribution(ctx, &entities.JobDetails{}, column)
}

func (r *dashboardRepository) distribution(ctx context.Context, model any, column string) ([]domain.NameCount, error) {
	var rows []domain.NameCount
	if err := r.db.WithContext(ctx).
		Model(model).
		Select(fmt.Sprintf("%s AS name, COUNT(*) AS count", column)).
		Where(fmt.Sprintf("%s IS NOT NULL AND %s <> ''", column, column)).
		Group(column).
		Order("count DESC, name ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
