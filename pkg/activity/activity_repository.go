package activity

import (
	"career-bridge/entities"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ActivityRepository interface {
		Create(ctx context.Context, activity *entities.CollegeActivity) error
		GetByID(ctx context.Context, id uuid.UUID) (*entities.CollegeActivity, error)
		GetByUser(ctx context.Context, userID uuid.UUID) ([]*entities.CollegeActivity, error)
		GetByEducation(ctx context.Context, educationID uuid.UUID) ([]*entities.CollegeActivity, error)
		Delete(ctx context.Context, id uuid.UUID) error
		GetEducationOwner(ctx context.Context, educationID uuid.UUID) (uuid.UUID, error)
	}

	activityRepository struct {
		db *gorm.DB
	}
)

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

func (r *activityRepository) Create(ctx context.Context, activity *entities.CollegeActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.CollegeActivity, error) {
	var activity entities.CollegeActivity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]*entities.CollegeActivity, error) {
	var activities []*entities.CollegeActivity
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) GetByEducation(ctx context.Context, educationID uuid.UUID) ([]*entities.CollegeActivity, error) {
	var activities []*entities.CollegeActivity
	if err := r.db.WithContext(ctx).
		Where("education_id = ?", educationID).
		Order("created_at DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CollegeActivity{}).Error
}

// GetEducationOwner returns the user that owns an education record.
func (r *activityRepository) GetEducationOwner(ctx context.Context, educationID uuid.UUID) (uuid.UUID, error) {
	var education entities.EducationDetails
	if err := r.db.WithContext(ctx).
		Select("user_id").
		Where("id = ?", educationID).
		First(&education).Error; err != nil {
		return uuid.Nil, err
	}
	return education.UserID, nil
}
