package activity

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"career-bridge/internal/utils/storage"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const certificateFolder = "activity-certificates"

type (
	ActivityService interface {
		SaveActivity(ctx context.Context, req domain.SaveActivityRequest, userID string) (*domain.CollegeActivity, error)
		ListByUser(ctx context.Context, userID string) ([]*domain.CollegeActivity, error)
		ListByEducation(ctx context.Context, educationID string, userID string, role string) ([]*domain.CollegeActivity, error)
		DeleteActivity(ctx context.Context, id string, userID string) error
	}

	activityService struct {
		activityRepository ActivityRepository
		storage            storage.FileStorage
		log                *zerolog.Logger
	}
)

func NewActivityService(activityRepository ActivityRepository, fileStorage storage.FileStorage, log *zerolog.Logger) ActivityService {
	return &activityService{
		activityRepository: activityRepository,
		storage:            fileStorage,
		log:                log,
	}
}

func (s *activityService) SaveActivity(ctx context.Context, req domain.SaveActivityRequest, userID string) (*domain.CollegeActivity, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	activity := &entities.CollegeActivity{
		ID:          uuid.New(),
		UserID:      userUUID,
		Activity:    strings.TrimSpace(req.Data.Activity),
		Role:        req.Data.Role,
		StartDate:   optionalDate(req.Data.StartDate),
		EndDate:     optionalDate(req.Data.EndDate),
		Description: req.Data.Description,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	if req.Data.EducationID != "" {
		educationUUID, err := s.ownedEducation(ctx, req.Data.EducationID, userUUID, domain.RoleUser)
		if err != nil {
			return nil, err
		}
		activity.EducationID = &educationUUID
	}

	if req.Certificate != nil {
		objectKey, err := s.storage.UploadFile(uuid.NewString(), req.Certificate, certificateFolder, storage.AllowDocument...)
		if err != nil {
			return nil, err
		}
		activity.CertificatePath = objectKey
	}

	if err := s.activityRepository.Create(ctx, activity); err != nil {
		if activity.CertificatePath != "" {
			_ = s.storage.DeleteFile(activity.CertificatePath)
		}
		return nil, err
	}
	return s.toActivity(activity), nil
}

func (s *activityService) ListByUser(ctx context.Context, userID string) ([]*domain.CollegeActivity, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	rows, err := s.activityRepository.GetByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	return s.toActivities(rows), nil
}

func (s *activityService) ListByEducation(ctx context.Context, educationID string, userID string, role string) ([]*domain.CollegeActivity, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	educationUUID, err := s.ownedEducation(ctx, educationID, userUUID, role)
	if err != nil {
		return nil, err
	}

	rows, err := s.activityRepository.GetByEducation(ctx, educationUUID)
	if err != nil {
		return nil, err
	}
	return s.toActivities(rows), nil
}

func (s *activityService) DeleteActivity(ctx context.Context, id string, userID string) error {
	activityUUID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrActivityNotFound
	}

	activity, err := s.activityRepository.GetByID(ctx, activityUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrActivityNotFound
		}
		return err
	}
	if activity.UserID.String() != userID {
		return domain.ErrActivityNotFound
	}

	if err := s.activityRepository.Delete(ctx, activityUUID); err != nil {
		return err
	}

	if activity.CertificatePath != "" {
		if err := s.storage.DeleteFile(activity.CertificatePath); err != nil {
			s.log.Warn().Err(err).Str("object_key", activity.CertificatePath).Msg("failed to delete activity certificate")
		}
	}
	return nil
}

// ownedEducation resolves an education id the caller may attach to or read
// activities from. Admins can read any record.
func (s *activityService) ownedEducation(ctx context.Context, educationID string, userID uuid.UUID, role string) (uuid.UUID, error) {
	educationUUID, err := uuid.Parse(educationID)
	if err != nil {
		return uuid.Nil, domain.ErrEducationDetailsNotFound
	}

	owner, err := s.activityRepository.GetEducationOwner(ctx, educationUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, domain.ErrEducationDetailsNotFound
		}
		return uuid.Nil, err
	}
	if role != domain.RoleAdmin && owner != userID {
		return uuid.Nil, domain.ErrEducationDetailsNotFound
	}
	return educationUUID, nil
}

func optionalDate(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func (s *activityService) toActivities(rows []*entities.CollegeActivity) []*domain.CollegeActivity {
	result := make([]*domain.CollegeActivity, 0, len(rows))
	for _, row := range rows {
		result = append(result, s.toActivity(row))
	}
	return result
}

func (s *activityService) toActivity(a *entities.CollegeActivity) *domain.CollegeActivity {
	activity := &domain.CollegeActivity{
		ID:          a.ID.String(),
		UserID:      a.UserID.String(),
		Activity:    a.Activity,
		Role:        a.Role,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
	if a.EducationID != nil {
		id := a.EducationID.String()
		activity.EducationID = &id
	}
	if a.CertificatePath != "" {
		activity.Certificate = s.storage.GetPublicLinkKey(a.CertificatePath)
	}
	return activity
}
