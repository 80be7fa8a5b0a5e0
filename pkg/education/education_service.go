package education

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"career-bridge/internal/utils/storage"
	"career-bridge/pkg/points"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	marksheetFolder   = "marksheets"
	certificateFolder = "activity-certificates"
)

type (
	EducationService interface {
		SaveEducationDetails(ctx context.Context, req domain.SaveEducationDetailsRequest, userID string) (*domain.EducationDetails, domain.PointsAward, error)
		UpdateEducationDetails(ctx context.Context, req domain.EducationDetailsRequest, userID string) (*domain.EducationDetails, domain.PointsAward, error)
		GetLatestByUser(ctx context.Context, userID string) (*domain.EducationDetails, error)
		GetAllByUser(ctx context.Context, userID string) ([]*domain.EducationDetails, error)
		GetByID(ctx context.Context, id string, userID string, role string) (*domain.EducationDetails, error)
		GetAll(ctx context.Context, page, limit int) ([]*domain.EducationDetails, int64, error)
		GetByCollege(ctx context.Context, collegeName string) ([]*domain.EducationDetails, error)
		GetColleges(ctx context.Context) ([]domain.NameCount, error)
		GetCollegeStats(ctx context.Context, collegeName string) (*domain.CollegeStats, error)
	}

	educationService struct {
		educationRepository EducationRepository
		pointsService       points.PointsService
		storage             storage.FileStorage
		log                 *zerolog.Logger
	}
)

func NewEducationService(educationRepository EducationRepository, pointsService points.PointsService, fileStorage storage.FileStorage, log *zerolog.Logger) EducationService {
	return &educationService{
		educationRepository: educationRepository,
		pointsService:       pointsService,
		storage:             fileStorage,
		log:                 log,
	}
}

func (s *educationService) SaveEducationDetails(ctx context.Context, req domain.SaveEducationDetailsRequest, userID string) (*domain.EducationDetails, domain.PointsAward, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.PointsAward{}, domain.ErrParseUUID
	}

	details := &entities.EducationDetails{
		ID:     uuid.New(),
		UserID: userUUID,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	applyEducation(details, req.Data)

	uploaded, err := s.uploadFiles(details, req)
	if err != nil {
		s.discard(uploaded)
		return nil, domain.PointsAward{}, err
	}

	if err := s.educationRepository.Create(ctx, details); err != nil {
		s.discard(uploaded)
		return nil, domain.PointsAward{}, err
	}

	award := points.AwardActivity(ctx, s.pointsService, s.log, userID,
		domain.ActivityEducationForm, "Completed education details form", domain.MessagePointsEducationForm)
	return s.toEducationDetails(details), award, nil
}

// uploadFiles stores the marksheets and activity certificates and returns the
// object keys written so far, even on error.
func (s *educationService) uploadFiles(details *entities.EducationDetails, req domain.SaveEducationDetailsRequest) ([]string, error) {
	var uploaded []string

	if req.TenthMarksheet != nil {
		key, err := s.storage.UploadFile(uuid.NewString(), req.TenthMarksheet, marksheetFolder, storage.AllowDocument...)
		if err != nil {
			return uploaded, err
		}
		uploaded = append(uploaded, key)
		details.TenthMarksheetPath = key
	}

	if req.TwelfthMarksheet != nil {
		key, err := s.storage.UploadFile(uuid.NewString(), req.TwelfthMarksheet, marksheetFolder, storage.AllowDocument...)
		if err != nil {
			return uploaded, err
		}
		uploaded = append(uploaded, key)
		details.TwelfthMarksheetPath = key
	}

	if len(req.ActivityCertificates) == 0 || strings.TrimSpace(details.CollegeActivities) == "" {
		return uploaded, nil
	}

	var activities []map[string]any
	if err := json.Unmarshal([]byte(details.CollegeActivities), &activities); err != nil {
		return uploaded, domain.ErrInvalidCollegeActivitiesJSON
	}

	indexes := make([]int, 0, len(req.ActivityCertificates))
	for i := range req.ActivityCertificates {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	for _, i := range indexes {
		file := req.ActivityCertificates[i]
		if file == nil || i < 0 || i >= len(activities) || activities[i] == nil {
			continue
		}
		key, err := s.storage.UploadFile(uuid.NewString(), file, certificateFolder, storage.AllowDocument...)
		if err != nil {
			return uploaded, err
		}
		uploaded = append(uploaded, key)
		activities[i]["certificatePath"] = s.storage.GetPublicLinkKey(key)
	}

	encoded, err := json.Marshal(activities)
	if err != nil {
		return uploaded, err
	}
	details.CollegeActivities = string(encoded)
	return uploaded, nil
}

func (s *educationService) discard(keys []string) {
	for _, key := range keys {
		if err := s.storage.DeleteFile(key); err != nil {
			s.log.Warn().Err(err).Str("object_key", key).Msg("failed to delete orphaned upload")
		}
	}
}

func (s *educationService) UpdateEducationDetails(ctx context.Context, req domain.EducationDetailsRequest, userID string) (*domain.EducationDetails, domain.PointsAward, error) {
	details, err := s.latest(ctx, userID)
	if err != nil {
		return nil, domain.PointsAward{}, err
	}

	applyEducation(details, req)
	details.UpdatedAt = time.Now()
	if err := s.educationRepository.Save(ctx, details); err != nil {
		return nil, domain.PointsAward{}, err
	}

	award := points.AwardActivity(ctx, s.pointsService, s.log, userID,
		domain.ActivityEducationUpdate, "Updated education details form", domain.MessagePointsEducationUpdate)
	return s.toEducationDetails(details), award, nil
}

func (s *educationService) GetLatestByUser(ctx context.Context, userID string) (*domain.EducationDetails, error) {
	details, err := s.latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toEducationDetails(details), nil
}

func (s *educationService) GetAllByUser(ctx context.Context, userID string) ([]*domain.EducationDetails, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	rows, err := s.educationRepository.GetAllByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	return s.toEducationDetailsList(rows), nil
}

func (s *educationService) GetByID(ctx context.Context, id string, userID string, role string) (*domain.EducationDetails, error) {
	detailsUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrEducationDetailsNotFound
	}

	details, err := s.educationRepository.GetByID(ctx, detailsUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEducationDetailsNotFound
		}
		return nil, err
	}
	if role != domain.RoleAdmin && details.UserID.String() != userID {
		return nil, domain.ErrEducationDetailsNotFound
	}
	return s.toEducationDetails(details), nil
}

func (s *educationService) GetAll(ctx context.Context, page, limit int) ([]*domain.EducationDetails, int64, error) {
	rows, count, err := s.educationRepository.GetAll(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return s.toEducationDetailsList(rows), count, nil
}

func (s *educationService) GetByCollege(ctx context.Context, collegeName string) ([]*domain.EducationDetails, error) {
	rows, err := s.educationRepository.GetByCollege(ctx, collegeName)
	if err != nil {
		return nil, err
	}
	return s.toEducationDetailsList(rows), nil
}

func (s *educationService) GetColleges(ctx context.Context) ([]domain.NameCount, error) {
	colleges, err := s.educationRepository.GetColleges(ctx)
	if err != nil {
		return nil, err
	}
	if colleges == nil {
		colleges = []domain.NameCount{}
	}
	return colleges, nil
}

func (s *educationService) GetCollegeStats(ctx context.Context, collegeName string) (*domain.CollegeStats, error) {
	rows, err := s.educationRepository.GetByCollege(ctx, collegeName)
	if err != nil {
		return nil, err
	}

	stats := &domain.CollegeStats{
		CollegeName:                collegeName,
		TotalStudents:              len(rows),
		DegreeDistribution:         map[string]int64{},
		SpecializationDistribution: map[string]int64{},
	}

	sum := decimal.Zero
	graded := 0
	for _, row := range rows {
		if row.Degree != "" {
			stats.DegreeDistribution[row.Degree]++
		}
		if row.Specialization != "" {
			stats.SpecializationDistribution[row.Specialization]++
		}
		if row.Cgpa != nil {
			sum = sum.Add(decimal.NewFromFloat(*row.Cgpa))
			graded++
		}
		if row.CurrentlyStudying {
			stats.CurrentlyStudyingCount++
		}
	}
	if graded > 0 {
		stats.AverageCgpa = sum.Div(decimal.NewFromInt(int64(graded))).Round(2).InexactFloat64()
	}
	return stats, nil
}

func (s *educationService) latest(ctx context.Context, userID string) (*entities.EducationDetails, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	details, err := s.educationRepository.GetLatestByUser(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEducationDetailsNotFound
		}
		return nil, err
	}
	return details, nil
}

func set(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// setDate treats a blank date as clearing the column.
func setDate(dst **string, src *string) {
	if src == nil {
		return
	}
	if strings.TrimSpace(*src) == "" {
		*dst = nil
		return
	}
	v := strings.TrimSpace(*src)
	*dst = &v
}

func applyEducation(d *entities.EducationDetails, req domain.EducationDetailsRequest) {
	set(&d.TenthSchool, req.TenthSchool)
	set(&d.TenthBoard, req.TenthBoard)
	if req.TenthPercentage != nil {
		d.TenthPercentage = req.TenthPercentage
	}
	if req.TenthYear != nil {
		d.TenthYear = req.TenthYear
	}

	set(&d.TwelfthSchool, req.TwelfthSchool)
	set(&d.TwelfthBoard, req.TwelfthBoard)
	set(&d.TwelfthStream, req.TwelfthStream)
	if req.TwelfthPercentage != nil {
		d.TwelfthPercentage = req.TwelfthPercentage
	}
	if req.TwelfthYear != nil {
		d.TwelfthYear = req.TwelfthYear
	}

	set(&d.CollegeName, req.CollegeName)
	set(&d.Degree, req.Degree)
	set(&d.Specialization, req.Specialization)
	set(&d.University, req.University)
	set(&d.Department, req.Department)
	set(&d.RollNumber, req.RollNumber)
	if req.Cgpa != nil {
		d.Cgpa = req.Cgpa
	}
	if req.Percentage != nil {
		d.Percentage = req.Percentage
	}
	setDate(&d.StartDate, req.StartDate)
	setDate(&d.EndDate, req.EndDate)
	if req.CurrentlyStudying != nil {
		d.CurrentlyStudying = *req.CurrentlyStudying
	}
	set(&d.Semester, req.Semester)

	set(&d.Skills, req.Skills)
	set(&d.Achievements, req.Achievements)
	set(&d.CollegeActivities, req.CollegeActivities)
	set(&d.Extracurricular, req.Extracurricular)
	set(&d.Projects, req.Projects)
	set(&d.AdditionalDegree, req.AdditionalDegree)
	set(&d.AdditionalCertifications, req.AdditionalCertifications)
}

func (s *educationService) link(objectKey string) string {
	if objectKey == "" {
		return ""
	}
	return s.storage.GetPublicLinkKey(objectKey)
}

func (s *educationService) toEducationDetailsList(rows []*entities.EducationDetails) []*domain.EducationDetails {
	result := make([]*domain.EducationDetails, 0, len(rows))
	for _, row := range rows {
		result = append(result, s.toEducationDetails(row))
	}
	return result
}

func (s *educationService) toEducationDetails(d *entities.EducationDetails) *domain.EducationDetails {
	return &domain.EducationDetails{
		ID:     d.ID.String(),
		UserID: d.UserID.String(),

		TenthSchool:     d.TenthSchool,
		TenthBoard:      d.TenthBoard,
		TenthPercentage: d.TenthPercentage,
		TenthYear:       d.TenthYear,
		TenthMarksheet:  s.link(d.TenthMarksheetPath),

		TwelfthSchool:     d.TwelfthSchool,
		TwelfthBoard:      d.TwelfthBoard,
		TwelfthStream:     d.TwelfthStream,
		TwelfthPercentage: d.TwelfthPercentage,
		TwelfthYear:       d.TwelfthYear,
		TwelfthMarksheet:  s.link(d.TwelfthMarksheetPath),

		CollegeName:       d.CollegeName,
		Degree:            d.Degree,
		Specialization:    d.Specialization,
		University:        d.University,
		Department:        d.Department,
		RollNumber:        d.RollNumber,
		Cgpa:              d.Cgpa,
		Percentage:        d.Percentage,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		CurrentlyStudying: d.CurrentlyStudying,
		Semester:          d.Semester,

		Skills:                   d.Skills,
		Achievements:             d.Achievements,
		CollegeActivities:        d.CollegeActivities,
		Extracurricular:          d.Extracurricular,
		Projects:                 d.Projects,
		AdditionalDegree:         d.AdditionalDegree,
		AdditionalCertifications: d.AdditionalCertifications,

		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
