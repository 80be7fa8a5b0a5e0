package job

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"career-bridge/internal/utils/storage"
	"career-bridge/pkg/points"
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	resumeFolder           = "resumes"
	offerLetterFolder      = "offer-letters"
	experienceLetterFolder = "experience-letters"
)

type (
	JobService interface {
		SaveJobDetails(ctx context.Context, req domain.SaveJobDetailsRequest, userID string) (*domain.JobDetails, domain.PointsAward, error)
		UpdateJobDetails(ctx context.Context, req domain.JobDetailsRequest, userID string) (*domain.JobDetails, domain.PointsAward, error)
		GetLatestByUser(ctx context.Context, userID string) (*domain.JobDetails, error)
		GetAllByUser(ctx context.Context, userID string) ([]*domain.JobDetails, error)
		GetByID(ctx context.Context, id string, userID string, role string) (*domain.JobDetails, error)
		GetAll(ctx context.Context, page, limit int) ([]*domain.JobDetails, int64, error)
		GetByCompany(ctx context.Context, companyName string) ([]*domain.JobDetails, error)
		GetCompanies(ctx context.Context) ([]domain.NameCount, error)
		GetCompanyStats(ctx context.Context, companyName string) (*domain.CompanyStats, error)
	}

	jobService struct {
		jobRepository JobRepository
		pointsService points.PointsService
		storage       storage.FileStorage
		log           *zerolog.Logger
	}
)

func NewJobService(jobRepository JobRepository, pointsService points.PointsService, fileStorage storage.FileStorage, log *zerolog.Logger) JobService {
	return &jobService{
		jobRepository: jobRepository,
		pointsService: pointsService,
		storage:       fileStorage,
		log:           log,
	}
}

func (s *jobService) SaveJobDetails(ctx context.Context, req domain.SaveJobDetailsRequest, userID string) (*domain.JobDetails, domain.PointsAward, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.PointsAward{}, domain.ErrParseUUID
	}

	details := &entities.JobDetails{
		ID:     uuid.New(),
		UserID: userUUID,
		Timestamp: entities.Timestamp{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	applyJob(details, req.Data)
	if strings.TrimSpace(details.CompanyName) == "" || strings.TrimSpace(details.Role) == "" {
		return nil, domain.PointsAward{}, domain.ErrCompanyAndRoleRequired
	}

	uploads := []struct {
		file   *multipart.FileHeader
		folder string
		dst    *string
	}{
		{req.Resume, resumeFolder, &details.ResumePath},
		{req.OfferLetter, offerLetterFolder, &details.OfferLetterPath},
		{req.ExperienceLetter, experienceLetterFolder, &details.ExperienceLetterPath},
	}

	var uploaded []string
	for _, u := range uploads {
		if u.file == nil {
			continue
		}
		key, err := s.storage.UploadFile(uuid.NewString(), u.file, u.folder, storage.AllowDocument...)
		if err != nil {
			s.discard(uploaded)
			return nil, domain.PointsAward{}, err
		}
		uploaded = append(uploaded, key)
		*u.dst = key
	}

	if err := s.jobRepository.Create(ctx, details); err != nil {
		s.discard(uploaded)
		return nil, domain.PointsAward{}, err
	}

	award := points.AwardActivity(ctx, s.pointsService, s.log, userID,
		domain.ActivityJobForm, "Completed job details form", domain.MessagePointsJobForm)
	return s.toJobDetails(details), award, nil
}

func (s *jobService) discard(keys []string) {
	for _, key := range keys {
		if err := s.storage.DeleteFile(key); err != nil {
			s.log.Warn().Err(err).Str("object_key", key).Msg("failed to delete orphaned upload")
		}
	}
}

func (s *jobService) UpdateJobDetails(ctx context.Context, req domain.JobDetailsRequest, userID string) (*domain.JobDetails, domain.PointsAward, error) {
	details, err := s.latest(ctx, userID)
	if err != nil {
		return nil, domain.PointsAward{}, err
	}

	applyJob(details, req)
	if strings.TrimSpace(details.CompanyName) == "" || strings.TrimSpace(details.Role) == "" {
		return nil, domain.PointsAward{}, domain.ErrCompanyAndRoleRequired
	}
	details.UpdatedAt = time.Now()
	if err := s.jobRepository.Save(ctx, details); err != nil {
		return nil, domain.PointsAward{}, err
	}

	award := points.AwardActivity(ctx, s.pointsService, s.log, userID,
		domain.ActivityJobUpdate, "Updated job details form", domain.MessagePointsJobUpdate)
	return s.toJobDetails(details), award, nil
}

func (s *jobService) GetLatestByUser(ctx context.Context, userID string) (*domain.JobDetails, error) {
	details, err := s.latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toJobDetails(details), nil
}

func (s *jobService) GetAllByUser(ctx context.Context, userID string) ([]*domain.JobDetails, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	rows, err := s.jobRepository.GetAllByUser(ctx, userUUID)
	if err != nil {
		return nil, err
	}
	return s.toJobDetailsList(rows), nil
}

func (s *jobService) GetByID(ctx context.Context, id string, userID string, role string) (*domain.JobDetails, error) {
	detailsUUID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrJobDetailsNotFound
	}

	details, err := s.jobRepository.GetByID(ctx, detailsUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobDetailsNotFound
		}
		return nil, err
	}
	if role != domain.RoleAdmin && details.UserID.String() != userID {
		return nil, domain.ErrJobDetailsNotFound
	}
	return s.toJobDetails(details), nil
}

func (s *jobService) GetAll(ctx context.Context, page, limit int) ([]*domain.JobDetails, int64, error) {
	rows, count, err := s.jobRepository.GetAll(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return s.toJobDetailsList(rows), count, nil
}

func (s *jobService) GetByCompany(ctx context.Context, companyName string) ([]*domain.JobDetails, error) {
	rows, err := s.jobRepository.GetByCompany(ctx, companyName)
	if err != nil {
		return nil, err
	}
	return s.toJobDetailsList(rows), nil
}

func (s *jobService) GetCompanies(ctx context.Context) ([]domain.NameCount, error) {
	companies, err := s.jobRepository.GetCompanies(ctx)
	if err != nil {
		return nil, err
	}
	if companies == nil {
		companies = []domain.NameCount{}
	}
	return companies, nil
}

func (s *jobService) GetCompanyStats(ctx context.Context, companyName string) (*domain.CompanyStats, error) {
	rows, err := s.jobRepository.GetByCompany(ctx, companyName)
	if err != nil {
		return nil, err
	}

	stats := &domain.CompanyStats{
		CompanyName:                companyName,
		TotalEmployees:             len(rows),
		RoleDistribution:           map[string]int64{},
		EmploymentTypeDistribution: map[string]int64{},
	}

	sum := decimal.Zero
	counted := 0
	for _, row := range rows {
		if row.Role != "" {
			stats.RoleDistribution[row.Role]++
		}
		if row.EmploymentType != "" {
			stats.EmploymentTypeDistribution[row.EmploymentType]++
		}
		if row.Experience != nil {
			sum = sum.Add(decimal.NewFromFloat(*row.Experience))
			counted++
		}
		if row.CurrentlyWorking {
			stats.CurrentlyWorkingCount++
		}
	}
	if counted > 0 {
		stats.AverageExperience = sum.Div(decimal.NewFromInt(int64(counted))).Round(2).InexactFloat64()
	}
	return stats, nil
}

func (s *jobService) latest(ctx context.Context, userID string) (*entities.JobDetails, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	details, err := s.jobRepository.GetLatestByUser(ctx, userUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrJobDetailsNotFound
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

func setDate(dst **string, src *string) {
	if src == nil {
		return
	}
	v := strings.TrimSpace(*src)
	if v == "" {
		*dst = nil
		return
	}
	*dst = &v
}

func applyJob(d *entities.JobDetails, req domain.JobDetailsRequest) {
	set(&d.CompanyName, req.CompanyName)
	set(&d.Role, req.Role)
	if req.Experience != nil {
		d.Experience = req.Experience
	}
	set(&d.EmploymentType, req.EmploymentType)
	set(&d.Industry, req.Industry)

	setDate(&d.StartDate, req.StartDate)
	setDate(&d.EndDate, req.EndDate)
	if req.CurrentlyWorking != nil {
		d.CurrentlyWorking = *req.CurrentlyWorking
	}
	set(&d.Salary, req.Salary)
	set(&d.Location, req.Location)

	set(&d.JobDescription, req.JobDescription)
	set(&d.SkillsUsed, req.SkillsUsed)
	set(&d.Achievements, req.Achievements)

	set(&d.ManagerName, req.ManagerName)
	set(&d.ManagerContact, req.ManagerContact)
	set(&d.HrContact, req.HrContact)

	set(&d.NoticePeriod, req.NoticePeriod)
	set(&d.PreferredLocation, req.PreferredLocation)
	set(&d.ExpectedSalary, req.ExpectedSalary)
	set(&d.ReasonForLeaving, req.ReasonForLeaving)
}

func (s *jobService) link(objectKey string) string {
	if objectKey == "" {
		return ""
	}
	return s.storage.GetPublicLinkKey(objectKey)
}

func (s *jobService) toJobDetailsList(rows []*entities.JobDetails) []*domain.JobDetails {
	result := make([]*domain.JobDetails, 0, len(rows))
	for _, row := range rows {
		result = append(result, s.toJobDetails(row))
	}
	return result
}

func (s *jobService) toJobDetails(d *entities.JobDetails) *domain.JobDetails {
	return &domain.JobDetails{
		ID:     d.ID.String(),
		UserID: d.UserID.String(),

		CompanyName:    d.CompanyName,
		Role:           d.Role,
		Experience:     d.Experience,
		EmploymentType: d.EmploymentType,
		Industry:       d.Industry,

		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		CurrentlyWorking: d.CurrentlyWorking,
		Salary:           d.Salary,
		Location:         d.Location,

		JobDescription: d.JobDescription,
		SkillsUsed:     d.SkillsUsed,
		Achievements:   d.Achievements,

		ManagerName:    d.ManagerName,
		ManagerContact: d.ManagerContact,
		HrContact:      d.HrContact,

		Resume:           s.link(d.ResumePath),
		OfferLetter:      s.link(d.OfferLetterPath),
		ExperienceLetter: s.link(d.ExperienceLetterPath),

		NoticePeriod:      d.NoticePeriod,
		PreferredLocation: d.PreferredLocation,
		ExpectedSalary:    d.ExpectedSalary,
		ReasonForLeaving:  d.ReasonForLeaving,

		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
