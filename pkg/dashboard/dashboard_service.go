package dashboard

import (
	"career-bridge/domain"
	"career-bridge/pkg/points"
	"career-bridge/pkg/user"
	"career-bridge/pkg/withdrawal"
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	columnCollege  = "college_name"
	columnDegree   = "degree"
	columnCompany  = "company_name"
	columnRole     = "role"
	columnIndustry = "industry"
)

type (
	DashboardService interface {
		GetOverview(ctx context.Context) (*domain.DashboardOverview, error)
		GetEducationStats(ctx context.Context) (*domain.EducationDashboardStats, error)
		GetJobStats(ctx context.Context) (*domain.JobDashboardStats, error)
		GetCollegeComparison(ctx context.Context) ([]domain.NameCount, error)
		GetCompanyComparison(ctx context.Context) ([]domain.NameCount, error)
	}

	dashboardService struct {
		dashboardRepository  DashboardRepository
		userRepository       user.UserRepository
		pointsRepository     points.PointsRepository
		withdrawalRepository withdrawal.WithdrawalRepository
		log                  *zerolog.Logger
	}
)

func NewDashboardService(
	dashboardRepository DashboardRepository,
	userRepository user.UserRepository,
	pointsRepository points.PointsRepository,
	withdrawalRepository withdrawal.WithdrawalRepository,
	log *zerolog.Logger,
) DashboardService {
	return &dashboardService{
		dashboardRepository:  dashboardRepository,
		userRepository:       userRepository,
		pointsRepository:     pointsRepository,
		withdrawalRepository: withdrawalRepository,
		log:                  log,
	}
}

// GetOverview fans the independent aggregates out over an errgroup. The first
// failing query cancels the rest.
func (s *dashboardService) GetOverview(ctx context.Context) (*domain.DashboardOverview, error) {
	overview := &domain.DashboardOverview{}
	var colleges, companies []domain.NameCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		overview.TotalUsers, err = s.userRepository.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.TotalStudents, err = s.dashboardRepository.CountEducation(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.TotalEmployees, err = s.dashboardRepository.CountJobs(gctx)
		return err
	})
	g.Go(func() (err error) {
		overview.CurrentlyWorking, err = s.dashboardRepository.CountCurrentlyWorking(gctx)
		return err
	})
	g.Go(func() (err error) {
		colleges, err = s.dashboardRepository.EducationDistribution(gctx, columnCollege)
		return err
	})
	g.Go(func() (err error) {
		companies, err = s.dashboardRepository.JobDistribution(gctx, columnCompany)
		return err
	})
	g.Go(func() (err error) {
		overview.PendingWithdrawals, err = s.withdrawalRepository.CountByStatus(gctx, domain.WithdrawalStatusPending)
		return err
	})
	g.Go(func() (err error) {
		overview.TotalPointsAwarded, err = s.pointsRepository.GetTotalAwarded(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error().Err(err).Msg("failed to build dashboard overview")
		return nil, err
	}

	overview.UniqueColleges = int64(len(colleges))
	overview.UniqueCompanies = int64(len(companies))
	for _, company := range companies {
		if company.Count <= domain.StartupMaxEmployees {
			overview.UniqueStartups++
		}
	}
	return overview, nil
}

func (s *dashboardService) GetEducationStats(ctx context.Context) (*domain.EducationDashboardStats, error) {
	stats := &domain.EducationDashboardStats{}
	var degrees, colleges []domain.NameCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalStudents, err = s.dashboardRepository.CountEducation(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.CurrentlyStudyingCount, err = s.dashboardRepository.CountCurrentlyStudying(gctx)
		return err
	})
	g.Go(func() (err error) {
		degrees, err = s.dashboardRepository.EducationDistribution(gctx, columnDegree)
		return err
	})
	g.Go(func() (err error) {
		colleges, err = s.dashboardRepository.EducationDistribution(gctx, columnCollege)
		return err
	})
	g.Go(func() error {
		avg, err := s.dashboardRepository.AverageCgpa(gctx)
		stats.AverageCgpa = avg.Round(2).InexactFloat64()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.UniqueColleges = int64(len(colleges))
	stats.DegreeDistribution = toMap(degrees)
	stats.CollegeDistribution = toMap(colleges)
	return stats, nil
}

func (s *dashboardService) GetJobStats(ctx context.Context) (*domain.JobDashboardStats, error) {
	stats := &domain.JobDashboardStats{}
	var industries, roles, companies []domain.NameCount

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalEmployees, err = s.dashboardRepository.CountJobs(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.CurrentlyWorkingCount, err = s.dashboardRepository.CountCurrentlyWorking(gctx)
		return err
	})
	g.Go(func() (err error) {
		industries, err = s.dashboardRepository.JobDistribution(gctx, columnIndustry)
		return err
	})
	g.Go(func() (err error) {
		roles, err = s.dashboardRepository.JobDistribution(gctx, columnRole)
		return err
	})
	g.Go(func() (err error) {
		companies, err = s.dashboardRepository.JobDistribution(gctx, columnCompany)
		return err
	})
	g.Go(func() error {
		avg, err := s.dashboardRepository.AverageExperience(gctx)
		stats.AverageExperience = avg.Round(2).InexactFloat64()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats.UniqueCompanies = int64(len(companies))
	stats.IndustryDistribution = toMap(industries)
	stats.RoleDistribution = toMap(roles)
	stats.CompanyDistribution = toMap(companies)
	return stats, nil
}

func (s *dashboardService) GetCollegeComparison(ctx context.Context) ([]domain.NameCount, error) {
	return nonNil(s.dashboardRepository.EducationDistribution(ctx, columnCollege))
}

func (s *dashboardService) GetCompanyComparison(ctx context.Context) ([]domain.NameCount, error) {
	return nonNil(s.dashboardRepository.JobDistribution(ctx, columnCompany))
}

func nonNil(rows []domain.NameCount, err error) ([]domain.NameCount, error) {
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []domain.NameCount{}
	}
	return rows, nil
}

func toMap(rows []domain.NameCount) map[string]int64 {
	m := make(map[string]int64, len(rows))
	for _, row := range rows {
		m[row.Name] = row.Count
	}
	return m
}
