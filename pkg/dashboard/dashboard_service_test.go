package dashboard

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"career-bridge/internal/testutil"
	"career-bridge/internal/utils/logger"
	"career-bridge/pkg/points"
	"career-bridge/pkg/user"
	"career-bridge/pkg/withdrawal"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (DashboardService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	return NewDashboardService(
		NewDashboardRepository(db),
		user.NewUserRepository(db),
		points.NewPointsRepository(db),
		withdrawal.NewWithdrawalRepository(db),
		logger.Nop(),
	), db
}

func stamp() entities.Timestamp {
	return entities.Timestamp{CreatedAt: time.Now(), UpdatedAt: time.Now()}
}

func addEducation(t *testing.T, db *gorm.DB, userID uuid.UUID, college, degree string, cgpa *float64, studying bool) {
	t.Helper()
	require.NoError(t, db.Create(&entities.EducationDetails{
		ID:                uuid.New(),
		UserID:            userID,
		CollegeName:       college,
		Degree:            degree,
		Cgpa:              cgpa,
		CurrentlyStudying: studying,
		Timestamp:         stamp(),
	}).Error)
}

func addJob(t *testing.T, db *gorm.DB, userID uuid.UUID, company, role, industry string, experience *float64, working bool) {
	t.Helper()
	require.NoError(t, db.Create(&entities.JobDetails{
		ID:               uuid.New(),
		UserID:           userID,
		CompanyName:      company,
		Role:             role,
		Industry:         industry,
		Experience:       experience,
		CurrentlyWorking: working,
		Timestamp:        stamp(),
	}).Error)
}

func ptr[T any](v T) *T {
	return &v
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()
	ctx := context.Background()
	asha := testutil.CreateUser(t, db, "Asha")
	ravi := testutil.CreateUser(t, db, "Ravi")

	addEducation(t, db, asha.ID, "PSG College", "B.E", ptr(8.0), true)
	addEducation(t, db, ravi.ID, "PSG College", "B.E", ptr(9.0), false)
	addEducation(t, db, ravi.ID, "Loyola College", "B.Sc", nil, true)

	addJob(t, db, asha.ID, "Zoho", "SDE", "Software", ptr(1.0), true)
	addJob(t, db, ravi.ID, "Zoho", "QA", "Software", ptr(2.0), false)
	addJob(t, db, ravi.ID, "Tata Steel", "Analyst", "Manufacturing", nil, true)
	for i := 0; i < domain.StartupMaxEmployees+1; i++ {
		addJob(t, db, asha.ID, "Infosys", "Engineer", "Software", nil, false)
	}

	pointsService := points.NewPointsService(points.NewPointsRepository(db), logger.Nop())
	_, err := pointsService.AddPointsDirect(ctx, asha.ID.String(), 40, "")
	require.NoError(t, err)
	_, err = pointsService.DeductPoints(ctx, asha.ID.String(), 10, "")
	require.NoError(t, err)

	for i, status := range []string{domain.WithdrawalStatusPending, domain.WithdrawalStatusPending, domain.WithdrawalStatusCompleted} {
		require.NoError(t, db.Create(&entities.Withdrawal{
			ID:            uuid.New(),
			UserID:        asha.ID,
			Amount:        decimal.NewFromInt(100),
			PointsUsed:    25,
			PaymentMethod: domain.PaymentMethodUpi,
			UpiID:         "asha@upi",
			Status:        status,
			TransactionID: fmt.Sprintf("TXN-%d", i),
			Timestamp:     stamp(),
		}).Error)
	}
}

func TestOverview(t *testing.T) {
	svc, db := newTestService(t)
	seed(t, db)

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &domain.DashboardOverview{
		TotalUsers:         2,
		TotalStudents:      3,
		TotalEmployees:     3 + domain.StartupMaxEmployees + 1,
		UniqueColleges:     2,
		UniqueCompanies:    3,
		CurrentlyWorking:   2,
		UniqueStartups:     2,
		PendingWithdrawals: 2,
		TotalPointsAwarded: 40,
	}, overview)
}

func TestEducationStats(t *testing.T) {
	svc, db := newTestService(t)
	seed(t, db)

	stats, err := svc.GetEducationStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalStudents)
	assert.EqualValues(t, 2, stats.UniqueColleges)
	assert.Equal(t, map[string]int64{"B.E": 2, "B.Sc": 1}, stats.DegreeDistribution)
	assert.Equal(t, map[string]int64{"PSG College": 2, "Loyola College": 1}, stats.CollegeDistribution)
	assert.Equal(t, 8.5, stats.AverageCgpa)
	assert.EqualValues(t, 2, stats.CurrentlyStudyingCount)
}

func TestJobStats(t *testing.T) {
	svc, db := newTestService(t)
	seed(t, db)

	stats, err := svc.GetJobStats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.UniqueCompanies)
	assert.EqualValues(t, 2, stats.CurrentlyWorkingCount)
	assert.Equal(t, int64(2+domain.StartupMaxEmployees+1), stats.IndustryDistribution["Software"])
	assert.EqualValues(t, 1, stats.IndustryDistribution["Manufacturing"])
	assert.EqualValues(t, 1, stats.RoleDistribution["SDE"])
	assert.Equal(t, 1.5, stats.AverageExperience)
}

func TestComparisons(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	colleges, err := svc.GetCollegeComparison(ctx)
	require.NoError(t, err)
	assert.Empty(t, colleges)
	assert.NotNil(t, colleges)

	seed(t, db)

	colleges, err = svc.GetCollegeComparison(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.NameCount{
		{Name: "PSG College", Count: 2},
		{Name: "Loyola College", Count: 1},
	}, colleges)

	companies, err := svc.GetCompanyComparison(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 3)
	assert.Equal(t, "Infosys", companies[0].Name)
	assert.EqualValues(t, domain.StartupMaxEmployees+1, companies[0].Count)
}

func TestEmptyDashboard(t *testing.T) {
	svc, _ := newTestService(t)

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, *overview)

	stats, err := svc.GetJobStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.AverageExperience)
	assert.Empty(t, stats.RoleDistribution)
}
