package education

import (
	"career-bridge/domain"
	"career-bridge/internal/testutil"
	"career-bridge/internal/utils/logger"
	"career-bridge/internal/utils/storage"
	"career-bridge/pkg/points"
	"context"
	"encoding/json"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const baseURL = "http://localhost:8080/files"

type fixture struct {
	db     *gorm.DB
	svc    EducationService
	points points.PointsService
	dir    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	log := logger.Nop()
	dir := t.TempDir()
	pointsService := points.NewPointsService(points.NewPointsRepository(db), log)
	return &fixture{
		db:     db,
		svc:    NewEducationService(NewEducationRepository(db), pointsService, storage.NewLocalStorage(dir, baseURL), log),
		points: pointsService,
		dir:    dir,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			n++
		}
		return err
	})
	require.NoError(t, err)
	return n
}

func TestSaveEducationDetailsWithCertificates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "Asha").ID.String()

	saved, award, err := f.svc.SaveEducationDetails(ctx, domain.SaveEducationDetailsRequest{
		Data: domain.EducationDetailsRequest{
			CollegeName:       ptr("PSG College of Technology"),
			Degree:            ptr("B.E"),
			Cgpa:              ptr(8.4),
			StartDate:         ptr("2021-08-01"),
			EndDate:           ptr(" "),
			CurrentlyStudying: ptr(true),
			CollegeActivities: ptr(`[{"name":"Robotics club"},{"name":"Hackathon"}]`),
		},
		TenthMarksheet: testutil.FileHeader(t, "tenth_marksheet", "tenth.pdf", testutil.PDF),
		ActivityCertificates: map[int]*multipart.FileHeader{
			1: testutil.FileHeader(t, "activityCertificate1", "cert.PDF", testutil.PDF),
			4: testutil.FileHeader(t, "activityCertificate4", "ignored.pdf", testutil.PDF),
		},
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, 10, award.PointsEarned)
	assert.Equal(t, domain.MessagePointsEducationForm, award.PointsMessage)

	assert.True(t, strings.HasPrefix(saved.TenthMarksheet, baseURL+"/marksheets/"))
	assert.Empty(t, saved.TwelfthMarksheet)
	require.NotNil(t, saved.StartDate)
	assert.Equal(t, "2021-08-01", *saved.StartDate)
	assert.Nil(t, saved.EndDate)
	assert.True(t, saved.CurrentlyStudying)

	var activities []map[string]any
	require.NoError(t, json.Unmarshal([]byte(saved.CollegeActivities), &activities))
	require.Len(t, activities, 2)
	assert.NotContains(t, activities[0], "certificatePath")
	cert, ok := activities[1]["certificatePath"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(cert, baseURL+"/activity-certificates/"))
	assert.True(t, strings.HasSuffix(cert, ".pdf"))

	// index 4 has no matching activity, so only two files land on disk
	assert.Equal(t, 2, countFiles(t, f.dir))

	balance, err := f.points.GetUserPoints(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 10, balance.Points)
}

func TestSaveEducationDetailsAlwaysCreates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "Ravi").ID.String()

	for _, degree := range []string{"B.Sc", "M.Sc"} {
		_, _, err := f.svc.SaveEducationDetails(ctx, domain.SaveEducationDetailsRequest{
			Data: domain.EducationDetailsRequest{Degree: ptr(degree)},
		}, userID)
		require.NoError(t, err)
	}

	all, err := f.svc.GetAllByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	latest, err := f.svc.GetLatestByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "M.Sc", latest.Degree)
}

func TestSaveEducationDetailsDiscardsUploadsOnFailure(t *testing.T) {
	f := newFixture(t)
	userID := testutil.CreateUser(t, f.db, "Meera").ID.String()

	_, _, err := f.svc.SaveEducationDetails(context.Background(), domain.SaveEducationDetailsRequest{
		Data:             domain.EducationDetailsRequest{Degree: ptr("B.Com")},
		TenthMarksheet:   testutil.FileHeader(t, "tenth_marksheet", "tenth.pdf", testutil.PDF),
		TwelfthMarksheet: testutil.FileHeader(t, "twelfth_marksheet", "notes.txt", []byte("plain text notes")),
	}, userID)
	require.ErrorIs(t, err, storage.ErrFileTypeNotAllowed)
	assert.Zero(t, countFiles(t, f.dir))

	_, err = f.svc.GetLatestByUser(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrEducationDetailsNotFound)
}

func TestSaveEducationDetailsRejectsMalformedActivities(t *testing.T) {
	f := newFixture(t)
	userID := testutil.CreateUser(t, f.db, "Kiran").ID.String()

	_, _, err := f.svc.SaveEducationDetails(context.Background(), domain.SaveEducationDetailsRequest{
		Data: domain.EducationDetailsRequest{CollegeActivities: ptr("not json")},
		ActivityCertificates: map[int]*multipart.FileHeader{
			0: testutil.FileHeader(t, "activityCertificate0", "cert.pdf", testutil.PDF),
		},
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidCollegeActivitiesJSON)
}

func TestUpdateEducationDetailsPatchesLatest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "Nisha").ID.String()

	_, _, err := f.svc.UpdateEducationDetails(ctx, domain.EducationDetailsRequest{Degree: ptr("B.Tech")}, userID)
	require.ErrorIs(t, err, domain.ErrEducationDetailsNotFound)

	_, _, err = f.svc.SaveEducationDetails(ctx, domain.SaveEducationDetailsRequest{
		Data: domain.EducationDetailsRequest{
			CollegeName: ptr("Anna University"),
			Degree:      ptr("B.Tech"),
			Cgpa:        ptr(7.5),
			StartDate:   ptr("2020-07-01"),
		},
	}, userID)
	require.NoError(t, err)

	updated, award, err := f.svc.UpdateEducationDetails(ctx, domain.EducationDetailsRequest{
		Cgpa:      ptr(8.1),
		StartDate: ptr(""),
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, domain.MessagePointsEducationUpdate, award.PointsMessage)
	assert.Equal(t, "Anna University", updated.CollegeName)
	assert.Equal(t, "B.Tech", updated.Degree)
	assert.Equal(t, 8.1, *updated.Cgpa)
	assert.Nil(t, updated.StartDate)

	balance, err := f.points.GetUserPoints(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 20, balance.Points)
}

func TestGetByIDScopesToOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, f.db, "Dev").ID.String()
	other := testutil.CreateUser(t, f.db, "Farah").ID.String()

	saved, _, err := f.svc.SaveEducationDetails(ctx, domain.SaveEducationDetailsRequest{
		Data: domain.EducationDetailsRequest{Degree: ptr("BBA")},
	}, owner)
	require.NoError(t, err)

	got, err := f.svc.GetByID(ctx, saved.ID, owner, domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = f.svc.GetByID(ctx, saved.ID, other, domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrEducationDetailsNotFound)

	_, err = f.svc.GetByID(ctx, saved.ID, other, domain.RoleAdmin)
	assert.NoError(t, err)

	_, err = f.svc.GetByID(ctx, "not-a-uuid", owner, domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrEducationDetailsNotFound)
}

func TestCollegeQueries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	records := []domain.EducationDetailsRequest{
		{CollegeName: ptr("PSG College"), Degree: ptr("B.E"), Specialization: ptr("CSE"), Cgpa: ptr(8.0), CurrentlyStudying: ptr(true)},
		{CollegeName: ptr("PSG College"), Degree: ptr("B.E"), Specialization: ptr("ECE"), Cgpa: ptr(9.0)},
		{CollegeName: ptr("psg college"), Degree: ptr("M.E"), Specialization: ptr("CSE"), CurrentlyStudying: ptr(true)},
		{CollegeName: ptr("Loyola College"), Degree: ptr("B.Sc")},
	}
	for i, data := range records {
		userID := testutil.CreateUser(t, f.db, "Student"+string(rune('A'+i))).ID.String()
		_, _, err := f.svc.SaveEducationDetails(ctx, domain.SaveEducationDetailsRequest{Data: data}, userID)
		require.NoError(t, err)
	}

	matches, err := f.svc.GetByCollege(ctx, "PSG")
	require.NoError(t, err)
	assert.Len(t, matches, 3)

	colleges, err := f.svc.GetColleges(ctx)
	require.NoError(t, err)
	require.Len(t, colleges, 3)
	assert.Equal(t, domain.NameCount{Name: "PSG College", Count: 2}, colleges[0])

	stats, err := f.svc.GetCollegeStats(ctx, "psg")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, map[string]int64{"B.E": 2, "M.E": 1}, stats.DegreeDistribution)
	assert.Equal(t, map[string]int64{"CSE": 2, "ECE": 1}, stats.SpecializationDistribution)
	assert.Equal(t, 8.5, stats.AverageCgpa)
	assert.Equal(t, 2, stats.CurrentlyStudyingCount)

	empty, err := f.svc.GetCollegeStats(ctx, "unknown")
	require.NoError(t, err)
	assert.Zero(t, empty.TotalStudents)
	assert.Zero(t, empty.AverageCgpa)
	assert.Empty(t, empty.DegreeDistribution)
}
