package personal

import (
	"career-bridge/domain"
	"career-bridge/internal/testutil"
	"career-bridge/internal/utils/logger"
	"career-bridge/internal/utils/storage"
	"career-bridge/pkg/points"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db     *gorm.DB
	svc    PersonalService
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
		svc:    NewPersonalService(NewPersonalRepository(db), pointsService, storage.NewLocalStorage(dir, "http://localhost:8080/files"), log),
		points: pointsService,
		dir:    dir,
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestSavePersonalDetailsAwardsPoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "Asha").ID.String()

	saved, award, err := f.svc.SavePersonalDetails(ctx, domain.SavePersonalDetailsRequest{
		Data: domain.PersonalDetailsRequest{
			Name:  ptr("Asha Rao"),
			Email: ptr("asha@example.com"),
			City:  ptr("Pune"),
			Age:   ptr(21),
		},
		ProfilePhoto: testutil.FileHeader(t, "profile_photo", "Me.PNG", testutil.PNG),
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, "Pune", saved.City)
	assert.Equal(t, 21, *saved.Age)
	assert.Equal(t, 10, award.PointsEarned)
	assert.Equal(t, domain.MessagePointsPersonalForm, award.PointsMessage)

	require.True(t, strings.HasPrefix(saved.ProfilePhoto, "http://localhost:8080/files/profile-photos/"))
	require.True(t, strings.HasSuffix(saved.ProfilePhoto, ".png"))
	key := strings.TrimPrefix(saved.ProfilePhoto, "http://localhost:8080/files/")
	_, err = os.Stat(filepath.Join(f.dir, filepath.FromSlash(key)))
	assert.NoError(t, err)

	balance, err := f.points.GetUserPoints(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 10, balance.Points)
}

func TestSavePersonalDetailsRejectsNonImagePhoto(t *testing.T) {
	f := newFixture(t)
	userID := testutil.CreateUser(t, f.db, "Ravi").ID.String()

	_, _, err := f.svc.SavePersonalDetails(context.Background(), domain.SavePersonalDetailsRequest{
		Data:         domain.PersonalDetailsRequest{Name: ptr("Ravi")},
		ProfilePhoto: testutil.FileHeader(t, "profile_photo", "cv.pdf", testutil.PDF),
	}, userID)
	assert.ErrorIs(t, err, storage.ErrFileTypeNotAllowed)

	_, err = f.svc.GetLatestByUser(context.Background(), userID)
	assert.ErrorIs(t, err, domain.ErrPersonalDetailsNotFound)
}

func TestUpdatePatchesLatestRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "Meera").ID.String()

	_, _, err := f.svc.UpdatePersonalDetails(ctx, domain.PersonalDetailsRequest{City: ptr("Delhi")}, userID)
	require.ErrorIs(t, err, domain.ErrPersonalDetailsNotFound)

	_, _, err = f.svc.SavePersonalDetails(ctx, domain.SavePersonalDetailsRequest{
		Data: domain.PersonalDetailsRequest{Name: ptr("Meera"), City: ptr("Chennai"), Phone: ptr("9000000000")},
	}, userID)
	require.NoError(t, err)

	updated, award, err := f.svc.UpdatePersonalDetails(ctx, domain.PersonalDetailsRequest{City: ptr("Delhi")}, userID)
	require.NoError(t, err)
	assert.Equal(t, "Delhi", updated.City)
	assert.Equal(t, "9000000000", updated.Phone)
	assert.Equal(t, "Meera", updated.Name)
	assert.Equal(t, domain.MessagePointsPersonalUpdate, award.PointsMessage)

	balance, err := f.points.GetUserPoints(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 20, balance.Points)

	all, err := f.svc.GetAllByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveAlwaysCreatesNewRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "Dev").ID.String()

	for _, city := range []string{"Goa", "Kochi"} {
		_, _, err := f.svc.SavePersonalDetails(ctx, domain.SavePersonalDetailsRequest{
			Data: domain.PersonalDetailsRequest{City: ptr(city)},
		}, userID)
		require.NoError(t, err)
	}

	all, err := f.svc.GetAllByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	rows, total, err := f.svc.GetAll(ctx, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)
}

func TestUpdateProfilePhotoReplacesFile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID := testutil.CreateUser(t, f.db, "Farah").ID.String()

	saved, _, err := f.svc.SavePersonalDetails(ctx, domain.SavePersonalDetailsRequest{
		Data:         domain.PersonalDetailsRequest{Name: ptr("Farah")},
		ProfilePhoto: testutil.FileHeader(t, "profile_photo", "old.png", testutil.PNG),
	}, userID)
	require.NoError(t, err)
	oldPath := filepath.Join(f.dir, filepath.FromSlash(strings.TrimPrefix(saved.ProfilePhoto, "http://localhost:8080/files/")))

	updated, err := f.svc.UpdateProfilePhoto(ctx, testutil.FileHeader(t, "profile_photo", "new.png", testutil.PNG), userID)
	require.NoError(t, err)
	assert.NotEqual(t, saved.ProfilePhoto, updated.ProfilePhoto)

	_, err = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err))

	_, err = f.svc.UpdateProfilePhoto(ctx, nil, userID)
	assert.ErrorIs(t, err, domain.ErrProfilePhotoRequired)
}

func TestGetByIDIsScopedToOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	db := f.db
	owner := testutil.CreateUser(t, db, "Owner").ID.String()
	stranger := testutil.CreateUser(t, db, "Stranger").ID.String()

	saved, _, err := f.svc.SavePersonalDetails(ctx, domain.SavePersonalDetailsRequest{
		Data: domain.PersonalDetailsRequest{Name: ptr("Owner")},
	}, owner)
	require.NoError(t, err)

	_, err = f.svc.GetByID(ctx, saved.ID, owner, domain.RoleUser)
	assert.NoError(t, err)
	_, err = f.svc.GetByID(ctx, saved.ID, stranger, domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrPersonalDetailsNotFound)
	_, err = f.svc.GetByID(ctx, saved.ID, stranger, domain.RoleAdmin)
	assert.NoError(t, err)
}
