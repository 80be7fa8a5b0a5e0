package activity

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"career-bridge/internal/testutil"
	"career-bridge/internal/utils/logger"
	"career-bridge/internal/utils/storage"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const baseURL = "http://localhost:8080/files"

func newTestService(t *testing.T) (ActivityService, *gorm.DB, string) {
	t.Helper()
	db := testutil.NewDB(t)
	dir := t.TempDir()
	return NewActivityService(NewActivityRepository(db), storage.NewLocalStorage(dir, baseURL), logger.Nop()), db, dir
}

func createEducation(t *testing.T, db *gorm.DB, userID uuid.UUID) uuid.UUID {
	t.Helper()
	education := &entities.EducationDetails{
		ID:          uuid.New(),
		UserID:      userID,
		CollegeName: "PSG College",
		Timestamp:   entities.Timestamp{CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	require.NoError(t, db.Create(education).Error)
	return education.ID
}

func TestSaveActivityWithCertificate(t *testing.T) {
	svc, db, dir := newTestService(t)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "Asha")
	educationID := createEducation(t, db, user.ID)

	saved, err := svc.SaveActivity(ctx, domain.SaveActivityRequest{
		Data: domain.ActivityRequest{
			EducationID: educationID.String(),
			Activity:    " Robotics club ",
			Role:        "Lead",
			StartDate:   "2023-01-10",
		},
		Certificate: testutil.FileHeader(t, "certificate", "award.pdf", testutil.PDF),
	}, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Robotics club", saved.Activity)
	require.NotNil(t, saved.EducationID)
	assert.Equal(t, educationID.String(), *saved.EducationID)
	assert.Nil(t, saved.EndDate)
	require.True(t, strings.HasPrefix(saved.Certificate, baseURL+"/activity-certificates/"))

	key := strings.TrimPrefix(saved.Certificate, baseURL+"/")
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)

	byEducation, err := svc.ListByEducation(ctx, educationID.String(), user.ID.String(), domain.RoleUser)
	require.NoError(t, err)
	assert.Len(t, byEducation, 1)

	byUser, err := svc.ListByUser(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Len(t, byUser, 1)
}

func TestSaveActivityRejectsForeignEducation(t *testing.T) {
	svc, db, _ := newTestService(t)
	owner := testutil.CreateUser(t, db, "Ravi")
	other := testutil.CreateUser(t, db, "Meera")
	educationID := createEducation(t, db, owner.ID)

	_, err := svc.SaveActivity(context.Background(), domain.SaveActivityRequest{
		Data: domain.ActivityRequest{EducationID: educationID.String(), Activity: "Debate"},
	}, other.ID.String())
	assert.ErrorIs(t, err, domain.ErrEducationDetailsNotFound)

	_, err = svc.ListByEducation(context.Background(), educationID.String(), other.ID.String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrEducationDetailsNotFound)

	_, err = svc.ListByEducation(context.Background(), educationID.String(), other.ID.String(), domain.RoleAdmin)
	assert.NoError(t, err)
}

func TestDeleteActivityOwnerOnly(t *testing.T) {
	svc, db, dir := newTestService(t)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "Kiran")
	other := testutil.CreateUser(t, db, "Nisha")

	saved, err := svc.SaveActivity(ctx, domain.SaveActivityRequest{
		Data:        domain.ActivityRequest{Activity: "Hackathon"},
		Certificate: testutil.FileHeader(t, "certificate", "winner.png", testutil.PNG),
	}, owner.ID.String())
	require.NoError(t, err)

	err = svc.DeleteActivity(ctx, saved.ID, other.ID.String())
	require.ErrorIs(t, err, domain.ErrActivityNotFound)

	require.NoError(t, svc.DeleteActivity(ctx, saved.ID, owner.ID.String()))

	remaining, err := svc.ListByUser(ctx, owner.ID.String())
	require.NoError(t, err)
	assert.Empty(t, remaining)

	key := strings.TrimPrefix(saved.Certificate, baseURL+"/")
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, svc.DeleteActivity(ctx, saved.ID, owner.ID.String()), domain.ErrActivityNotFound)
}
