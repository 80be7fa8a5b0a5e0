package admin

import (
	"career-bridge/domain"
	"career-bridge/internal/testutil"
	"career-bridge/internal/utils/logger"
	"career-bridge/pkg/jwt"
	"context"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	body string
}

func (m *fakeMailer) SendMail(_ string, _ string, body string) error {
	m.body = body
	return nil
}

func newTestService(t *testing.T) (AdminService, *fakeMailer, jwt.JWTService) {
	t.Helper()
	db := testutil.NewDB(t)
	mailer := &fakeMailer{}
	jwtService := jwt.NewJWTServiceWithSecret("test-secret")
	return NewAdminService(NewAdminRepository(db), jwtService, mailer, logger.Nop()), mailer, jwtService
}

func TestAdminRegisterLoginRecordsLastLogin(t *testing.T) {
	svc, _, jwtService := newTestService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, domain.AdminRegisterRequest{Name: "Root", Email: "root@careerbridge.in", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, created.Role)
	assert.Nil(t, created.LastLogin)

	_, err = svc.Register(ctx, domain.AdminRegisterRequest{Name: "Again", Email: "ROOT@careerbridge.in", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	res, err := svc.Login(ctx, domain.LoginRequest{Email: "root@careerbridge.in", Password: "admin123"})
	require.NoError(t, err)
	_, role, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, role)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.LastLogin)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "root@careerbridge.in", Password: "nope"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)

	count, err := svc.CountAdmins(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAdminPasswordReset(t *testing.T) {
	svc, mailer, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.AdminRegisterRequest{Name: "Ops", Email: "ops@careerbridge.in", Password: "admin123"})
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(ctx, domain.VerifyEmailRequest{Email: "ops@careerbridge.in"}))

	require.NoError(t, svc.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "ops@careerbridge.in"}))
	match := regexp.MustCompile(`token=([^"]+)`).FindStringSubmatch(mailer.body)
	require.Len(t, match, 2)

	require.NoError(t, svc.ResetPassword(ctx, domain.ResetPasswordRequest{Token: match[1], NewPassword: "rotated1"}))
	_, err = svc.Login(ctx, domain.LoginRequest{Email: "ops@careerbridge.in", Password: "rotated1"})
	assert.NoError(t, err)
}
