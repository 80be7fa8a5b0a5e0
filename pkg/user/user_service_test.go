package user

import (
	"career-bridge/domain"
	"career-bridge/entities"
	"career-bridge/internal/testutil"
	"career-bridge/internal/utils/logger"
	"career-bridge/pkg/jwt"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMailer struct {
	to   string
	body string
	err  error
}

func (m *fakeMailer) SendMail(toEmail string, _ string, body string) error {
	m.to = toEmail
	m.body = body
	return m.err
}

var tokenInLink = regexp.MustCompile(`token=([^"]+)`)

func newTestService(t *testing.T) (UserService, *fakeMailer, jwt.JWTService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	mailer := &fakeMailer{}
	jwtService := jwt.NewJWTServiceWithSecret("test-secret")
	return NewUserService(NewUserRepository(db), jwtService, mailer, logger.Nop()), mailer, jwtService, db
}

func register(t *testing.T, svc UserService, email string) *domain.UserResponse {
	t.Helper()
	user, err := svc.Register(context.Background(), domain.UserRegisterRequest{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     email,
		Password:  "secret123",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, jwtService, _ := newTestService(t)
	ctx := context.Background()

	user := register(t, svc, " Asha@Example.com ")
	assert.Equal(t, "asha@example.com", user.Email)
	assert.True(t, user.IsActive)
	assert.True(t, user.IsNewUser)

	_, err := svc.Register(ctx, domain.UserRegisterRequest{FirstName: "Dup", Email: "asha@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	res, err := svc.Login(ctx, domain.LoginRequest{Email: "ASHA@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, res.Role)

	id, role, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, domain.RoleUser, role)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "asha@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestInactiveUserCannotLogin(t *testing.T) {
	svc, _, _, db := newTestService(t)
	user := register(t, svc, "inactive@example.com")

	require.NoError(t, db.Model(&entities.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "inactive@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMarkExistingUser(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()
	user := register(t, svc, "new@example.com")

	require.NoError(t, svc.MarkExistingUser(ctx, user.ID))

	me, err := svc.GetMe(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, me.IsNewUser)

	count, err := svc.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestVerifyEmail(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	register(t, svc, "known@example.com")

	assert.NoError(t, svc.VerifyEmail(context.Background(), domain.VerifyEmailRequest{Email: "Known@example.com"}))
	assert.ErrorIs(t, svc.VerifyEmail(context.Background(), domain.VerifyEmailRequest{Email: "unknown@example.com"}), domain.ErrUserNotFound)
}

func TestForgotAndResetPassword(t *testing.T) {
	svc, mailer, _, _ := newTestService(t)
	ctx := context.Background()
	register(t, svc, "reset@example.com")

	require.NoError(t, svc.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "reset@example.com"}))
	assert.Equal(t, "reset@example.com", mailer.to)

	match := tokenInLink.FindStringSubmatch(mailer.body)
	require.Len(t, match, 2)

	require.NoError(t, svc.ResetPassword(ctx, domain.ResetPasswordRequest{Token: match[1], NewPassword: "brand-new"}))

	_, err := svc.Login(ctx, domain.LoginRequest{Email: "reset@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = svc.Login(ctx, domain.LoginRequest{Email: "reset@example.com", Password: "brand-new"})
	assert.NoError(t, err)
}

func TestResetPasswordRejectsForeignTokens(t *testing.T) {
	svc, _, jwtService, _ := newTestService(t)
	ctx := context.Background()
	user := register(t, svc, "victim@example.com")

	access := jwtService.GenerateTokenUser(user.ID, domain.RoleUser)
	assert.Error(t, svc.ResetPassword(ctx, domain.ResetPasswordRequest{Token: access, NewPassword: "hijacked"}))

	adminToken, err := jwtService.GenerateTokenForgetPassword(map[string]any{
		"email":   "victim@example.com",
		"role":    domain.RoleAdmin,
		"purpose": jwt.PurposeResetPassword,
	}, time.Minute)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.ResetPassword(ctx, domain.ResetPasswordRequest{Token: adminToken, NewPassword: "hijacked"}), domain.ErrInvalidResetPurpose)
}

func TestForgotPasswordReportsMailFailure(t *testing.T) {
	svc, mailer, _, _ := newTestService(t)
	register(t, svc, "mailfail@example.com")
	mailer.err = errors.New("smtp down")

	err := svc.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{Email: "mailfail@example.com"})
	assert.ErrorIs(t, err, mailer.err)

	err = svc.ForgotPassword(context.Background(), domain.ForgotPasswordRequest{Email: "ghost@example.com"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
