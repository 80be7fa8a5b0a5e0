package routes_test

import (
	"bytes"
	"career-bridge/domain"
	"career-bridge/internal/api/handlers"
	"career-bridge/internal/api/routes"
	"career-bridge/internal/middleware"
	"career-bridge/internal/testutil"
	"career-bridge/internal/utils"
	"career-bridge/internal/utils/logger"
	"career-bridge/internal/utils/storage"
	"career-bridge/pkg/activity"
	"career-bridge/pkg/admin"
	"career-bridge/pkg/bankaccount"
	"career-bridge/pkg/dashboard"
	"career-bridge/pkg/education"
	"career-bridge/pkg/job"
	"career-bridge/pkg/jwt"
	"career-bridge/pkg/payout"
	"career-bridge/pkg/personal"
	"career-bridge/pkg/points"
	"career-bridge/pkg/user"
	"career-bridge/pkg/withdrawal"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopMailer struct{}

func (nopMailer) SendMail(string, string, string) error { return nil }

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type testApp struct {
	app        *fiber.App
	jwtService jwt.JWTService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	db := testutil.NewDB(t)
	log := logger.Nop()
	utils.InitValidator()
	validator := utils.Validate

	dir := t.TempDir()
	fileStorage := storage.NewLocalStorage(dir, "http://localhost:8080/files")
	jwtService := jwt.NewJWTServiceWithSecret("test-secret")

	userRepository := user.NewUserRepository(db)
	pointsRepository := points.NewPointsRepository(db)
	withdrawalRepository := withdrawal.NewWithdrawalRepository(db)
	bankAccountRepository := bankaccount.NewBankAccountRepository(db)

	pointsService := points.NewPointsService(pointsRepository, log)
	withdrawalService := withdrawal.NewWithdrawalService(withdrawalRepository, bankAccountRepository,
		pointsService, payout.NewManualPayoutService(), nil, log)
	dashboardService := dashboard.NewDashboardService(dashboard.NewDashboardRepository(db),
		userRepository, pointsRepository, withdrawalRepository, log)

	app := fiber.New()
	cfg := routes.Config{
		App:                app,
		UserHandler:        handlers.NewUserHandler(user.NewUserService(userRepository, jwtService, nopMailer{}, log), validator),
		AdminHandler:       handlers.NewAdminHandler(admin.NewAdminService(admin.NewAdminRepository(db), jwtService, nopMailer{}, log), validator),
		PointsHandler:      handlers.NewPointsHandler(pointsService, validator),
		WithdrawalHandler:  handlers.NewWithdrawalHandler(withdrawalService, validator),
		BankAccountHandler: handlers.NewBankAccountHandler(bankaccount.NewBankAccountService(bankAccountRepository, log), validator),
		PersonalHandler:    handlers.NewPersonalHandler(personal.NewPersonalService(personal.NewPersonalRepository(db), pointsService, fileStorage, log), validator),
		EducationHandler:   handlers.NewEducationHandler(education.NewEducationService(education.NewEducationRepository(db), pointsService, fileStorage, log), validator),
		JobHandler:         handlers.NewJobHandler(job.NewJobService(job.NewJobRepository(db), pointsService, fileStorage, log), validator),
		ActivityHandler:    handlers.NewActivityHandler(activity.NewActivityService(activity.NewActivityRepository(db), fileStorage, log), validator),
		DashboardHandler:   handlers.NewDashboardHandler(dashboardService),
		Middleware:         middleware.NewMiddleware(),
		JWTService:         jwtService,
		FilesDir:           dir,
	}
	cfg.Setup()
	return &testApp{app: app, jwtService: jwtService}
}

func (a *testApp) do(t *testing.T, req *http.Request, token string) (int, envelope) {
	t.Helper()
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp.StatusCode, body
}

func jsonRequest(t *testing.T, method string, target string, payload any) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func multipartRequest(t *testing.T, target string, data any, files map[string][]byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("data", string(raw)))

	for field, content := range files {
		part, err := writer.CreateFormFile(field, field+".bin")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return req
}

// registerAndLogin goes through the public user endpoints and returns a token.
func (a *testApp) registerAndLogin(t *testing.T, email string) string {
	t.Helper()
	status, _ := a.do(t, jsonRequest(t, http.MethodPost, "/api/v1/users/register", domain.UserRegisterRequest{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     email,
		Password:  "secret123",
	}), "")
	require.Equal(t, http.StatusCreated, status)

	status, body := a.do(t, jsonRequest(t, http.MethodPost, "/api/v1/users/login", domain.LoginRequest{
		Email:    email,
		Password: "secret123",
	}), "")
	require.Equal(t, http.StatusOK, status)

	var login domain.LoginResponse
	require.NoError(t, json.Unmarshal(body.Data, &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

func TestPingAndUnknownRoute(t *testing.T) {
	a := newTestApp(t)

	resp, err := a.app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	status, body := a.do(t, httptest.NewRequest(http.MethodGet, "/api/v2/nothing", nil), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domain.MessageRouteNotFound, body.Message)
}

func TestAuthenticatedRoutesRequireToken(t *testing.T) {
	a := newTestApp(t)

	status, body := a.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil), "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, body.Success)

	status, _ = a.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/points/user", nil), "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, status)

	token := a.registerAndLogin(t, "asha@example.com")
	status, body = a.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil), token)
	require.Equal(t, http.StatusOK, status)

	var me domain.UserResponse
	require.NoError(t, json.Unmarshal(body.Data, &me))
	assert.Equal(t, "asha@example.com", me.Email)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	a := newTestApp(t)
	a.registerAndLogin(t, "dup@example.com")

	status, body := a.do(t, jsonRequest(t, http.MethodPost, "/api/v1/users/register", domain.UserRegisterRequest{
		FirstName: "Other",
		Email:     "dup@example.com",
		Password:  "secret123",
	}), "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, domain.MessageFailedRegister, body.Message)
}

func TestAdminRoutesRejectUsers(t *testing.T) {
	a := newTestApp(t)
	token := a.registerAndLogin(t, "plain@example.com")

	for _, target := range []string{
		"/api/v1/dashboard/overview",
		"/api/v1/withdrawals/all",
		"/api/v1/personal/all",
		"/api/v1/users/count",
	} {
		status, _ := a.do(t, httptest.NewRequest(http.MethodGet, target, nil), token)
		assert.Equal(t, http.StatusForbidden, status, target)
	}

	adminToken := a.jwtService.GenerateTokenUser(uuid.NewString(), domain.RoleAdmin)
	status, body := a.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/overview", nil), adminToken)
	require.Equal(t, http.StatusOK, status)

	var overview domain.DashboardOverview
	require.NoError(t, json.Unmarshal(body.Data, &overview))
	assert.EqualValues(t, 1, overview.TotalUsers)
}

func TestPersonalSaveAwardsPoints(t *testing.T) {
	a := newTestApp(t)
	token := a.registerAndLogin(t, "meera@example.com")

	status, body := a.do(t, multipartRequest(t, "/api/v1/personal/save",
		map[string]any{"name": "Meera", "city": "Chennai"},
		map[string][]byte{"profile_photo": testutil.PNG},
	), token)
	require.Equal(t, http.StatusCreated, status, body.Error)

	var saved struct {
		Record        domain.PersonalDetails `json:"record"`
		PointsEarned  int                    `json:"points_earned"`
		PointsMessage string                 `json:"points_message"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &saved))
	assert.Equal(t, "Meera", saved.Record.Name)
	assert.True(t, strings.HasPrefix(saved.Record.ProfilePhoto, "http://localhost:8080/files/"))
	assert.Equal(t, 10, saved.PointsEarned)
	assert.Equal(t, domain.MessagePointsPersonalForm, saved.PointsMessage)

	status, body = a.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/points/user", nil), token)
	require.Equal(t, http.StatusOK, status)

	var balance domain.UserPoints
	require.NoError(t, json.Unmarshal(body.Data, &balance))
	assert.Equal(t, 10, balance.Points)
}

func TestPersonalSaveRequiresDataField(t *testing.T) {
	a := newTestApp(t)
	token := a.registerAndLogin(t, "nodata@example.com")

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("other", "x"))
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/personal/save", body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())

	status, resp := a.do(t, req, token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)
}

func TestCollegeStatsDecodesName(t *testing.T) {
	a := newTestApp(t)
	token := a.registerAndLogin(t, "student@example.com")

	status, body := a.do(t, multipartRequest(t, "/api/v1/education/save",
		map[string]any{"college_name": "PSG College", "degree": "B.E", "cgpa": 8.0, "currently_studying": true},
		nil,
	), token)
	require.Equal(t, http.StatusCreated, status, body.Error)

	status, body = a.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/education/college/PSG%20College/stats", nil), token)
	require.Equal(t, http.StatusOK, status)

	var stats domain.CollegeStats
	require.NoError(t, json.Unmarshal(body.Data, &stats))
	assert.Equal(t, "PSG College", stats.CollegeName)
	assert.Equal(t, 1, stats.TotalStudents)
	assert.Equal(t, 8.0, stats.AverageCgpa)
	assert.Equal(t, 1, stats.CurrentlyStudyingCount)
}

func TestWithdrawalWithoutPointsFails(t *testing.T) {
	a := newTestApp(t)
	token := a.registerAndLogin(t, "broke@example.com")

	status, body := a.do(t, jsonRequest(t, http.MethodPost, "/api/v1/withdrawals/request", map[string]any{
		"amount":         "100",
		"points_used":    25,
		"payment_method": domain.PaymentMethodUpi,
		"upi_id":         "broke@upi",
	}), token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, body.Success)
	assert.Contains(t, body.Error, domain.ErrInsufficientPoints.Error())

	status, body = a.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/withdrawals/user", nil), token)
	require.Equal(t, http.StatusOK, status)

	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &list))
	assert.Zero(t, list.Count)
}

func TestBankWithdrawalLifecycle(t *testing.T) {
	a := newTestApp(t)
	token := a.registerAndLogin(t, "saver@example.com")
	adminToken := a.jwtService.GenerateTokenUser(uuid.NewString(), domain.RoleAdmin)

	status, body := a.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil), token)
	require.Equal(t, http.StatusOK, status)
	var me domain.UserResponse
	require.NoError(t, json.Unmarshal(body.Data, &me))

	status, body = a.do(t, jsonRequest(t, http.MethodPost, "/api/v1/points/award", domain.AwardPointsRequest{
		UserID: me.ID,
		Points: 50,
	}), adminToken)
	require.Equal(t, http.StatusOK, status, body.Error)

	status, body = a.do(t, jsonRequest(t, http.MethodPost, "/api/v1/withdrawals/request", map[string]any{
		"amount":         "100",
		"points_used":    25,
		"payment_method": domain.PaymentMethodBank,
		"bank_details":   "x",
	}), token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, body.Success)

	status, body = a.do(t, jsonRequest(t, http.MethodPost, "/api/v1/withdrawals/request", map[string]any{
		"amount":         "100",
		"points_used":    25,
		"payment_method": domain.PaymentMethodBank,
		"bank_details":   map[string]any{},
	}), token)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body.Error, domain.ErrBankDetailsRequired.Error())

	status, body = a.do(t, jsonRequest(t, http.MethodPost, "/api/v1/withdrawals/request", map[string]any{
		"amount":         "100",
		"points_used":    25,
		"payment_method": domain.PaymentMethodBank,
		"bank_details": map[string]any{
			"account_holder": "Saver Rao",
			"account_number": "50100999888",
			"ifsc_code":      "HDFC0000456",
			"bank_name":      "HDFC Bank",
		},
	}), token)
	require.Equal(t, http.StatusCreated, status, body.Error)

	var created struct {
		ID          string                     `json:"id"`
		Status      string                     `json:"status"`
		BankDetails domain.BankTransferDetails `json:"bank_details"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &created))
	assert.Equal(t, domain.WithdrawalStatusPending, created.Status)
	assert.Equal(t, "50100999888", created.BankDetails.AccountNumber)
	assert.Equal(t, "HDFC0000456", created.BankDetails.IfscCode)

	target := "/api/v1/withdrawals/" + created.ID + "/status"
	status, body = a.do(t, jsonRequest(t, http.MethodPut, target, domain.UpdateWithdrawalStatusRequest{Status: "processing"}), adminToken)
	require.Equal(t, http.StatusOK, status, body.Error)

	status, body = a.do(t, jsonRequest(t, http.MethodPut, target, domain.UpdateWithdrawalStatusRequest{Status: "completed"}), adminToken)
	require.Equal(t, http.StatusOK, status, body.Error)

	var done domain.Withdrawal
	require.NoError(t, json.Unmarshal(body.Data, &done))
	assert.Equal(t, domain.WithdrawalStatusCompleted, done.Status)

	status, body = a.do(t, jsonRequest(t, http.MethodPut, target, domain.UpdateWithdrawalStatusRequest{Status: "settled"}), adminToken)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body.Error, domain.ErrInvalidWithdrawalStatus.Error())
}
