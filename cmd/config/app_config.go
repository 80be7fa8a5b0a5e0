package config

import (
	"career-bridge/internal/api/handlers"
	"career-bridge/internal/api/routes"
	"career-bridge/internal/middleware"
	"career-bridge/internal/utils"
	"career-bridge/internal/utils/mailing"
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
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const uploadBodyLimit = 25 * 1024 * 1024

func NewApp(db *gorm.DB, log *zerolog.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit: uploadBodyLimit,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	fileStorage, filesDir := newFileStorage(log)
	mailer := mailing.NewMailer()
	payoutService := payout.NewPayoutService()

	// Repository
	userRepository := user.NewUserRepository(db)
	adminRepository := admin.NewAdminRepository(db)
	pointsRepository := points.NewPointsRepository(db)
	withdrawalRepository := withdrawal.NewWithdrawalRepository(db)
	bankAccountRepository := bankaccount.NewBankAccountRepository(db)
	personalRepository := personal.NewPersonalRepository(db)
	educationRepository := education.NewEducationRepository(db)
	jobRepository := job.NewJobRepository(db)
	activityRepository := activity.NewActivityRepository(db)
	dashboardRepository := dashboard.NewDashboardRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, mailer, log)
	adminService := admin.NewAdminService(adminRepository, jwtService, mailer, log)
	pointsService := points.NewPointsService(pointsRepository, log)
	withdrawalService := withdrawal.NewWithdrawalService(
		withdrawalRepository,
		bankAccountRepository,
		pointsService,
		payoutService,
		nil,
		log,
	)
	bankAccountService := bankaccount.NewBankAccountService(bankAccountRepository, log)
	personalService := personal.NewPersonalService(personalRepository, pointsService, fileStorage, log)
	educationService := education.NewEducationService(educationRepository, pointsService, fileStorage, log)
	jobService := job.NewJobService(jobRepository, pointsService, fileStorage, log)
	activityService := activity.NewActivityService(activityRepository, fileStorage, log)
	dashboardService := dashboard.NewDashboardService(
		dashboardRepository,
		userRepository,
		pointsRepository,
		withdrawalRepository,
		log,
	)

	// Handler
	routesConfig := routes.Config{
		App:                app,
		UserHandler:        handlers.NewUserHandler(userService, validator),
		AdminHandler:       handlers.NewAdminHandler(adminService, validator),
		PointsHandler:      handlers.NewPointsHandler(pointsService, validator),
		WithdrawalHandler:  handlers.NewWithdrawalHandler(withdrawalService, validator),
		BankAccountHandler: handlers.NewBankAccountHandler(bankAccountService, validator),
		PersonalHandler:    handlers.NewPersonalHandler(personalService, validator),
		EducationHandler:   handlers.NewEducationHandler(educationService, validator),
		JobHandler:         handlers.NewJobHandler(jobService, validator),
		ActivityHandler:    handlers.NewActivityHandler(activityService, validator),
		DashboardHandler:   handlers.NewDashboardHandler(dashboardService),
		Middleware:         middlewares,
		JWTService:         jwtService,
		FilesDir:           filesDir,
	}
	routesConfig.Setup()
	return app, nil
}

// newFileStorage picks S3 when a bucket is configured. Otherwise uploads stay
// on disk and the returned directory is served under /files.
func newFileStorage(log *zerolog.Logger) (storage.FileStorage, string) {
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		log.Info().Str("bucket", utils.GetConfig("AWS_S3_BUCKET")).Msg("storing uploads in s3")
		return storage.NewAwsS3(), ""
	}

	dir := utils.GetConfig("UPLOAD_DIR")
	baseURL := strings.TrimRight(utils.GetConfig("APP_URL"), "/")
	if baseURL == "" {
		baseURL = "http://localhost:" + utils.GetConfig("APP_PORT")
	}
	log.Info().Str("dir", dir).Msg("storing uploads on local disk")
	return storage.NewLocalStorage(dir, baseURL+"/files"), dir
}
