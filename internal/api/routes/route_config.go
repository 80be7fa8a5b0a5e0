package routes

import (
	"career-bridge/domain"
	"career-bridge/internal/api/handlers"
	"career-bridge/internal/api/presenters"
	"career-bridge/internal/middleware"
	"career-bridge/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                *fiber.App
	UserHandler        handlers.UserHandler
	AdminHandler       handlers.AdminHandler
	PointsHandler      handlers.PointsHandler
	WithdrawalHandler  handlers.WithdrawalHandler
	BankAccountHandler handlers.BankAccountHandler
	PersonalHandler    handlers.PersonalHandler
	EducationHandler   handlers.EducationHandler
	JobHandler         handlers.JobHandler
	ActivityHandler    handlers.ActivityHandler
	DashboardHandler   handlers.DashboardHandler
	Middleware         middleware.Middleware
	JWTService         jwt.JWTService

	// FilesDir is served under /files when uploads are kept on local disk.
	FilesDir string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Admin()
	c.Points()
	c.Withdrawals()
	c.BankAccounts()
	c.Personal()
	c.Education()
	c.Job()
	c.Activities()
	c.Dashboard()
	c.NotFound()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/verify-email", c.UserHandler.VerifyEmail)
		user.Post("/forgot-password", c.UserHandler.ForgotPassword)
		user.Post("/reset-password", c.UserHandler.ResetPassword)
		user.Get("/me", c.auth(), c.UserHandler.Me)
		user.Patch("/mark-existing", c.auth(), c.UserHandler.MarkExistingUser)
		user.Get("/count", c.auth(), c.Middleware.AdminMiddleware(), c.UserHandler.CountUsers)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/v1/admins")
	{
		admin.Post("/register", c.AdminHandler.Register)
		admin.Post("/login", c.AdminHandler.Login)
		admin.Post("/verify-email", c.AdminHandler.VerifyEmail)
		admin.Post("/forgot-password", c.AdminHandler.ForgotPassword)
		admin.Post("/reset-password", c.AdminHandler.ResetPassword)
	}

	protected := admin.Group("", c.auth(), c.Middleware.AdminMiddleware())
	{
		protected.Get("/me", c.AdminHandler.Me)
		protected.Get("/count", c.AdminHandler.CountAdmins)
		protected.Get("/:id", c.AdminHandler.GetByID)
	}
}

func (c *Config) Points() {
	points := c.App.Group("/api/v1/points", c.auth())
	{
		points.Post("/add", c.PointsHandler.AddPoints)
		points.Post("/deduct", c.PointsHandler.DeductPoints)
		points.Post("/award", c.Middleware.AdminMiddleware(), c.PointsHandler.AwardPoints)
		points.Get("/user", c.PointsHandler.GetUserPoints)
		points.Get("/history", c.PointsHandler.GetPointsHistory)
		points.Get("/overview", c.PointsHandler.GetPointsOverview)
		points.Get("/calculate-cash", c.PointsHandler.CalculateCash)
		points.Get("/calculate-points", c.PointsHandler.CalculatePoints)
		points.Get("/leaderboard", c.PointsHandler.GetLeaderboard)
	}
}

func (c *Config) Withdrawals() {
	withdrawals := c.App.Group("/api/v1/withdrawals", c.auth())
	admin := c.Middleware.AdminMiddleware()

	// static paths first, fiber matches in registration order
	withdrawals.Post("/request", c.WithdrawalHandler.CreateWithdrawal)
	withdrawals.Get("/user", c.WithdrawalHandler.GetUserWithdrawals)
	withdrawals.Get("/summary", c.WithdrawalHandler.GetWithdrawalSummary)
	withdrawals.Get("/all", admin, c.WithdrawalHandler.GetAllWithdrawals)
	withdrawals.Get("/status/:status", admin, c.WithdrawalHandler.GetByStatus)
	withdrawals.Get("/transaction/:txn", c.WithdrawalHandler.GetByTransactionID)
	withdrawals.Put("/:id/status", admin, c.WithdrawalHandler.UpdateWithdrawalStatus)
	withdrawals.Put("/:id/process", admin, c.WithdrawalHandler.ProcessWithdrawal)
	withdrawals.Get("/:id", c.WithdrawalHandler.GetWithdrawalByID)
}

func (c *Config) BankAccounts() {
	accounts := c.App.Group("/api/v1/bank-accounts", c.auth())
	{
		accounts.Post("/save", c.BankAccountHandler.SaveBankAccount)
		accounts.Get("/user", c.BankAccountHandler.GetBankAccounts)
		accounts.Get("/default", c.BankAccountHandler.GetDefaultBankAccount)
		accounts.Put("/:id/set-default", c.BankAccountHandler.SetDefaultBankAccount)
		accounts.Get("/:id", c.BankAccountHandler.GetBankAccountByID)
		accounts.Delete("/:id", c.BankAccountHandler.DeleteBankAccount)
	}
}

func (c *Config) Personal() {
	personal := c.App.Group("/api/v1/personal", c.auth())
	admin := c.Middleware.AdminMiddleware()

	personal.Post("/save", c.PersonalHandler.SavePersonalDetails)
	personal.Put("/update", c.PersonalHandler.UpdatePersonalDetails)
	personal.Put("/photo", c.PersonalHandler.UpdateProfilePhoto)
	personal.Get("/me", c.PersonalHandler.GetMyPersonalDetails)
	personal.Get("/me/all", c.PersonalHandler.GetMyPersonalHistory)
	personal.Get("/all", admin, c.PersonalHandler.GetAllPersonalDetails)
	personal.Get("/user/:userId", admin, c.PersonalHandler.GetPersonalDetailsByUser)
	personal.Get("/:id", c.PersonalHandler.GetPersonalDetailsByID)
}

func (c *Config) Education() {
	education := c.App.Group("/api/v1/education", c.auth())
	admin := c.Middleware.AdminMiddleware()

	education.Post("/save", c.EducationHandler.SaveEducationDetails)
	education.Put("/update", c.EducationHandler.UpdateEducationDetails)
	education.Get("/me", c.EducationHandler.GetMyEducationDetails)
	education.Get("/me/all", c.EducationHandler.GetMyEducationHistory)
	education.Get("/colleges", c.EducationHandler.GetColleges)
	education.Get("/college/:name/stats", c.EducationHandler.GetCollegeStats)
	education.Get("/college/:name", c.EducationHandler.GetByCollege)
	education.Get("/all", admin, c.EducationHandler.GetAllEducationDetails)
	education.Get("/user/:userId", admin, c.EducationHandler.GetEducationDetailsByUser)
	education.Get("/:id", c.EducationHandler.GetEducationDetailsByID)
}

func (c *Config) Job() {
	job := c.App.Group("/api/v1/job", c.auth())
	admin := c.Middleware.AdminMiddleware()

	job.Post("/save", c.JobHandler.SaveJobDetails)
	job.Put("/update", c.JobHandler.UpdateJobDetails)
	job.Get("/me", c.JobHandler.GetMyJobDetails)
	job.Get("/me/all", c.JobHandler.GetMyJobHistory)
	job.Get("/companies", c.JobHandler.GetCompanies)
	job.Get("/company/:name/stats", c.JobHandler.GetCompanyStats)
	job.Get("/company/:name", c.JobHandler.GetByCompany)
	job.Get("/all", admin, c.JobHandler.GetAllJobDetails)
	job.Get("/user/:userId", admin, c.JobHandler.GetJobDetailsByUser)
	job.Get("/:id", c.JobHandler.GetJobDetailsByID)
}

func (c *Config) Activities() {
	activities := c.App.Group("/api/v1/activities", c.auth())
	{
		activities.Post("/save", c.ActivityHandler.SaveActivity)
		activities.Get("/user", c.ActivityHandler.GetUserActivities)
		activities.Get("/education/:educationId", c.ActivityHandler.GetEducationActivities)
		activities.Delete("/:id", c.ActivityHandler.DeleteActivity)
	}
}

func (c *Config) Dashboard() {
	dashboard := c.App.Group("/api/v1/dashboard", c.auth(), c.Middleware.AdminMiddleware())
	{
		dashboard.Get("/overview", c.DashboardHandler.GetOverview)
		dashboard.Get("/education/stats", c.DashboardHandler.GetEducationStats)
		dashboard.Get("/job/stats", c.DashboardHandler.GetJobStats)
		dashboard.Get("/colleges/comparison", c.DashboardHandler.GetCollegeComparison)
		dashboard.Get("/companies/comparison", c.DashboardHandler.GetCompanyComparison)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	if c.FilesDir != "" {
		c.App.Static("/files", c.FilesDir)
	}
}

func (c *Config) NotFound() {
	c.App.Use(func(ctx *fiber.Ctx) error {
		return presenters.ErrorResponse(ctx, fiber.StatusNotFound, domain.MessageRouteNotFound, nil)
	})
}
