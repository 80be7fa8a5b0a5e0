package domain

// StartupMaxEmployees is the largest company size still counted as a startup.
const StartupMaxEmployees = 50

var (
	MessageSuccessGetDashboard = "dashboard data retrieved successfully"
	MessageFailedGetDashboard  = "failed to retrieve dashboard data"
)

type (
	DashboardOverview struct {
		TotalUsers         int64 `json:"total_users"`
		TotalStudents      int64 `json:"total_students"`
		TotalEmployees     int64 `json:"total_employees"`
		UniqueColleges     int64 `json:"unique_colleges"`
		UniqueCompanies    int64 `json:"unique_companies"`
		CurrentlyWorking   int64 `json:"currently_working"`
		UniqueStartups     int64 `json:"unique_startups"`
		PendingWithdrawals int64 `json:"pending_withdrawals"`
		TotalPointsAwarded int64 `json:"total_points_awarded"`
	}

	EducationDashboardStats struct {
		TotalStudents          int64            `json:"total_students"`
		UniqueColleges         int64            `json:"unique_colleges"`
		DegreeDistribution     map[string]int64 `json:"degree_distribution"`
		CollegeDistribution    map[string]int64 `json:"college_distribution"`
		AverageCgpa            float64          `json:"average_cgpa"`
		CurrentlyStudyingCount int64            `json:"currently_studying_count"`
	}

	JobDashboardStats struct {
		TotalEmployees        int64            `json:"total_employees"`
		UniqueCompanies       int64            `json:"unique_companies"`
		CurrentlyWorkingCount int64            `json:"currently_working_count"`
		IndustryDistribution  map[string]int64 `json:"industry_distribution"`
		RoleDistribution      map[string]int64 `json:"role_distribution"`
		CompanyDistribution   map[string]int64 `json:"company_distribution"`
		AverageExperience     float64          `json:"average_experience"`
	}
)
