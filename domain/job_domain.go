package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessSaveJob         = "job details saved successfully"
	MessageSuccessUpdateJob       = "job details updated successfully"
	MessageSuccessGetJob          = "job details retrieved successfully"
	MessageSuccessGetCompanies    = "companies retrieved successfully"
	MessageSuccessGetCompanyStats = "company statistics retrieved successfully"

	MessageFailedSaveJob         = "failed to save job details"
	MessageFailedUpdateJob       = "failed to update job details"
	MessageFailedGetJob          = "failed to retrieve job details"
	MessageFailedGetCompanies    = "failed to retrieve companies"
	MessageFailedGetCompanyStats = "failed to retrieve company statistics"

	MessagePointsJobForm   = "Earned 10 points for completing job details form!"
	MessagePointsJobUpdate = "Earned 10 points for updating job details!"

	ErrJobDetailsNotFound     = errors.New("job details not found")
	ErrCompanyAndRoleRequired = errors.New("company name and role are required")
)

type (
	JobDetailsRequest struct {
		CompanyName    *string  `json:"company_name"`
		Role           *string  `json:"role"`
		Experience     *float64 `json:"experience" validate:"omitempty,gte=0"`
		EmploymentType *string  `json:"employment_type"`
		Industry       *string  `json:"industry"`

		StartDate        *string `json:"start_date"`
		EndDate          *string `json:"end_date"`
		CurrentlyWorking *bool   `json:"currently_working"`
		Salary           *string `json:"salary"`
		Location         *string `json:"location"`

		JobDescription *string `json:"job_description"`
		SkillsUsed     *string `json:"skills_used"`
		Achievements   *string `json:"achievements"`

		ManagerName    *string `json:"manager_name"`
		ManagerContact *string `json:"manager_contact"`
		HrContact      *string `json:"hr_contact"`

		NoticePeriod      *string `json:"notice_period"`
		PreferredLocation *string `json:"preferred_location"`
		ExpectedSalary    *string `json:"expected_salary"`
		ReasonForLeaving  *string `json:"reason_for_leaving"`
	}

	SaveJobDetailsRequest struct {
		Data             JobDetailsRequest
		Resume           *multipart.FileHeader
		OfferLetter      *multipart.FileHeader
		ExperienceLetter *multipart.FileHeader
	}

	JobDetails struct {
		ID     string `json:"id"`
		UserID string `json:"user_id"`

		CompanyName    string   `json:"company_name"`
		Role           string   `json:"role"`
		Experience     *float64 `json:"experience,omitempty"`
		EmploymentType string   `json:"employment_type"`
		Industry       string   `json:"industry"`

		StartDate        *string `json:"start_date"`
		EndDate          *string `json:"end_date"`
		CurrentlyWorking bool    `json:"currently_working"`
		Salary           string  `json:"salary"`
		Location         string  `json:"location"`

		JobDescription string `json:"job_description"`
		SkillsUsed     string `json:"skills_used"`
		Achievements   string `json:"achievements"`

		ManagerName    string `json:"manager_name"`
		ManagerContact string `json:"manager_contact"`
		HrContact      string `json:"hr_contact"`

		Resume           string `json:"resume,omitempty"`
		OfferLetter      string `json:"offer_letter,omitempty"`
		ExperienceLetter string `json:"experience_letter,omitempty"`

		NoticePeriod      string `json:"notice_period"`
		PreferredLocation string `json:"preferred_location"`
		ExpectedSalary    string `json:"expected_salary"`
		ReasonForLeaving  string `json:"reason_for_leaving"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	CompanyStats struct {
		CompanyName                string           `json:"company_name"`
		TotalEmployees             int              `json:"total_employees"`
		RoleDistribution           map[string]int64 `json:"role_distribution"`
		EmploymentTypeDistribution map[string]int64 `json:"employment_type_distribution"`
		AverageExperience          float64          `json:"average_experience"`
		CurrentlyWorkingCount      int              `json:"currently_working_count"`
	}
)
