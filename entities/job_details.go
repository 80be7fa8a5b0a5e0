package entities

import (
	"github.com/google/uuid"
)

type JobDetails struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	CompanyName    string   `gorm:"index;not null" json:"company_name"`
	Role           string   `gorm:"not null" json:"role"`
	Experience     *float64 `json:"experience,omitempty"`
	EmploymentType string   `json:"employment_type"`
	Industry       string   `json:"industry"`

	StartDate        *string `json:"start_date,omitempty"`
	EndDate          *string `json:"end_date,omitempty"`
	CurrentlyWorking bool    `json:"currently_working"`
	Salary           string  `json:"salary"`
	Location         string  `json:"location"`

	JobDescription string `gorm:"type:text" json:"job_description"`
	SkillsUsed     string `gorm:"type:text" json:"skills_used"`
	Achievements   string `gorm:"type:text" json:"achievements"`

	ManagerName    string `json:"manager_name"`
	ManagerContact string `json:"manager_contact"`
	HrContact      string `json:"hr_contact"`

	ResumePath           string `json:"resume_path,omitempty"`
	OfferLetterPath      string `json:"offer_letter_path,omitempty"`
	ExperienceLetterPath string `json:"experience_letter_path,omitempty"`

	NoticePeriod      string `json:"notice_period"`
	PreferredLocation string `json:"preferred_location"`
	ExpectedSalary    string `json:"expected_salary"`
	ReasonForLeaving  string `gorm:"type:text" json:"reason_for_leaving"`

	Timestamp
}
