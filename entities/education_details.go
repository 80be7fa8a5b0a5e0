package entities

import (
	"github.com/google/uuid"
)

type EducationDetails struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	// 10th
	TenthSchool        string   `json:"tenth_school"`
	TenthBoard         string   `json:"tenth_board"`
	TenthPercentage    *float64 `json:"tenth_percentage,omitempty"`
	TenthYear          *int     `json:"tenth_year,omitempty"`
	TenthMarksheetPath string   `json:"tenth_marksheet_path,omitempty"`

	// 12th
	TwelfthSchool        string   `json:"twelfth_school"`
	TwelfthBoard         string   `json:"twelfth_board"`
	TwelfthStream        string   `json:"twelfth_stream"`
	TwelfthPercentage    *float64 `json:"twelfth_percentage,omitempty"`
	TwelfthYear          *int     `json:"twelfth_year,omitempty"`
	TwelfthMarksheetPath string   `json:"twelfth_marksheet_path,omitempty"`

	// College
	CollegeName       string   `gorm:"index" json:"college_name"`
	Degree            string   `json:"degree"`
	Specialization    string   `json:"specialization"`
	University        string   `json:"university"`
	Department        string   `json:"department"`
	RollNumber        string   `json:"roll_number"`
	Cgpa              *float64 `json:"cgpa,omitempty"`
	Percentage        *float64 `json:"percentage,omitempty"`
	StartDate         *string  `json:"start_date,omitempty"`
	EndDate           *string  `json:"end_date,omitempty"`
	CurrentlyStudying bool     `json:"currently_studying"`
	Semester          string   `json:"semester"`

	Skills                   string `gorm:"type:text" json:"skills"`
	Achievements             string `gorm:"type:text" json:"achievements"`
	CollegeActivities        string `gorm:"type:text" json:"college_activities"`
	Extracurricular          string `gorm:"type:text" json:"extracurricular"`
	Projects                 string `gorm:"type:text" json:"projects"`
	AdditionalDegree         string `json:"additional_degree"`
	AdditionalCertifications string `gorm:"type:text" json:"additional_certifications"`

	Timestamp
}
