package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const MaxActivityCertificates = 5

var (
	MessageSuccessSaveEducation   = "education details saved successfully"
	MessageSuccessUpdateEducation = "education details updated successfully"
	MessageSuccessGetEducation    = "education details retrieved successfully"
	MessageSuccessGetColleges     = "colleges retrieved successfully"
	MessageSuccessGetCollegeStats = "college statistics retrieved successfully"

	MessageFailedSaveEducation    = "failed to save education details"
	MessageFailedUpdateEducation  = "failed to update education details"
	MessageFailedGetEducation     = "failed to retrieve education details"
	MessageFailedGetColleges      = "failed to retrieve colleges"
	MessageFailedGetCollegeStats  = "failed to retrieve college statistics"

	MessagePointsEducationForm   = "Earned 10 points for completing education form!"
	MessagePointsEducationUpdate = "Earned 10 points for updating education details!"

	ErrEducationDetailsNotFound     = errors.New("education details not found")
	ErrInvalidCollegeActivitiesJSON = errors.New("college_activities must be a JSON array")
)

type (
	EducationDetailsRequest struct {
		TenthSchool     *string  `json:"tenth_school"`
		TenthBoard      *string  `json:"tenth_board"`
		TenthPercentage *float64 `json:"tenth_percentage" validate:"omitempty,gte=0,lte=100"`
		TenthYear       *int     `json:"tenth_year"`

		TwelfthSchool     *string  `json:"twelfth_school"`
		TwelfthBoard      *string  `json:"twelfth_board"`
		TwelfthStream     *string  `json:"twelfth_stream"`
		TwelfthPercentage *float64 `json:"twelfth_percentage" validate:"omitempty,gte=0,lte=100"`
		TwelfthYear       *int     `json:"twelfth_year"`

		CollegeName       *string  `json:"college_name"`
		Degree            *string  `json:"degree"`
		Specialization    *string  `json:"specialization"`
		University        *string  `json:"university"`
		Department        *string  `json:"department"`
		RollNumber        *string  `json:"roll_number"`
		Cgpa              *float64 `json:"cgpa" validate:"omitempty,gte=0,lte=10"`
		Percentage        *float64 `json:"percentage" validate:"omitempty,gte=0,lte=100"`
		StartDate         *string  `json:"start_date"`
		EndDate           *string  `json:"end_date"`
		CurrentlyStudying *bool    `json:"currently_studying"`
		Semester          *string  `json:"semester"`

		Skills                   *string `json:"skills"`
		Achievements             *string `json:"achievements"`
		CollegeActivities        *string `json:"college_activities"`
		Extracurricular          *string `json:"extracurricular"`
		Projects                 *string `json:"projects"`
		AdditionalDegree         *string `json:"additional_degree"`
		AdditionalCertifications *string `json:"additional_certifications"`
	}

	SaveEducationDetailsRequest struct {
		Data                 EducationDetailsRequest
		TenthMarksheet       *multipart.FileHeader
		TwelfthMarksheet     *multipart.FileHeader
		ActivityCertificates map[int]*multipart.FileHeader
	}

	EducationDetails struct {
		ID     string `json:"id"`
		UserID string `json:"user_id"`

		TenthSchool     string   `json:"tenth_school"`
		TenthBoard      string   `json:"tenth_board"`
		TenthPercentage *float64 `json:"tenth_percentage,omitempty"`
		TenthYear       *int     `json:"tenth_year,omitempty"`
		TenthMarksheet  string   `json:"tenth_marksheet,omitempty"`

		TwelfthSchool     string   `json:"twelfth_school"`
		TwelfthBoard      string   `json:"twelfth_board"`
		TwelfthStream     string   `json:"twelfth_stream"`
		TwelfthPercentage *float64 `json:"twelfth_percentage,omitempty"`
		TwelfthYear       *int     `json:"twelfth_year,omitempty"`
		TwelfthMarksheet  string   `json:"twelfth_marksheet,omitempty"`

		CollegeName       string   `json:"college_name"`
		Degree            string   `json:"degree"`
		Specialization    string   `json:"specialization"`
		University        string   `json:"university"`
		Department        string   `json:"department"`
		RollNumber        string   `json:"roll_number"`
		Cgpa              *float64 `json:"cgpa,omitempty"`
		Percentage        *float64 `json:"percentage,omitempty"`
		StartDate         *string  `json:"start_date"`
		EndDate           *string  `json:"end_date"`
		CurrentlyStudying bool     `json:"currently_studying"`
		Semester          string   `json:"semester"`

		Skills                   string `json:"skills"`
		Achievements             string `json:"achievements"`
		CollegeActivities        string `json:"college_activities"`
		Extracurricular          string `json:"extracurricular"`
		Projects                 string `json:"projects"`
		AdditionalDegree         string `json:"additional_degree"`
		AdditionalCertifications string `json:"additional_certifications"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	CollegeStats struct {
		CollegeName                string           `json:"college_name"`
		TotalStudents              int              `json:"total_students"`
		DegreeDistribution         map[string]int64 `json:"degree_distribution"`
		SpecializationDistribution map[string]int64 `json:"specialization_distribution"`
		AverageCgpa                float64          `json:"average_cgpa"`
		CurrentlyStudyingCount     int              `json:"currently_studying_count"`
	}
)
