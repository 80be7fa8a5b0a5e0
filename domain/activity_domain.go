package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessSaveActivity   = "activity saved successfully"
	MessageSuccessGetActivities  = "activities retrieved successfully"
	MessageSuccessDeleteActivity = "activity deleted successfully"
	MessageFailedSaveActivity    = "failed to save activity"
	MessageFailedGetActivities   = "failed to retrieve activities"
	MessageFailedDeleteActivity  = "failed to delete activity"

	ErrActivityNotFound = errors.New("activity not found")
)

type (
	ActivityRequest struct {
		EducationID string `json:"education_id" validate:"omitempty,uuid"`
		Activity    string `json:"activity" validate:"required"`
		Role        string `json:"role"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
		Description string `json:"description"`
	}

	SaveActivityRequest struct {
		Data        ActivityRequest
		Certificate *multipart.FileHeader
	}

	CollegeActivity struct {
		ID          string    `json:"id"`
		UserID      string    `json:"user_id"`
		EducationID *string   `json:"education_id"`
		Activity    string    `json:"activity"`
		Role        string    `json:"role"`
		StartDate   *string   `json:"start_date"`
		EndDate     *string   `json:"end_date"`
		Description string    `json:"description"`
		Certificate string    `json:"certificate,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
