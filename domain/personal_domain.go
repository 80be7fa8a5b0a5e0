package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessSavePersonal       = "personal details saved successfully"
	MessageSuccessUpdatePersonal     = "personal details updated successfully"
	MessageSuccessGetPersonal        = "personal details retrieved successfully"
	MessageSuccessUpdateProfilePhoto = "profile photo updated successfully"

	MessageFailedSavePersonal       = "failed to save personal details"
	MessageFailedUpdatePersonal     = "failed to update personal details"
	MessageFailedGetPersonal        = "failed to retrieve personal details"
	MessageFailedUpdateProfilePhoto = "failed to update profile photo"

	MessagePointsPersonalForm   = "Earned 10 points for completing personal form!"
	MessagePointsPersonalUpdate = "Earned 10 points for updating personal details!"

	ErrPersonalDetailsNotFound = errors.New("personal details not found")
	ErrProfilePhotoRequired    = errors.New("profile photo is required")
	ErrFormDataRequired        = errors.New("data field is required")
)

type (
	// PersonalDetailsRequest is used for both saves and patches. Nil fields
	// are left untouched by an update.
	PersonalDetailsRequest struct {
		Name          *string `json:"name"`
		Email         *string `json:"email" validate:"omitempty,email"`
		Phone         *string `json:"phone"`
		DateOfBirth   *string `json:"date_of_birth"`
		Age           *int    `json:"age" validate:"omitempty,gte=0,lte=150"`
		Gender        *string `json:"gender"`
		MaritalStatus *string `json:"marital_status"`

		Address *string `json:"address"`
		City    *string `json:"city"`
		State   *string `json:"state"`
		Pincode *string `json:"pincode"`
		Country *string `json:"country"`

		AadharNumber *string `json:"aadhar_number"`
		Nationality  *string `json:"nationality"`
		Religion     *string `json:"religion"`
		Category     *string `json:"category"`
		BloodGroup   *string `json:"blood_group"`

		FatherName       *string `json:"father_name"`
		FatherOccupation *string `json:"father_occupation"`
		FatherPhone      *string `json:"father_phone"`
		MotherName       *string `json:"mother_name"`
		MotherOccupation *string `json:"mother_occupation"`
		MotherPhone      *string `json:"mother_phone"`
		GuardianName     *string `json:"guardian_name"`
		GuardianRelation *string `json:"guardian_relation"`
		GuardianPhone    *string `json:"guardian_phone"`
		GuardianAddress  *string `json:"guardian_address"`

		EmergencyContactName     *string `json:"emergency_contact_name"`
		EmergencyContactPhone    *string `json:"emergency_contact_phone"`
		EmergencyContactRelation *string `json:"emergency_contact_relation"`
	}

	SavePersonalDetailsRequest struct {
		Data         PersonalDetailsRequest
		ProfilePhoto *multipart.FileHeader `form:"profile_photo"`
	}

	PersonalDetails struct {
		ID           string `json:"id"`
		UserID       string `json:"user_id"`
		ProfilePhoto string `json:"profile_photo,omitempty"`

		Name          string `json:"name"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		DateOfBirth   string `json:"date_of_birth"`
		Age           *int   `json:"age,omitempty"`
		Gender        string `json:"gender"`
		MaritalStatus string `json:"marital_status"`

		Address string `json:"address"`
		City    string `json:"city"`
		State   string `json:"state"`
		Pincode string `json:"pincode"`
		Country string `json:"country"`

		AadharNumber string `json:"aadhar_number"`
		Nationality  string `json:"nationality"`
		Religion     string `json:"religion"`
		Category     string `json:"category"`
		BloodGroup   string `json:"blood_group"`

		FatherName       string `json:"father_name"`
		FatherOccupation string `json:"father_occupation"`
		FatherPhone      string `json:"father_phone"`
		MotherName       string `json:"mother_name"`
		MotherOccupation string `json:"mother_occupation"`
		MotherPhone      string `json:"mother_phone"`
		GuardianName     string `json:"guardian_name"`
		GuardianRelation string `json:"guardian_relation"`
		GuardianPhone    string `json:"guardian_phone"`
		GuardianAddress  string `json:"guardian_address"`

		EmergencyContactName     string `json:"emergency_contact_name"`
		EmergencyContactPhone    string `json:"emergency_contact_phone"`
		EmergencyContactRelation string `json:"emergency_contact_relation"`

		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
