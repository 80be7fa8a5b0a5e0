package entities

import (
	"github.com/google/uuid"
)

type PersonalDetails struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ProfilePhotoPath string    `json:"profile_photo_path,omitempty"`

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

	Timestamp
}
