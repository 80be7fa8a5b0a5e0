package entities

import (
	"github.com/google/uuid"
)

type CollegeActivity struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	EducationID     *uuid.UUID `gorm:"type:uuid;index" json:"education_id,omitempty"`
	Activity        string     `gorm:"not null" json:"activity"`
	Role            string     `json:"role"`
	StartDate       *string    `json:"start_date,omitempty"`
	EndDate         *string    `json:"end_date,omitempty"`
	Description     string     `gorm:"type:text" json:"description"`
	CertificatePath string     `json:"certificate_path,omitempty"`

	Timestamp
}
