package entities

import (
	"github.com/google/uuid"
)

type BankAccount struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	BankName      string    `gorm:"not null" json:"bank_name"`
	AccountHolder string    `gorm:"not null" json:"account_holder"`
	AccountNumber string    `gorm:"not null" json:"account_number"`
	IfscCode      string    `gorm:"size:11;not null" json:"ifsc_code"`
	IsDefault     bool      `gorm:"default:false" json:"is_default"`

	Timestamp
}
