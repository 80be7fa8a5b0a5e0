package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Withdrawal struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID       `gorm:"type:uuid;index;not null" json:"user_id"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	PointsUsed      int             `gorm:"not null" json:"points_used"`
	PaymentMethod   string          `gorm:"size:10;not null" json:"payment_method"` // bank, upi
	BankDetails     string          `gorm:"type:text" json:"bank_details,omitempty"`
	UpiID           string          `json:"upi_id,omitempty"`
	Status          string          `gorm:"size:20;not null;index;default:PENDING" json:"status"`
	TransactionID   string          `gorm:"uniqueIndex;not null" json:"transaction_id"`
	FailureReason   string          `gorm:"type:text" json:"failure_reason,omitempty"`
	PayoutReference string          `json:"payout_reference,omitempty"`

	Timestamp
}
