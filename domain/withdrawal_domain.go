package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCreateWithdrawal  = "withdrawal request submitted successfully"
	MessageSuccessGetWithdrawals    = "withdrawals retrieved successfully"
	MessageSuccessGetWithdrawal     = "withdrawal retrieved successfully"
	MessageSuccessUpdateWithdrawal  = "withdrawal status updated successfully"
	MessageSuccessProcessWithdrawal = "withdrawal submitted for payout"
	MessageSuccessWithdrawalSummary = "withdrawal summary retrieved successfully"

	MessageFailedCreateWithdrawal  = "failed to submit withdrawal request"
	MessageFailedGetWithdrawals    = "failed to retrieve withdrawals"
	MessageFailedGetWithdrawal     = "failed to retrieve withdrawal"
	MessageFailedUpdateWithdrawal  = "failed to update withdrawal status"
	MessageFailedProcessWithdrawal = "failed to process withdrawal"
	MessageFailedWithdrawalSummary = "failed to retrieve withdrawal summary"

	ErrUserIDRequired           = errors.New("User ID is required")
	ErrMinimumWithdrawal        = errors.New("Minimum withdrawal amount is ₹50")
	ErrPointsUsedRequired       = errors.New("Points used must be greater than 0")
	ErrInvalidPaymentMethod     = errors.New("Invalid payment method")
	ErrBankDetailsRequired      = errors.New("Bank details are required for bank transfer")
	ErrInvalidUpiID             = errors.New("Valid UPI ID is required for UPI transfer")
	ErrPointsDoNotCoverAmount   = errors.New("Points used do not cover the requested amount")
	ErrWithdrawalNotFound       = errors.New("withdrawal not found")
	ErrInvalidWithdrawalStatus  = errors.New("invalid withdrawal status")
	ErrInvalidStatusTransition  = errors.New("invalid status transition")
	ErrPayoutGatewayUnavailable = errors.New("payout gateway is not configured")
	ErrPayoutRejected           = errors.New("payout rejected")
)

const (
	MinimumWithdrawalAmount = 50

	PaymentMethodBank = "bank"
	PaymentMethodUpi  = "upi"

	WithdrawalStatusPending    = "PENDING"
	WithdrawalStatusApproved   = "APPROVED"
	WithdrawalStatusProcessing = "PROCESSING"
	WithdrawalStatusCompleted  = "COMPLETED"
	WithdrawalStatusFailed     = "FAILED"
)

type (
	CreateWithdrawalRequest struct {
		Amount        *decimal.Decimal `json:"amount"`
		PointsUsed    int              `json:"points_used"`
		PaymentMethod string           `json:"payment_method"`
		BankDetails   map[string]any   `json:"bank_details"`
		BankAccountID string           `json:"bank_account_id" validate:"omitempty,uuid"`
		UpiID         string           `json:"upi_id"`
	}

	UpdateWithdrawalStatusRequest struct {
		Status        string  `json:"status" validate:"required"`
		FailureReason *string `json:"failure_reason"`
	}

	Withdrawal struct {
		ID              string          `json:"id"`
		UserID          string          `json:"user_id"`
		Amount          decimal.Decimal `json:"amount"`
		PointsUsed      int             `json:"points_used"`
		PaymentMethod   string          `json:"payment_method"`
		BankDetails     json.RawMessage `json:"bank_details,omitempty"`
		UpiID           string          `json:"upi_id,omitempty"`
		Status          string          `json:"status"`
		TransactionID   string          `json:"transaction_id"`
		FailureReason   string          `json:"failure_reason,omitempty"`
		PayoutReference string          `json:"payout_reference,omitempty"`
		CreatedAt       time.Time       `json:"created_at"`
		UpdatedAt       time.Time       `json:"updated_at"`
	}

	PayoutRequest struct {
		TransactionID      string
		BeneficiaryName    string
		BeneficiaryAccount string
		BeneficiaryBank    string
		BeneficiaryEmail   string
		Amount             decimal.Decimal
		Notes              string
	}

	PayoutResult struct {
		Reference string
		Status    string
	}

	WithdrawalSummary struct {
		TotalWithdrawn  decimal.Decimal `json:"total_withdrawn"`
		PendingAmount   decimal.Decimal `json:"pending_amount"`
		TotalRequests   int64           `json:"total_requests"`
		HasWithdrawals  bool            `json:"has_withdrawals"`
		AvailablePoints int             `json:"available_points"`
		AvailableCash   float64         `json:"available_cash"`
	}
)
