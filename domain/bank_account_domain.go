package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSaveBankAccount       = "bank account saved successfully"
	MessageSuccessGetBankAccounts       = "bank accounts retrieved successfully"
	MessageSuccessGetBankAccount        = "bank account retrieved successfully"
	MessageSuccessDeleteBankAccount     = "bank account deleted successfully"
	MessageSuccessSetDefaultBankAccount = "default bank account updated successfully"

	MessageFailedSaveBankAccount       = "failed to save bank account"
	MessageFailedGetBankAccounts       = "failed to retrieve bank accounts"
	MessageFailedGetBankAccount        = "failed to retrieve bank account"
	MessageFailedDeleteBankAccount     = "failed to delete bank account"
	MessageFailedSetDefaultBankAccount = "failed to set default bank account"

	ErrBankAccountExists   = errors.New("bank account already exists")
	ErrBankAccountNotFound = errors.New("bank account not found")
)

type (
	SaveBankAccountRequest struct {
		BankName      string `json:"bank_name" validate:"required"`
		AccountHolder string `json:"account_holder" validate:"required"`
		AccountNumber string `json:"account_number" validate:"required,numeric,min=6,max=20"`
		IfscCode      string `json:"ifsc_code" validate:"required,len=11"`
	}

	BankAccount struct {
		ID            string    `json:"id"`
		UserID        string    `json:"user_id"`
		BankName      string    `json:"bank_name"`
		AccountHolder string    `json:"account_holder"`
		AccountNumber string    `json:"account_number"`
		IfscCode      string    `json:"ifsc_code"`
		IsDefault     bool      `json:"is_default"`
		CreatedAt     time.Time `json:"created_at"`
	}

	// BankTransferDetails is the JSON stored in a withdrawal's bank_details
	// when it was requested against a saved account.
	BankTransferDetails struct {
		BankName      string `json:"bank_name"`
		AccountHolder string `json:"account_holder"`
		AccountNumber string `json:"account_number"`
		IfscCode      string `json:"ifsc_code"`
	}
)
