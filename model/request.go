// file: model/request.go

package model

import "github.com/shopspring/decimal"

// CreateAccountRequest defines the payload for opening a new account.
// It includes validation tags to ensure data integrity at the entry point.
// InitialBalance is validated by the service layer because the decimal
// type is opaque to struct tags.
type CreateAccountRequest struct {
	AccountNumber  string          `json:"account_number" validate:"required,alphanum,min=8,max=20"`
	HolderName     string          `json:"holder_name" validate:"required,min=2,max=100"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Phone          string          `json:"phone" validate:"omitempty,e164"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Currency       string          `json:"currency" validate:"required,len=3,alpha,uppercase"`
}

// UpdateAccountRequest defines the payload for updating an account's
// contact details. Balance, currency and status are not updatable.
type UpdateAccountRequest struct {
	HolderName string `json:"holder_name" validate:"required,min=2,max=100"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone" validate:"omitempty,e164"`
}

// TransferRequest defines the payload for moving funds between two
// accounts identified by their business keys.
type TransferRequest struct {
	FromAccountNumber string          `json:"from_account_number" validate:"required"`
	ToAccountNumber   string          `json:"to_account_number" validate:"required"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description" validate:"omitempty,max=255"`
}

// TransferResult reports the outcome of a successful transfer with the
// post-commit state of both accounts.
type TransferResult struct {
	FromAccount *Account        `json:"from_account"`
	ToAccount   *Account        `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
}
