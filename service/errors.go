package service

import (
	"errors"
	"fmt"
	"go-ledger-api/model"

	"github.com/shopspring/decimal"
)

var (
	ErrSelfTransfer  = errors.New("cannot transfer funds to the same account")
	ErrInvalidAmount = errors.New("invalid amount")
)

// AccountNotFoundError reports a failed lookup. Key is whatever the
// caller searched by, either a business key or an "ID: ..." reference.
type AccountNotFoundError struct {
	Key string
}

func (e *AccountNotFoundError) Error() string {
	return fmt.Sprintf("account not found: %s", e.Key)
}

// DuplicateAccountError reports a create on an already taken business key.
type DuplicateAccountError struct {
	AccountNumber string
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("account with number %s already exists", e.AccountNumber)
}

// AccountInactiveError reports an operation on a non-ACTIVE account.
type AccountInactiveError struct {
	AccountNumber string
	Status        model.AccountStatus
}

func (e *AccountInactiveError) Error() string {
	return fmt.Sprintf("account %s is not active (current status: %s)", e.AccountNumber, e.Status)
}

// CurrencyMismatchError reports a transfer between differently denominated
// accounts.
type CurrencyMismatchError struct {
	FromCurrency string
	ToCurrency   string
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: source account is in %s, destination account is in %s",
		e.FromCurrency, e.ToCurrency)
}

// InsufficientFundsError carries the requested amount and the balance that
// was actually available on the source account.
type InsufficientFundsError struct {
	AccountNumber string
	Requested     decimal.Decimal
	Available     decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in account %s: requested %s, available %s",
		e.AccountNumber, e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

// NonZeroBalanceError reports a delete attempt on an account still holding
// funds.
type NonZeroBalanceError struct {
	AccountNumber string
	Balance       decimal.Decimal
}

func (e *NonZeroBalanceError) Error() string {
	return fmt.Sprintf("cannot delete account %s with positive balance: %s",
		e.AccountNumber, e.Balance.StringFixed(2))
}
