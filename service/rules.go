// file: service/rules.go

package service

import (
	"fmt"
	"go-ledger-api/model"

	"github.com/shopspring/decimal"
)

// Stateless account predicates. They must always be evaluated against a
// freshly loaded (and, for transfers, freshly locked) record, never
// against values read before the lock was taken.

// IsActive reports whether the account may be mutated or take part in a
// transfer.
func IsActive(account *model.Account) bool {
	return account.Status == model.StatusActive
}

// HasSufficientFunds reports whether the account can cover amount.
func HasSufficientFunds(account *model.Account, amount decimal.Decimal) bool {
	return account.Balance.GreaterThanOrEqual(amount)
}

// CurrenciesMatch reports whether both accounts are denominated in the
// same currency.
func CurrenciesMatch(a, b *model.Account) bool {
	return a.Currency == b.Currency
}

// maxMagnitude is 10^13: amounts and balances carry at most 13 integer
// digits.
var maxMagnitude = decimal.New(1, 13)

// ValidateAmount checks a transfer amount: strictly positive, at most 2
// fraction digits, at most 13 integer digits.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: transfer amount must be greater than zero", ErrInvalidAmount)
	}
	return validateScale(amount)
}

// ValidateInitialBalance checks an opening balance: non-negative with the
// same digit limits as transfer amounts.
func ValidateInitialBalance(balance decimal.Decimal) error {
	if balance.IsNegative() {
		return fmt.Errorf("%w: initial balance cannot be negative", ErrInvalidAmount)
	}
	return validateScale(balance)
}

func validateScale(value decimal.Decimal) error {
	if !value.Equal(value.Truncate(2)) {
		return fmt.Errorf("%w: at most 2 fraction digits allowed", ErrInvalidAmount)
	}
	if value.Abs().GreaterThanOrEqual(maxMagnitude) {
		return fmt.Errorf("%w: at most 13 integer digits allowed", ErrInvalidAmount)
	}
	return nil
}

// lockOrder returns the two business keys in global lock acquisition
// order. Every transfer locks rows in this order regardless of transfer
// direction, so no two transfers can ever wait on each other in a cycle.
func lockOrder(a, b string) (first, second string) {
	if b < a {
		return b, a
	}
	return a, b
}
