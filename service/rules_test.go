// service/rules_test.go
package service

import (
	"go-ledger-api/model"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(&model.Account{Status: model.StatusActive}))
	assert.False(t, IsActive(&model.Account{Status: model.StatusInactive}))
	assert.False(t, IsActive(&model.Account{Status: model.StatusSuspended}))
	assert.False(t, IsActive(&model.Account{Status: model.StatusClosed}))
}

func TestHasSufficientFunds(t *testing.T) {
	account := &model.Account{Balance: decimal.RequireFromString("100.00")}

	assert.True(t, HasSufficientFunds(account, decimal.RequireFromString("99.99")))
	assert.True(t, HasSufficientFunds(account, decimal.RequireFromString("100.00")))
	assert.False(t, HasSufficientFunds(account, decimal.RequireFromString("100.01")))
}

func TestCurrenciesMatch(t *testing.T) {
	usd := &model.Account{Currency: "USD"}
	eur := &model.Account{Currency: "EUR"}

	assert.True(t, CurrenciesMatch(usd, &model.Account{Currency: "USD"}))
	assert.False(t, CurrenciesMatch(usd, eur))
}

func TestValidateAmount(t *testing.T) {
	testCases := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"valid amount", "10.50", false},
		{"valid whole amount", "1000", false},
		{"max integer digits", "9999999999999.99", false},
		{"zero", "0", true},
		{"negative", "-10.00", true},
		{"three fraction digits", "10.001", true},
		{"fourteen integer digits", "10000000000000", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAmount(decimal.RequireFromString(tc.amount))
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInitialBalance(t *testing.T) {
	assert.NoError(t, ValidateInitialBalance(decimal.Zero))
	assert.NoError(t, ValidateInitialBalance(decimal.RequireFromString("500.25")))
	assert.ErrorIs(t, ValidateInitialBalance(decimal.RequireFromString("-0.01")), ErrInvalidAmount)
	assert.ErrorIs(t, ValidateInitialBalance(decimal.RequireFromString("0.001")), ErrInvalidAmount)
}

func TestLockOrder(t *testing.T) {
	first, second := lockOrder("ACC10000001", "ACC90000001")
	assert.Equal(t, "ACC10000001", first)
	assert.Equal(t, "ACC90000001", second)

	first, second = lockOrder("ACC90000001", "ACC10000001")
	assert.Equal(t, "ACC10000001", first)
	assert.Equal(t, "ACC90000001", second)
}
