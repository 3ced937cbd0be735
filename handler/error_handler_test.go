// handler/error_handler_test.go
package handler

import (
	"errors"
	"go-ledger-api/model"
	"go-ledger-api/service"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMapDomainError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"account not found", &service.AccountNotFoundError{Key: "ACC10000001"}, http.StatusNotFound},
		{"duplicate account", &service.DuplicateAccountError{AccountNumber: "ACC10000001"}, http.StatusConflict},
		{"inactive account", &service.AccountInactiveError{AccountNumber: "ACC10000001", Status: model.StatusSuspended}, http.StatusBadRequest},
		{"currency mismatch", &service.CurrencyMismatchError{FromCurrency: "USD", ToCurrency: "EUR"}, http.StatusBadRequest},
		{"insufficient funds", &service.InsufficientFundsError{
			AccountNumber: "ACC10000001",
			Requested:     decimal.RequireFromString("200.00"),
			Available:     decimal.RequireFromString("100.00"),
		}, http.StatusBadRequest},
		{"non-zero balance", &service.NonZeroBalanceError{AccountNumber: "ACC10000001", Balance: decimal.RequireFromString("50.00")}, http.StatusBadRequest},
		{"self transfer", service.ErrSelfTransfer, http.StatusBadRequest},
		{"invalid amount", service.ErrInvalidAmount, http.StatusBadRequest},
		{"unknown error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapDomainError(tc.err, "fallback message")
			assert.Equal(t, tc.wantCode, appErr.Code)
			if tc.wantCode == http.StatusInternalServerError {
				assert.Equal(t, "fallback message", appErr.Message)
			} else {
				assert.Equal(t, tc.err.Error(), appErr.Message)
			}
		})
	}
}
