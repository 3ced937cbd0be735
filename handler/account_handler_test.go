// handler/account_handler_test.go
package handler

import (
	"go-ledger-api/common"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Validation failures are rejected before any service call, so a handler
// without a wired service is enough here.

func TestAccountHandler_CreateAccount_Validation(t *testing.T) {
	h := NewAccountHandler(nil)

	testCases := []struct {
		name string
		body string
	}{
		{"malformed json", `{"account_number": `},
		{"missing required fields", `{}`},
		{"account number too short", `{"account_number": "A1", "holder_name": "John Doe", "currency": "USD"}`},
		{"non-alphanumeric account number", `{"account_number": "ACC-1000-0001", "holder_name": "John Doe", "currency": "USD"}`},
		{"lowercase currency", `{"account_number": "ACC10000001", "holder_name": "John Doe", "currency": "usd"}`},
		{"invalid email", `{"account_number": "ACC10000001", "holder_name": "John Doe", "currency": "USD", "email": "not-an-email"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			appErr := h.CreateAccount(rr, req)

			assert.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
		})
	}
}

func TestAccountHandler_SearchAccounts_InvalidParams(t *testing.T) {
	h := NewAccountHandler(nil)

	testCases := []struct {
		name  string
		query string
	}{
		{"non-numeric page", "page=abc"},
		{"negative page", "page=-1"},
		{"zero size", "size=0"},
		{"unknown status", "status=FROZEN"},
		{"malformed min balance", "minBalance=ten"},
		{"malformed created from", "createdFrom=yesterday"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/accounts/search?"+tc.query, nil)
			rr := httptest.NewRecorder()

			appErr := h.SearchAccounts(rr, req)

			assert.NotNil(t, appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
		})
	}
}

func TestErrorHandlingMiddleware(t *testing.T) {
	t.Run("sends the returned error", func(t *testing.T) {
		next := func(w http.ResponseWriter, r *http.Request) *common.AppError {
			return common.NewAppError(http.StatusNotFound, "account not found", nil)
		}

		req := httptest.NewRequest(http.MethodGet, "/accounts/ACCMISSING01", nil)
		rr := httptest.NewRecorder()

		ErrorHandlingMiddleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"code": 404, "message": "account not found"}`, rr.Body.String())
	})

	t.Run("passes through on success", func(t *testing.T) {
		next := func(w http.ResponseWriter, r *http.Request) *common.AppError {
			w.WriteHeader(http.StatusNoContent)
			return nil
		}

		req := httptest.NewRequest(http.MethodDelete, "/accounts/ACCSAMPLE001", nil)
		rr := httptest.NewRecorder()

		ErrorHandlingMiddleware(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
