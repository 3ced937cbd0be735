package handler

import (
	"encoding/json"
	"go-ledger-api/common"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/service"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// CreateAccount godoc
// @Summary      Open a new account
// @Description  Creates a new account on a unique account number with an optional opening balance.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        account body model.CreateAccountRequest true "Details of the new account"
// @Success      201  {object}  model.Account
// @Failure      400  {object}  common.AppError "Validation error or invalid initial balance"
// @Failure      409  {object}  common.AppError "Account number already taken"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateAccountRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	log := logger.Log.WithFields(logrus.Fields{
		"account_number": req.AccountNumber,
		"currency":       req.Currency,
	})
	log.Info("Create account request received")

	account, err := h.service.CreateAccount(r.Context(), req)
	if err != nil {
		return mapDomainError(err, "Could not create account")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
	return nil
}

// GetAccountByNumber godoc
// @Summary      Get an account by account number
// @Tags         accounts
// @Produce      json
// @Param        accountNumber path string true "The business key of the account"
// @Success      200  {object}  model.Account
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /accounts/number/{accountNumber} [get]
func (h *AccountHandler) GetAccountByNumber(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountNumber := r.PathValue("accountNumber")

	account, err := h.service.GetByAccountNumber(r.Context(), accountNumber)
	if err != nil {
		return mapDomainError(err, "Could not retrieve account")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// GetAccountByID godoc
// @Summary      Get an account by internal ID
// @Tags         accounts
// @Produce      json
// @Param        id path string true "The internal identifier of the account"
// @Success      200  {object}  model.Account
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /accounts/{id} [get]
func (h *AccountHandler) GetAccountByID(w http.ResponseWriter, r *http.Request) *common.AppError {
	id := r.PathValue("id")

	account, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		return mapDomainError(err, "Could not retrieve account")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// GetAccountDetails godoc
// @Summary      Get an account with derived detail fields
// @Description  Returns the account together with computed fields such as account age and activity status.
// @Tags         accounts
// @Produce      json
// @Param        accountNumber path string true "The business key of the account"
// @Success      200  {object}  model.DetailedAccount
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /accounts/number/{accountNumber}/details [get]
func (h *AccountHandler) GetAccountDetails(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountNumber := r.PathValue("accountNumber")

	details, err := h.service.GetAccountDetails(r.Context(), accountNumber)
	if err != nil {
		return mapDomainError(err, "Could not retrieve account details")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(details)
	return nil
}

// UpdateAccount godoc
// @Summary      Update an account's contact details
// @Description  Mutates holder name, email and phone of an ACTIVE account. Balance, currency and status are immutable here.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        accountNumber path string true "The business key of the account"
// @Param        account body model.UpdateAccountRequest true "New contact details"
// @Success      200  {object}  model.Account
// @Failure      400  {object}  common.AppError "Validation error or account not active"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /accounts/number/{accountNumber} [put]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountNumber := r.PathValue("accountNumber")

	var req model.UpdateAccountRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	logger.Log.WithField("account_number", accountNumber).Info("Update account request received")

	account, err := h.service.UpdateAccount(r.Context(), accountNumber, req)
	if err != nil {
		return mapDomainError(err, "Could not update account")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}

// DeleteAccount godoc
// @Summary      Delete an account
// @Description  Removes an account that holds no funds.
// @Tags         accounts
// @Param        id path string true "The internal identifier of the account"
// @Success      204  "No Content"
// @Failure      400  {object}  common.AppError "Account still holds a balance"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	id := r.PathValue("id")

	logger.Log.WithField("account_id", id).Info("Delete account request received")

	if err := h.service.DeleteAccount(r.Context(), id); err != nil {
		return mapDomainError(err, "Could not delete account")
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// ListAccounts godoc
// @Summary      List accounts with pagination
// @Tags         accounts
// @Produce      json
// @Param        page     query int    false "Zero-indexed page number" default(0)
// @Param        size     query int    false "Page size" default(10)
// @Param        sortBy   query string false "Sort field" default(createdAt)
// @Param        sortDir  query string false "Sort direction (ASC or DESC)" default(DESC)
// @Success      200  {object}  model.Page
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	criteria, appErr := parseSearchCriteria(r, false)
	if appErr != nil {
		return appErr
	}

	page, err := h.service.SearchAccounts(r.Context(), *criteria)
	if err != nil {
		return mapDomainError(err, "Could not retrieve accounts")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(page)
	return nil
}

// SearchAccounts godoc
// @Summary      Search accounts
// @Description  Filters accounts by optional conjunctive criteria: holder name substring, exact account number, status, currency, balance range and created/updated timestamp ranges.
// @Tags         accounts
// @Produce      json
// @Param        accountHolderName query string false "Case-insensitive substring of the holder name"
// @Param        accountNumber     query string false "Exact account number"
// @Param        status            query string false "Account status" Enums(ACTIVE, INACTIVE, SUSPENDED, CLOSED)
// @Param        currency          query string false "3-letter currency code"
// @Param        minBalance        query string false "Inclusive lower balance bound"
// @Param        maxBalance        query string false "Inclusive upper balance bound"
// @Param        createdFrom       query string false "Inclusive lower bound on creation time (RFC 3339)"
// @Param        createdTo         query string false "Inclusive upper bound on creation time (RFC 3339)"
// @Param        updatedFrom       query string false "Inclusive lower bound on update time (RFC 3339)"
// @Param        updatedTo         query string false "Inclusive upper bound on update time (RFC 3339)"
// @Param        page              query int    false "Zero-indexed page number" default(0)
// @Param        size              query int    false "Page size" default(10)
// @Param        sortBy            query string false "Sort field" default(createdAt)
// @Param        sortDir           query string false "Sort direction (ASC or DESC)" default(DESC)
// @Success      200  {object}  model.Page
// @Failure      400  {object}  common.AppError "Malformed filter value"
// @Failure      500  {object}  common.AppError "Internal server error"
// @Router       /accounts/search [get]
func (h *AccountHandler) SearchAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	criteria, appErr := parseSearchCriteria(r, true)
	if appErr != nil {
		return appErr
	}

	page, err := h.service.SearchAccounts(r.Context(), *criteria)
	if err != nil {
		return mapDomainError(err, "Could not search accounts")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(page)
	return nil
}

// parseSearchCriteria reads pagination parameters and, when withFilters is
// set, the optional search filters from the query string.
func parseSearchCriteria(r *http.Request, withFilters bool) (*model.AccountSearchCriteria, *common.AppError) {
	q := r.URL.Query()
	criteria := &model.AccountSearchCriteria{
		SortBy:  q.Get("sortBy"),
		SortDir: q.Get("sortDir"),
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return nil, common.NewAppError(http.StatusBadRequest, "Invalid page parameter", err)
		}
		criteria.Page = page
	}
	if raw := q.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return nil, common.NewAppError(http.StatusBadRequest, "Invalid size parameter", err)
		}
		criteria.Size = size
	}

	if !withFilters {
		return criteria, nil
	}

	criteria.HolderName = q.Get("accountHolderName")
	criteria.AccountNumber = q.Get("accountNumber")
	criteria.Currency = q.Get("currency")

	if raw := q.Get("status"); raw != "" {
		status := model.AccountStatus(strings.ToUpper(raw))
		if !status.IsValid() {
			return nil, common.NewAppError(http.StatusBadRequest, "Invalid status parameter", nil)
		}
		criteria.Status = status
	}

	var appErr *common.AppError
	if criteria.MinBalance, appErr = parseDecimalParam(q.Get("minBalance"), "minBalance"); appErr != nil {
		return nil, appErr
	}
	if criteria.MaxBalance, appErr = parseDecimalParam(q.Get("maxBalance"), "maxBalance"); appErr != nil {
		return nil, appErr
	}
	if criteria.CreatedFrom, appErr = parseTimeParam(q.Get("createdFrom"), "createdFrom"); appErr != nil {
		return nil, appErr
	}
	if criteria.CreatedTo, appErr = parseTimeParam(q.Get("createdTo"), "createdTo"); appErr != nil {
		return nil, appErr
	}
	if criteria.UpdatedFrom, appErr = parseTimeParam(q.Get("updatedFrom"), "updatedFrom"); appErr != nil {
		return nil, appErr
	}
	if criteria.UpdatedTo, appErr = parseTimeParam(q.Get("updatedTo"), "updatedTo"); appErr != nil {
		return nil, appErr
	}

	return criteria, nil
}

func parseDecimalParam(raw, name string) (*decimal.Decimal, *common.AppError) {
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, common.NewAppError(http.StatusBadRequest, "Invalid "+name+" parameter", err)
	}
	return &value, nil
}

func parseTimeParam(raw, name string) (*time.Time, *common.AppError) {
	if raw == "" {
		return nil, nil
	}
	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, common.NewAppError(http.StatusBadRequest, "Invalid "+name+" parameter", err)
	}
	return &value, nil
}
