// service/account_service_test.go
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"go-ledger-api/model"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func cacheMiss() *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func TestAccountService_CreateAccount(t *testing.T) {
	ctx := context.Background()

	req := model.CreateAccountRequest{
		AccountNumber:  "ACC10000001",
		HolderName:     "John Doe",
		Email:          "john.doe@example.com",
		InitialBalance: decimal.RequireFromString("1000.00"),
		Currency:       "USD",
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		accountService := NewAccountService(mockRepo, new(MockCacheClient))

		mockRepo.On("GetByAccountNumber", mock.Anything, "ACC10000001").Return(nil, sql.ErrNoRows).Once()
		mockRepo.On("CreateAccount", mock.Anything, mock.AnythingOfType("*model.Account")).Return(nil).Once()

		account, err := accountService.CreateAccount(ctx, req)

		assert.NoError(t, err)
		assert.NotNil(t, account)
		assert.Len(t, account.ID, 15)
		assert.Equal(t, "ACC", account.ID[:3])
		assert.Equal(t, "ACC10000001", account.AccountNumber)
		assert.Equal(t, model.StatusActive, account.Status)
		assert.True(t, account.Balance.Equal(decimal.RequireFromString("1000.00")))
		assert.Equal(t, account.CreatedAt, account.UpdatedAt)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate account number", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		accountService := NewAccountService(mockRepo, new(MockCacheClient))

		existing := activeAccount("ACCEXISTING1", "ACC10000001", "50.00", "USD")
		mockRepo.On("GetByAccountNumber", mock.Anything, "ACC10000001").Return(existing, nil).Once()

		_, err := accountService.CreateAccount(ctx, req)

		var duplicate *DuplicateAccountError
		assert.ErrorAs(t, err, &duplicate)
		assert.Equal(t, "ACC10000001", duplicate.AccountNumber)
		mockRepo.AssertNotCalled(t, "CreateAccount")
	})

	t.Run("negative initial balance", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		accountService := NewAccountService(mockRepo, new(MockCacheClient))

		bad := req
		bad.InitialBalance = decimal.RequireFromString("-1.00")
		_, err := accountService.CreateAccount(ctx, bad)

		assert.ErrorIs(t, err, ErrInvalidAmount)
		mockRepo.AssertNotCalled(t, "GetByAccountNumber")
	})
}

func TestAccountService_GetByAccountNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss reads repository and populates cache", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockCache := new(MockCacheClient)
		accountService := NewAccountService(mockRepo, mockCache)

		account := activeAccount("ACCFROM00001", "ACC10000001", "1000.00", "USD")

		mockCache.On("Get", mock.Anything, "account:number:ACC10000001").Return(cacheMiss()).Once()
		mockRepo.On("GetByAccountNumber", mock.Anything, "ACC10000001").Return(account, nil).Once()
		mockCache.On("Set", mock.Anything, "account:number:ACC10000001", mock.Anything, accountCacheTTL).Return(redis.NewStatusResult("OK", nil)).Once()

		got, err := accountService.GetByAccountNumber(ctx, "ACC10000001")

		assert.NoError(t, err)
		assert.Equal(t, account, got)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockCache := new(MockCacheClient)
		accountService := NewAccountService(mockRepo, mockCache)

		account := activeAccount("ACCFROM00001", "ACC10000001", "1000.00", "USD")
		data, err := json.Marshal(account)
		assert.NoError(t, err)

		mockCache.On("Get", mock.Anything, "account:number:ACC10000001").Return(redis.NewStringResult(string(data), nil)).Once()

		got, err := accountService.GetByAccountNumber(ctx, "ACC10000001")

		assert.NoError(t, err)
		assert.Equal(t, "ACC10000001", got.AccountNumber)
		assert.True(t, got.Balance.Equal(account.Balance))
		mockRepo.AssertNotCalled(t, "GetByAccountNumber")
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockCache := new(MockCacheClient)
		accountService := NewAccountService(mockRepo, mockCache)

		mockCache.On("Get", mock.Anything, "account:number:ACC99999999").Return(cacheMiss()).Once()
		mockRepo.On("GetByAccountNumber", mock.Anything, "ACC99999999").Return(nil, sql.ErrNoRows).Once()

		_, err := accountService.GetByAccountNumber(ctx, "ACC99999999")

		var notFound *AccountNotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.Equal(t, "ACC99999999", notFound.Key)
		mockCache.AssertNotCalled(t, "Set")
	})
}

func TestAccountService_GetAccountDetails(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockAccountRepository)
	mockCache := new(MockCacheClient)
	accountService := NewAccountService(mockRepo, mockCache)

	account := activeAccount("ACCFROM00001", "ACC10000001", "15000.00", "USD")

	mockCache.On("Get", mock.Anything, "account:number:ACC10000001").Return(cacheMiss()).Once()
	mockRepo.On("GetByAccountNumber", mock.Anything, "ACC10000001").Return(account, nil).Once()
	mockCache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(redis.NewStatusResult("OK", nil)).Once()

	details, err := accountService.GetAccountDetails(ctx, "ACC10000001")

	assert.NoError(t, err)
	assert.Equal(t, "PREMIUM", details.AccountType)
	assert.Equal(t, "USD 15000.00", details.FormattedBalance)
	assert.True(t, details.RecentlyUpdated)
}

func TestAccountService_UpdateAccount(t *testing.T) {
	ctx := context.Background()

	req := model.UpdateAccountRequest{
		HolderName: "Jane Doe",
		Email:      "jane.doe@example.com",
		Phone:      "+15550001111",
	}

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockCache := new(MockCacheClient)
		accountService := NewAccountService(mockRepo, mockCache)

		account := activeAccount("ACCFROM00001", "ACC10000001", "1000.00", "USD")
		previousUpdatedAt := account.UpdatedAt.Add(-time.Hour)
		account.UpdatedAt = previousUpdatedAt

		mockRepo.On("GetByAccountNumber", mock.Anything, "ACC10000001").Return(account, nil).Once()
		mockRepo.On("UpdateContactDetails", mock.Anything, account).Return(nil).Once()
		mockCache.On("Del", mock.Anything, []string{"account:number:ACC10000001", "account:id:ACCFROM00001"}).Return(redis.NewIntResult(2, nil)).Once()

		updated, err := accountService.UpdateAccount(ctx, "ACC10000001", req)

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", updated.HolderName)
		assert.Equal(t, "jane.doe@example.com", updated.Email)
		assert.Equal(t, "+15550001111", updated.Phone)
		assert.True(t, updated.UpdatedAt.After(previousUpdatedAt))
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("inactive account", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		accountService := NewAccountService(mockRepo, new(MockCacheClient))

		account := activeAccount("ACCFROM00001", "ACC10000001", "1000.00", "USD")
		account.Status = model.StatusClosed

		mockRepo.On("GetByAccountNumber", mock.Anything, "ACC10000001").Return(account, nil).Once()

		_, err := accountService.UpdateAccount(ctx, "ACC10000001", req)

		var inactive *AccountInactiveError
		assert.ErrorAs(t, err, &inactive)
		assert.Equal(t, model.StatusClosed, inactive.Status)
		mockRepo.AssertNotCalled(t, "UpdateContactDetails")
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		accountService := NewAccountService(mockRepo, new(MockCacheClient))

		mockRepo.On("GetByAccountNumber", mock.Anything, "ACC99999999").Return(nil, sql.ErrNoRows).Once()

		_, err := accountService.UpdateAccount(ctx, "ACC99999999", req)

		var notFound *AccountNotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}

func TestAccountService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("success with zero balance", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		mockCache := new(MockCacheClient)
		accountService := NewAccountService(mockRepo, mockCache)

		account := activeAccount("ACCFROM00001", "ACC10000001", "0.00", "USD")

		mockRepo.On("GetByID", mock.Anything, "ACCFROM00001").Return(account, nil).Once()
		mockRepo.On("DeleteAccount", mock.Anything, "ACCFROM00001").Return(nil).Once()
		mockCache.On("Del", mock.Anything, []string{"account:number:ACC10000001", "account:id:ACCFROM00001"}).Return(redis.NewIntResult(2, nil)).Once()

		err := accountService.DeleteAccount(ctx, "ACCFROM00001")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockCache.AssertExpectations(t)
	})

	t.Run("non-zero balance", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		accountService := NewAccountService(mockRepo, new(MockCacheClient))

		account := activeAccount("ACCFROM00001", "ACC10000001", "50.00", "USD")
		mockRepo.On("GetByID", mock.Anything, "ACCFROM00001").Return(account, nil).Once()

		err := accountService.DeleteAccount(ctx, "ACCFROM00001")

		var nonZero *NonZeroBalanceError
		assert.ErrorAs(t, err, &nonZero)
		assert.Equal(t, "ACC10000001", nonZero.AccountNumber)
		assert.True(t, nonZero.Balance.Equal(decimal.RequireFromString("50.00")))
		mockRepo.AssertNotCalled(t, "DeleteAccount")
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockAccountRepository)
		accountService := NewAccountService(mockRepo, new(MockCacheClient))

		mockRepo.On("GetByID", mock.Anything, "ACCMISSING01").Return(nil, sql.ErrNoRows).Once()

		err := accountService.DeleteAccount(ctx, "ACCMISSING01")

		var notFound *AccountNotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.Equal(t, "ID: ACCMISSING01", notFound.Key)
	})
}

func TestAccountService_SearchAccounts(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockAccountRepository)
	accountService := NewAccountService(mockRepo, new(MockCacheClient))

	emptyPage := model.NewPage([]*model.Account{}, 0, 10, 0)
	mockRepo.On("Search", mock.Anything, mock.MatchedBy(func(c model.AccountSearchCriteria) bool {
		return c.Page == 0 && c.Size == 10 && c.SortBy == "createdAt" && c.SortDir == "DESC"
	})).Return(emptyPage, nil).Once()

	page, err := accountService.SearchAccounts(ctx, model.AccountSearchCriteria{Page: -1, Size: 0})

	assert.NoError(t, err)
	assert.True(t, page.Empty)
	mockRepo.AssertExpectations(t)
}
