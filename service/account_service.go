// file: service/account_service.go

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/repository"
	"time"
)

// AccountService implements the account lifecycle: create, read, update,
// delete and search. Reads go through a cache-aside layer; every mutation
// evicts the keys it touches so reads always observe the latest committed
// state.
type AccountService struct {
	repo  repository.IAccountRepository
	cache ICacheClient
}

func NewAccountService(repo repository.IAccountRepository, cache ICacheClient) *AccountService {
	return &AccountService{
		repo:  repo,
		cache: cache,
	}
}

// CreateAccount opens a new account on a unique business key. The account
// starts ACTIVE with both timestamps stamped to the same instant.
func (s *AccountService) CreateAccount(ctx context.Context, req model.CreateAccountRequest) (*model.Account, error) {
	log := logger.Log.WithField("account_number", req.AccountNumber)
	log.Info("Creating new account")

	if err := ValidateInitialBalance(req.InitialBalance); err != nil {
		return nil, err
	}

	_, err := s.repo.GetByAccountNumber(ctx, req.AccountNumber)
	if err == nil {
		return nil, &DuplicateAccountError{AccountNumber: req.AccountNumber}
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	now := time.Now()
	account := &model.Account{
		ID:            model.NewAccountID(),
		AccountNumber: req.AccountNumber,
		HolderName:    req.HolderName,
		Email:         req.Email,
		Phone:         req.Phone,
		Balance:       req.InitialBalance,
		Currency:      req.Currency,
		Status:        model.StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	log.WithField("account_id", account.ID).Info("Account created successfully")
	return account, nil
}

// GetByAccountNumber retrieves an account by business key, utilizing a
// cache-aside strategy.
func (s *AccountService) GetByAccountNumber(ctx context.Context, accountNumber string) (*model.Account, error) {
	cacheKey := accountCacheKey(accountNumber)

	if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
		account := &model.Account{}
		if err := json.Unmarshal([]byte(cached), account); err == nil {
			return account, nil
		}
	}

	account, err := s.repo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &AccountNotFoundError{Key: accountNumber}
		}
		return nil, err
	}

	if data, err := json.Marshal(account); err == nil {
		s.cache.Set(ctx, cacheKey, data, accountCacheTTL)
	}

	return account, nil
}

// GetByID retrieves an account by its internal identifier, utilizing a
// cache-aside strategy.
func (s *AccountService) GetByID(ctx context.Context, id string) (*model.Account, error) {
	cacheKey := accountIDCacheKey(id)

	if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
		account := &model.Account{}
		if err := json.Unmarshal([]byte(cached), account); err == nil {
			return account, nil
		}
	}

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &AccountNotFoundError{Key: "ID: " + id}
		}
		return nil, err
	}

	if data, err := json.Marshal(account); err == nil {
		s.cache.Set(ctx, cacheKey, data, accountCacheTTL)
	}

	return account, nil
}

// GetAccountDetails returns the account together with its derived
// presentation fields.
func (s *AccountService) GetAccountDetails(ctx context.Context, accountNumber string) (*model.DetailedAccount, error) {
	account, err := s.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	return model.DetailAccount(account, time.Now()), nil
}

// UpdateAccount mutates the contact fields of an ACTIVE account and
// refreshes its updated_at stamp. The eligibility check runs against the
// repository, not the cache, so a just-suspended account cannot slip
// through on a stale copy.
func (s *AccountService) UpdateAccount(ctx context.Context, accountNumber string, req model.UpdateAccountRequest) (*model.Account, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Info("Updating account")

	account, err := s.repo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &AccountNotFoundError{Key: accountNumber}
		}
		return nil, err
	}

	if !IsActive(account) {
		return nil, &AccountInactiveError{AccountNumber: account.AccountNumber, Status: account.Status}
	}

	account.HolderName = req.HolderName
	account.Email = req.Email
	account.Phone = req.Phone
	account.UpdatedAt = time.Now()

	if err := s.repo.UpdateContactDetails(ctx, account); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, accountCacheKey(account.AccountNumber), accountIDCacheKey(account.ID))

	log.Info("Account updated successfully")
	return account, nil
}

// DeleteAccount removes an account that holds no funds. The record is
// unobservable afterwards.
func (s *AccountService) DeleteAccount(ctx context.Context, id string) error {
	log := logger.Log.WithField("account_id", id)
	log.Info("Deleting account")

	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return &AccountNotFoundError{Key: "ID: " + id}
		}
		return err
	}

	if !account.Balance.IsZero() {
		return &NonZeroBalanceError{AccountNumber: account.AccountNumber, Balance: account.Balance}
	}

	if err := s.repo.DeleteAccount(ctx, id); err != nil {
		return err
	}

	s.cache.Del(ctx, accountCacheKey(account.AccountNumber), accountIDCacheKey(account.ID))

	log.Info("Account deleted successfully")
	return nil
}

// SearchAccounts runs a filtered, paginated listing. Defaults: page 0,
// size 10, newest first.
func (s *AccountService) SearchAccounts(ctx context.Context, criteria model.AccountSearchCriteria) (*model.Page, error) {
	if criteria.Page < 0 {
		criteria.Page = 0
	}
	if criteria.Size <= 0 {
		criteria.Size = 10
	}
	if criteria.SortBy == "" {
		criteria.SortBy = "createdAt"
	}
	if criteria.SortDir == "" {
		criteria.SortDir = "DESC"
	}
	return s.repo.Search(ctx, criteria)
}
