package service

import (
	"context"
	"database/sql"
	"fmt"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"go-ledger-api/repository"
	"time"

	"github.com/sirupsen/logrus"
)

// TransferService moves funds between two accounts as one atomic unit.
// Both rows are locked with SELECT ... FOR UPDATE inside a single
// database transaction; the deferred rollback releases the locks on every
// exit path, so a failed transfer never leaves a partial balance change
// behind.
type TransferService struct {
	db          *sql.DB
	accountRepo repository.IAccountRepository
	cache       ICacheClient
}

func NewTransferService(db *sql.DB, accountRepo repository.IAccountRepository, cache ICacheClient) *TransferService {
	return &TransferService{
		db:          db,
		accountRepo: accountRepo,
		cache:       cache,
	}
}

// TransferFunds executes req. Preconditions are checked in a fixed order,
// each failing with its own typed error and no state change:
// self-transfer, invalid amount (both before any lock is taken), account
// not found, account inactive, currency mismatch, insufficient funds.
//
// The operation is not idempotent: calling it twice with identical
// arguments moves the funds twice.
func (s *TransferService) TransferFunds(ctx context.Context, req model.TransferRequest) (*model.TransferResult, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"from_account_number": req.FromAccountNumber,
		"to_account_number":   req.ToAccountNumber,
		"amount":              req.Amount.String(),
	})
	log.Info("Starting fund transfer process")

	if req.FromAccountNumber == req.ToAccountNumber {
		return nil, ErrSelfTransfer
	}
	if err := ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Lock both rows in sorted business-key order. The fixed global order
	// across all concurrent transfers rules out cyclic waits, whichever
	// direction each transfer runs in.
	firstKey, secondKey := lockOrder(req.FromAccountNumber, req.ToAccountNumber)

	first, err := s.accountRepo.GetByAccountNumberForUpdate(ctx, tx, firstKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &AccountNotFoundError{Key: firstKey}
		}
		return nil, err
	}

	second, err := s.accountRepo.GetByAccountNumberForUpdate(ctx, tx, secondKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &AccountNotFoundError{Key: secondKey}
		}
		return nil, err
	}

	// Lock order is independent of transfer direction; re-identify which
	// locked record is the source.
	from, to := first, second
	if from.AccountNumber != req.FromAccountNumber {
		from, to = second, first
	}

	// Invariants are checked against the locked, up-to-date rows. Anything
	// read before the locks were taken could already be stale.
	if !IsActive(from) {
		return nil, &AccountInactiveError{AccountNumber: from.AccountNumber, Status: from.Status}
	}
	if !IsActive(to) {
		return nil, &AccountInactiveError{AccountNumber: to.AccountNumber, Status: to.Status}
	}
	if !CurrenciesMatch(from, to) {
		return nil, &CurrencyMismatchError{FromCurrency: from.Currency, ToCurrency: to.Currency}
	}
	if !HasSufficientFunds(from, req.Amount) {
		return nil, &InsufficientFundsError{
			AccountNumber: from.AccountNumber,
			Requested:     req.Amount,
			Available:     from.Balance,
		}
	}

	now := time.Now()
	from.Balance = from.Balance.Sub(req.Amount)
	to.Balance = to.Balance.Add(req.Amount)
	from.UpdatedAt = now
	to.UpdatedAt = now

	if err := s.accountRepo.UpdateBalance(ctx, tx, from.ID, from.Balance, now); err != nil {
		return nil, fmt.Errorf("could not update sender balance: %w", err)
	}
	if err := s.accountRepo.UpdateBalance(ctx, tx, to.ID, to.Balance, now); err != nil {
		return nil, fmt.Errorf("could not update receiver balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	// Drop cached copies of both accounts so reads observe the committed
	// balances.
	s.cache.Del(ctx,
		accountCacheKey(from.AccountNumber), accountCacheKey(to.AccountNumber),
		accountIDCacheKey(from.ID), accountIDCacheKey(to.ID))

	log.Info("Fund transfer completed successfully")
	return &model.TransferResult{FromAccount: from, ToAccount: to, Amount: req.Amount}, nil
}
