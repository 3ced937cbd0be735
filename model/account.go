package model

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus enumerates the lifecycle states of an account. Only
// ACTIVE accounts may be updated or take part in a transfer.
type AccountStatus string

const (
	StatusActive    AccountStatus = "ACTIVE"
	StatusInactive  AccountStatus = "INACTIVE"
	StatusSuspended AccountStatus = "SUSPENDED"
	StatusClosed    AccountStatus = "CLOSED"
)

// IsValid reports whether s is one of the known account statuses.
func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusClosed:
		return true
	}
	return false
}

// Account is the ledger entity. ID, AccountNumber, Currency and CreatedAt
// are immutable after creation; Balance is mutated only by the transfer
// engine and never drops below zero.
type Account struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"account_number"`
	HolderName    string          `json:"holder_name"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	Status        AccountStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

const accountIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewAccountID generates an opaque, hard to guess account identifier of
// the form ACC followed by 12 random alphanumeric characters.
func NewAccountID() string {
	buf := make([]byte, 12)
	max := big.NewInt(int64(len(accountIDAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		buf[i] = accountIDAlphabet[n.Int64()]
	}
	return "ACC" + string(buf)
}
