// file: model/details.go

package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DetailedAccount augments an account snapshot with derived presentation
// fields. All of them are computed on the fly; nothing here is stored.
type DetailedAccount struct {
	Account
	AccountAgeInDays   int64  `json:"account_age_in_days"`
	AccountType        string `json:"account_type"`
	RecentlyUpdated    bool   `json:"recently_updated"`
	FormattedBalance   string `json:"formatted_balance"`
	LastActivityStatus string `json:"last_activity_status"`
}

// DetailAccount computes the derived fields for an account snapshot at
// the given instant.
func DetailAccount(account *Account, now time.Time) *DetailedAccount {
	return &DetailedAccount{
		Account:            *account,
		AccountAgeInDays:   int64(now.Sub(account.CreatedAt).Hours() / 24),
		AccountType:        accountType(account.Balance),
		RecentlyUpdated:    now.Sub(account.UpdatedAt) < 24*time.Hour,
		FormattedBalance:   fmt.Sprintf("%s %s", account.Currency, account.Balance.StringFixed(2)),
		LastActivityStatus: activityStatus(account.UpdatedAt, now),
	}
}

func accountType(balance decimal.Decimal) string {
	switch {
	case balance.GreaterThanOrEqual(decimal.NewFromInt(10000)):
		return "PREMIUM"
	case balance.GreaterThanOrEqual(decimal.NewFromInt(1000)):
		return "STANDARD"
	case balance.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return "BASIC"
	default:
		return "ENTRY"
	}
}

func activityStatus(updatedAt, now time.Time) string {
	if updatedAt.IsZero() {
		return "NEVER_UPDATED"
	}
	since := now.Sub(updatedAt)
	switch {
	case since < time.Hour:
		return "VERY_RECENT"
	case since < 24*time.Hour:
		return "RECENT"
	case since < 7*24*time.Hour:
		return "MODERATE"
	default:
		return "STALE"
	}
}
