package repository

import (
	"context"
	"database/sql"
	"fmt"
	"go-ledger-api/logger"
	"go-ledger-api/model"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account persistence. Locked
// reads and balance writes are bound to a *sql.Tx so their row locks are
// held until the surrounding transaction commits or rolls back.
type IAccountRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetByAccountNumber(ctx context.Context, accountNumber string) (*model.Account, error)
	GetByID(ctx context.Context, id string) (*model.Account, error)
	GetByAccountNumberForUpdate(ctx context.Context, tx *sql.Tx, accountNumber string) (*model.Account, error)
	UpdateBalance(ctx context.Context, tx *sql.Tx, id string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateContactDetails(ctx context.Context, account *model.Account) error
	DeleteAccount(ctx context.Context, id string) error
	Search(ctx context.Context, criteria model.AccountSearchCriteria) (*model.Page, error)
}

// AccountRepository implements IAccountRepository on Postgres.
type AccountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

const accountColumns = `id, account_number, holder_name, email, phone, balance, currency, status, created_at, updated_at`

func scanAccount(row *sql.Row) (*model.Account, error) {
	acc := &model.Account{}
	err := row.Scan(&acc.ID, &acc.AccountNumber, &acc.HolderName, &acc.Email, &acc.Phone,
		&acc.Balance, &acc.Currency, &acc.Status, &acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// CreateAccount inserts a new account row.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":     account.ID,
		"account_number": account.AccountNumber,
		"currency":       account.Currency,
	})
	log.Info("Executing query to create a new account")

	query := `INSERT INTO bank_accounts (` + accountColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, query,
		account.ID, account.AccountNumber, account.HolderName, account.Email, account.Phone,
		account.Balance, account.Currency, account.Status, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create account query")
		return err
	}
	return nil
}

// GetByAccountNumber retrieves an account by its business key without
// taking any lock.
func (r *AccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM bank_accounts WHERE account_number = $1`
	account, err := scanAccount(r.DB.QueryRowContext(ctx, query, accountNumber))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("account_number", accountNumber).
				WithError(err).Error("Failed to execute query for account by account number")
		}
		return nil, err
	}
	return account, nil
}

// GetByID retrieves an account by its internal identifier.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*model.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM bank_accounts WHERE id = $1`
	account, err := scanAccount(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Log.WithField("account_id", id).
				WithError(err).Error("Failed to execute query for account by ID")
		}
		return nil, err
	}
	return account, nil
}

// GetByAccountNumberForUpdate retrieves an account by business key with an
// exclusive row lock. The lock is held until tx ends, blocking any other
// FOR UPDATE reader of the same row.
func (r *AccountRepository) GetByAccountNumberForUpdate(ctx context.Context, tx *sql.Tx, accountNumber string) (*model.Account, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Info("Executing query to get account for update")

	query := `SELECT ` + accountColumns + ` FROM bank_accounts WHERE account_number = $1 FOR UPDATE`
	account, err := scanAccount(tx.QueryRowContext(ctx, query, accountNumber))
	if err != nil {
		if err == sql.ErrNoRows {
			log.Info("Account not found for update")
		} else {
			log.WithError(err).Error("Failed to execute get account for update query")
		}
		return nil, err
	}
	return account, nil
}

// UpdateBalance writes a new balance inside the given transaction and
// refreshes the row's updated_at stamp.
func (r *AccountRepository) UpdateBalance(ctx context.Context, tx *sql.Tx, id string, balance decimal.Decimal, updatedAt time.Time) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id":  id,
		"new_balance": balance.StringFixed(2),
	})
	log.Info("Executing query to update account balance")

	query := `UPDATE bank_accounts SET balance = $1, updated_at = $2 WHERE id = $3`
	_, err := tx.ExecContext(ctx, query, balance, updatedAt, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account balance query")
		return err
	}
	return nil
}

// UpdateContactDetails persists the mutable contact fields and the
// refreshed updated_at stamp.
func (r *AccountRepository) UpdateContactDetails(ctx context.Context, account *model.Account) error {
	log := logger.Log.WithField("account_number", account.AccountNumber)
	log.Info("Executing query to update account contact details")

	query := `UPDATE bank_accounts SET holder_name = $1, email = $2, phone = $3, updated_at = $4 WHERE id = $5`
	_, err := r.DB.ExecContext(ctx, query,
		account.HolderName, account.Email, account.Phone, account.UpdatedAt, account.ID)
	if err != nil {
		log.WithError(err).Error("Failed to execute update account query")
		return err
	}
	return nil
}

// DeleteAccount removes the account row by internal identifier.
func (r *AccountRepository) DeleteAccount(ctx context.Context, id string) error {
	log := logger.Log.WithField("account_id", id)
	log.Info("Executing query to delete account")

	query := `DELETE FROM bank_accounts WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute delete account query")
		return err
	}
	return nil
}

// sortColumns whitelists the sortable fields so request input never
// reaches the ORDER BY clause verbatim.
var sortColumns = map[string]string{
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
	"balance":       "balance",
	"accountNumber": "account_number",
	"holderName":    "holder_name",
	"currency":      "currency",
	"status":        "status",
}

// Search runs a filtered, paginated account query. All criteria are
// optional and combined with AND; no criteria means a plain listing.
func (r *AccountRepository) Search(ctx context.Context, criteria model.AccountSearchCriteria) (*model.Page, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"page": criteria.Page,
		"size": criteria.Size,
	})
	log.Info("Executing account search query")

	var conditions []string
	var args []interface{}

	addCondition := func(format string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(format, len(args)))
	}

	if name := strings.TrimSpace(criteria.HolderName); name != "" {
		addCondition(`holder_name ILIKE '%%' || $%d || '%%'`, name)
	}
	if number := strings.TrimSpace(criteria.AccountNumber); number != "" {
		addCondition(`account_number = $%d`, number)
	}
	if criteria.Status != "" {
		addCondition(`status = $%d`, criteria.Status)
	}
	if currency := strings.TrimSpace(criteria.Currency); currency != "" {
		addCondition(`currency = $%d`, strings.ToUpper(currency))
	}
	if criteria.MinBalance != nil {
		addCondition(`balance >= $%d`, *criteria.MinBalance)
	}
	if criteria.MaxBalance != nil {
		addCondition(`balance <= $%d`, *criteria.MaxBalance)
	}
	if criteria.CreatedFrom != nil {
		addCondition(`created_at >= $%d`, *criteria.CreatedFrom)
	}
	if criteria.CreatedTo != nil {
		addCondition(`created_at <= $%d`, *criteria.CreatedTo)
	}
	if criteria.UpdatedFrom != nil {
		addCondition(`updated_at >= $%d`, *criteria.UpdatedFrom)
	}
	if criteria.UpdatedTo != nil {
		addCondition(`updated_at <= $%d`, *criteria.UpdatedTo)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM bank_accounts` + whereClause
	if err := r.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.WithError(err).Error("Failed to execute account count query")
		return nil, err
	}

	sortColumn, ok := sortColumns[criteria.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	sortDir := "DESC"
	if strings.EqualFold(criteria.SortDir, "ASC") {
		sortDir = "ASC"
	}

	args = append(args, criteria.Size, criteria.Page*criteria.Size)
	query := fmt.Sprintf(`SELECT %s FROM bank_accounts%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		accountColumns, whereClause, sortColumn, sortDir, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.WithError(err).Error("Failed to execute account search query")
		return nil, err
	}
	defer rows.Close()

	var accounts []*model.Account
	for rows.Next() {
		acc := &model.Account{}
		if err := rows.Scan(&acc.ID, &acc.AccountNumber, &acc.HolderName, &acc.Email, &acc.Phone,
			&acc.Balance, &acc.Currency, &acc.Status, &acc.CreatedAt, &acc.UpdatedAt); err != nil {
			log.WithError(err).Error("Failed to scan account row")
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return model.NewPage(accounts, criteria.Page, criteria.Size, total), nil
}
