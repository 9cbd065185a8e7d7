package implementations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/api-sage/bank-service/src/internal/logger"
	"github.com/google/uuid"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `aid, uid, acc_number, acc_password_hash, balance, last_interest_update, created_at, updated_at`

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	logger.Info("account repository create", logger.Fields{
		"uid":       account.UID,
		"accNumber": account.AccountNumber,
	})

	const query = `
INSERT INTO accounts (
	aid,
	uid,
	acc_number,
	acc_password_hash,
	balance
) VALUES ($1, $2, $3, $4, $5)
RETURNING created_at, updated_at`

	aid := uuid.NewString()

	var createdAt time.Time
	var updatedAt time.Time
	if err := r.db.QueryRowContext(
		ctx,
		query,
		aid,
		account.UID,
		account.AccountNumber,
		account.PasswordHash,
		account.Balance,
	).Scan(&createdAt, &updatedAt); err != nil {
		logger.Error("account repository create failed", err, logger.Fields{
			"uid":       account.UID,
			"accNumber": account.AccountNumber,
		})
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	account.AID = aid
	account.CreatedAt = createdAt
	account.UpdatedAt = updatedAt
	logger.Info("account repository create success", logger.Fields{
		"aid":       account.AID,
		"accNumber": account.AccountNumber,
	})

	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts
WHERE acc_number = $1`

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("account repository record not found", logger.Fields{
				"accNumber": accountNumber,
			})
			return domain.Account{}, commons.ErrRecordNotFound
		}
		logger.Error("account repository get failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return domain.Account{}, fmt.Errorf("get account by account number: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetByUID(ctx context.Context, uid string) ([]domain.Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts
WHERE uid = $1
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, uid)
	if err != nil {
		logger.Error("account repository get by uid failed", err, logger.Fields{
			"uid": uid,
		})
		return nil, fmt.Errorf("get accounts by uid: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func (r *AccountRepository) GetAll(ctx context.Context) ([]domain.Account, error) {
	const query = `
SELECT ` + accountColumns + `
FROM accounts`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("account repository get all failed", err, nil)
		return nil, fmt.Errorf("get all accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func (r *AccountRepository) UpdateBalance(ctx context.Context, accountNumber string, balance int64) error {
	const query = `
UPDATE accounts
SET balance = $2,
    updated_at = NOW()
WHERE acc_number = $1`

	result, err := r.db.ExecContext(ctx, query, accountNumber, balance)
	if err != nil {
		logger.Error("account repository update balance failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return fmt.Errorf("update account balance: %w", err)
	}

	return requireRow(result, commons.ErrRecordNotFound)
}

func (r *AccountRepository) UpdateBalanceAndInterestTime(ctx context.Context, accountNumber string, balance int64, updatedAt time.Time) error {
	const query = `
UPDATE accounts
SET balance = $2,
    last_interest_update = $3,
    updated_at = NOW()
WHERE acc_number = $1`

	result, err := r.db.ExecContext(ctx, query, accountNumber, balance, updatedAt)
	if err != nil {
		logger.Error("account repository update balance and interest time failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return fmt.Errorf("update account balance and interest time: %w", err)
	}

	return requireRow(result, commons.ErrRecordNotFound)
}

func (r *AccountRepository) Transfer(ctx context.Context, fromAccountNumber, toAccountNumber string, amount int64) error {
	logger.Info("account repository transfer", logger.Fields{
		"fromAccNumber": fromAccountNumber,
		"toAccNumber":   toAccountNumber,
		"amount":        amount,
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("account repository begin transfer tx failed", err, nil)
		return fmt.Errorf("begin transfer transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const debitQuery = `
UPDATE accounts
SET balance = balance - $2,
    updated_at = NOW()
WHERE acc_number = $1
  AND balance >= $2`

	var result sql.Result
	if result, err = tx.ExecContext(ctx, debitQuery, fromAccountNumber, amount); err != nil {
		return fmt.Errorf("debit transfer source: %w", err)
	}
	if err = requireRow(result, commons.ErrInsufficientBalance); err != nil {
		return err
	}

	const creditQuery = `
UPDATE accounts
SET balance = balance + $2,
    updated_at = NOW()
WHERE acc_number = $1`

	if result, err = tx.ExecContext(ctx, creditQuery, toAccountNumber, amount); err != nil {
		return fmt.Errorf("credit transfer destination: %w", err)
	}
	if err = requireRow(result, commons.ErrRecordNotFound); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.Error("account repository commit transfer tx failed", err, nil)
		return fmt.Errorf("commit transfer transaction: %w", err)
	}

	logger.Info("account repository transfer success", logger.Fields{
		"fromAccNumber": fromAccountNumber,
		"toAccNumber":   toAccountNumber,
	})
	return nil
}

func scanAccount(row *sql.Row) (domain.Account, error) {
	var account domain.Account
	var lastUpdate sql.NullTime
	if err := row.Scan(
		&account.AID,
		&account.UID,
		&account.AccountNumber,
		&account.PasswordHash,
		&account.Balance,
		&lastUpdate,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return domain.Account{}, err
	}
	if lastUpdate.Valid {
		t := lastUpdate.Time
		account.LastInterestUpdate = &t
	}
	return account, nil
}

func collectAccounts(rows *sql.Rows) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var account domain.Account
		var lastUpdate sql.NullTime
		if err := rows.Scan(
			&account.AID,
			&account.UID,
			&account.AccountNumber,
			&account.PasswordHash,
			&account.Balance,
			&lastUpdate,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		if lastUpdate.Valid {
			t := lastUpdate.Time
			account.LastInterestUpdate = &t
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}
	return accounts, nil
}

func requireRow(result sql.Result, missing error) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return missing
	}
	return nil
}
