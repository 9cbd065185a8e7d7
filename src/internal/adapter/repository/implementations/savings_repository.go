package implementations

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/api-sage/bank-service/src/internal/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SavingsRepository struct {
	db *sql.DB
}

func NewSavingsRepository(db *sql.DB) *SavingsRepository {
	return &SavingsRepository{db: db}
}

const savingsColumns = `sid, uid, acc_number, acc_password_hash, rate, current_rate, start_date, status, balance, principal, period, daily_deposit_cap, last_deposit_date, created_at, updated_at`

func (r *SavingsRepository) Create(ctx context.Context, savings domain.Savings) (domain.Savings, error) {
	logger.Info("savings repository create", logger.Fields{
		"uid":       savings.UID,
		"accNumber": savings.AccountNumber,
		"period":    savings.PeriodDays,
	})

	const query = `
INSERT INTO savings (
	sid,
	uid,
	acc_number,
	acc_password_hash,
	rate,
	current_rate,
	start_date,
	status,
	balance,
	principal,
	period,
	daily_deposit_cap
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING created_at, updated_at`

	sid := uuid.NewString()

	var createdAt time.Time
	var updatedAt time.Time
	if err := r.db.QueryRowContext(
		ctx,
		query,
		sid,
		savings.UID,
		savings.AccountNumber,
		savings.PasswordHash,
		savings.InitialRate,
		savings.CurrentRate,
		savings.StartDate,
		savings.Status,
		savings.Balance,
		savings.Principal,
		savings.PeriodDays,
		savings.DailyDepositCap,
	).Scan(&createdAt, &updatedAt); err != nil {
		logger.Error("savings repository create failed", err, logger.Fields{
			"uid":       savings.UID,
			"accNumber": savings.AccountNumber,
		})
		return domain.Savings{}, fmt.Errorf("create savings: %w", err)
	}

	savings.SID = sid
	savings.CreatedAt = createdAt
	savings.UpdatedAt = updatedAt
	logger.Info("savings repository create success", logger.Fields{
		"sid":       savings.SID,
		"accNumber": savings.AccountNumber,
	})

	return savings, nil
}

func (r *SavingsRepository) GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Savings, error) {
	const query = `
SELECT ` + savingsColumns + `
FROM savings
WHERE acc_number = $1`

	rows, err := r.db.QueryContext(ctx, query, accountNumber)
	if err != nil {
		logger.Error("savings repository get failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return domain.Savings{}, fmt.Errorf("get savings by account number: %w", err)
	}
	defer rows.Close()

	list, err := collectSavings(rows)
	if err != nil {
		return domain.Savings{}, err
	}
	if len(list) == 0 {
		logger.Info("savings repository record not found", logger.Fields{
			"accNumber": accountNumber,
		})
		return domain.Savings{}, commons.ErrRecordNotFound
	}

	return list[0], nil
}

func (r *SavingsRepository) GetByUID(ctx context.Context, uid string) ([]domain.Savings, error) {
	const query = `
SELECT ` + savingsColumns + `
FROM savings
WHERE uid = $1
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, uid)
	if err != nil {
		logger.Error("savings repository get by uid failed", err, logger.Fields{
			"uid": uid,
		})
		return nil, fmt.Errorf("get savings by uid: %w", err)
	}
	defer rows.Close()

	return collectSavings(rows)
}

func (r *SavingsRepository) GetActiveDepositedOn(ctx context.Context, date time.Time) ([]domain.Savings, error) {
	const query = `
SELECT ` + savingsColumns + `
FROM savings
WHERE status = 'ACTIVE'
  AND last_deposit_date = $1`

	rows, err := r.db.QueryContext(ctx, query, dateOnly(date))
	if err != nil {
		logger.Error("savings repository get active deposited on failed", err, nil)
		return nil, fmt.Errorf("get active savings deposited on date: %w", err)
	}
	defer rows.Close()

	return collectSavings(rows)
}

func (r *SavingsRepository) GetActiveNotDepositedOn(ctx context.Context, date time.Time) ([]domain.Savings, error) {
	const query = `
SELECT ` + savingsColumns + `
FROM savings
WHERE status = 'ACTIVE'
  AND (last_deposit_date IS NULL OR last_deposit_date <> $1)`

	rows, err := r.db.QueryContext(ctx, query, dateOnly(date))
	if err != nil {
		logger.Error("savings repository get active not deposited on failed", err, nil)
		return nil, fmt.Errorf("get active savings without deposit on date: %w", err)
	}
	defer rows.Close()

	return collectSavings(rows)
}

func (r *SavingsRepository) UpdateBalance(ctx context.Context, accountNumber string, balance int64) error {
	const query = `
UPDATE savings
SET balance = $2,
    updated_at = NOW()
WHERE acc_number = $1`

	result, err := r.db.ExecContext(ctx, query, accountNumber, balance)
	if err != nil {
		logger.Error("savings repository update balance failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return fmt.Errorf("update savings balance: %w", err)
	}

	return requireRow(result, commons.ErrRecordNotFound)
}

func (r *SavingsRepository) UpdateCurrentRate(ctx context.Context, accountNumber string, rate decimal.Decimal) error {
	const query = `
UPDATE savings
SET current_rate = $2,
    updated_at = NOW()
WHERE acc_number = $1`

	result, err := r.db.ExecContext(ctx, query, accountNumber, rate)
	if err != nil {
		logger.Error("savings repository update current rate failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return fmt.Errorf("update savings current rate: %w", err)
	}

	return requireRow(result, commons.ErrRecordNotFound)
}

func (r *SavingsRepository) UpdateBalanceAndPrincipal(ctx context.Context, accountNumber string, balance, principal int64) error {
	const query = `
UPDATE savings
SET balance = $2,
    principal = $3,
    updated_at = NOW()
WHERE acc_number = $1`

	result, err := r.db.ExecContext(ctx, query, accountNumber, balance, principal)
	if err != nil {
		logger.Error("savings repository update balance and principal failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return fmt.Errorf("update savings balance and principal: %w", err)
	}

	return requireRow(result, commons.ErrRecordNotFound)
}

func (r *SavingsRepository) UpdateBalanceAndPrincipalAndDepositDate(ctx context.Context, accountNumber string, balance, principal int64, depositDate time.Time) error {
	const query = `
UPDATE savings
SET balance = $2,
    principal = $3,
    last_deposit_date = $4,
    updated_at = NOW()
WHERE acc_number = $1`

	result, err := r.db.ExecContext(ctx, query, accountNumber, balance, principal, dateOnly(depositDate))
	if err != nil {
		logger.Error("savings repository update balance principal and deposit date failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return fmt.Errorf("update savings balance, principal and deposit date: %w", err)
	}

	return requireRow(result, commons.ErrRecordNotFound)
}

func (r *SavingsRepository) UpdateStatus(ctx context.Context, accountNumber string, status domain.SavingsStatus) error {
	const query = `
UPDATE savings
SET status = $2,
    updated_at = NOW()
WHERE acc_number = $1`

	result, err := r.db.ExecContext(ctx, query, accountNumber, status)
	if err != nil {
		logger.Error("savings repository update status failed", err, logger.Fields{
			"accNumber": accountNumber,
			"status":    status,
		})
		return fmt.Errorf("update savings status: %w", err)
	}

	return requireRow(result, commons.ErrRecordNotFound)
}

func collectSavings(rows *sql.Rows) ([]domain.Savings, error) {
	list := make([]domain.Savings, 0)
	for rows.Next() {
		var savings domain.Savings
		var status string
		var lastDeposit sql.NullTime
		if err := rows.Scan(
			&savings.SID,
			&savings.UID,
			&savings.AccountNumber,
			&savings.PasswordHash,
			&savings.InitialRate,
			&savings.CurrentRate,
			&savings.StartDate,
			&status,
			&savings.Balance,
			&savings.Principal,
			&savings.PeriodDays,
			&savings.DailyDepositCap,
			&lastDeposit,
			&savings.CreatedAt,
			&savings.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan savings row: %w", err)
		}
		savings.Status = domain.SavingsStatus(status)
		if lastDeposit.Valid {
			t := lastDeposit.Time
			savings.LastDepositDate = &t
		}
		list = append(list, savings)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate savings rows: %w", err)
	}
	return list, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
