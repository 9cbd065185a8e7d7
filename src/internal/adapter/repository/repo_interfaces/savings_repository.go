package repo_interfaces

import (
	"context"
	"time"

	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/shopspring/decimal"
)

type SavingsRepository interface {
	Create(ctx context.Context, savings domain.Savings) (domain.Savings, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Savings, error)
	GetByUID(ctx context.Context, uid string) ([]domain.Savings, error)
	// GetActiveDepositedOn returns ACTIVE accounts whose last deposit date
	// equals the given calendar date; GetActiveNotDepositedOn returns the
	// complement, including accounts that never deposited.
	GetActiveDepositedOn(ctx context.Context, date time.Time) ([]domain.Savings, error)
	GetActiveNotDepositedOn(ctx context.Context, date time.Time) ([]domain.Savings, error)
	UpdateBalance(ctx context.Context, accountNumber string, balance int64) error
	UpdateCurrentRate(ctx context.Context, accountNumber string, rate decimal.Decimal) error
	UpdateBalanceAndPrincipal(ctx context.Context, accountNumber string, balance, principal int64) error
	UpdateBalanceAndPrincipalAndDepositDate(ctx context.Context, accountNumber string, balance, principal int64, depositDate time.Time) error
	UpdateStatus(ctx context.Context, accountNumber string, status domain.SavingsStatus) error
}
