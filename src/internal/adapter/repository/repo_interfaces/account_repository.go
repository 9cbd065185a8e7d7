package repo_interfaces

import (
	"context"
	"time"

	"github.com/api-sage/bank-service/src/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByAccountNumber(ctx context.Context, accountNumber string) (domain.Account, error)
	GetByUID(ctx context.Context, uid string) ([]domain.Account, error)
	GetAll(ctx context.Context) ([]domain.Account, error)
	UpdateBalance(ctx context.Context, accountNumber string, balance int64) error
	// UpdateBalanceAndInterestTime persists a recomputed balance together with
	// the interest baseline in a single row write.
	UpdateBalanceAndInterestTime(ctx context.Context, accountNumber string, balance int64, updatedAt time.Time) error
	// Transfer debits one account and credits another in one transaction.
	// The debit is guarded by a balance check; either both writes apply or neither.
	Transfer(ctx context.Context, fromAccountNumber, toAccountNumber string, amount int64) error
}
