package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/google/uuid"
)

type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]domain.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.AccountNumber]; exists {
		return domain.Account{}, commons.ErrDuplicateRecord
	}

	now := time.Now()
	account.AID = uuid.NewString()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.accounts[account.AccountNumber] = account
	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[accountNumber]
	if !exists {
		return domain.Account{}, commons.ErrRecordNotFound
	}
	return account, nil
}

func (r *AccountRepository) GetByUID(_ context.Context, uid string) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, 0)
	for _, account := range r.accounts {
		if account.UID == uid {
			accounts = append(accounts, account)
		}
	}
	return accounts, nil
}

func (r *AccountRepository) GetAll(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r *AccountRepository) UpdateBalance(_ context.Context, accountNumber string, balance int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.accounts[accountNumber]
	if !exists {
		return commons.ErrRecordNotFound
	}
	account.Balance = balance
	account.UpdatedAt = time.Now()
	r.accounts[accountNumber] = account
	return nil
}

func (r *AccountRepository) UpdateBalanceAndInterestTime(_ context.Context, accountNumber string, balance int64, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.accounts[accountNumber]
	if !exists {
		return commons.ErrRecordNotFound
	}
	account.Balance = balance
	t := updatedAt
	account.LastInterestUpdate = &t
	account.UpdatedAt = time.Now()
	r.accounts[accountNumber] = account
	return nil
}

func (r *AccountRepository) Transfer(_ context.Context, fromAccountNumber, toAccountNumber string, amount int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	from, exists := r.accounts[fromAccountNumber]
	if !exists {
		return commons.ErrRecordNotFound
	}
	if from.Balance < amount {
		return commons.ErrInsufficientBalance
	}
	to, exists := r.accounts[toAccountNumber]
	if !exists {
		// Nothing has been written yet, so the debit is not applied either.
		return commons.ErrRecordNotFound
	}

	now := time.Now()
	from.Balance -= amount
	from.UpdatedAt = now
	to.Balance += amount
	to.UpdatedAt = now
	r.accounts[fromAccountNumber] = from
	r.accounts[toAccountNumber] = to
	return nil
}
