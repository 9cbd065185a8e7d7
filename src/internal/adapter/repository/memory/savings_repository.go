package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SavingsRepository struct {
	mu      sync.RWMutex
	savings map[string]domain.Savings
}

func NewSavingsRepository() *SavingsRepository {
	return &SavingsRepository{savings: make(map[string]domain.Savings)}
}

func (r *SavingsRepository) Create(_ context.Context, savings domain.Savings) (domain.Savings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.savings[savings.AccountNumber]; exists {
		return domain.Savings{}, commons.ErrDuplicateRecord
	}

	now := time.Now()
	savings.SID = uuid.NewString()
	savings.CreatedAt = now
	savings.UpdatedAt = now
	r.savings[savings.AccountNumber] = savings
	return savings, nil
}

func (r *SavingsRepository) GetByAccountNumber(_ context.Context, accountNumber string) (domain.Savings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	savings, exists := r.savings[accountNumber]
	if !exists {
		return domain.Savings{}, commons.ErrRecordNotFound
	}
	return savings, nil
}

func (r *SavingsRepository) GetByUID(_ context.Context, uid string) ([]domain.Savings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Savings, 0)
	for _, savings := range r.savings {
		if savings.UID == uid {
			list = append(list, savings)
		}
	}
	return list, nil
}

func (r *SavingsRepository) GetActiveDepositedOn(_ context.Context, date time.Time) ([]domain.Savings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Savings, 0)
	for _, savings := range r.savings {
		if savings.Status != domain.SavingsStatusActive {
			continue
		}
		if savings.LastDepositDate != nil && sameDate(*savings.LastDepositDate, date) {
			list = append(list, savings)
		}
	}
	return list, nil
}

func (r *SavingsRepository) GetActiveNotDepositedOn(_ context.Context, date time.Time) ([]domain.Savings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Savings, 0)
	for _, savings := range r.savings {
		if savings.Status != domain.SavingsStatusActive {
			continue
		}
		if savings.LastDepositDate == nil || !sameDate(*savings.LastDepositDate, date) {
			list = append(list, savings)
		}
	}
	return list, nil
}

func (r *SavingsRepository) UpdateBalance(_ context.Context, accountNumber string, balance int64) error {
	return r.update(accountNumber, func(s *domain.Savings) {
		s.Balance = balance
	})
}

func (r *SavingsRepository) UpdateCurrentRate(_ context.Context, accountNumber string, rate decimal.Decimal) error {
	return r.update(accountNumber, func(s *domain.Savings) {
		s.CurrentRate = rate
	})
}

func (r *SavingsRepository) UpdateBalanceAndPrincipal(_ context.Context, accountNumber string, balance, principal int64) error {
	return r.update(accountNumber, func(s *domain.Savings) {
		s.Balance = balance
		s.Principal = principal
	})
}

func (r *SavingsRepository) UpdateBalanceAndPrincipalAndDepositDate(_ context.Context, accountNumber string, balance, principal int64, depositDate time.Time) error {
	day := time.Date(depositDate.Year(), depositDate.Month(), depositDate.Day(), 0, 0, 0, 0, time.UTC)
	return r.update(accountNumber, func(s *domain.Savings) {
		s.Balance = balance
		s.Principal = principal
		s.LastDepositDate = &day
	})
}

func (r *SavingsRepository) UpdateStatus(_ context.Context, accountNumber string, status domain.SavingsStatus) error {
	return r.update(accountNumber, func(s *domain.Savings) {
		s.Status = status
	})
}

func (r *SavingsRepository) update(accountNumber string, apply func(*domain.Savings)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	savings, exists := r.savings[accountNumber]
	if !exists {
		return commons.ErrRecordNotFound
	}
	apply(&savings)
	savings.UpdatedAt = time.Now()
	r.savings[accountNumber] = savings
	return nil
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
