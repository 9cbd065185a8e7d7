package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/api-sage/bank-service/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/api-sage/bank-service/src/internal/scheduler"
	"github.com/shopspring/decimal"
)

func seedSavings(t *testing.T, repo *memory.SavingsRepository, accountNumber string, period int, rate string, balance int64, status domain.SavingsStatus, lastDeposit *time.Time) {
	t.Helper()

	_, err := repo.Create(context.Background(), domain.Savings{
		UID:             "owner-1",
		AccountNumber:   accountNumber,
		PasswordHash:    "irrelevant",
		InitialRate:     decimal.RequireFromString(rate),
		CurrentRate:     decimal.RequireFromString(rate),
		StartDate:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:          status,
		Balance:         balance,
		Principal:       balance,
		PeriodDays:      period,
		DailyDepositCap: 10000,
		LastDepositDate: lastDeposit,
	})
	if err != nil {
		t.Fatalf("seed savings: %v", err)
	}
}

func TestSavingsInterestJobAccruesForYesterdayDepositors(t *testing.T) {
	repo := memory.NewSavingsRepository()
	yesterday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	seedSavings(t, repo, "912345678901", 180, "1.3", 110000, domain.SavingsStatusActive, &yesterday)

	job := scheduler.NewSavingsInterestJob(repo)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	accrual, decay, err := job.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if accrual.Processed != 1 {
		t.Fatalf("expected 1 accrued, got %+v", accrual)
	}
	if decay.Processed != 0 {
		t.Fatalf("expected no decay, got %+v", decay)
	}

	stored, err := repo.GetByAccountNumber(context.Background(), "912345678901")
	if err != nil {
		t.Fatalf("fetch savings: %v", err)
	}
	// floor(110000 * 1.3 / 100) = 1430 interest.
	if stored.Balance != 111430 {
		t.Fatalf("expected balance 111430, got %d", stored.Balance)
	}
	// Accrual never touches the rate.
	if !stored.CurrentRate.Equal(decimal.RequireFromString("1.3")) {
		t.Fatalf("expected rate 1.3, got %s", stored.CurrentRate)
	}
}

func TestSavingsInterestJobDecaysNonDepositors(t *testing.T) {
	repo := memory.NewSavingsRepository()
	seedSavings(t, repo, "912345678901", 180, "1.3", 50000, domain.SavingsStatusActive, nil)

	job := scheduler.NewSavingsInterestJob(repo)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	_, decay, err := job.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if decay.Processed != 1 {
		t.Fatalf("expected 1 decayed, got %+v", decay)
	}

	stored, err := repo.GetByAccountNumber(context.Background(), "912345678901")
	if err != nil {
		t.Fatalf("fetch savings: %v", err)
	}
	if !stored.CurrentRate.Equal(decimal.RequireFromString("1.25")) {
		t.Fatalf("expected rate 1.25 after 180-day decay, got %s", stored.CurrentRate)
	}
	// Decay never touches the balance.
	if stored.Balance != 50000 {
		t.Fatalf("expected unchanged balance, got %d", stored.Balance)
	}
}

func TestSavingsInterestJobClampsRateAtZero(t *testing.T) {
	repo := memory.NewSavingsRepository()
	seedSavings(t, repo, "912345678901", 180, "0.03", 50000, domain.SavingsStatusActive, nil)

	job := scheduler.NewSavingsInterestJob(repo)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	if _, _, err := job.Run(context.Background(), now); err != nil {
		t.Fatalf("run: %v", err)
	}

	stored, err := repo.GetByAccountNumber(context.Background(), "912345678901")
	if err != nil {
		t.Fatalf("fetch savings: %v", err)
	}
	// 0.03 - 0.05 clamps to zero instead of going negative.
	if !stored.CurrentRate.Equal(decimal.Zero) {
		t.Fatalf("expected rate 0, got %s", stored.CurrentRate)
	}

	// A zero rate is skipped on later runs and stays at zero.
	_, decay, err := job.Run(context.Background(), now.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if decay.Skipped != 1 {
		t.Fatalf("expected zero-rate account to be skipped, got %+v", decay)
	}

	stored, err = repo.GetByAccountNumber(context.Background(), "912345678901")
	if err != nil {
		t.Fatalf("fetch savings: %v", err)
	}
	if !stored.CurrentRate.Equal(decimal.Zero) {
		t.Fatalf("expected rate to stay 0, got %s", stored.CurrentRate)
	}
}

func TestSavingsInterestJobIgnoresClosedAccounts(t *testing.T) {
	repo := memory.NewSavingsRepository()
	yesterday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	seedSavings(t, repo, "912345678901", 30, "1.1", 20000, domain.SavingsStatusClosed, &yesterday)

	job := scheduler.NewSavingsInterestJob(repo)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	accrual, decay, err := job.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if accrual.Processed != 0 || decay.Processed != 0 {
		t.Fatalf("expected closed account to be ignored, got accrual %+v decay %+v", accrual, decay)
	}

	stored, err := repo.GetByAccountNumber(context.Background(), "912345678901")
	if err != nil {
		t.Fatalf("fetch savings: %v", err)
	}
	if stored.Balance != 20000 || !stored.CurrentRate.Equal(decimal.RequireFromString("1.1")) {
		t.Fatalf("expected closed account untouched, got balance %d rate %s", stored.Balance, stored.CurrentRate)
	}
}

func TestSavingsInterestJobPartitionsAccountsAcrossPasses(t *testing.T) {
	repo := memory.NewSavingsRepository()
	yesterday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	twoDaysAgo := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)

	seedSavings(t, repo, "900000000001", 30, "1.1", 10000, domain.SavingsStatusActive, &yesterday)
	seedSavings(t, repo, "900000000002", 30, "1.1", 10000, domain.SavingsStatusActive, &twoDaysAgo)
	seedSavings(t, repo, "900000000003", 365, "1.5", 10000, domain.SavingsStatusActive, nil)

	job := scheduler.NewSavingsInterestJob(repo)
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	accrual, decay, err := job.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if accrual.Processed != 1 {
		t.Fatalf("expected 1 accrued, got %+v", accrual)
	}
	if decay.Processed != 2 {
		t.Fatalf("expected 2 decayed, got %+v", decay)
	}

	accrued, err := repo.GetByAccountNumber(context.Background(), "900000000001")
	if err != nil {
		t.Fatalf("fetch savings: %v", err)
	}
	// floor(10000 * 1.1 / 100) = 110 interest.
	if accrued.Balance != 10110 {
		t.Fatalf("expected balance 10110, got %d", accrued.Balance)
	}

	decayed, err := repo.GetByAccountNumber(context.Background(), "900000000003")
	if err != nil {
		t.Fatalf("fetch savings: %v", err)
	}
	if !decayed.CurrentRate.Equal(decimal.RequireFromString("1.49")) {
		t.Fatalf("expected rate 1.49 after 365-day decay, got %s", decayed.CurrentRate)
	}
}
