package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/api-sage/bank-service/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/api-sage/bank-service/src/internal/scheduler"
)

func seedCheckingAccount(t *testing.T, repo *memory.AccountRepository, accountNumber string, balance int64, lastUpdate *time.Time) {
	t.Helper()

	_, err := repo.Create(context.Background(), domain.Account{
		UID:                "owner-1",
		AccountNumber:      accountNumber,
		PasswordHash:       "irrelevant",
		Balance:            balance,
		LastInterestUpdate: lastUpdate,
	})
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
}

func TestCheckingInterestJobSeedsBaselineOnFirstRun(t *testing.T) {
	repo := memory.NewAccountRepository()
	seedCheckingAccount(t, repo, "012345678901", 5000, nil)

	job := scheduler.NewCheckingInterestJob(repo)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	summary, err := job.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Processed != 1 {
		t.Fatalf("expected 1 processed, got %d", summary.Processed)
	}

	account, err := repo.GetByAccountNumber(context.Background(), "012345678901")
	if err != nil {
		t.Fatalf("fetch account: %v", err)
	}
	if account.Balance != 5000 {
		t.Fatalf("expected untouched balance on first sighting, got %d", account.Balance)
	}
	if account.LastInterestUpdate == nil || !account.LastInterestUpdate.Equal(now) {
		t.Fatalf("expected baseline %v, got %v", now, account.LastInterestUpdate)
	}
}

func TestCheckingInterestJobSkipsSubHourElapsed(t *testing.T) {
	repo := memory.NewAccountRepository()
	baseline := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	seedCheckingAccount(t, repo, "012345678901", 5000, &baseline)

	job := scheduler.NewCheckingInterestJob(repo)

	summary, err := job.Run(context.Background(), baseline.Add(30*time.Minute))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Skipped != 1 || summary.Processed != 0 {
		t.Fatalf("expected the account to be skipped, got %+v", summary)
	}

	account, err := repo.GetByAccountNumber(context.Background(), "012345678901")
	if err != nil {
		t.Fatalf("fetch account: %v", err)
	}
	if account.Balance != 5000 {
		t.Fatalf("expected unchanged balance, got %d", account.Balance)
	}
	if !account.LastInterestUpdate.Equal(baseline) {
		t.Fatalf("expected baseline to stay %v, got %v", baseline, account.LastInterestUpdate)
	}
}

func TestCheckingInterestJobCompoundsWholeHours(t *testing.T) {
	repo := memory.NewAccountRepository()
	baseline := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seedCheckingAccount(t, repo, "012345678901", 100000, &baseline)

	job := scheduler.NewCheckingInterestJob(repo)
	now := baseline.Add(3 * time.Hour)

	summary, err := job.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Processed != 1 {
		t.Fatalf("expected 1 processed, got %+v", summary)
	}

	account, err := repo.GetByAccountNumber(context.Background(), "012345678901")
	if err != nil {
		t.Fatalf("fetch account: %v", err)
	}
	// 100000 * 1.01^3 = 103030.301, floored.
	if account.Balance != 103030 {
		t.Fatalf("expected balance 103030, got %d", account.Balance)
	}
	if !account.LastInterestUpdate.Equal(now) {
		t.Fatalf("expected baseline advanced to %v, got %v", now, account.LastInterestUpdate)
	}
}

func TestCheckingInterestJobKeepsBaselineWhenBalanceUnchanged(t *testing.T) {
	repo := memory.NewAccountRepository()
	baseline := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seedCheckingAccount(t, repo, "012345678901", 0, &baseline)

	job := scheduler.NewCheckingInterestJob(repo)

	summary, err := job.Run(context.Background(), baseline.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Skipped != 1 {
		t.Fatalf("expected zero-balance account to be skipped, got %+v", summary)
	}

	account, err := repo.GetByAccountNumber(context.Background(), "012345678901")
	if err != nil {
		t.Fatalf("fetch account: %v", err)
	}
	// The old baseline survives so elapsed time keeps accumulating.
	if !account.LastInterestUpdate.Equal(baseline) {
		t.Fatalf("expected baseline to stay %v, got %v", baseline, account.LastInterestUpdate)
	}
}

func TestCheckingInterestJobFractionalHoursTruncate(t *testing.T) {
	repo := memory.NewAccountRepository()
	baseline := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	seedCheckingAccount(t, repo, "012345678901", 100000, &baseline)

	job := scheduler.NewCheckingInterestJob(repo)

	// 1h50m elapsed counts as a single whole hour.
	if _, err := job.Run(context.Background(), baseline.Add(110*time.Minute)); err != nil {
		t.Fatalf("run: %v", err)
	}

	account, err := repo.GetByAccountNumber(context.Background(), "012345678901")
	if err != nil {
		t.Fatalf("fetch account: %v", err)
	}
	if account.Balance != 101000 {
		t.Fatalf("expected balance 101000 after one whole hour, got %d", account.Balance)
	}
}
