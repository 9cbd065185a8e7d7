package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/api-sage/bank-service/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-service/src/internal/logger"
	"github.com/shopspring/decimal"
)

// hourlyInterestFactor compounds checking balances at 1% per whole hour.
var hourlyInterestFactor = decimal.RequireFromString("1.01")

type CheckingInterestJob struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewCheckingInterestJob(accountRepo repo_interfaces.AccountRepository) *CheckingInterestJob {
	return &CheckingInterestJob{accountRepo: accountRepo}
}

// Run applies compound interest to every checking account based on the time
// elapsed since its persisted baseline. Missed runs catch up naturally: the
// elapsed hours are computed from the stored timestamp, not the schedule.
func (j *CheckingInterestJob) Run(ctx context.Context, now time.Time) (RunSummary, error) {
	accounts, err := j.accountRepo.GetAll(ctx)
	if err != nil {
		return RunSummary{}, fmt.Errorf("scan checking accounts: %w", err)
	}

	logger.Info("checking interest run started", logger.Fields{
		"accounts": len(accounts),
	})

	var summary RunSummary
	for _, account := range accounts {
		// First sighting: seed the baseline, accrue nothing.
		if account.LastInterestUpdate == nil {
			if err := j.accountRepo.UpdateBalanceAndInterestTime(ctx, account.AccountNumber, account.Balance, now); err != nil {
				summary.Errors = append(summary.Errors, fmt.Errorf("seed baseline for account %s: %w", account.AccountNumber, err))
				continue
			}
			summary.Processed++
			continue
		}

		hoursElapsed := int64(now.Sub(*account.LastInterestUpdate).Hours())
		if hoursElapsed < 1 {
			summary.Skipped++
			continue
		}

		newBalance := decimal.NewFromInt(account.Balance).
			Mul(hourlyInterestFactor.Pow(decimal.NewFromInt(hoursElapsed))).
			Floor().
			IntPart()

		// A zero-effect run keeps the old baseline so elapsed time keeps
		// accumulating for low-balance accounts.
		if newBalance == account.Balance {
			summary.Skipped++
			continue
		}

		if err := j.accountRepo.UpdateBalanceAndInterestTime(ctx, account.AccountNumber, newBalance, now); err != nil {
			summary.Errors = append(summary.Errors, fmt.Errorf("apply interest to account %s: %w", account.AccountNumber, err))
			continue
		}

		summary.Processed++
	}

	logger.Info("checking interest run finished", logger.Fields{
		"processed": summary.Processed,
		"skipped":   summary.Skipped,
		"errors":    errorStrings(summary.Errors),
	})

	return summary, nil
}

// Start runs the job on a fixed interval until the context is cancelled.
func (j *CheckingInterestJob) Start(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := j.Run(ctx, time.Now()); err != nil {
				logger.Error("checking interest run failed", err, nil)
			}
		}
	}
}
