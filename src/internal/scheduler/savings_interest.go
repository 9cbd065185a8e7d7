package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/bank-service/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/api-sage/bank-service/src/internal/logger"
	"github.com/shopspring/decimal"
)

type SavingsInterestJob struct {
	savingsRepo repo_interfaces.SavingsRepository
}

func NewSavingsInterestJob(savingsRepo repo_interfaces.SavingsRepository) *SavingsInterestJob {
	return &SavingsInterestJob{savingsRepo: savingsRepo}
}

// Run executes the two daily passes against yesterday's deposit date:
// accounts that made their full deposit yesterday earn interest, the rest
// lose a slice of their rate. An account lands in exactly one pass.
func (j *SavingsInterestJob) Run(ctx context.Context, now time.Time) (RunSummary, RunSummary, error) {
	yesterday := dateOnly(now).AddDate(0, 0, -1)

	accrual, accrualErr := j.runAccrualPass(ctx, yesterday)
	decay, decayErr := j.runDecayPass(ctx, yesterday)

	return accrual, decay, errors.Join(accrualErr, decayErr)
}

func (j *SavingsInterestJob) runAccrualPass(ctx context.Context, yesterday time.Time) (RunSummary, error) {
	list, err := j.savingsRepo.GetActiveDepositedOn(ctx, yesterday)
	if err != nil {
		return RunSummary{}, fmt.Errorf("scan savings for accrual: %w", err)
	}

	logger.Info("savings accrual pass started", logger.Fields{
		"accounts": len(list),
	})

	var summary RunSummary
	for _, savings := range list {
		interest := decimal.NewFromInt(savings.Balance).
			Mul(savings.CurrentRate).
			Shift(-2).
			Floor().
			IntPart()

		newBalance := savings.Balance + interest
		if err := j.savingsRepo.UpdateBalance(ctx, savings.AccountNumber, newBalance); err != nil {
			summary.Errors = append(summary.Errors, fmt.Errorf("accrue interest on savings %s: %w", savings.AccountNumber, err))
			continue
		}

		summary.Processed++
	}

	logger.Info("savings accrual pass finished", logger.Fields{
		"processed": summary.Processed,
		"skipped":   summary.Skipped,
		"errors":    errorStrings(summary.Errors),
	})

	return summary, nil
}

func (j *SavingsInterestJob) runDecayPass(ctx context.Context, yesterday time.Time) (RunSummary, error) {
	list, err := j.savingsRepo.GetActiveNotDepositedOn(ctx, yesterday)
	if err != nil {
		return RunSummary{}, fmt.Errorf("scan savings for decay: %w", err)
	}

	logger.Info("savings decay pass started", logger.Fields{
		"accounts": len(list),
	})

	var summary RunSummary
	for _, savings := range list {
		if savings.CurrentRate.LessThanOrEqual(decimal.Zero) {
			summary.Skipped++
			continue
		}

		decrement, ok := domain.RateDecrementForPeriod(savings.PeriodDays)
		if !ok {
			// Unknown period; creation-time validation should make this
			// unreachable.
			summary.Skipped++
			continue
		}

		newRate := savings.CurrentRate.Sub(decrement)
		if newRate.IsNegative() {
			newRate = decimal.Zero
		}

		if err := j.savingsRepo.UpdateCurrentRate(ctx, savings.AccountNumber, newRate); err != nil {
			summary.Errors = append(summary.Errors, fmt.Errorf("decay rate on savings %s: %w", savings.AccountNumber, err))
			continue
		}

		summary.Processed++
	}

	logger.Info("savings decay pass finished", logger.Fields{
		"processed": summary.Processed,
		"skipped":   summary.Skipped,
		"errors":    errorStrings(summary.Errors),
	})

	return summary, nil
}

// Start fires the job at every midnight until the context is cancelled.
func (j *SavingsInterestJob) Start(ctx context.Context) error {
	for {
		timer := time.NewTimer(time.Until(nextMidnight(time.Now())))

		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			if _, _, err := j.Run(ctx, time.Now()); err != nil {
				logger.Error("savings interest run failed", err, nil)
			}
		}
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nextMidnight(t time.Time) time.Time {
	return dateOnly(t).AddDate(0, 0, 1)
}
