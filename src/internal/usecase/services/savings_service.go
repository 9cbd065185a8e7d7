package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/api-sage/bank-service/src/internal/adapter/http/models"
	"github.com/api-sage/bank-service/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/domain"
	"github.com/api-sage/bank-service/src/internal/logger"
)

const savingsNumberPrefix = '9'

type SavingsService struct {
	savingsRepo repo_interfaces.SavingsRepository
	rng         *rand.Rand
	now         func() time.Time
}

func NewSavingsService(savingsRepo repo_interfaces.SavingsRepository, rng *rand.Rand, now func() time.Time) *SavingsService {
	if rng == nil {
		rng = newDefaultRand()
	}
	if now == nil {
		now = time.Now
	}
	return &SavingsService{
		savingsRepo: savingsRepo,
		rng:         rng,
		now:         now,
	}
}

func (s *SavingsService) CreateSavings(ctx context.Context, req models.CreateSavingsRequest) (commons.Response[models.CreateSavingsResponse], error) {
	logger.Info("savings service create request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("savings service create validation failed", err, nil)
		return commons.ErrorResponse[models.CreateSavingsResponse]("validation failed", err.Error()), err
	}

	rate, ok := domain.RateForPeriod(req.Period)
	if !ok {
		err := fmt.Errorf("period must be one of 30, 180 or 365 days")
		return commons.ErrorResponse[models.CreateSavingsResponse]("validation failed", err.Error()), err
	}

	hashed, err := hashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		logger.Error("savings service create hash password failed", err, nil)
		return commons.ErrorResponse[models.CreateSavingsResponse]("failed to create savings", "failed to hash account password"), err
	}

	created, err := s.createWithFreshNumber(ctx, domain.Savings{
		UID:             strings.TrimSpace(req.OwnerID),
		PasswordHash:    hashed,
		InitialRate:     rate,
		CurrentRate:     rate,
		StartDate:       dateOnly(s.now()),
		Status:          domain.SavingsStatusActive,
		Balance:         0,
		Principal:       0,
		PeriodDays:      req.Period,
		DailyDepositCap: req.DailyDepositCap,
	})
	if err != nil {
		if errors.Is(err, commons.ErrNumberGenerationExhausted) {
			return commons.ErrorResponse[models.CreateSavingsResponse]("failed to create savings", err.Error()), err
		}
		logger.Error("savings service create repository failed", err, logger.Fields{
			"ownerId": req.OwnerID,
		})
		return commons.ErrorResponse[models.CreateSavingsResponse]("failed to create savings", "Unable to create savings right now"), err
	}

	response := models.CreateSavingsResponse{
		AccountNumber:   created.AccountNumber,
		Period:          created.PeriodDays,
		DailyDepositCap: created.DailyDepositCap,
		Rate:            created.InitialRate.String(),
	}

	logger.Info("savings service create success", logger.Fields{
		"sid":       created.SID,
		"accNumber": created.AccountNumber,
		"period":    created.PeriodDays,
	})

	return commons.SuccessResponse("savings account created successfully", response), nil
}

func (s *SavingsService) createWithFreshNumber(ctx context.Context, savings domain.Savings) (domain.Savings, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		savings.AccountNumber = generateAccountNumber(savingsNumberPrefix, s.rng)

		if _, err := s.savingsRepo.GetByAccountNumber(ctx, savings.AccountNumber); err == nil {
			continue
		} else if !errors.Is(err, commons.ErrRecordNotFound) {
			return domain.Savings{}, err
		}

		created, err := s.savingsRepo.Create(ctx, savings)
		if err == nil {
			return created, nil
		}
		if errors.Is(err, commons.ErrDuplicateRecord) || isUniqueViolation(err) {
			continue
		}
		return domain.Savings{}, err
	}

	return domain.Savings{}, commons.ErrNumberGenerationExhausted
}

func (s *SavingsService) GetSavings(ctx context.Context, accountNumber string) (commons.Response[models.SavingsResponse], error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return commons.ErrorResponse[models.SavingsResponse]("validation failed", "accountNumber is required"), fmt.Errorf("accountNumber is required")
	}

	savings, err := s.savingsRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.SavingsResponse]("Savings account not found"), err
		}
		logger.Error("savings service get failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return commons.ErrorResponse[models.SavingsResponse]("failed to get savings", "Unable to fetch savings right now"), err
	}

	return commons.SuccessResponse("savings account fetched successfully", toSavingsResponse(savings)), nil
}

func (s *SavingsService) GetMySavings(ctx context.Context, ownerID string) (commons.Response[[]models.SavingsResponse], error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return commons.ErrorResponse[[]models.SavingsResponse]("validation failed", "ownerId is required"), fmt.Errorf("ownerId is required")
	}

	list, err := s.savingsRepo.GetByUID(ctx, ownerID)
	if err != nil {
		logger.Error("savings service get my savings failed", err, logger.Fields{
			"ownerId": ownerID,
		})
		return commons.ErrorResponse[[]models.SavingsResponse]("failed to get savings", "Unable to fetch savings right now"), err
	}

	responses := make([]models.SavingsResponse, 0, len(list))
	for _, savings := range list {
		responses = append(responses, toSavingsResponse(savings))
	}

	return commons.SuccessResponse("savings accounts fetched successfully", responses), nil
}

func (s *SavingsService) Deposit(ctx context.Context, req models.SavingsDepositRequest) (commons.Response[models.SavingsDepositResponse], error) {
	logger.Info("savings service deposit request", logger.Fields{
		"accNumber": req.AccountNumber,
		"amount":    req.Amount,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.SavingsDepositResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	savings, err := s.savingsRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.SavingsDepositResponse]("Savings account not found"), err
		}
		return commons.ErrorResponse[models.SavingsDepositResponse]("failed to deposit", "Unable to deposit right now"), err
	}

	if savings.Status != domain.SavingsStatusActive {
		return commons.ErrorResponse[models.SavingsDepositResponse](commons.ErrSavingsNotActive.Error()), commons.ErrSavingsNotActive
	}
	if req.Amount <= 0 {
		return commons.ErrorResponse[models.SavingsDepositResponse](commons.ErrInvalidAmount.Error()), commons.ErrInvalidAmount
	}
	if req.Amount > savings.DailyDepositCap {
		return commons.ErrorResponse[models.SavingsDepositResponse](commons.ErrDepositCapExceeded.Error()), commons.ErrDepositCapExceeded
	}

	today := dateOnly(s.now())
	if savings.LastDepositDate != nil && sameDate(*savings.LastDepositDate, today) {
		return commons.ErrorResponse[models.SavingsDepositResponse](commons.ErrAlreadyDepositedToday.Error()), commons.ErrAlreadyDepositedToday
	}

	newBalance := savings.Balance + req.Amount
	newPrincipal := savings.Principal + req.Amount

	// A deposit that meets the daily cap marks the day and earns tomorrow's
	// accrual; a partial deposit leaves the day unmarked, so the account
	// decays instead.
	fullDeposit := req.Amount >= savings.DailyDepositCap
	if fullDeposit {
		err = s.savingsRepo.UpdateBalanceAndPrincipalAndDepositDate(ctx, accountNumber, newBalance, newPrincipal, today)
	} else {
		err = s.savingsRepo.UpdateBalanceAndPrincipal(ctx, accountNumber, newBalance, newPrincipal)
	}
	if err != nil {
		logger.Error("savings service deposit update failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return commons.ErrorResponse[models.SavingsDepositResponse]("failed to deposit", "Unable to deposit right now"), err
	}

	response := models.SavingsDepositResponse{
		AccountNumber: accountNumber,
		Balance:       newBalance,
		Principal:     newPrincipal,
		FullDeposit:   fullDeposit,
	}

	message := "savings deposit successful"
	if !fullDeposit {
		message = "savings deposit below daily cap; interest will not accrue tomorrow"
	}

	return commons.SuccessResponse(message, response), nil
}

func (s *SavingsService) Close(ctx context.Context, req models.CloseSavingsRequest) (commons.Response[models.CloseSavingsResponse], error) {
	logger.Info("savings service close request", logger.Fields{
		"accNumber": req.AccountNumber,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.CloseSavingsResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	savings, err := s.savingsRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.CloseSavingsResponse]("Savings account not found"), err
		}
		return commons.ErrorResponse[models.CloseSavingsResponse]("failed to close savings", "Unable to close savings right now"), err
	}

	if !passwordMatches(savings.PasswordHash, req.Password) {
		return commons.ErrorResponse[models.CloseSavingsResponse](commons.ErrUnauthorized.Error()), commons.ErrUnauthorized
	}
	if savings.Status == domain.SavingsStatusClosed {
		return commons.ErrorResponse[models.CloseSavingsResponse](commons.ErrAlreadyClosed.Error()), commons.ErrAlreadyClosed
	}

	// Early close pays back the principal only; the accrued interest is
	// forfeited. The stored balance is left as-is for the record.
	returnAmount := savings.Principal
	forfeitedInterest := savings.Balance - savings.Principal

	if err := s.savingsRepo.UpdateStatus(ctx, accountNumber, domain.SavingsStatusClosed); err != nil {
		logger.Error("savings service close update failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return commons.ErrorResponse[models.CloseSavingsResponse]("failed to close savings", "Unable to close savings right now"), err
	}

	response := models.CloseSavingsResponse{
		AccountNumber:     accountNumber,
		ReturnAmount:      returnAmount,
		ForfeitedInterest: forfeitedInterest,
	}

	logger.Info("savings service close success", logger.Fields{
		"accNumber":         accountNumber,
		"returnAmount":      returnAmount,
		"forfeitedInterest": forfeitedInterest,
	})

	return commons.SuccessResponse("savings account closed", response), nil
}

func toSavingsResponse(savings domain.Savings) models.SavingsResponse {
	response := models.SavingsResponse{
		SID:             savings.SID,
		OwnerID:         savings.UID,
		AccountNumber:   savings.AccountNumber,
		InitialRate:     savings.InitialRate.String(),
		CurrentRate:     savings.CurrentRate.String(),
		StartDate:       savings.StartDate.Format("2006-01-02"),
		Status:          string(savings.Status),
		Balance:         savings.Balance,
		Principal:       savings.Principal,
		Period:          savings.PeriodDays,
		DailyDepositCap: savings.DailyDepositCap,
	}
	if savings.LastDepositDate != nil {
		response.LastDepositDate = savings.LastDepositDate.Format("2006-01-02")
	}
	return response
}
