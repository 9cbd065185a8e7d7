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

const checkingNumberPrefix = '0'

type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
	rng         *rand.Rand
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository, rng *rand.Rand) *AccountService {
	if rng == nil {
		rng = newDefaultRand()
	}
	return &AccountService{
		accountRepo: accountRepo,
		rng:         rng,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	hashed, err := hashPassword(strings.TrimSpace(req.Password))
	if err != nil {
		logger.Error("account service create account hash password failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "failed to hash account password"), err
	}

	created, err := s.createWithFreshNumber(ctx, strings.TrimSpace(req.OwnerID), hashed)
	if err != nil {
		if errors.Is(err, commons.ErrNumberGenerationExhausted) {
			return commons.ErrorResponse[models.AccountResponse]("failed to create account", err.Error()), err
		}
		logger.Error("account service create account repository failed", err, logger.Fields{
			"ownerId": req.OwnerID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	logger.Info("account service create account success", logger.Fields{
		"aid":       created.AID,
		"accNumber": created.AccountNumber,
	})

	return commons.SuccessResponse("account created successfully", toAccountResponse(created)), nil
}

func (s *AccountService) createWithFreshNumber(ctx context.Context, uid, passwordHash string) (domain.Account, error) {
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		accountNumber := generateAccountNumber(checkingNumberPrefix, s.rng)

		if _, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber); err == nil {
			continue
		} else if !errors.Is(err, commons.ErrRecordNotFound) {
			return domain.Account{}, err
		}

		created, err := s.accountRepo.Create(ctx, domain.Account{
			UID:           uid,
			AccountNumber: accountNumber,
			PasswordHash:  passwordHash,
			Balance:       0,
		})
		if err == nil {
			return created, nil
		}
		// Lost a race on the unique index; try the next candidate.
		if errors.Is(err, commons.ErrDuplicateRecord) || isUniqueViolation(err) {
			continue
		}
		return domain.Account{}, err
	}

	return domain.Account{}, commons.ErrNumberGenerationExhausted
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.AccountResponse], error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return commons.ErrorResponse[models.AccountResponse]("validation failed", "accountNumber is required"), fmt.Errorf("accountNumber is required")
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Account not found"), err
		}
		logger.Error("account service get account failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to get account", "Unable to fetch account right now"), err
	}

	return commons.SuccessResponse("account fetched successfully", toAccountResponse(account)), nil
}

func (s *AccountService) GetMyAccounts(ctx context.Context, ownerID string) (commons.Response[[]models.AccountResponse], error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return commons.ErrorResponse[[]models.AccountResponse]("validation failed", "ownerId is required"), fmt.Errorf("ownerId is required")
	}

	accounts, err := s.accountRepo.GetByUID(ctx, ownerID)
	if err != nil {
		logger.Error("account service get my accounts failed", err, logger.Fields{
			"ownerId": ownerID,
		})
		return commons.ErrorResponse[[]models.AccountResponse]("failed to get accounts", "Unable to fetch accounts right now"), err
	}

	responses := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, toAccountResponse(account))
	}

	return commons.SuccessResponse("accounts fetched successfully", responses), nil
}

func (s *AccountService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.BalanceResponse], error) {
	logger.Info("account service deposit request", logger.Fields{
		"accNumber": req.AccountNumber,
		"amount":    req.Amount,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BalanceResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.BalanceResponse]("failed to deposit", "Unable to deposit right now"), err
	}

	if req.Amount <= 0 {
		return commons.ErrorResponse[models.BalanceResponse](commons.ErrInvalidAmount.Error()), commons.ErrInvalidAmount
	}

	newBalance := account.Balance + req.Amount
	if err := s.accountRepo.UpdateBalance(ctx, accountNumber, newBalance); err != nil {
		logger.Error("account service deposit update failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return commons.ErrorResponse[models.BalanceResponse]("failed to deposit", "Unable to deposit right now"), err
	}

	response := models.BalanceResponse{
		AccountNumber: accountNumber,
		Balance:       newBalance,
	}

	return commons.SuccessResponse("deposit successful", response), nil
}

func (s *AccountService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.BalanceResponse], error) {
	logger.Info("account service withdraw request", logger.Fields{
		"accNumber": req.AccountNumber,
		"amount":    req.Amount,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.BalanceResponse]("validation failed", err.Error()), err
	}

	accountNumber := strings.TrimSpace(req.AccountNumber)
	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.BalanceResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.BalanceResponse]("failed to withdraw", "Unable to withdraw right now"), err
	}

	if !passwordMatches(account.PasswordHash, req.Password) {
		return commons.ErrorResponse[models.BalanceResponse](commons.ErrUnauthorized.Error()), commons.ErrUnauthorized
	}
	if req.Amount <= 0 {
		return commons.ErrorResponse[models.BalanceResponse](commons.ErrInvalidAmount.Error()), commons.ErrInvalidAmount
	}
	if req.Amount > account.Balance {
		return commons.ErrorResponse[models.BalanceResponse](commons.ErrInsufficientBalance.Error()), commons.ErrInsufficientBalance
	}

	newBalance := account.Balance - req.Amount
	if err := s.accountRepo.UpdateBalance(ctx, accountNumber, newBalance); err != nil {
		logger.Error("account service withdraw update failed", err, logger.Fields{
			"accNumber": accountNumber,
		})
		return commons.ErrorResponse[models.BalanceResponse]("failed to withdraw", "Unable to withdraw right now"), err
	}

	response := models.BalanceResponse{
		AccountNumber: accountNumber,
		Balance:       newBalance,
	}

	return commons.SuccessResponse("withdrawal successful", response), nil
}

func (s *AccountService) Transfer(ctx context.Context, req models.TransferRequest) (commons.Response[models.TransferResponse], error) {
	logger.Info("account service transfer request", logger.Fields{
		"fromAccNumber": req.FromAccountNumber,
		"toAccNumber":   req.ToAccountNumber,
		"amount":        req.Amount,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.TransferResponse]("validation failed", err.Error()), err
	}

	fromAccountNumber := strings.TrimSpace(req.FromAccountNumber)
	toAccountNumber := strings.TrimSpace(req.ToAccountNumber)

	fromAccount, err := s.accountRepo.GetByAccountNumber(ctx, fromAccountNumber)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Source account not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to transfer", "Unable to transfer right now"), err
	}
	if _, err := s.accountRepo.GetByAccountNumber(ctx, toAccountNumber); err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Destination account not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to transfer", "Unable to transfer right now"), err
	}

	if !passwordMatches(fromAccount.PasswordHash, req.Password) {
		return commons.ErrorResponse[models.TransferResponse](commons.ErrUnauthorized.Error()), commons.ErrUnauthorized
	}
	if req.Amount <= 0 {
		return commons.ErrorResponse[models.TransferResponse](commons.ErrInvalidAmount.Error()), commons.ErrInvalidAmount
	}
	if req.Amount > fromAccount.Balance {
		return commons.ErrorResponse[models.TransferResponse](commons.ErrInsufficientBalance.Error()), commons.ErrInsufficientBalance
	}

	if err := s.accountRepo.Transfer(ctx, fromAccountNumber, toAccountNumber, req.Amount); err != nil {
		logger.Error("account service transfer failed", err, logger.Fields{
			"fromAccNumber": fromAccountNumber,
			"toAccNumber":   toAccountNumber,
		})
		if errors.Is(err, commons.ErrInsufficientBalance) {
			return commons.ErrorResponse[models.TransferResponse](commons.ErrInsufficientBalance.Error()), err
		}
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransferResponse]("Destination account not found"), err
		}
		return commons.ErrorResponse[models.TransferResponse]("failed to transfer", "Unable to transfer right now"), err
	}

	response := models.TransferResponse{
		FromAccountNumber: fromAccountNumber,
		ToAccountNumber:   toAccountNumber,
		Amount:            req.Amount,
	}

	logger.Info("account service transfer success", logger.Fields{
		"fromAccNumber": fromAccountNumber,
		"toAccNumber":   toAccountNumber,
		"amount":        req.Amount,
	})

	return commons.SuccessResponse("transfer successful", response), nil
}

func toAccountResponse(account domain.Account) models.AccountResponse {
	response := models.AccountResponse{
		AID:           account.AID,
		OwnerID:       account.UID,
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     account.UpdatedAt.Format(time.RFC3339),
	}
	if account.LastInterestUpdate != nil {
		response.LastInterestUpdate = account.LastInterestUpdate.Format(time.RFC3339)
	}
	return response
}
