package services_test

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/api-sage/bank-service/src/internal/adapter/http/models"
	"github.com/api-sage/bank-service/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-service/src/internal/commons"
	"github.com/api-sage/bank-service/src/internal/usecase/services"
)

func newAccountFixture(t *testing.T) (*services.AccountService, *memory.AccountRepository) {
	t.Helper()

	repo := memory.NewAccountRepository()
	svc := services.NewAccountService(repo, rand.New(rand.NewSource(42)))
	return svc, repo
}

func createTestAccount(t *testing.T, svc *services.AccountService, ownerID, password string) models.AccountResponse {
	t.Helper()

	resp, err := svc.CreateAccount(context.Background(), models.CreateAccountRequest{
		OwnerID:  ownerID,
		Password: password,
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	return *resp.Data
}

func TestAccountServiceCreateAccountValidationError(t *testing.T) {
	svc, _ := newAccountFixture(t)

	_, err := svc.CreateAccount(context.Background(), models.CreateAccountRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty create account request")
	}
}

func TestAccountServiceCreateAccountNumberFormat(t *testing.T) {
	svc, _ := newAccountFixture(t)

	account := createTestAccount(t, svc, "owner-1", "acct-pw")

	if len(account.AccountNumber) != 12 {
		t.Fatalf("expected 12-digit account number, got %q", account.AccountNumber)
	}
	if !strings.HasPrefix(account.AccountNumber, "0") {
		t.Fatalf("expected checking account number to start with 0, got %q", account.AccountNumber)
	}
	if account.Balance != 0 {
		t.Fatalf("expected zero opening balance, got %d", account.Balance)
	}
}

func TestAccountServiceDepositMissingAccountBeforeAmountCheck(t *testing.T) {
	svc, _ := newAccountFixture(t)

	// The account lookup runs before the amount check, so a bad amount on a
	// missing account still reports not-found.
	_, err := svc.Deposit(context.Background(), models.DepositRequest{
		AccountNumber: "012345678901",
		Amount:        -5,
	})
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAccountServiceDepositInvalidAmount(t *testing.T) {
	svc, _ := newAccountFixture(t)
	account := createTestAccount(t, svc, "owner-1", "acct-pw")

	_, err := svc.Deposit(context.Background(), models.DepositRequest{
		AccountNumber: account.AccountNumber,
		Amount:        0,
	})
	if !errors.Is(err, commons.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestAccountServiceDepositAndWithdraw(t *testing.T) {
	svc, _ := newAccountFixture(t)
	account := createTestAccount(t, svc, "owner-1", "acct-pw")

	depositResp, err := svc.Deposit(context.Background(), models.DepositRequest{
		AccountNumber: account.AccountNumber,
		Amount:        1000,
	})
	if err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if depositResp.Data.Balance != 1000 {
		t.Fatalf("expected balance 1000 after deposit, got %d", depositResp.Data.Balance)
	}

	withdrawResp, err := svc.Withdraw(context.Background(), models.WithdrawRequest{
		AccountNumber: account.AccountNumber,
		Password:      "acct-pw",
		Amount:        400,
	})
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}
	if withdrawResp.Data.Balance != 600 {
		t.Fatalf("expected balance 600 after withdrawal, got %d", withdrawResp.Data.Balance)
	}
}

func TestAccountServiceWithdrawErrorPrecedence(t *testing.T) {
	svc, _ := newAccountFixture(t)
	account := createTestAccount(t, svc, "owner-1", "acct-pw")

	if _, err := svc.Deposit(context.Background(), models.DepositRequest{
		AccountNumber: account.AccountNumber,
		Amount:        500,
	}); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}

	// Wrong password wins over a bad amount.
	_, err := svc.Withdraw(context.Background(), models.WithdrawRequest{
		AccountNumber: account.AccountNumber,
		Password:      "wrong-pw",
		Amount:        -1,
	})
	if !errors.Is(err, commons.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	_, err = svc.Withdraw(context.Background(), models.WithdrawRequest{
		AccountNumber: account.AccountNumber,
		Password:      "acct-pw",
		Amount:        -1,
	})
	if !errors.Is(err, commons.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	_, err = svc.Withdraw(context.Background(), models.WithdrawRequest{
		AccountNumber: account.AccountNumber,
		Password:      "acct-pw",
		Amount:        501,
	})
	if !errors.Is(err, commons.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestAccountServiceTransfer(t *testing.T) {
	svc, repo := newAccountFixture(t)
	from := createTestAccount(t, svc, "owner-1", "from-pw")
	to := createTestAccount(t, svc, "owner-2", "to-pw")

	if _, err := svc.Deposit(context.Background(), models.DepositRequest{
		AccountNumber: from.AccountNumber,
		Amount:        1000,
	}); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}

	resp, err := svc.Transfer(context.Background(), models.TransferRequest{
		FromAccountNumber: from.AccountNumber,
		ToAccountNumber:   to.AccountNumber,
		Password:          "from-pw",
		Amount:            300,
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if resp.Data.Amount != 300 {
		t.Fatalf("expected transfer amount 300, got %d", resp.Data.Amount)
	}

	fromAfter, err := repo.GetByAccountNumber(context.Background(), from.AccountNumber)
	if err != nil {
		t.Fatalf("fetch source account: %v", err)
	}
	toAfter, err := repo.GetByAccountNumber(context.Background(), to.AccountNumber)
	if err != nil {
		t.Fatalf("fetch destination account: %v", err)
	}
	if fromAfter.Balance != 700 || toAfter.Balance != 300 {
		t.Fatalf("expected balances 700/300, got %d/%d", fromAfter.Balance, toAfter.Balance)
	}
}

func TestAccountServiceTransferSameAccountRejected(t *testing.T) {
	svc, _ := newAccountFixture(t)
	account := createTestAccount(t, svc, "owner-1", "acct-pw")

	resp, err := svc.Transfer(context.Background(), models.TransferRequest{
		FromAccountNumber: account.AccountNumber,
		ToAccountNumber:   account.AccountNumber,
		Password:          "acct-pw",
		Amount:            100,
	})
	if err == nil {
		t.Fatal("expected same-account transfer to fail validation")
	}
	if resp.Message != "validation failed" {
		t.Fatalf("expected validation failed message, got %q", resp.Message)
	}
}

func TestAccountServiceTransferInsufficientBalance(t *testing.T) {
	svc, _ := newAccountFixture(t)
	from := createTestAccount(t, svc, "owner-1", "from-pw")
	to := createTestAccount(t, svc, "owner-2", "to-pw")

	_, err := svc.Transfer(context.Background(), models.TransferRequest{
		FromAccountNumber: from.AccountNumber,
		ToAccountNumber:   to.AccountNumber,
		Password:          "from-pw",
		Amount:            1,
	})
	if !errors.Is(err, commons.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestAccountServiceTransferMissingDestination(t *testing.T) {
	svc, _ := newAccountFixture(t)
	from := createTestAccount(t, svc, "owner-1", "from-pw")

	if _, err := svc.Deposit(context.Background(), models.DepositRequest{
		AccountNumber: from.AccountNumber,
		Amount:        500,
	}); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}

	resp, err := svc.Transfer(context.Background(), models.TransferRequest{
		FromAccountNumber: from.AccountNumber,
		ToAccountNumber:   "098765432109",
		Password:          "from-pw",
		Amount:            100,
	})
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if resp.Message != "Destination account not found" {
		t.Fatalf("expected destination missing message, got %q", resp.Message)
	}
}

func TestAccountRepositoryTransferLeavesSourceUntouchedOnFailure(t *testing.T) {
	svc, repo := newAccountFixture(t)
	from := createTestAccount(t, svc, "owner-1", "from-pw")

	if _, err := svc.Deposit(context.Background(), models.DepositRequest{
		AccountNumber: from.AccountNumber,
		Amount:        500,
	}); err != nil {
		t.Fatalf("seed deposit: %v", err)
	}

	err := repo.Transfer(context.Background(), from.AccountNumber, "098765432109", 100)
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	after, err := repo.GetByAccountNumber(context.Background(), from.AccountNumber)
	if err != nil {
		t.Fatalf("fetch source account: %v", err)
	}
	if after.Balance != 500 {
		t.Fatalf("expected debit to be rolled back, got balance %d", after.Balance)
	}
}
