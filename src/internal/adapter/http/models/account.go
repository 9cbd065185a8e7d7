package models

import (
	"errors"
	"strings"
)

type CreateAccountRequest struct {
	OwnerID  string `json:"ownerId"`
	Password string `json:"password"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.OwnerID) == "" {
		errs = append(errs, "ownerId is required")
	}
	if strings.TrimSpace(r.Password) == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type AccountResponse struct {
	AID                string `json:"aid"`
	OwnerID            string `json:"ownerId"`
	AccountNumber      string `json:"accountNumber"`
	Balance            int64  `json:"balance"`
	LastInterestUpdate string `json:"lastInterestUpdate,omitempty"`
	CreatedAt          string `json:"createdAt"`
	UpdatedAt          string `json:"updatedAt"`
}

type DepositRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        int64  `json:"amount"`
}

func (r DepositRequest) Validate() error {
	if !isTwelveDigitAccountNumber(strings.TrimSpace(r.AccountNumber)) {
		return errors.New("accountNumber must be exactly 12 digits")
	}
	return nil
}

type WithdrawRequest struct {
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
	Amount        int64  `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	var errs []string

	if !isTwelveDigitAccountNumber(strings.TrimSpace(r.AccountNumber)) {
		errs = append(errs, "accountNumber must be exactly 12 digits")
	}
	if strings.TrimSpace(r.Password) == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransferRequest struct {
	FromAccountNumber string `json:"fromAccountNumber"`
	ToAccountNumber   string `json:"toAccountNumber"`
	Password          string `json:"password"`
	Amount            int64  `json:"amount"`
}

func (r TransferRequest) Validate() error {
	var errs []string

	if !isTwelveDigitAccountNumber(strings.TrimSpace(r.FromAccountNumber)) {
		errs = append(errs, "fromAccountNumber must be exactly 12 digits")
	}
	if !isTwelveDigitAccountNumber(strings.TrimSpace(r.ToAccountNumber)) {
		errs = append(errs, "toAccountNumber must be exactly 12 digits")
	}
	if strings.TrimSpace(r.FromAccountNumber) == strings.TrimSpace(r.ToAccountNumber) {
		errs = append(errs, "fromAccountNumber and toAccountNumber cannot be the same")
	}
	if strings.TrimSpace(r.Password) == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type BalanceResponse struct {
	AccountNumber string `json:"accountNumber"`
	Balance       int64  `json:"balance"`
}

type TransferResponse struct {
	FromAccountNumber string `json:"fromAccountNumber"`
	ToAccountNumber   string `json:"toAccountNumber"`
	Amount            int64  `json:"amount"`
}

func isTwelveDigitAccountNumber(accountNumber string) bool {
	if len(accountNumber) != 12 {
		return false
	}

	for _, ch := range accountNumber {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	return true
}
