package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/bank-service/src/internal/domain"
)

type CreateSavingsRequest struct {
	OwnerID         string `json:"ownerId"`
	Password        string `json:"password"`
	Period          int    `json:"period"`
	DailyDepositCap int64  `json:"dailyDepositCap"`
}

func (r CreateSavingsRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.OwnerID) == "" {
		errs = append(errs, "ownerId is required")
	}
	if strings.TrimSpace(r.Password) == "" {
		errs = append(errs, "password is required")
	}
	if !domain.IsAllowedPeriod(r.Period) {
		errs = append(errs, "period must be one of 30, 180 or 365 days")
	}
	if !domain.IsAllowedDailyDepositCap(r.DailyDepositCap) {
		errs = append(errs, fmt.Sprintf("dailyDepositCap must be one of %v", domain.AllowedDailyDepositCaps))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CreateSavingsResponse struct {
	AccountNumber   string `json:"accountNumber"`
	Period          int    `json:"period"`
	DailyDepositCap int64  `json:"dailyDepositCap"`
	Rate            string `json:"rate"`
}

type SavingsResponse struct {
	SID             string `json:"sid"`
	OwnerID         string `json:"ownerId"`
	AccountNumber   string `json:"accountNumber"`
	InitialRate     string `json:"initialRate"`
	CurrentRate     string `json:"currentRate"`
	StartDate       string `json:"startDate"`
	Status          string `json:"status"`
	Balance         int64  `json:"balance"`
	Principal       int64  `json:"principal"`
	Period          int    `json:"period"`
	DailyDepositCap int64  `json:"dailyDepositCap"`
	LastDepositDate string `json:"lastDepositDate,omitempty"`
}

type SavingsDepositRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        int64  `json:"amount"`
}

func (r SavingsDepositRequest) Validate() error {
	if !isTwelveDigitAccountNumber(strings.TrimSpace(r.AccountNumber)) {
		return errors.New("accountNumber must be exactly 12 digits")
	}
	return nil
}

type SavingsDepositResponse struct {
	AccountNumber string `json:"accountNumber"`
	Balance       int64  `json:"balance"`
	Principal     int64  `json:"principal"`
	FullDeposit   bool   `json:"fullDeposit"`
}

type CloseSavingsRequest struct {
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
}

func (r CloseSavingsRequest) Validate() error {
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

type CloseSavingsResponse struct {
	AccountNumber     string `json:"accountNumber"`
	ReturnAmount      int64  `json:"returnAmount"`
	ForfeitedInterest int64  `json:"forfeitedInterest"`
}
