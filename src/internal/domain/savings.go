package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SavingsStatus string

const (
	SavingsStatusActive  SavingsStatus = "ACTIVE"
	SavingsStatusMatured SavingsStatus = "MATURED"
	SavingsStatusClosed  SavingsStatus = "CLOSED"
)

// Savings is a fixed-term savings account. StartDate and LastDepositDate are
// calendar dates; their time-of-day component is always midnight UTC.
type Savings struct {
	SID             string
	UID             string
	AccountNumber   string
	PasswordHash    string
	InitialRate     decimal.Decimal
	CurrentRate     decimal.Decimal
	StartDate       time.Time
	Status          SavingsStatus
	Balance         int64
	Principal       int64
	PeriodDays      int
	DailyDepositCap int64
	LastDepositDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

const (
	PeriodOneMonth  = 30
	PeriodSixMonths = 180
	PeriodOneYear   = 365
)

var AllowedDailyDepositCaps = []int64{10000, 30000, 50000, 100000}

var periodRates = map[int]decimal.Decimal{
	PeriodOneMonth:  decimal.RequireFromString("1.1"),
	PeriodSixMonths: decimal.RequireFromString("1.3"),
	PeriodOneYear:   decimal.RequireFromString("1.5"),
}

var periodRateDecrements = map[int]decimal.Decimal{
	PeriodOneMonth:  decimal.RequireFromString("0.1"),
	PeriodSixMonths: decimal.RequireFromString("0.05"),
	PeriodOneYear:   decimal.RequireFromString("0.01"),
}

func IsAllowedDailyDepositCap(cap int64) bool {
	for _, allowed := range AllowedDailyDepositCaps {
		if cap == allowed {
			return true
		}
	}
	return false
}

func IsAllowedPeriod(periodDays int) bool {
	_, ok := periodRates[periodDays]
	return ok
}

// RateForPeriod returns the initial interest rate for a savings period.
func RateForPeriod(periodDays int) (decimal.Decimal, bool) {
	rate, ok := periodRates[periodDays]
	return rate, ok
}

// RateDecrementForPeriod returns the daily rate decay applied when no full
// deposit was made the previous day.
func RateDecrementForPeriod(periodDays int) (decimal.Decimal, bool) {
	dec, ok := periodRateDecrements[periodDays]
	return dec, ok
}
