package domain

import "time"

// Account is a checking account. Balances are whole currency units;
// LastInterestUpdate is nil until the interest job seeds it.
type Account struct {
	AID                string
	UID                string
	AccountNumber      string
	PasswordHash       string
	Balance            int64
	LastInterestUpdate *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
