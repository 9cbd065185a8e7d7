package commons

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrDuplicateRecord = errors.New("Record already exists")
var ErrUnauthorized = errors.New("Password does not match")
var ErrInvalidAmount = errors.New("Amount must be greater than zero")
var ErrInsufficientBalance = errors.New("Insufficient balance")
var ErrSavingsNotActive = errors.New("Savings account is not active")
var ErrDepositCapExceeded = errors.New("Amount exceeds the daily deposit cap")
var ErrAlreadyDepositedToday = errors.New("Savings account already received a deposit today")
var ErrAlreadyClosed = errors.New("Savings account is already closed")
var ErrNumberGenerationExhausted = errors.New("Account number generation attempts exhausted")
