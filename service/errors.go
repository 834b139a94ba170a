package service

import "errors"

var (
	ErrMissingFields         = errors.New("missing required fields")
	ErrInvalidAmount         = errors.New("transfer amount must be greater than zero")
	ErrAmountPrecision       = errors.New("transfer amount has more than two decimal places")
	ErrSourceAccountNotFound = errors.New("from account not found")
	ErrInsufficientFunds     = errors.New("insufficient balance")
	ErrAccountNotFound       = errors.New("account not found")
	ErrDemoUserNotFound      = errors.New("demo user not found")
	ErrNoFaceData            = errors.New("no face data provided")
)
