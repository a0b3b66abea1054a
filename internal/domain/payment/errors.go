package payment

import "errors"

var (
	ErrNotFound = errors.New("payment not found")
	// ErrInvalidAmount covers both rejection cases: amount not strictly
	// positive, or amount above the loan's current outstanding balance.
	ErrInvalidAmount = errors.New("invalid payment amount")
)
