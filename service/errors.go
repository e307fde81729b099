package service

import (
	"errors"
	"fmt"
)

// ValidationError reports input rejected before any state was touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var (
	ErrUnderage         = &ValidationError{Field: "age", Reason: fmt.Sprintf("must be at least %d", MinAge)}
	ErrInvalidPIN       = &ValidationError{Field: "pin", Reason: "must be exactly 4 digits"}
	ErrAmountOutOfRange = &ValidationError{Field: "amount", Reason: fmt.Sprintf("must be greater than 0 and at most %s", MaxDeposit)}

	ErrInvalidCredentials = errors.New("invalid account number or pin")
	ErrInsufficientFunds  = errors.New("insufficient funds")
)
