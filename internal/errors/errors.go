package errors

import (
	"errors"
	"fmt"
)

// ErrDivisionByZero is returned by raw Money division with a zero divisor.
// The zero-budget percentage rule is a separate, documented policy and does
// not go through this error.
var ErrDivisionByZero = errors.New("division by zero")

// ErrValidation represents a request-level validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}

// ErrInvalidAmount represents an unparseable or malformed monetary input.
// Surfaced to the caller before anything is persisted.
type ErrInvalidAmount struct {
	Input string
}

func (e *ErrInvalidAmount) Error() string {
	return fmt.Sprintf("invalid amount: %q", e.Input)
}

// ErrMissingExchangeRate is returned when a conversion to the base currency
// is attempted and no rate is resolvable for the currency/month pair.
type ErrMissingExchangeRate struct {
	Currency string
	Month    string
}

func (e *ErrMissingExchangeRate) Error() string {
	return fmt.Sprintf("no exchange rate for %s in %s: set a rate for this currency and month", e.Currency, e.Month)
}

// ErrAlreadySold is returned on an attempted double-sale of a position.
type ErrAlreadySold struct {
	PositionID string
}

func (e *ErrAlreadySold) Error() string {
	return fmt.Sprintf("investment %s is already sold", e.PositionID)
}

// ErrNotFound represents a missing record
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}
