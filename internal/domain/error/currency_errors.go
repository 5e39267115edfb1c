// Package error defines domain-specific errors for the university finance back office.
package error

import "errors"

// Currency rate domain errors.
var (
	// ErrNoActiveRate is returned when no active rate exists for a currency.
	ErrNoActiveRate = errors.New("no active currency rate")

	// ErrInvalidRateValue is returned when the rate is missing, non-positive, or implausibly large.
	ErrInvalidRateValue = errors.New("invalid currency rate value")
)

// CurrencyErrorCode defines error codes for currency rate errors.
// Format: CUR-XXYYYY where XX is category and YYYY is specific error.
type CurrencyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRateValue CurrencyErrorCode = "CUR-010001"

	// Lookup errors (02XXXX)
	ErrCodeNoActiveRate CurrencyErrorCode = "CUR-020001"
)

// CurrencyError represents a currency rate error with code and message.
type CurrencyError struct {
	Code    CurrencyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CurrencyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CurrencyError) Unwrap() error {
	return e.Err
}

// NewCurrencyError creates a new CurrencyError with the given code and message.
func NewCurrencyError(code CurrencyErrorCode, message string, err error) *CurrencyError {
	return &CurrencyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
