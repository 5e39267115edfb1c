// Package error defines domain-specific errors for the university finance back office.
package error

import "errors"

// Payment domain errors.
var (
	// ErrPaymentNotFound is returned when a payment is not found in the system.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrDuplicateReceiptNumber is returned when the receipt number is already in use.
	ErrDuplicateReceiptNumber = errors.New("receipt number already exists")

	// ErrInvalidFeeType is returned when the fee type is not one of the accepted values.
	ErrInvalidFeeType = errors.New("invalid fee type")

	// ErrInvalidPaymentMethod is returned when the payment method is not one of the accepted values.
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// ErrInvalidPaymentAmount is returned when the payment amount is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")

	// ErrInvalidPaymentDate is returned when the payment date is malformed or out of range.
	ErrInvalidPaymentDate = errors.New("invalid payment date")
)

// PaymentErrorCode defines error codes for payment errors.
// Format: PMT-XXYYYY where XX is category and YYYY is specific error.
type PaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFeeType       PaymentErrorCode = "PMT-010001"
	ErrCodeInvalidPaymentMethod PaymentErrorCode = "PMT-010002"
	ErrCodeInvalidPaymentAmount PaymentErrorCode = "PMT-010003"
	ErrCodeInvalidPaymentDate   PaymentErrorCode = "PMT-010004"

	// Conflict errors (02XXXX)
	ErrCodeDuplicateReceiptNumber PaymentErrorCode = "PMT-020001"

	// Lookup errors (03XXXX)
	ErrCodePaymentNotFound PaymentErrorCode = "PMT-030001"
)

// PaymentError represents a payment error with code and message.
type PaymentError struct {
	Code    PaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentError) Unwrap() error {
	return e.Err
}

// NewPaymentError creates a new PaymentError with the given code and message.
func NewPaymentError(code PaymentErrorCode, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
