// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FeeType represents the kind of fee a payment settles.
type FeeType string

const (
	FeeTypeNewYear         FeeType = "NEW_YEAR"
	FeeTypeSupplementary   FeeType = "SUPPLEMENTARY"
	FeeTypeTraining        FeeType = "TRAINING"
	FeeTypeStudentServices FeeType = "STUDENT_SERVICES"
	FeeTypeExam            FeeType = "EXAM"
	FeeTypeOther           FeeType = "OTHER"
)

// ValidFeeTypes lists every accepted fee type.
var ValidFeeTypes = []FeeType{
	FeeTypeNewYear,
	FeeTypeSupplementary,
	FeeTypeTraining,
	FeeTypeStudentServices,
	FeeTypeExam,
	FeeTypeOther,
}

// IsValid reports whether the fee type is one of the accepted values.
func (f FeeType) IsValid() bool {
	for _, v := range ValidFeeTypes {
		if f == v {
			return true
		}
	}
	return false
}

// PaymentMethod represents how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodCheque   PaymentMethod = "CHEQUE"
)

// ValidPaymentMethods lists every accepted payment method.
var ValidPaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodTransfer,
	PaymentMethodCheque,
}

// IsValid reports whether the payment method is one of the accepted values.
func (m PaymentMethod) IsValid() bool {
	for _, v := range ValidPaymentMethods {
		if m == v {
			return true
		}
	}
	return false
}

// Payment represents a student fee payment in the back office.
//
// AmountUSD and USDAppliedRate are a snapshot of the active currency rate at
// creation time. Amount updates reuse the stored rate instead of reconverting,
// so historical valuations stay verifiable.
type Payment struct {
	ID             uuid.UUID
	StudentID      string
	StudentName    string
	FeeType        FeeType
	Amount         decimal.Decimal // Local currency (EGP)
	Currency       string
	AmountUSD      *decimal.Decimal
	USDAppliedRate *decimal.Decimal
	ReceiptNumber  string // Globally unique
	PaymentMethod  PaymentMethod
	PaymentDate    time.Time
	Notes          string
	CreatedBy      uuid.UUID
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPayment creates a new Payment entity.
func NewPayment(
	studentID string,
	studentName string,
	feeType FeeType,
	amount decimal.Decimal,
	currency string,
	receiptNumber string,
	paymentMethod PaymentMethod,
	paymentDate time.Time,
	notes string,
	createdBy uuid.UUID,
) *Payment {
	now := time.Now().UTC()

	return &Payment{
		ID:            uuid.New(),
		StudentID:     studentID,
		StudentName:   studentName,
		FeeType:       feeType,
		Amount:        amount,
		Currency:      currency,
		ReceiptNumber: receiptNumber,
		PaymentMethod: paymentMethod,
		PaymentDate:   paymentDate,
		Notes:         notes,
		CreatedBy:     createdBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// PaymentListResult represents the result of listing payments.
type PaymentListResult struct {
	Payments   []*Payment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PaymentStatistics represents aggregated statistics for a payment query.
type PaymentStatistics struct {
	TotalAmount decimal.Decimal
	Count       int64
}
