// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
)

// CreatePaymentInput represents the input for payment creation.
type CreatePaymentInput struct {
	StudentID     string
	StudentName   string
	FeeType       entity.FeeType
	Amount        decimal.Decimal
	Currency      string
	ReceiptNumber string
	PaymentMethod entity.PaymentMethod
	PaymentDate   time.Time
	Notes         string
	CreatedBy     uuid.UUID
}

// CreatePaymentUseCase handles payment creation logic.
type CreatePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
	converter   adapter.CurrencyConverter
	invalidator adapter.CacheInvalidator
}

// NewCreatePaymentUseCase creates a new CreatePaymentUseCase instance.
func NewCreatePaymentUseCase(
	paymentRepo adapter.PaymentRepository,
	converter adapter.CurrencyConverter,
	invalidator adapter.CacheInvalidator,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		paymentRepo: paymentRepo,
		converter:   converter,
		invalidator: invalidator,
	}
}

// Execute performs the payment creation. The USD amount and applied rate are
// snapshotted from the active rate at creation time; a missing rate degrades
// to null USD fields instead of failing the create.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*entity.Payment, error) {
	if !input.FeeType.IsValid() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidFeeType,
			"fee type is not one of the accepted values",
			domainerror.ErrInvalidFeeType,
		)
	}
	if !input.PaymentMethod.IsValid() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentMethod,
			"payment method is not one of the accepted values",
			domainerror.ErrInvalidPaymentMethod,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be positive",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	exists, err := uc.paymentRepo.ExistsByReceiptNumber(ctx, input.ReceiptNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check receipt number: %w", err)
	}
	if exists {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeDuplicateReceiptNumber,
			"receipt number already exists",
			domainerror.ErrDuplicateReceiptNumber,
		)
	}

	payment := entity.NewPayment(
		input.StudentID,
		input.StudentName,
		input.FeeType,
		input.Amount,
		input.Currency,
		input.ReceiptNumber,
		input.PaymentMethod,
		input.PaymentDate,
		input.Notes,
		input.CreatedBy,
	)

	amountUSD, appliedRate, err := uc.converter.ToUSD(ctx, input.Amount)
	if err != nil {
		// Conversion never blocks the primary transaction.
		slog.Warn("USD conversion failed, storing payment without USD fields", "error", err)
	} else {
		payment.AmountUSD = amountUSD
		payment.USDAppliedRate = appliedRate
	}

	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	if err := uc.invalidator.InvalidatePayments(ctx); err != nil {
		slog.Warn("payment cache invalidation failed", "error", err)
	}

	return payment, nil
}
