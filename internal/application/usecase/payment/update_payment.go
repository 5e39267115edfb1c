// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
)

// UpdatePaymentInput represents the input for payment update. Nil fields are
// left unchanged.
type UpdatePaymentInput struct {
	ID            uuid.UUID
	StudentID     *string
	StudentName   *string
	FeeType       *entity.FeeType
	Amount        *decimal.Decimal
	PaymentMethod *entity.PaymentMethod
	PaymentDate   *time.Time
	Notes         *string
}

// UpdatePaymentUseCase handles payment update logic.
type UpdatePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
	converter   adapter.CurrencyConverter
	invalidator adapter.CacheInvalidator
}

// NewUpdatePaymentUseCase creates a new UpdatePaymentUseCase instance.
func NewUpdatePaymentUseCase(
	paymentRepo adapter.PaymentRepository,
	converter adapter.CurrencyConverter,
	invalidator adapter.CacheInvalidator,
) *UpdatePaymentUseCase {
	return &UpdatePaymentUseCase{
		paymentRepo: paymentRepo,
		converter:   converter,
		invalidator: invalidator,
	}
}

// Execute performs the payment update. When the amount changes, the USD value
// is recomputed with the rate snapshot stored at creation time, never the
// current rate, so historical valuations stay intact. Only when no snapshot
// exists is the current active rate consulted.
func (uc *UpdatePaymentUseCase) Execute(ctx context.Context, input UpdatePaymentInput) (*entity.Payment, error) {
	payment, err := uc.paymentRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.StudentID != nil {
		payment.StudentID = *input.StudentID
	}
	if input.StudentName != nil {
		payment.StudentName = *input.StudentName
	}
	if input.FeeType != nil {
		if !input.FeeType.IsValid() {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodeInvalidFeeType,
				"fee type is not one of the accepted values",
				domainerror.ErrInvalidFeeType,
			)
		}
		payment.FeeType = *input.FeeType
	}
	if input.PaymentMethod != nil {
		if !input.PaymentMethod.IsValid() {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodeInvalidPaymentMethod,
				"payment method is not one of the accepted values",
				domainerror.ErrInvalidPaymentMethod,
			)
		}
		payment.PaymentMethod = *input.PaymentMethod
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = *input.PaymentDate
	}
	if input.Notes != nil {
		payment.Notes = *input.Notes
	}

	if input.Amount != nil && !input.Amount.Equal(payment.Amount) {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewPaymentError(
				domainerror.ErrCodeInvalidPaymentAmount,
				"payment amount must be positive",
				domainerror.ErrInvalidPaymentAmount,
			)
		}
		payment.Amount = *input.Amount

		if payment.USDAppliedRate != nil {
			converted := uc.converter.WithRate(payment.Amount, *payment.USDAppliedRate)
			payment.AmountUSD = &converted
		} else {
			amountUSD, appliedRate, convErr := uc.converter.ToUSD(ctx, payment.Amount)
			if convErr != nil {
				slog.Warn("USD conversion failed on update, clearing USD fields", "error", convErr)
			} else {
				payment.AmountUSD = amountUSD
				payment.USDAppliedRate = appliedRate
			}
		}
	}

	payment.UpdatedAt = time.Now().UTC()

	if err := uc.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	if err := uc.invalidator.InvalidatePayments(ctx); err != nil {
		slog.Warn("payment cache invalidation failed", "error", err)
	}

	return payment, nil
}
