// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/university-finance/backend/internal/application/adapter"
)

// DeletePaymentUseCase handles payment deletion logic.
type DeletePaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
	invalidator adapter.CacheInvalidator
}

// NewDeletePaymentUseCase creates a new DeletePaymentUseCase instance.
func NewDeletePaymentUseCase(
	paymentRepo adapter.PaymentRepository,
	invalidator adapter.CacheInvalidator,
) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		paymentRepo: paymentRepo,
		invalidator: invalidator,
	}
}

// Execute performs the payment deletion.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.paymentRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := uc.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := uc.invalidator.InvalidatePayments(ctx); err != nil {
		slog.Warn("payment cache invalidation failed", "error", err)
	}

	return nil
}
