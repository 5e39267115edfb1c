// Package payment contains payment-related use cases.
package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
)

// GetPaymentUseCase retrieves a single payment by ID.
type GetPaymentUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewGetPaymentUseCase creates a new GetPaymentUseCase instance.
func NewGetPaymentUseCase(paymentRepo adapter.PaymentRepository) *GetPaymentUseCase {
	return &GetPaymentUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute retrieves the payment.
func (uc *GetPaymentUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return uc.paymentRepo.FindByID(ctx, id)
}
