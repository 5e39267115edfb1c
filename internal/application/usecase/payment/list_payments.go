// Package payment contains payment-related use cases.
package payment

import (
	"context"
	"time"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
)

// ListPaymentsInput represents the input for listing payments.
type ListPaymentsInput struct {
	FeeType       *entity.FeeType
	PaymentMethod *entity.PaymentMethod
	StudentID     string
	StartDate     *time.Time
	EndDate       *time.Time
	Search        string
	Page          int
	Limit         int
}

// ListPaymentsOutput represents the output of listing payments.
type ListPaymentsOutput struct {
	Payments   []*entity.Payment
	Pagination PaginationOutput
	Statistics entity.PaymentStatistics
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListPaymentsUseCase handles payment listing logic.
type ListPaymentsUseCase struct {
	paymentRepo adapter.PaymentRepository
}

// NewListPaymentsUseCase creates a new ListPaymentsUseCase instance.
func NewListPaymentsUseCase(paymentRepo adapter.PaymentRepository) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute performs the payment listing.
func (uc *ListPaymentsUseCase) Execute(ctx context.Context, input ListPaymentsInput) (*ListPaymentsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := adapter.PaymentFilter{
		FeeType:       input.FeeType,
		PaymentMethod: input.PaymentMethod,
		StudentID:     input.StudentID,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Search:        input.Search,
	}

	result, err := uc.paymentRepo.FindByFilter(ctx, filter, adapter.Pagination{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	stats, err := uc.paymentRepo.GetStatistics(ctx, filter)
	if err != nil {
		// Keep the listing even when the statistics query fails.
		stats = &entity.PaymentStatistics{}
	}

	return &ListPaymentsOutput{
		Payments: result.Payments,
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
		Statistics: *stats,
	}, nil
}
