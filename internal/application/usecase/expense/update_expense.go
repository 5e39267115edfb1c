// Package expense contains expense-related use cases.
package expense

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

// UpdateExpenseInput represents the input for expense update. Nil fields are
// left unchanged.
type UpdateExpenseInput struct {
	ID          uuid.UUID
	Amount      *decimal.Decimal
	Description *string
	Category    *entity.ExpenseCategory
	Vendor      *string
	ReceiptURL  *string
	Date        *time.Time
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	invalidator adapter.CacheInvalidator
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	invalidator adapter.CacheInvalidator,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		invalidator: invalidator,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseAmount,
				"expense amount must be positive",
				domainerror.ErrInvalidExpenseAmount,
			)
		}
		expense.Amount = *input.Amount
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseCategory,
				"category is not one of the accepted values",
				domainerror.ErrInvalidExpenseCategory,
			)
		}
		expense.Category = *input.Category
	}
	if input.Vendor != nil {
		expense.Vendor = *input.Vendor
	}
	if input.ReceiptURL != nil {
		expense.ReceiptURL = *input.ReceiptURL
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	if err := uc.invalidator.InvalidateExpenses(ctx); err != nil {
		slog.Warn("expense cache invalidation failed", "error", err)
	}

	return expense, nil
}
