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

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Amount      decimal.Decimal
	Description string
	Category    entity.ExpenseCategory
	Vendor      string
	ReceiptURL  string
	Date        time.Time
	CreatedBy   uuid.UUID
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	invalidator adapter.CacheInvalidator
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	invalidator adapter.CacheInvalidator,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		invalidator: invalidator,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*entity.Expense, error) {
	if !input.Category.IsValid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseCategory,
			"category is not one of the accepted values",
			domainerror.ErrInvalidExpenseCategory,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	expense := entity.NewExpense(
		input.Amount,
		input.Description,
		input.Category,
		input.Vendor,
		input.ReceiptURL,
		input.Date,
		input.CreatedBy,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	if err := uc.invalidator.InvalidateExpenses(ctx); err != nil {
		slog.Warn("expense cache invalidation failed", "error", err)
	}

	return expense, nil
}
