// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/university-finance/backend/internal/application/adapter"
)

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	invalidator adapter.CacheInvalidator
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	invalidator adapter.CacheInvalidator,
) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		invalidator: invalidator,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.expenseRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := uc.expenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := uc.invalidator.InvalidateExpenses(ctx); err != nil {
		slog.Warn("expense cache invalidation failed", "error", err)
	}

	return nil
}
