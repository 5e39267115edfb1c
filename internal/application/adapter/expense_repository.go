// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/university-finance/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	Category  *entity.ExpenseCategory
	Vendor    string // Case-insensitive substring match
	StartDate *time.Time
	EndDate   *time.Time
	Search    string // Case-insensitive description match
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter ExpenseFilter, pagination Pagination) (*entity.ExpenseListResult, error)

	// FindByDateRange retrieves all expenses with a date inside [start, end].
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error)

	// FindMostRecent retrieves the most recently dated expense system-wide.
	FindMostRecent(ctx context.Context) (*entity.Expense, error)

	// CountByDateRange counts expenses with a date inside [start, end].
	CountByDateRange(ctx context.Context, start, end time.Time) (int64, error)

	// GetStatistics calculates the total amount and count for the filtered set.
	GetStatistics(ctx context.Context, filter ExpenseFilter) (*entity.ExpenseStatistics, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
