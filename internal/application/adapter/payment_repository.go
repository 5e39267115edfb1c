// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/university-finance/backend/internal/domain/entity"
)

// PaymentFilter defines filter options for listing payments.
type PaymentFilter struct {
	FeeType       *entity.FeeType
	PaymentMethod *entity.PaymentMethod
	StudentID     string
	StartDate     *time.Time
	EndDate       *time.Time
	Search        string // Case-insensitive student name / receipt number match
}

// Pagination defines pagination options for list queries.
type Pagination struct {
	Page  int
	Limit int
}

// PaymentRepository defines the interface for payment persistence operations.
type PaymentRepository interface {
	// Create creates a new payment in the database.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves a payment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByFilter retrieves payments based on filter criteria with pagination.
	FindByFilter(ctx context.Context, filter PaymentFilter, pagination Pagination) (*entity.PaymentListResult, error)

	// FindByDateRange retrieves all payments with a payment date inside [start, end].
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Payment, error)

	// FindMostRecent retrieves the most recently dated payment system-wide.
	FindMostRecent(ctx context.Context) (*entity.Payment, error)

	// CountByDateRange counts payments with a payment date inside [start, end].
	CountByDateRange(ctx context.Context, start, end time.Time) (int64, error)

	// GetStatistics calculates the total amount and count for the filtered set.
	GetStatistics(ctx context.Context, filter PaymentFilter) (*entity.PaymentStatistics, error)

	// ExistsByReceiptNumber checks whether a payment with the receipt number exists.
	ExistsByReceiptNumber(ctx context.Context, receiptNumber string) (bool, error)

	// Update updates an existing payment in the database.
	Update(ctx context.Context, payment *entity.Payment) error

	// Delete removes a payment from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
