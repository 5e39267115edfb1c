// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/domain/entity"
)

// CurrencyRateRepository defines the interface for currency rate persistence operations.
// Rate history is append-only: UpdateRate must deactivate every active row for the
// currency and insert the new active row inside a single transaction.
type CurrencyRateRepository interface {
	// FindLatestActive retrieves the newest active rate for the currency,
	// ordered by valid_from descending. Returns domain error ErrNoActiveRate
	// when no active row exists.
	FindLatestActive(ctx context.Context, currency string) (*entity.CurrencyRate, error)

	// UpdateRate atomically deactivates all active rows for the currency and
	// inserts a new active row valid from now, returning the inserted row.
	UpdateRate(ctx context.Context, currency string, rate decimal.Decimal) (*entity.CurrencyRate, error)

	// FindHistory retrieves the full rate history for the currency, newest first.
	FindHistory(ctx context.Context, currency string, limit int) ([]*entity.CurrencyRate, error)
}
