// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyRate represents one row of the append-only EGP-per-USD rate history.
// At most one row per currency is active at a time; rate updates deactivate the
// previous rows and insert a new active one instead of mutating in place.
type CurrencyRate struct {
	ID        uuid.UUID
	Currency  string          // Base currency code, e.g. "USD"
	Rate      decimal.Decimal // EGP per 1 unit of Currency
	ValidFrom time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCurrencyRate creates a new active CurrencyRate entity valid from now.
func NewCurrencyRate(currency string, rate decimal.Decimal) *CurrencyRate {
	now := time.Now().UTC()

	return &CurrencyRate{
		ID:        uuid.New(),
		Currency:  currency,
		Rate:      rate,
		ValidFrom: now,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
