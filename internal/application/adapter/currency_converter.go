// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// CurrencyConverter converts local-currency amounts to USD using the current
// active rate. A missing active rate is not an error: both return values are
// nil and callers persist the payment without USD fields.
type CurrencyConverter interface {
	// ToUSD converts a local-currency amount to USD rounded to 2 decimal places,
	// returning the converted amount and the rate that was applied. Returns
	// (nil, nil, nil) when no active rate exists.
	ToUSD(ctx context.Context, amount decimal.Decimal) (amountUSD, appliedRate *decimal.Decimal, err error)

	// WithRate converts using an explicit historical rate, rounded to 2 decimal
	// places. Used on amount updates to preserve the rate snapshot taken at
	// creation time.
	WithRate(amount, rate decimal.Decimal) decimal.Decimal
}
