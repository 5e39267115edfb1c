// Package currency contains currency rate use cases and conversion logic.
package currency

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/application/adapter"
	domainerror "github.com/university-finance/backend/internal/domain/error"
)

// usdDecimalPlaces is the rounding precision for converted USD amounts.
const usdDecimalPlaces = 2

// Converter implements adapter.CurrencyConverter against the rate repository.
type Converter struct {
	rateRepo adapter.CurrencyRateRepository
	currency string
}

// NewConverter creates a converter for the given base currency code.
func NewConverter(rateRepo adapter.CurrencyRateRepository, currency string) *Converter {
	return &Converter{
		rateRepo: rateRepo,
		currency: currency,
	}
}

// ToUSD converts a local amount using the current active rate. A missing
// active rate yields (nil, nil, nil): the caller persists without USD fields
// rather than failing the whole transaction.
func (c *Converter) ToUSD(ctx context.Context, amount decimal.Decimal) (*decimal.Decimal, *decimal.Decimal, error) {
	rate, err := c.rateRepo.FindLatestActive(ctx, c.currency)
	if err != nil {
		if errors.Is(err, domainerror.ErrNoActiveRate) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	converted := c.WithRate(amount, rate.Rate)
	applied := rate.Rate
	return &converted, &applied, nil
}

// WithRate converts using an explicit rate snapshot, rounded to 2 decimals.
func (c *Converter) WithRate(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Div(rate).Round(usdDecimalPlaces)
}
