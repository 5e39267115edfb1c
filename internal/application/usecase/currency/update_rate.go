// Package currency contains currency rate use cases and conversion logic.
package currency

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
)

// maxPlausibleRate is the upper sanity bound for an EGP-per-USD rate.
var maxPlausibleRate = decimal.NewFromInt(1000)

// UpdateRateInput represents the input for a currency rate update.
type UpdateRateInput struct {
	Currency string
	Rate     decimal.Decimal
}

// UpdateRateUseCase appends a new active rate row and deactivates the old ones.
type UpdateRateUseCase struct {
	rateRepo adapter.CurrencyRateRepository
}

// NewUpdateRateUseCase creates a new UpdateRateUseCase instance.
func NewUpdateRateUseCase(rateRepo adapter.CurrencyRateRepository) *UpdateRateUseCase {
	return &UpdateRateUseCase{
		rateRepo: rateRepo,
	}
}

// Execute validates the rate and swaps it in atomically. Rate history is
// append-only so existing payments keep a verifiable historical rate snapshot.
func (uc *UpdateRateUseCase) Execute(ctx context.Context, input UpdateRateInput) (*entity.CurrencyRate, error) {
	if err := ValidateRate(input.Rate); err != nil {
		return nil, err
	}
	return uc.rateRepo.UpdateRate(ctx, input.Currency, input.Rate)
}

// ValidateRate rejects non-positive or implausibly large (> 1000) rate values.
func ValidateRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return domainerror.NewCurrencyError(
			domainerror.ErrCodeInvalidRateValue,
			"currency rate must be a positive number",
			domainerror.ErrInvalidRateValue,
		)
	}
	if rate.GreaterThan(maxPlausibleRate) {
		return domainerror.NewCurrencyError(
			domainerror.ErrCodeInvalidRateValue,
			"currency rate is implausibly large",
			domainerror.ErrInvalidRateValue,
		)
	}
	return nil
}
