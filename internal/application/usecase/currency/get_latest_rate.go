// Package currency contains currency rate use cases and conversion logic.
package currency

import (
	"context"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
)

// GetLatestRateUseCase retrieves the single active rate for a currency.
type GetLatestRateUseCase struct {
	rateRepo adapter.CurrencyRateRepository
}

// NewGetLatestRateUseCase creates a new GetLatestRateUseCase instance.
func NewGetLatestRateUseCase(rateRepo adapter.CurrencyRateRepository) *GetLatestRateUseCase {
	return &GetLatestRateUseCase{
		rateRepo: rateRepo,
	}
}

// Execute returns the newest active rate for the currency. Returns the domain
// error ErrNoActiveRate when no rate has been configured yet.
func (uc *GetLatestRateUseCase) Execute(ctx context.Context, currency string) (*entity.CurrencyRate, error) {
	return uc.rateRepo.FindLatestActive(ctx, currency)
}
