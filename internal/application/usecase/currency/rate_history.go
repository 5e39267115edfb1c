// Package currency contains currency rate use cases and conversion logic.
package currency

import (
	"context"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
)

// defaultHistoryLimit caps rate history listings when no limit is given.
const defaultHistoryLimit = 50

// RateHistoryUseCase lists the append-only rate history for a currency.
type RateHistoryUseCase struct {
	rateRepo adapter.CurrencyRateRepository
}

// NewRateHistoryUseCase creates a new RateHistoryUseCase instance.
func NewRateHistoryUseCase(rateRepo adapter.CurrencyRateRepository) *RateHistoryUseCase {
	return &RateHistoryUseCase{
		rateRepo: rateRepo,
	}
}

// Execute returns the rate history, newest first.
func (uc *RateHistoryUseCase) Execute(ctx context.Context, currency string, limit int) ([]*entity.CurrencyRate, error) {
	if limit < 1 || limit > defaultHistoryLimit {
		limit = defaultHistoryLimit
	}
	return uc.rateRepo.FindHistory(ctx, currency, limit)
}
