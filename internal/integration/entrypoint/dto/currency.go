// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/university-finance/backend/internal/domain/entity"
)

// UpdateRateRequest represents the request body for a currency rate update.
// The pointer keeps "missing" distinguishable from an explicit zero, which the
// usecase rejects anyway.
type UpdateRateRequest struct {
	Rate     *float64 `json:"rate" binding:"required"`
	Currency string   `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// CurrencyRateResponse represents one rate row in API responses.
type CurrencyRateResponse struct {
	ID        string    `json:"id"`
	Currency  string    `json:"currency"`
	Rate      string    `json:"rate"`
	ValidFrom time.Time `json:"valid_from"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CurrencyRateHistoryResponse represents the rate history payload.
type CurrencyRateHistoryResponse struct {
	Currency string                 `json:"currency"`
	Rates    []CurrencyRateResponse `json:"rates"`
}

// ToCurrencyRateResponse converts a CurrencyRate entity to its DTO.
func ToCurrencyRateResponse(rate *entity.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		ID:        rate.ID.String(),
		Currency:  rate.Currency,
		Rate:      rate.Rate.String(),
		ValidFrom: rate.ValidFrom,
		IsActive:  rate.IsActive,
		CreatedAt: rate.CreatedAt,
	}
}

// ToCurrencyRateHistoryResponse converts a rate history slice to its DTO.
func ToCurrencyRateHistoryResponse(currency string, rates []*entity.CurrencyRate) CurrencyRateHistoryResponse {
	out := make([]CurrencyRateResponse, len(rates))
	for i, r := range rates {
		out[i] = ToCurrencyRateResponse(r)
	}
	return CurrencyRateHistoryResponse{Currency: currency, Rates: out}
}
