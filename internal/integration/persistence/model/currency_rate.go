// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/domain/entity"
)

// CurrencyRateModel represents the currency_rates table. Rows are never
// updated in place except for the is_active flag; history stays append-only.
type CurrencyRateModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Currency  string          `gorm:"type:varchar(3);not null;index"`
	Rate      decimal.Decimal `gorm:"type:decimal(15,6);not null"`
	ValidFrom time.Time       `gorm:"not null;index"`
	IsActive  bool            `gorm:"not null;default:true;index"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the CurrencyRateModel.
func (CurrencyRateModel) TableName() string {
	return "currency_rates"
}

// ToEntity converts a CurrencyRateModel to a domain CurrencyRate entity.
func (m *CurrencyRateModel) ToEntity() *entity.CurrencyRate {
	return &entity.CurrencyRate{
		ID:        m.ID,
		Currency:  m.Currency,
		Rate:      m.Rate,
		ValidFrom: m.ValidFrom,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CurrencyRateFromEntity creates a CurrencyRateModel from a domain CurrencyRate entity.
func CurrencyRateFromEntity(rate *entity.CurrencyRate) *CurrencyRateModel {
	return &CurrencyRateModel{
		ID:        rate.ID,
		Currency:  rate.Currency,
		Rate:      rate.Rate,
		ValidFrom: rate.ValidFrom,
		IsActive:  rate.IsActive,
		CreatedAt: rate.CreatedAt,
		UpdatedAt: rate.UpdatedAt,
	}
}
