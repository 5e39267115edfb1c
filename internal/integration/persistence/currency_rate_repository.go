// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
	"github.com/university-finance/backend/internal/integration/persistence/model"
)

// currencyRateRepository implements the adapter.CurrencyRateRepository interface.
type currencyRateRepository struct {
	db *gorm.DB
}

// NewCurrencyRateRepository creates a new currency rate repository instance.
func NewCurrencyRateRepository(db *gorm.DB) adapter.CurrencyRateRepository {
	return &currencyRateRepository{
		db: db,
	}
}

// FindLatestActive retrieves the newest active rate for the currency.
func (r *currencyRateRepository) FindLatestActive(ctx context.Context, currency string) (*entity.CurrencyRate, error) {
	var rateModel model.CurrencyRateModel
	result := r.db.WithContext(ctx).
		Where("currency = ? AND is_active = ?", currency, true).
		Order("valid_from DESC").
		First(&rateModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNoActiveRate
		}
		return nil, result.Error
	}
	return rateModel.ToEntity(), nil
}

// UpdateRate deactivates every active row for the currency and inserts the
// new active row. Both steps run in one transaction so readers never observe
// zero or two active rows.
func (r *currencyRateRepository) UpdateRate(ctx context.Context, currency string, rate decimal.Decimal) (*entity.CurrencyRate, error) {
	newRate := entity.NewCurrencyRate(currency, rate)
	rateModel := model.CurrencyRateFromEntity(newRate)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.CurrencyRateModel{}).
			Where("currency = ? AND is_active = ?", currency, true).
			Updates(map[string]any{
				"is_active":  false,
				"updated_at": time.Now().UTC(),
			}).Error; err != nil {
			return err
		}
		return tx.Create(rateModel).Error
	})
	if err != nil {
		return nil, err
	}

	return newRate, nil
}

// FindHistory retrieves the rate history for the currency, newest first.
func (r *currencyRateRepository) FindHistory(ctx context.Context, currency string, limit int) ([]*entity.CurrencyRate, error) {
	var rateModels []model.CurrencyRateModel
	result := r.db.WithContext(ctx).
		Where("currency = ?", currency).
		Order("valid_from DESC").
		Limit(limit).
		Find(&rateModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rates := make([]*entity.CurrencyRate, len(rateModels))
	for i, rm := range rateModels {
		rates[i] = rm.ToEntity()
	}
	return rates, nil
}
