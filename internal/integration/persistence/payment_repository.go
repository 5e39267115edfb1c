// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
	"github.com/university-finance/backend/internal/integration/persistence/model"
)

// paymentRepository implements the adapter.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) adapter.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create creates a new payment in the database.
func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Create(paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrDuplicateReceiptNumber
		}
		return result.Error
	}
	return nil
}

// FindByID retrieves a payment by its ID.
func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentModel model.PaymentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindByFilter retrieves payments based on filter criteria with pagination.
func (r *paymentRepository) FindByFilter(ctx context.Context, filter adapter.PaymentFilter, pagination adapter.Pagination) (*entity.PaymentListResult, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.PaymentModel{}), filter)

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.Limit
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	var paymentModels []model.PaymentModel
	result := query.
		Order("payment_date DESC, created_at DESC").
		Offset(offset).
		Limit(pagination.Limit).
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}

	return &entity.PaymentListResult{
		Payments:   payments,
		Total:      total,
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: totalPages,
	}, nil
}

// FindByDateRange retrieves all payments with a payment date inside [start, end].
func (r *paymentRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
	var paymentModels []model.PaymentModel
	result := r.db.WithContext(ctx).
		Where("payment_date >= ? AND payment_date <= ?", start, end).
		Order("payment_date ASC, created_at ASC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.Payment, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// FindMostRecent retrieves the most recently dated payment system-wide.
func (r *paymentRepository) FindMostRecent(ctx context.Context) (*entity.Payment, error) {
	var paymentModel model.PaymentModel
	result := r.db.WithContext(ctx).
		Order("payment_date DESC, created_at DESC").
		First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// CountByDateRange counts payments with a payment date inside [start, end].
func (r *paymentRepository) CountByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("payment_date >= ? AND payment_date <= ?", start, end).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// GetStatistics calculates the total amount and count for the filtered set.
func (r *paymentRepository) GetStatistics(ctx context.Context, filter adapter.PaymentFilter) (*entity.PaymentStatistics, error) {
	var row struct {
		TotalAmount decimal.Decimal `gorm:"column:total_amount"`
		Count       int64           `gorm:"column:count"`
	}

	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.PaymentModel{}), filter)
	result := query.
		Select("COALESCE(SUM(amount), 0) as total_amount, COUNT(*) as count").
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.PaymentStatistics{
		TotalAmount: row.TotalAmount,
		Count:       row.Count,
	}, nil
}

// ExistsByReceiptNumber checks whether a payment with the receipt number exists.
func (r *paymentRepository) ExistsByReceiptNumber(ctx context.Context, receiptNumber string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("receipt_number = ?", receiptNumber).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing payment in the database.
func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	paymentModel := model.PaymentFromEntity(payment)
	result := r.db.WithContext(ctx).Save(paymentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a payment from the database.
func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PaymentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPaymentNotFound
	}
	return nil
}

func (r *paymentRepository) applyFilter(query *gorm.DB, filter adapter.PaymentFilter) *gorm.DB {
	if filter.FeeType != nil {
		query = query.Where("fee_type = ?", string(*filter.FeeType))
	}
	if filter.PaymentMethod != nil {
		query = query.Where("payment_method = ?", string(*filter.PaymentMethod))
	}
	if filter.StudentID != "" {
		query = query.Where("student_id = ?", filter.StudentID)
	}
	if filter.StartDate != nil {
		query = query.Where("payment_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("payment_date <= ?", filter.EndDate)
	}
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(student_name) LIKE ? OR LOWER(receipt_number) LIKE ?", searchPattern, searchPattern)
	}
	return query
}
