// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/domain/entity"
)

// PaymentModel represents the payments table in the database.
type PaymentModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	StudentID      string           `gorm:"type:varchar(50);not null;index"`
	StudentName    string           `gorm:"type:varchar(255);not null"`
	FeeType        string           `gorm:"type:varchar(30);not null;index"`
	Amount         decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	Currency       string           `gorm:"type:varchar(3);not null;default:'EGP'"`
	AmountUSD      *decimal.Decimal `gorm:"type:decimal(15,2)"`
	USDAppliedRate *decimal.Decimal `gorm:"type:decimal(15,6);column:usd_applied_rate"`
	ReceiptNumber  string           `gorm:"type:varchar(50);uniqueIndex;not null"`
	PaymentMethod  string           `gorm:"type:varchar(20);not null;index"`
	PaymentDate    time.Time        `gorm:"type:date;not null;index"`
	Notes          string           `gorm:"type:text"`
	CreatedBy      uuid.UUID        `gorm:"type:uuid;not null"`
	CreatedAt      time.Time        `gorm:"not null"`
	UpdatedAt      time.Time        `gorm:"not null"`
}

// TableName returns the table name for the PaymentModel.
func (PaymentModel) TableName() string {
	return "payments"
}

// ToEntity converts a PaymentModel to a domain Payment entity.
func (m *PaymentModel) ToEntity() *entity.Payment {
	return &entity.Payment{
		ID:             m.ID,
		StudentID:      m.StudentID,
		StudentName:    m.StudentName,
		FeeType:        entity.FeeType(m.FeeType),
		Amount:         m.Amount,
		Currency:       m.Currency,
		AmountUSD:      m.AmountUSD,
		USDAppliedRate: m.USDAppliedRate,
		ReceiptNumber:  m.ReceiptNumber,
		PaymentMethod:  entity.PaymentMethod(m.PaymentMethod),
		PaymentDate:    m.PaymentDate,
		Notes:          m.Notes,
		CreatedBy:      m.CreatedBy,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PaymentFromEntity creates a PaymentModel from a domain Payment entity.
func PaymentFromEntity(payment *entity.Payment) *PaymentModel {
	return &PaymentModel{
		ID:             payment.ID,
		StudentID:      payment.StudentID,
		StudentName:    payment.StudentName,
		FeeType:        string(payment.FeeType),
		Amount:         payment.Amount,
		Currency:       payment.Currency,
		AmountUSD:      payment.AmountUSD,
		USDAppliedRate: payment.USDAppliedRate,
		ReceiptNumber:  payment.ReceiptNumber,
		PaymentMethod:  string(payment.PaymentMethod),
		PaymentDate:    payment.PaymentDate,
		Notes:          payment.Notes,
		CreatedBy:      payment.CreatedBy,
		CreatedAt:      payment.CreatedAt,
		UpdatedAt:      payment.UpdatedAt,
	}
}
