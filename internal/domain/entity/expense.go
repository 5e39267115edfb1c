// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents one of the fixed operating-expense categories.
type ExpenseCategory string

const (
	ExpenseCategorySalaries       ExpenseCategory = "SALARIES"
	ExpenseCategoryUtilities      ExpenseCategory = "UTILITIES"
	ExpenseCategoryMaintenance    ExpenseCategory = "MAINTENANCE"
	ExpenseCategorySupplies       ExpenseCategory = "SUPPLIES"
	ExpenseCategoryEquipment      ExpenseCategory = "EQUIPMENT"
	ExpenseCategoryTransportation ExpenseCategory = "TRANSPORTATION"
	ExpenseCategoryFood           ExpenseCategory = "FOOD"
	ExpenseCategoryCleaning       ExpenseCategory = "CLEANING"
	ExpenseCategorySecurity       ExpenseCategory = "SECURITY"
	ExpenseCategoryCommunications ExpenseCategory = "COMMUNICATIONS"
	ExpenseCategoryTraining       ExpenseCategory = "TRAINING"
	ExpenseCategoryOther          ExpenseCategory = "OTHER"
)

// ValidExpenseCategories lists the twelve accepted expense categories.
var ValidExpenseCategories = []ExpenseCategory{
	ExpenseCategorySalaries,
	ExpenseCategoryUtilities,
	ExpenseCategoryMaintenance,
	ExpenseCategorySupplies,
	ExpenseCategoryEquipment,
	ExpenseCategoryTransportation,
	ExpenseCategoryFood,
	ExpenseCategoryCleaning,
	ExpenseCategorySecurity,
	ExpenseCategoryCommunications,
	ExpenseCategoryTraining,
	ExpenseCategoryOther,
}

// IsValid reports whether the category is one of the accepted values.
func (c ExpenseCategory) IsValid() bool {
	for _, v := range ValidExpenseCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Expense represents an operating expense paid by the university.
type Expense struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	Category    ExpenseCategory
	Vendor      string // Optional
	ReceiptURL  string // Optional
	Date        time.Time
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	amount decimal.Decimal,
	description string,
	category ExpenseCategory,
	vendor string,
	receiptURL string,
	date time.Time,
	createdBy uuid.UUID,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Amount:      amount,
		Description: description,
		Category:    category,
		Vendor:      vendor,
		ReceiptURL:  receiptURL,
		Date:        date,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses   []*Expense
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ExpenseStatistics represents aggregated statistics for an expense query.
type ExpenseStatistics struct {
	TotalAmount decimal.Decimal
	Count       int64
}
