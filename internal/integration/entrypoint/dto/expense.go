// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/university-finance/backend/internal/application/usecase/expense"
	"github.com/university-finance/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Category    string  `json:"category" binding:"required"`
	Vendor      string  `json:"vendor,omitempty" binding:"omitempty,max=255"`
	ReceiptURL  string  `json:"receipt_url,omitempty" binding:"omitempty,max=500"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Category    *string  `json:"category,omitempty"`
	Vendor      *string  `json:"vendor,omitempty" binding:"omitempty,max=255"`
	ReceiptURL  *string  `json:"receipt_url,omitempty" binding:"omitempty,max=500"`
	Date        *string  `json:"date,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Amount      string    `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Vendor      string    `json:"vendor,omitempty"`
	ReceiptURL  string    `json:"receipt_url,omitempty"`
	Date        string    `json:"date"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseStatisticsResponse represents aggregated totals for an expense list.
type ExpenseStatisticsResponse struct {
	TotalAmount string `json:"total_amount"`
	Count       int64  `json:"count"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse         `json:"expenses"`
	Pagination PaginationResponse        `json:"pagination"`
	Statistics ExpenseStatisticsResponse `json:"statistics"`
}

// ToExpenseResponse converts an Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Amount:      e.Amount.String(),
		Description: e.Description,
		Category:    string(e.Category),
		Vendor:      e.Vendor,
		ReceiptURL:  e.ReceiptURL,
		Date:        e.Date.Format("2006-01-02"),
		CreatedBy:   e.CreatedBy.String(),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a ListExpensesOutput to an ExpenseListResponse DTO.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}

	return ExpenseListResponse{
		Expenses: expenses,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
		Statistics: ExpenseStatisticsResponse{
			TotalAmount: output.Statistics.TotalAmount.String(),
			Count:       output.Statistics.Count,
		},
	}
}
