// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/university-finance/backend/internal/application/usecase/payment"
	"github.com/university-finance/backend/internal/domain/entity"
)

// CreatePaymentRequest represents the request body for payment creation.
type CreatePaymentRequest struct {
	StudentID     string  `json:"student_id" binding:"required,min=1,max=50"`
	StudentName   string  `json:"student_name" binding:"required,min=1,max=255"`
	FeeType       string  `json:"fee_type" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Currency      string  `json:"currency,omitempty" binding:"omitempty,len=3"`
	ReceiptNumber string  `json:"receipt_number" binding:"required,min=1,max=50"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	PaymentDate   string  `json:"payment_date" binding:"required"`
	Notes         string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdatePaymentRequest represents the request body for payment update.
type UpdatePaymentRequest struct {
	StudentID     *string  `json:"student_id,omitempty" binding:"omitempty,min=1,max=50"`
	StudentName   *string  `json:"student_name,omitempty" binding:"omitempty,min=1,max=255"`
	FeeType       *string  `json:"fee_type,omitempty"`
	Amount        *float64 `json:"amount,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
	PaymentDate   *string  `json:"payment_date,omitempty"`
	Notes         *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// PaymentResponse represents a single payment in API responses.
type PaymentResponse struct {
	ID             string    `json:"id"`
	StudentID      string    `json:"student_id"`
	StudentName    string    `json:"student_name"`
	FeeType        string    `json:"fee_type"`
	Amount         string    `json:"amount"`
	Currency       string    `json:"currency"`
	AmountUSD      *string   `json:"amount_usd"`
	USDAppliedRate *string   `json:"usd_applied_rate"`
	ReceiptNumber  string    `json:"receipt_number"`
	PaymentMethod  string    `json:"payment_method"`
	PaymentDate    string    `json:"payment_date"`
	Notes          string    `json:"notes"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PaginationResponse represents pagination information in API responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PaymentStatisticsResponse represents aggregated totals for a payment list.
type PaymentStatisticsResponse struct {
	TotalAmount string `json:"total_amount"`
	Count       int64  `json:"count"`
}

// PaymentListResponse represents the response for listing payments.
type PaymentListResponse struct {
	Payments   []PaymentResponse         `json:"payments"`
	Pagination PaginationResponse        `json:"pagination"`
	Statistics PaymentStatisticsResponse `json:"statistics"`
}

// ToPaymentResponse converts a Payment entity to a PaymentResponse DTO.
func ToPaymentResponse(p *entity.Payment) PaymentResponse {
	response := PaymentResponse{
		ID:            p.ID.String(),
		StudentID:     p.StudentID,
		StudentName:   p.StudentName,
		FeeType:       string(p.FeeType),
		Amount:        p.Amount.String(),
		Currency:      p.Currency,
		ReceiptNumber: p.ReceiptNumber,
		PaymentMethod: string(p.PaymentMethod),
		PaymentDate:   p.PaymentDate.Format("2006-01-02"),
		Notes:         p.Notes,
		CreatedBy:     p.CreatedBy.String(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.AmountUSD != nil {
		v := p.AmountUSD.String()
		response.AmountUSD = &v
	}
	if p.USDAppliedRate != nil {
		v := p.USDAppliedRate.String()
		response.USDAppliedRate = &v
	}
	return response
}

// ToPaymentListResponse converts a ListPaymentsOutput to a PaymentListResponse DTO.
func ToPaymentListResponse(output *payment.ListPaymentsOutput) PaymentListResponse {
	payments := make([]PaymentResponse, len(output.Payments))
	for i, p := range output.Payments {
		payments[i] = ToPaymentResponse(p)
	}

	return PaymentListResponse{
		Payments: payments,
		Pagination: PaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
		Statistics: PaymentStatisticsResponse{
			TotalAmount: output.Statistics.TotalAmount.String(),
			Count:       output.Statistics.Count,
		},
	}
}
