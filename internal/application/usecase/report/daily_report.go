// Package report contains financial report aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/application/adapter"
	domainerror "github.com/university-finance/backend/internal/domain/error"
)

// dailyTopVendors is the vendor ranking size for daily and monthly reports.
const dailyTopVendors = 5

// DailyReportInput represents the input for a daily report. The date is
// validated upstream (format, not in the future, at most 5 years back); the
// aggregator assumes a valid date.
type DailyReportInput struct {
	Date time.Time
}

// DailyReportOutput represents one day's financial report.
type DailyReportOutput struct {
	Date      time.Time
	Payments  PaymentStats
	Expenses  ExpenseStats
	NetIncome decimal.Decimal
}

// DailyReportUseCase computes the financial report for a single day.
type DailyReportUseCase struct {
	paymentRepo adapter.PaymentRepository
	expenseRepo adapter.ExpenseRepository
}

// NewDailyReportUseCase creates a new DailyReportUseCase instance.
func NewDailyReportUseCase(
	paymentRepo adapter.PaymentRepository,
	expenseRepo adapter.ExpenseRepository,
) *DailyReportUseCase {
	return &DailyReportUseCase{
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute computes the daily report.
func (uc *DailyReportUseCase) Execute(ctx context.Context, input DailyReportInput) (*DailyReportOutput, error) {
	start, end := DayWindow(input.Date)

	payments, err := uc.paymentRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrDailyReportFailed, err)
	}

	expenses, err := uc.expenseRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrDailyReportFailed, err)
	}

	paymentStats := AggregatePayments(payments)
	expenseStats := AggregateExpenses(expenses, dailyTopVendors)

	return &DailyReportOutput{
		Date:      start,
		Payments:  paymentStats,
		Expenses:  expenseStats,
		NetIncome: paymentStats.Total.Sub(expenseStats.Total),
	}, nil
}
