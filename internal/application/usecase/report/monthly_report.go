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

// MonthlyReportInput represents the input for a monthly report.
type MonthlyReportInput struct {
	Year  int
	Month time.Month
}

// MonthlyReportOutput represents one calendar month's financial report with a
// daily breakdown and a comparison against the preceding month.
type MonthlyReportOutput struct {
	Year       int
	Month      time.Month
	Payments   PaymentStats
	Expenses   ExpenseStats
	NetIncome  decimal.Decimal
	// Daily breakdowns keyed by ISO date, flattened and sorted.
	PaymentsDaily []DailyBucket
	ExpensesDaily []DailyBucket
	Comparison    ComparisonStats
}

// MonthlyReportUseCase computes the financial report for a calendar month.
type MonthlyReportUseCase struct {
	paymentRepo adapter.PaymentRepository
	expenseRepo adapter.ExpenseRepository
}

// NewMonthlyReportUseCase creates a new MonthlyReportUseCase instance.
func NewMonthlyReportUseCase(
	paymentRepo adapter.PaymentRepository,
	expenseRepo adapter.ExpenseRepository,
) *MonthlyReportUseCase {
	return &MonthlyReportUseCase{
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute computes the monthly report.
func (uc *MonthlyReportUseCase) Execute(ctx context.Context, input MonthlyReportInput) (*MonthlyReportOutput, error) {
	if input.Month < time.January || input.Month > time.December {
		return nil, domainerror.ErrInvalidReportPeriod
	}

	start, end := MonthWindow(input.Year, input.Month)

	payments, err := uc.paymentRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrMonthlyReportFailed, err)
	}
	expenses, err := uc.expenseRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrMonthlyReportFailed, err)
	}

	prevYear, prevMonth := PreviousMonth(input.Year, input.Month)
	prevStart, prevEnd := MonthWindow(prevYear, prevMonth)

	prevPayments, err := uc.paymentRepo.FindByDateRange(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrMonthlyReportFailed, err)
	}
	prevExpenses, err := uc.expenseRepo.FindByDateRange(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrMonthlyReportFailed, err)
	}

	paymentStats := AggregatePayments(payments)
	expenseStats := AggregateExpenses(expenses, dailyTopVendors)
	netIncome := paymentStats.Total.Sub(expenseStats.Total)

	prevPaymentStats := AggregatePayments(prevPayments)
	prevExpenseStats := AggregateExpenses(prevExpenses, dailyTopVendors)
	prevNetIncome := prevPaymentStats.Total.Sub(prevExpenseStats.Total)

	return &MonthlyReportOutput{
		Year:          input.Year,
		Month:         input.Month,
		Payments:      paymentStats,
		Expenses:      expenseStats,
		NetIncome:     netIncome,
		PaymentsDaily: PaymentDailyBreakdown(payments),
		ExpensesDaily: ExpenseDailyBreakdown(expenses),
		Comparison: ComparisonStats{
			PaymentsChange:  PercentChange(paymentStats.Total, prevPaymentStats.Total),
			ExpensesChange:  PercentChange(expenseStats.Total, prevExpenseStats.Total),
			NetIncomeChange: NetIncomeChange(netIncome, prevNetIncome),
		},
	}, nil
}
