// Package report contains financial report aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
)

// yearlyTopVendors is the widened vendor ranking size for yearly reports.
const yearlyTopVendors = 15

// YearlyReportInput represents the input for a yearly report.
type YearlyReportInput struct {
	Year int
}

// YearlyReportOutput represents one calendar year's financial report with a
// 12-element monthly breakdown and a year-over-year comparison.
type YearlyReportOutput struct {
	Year             int
	Payments         PaymentStats
	Expenses         ExpenseStats
	NetIncome        decimal.Decimal
	MonthlyBreakdown []MonthBucket // Always 12 entries, January through December
	Comparison       ComparisonStats
}

// YearlyReportUseCase computes the financial report for a calendar year.
type YearlyReportUseCase struct {
	paymentRepo adapter.PaymentRepository
	expenseRepo adapter.ExpenseRepository
}

// NewYearlyReportUseCase creates a new YearlyReportUseCase instance.
func NewYearlyReportUseCase(
	paymentRepo adapter.PaymentRepository,
	expenseRepo adapter.ExpenseRepository,
) *YearlyReportUseCase {
	return &YearlyReportUseCase{
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute computes the yearly report.
func (uc *YearlyReportUseCase) Execute(ctx context.Context, input YearlyReportInput) (*YearlyReportOutput, error) {
	start, end := YearWindow(input.Year)

	payments, err := uc.paymentRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrYearlyReportFailed, err)
	}
	expenses, err := uc.expenseRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrYearlyReportFailed, err)
	}

	prevStart, prevEnd := YearWindow(input.Year - 1)
	prevPayments, err := uc.paymentRepo.FindByDateRange(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrYearlyReportFailed, err)
	}
	prevExpenses, err := uc.expenseRepo.FindByDateRange(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrYearlyReportFailed, err)
	}

	paymentStats := AggregatePayments(payments)
	expenseStats := AggregateExpenses(expenses, yearlyTopVendors)
	netIncome := paymentStats.Total.Sub(expenseStats.Total)

	prevPaymentStats := AggregatePayments(prevPayments)
	prevExpenseStats := AggregateExpenses(prevExpenses, yearlyTopVendors)
	prevNetIncome := prevPaymentStats.Total.Sub(prevExpenseStats.Total)

	return &YearlyReportOutput{
		Year:             input.Year,
		Payments:         paymentStats,
		Expenses:         expenseStats,
		NetIncome:        netIncome,
		MonthlyBreakdown: monthlyBreakdown(payments, expenses),
		Comparison: ComparisonStats{
			PaymentsChange:  PercentChange(paymentStats.Total, prevPaymentStats.Total),
			ExpensesChange:  PercentChange(expenseStats.Total, prevExpenseStats.Total),
			NetIncomeChange: NetIncomeChange(netIncome, prevNetIncome),
		},
	}, nil
}

// monthlyBreakdown accumulates the year's rows into one bucket per calendar
// month. Months without any activity still appear with zero totals.
func monthlyBreakdown(payments []*entity.Payment, expenses []*entity.Expense) []MonthBucket {
	buckets := make([]MonthBucket, 12)
	for i := range buckets {
		buckets[i].Month = i + 1
	}

	for _, p := range payments {
		m := int(p.PaymentDate.Month()) - 1
		buckets[m].PaymentsTotal = buckets[m].PaymentsTotal.Add(p.Amount)
		buckets[m].TransactionCount++
	}
	for _, e := range expenses {
		m := int(e.Date.Month()) - 1
		buckets[m].ExpensesTotal = buckets[m].ExpensesTotal.Add(e.Amount)
		buckets[m].TransactionCount++
	}

	for i := range buckets {
		buckets[i].NetIncome = buckets[i].PaymentsTotal.Sub(buckets[i].ExpensesTotal)
	}
	return buckets
}
