// Package report contains financial report aggregation use cases.
package report

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/application/adapter"
	domainerror "github.com/university-finance/backend/internal/domain/error"
)

// WindowSummary holds one window's totals with no comparison logic.
type WindowSummary struct {
	Start         time.Time
	End           time.Time
	PaymentsTotal decimal.Decimal
	ExpensesTotal decimal.Decimal
	NetIncome     decimal.Decimal
	PaymentCount  int64
	ExpenseCount  int64
}

// FinancialSummaryOutput is a triple snapshot: this month, this quarter, this year.
type FinancialSummaryOutput struct {
	Month   WindowSummary
	Quarter WindowSummary
	Year    WindowSummary
}

// FinancialSummaryUseCase computes the month/quarter/year snapshot anchored at now.
type FinancialSummaryUseCase struct {
	paymentRepo adapter.PaymentRepository
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewFinancialSummaryUseCase creates a new FinancialSummaryUseCase instance.
func NewFinancialSummaryUseCase(
	paymentRepo adapter.PaymentRepository,
	expenseRepo adapter.ExpenseRepository,
) *FinancialSummaryUseCase {
	return &FinancialSummaryUseCase{
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Execute computes the three windows concurrently.
func (uc *FinancialSummaryUseCase) Execute(ctx context.Context) (*FinancialSummaryOutput, error) {
	now := uc.now()

	monthStart, monthEnd := MonthWindow(now.Year(), now.Month())
	quarterStart, quarterEnd := QuarterWindow(now)
	yearStart, yearEnd := YearWindow(now.Year())

	windows := []struct {
		start, end time.Time
	}{
		{monthStart, monthEnd},
		{quarterStart, quarterEnd},
		{yearStart, yearEnd},
	}

	summaries := make([]WindowSummary, len(windows))
	errs := make([]error, len(windows))

	var wg sync.WaitGroup
	for i, w := range windows {
		wg.Add(1)
		go func(i int, start, end time.Time) {
			defer wg.Done()
			summary, err := uc.summarizeWindow(ctx, start, end)
			if err != nil {
				errs[i] = err
				return
			}
			summaries[i] = *summary
		}(i, w.start, w.end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domainerror.ErrFinancialSummaryFailed, err)
		}
	}

	return &FinancialSummaryOutput{
		Month:   summaries[0],
		Quarter: summaries[1],
		Year:    summaries[2],
	}, nil
}

func (uc *FinancialSummaryUseCase) summarizeWindow(ctx context.Context, start, end time.Time) (*WindowSummary, error) {
	payments, err := uc.paymentRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.expenseRepo.FindByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &WindowSummary{Start: start, End: end}
	for _, p := range payments {
		summary.PaymentsTotal = summary.PaymentsTotal.Add(p.Amount)
		summary.PaymentCount++
	}
	for _, e := range expenses {
		summary.ExpensesTotal = summary.ExpensesTotal.Add(e.Amount)
		summary.ExpenseCount++
	}
	summary.NetIncome = summary.PaymentsTotal.Sub(summary.ExpensesTotal)

	return summary, nil
}
