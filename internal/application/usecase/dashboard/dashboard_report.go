// Package dashboard contains the dashboard report use case.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/application/usecase/report"
	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
)

// PeriodTotals holds one month's totals on the dashboard.
type PeriodTotals struct {
	PaymentsTotal decimal.Decimal
	ExpensesTotal decimal.Decimal
	NetIncome     decimal.Decimal
}

// RecentEntry describes the most recent payment or expense system-wide.
type RecentEntry struct {
	ID        string
	Amount    decimal.Decimal
	Label     string // Student name for payments, description for expenses
	Date      time.Time
	DaysSince int
}

// DashboardDay is one merged calendar day in the current month's breakdown.
// Days where only one ledger has activity still appear, with a zero total on
// the other side.
type DashboardDay struct {
	Date          string // ISO date
	PaymentsTotal decimal.Decimal
	ExpensesTotal decimal.Decimal
	NetIncome     decimal.Decimal
}

// ReportOutput represents the dashboard report, always anchored at now.
type ReportOutput struct {
	CurrentMonth      PeriodTotals
	PreviousMonth     PeriodTotals
	Changes           report.ComparisonStats
	MostRecentPayment *RecentEntry
	MostRecentExpense *RecentEntry
	TodayPayments     int64
	TodayExpenses     int64
	DailyBreakdown    []DashboardDay
}

// ReportUseCase computes the dashboard report.
type ReportUseCase struct {
	paymentRepo adapter.PaymentRepository
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewReportUseCase creates a new dashboard ReportUseCase instance.
func NewReportUseCase(
	paymentRepo adapter.PaymentRepository,
	expenseRepo adapter.ExpenseRepository,
) *ReportUseCase {
	return &ReportUseCase{
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Execute computes the dashboard report anchored at the current time.
func (uc *ReportUseCase) Execute(ctx context.Context) (*ReportOutput, error) {
	now := uc.now()

	monthStart, monthEnd := report.MonthWindow(now.Year(), now.Month())
	prevYear, prevMonth := report.PreviousMonth(now.Year(), now.Month())
	prevStart, prevEnd := report.MonthWindow(prevYear, prevMonth)
	todayStart, todayEnd := report.DayWindow(now)

	payments, err := uc.paymentRepo.FindByDateRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrDashboardReportFailed, err)
	}
	expenses, err := uc.expenseRepo.FindByDateRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrDashboardReportFailed, err)
	}
	prevPayments, err := uc.paymentRepo.FindByDateRange(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrDashboardReportFailed, err)
	}
	prevExpenses, err := uc.expenseRepo.FindByDateRange(ctx, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrDashboardReportFailed, err)
	}

	current := periodTotals(payments, expenses)
	previous := periodTotals(prevPayments, prevExpenses)

	todayPayments, err := uc.paymentRepo.CountByDateRange(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrDashboardReportFailed, err)
	}
	todayExpenses, err := uc.expenseRepo.CountByDateRange(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrDashboardReportFailed, err)
	}

	recentPayment, err := uc.mostRecentPayment(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrDashboardReportFailed, err)
	}
	recentExpense, err := uc.mostRecentExpense(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerror.ErrDashboardReportFailed, err)
	}

	return &ReportOutput{
		CurrentMonth:  current,
		PreviousMonth: previous,
		Changes: report.ComparisonStats{
			PaymentsChange:  dashboardPercentChange(current.PaymentsTotal, previous.PaymentsTotal),
			ExpensesChange:  dashboardPercentChange(current.ExpensesTotal, previous.ExpensesTotal),
			NetIncomeChange: dashboardNetChange(current.NetIncome, previous.NetIncome),
		},
		MostRecentPayment: recentPayment,
		MostRecentExpense: recentExpense,
		TodayPayments:     todayPayments,
		TodayExpenses:     todayExpenses,
		DailyBreakdown:    mergeDailyBreakdown(payments, expenses),
	}, nil
}

func (uc *ReportUseCase) mostRecentPayment(ctx context.Context, now time.Time) (*RecentEntry, error) {
	p, err := uc.paymentRepo.FindMostRecent(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &RecentEntry{
		ID:        p.ID.String(),
		Amount:    p.Amount,
		Label:     p.StudentName,
		Date:      p.PaymentDate,
		DaysSince: daysSince(p.PaymentDate, now),
	}, nil
}

func (uc *ReportUseCase) mostRecentExpense(ctx context.Context, now time.Time) (*RecentEntry, error) {
	e, err := uc.expenseRepo.FindMostRecent(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &RecentEntry{
		ID:        e.ID.String(),
		Amount:    e.Amount,
		Label:     e.Description,
		Date:      e.Date,
		DaysSince: daysSince(e.Date, now),
	}, nil
}

// daysSince truncates both instants to calendar days before differencing.
func daysSince(t, now time.Time) int {
	dayStart, _ := report.DayWindow(t)
	nowStart, _ := report.DayWindow(now)
	return int(nowStart.Sub(dayStart).Hours() / 24)
}

func periodTotals(payments []*entity.Payment, expenses []*entity.Expense) PeriodTotals {
	var totals PeriodTotals
	for _, p := range payments {
		totals.PaymentsTotal = totals.PaymentsTotal.Add(p.Amount)
	}
	for _, e := range expenses {
		totals.ExpensesTotal = totals.ExpensesTotal.Add(e.Amount)
	}
	totals.NetIncome = totals.PaymentsTotal.Sub(totals.ExpensesTotal)
	return totals
}

// mergeDailyBreakdown groups both ledgers by calendar day and merges the day
// sets, so a day with only expenses still appears with a zero payment total.
func mergeDailyBreakdown(payments []*entity.Payment, expenses []*entity.Expense) []DashboardDay {
	days := make(map[string]DashboardDay)

	for _, p := range payments {
		key := p.PaymentDate.Format("2006-01-02")
		d := days[key]
		d.Date = key
		d.PaymentsTotal = d.PaymentsTotal.Add(p.Amount)
		days[key] = d
	}
	for _, e := range expenses {
		key := e.Date.Format("2006-01-02")
		d := days[key]
		d.Date = key
		d.ExpensesTotal = d.ExpensesTotal.Add(e.Amount)
		days[key] = d
	}

	out := make([]DashboardDay, 0, len(days))
	for _, d := range days {
		d.NetIncome = d.PaymentsTotal.Sub(d.ExpensesTotal)
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

var hundred = decimal.NewFromInt(100)

// dashboardPercentChange applies the dashboard's zero-baseline convention:
// 0 when both periods are zero, 100 when only the current period is nonzero.
// This deliberately differs from the monthly/yearly reports, which define a
// zero baseline as a 100% change even when the current period is also zero.
func dashboardPercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

func dashboardNetChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(hundred).Round(2)
}
