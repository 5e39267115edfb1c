// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/university-finance/backend/internal/application/usecase/dashboard"
)

// PeriodTotalsResponse represents one month's totals on the dashboard.
type PeriodTotalsResponse struct {
	PaymentsTotal string `json:"payments_total"`
	ExpensesTotal string `json:"expenses_total"`
	NetIncome     string `json:"net_income"`
}

// RecentEntryResponse represents the most recent payment or expense.
type RecentEntryResponse struct {
	ID        string `json:"id"`
	Amount    string `json:"amount"`
	Label     string `json:"label"`
	Date      string `json:"date"`
	DaysSince int    `json:"days_since"`
}

// DashboardDayResponse represents one merged day in the current month's breakdown.
type DashboardDayResponse struct {
	Date          string `json:"date"`
	PaymentsTotal string `json:"payments_total"`
	ExpensesTotal string `json:"expenses_total"`
	NetIncome     string `json:"net_income"`
}

// DashboardResponse represents the dashboard report payload.
type DashboardResponse struct {
	CurrentMonth      PeriodTotalsResponse   `json:"current_month"`
	PreviousMonth     PeriodTotalsResponse   `json:"previous_month"`
	Changes           ComparisonResponse     `json:"changes"`
	MostRecentPayment *RecentEntryResponse   `json:"most_recent_payment"`
	MostRecentExpense *RecentEntryResponse   `json:"most_recent_expense"`
	TodayPayments     int64                  `json:"today_payments"`
	TodayExpenses     int64                  `json:"today_expenses"`
	DailyBreakdown    []DashboardDayResponse `json:"daily_breakdown"`
}

func toPeriodTotalsResponse(t dashboard.PeriodTotals) PeriodTotalsResponse {
	return PeriodTotalsResponse{
		PaymentsTotal: t.PaymentsTotal.String(),
		ExpensesTotal: t.ExpensesTotal.String(),
		NetIncome:     t.NetIncome.String(),
	}
}

func toRecentEntryResponse(e *dashboard.RecentEntry) *RecentEntryResponse {
	if e == nil {
		return nil
	}
	return &RecentEntryResponse{
		ID:        e.ID,
		Amount:    e.Amount.String(),
		Label:     e.Label,
		Date:      e.Date.Format("2006-01-02"),
		DaysSince: e.DaysSince,
	}
}

// ToDashboardResponse converts a dashboard ReportOutput to its DTO.
func ToDashboardResponse(output *dashboard.ReportOutput) DashboardResponse {
	breakdown := make([]DashboardDayResponse, len(output.DailyBreakdown))
	for i, day := range output.DailyBreakdown {
		breakdown[i] = DashboardDayResponse{
			Date:          day.Date,
			PaymentsTotal: day.PaymentsTotal.String(),
			ExpensesTotal: day.ExpensesTotal.String(),
			NetIncome:     day.NetIncome.String(),
		}
	}
	return DashboardResponse{
		CurrentMonth:      toPeriodTotalsResponse(output.CurrentMonth),
		PreviousMonth:     toPeriodTotalsResponse(output.PreviousMonth),
		Changes:           toComparisonResponse(output.Changes),
		MostRecentPayment: toRecentEntryResponse(output.MostRecentPayment),
		MostRecentExpense: toRecentEntryResponse(output.MostRecentExpense),
		TodayPayments:     output.TodayPayments,
		TodayExpenses:     output.TodayExpenses,
		DailyBreakdown:    breakdown,
	}
}
