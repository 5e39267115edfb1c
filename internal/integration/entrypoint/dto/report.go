// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/university-finance/backend/internal/application/usecase/report"
)

// GroupStatResponse represents one group-by bucket in a report.
type GroupStatResponse struct {
	Count int64  `json:"count"`
	Total string `json:"total"`
}

// VendorStatResponse represents one ranked vendor in a report.
type VendorStatResponse struct {
	Vendor string `json:"vendor"`
	Count  int64  `json:"count"`
	Total  string `json:"total"`
}

// PaymentStatsResponse represents the payment side of a report window.
type PaymentStatsResponse struct {
	Total           string                       `json:"total"`
	Count           int64                        `json:"count"`
	ByFeeType       map[string]GroupStatResponse `json:"by_fee_type"`
	ByPaymentMethod map[string]GroupStatResponse `json:"by_payment_method"`
}

// ExpenseStatsResponse represents the expense side of a report window.
type ExpenseStatsResponse struct {
	Total      string                       `json:"total"`
	Count      int64                        `json:"count"`
	ByCategory map[string]GroupStatResponse `json:"by_category"`
	TopVendors []VendorStatResponse         `json:"top_vendors"`
}

// DailyBucketResponse represents one day's totals in a breakdown.
type DailyBucketResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
	Count int64  `json:"count"`
}

// MonthBucketResponse represents one month's totals in a yearly breakdown.
type MonthBucketResponse struct {
	Month            int    `json:"month"`
	PaymentsTotal    string `json:"payments_total"`
	ExpensesTotal    string `json:"expenses_total"`
	NetIncome        string `json:"net_income"`
	TransactionCount int64  `json:"transaction_count"`
}

// ComparisonResponse represents period-over-period percentage changes.
type ComparisonResponse struct {
	PaymentsChange  string `json:"payments_change"`
	ExpensesChange  string `json:"expenses_change"`
	NetIncomeChange string `json:"net_income_change"`
}

// DailyReportResponse represents a daily report payload.
type DailyReportResponse struct {
	Date      string               `json:"date"`
	Payments  PaymentStatsResponse `json:"payments"`
	Expenses  ExpenseStatsResponse `json:"expenses"`
	NetIncome string               `json:"net_income"`
}

// MonthlyReportResponse represents a monthly report payload.
type MonthlyReportResponse struct {
	Year          int                   `json:"year"`
	Month         int                   `json:"month"`
	Payments      PaymentStatsResponse  `json:"payments"`
	Expenses      ExpenseStatsResponse  `json:"expenses"`
	NetIncome     string                `json:"net_income"`
	PaymentsDaily []DailyBucketResponse `json:"payments_daily"`
	ExpensesDaily []DailyBucketResponse `json:"expenses_daily"`
	Comparison    ComparisonResponse    `json:"comparison"`
}

// YearlyReportResponse represents a yearly report payload.
type YearlyReportResponse struct {
	Year             int                   `json:"year"`
	Payments         PaymentStatsResponse  `json:"payments"`
	Expenses         ExpenseStatsResponse  `json:"expenses"`
	NetIncome        string                `json:"net_income"`
	MonthlyBreakdown []MonthBucketResponse `json:"monthly_breakdown"`
	Comparison       ComparisonResponse    `json:"comparison"`
}

// WindowSummaryResponse represents one window inside the financial summary.
type WindowSummaryResponse struct {
	Start         string `json:"start"`
	End           string `json:"end"`
	PaymentsTotal string `json:"payments_total"`
	ExpensesTotal string `json:"expenses_total"`
	NetIncome     string `json:"net_income"`
	PaymentCount  int64  `json:"payment_count"`
	ExpenseCount  int64  `json:"expense_count"`
}

// FinancialSummaryResponse represents the month/quarter/year snapshot.
type FinancialSummaryResponse struct {
	Month   WindowSummaryResponse `json:"month"`
	Quarter WindowSummaryResponse `json:"quarter"`
	Year    WindowSummaryResponse `json:"year"`
}

func toPaymentStatsResponse(stats report.PaymentStats) PaymentStatsResponse {
	byFeeType := make(map[string]GroupStatResponse, len(stats.ByFeeType))
	for feeType, stat := range stats.ByFeeType {
		byFeeType[string(feeType)] = GroupStatResponse{Count: stat.Count, Total: stat.Total.String()}
	}
	byMethod := make(map[string]GroupStatResponse, len(stats.ByPaymentMethod))
	for method, stat := range stats.ByPaymentMethod {
		byMethod[string(method)] = GroupStatResponse{Count: stat.Count, Total: stat.Total.String()}
	}
	return PaymentStatsResponse{
		Total:           stats.Total.String(),
		Count:           stats.Count,
		ByFeeType:       byFeeType,
		ByPaymentMethod: byMethod,
	}
}

func toExpenseStatsResponse(stats report.ExpenseStats) ExpenseStatsResponse {
	byCategory := make(map[string]GroupStatResponse, len(stats.ByCategory))
	for category, stat := range stats.ByCategory {
		byCategory[string(category)] = GroupStatResponse{Count: stat.Count, Total: stat.Total.String()}
	}
	topVendors := make([]VendorStatResponse, len(stats.TopVendors))
	for i, vendor := range stats.TopVendors {
		topVendors[i] = VendorStatResponse{
			Vendor: vendor.Vendor,
			Count:  vendor.Count,
			Total:  vendor.Total.String(),
		}
	}
	return ExpenseStatsResponse{
		Total:      stats.Total.String(),
		Count:      stats.Count,
		ByCategory: byCategory,
		TopVendors: topVendors,
	}
}

func toDailyBucketsResponse(buckets []report.DailyBucket) []DailyBucketResponse {
	out := make([]DailyBucketResponse, len(buckets))
	for i, b := range buckets {
		out[i] = DailyBucketResponse{Date: b.Date, Total: b.Total.String(), Count: b.Count}
	}
	return out
}

func toComparisonResponse(c report.ComparisonStats) ComparisonResponse {
	return ComparisonResponse{
		PaymentsChange:  c.PaymentsChange.String(),
		ExpensesChange:  c.ExpensesChange.String(),
		NetIncomeChange: c.NetIncomeChange.String(),
	}
}

// ToDailyReportResponse converts a DailyReportOutput to its DTO.
func ToDailyReportResponse(output *report.DailyReportOutput) DailyReportResponse {
	return DailyReportResponse{
		Date:      output.Date.Format("2006-01-02"),
		Payments:  toPaymentStatsResponse(output.Payments),
		Expenses:  toExpenseStatsResponse(output.Expenses),
		NetIncome: output.NetIncome.String(),
	}
}

// ToMonthlyReportResponse converts a MonthlyReportOutput to its DTO.
func ToMonthlyReportResponse(output *report.MonthlyReportOutput) MonthlyReportResponse {
	return MonthlyReportResponse{
		Year:          output.Year,
		Month:         int(output.Month),
		Payments:      toPaymentStatsResponse(output.Payments),
		Expenses:      toExpenseStatsResponse(output.Expenses),
		NetIncome:     output.NetIncome.String(),
		PaymentsDaily: toDailyBucketsResponse(output.PaymentsDaily),
		ExpensesDaily: toDailyBucketsResponse(output.ExpensesDaily),
		Comparison:    toComparisonResponse(output.Comparison),
	}
}

// ToYearlyReportResponse converts a YearlyReportOutput to its DTO.
func ToYearlyReportResponse(output *report.YearlyReportOutput) YearlyReportResponse {
	breakdown := make([]MonthBucketResponse, len(output.MonthlyBreakdown))
	for i, m := range output.MonthlyBreakdown {
		breakdown[i] = MonthBucketResponse{
			Month:            m.Month,
			PaymentsTotal:    m.PaymentsTotal.String(),
			ExpensesTotal:    m.ExpensesTotal.String(),
			NetIncome:        m.NetIncome.String(),
			TransactionCount: m.TransactionCount,
		}
	}
	return YearlyReportResponse{
		Year:             output.Year,
		Payments:         toPaymentStatsResponse(output.Payments),
		Expenses:         toExpenseStatsResponse(output.Expenses),
		NetIncome:        output.NetIncome.String(),
		MonthlyBreakdown: breakdown,
		Comparison:       toComparisonResponse(output.Comparison),
	}
}

func toWindowSummaryResponse(w report.WindowSummary) WindowSummaryResponse {
	return WindowSummaryResponse{
		Start:         w.Start.Format(time.RFC3339),
		End:           w.End.Format(time.RFC3339),
		PaymentsTotal: w.PaymentsTotal.String(),
		ExpensesTotal: w.ExpensesTotal.String(),
		NetIncome:     w.NetIncome.String(),
		PaymentCount:  w.PaymentCount,
		ExpenseCount:  w.ExpenseCount,
	}
}

// ToFinancialSummaryResponse converts a FinancialSummaryOutput to its DTO.
func ToFinancialSummaryResponse(output *report.FinancialSummaryOutput) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		Month:   toWindowSummaryResponse(output.Month),
		Quarter: toWindowSummaryResponse(output.Quarter),
		Year:    toWindowSummaryResponse(output.Year),
	}
}
