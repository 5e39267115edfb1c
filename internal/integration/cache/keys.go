// Package cache implements the read-through response cache and its
// invalidation coordinator on top of Redis.
package cache

import (
	"fmt"
	"time"
)

// Namespace TTLs. List and report entries share the shorter TTL; the
// dashboard tolerates slightly longer staleness.
const (
	ListTTL      = 300 * time.Second
	DashboardTTL = 600 * time.Second
)

// Bulk invalidation patterns, one per cache namespace.
const (
	PaymentsPattern = "payments:*"
	ExpensesPattern = "expenses:*"
	ReportsPattern  = "reports:*"
)

// PaymentListParams carries every recognized payment list parameter as its
// raw query string value, empty when absent. Keys are built from the string
// values directly so identical effective filters always collide on the same
// key and any single differing value changes the key.
type PaymentListParams struct {
	Page          string
	Limit         string
	Search        string
	FeeType       string
	PaymentMethod string
	StudentID     string
	StartDate     string
	EndDate       string
}

// PaymentListKey derives the cache key for a payment list query. The field
// order is fixed and every field appears even when empty.
func PaymentListKey(p PaymentListParams) string {
	return fmt.Sprintf(
		"payments:all:page:%s:limit:%s:search:%s:feeType:%s:paymentMethod:%s:studentId:%s:startDate:%s:endDate:%s",
		p.Page, p.Limit, p.Search, p.FeeType, p.PaymentMethod, p.StudentID, p.StartDate, p.EndDate,
	)
}

// ExpenseListParams carries every recognized expense list parameter as its
// raw query string value, empty when absent.
type ExpenseListParams struct {
	Page      string
	Limit     string
	Search    string
	Category  string
	Vendor    string
	StartDate string
	EndDate   string
}

// ExpenseListKey derives the cache key for an expense list query.
func ExpenseListKey(p ExpenseListParams) string {
	return fmt.Sprintf(
		"expenses:all:page:%s:limit:%s:search:%s:category:%s:vendor:%s:startDate:%s:endDate:%s",
		p.Page, p.Limit, p.Search, p.Category, p.Vendor, p.StartDate, p.EndDate,
	)
}

// DashboardKey derives the coarse per-day dashboard key. The month index is
// zero-based.
func DashboardKey(t time.Time) string {
	return fmt.Sprintf("dashboard:report:%d:%d:%d", t.Year(), int(t.Month())-1, t.Day())
}

// DailyReportKey derives the cache key for a daily report. date is the ISO
// date string already validated upstream.
func DailyReportKey(date string) string {
	return fmt.Sprintf("reports:daily:%s", date)
}

// MonthlyReportKey derives the cache key for a monthly report.
func MonthlyReportKey(year int, month int) string {
	return fmt.Sprintf("reports:monthly:%d:%d", year, month)
}

// YearlyReportKey derives the cache key for a yearly report.
func YearlyReportKey(year int) string {
	return fmt.Sprintf("reports:yearly:%d", year)
}

// SummaryKey is the cache key for the financial summary snapshot.
func SummaryKey() string {
	return "reports:summary"
}
