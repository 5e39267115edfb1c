// Package report contains financial report aggregation use cases.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/domain/entity"
)

// GroupStat holds the count and summed amount for one group-by bucket.
type GroupStat struct {
	Count int64
	Total decimal.Decimal
}

// VendorStat holds the accumulated spend for one vendor.
type VendorStat struct {
	Vendor string
	Count  int64
	Total  decimal.Decimal
}

// PaymentStats holds the aggregated payment side of a report window.
type PaymentStats struct {
	Total           decimal.Decimal
	Count           int64
	ByFeeType       map[entity.FeeType]GroupStat
	ByPaymentMethod map[entity.PaymentMethod]GroupStat
}

// ExpenseStats holds the aggregated expense side of a report window.
type ExpenseStats struct {
	Total      decimal.Decimal
	Count      int64
	ByCategory map[entity.ExpenseCategory]GroupStat
	TopVendors []VendorStat
}

// DailyBucket holds one calendar day's total within a breakdown.
type DailyBucket struct {
	Date  string // ISO date, "2006-01-02"
	Total decimal.Decimal
	Count int64
}

// MonthBucket holds one calendar month's totals within a yearly breakdown.
type MonthBucket struct {
	Month            int // 1-12
	PaymentsTotal    decimal.Decimal
	ExpensesTotal    decimal.Decimal
	NetIncome        decimal.Decimal
	TransactionCount int64
}

// ComparisonStats holds period-over-period percentage changes.
type ComparisonStats struct {
	PaymentsChange  decimal.Decimal
	ExpensesChange  decimal.Decimal
	NetIncomeChange decimal.Decimal
}

const isoDate = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// AggregatePayments computes totals and enum group-bys over a window's payments.
func AggregatePayments(payments []*entity.Payment) PaymentStats {
	stats := PaymentStats{
		Total:           decimal.Zero,
		ByFeeType:       make(map[entity.FeeType]GroupStat),
		ByPaymentMethod: make(map[entity.PaymentMethod]GroupStat),
	}

	for _, p := range payments {
		stats.Total = stats.Total.Add(p.Amount)
		stats.Count++

		byFee := stats.ByFeeType[p.FeeType]
		byFee.Count++
		byFee.Total = byFee.Total.Add(p.Amount)
		stats.ByFeeType[p.FeeType] = byFee

		byMethod := stats.ByPaymentMethod[p.PaymentMethod]
		byMethod.Count++
		byMethod.Total = byMethod.Total.Add(p.Amount)
		stats.ByPaymentMethod[p.PaymentMethod] = byMethod
	}

	return stats
}

// AggregateExpenses computes totals, category group-bys, and the top-N vendor
// ranking over a window's expenses. Expenses without a vendor are excluded from
// the ranking but still counted in the total.
func AggregateExpenses(expenses []*entity.Expense, topVendors int) ExpenseStats {
	stats := ExpenseStats{
		Total:      decimal.Zero,
		ByCategory: make(map[entity.ExpenseCategory]GroupStat),
	}

	vendors := make(map[string]GroupStat)
	for _, e := range expenses {
		stats.Total = stats.Total.Add(e.Amount)
		stats.Count++

		byCat := stats.ByCategory[e.Category]
		byCat.Count++
		byCat.Total = byCat.Total.Add(e.Amount)
		stats.ByCategory[e.Category] = byCat

		if e.Vendor != "" {
			v := vendors[e.Vendor]
			v.Count++
			v.Total = v.Total.Add(e.Amount)
			vendors[e.Vendor] = v
		}
	}

	stats.TopVendors = rankVendors(vendors, topVendors)
	return stats
}

// rankVendors orders vendors by summed amount descending, truncated to n.
// Ties break alphabetically so rankings are deterministic.
func rankVendors(vendors map[string]GroupStat, n int) []VendorStat {
	ranked := make([]VendorStat, 0, len(vendors))
	for name, stat := range vendors {
		ranked = append(ranked, VendorStat{Vendor: name, Count: stat.Count, Total: stat.Total})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Total.Equal(ranked[j].Total) {
			return ranked[i].Total.GreaterThan(ranked[j].Total)
		}
		return ranked[i].Vendor < ranked[j].Vendor
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// PaymentDailyBreakdown accumulates payments into per-day buckets, sorted by date.
func PaymentDailyBreakdown(payments []*entity.Payment) []DailyBucket {
	buckets := make(map[string]DailyBucket)
	for _, p := range payments {
		key := p.PaymentDate.Format(isoDate)
		b := buckets[key]
		b.Date = key
		b.Total = b.Total.Add(p.Amount)
		b.Count++
		buckets[key] = b
	}
	return flattenBuckets(buckets)
}

// ExpenseDailyBreakdown accumulates expenses into per-day buckets, sorted by date.
func ExpenseDailyBreakdown(expenses []*entity.Expense) []DailyBucket {
	buckets := make(map[string]DailyBucket)
	for _, e := range expenses {
		key := e.Date.Format(isoDate)
		b := buckets[key]
		b.Date = key
		b.Total = b.Total.Add(e.Amount)
		b.Count++
		buckets[key] = b
	}
	return flattenBuckets(buckets)
}

func flattenBuckets(buckets map[string]DailyBucket) []DailyBucket {
	out := make([]DailyBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// PercentChange computes the percentage change from previous to current,
// rounded to 2 decimal places. A zero baseline is defined as a 100% change so
// non-finite values never reach clients.
func PercentChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

// NetIncomeChange computes the percentage change of net income. The divisor is
// |previous| so the sign of the numerator stays meaningful when the baseline
// itself is negative.
func NetIncomeChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return hundred
	}
	return current.Sub(previous).Div(previous.Abs()).Mul(hundred).Round(2)
}
