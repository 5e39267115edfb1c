package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/domain/entity"
)

func paymentOn(date string, amount string, feeType entity.FeeType, method entity.PaymentMethod) *entity.Payment {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.NewPayment("STU-1", "Test Student", feeType, decimal.RequireFromString(amount), "EGP", "RCPT-"+date+amount, method, d, "", uuid.Nil)
}

func expenseOn(date string, amount string, category entity.ExpenseCategory, vendor string) *entity.Expense {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.NewExpense(decimal.RequireFromString(amount), "test expense", category, vendor, "", d, uuid.Nil)
}

func TestAggregatePayments(t *testing.T) {
	t.Run("empty slice yields zero totals and empty maps", func(t *testing.T) {
		stats := AggregatePayments(nil)

		if !stats.Total.IsZero() {
			t.Errorf("expected zero total, got %s", stats.Total)
		}
		if stats.Count != 0 {
			t.Errorf("expected zero count, got %d", stats.Count)
		}
		if len(stats.ByFeeType) != 0 || len(stats.ByPaymentMethod) != 0 {
			t.Error("expected empty group-by maps")
		}
	})

	t.Run("totals and group-bys accumulate", func(t *testing.T) {
		payments := []*entity.Payment{
			paymentOn("2025-03-01", "100.50", entity.FeeTypeNewYear, entity.PaymentMethodCash),
			paymentOn("2025-03-01", "200.25", entity.FeeTypeNewYear, entity.PaymentMethodTransfer),
			paymentOn("2025-03-02", "50", entity.FeeTypeExam, entity.PaymentMethodCash),
		}

		stats := AggregatePayments(payments)

		if want := decimal.RequireFromString("350.75"); !stats.Total.Equal(want) {
			t.Errorf("expected total %s, got %s", want, stats.Total)
		}
		if stats.Count != 3 {
			t.Errorf("expected count 3, got %d", stats.Count)
		}

		newYear := stats.ByFeeType[entity.FeeTypeNewYear]
		if newYear.Count != 2 || !newYear.Total.Equal(decimal.RequireFromString("300.75")) {
			t.Errorf("unexpected NEW_YEAR bucket: %+v", newYear)
		}

		cash := stats.ByPaymentMethod[entity.PaymentMethodCash]
		if cash.Count != 2 || !cash.Total.Equal(decimal.RequireFromString("150.50")) {
			t.Errorf("unexpected CASH bucket: %+v", cash)
		}
	})

	t.Run("group-by totals sum to the grand total", func(t *testing.T) {
		payments := []*entity.Payment{
			paymentOn("2025-03-01", "10", entity.FeeTypeTraining, entity.PaymentMethodCheque),
			paymentOn("2025-03-01", "20", entity.FeeTypeOther, entity.PaymentMethodCash),
			paymentOn("2025-03-03", "30", entity.FeeTypeTraining, entity.PaymentMethodCash),
		}

		stats := AggregatePayments(payments)

		sum := decimal.Zero
		for _, g := range stats.ByFeeType {
			sum = sum.Add(g.Total)
		}
		if !sum.Equal(stats.Total) {
			t.Errorf("fee type buckets sum to %s, want %s", sum, stats.Total)
		}

		sum = decimal.Zero
		for _, g := range stats.ByPaymentMethod {
			sum = sum.Add(g.Total)
		}
		if !sum.Equal(stats.Total) {
			t.Errorf("payment method buckets sum to %s, want %s", sum, stats.Total)
		}
	})
}

func TestAggregateExpenses(t *testing.T) {
	t.Run("vendorless expenses count in total but not in ranking", func(t *testing.T) {
		expenses := []*entity.Expense{
			expenseOn("2025-03-01", "100", entity.ExpenseCategorySupplies, ""),
			expenseOn("2025-03-01", "40", entity.ExpenseCategorySupplies, "Acme"),
		}

		stats := AggregateExpenses(expenses, 5)

		if want := decimal.NewFromInt(140); !stats.Total.Equal(want) {
			t.Errorf("expected total %s, got %s", want, stats.Total)
		}
		if len(stats.TopVendors) != 1 {
			t.Fatalf("expected 1 ranked vendor, got %d", len(stats.TopVendors))
		}
		if stats.TopVendors[0].Vendor != "Acme" {
			t.Errorf("expected Acme, got %s", stats.TopVendors[0].Vendor)
		}
	})

	t.Run("vendor ranking orders by total descending and truncates", func(t *testing.T) {
		expenses := []*entity.Expense{
			expenseOn("2025-03-01", "10", entity.ExpenseCategoryFood, "Small"),
			expenseOn("2025-03-01", "300", entity.ExpenseCategoryFood, "Big"),
			expenseOn("2025-03-02", "100", entity.ExpenseCategoryFood, "Mid"),
			expenseOn("2025-03-02", "50", entity.ExpenseCategoryFood, "Mid"),
		}

		stats := AggregateExpenses(expenses, 2)

		if len(stats.TopVendors) != 2 {
			t.Fatalf("expected 2 ranked vendors, got %d", len(stats.TopVendors))
		}
		if stats.TopVendors[0].Vendor != "Big" || stats.TopVendors[1].Vendor != "Mid" {
			t.Errorf("unexpected ranking: %+v", stats.TopVendors)
		}
		if stats.TopVendors[1].Count != 2 {
			t.Errorf("expected Mid to aggregate 2 rows, got %d", stats.TopVendors[1].Count)
		}
	})

	t.Run("equal totals break ties alphabetically", func(t *testing.T) {
		expenses := []*entity.Expense{
			expenseOn("2025-03-01", "100", entity.ExpenseCategoryOther, "Zeta"),
			expenseOn("2025-03-01", "100", entity.ExpenseCategoryOther, "Alpha"),
		}

		stats := AggregateExpenses(expenses, 5)

		if stats.TopVendors[0].Vendor != "Alpha" {
			t.Errorf("expected alphabetical tie-break, got %+v", stats.TopVendors)
		}
	})

	t.Run("category buckets accumulate", func(t *testing.T) {
		expenses := []*entity.Expense{
			expenseOn("2025-03-01", "10", entity.ExpenseCategorySalaries, ""),
			expenseOn("2025-03-01", "20", entity.ExpenseCategorySalaries, ""),
			expenseOn("2025-03-01", "5", entity.ExpenseCategoryUtilities, ""),
		}

		stats := AggregateExpenses(expenses, 5)

		salaries := stats.ByCategory[entity.ExpenseCategorySalaries]
		if salaries.Count != 2 || !salaries.Total.Equal(decimal.NewFromInt(30)) {
			t.Errorf("unexpected SALARIES bucket: %+v", salaries)
		}
	})
}

func TestPaymentDailyBreakdown(t *testing.T) {
	payments := []*entity.Payment{
		paymentOn("2025-03-05", "10", entity.FeeTypeExam, entity.PaymentMethodCash),
		paymentOn("2025-03-02", "20", entity.FeeTypeExam, entity.PaymentMethodCash),
		paymentOn("2025-03-05", "30", entity.FeeTypeExam, entity.PaymentMethodCash),
	}

	buckets := PaymentDailyBreakdown(payments)

	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Date != "2025-03-02" || buckets[1].Date != "2025-03-05" {
		t.Errorf("expected sorted dates, got %+v", buckets)
	}
	if !buckets[1].Total.Equal(decimal.NewFromInt(40)) || buckets[1].Count != 2 {
		t.Errorf("unexpected bucket for 2025-03-05: %+v", buckets[1])
	}
}

func TestPercentChange(t *testing.T) {
	t.Run("zero baseline is defined as 100 percent", func(t *testing.T) {
		got := PercentChange(decimal.NewFromInt(500), decimal.Zero)
		if !got.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", got)
		}
	})

	t.Run("zero baseline with zero current is still 100 percent", func(t *testing.T) {
		got := PercentChange(decimal.Zero, decimal.Zero)
		if !got.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", got)
		}
	})

	t.Run("change rounds to two decimals", func(t *testing.T) {
		got := PercentChange(decimal.NewFromInt(110), decimal.NewFromInt(300))
		if want := decimal.RequireFromString("-63.33"); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("doubling is a 100 percent increase", func(t *testing.T) {
		got := PercentChange(decimal.NewFromInt(200), decimal.NewFromInt(100))
		if !got.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", got)
		}
	})
}

func TestNetIncomeChange(t *testing.T) {
	t.Run("negative baseline keeps numerator sign", func(t *testing.T) {
		// From -100 to 50 is an improvement, so the change must be positive.
		got := NetIncomeChange(decimal.NewFromInt(50), decimal.NewFromInt(-100))
		if want := decimal.NewFromInt(150); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("worsening from a negative baseline is negative", func(t *testing.T) {
		got := NetIncomeChange(decimal.NewFromInt(-200), decimal.NewFromInt(-100))
		if want := decimal.NewFromInt(-100); !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("zero baseline is defined as 100 percent", func(t *testing.T) {
		got := NetIncomeChange(decimal.NewFromInt(10), decimal.Zero)
		if !got.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100, got %s", got)
		}
	})
}
