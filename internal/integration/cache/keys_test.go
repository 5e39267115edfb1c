package cache

import (
	"testing"
	"time"
)

func TestPaymentListKey(t *testing.T) {
	t.Run("every field appears even when empty", func(t *testing.T) {
		got := PaymentListKey(PaymentListParams{Page: "1", Limit: "20"})
		want := "payments:all:page:1:limit:20:search::feeType::paymentMethod::studentId::startDate::endDate:"
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("identical params collide on the same key", func(t *testing.T) {
		p := PaymentListParams{Page: "2", Limit: "50", Search: "ali", FeeType: "NEW_YEAR"}
		if PaymentListKey(p) != PaymentListKey(p) {
			t.Error("expected identical params to produce identical keys")
		}
	})

	t.Run("any differing value changes the key", func(t *testing.T) {
		base := PaymentListParams{Page: "1", Limit: "20", StudentID: "STU-001"}
		other := base
		other.StudentID = "STU-002"
		if PaymentListKey(base) == PaymentListKey(other) {
			t.Error("expected differing params to produce differing keys")
		}
	})
}

func TestExpenseListKey(t *testing.T) {
	got := ExpenseListKey(ExpenseListParams{Page: "1", Limit: "20", Vendor: "Acme"})
	want := "expenses:all:page:1:limit:20:search::category::vendor:Acme:startDate::endDate:"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDashboardKey(t *testing.T) {
	// The month segment is zero-based, so March is 2.
	got := DashboardKey(time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC))
	if want := "dashboard:report:2025:2:15"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	got = DashboardKey(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC))
	if want := "dashboard:report:2025:0:1"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestReportKeys(t *testing.T) {
	if got, want := DailyReportKey("2025-03-15"), "reports:daily:2025-03-15"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got, want := MonthlyReportKey(2025, 3), "reports:monthly:2025:3"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got, want := YearlyReportKey(2025), "reports:yearly:2025"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if got, want := SummaryKey(), "reports:summary"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
