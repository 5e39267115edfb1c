package cache

import (
	"context"
	"testing"
	"time"
)

func TestInvalidator(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	seed := func(t *testing.T) (*Invalidator, *Store, func(string) bool) {
		t.Helper()
		store, mr := newTestStore(t)

		mr.Set(PaymentListKey(PaymentListParams{Page: "1", Limit: "20"}), "x")
		mr.Set(ExpenseListKey(ExpenseListParams{Page: "1", Limit: "20"}), "x")
		mr.Set(DailyReportKey("2025-03-14"), "x")
		mr.Set(SummaryKey(), "x")
		mr.Set(DashboardKey(now), "x")
		mr.Set(DashboardKey(yesterday), "x")
		mr.Set(DashboardKey(now.AddDate(0, 0, -2)), "x")

		inv := NewInvalidator(store)
		inv.now = func() time.Time { return now }
		return inv, store, mr.Exists
	}

	t.Run("payment write clears payments, reports and recent dashboard days", func(t *testing.T) {
		inv, _, exists := seed(t)

		if err := inv.InvalidatePayments(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if exists(PaymentListKey(PaymentListParams{Page: "1", Limit: "20"})) {
			t.Error("expected payment list entry to be cleared")
		}
		if exists(DailyReportKey("2025-03-14")) || exists(SummaryKey()) {
			t.Error("expected report entries to be cleared")
		}
		if exists(DashboardKey(now)) || exists(DashboardKey(yesterday)) {
			t.Error("expected today's and yesterday's dashboard entries to be cleared")
		}
		if !exists(DashboardKey(now.AddDate(0, 0, -2))) {
			t.Error("expected older dashboard entries to survive")
		}
		if !exists(ExpenseListKey(ExpenseListParams{Page: "1", Limit: "20"})) {
			t.Error("expected expense list entries to survive a payment write")
		}
	})

	t.Run("expense write leaves payment lists intact", func(t *testing.T) {
		inv, _, exists := seed(t)

		if err := inv.InvalidateExpenses(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if exists(ExpenseListKey(ExpenseListParams{Page: "1", Limit: "20"})) {
			t.Error("expected expense list entry to be cleared")
		}
		if exists(SummaryKey()) {
			t.Error("expected report entries to be cleared")
		}
		if !exists(PaymentListKey(PaymentListParams{Page: "1", Limit: "20"})) {
			t.Error("expected payment list entries to survive an expense write")
		}
	})
}
