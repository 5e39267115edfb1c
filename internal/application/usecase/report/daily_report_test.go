package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
)

func TestDailyReportUseCase_Execute(t *testing.T) {
	date := time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

	t.Run("net income is payments minus expenses", func(t *testing.T) {
		paymentRepo := &fakePaymentRepo{
			findByDateRange: func(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
				return []*entity.Payment{
					paymentOn("2025-03-15", "1000", entity.FeeTypeNewYear, entity.PaymentMethodCash),
					paymentOn("2025-03-15", "500", entity.FeeTypeExam, entity.PaymentMethodTransfer),
				}, nil
			},
		}
		expenseRepo := &fakeExpenseRepo{
			findByDateRange: func(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
				return []*entity.Expense{
					expenseOn("2025-03-15", "600", entity.ExpenseCategoryUtilities, "Electric Co"),
				}, nil
			},
		}

		uc := NewDailyReportUseCase(paymentRepo, expenseRepo)
		out, err := uc.Execute(context.Background(), DailyReportInput{Date: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.NewFromInt(900); !out.NetIncome.Equal(want) {
			t.Errorf("expected net income %s, got %s", want, out.NetIncome)
		}
		if out.Payments.Count != 2 || out.Expenses.Count != 1 {
			t.Errorf("unexpected counts: payments %d, expenses %d", out.Payments.Count, out.Expenses.Count)
		}
	})

	t.Run("queries use the full-day window", func(t *testing.T) {
		var gotStart, gotEnd time.Time
		paymentRepo := &fakePaymentRepo{
			findByDateRange: func(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
				gotStart, gotEnd = start, end
				return nil, nil
			},
		}

		uc := NewDailyReportUseCase(paymentRepo, &fakeExpenseRepo{})
		if _, err := uc.Execute(context.Background(), DailyReportInput{Date: date}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		wantStart, wantEnd := DayWindow(date)
		if !gotStart.Equal(wantStart) || !gotEnd.Equal(wantEnd) {
			t.Errorf("expected window [%s, %s], got [%s, %s]", wantStart, wantEnd, gotStart, gotEnd)
		}
	})

	t.Run("empty day yields zero report", func(t *testing.T) {
		uc := NewDailyReportUseCase(&fakePaymentRepo{}, &fakeExpenseRepo{})
		out, err := uc.Execute(context.Background(), DailyReportInput{Date: date})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.NetIncome.IsZero() {
			t.Errorf("expected zero net income, got %s", out.NetIncome)
		}
		if len(out.Expenses.TopVendors) != 0 {
			t.Errorf("expected no ranked vendors, got %+v", out.Expenses.TopVendors)
		}
	})

	t.Run("repository failure wraps the report error", func(t *testing.T) {
		paymentRepo := &fakePaymentRepo{
			findByDateRange: func(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
				return nil, errors.New("connection refused")
			},
		}

		uc := NewDailyReportUseCase(paymentRepo, &fakeExpenseRepo{})
		_, err := uc.Execute(context.Background(), DailyReportInput{Date: date})
		if !errors.Is(err, domainerror.ErrDailyReportFailed) {
			t.Errorf("expected ErrDailyReportFailed, got %v", err)
		}
	})
}

func TestMonthlyReportUseCase_Execute(t *testing.T) {
	t.Run("rejects out-of-range months", func(t *testing.T) {
		uc := NewMonthlyReportUseCase(&fakePaymentRepo{}, &fakeExpenseRepo{})

		for _, month := range []time.Month{0, 13} {
			_, err := uc.Execute(context.Background(), MonthlyReportInput{Year: 2025, Month: month})
			if !errors.Is(err, domainerror.ErrInvalidReportPeriod) {
				t.Errorf("month %d: expected ErrInvalidReportPeriod, got %v", month, err)
			}
		}
	})

	t.Run("comparison against previous month", func(t *testing.T) {
		paymentRepo := &fakePaymentRepo{
			findByDateRange: func(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
				if start.Month() == time.March {
					return []*entity.Payment{paymentOn("2025-03-10", "200", entity.FeeTypeNewYear, entity.PaymentMethodCash)}, nil
				}
				return []*entity.Payment{paymentOn("2025-02-10", "100", entity.FeeTypeNewYear, entity.PaymentMethodCash)}, nil
			},
		}

		uc := NewMonthlyReportUseCase(paymentRepo, &fakeExpenseRepo{})
		out, err := uc.Execute(context.Background(), MonthlyReportInput{Year: 2025, Month: time.March})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.NewFromInt(100); !out.Comparison.PaymentsChange.Equal(want) {
			t.Errorf("expected payments change %s, got %s", want, out.Comparison.PaymentsChange)
		}
		if len(out.PaymentsDaily) != 1 || out.PaymentsDaily[0].Date != "2025-03-10" {
			t.Errorf("unexpected daily breakdown: %+v", out.PaymentsDaily)
		}
	})
}

func TestYearlyReportUseCase_Execute(t *testing.T) {
	t.Run("monthly breakdown covers all twelve months", func(t *testing.T) {
		paymentRepo := &fakePaymentRepo{
			findByDateRange: func(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
				if start.Year() != 2025 {
					return nil, nil
				}
				return []*entity.Payment{
					paymentOn("2025-01-05", "100", entity.FeeTypeNewYear, entity.PaymentMethodCash),
					paymentOn("2025-07-20", "300", entity.FeeTypeTraining, entity.PaymentMethodTransfer),
				}, nil
			},
		}
		expenseRepo := &fakeExpenseRepo{
			findByDateRange: func(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
				if start.Year() != 2025 {
					return nil, nil
				}
				return []*entity.Expense{
					expenseOn("2025-07-01", "50", entity.ExpenseCategorySupplies, ""),
				}, nil
			},
		}

		uc := NewYearlyReportUseCase(paymentRepo, expenseRepo)
		out, err := uc.Execute(context.Background(), YearlyReportInput{Year: 2025})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.MonthlyBreakdown) != 12 {
			t.Fatalf("expected 12 month buckets, got %d", len(out.MonthlyBreakdown))
		}

		january := out.MonthlyBreakdown[0]
		if january.Month != 1 || !january.PaymentsTotal.Equal(decimal.NewFromInt(100)) {
			t.Errorf("unexpected January bucket: %+v", january)
		}

		july := out.MonthlyBreakdown[6]
		if !july.NetIncome.Equal(decimal.NewFromInt(250)) || july.TransactionCount != 2 {
			t.Errorf("unexpected July bucket: %+v", july)
		}

		february := out.MonthlyBreakdown[1]
		if !february.NetIncome.IsZero() || february.TransactionCount != 0 {
			t.Errorf("expected empty February bucket, got %+v", february)
		}
	})

	t.Run("zero previous year reports a 100 percent change", func(t *testing.T) {
		paymentRepo := &fakePaymentRepo{
			findByDateRange: func(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
				if start.Year() == 2025 {
					return []*entity.Payment{paymentOn("2025-06-01", "100", entity.FeeTypeOther, entity.PaymentMethodCash)}, nil
				}
				return nil, nil
			},
		}

		uc := NewYearlyReportUseCase(paymentRepo, &fakeExpenseRepo{})
		out, err := uc.Execute(context.Background(), YearlyReportInput{Year: 2025})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Comparison.PaymentsChange.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected 100 percent change, got %s", out.Comparison.PaymentsChange)
		}
	})
}

func TestFinancialSummaryUseCase_Execute(t *testing.T) {
	now := time.Date(2025, time.August, 20, 12, 0, 0, 0, time.Local)

	// One payment inside August, one in July (same quarter, same year). Dates
	// are local because the summary windows are computed in local time.
	august := entity.NewPayment("STU-1", "A", entity.FeeTypeNewYear, decimal.NewFromInt(100), "EGP", "R-AUG", entity.PaymentMethodCash, time.Date(2025, time.August, 5, 12, 0, 0, 0, time.Local), "", uuid.Nil)
	july := entity.NewPayment("STU-2", "B", entity.FeeTypeNewYear, decimal.NewFromInt(200), "EGP", "R-JUL", entity.PaymentMethodCash, time.Date(2025, time.July, 5, 12, 0, 0, 0, time.Local), "", uuid.Nil)

	paymentRepo := &fakePaymentRepo{
		findByDateRange: func(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
			all := []*entity.Payment{august, july}
			var out []*entity.Payment
			for _, p := range all {
				if !p.PaymentDate.Before(start) && !p.PaymentDate.After(end) {
					out = append(out, p)
				}
			}
			return out, nil
		},
	}

	uc := NewFinancialSummaryUseCase(paymentRepo, &fakeExpenseRepo{})
	uc.now = func() time.Time { return now }

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := decimal.NewFromInt(100); !out.Month.PaymentsTotal.Equal(want) {
		t.Errorf("expected month total %s, got %s", want, out.Month.PaymentsTotal)
	}
	if want := decimal.NewFromInt(300); !out.Quarter.PaymentsTotal.Equal(want) {
		t.Errorf("expected quarter total %s, got %s", want, out.Quarter.PaymentsTotal)
	}
	if want := decimal.NewFromInt(300); !out.Year.PaymentsTotal.Equal(want) {
		t.Errorf("expected year total %s, got %s", want, out.Year.PaymentsTotal)
	}
	if out.Month.PaymentCount != 1 || out.Quarter.PaymentCount != 2 {
		t.Errorf("unexpected counts: %+v", out)
	}
}
