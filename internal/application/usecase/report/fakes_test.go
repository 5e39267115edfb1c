package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
)

// fakePaymentRepo implements adapter.PaymentRepository with overridable
// functions. Tests only set what they use.
type fakePaymentRepo struct {
	findByDateRange func(ctx context.Context, start, end time.Time) ([]*entity.Payment, error)
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error { return nil }

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) FindByFilter(ctx context.Context, filter adapter.PaymentFilter, pagination adapter.Pagination) (*entity.PaymentListResult, error) {
	return &entity.PaymentListResult{}, nil
}

func (f *fakePaymentRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
	if f.findByDateRange != nil {
		return f.findByDateRange(ctx, start, end)
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindMostRecent(ctx context.Context) (*entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) CountByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}

func (f *fakePaymentRepo) GetStatistics(ctx context.Context, filter adapter.PaymentFilter) (*entity.PaymentStatistics, error) {
	return &entity.PaymentStatistics{}, nil
}

func (f *fakePaymentRepo) ExistsByReceiptNumber(ctx context.Context, receiptNumber string) (bool, error) {
	return false, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *entity.Payment) error { return nil }

func (f *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

// fakeExpenseRepo implements adapter.ExpenseRepository the same way.
type fakeExpenseRepo struct {
	findByDateRange func(ctx context.Context, start, end time.Time) ([]*entity.Expense, error)
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error { return nil }

func (f *fakeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.Pagination) (*entity.ExpenseListResult, error) {
	return &entity.ExpenseListResult{}, nil
}

func (f *fakeExpenseRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
	if f.findByDateRange != nil {
		return f.findByDateRange(ctx, start, end)
	}
	return nil, nil
}

func (f *fakeExpenseRepo) FindMostRecent(ctx context.Context) (*entity.Expense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) CountByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeExpenseRepo) GetStatistics(ctx context.Context, filter adapter.ExpenseFilter) (*entity.ExpenseStatistics, error) {
	return &entity.ExpenseStatistics{}, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error { return nil }

func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
