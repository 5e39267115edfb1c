package expense

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
)

type fakeExpenseRepo struct {
	create        func(ctx context.Context, expense *entity.Expense) error
	findByID      func(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	findByFilter  func(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.Pagination) (*entity.ExpenseListResult, error)
	getStatistics func(ctx context.Context, filter adapter.ExpenseFilter) (*entity.ExpenseStatistics, error)
	update        func(ctx context.Context, expense *entity.Expense) error
	delete        func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	if f.create != nil {
		return f.create(ctx, expense)
	}
	return nil
}

func (f *fakeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	if f.findByID != nil {
		return f.findByID(ctx, id)
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.Pagination) (*entity.ExpenseListResult, error) {
	if f.findByFilter != nil {
		return f.findByFilter(ctx, filter, pagination)
	}
	return &entity.ExpenseListResult{}, nil
}

func (f *fakeExpenseRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Expense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) FindMostRecent(ctx context.Context) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) CountByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeExpenseRepo) GetStatistics(ctx context.Context, filter adapter.ExpenseFilter) (*entity.ExpenseStatistics, error) {
	if f.getStatistics != nil {
		return f.getStatistics(ctx, filter)
	}
	return &entity.ExpenseStatistics{}, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	if f.update != nil {
		return f.update(ctx, expense)
	}
	return nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.delete != nil {
		return f.delete(ctx, id)
	}
	return nil
}

type fakeInvalidator struct {
	payments int
	expenses int
	err      error
}

func (f *fakeInvalidator) InvalidatePayments(ctx context.Context) error {
	f.payments++
	return f.err
}

func (f *fakeInvalidator) InvalidateExpenses(ctx context.Context) error {
	f.expenses++
	return f.err
}
