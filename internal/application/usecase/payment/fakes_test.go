package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
)

// fakePaymentRepo implements adapter.PaymentRepository with overridable
// functions. Tests only set what they use.
type fakePaymentRepo struct {
	create                func(ctx context.Context, payment *entity.Payment) error
	findByID              func(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	findByFilter          func(ctx context.Context, filter adapter.PaymentFilter, pagination adapter.Pagination) (*entity.PaymentListResult, error)
	getStatistics         func(ctx context.Context, filter adapter.PaymentFilter) (*entity.PaymentStatistics, error)
	existsByReceiptNumber func(ctx context.Context, receiptNumber string) (bool, error)
	update                func(ctx context.Context, payment *entity.Payment) error
	delete                func(ctx context.Context, id uuid.UUID) error
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if f.create != nil {
		return f.create(ctx, payment)
	}
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	if f.findByID != nil {
		return f.findByID(ctx, id)
	}
	return nil, domainerror.ErrPaymentNotFound
}

func (f *fakePaymentRepo) FindByFilter(ctx context.Context, filter adapter.PaymentFilter, pagination adapter.Pagination) (*entity.PaymentListResult, error) {
	if f.findByFilter != nil {
		return f.findByFilter(ctx, filter, pagination)
	}
	return &entity.PaymentListResult{}, nil
}

func (f *fakePaymentRepo) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
	return nil, nil
}

func (f *fakePaymentRepo) FindMostRecent(ctx context.Context) (*entity.Payment, error) {
	return nil, domainerror.ErrPaymentNotFound
}

func (f *fakePaymentRepo) CountByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	return 0, nil
}

func (f *fakePaymentRepo) GetStatistics(ctx context.Context, filter adapter.PaymentFilter) (*entity.PaymentStatistics, error) {
	if f.getStatistics != nil {
		return f.getStatistics(ctx, filter)
	}
	return &entity.PaymentStatistics{}, nil
}

func (f *fakePaymentRepo) ExistsByReceiptNumber(ctx context.Context, receiptNumber string) (bool, error) {
	if f.existsByReceiptNumber != nil {
		return f.existsByReceiptNumber(ctx, receiptNumber)
	}
	return false, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	if f.update != nil {
		return f.update(ctx, payment)
	}
	return nil
}

func (f *fakePaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.delete != nil {
		return f.delete(ctx, id)
	}
	return nil
}

// fakeConverter implements adapter.CurrencyConverter with a fixed rate.
// A nil rate simulates no active rate being configured.
type fakeConverter struct {
	rate *decimal.Decimal
	err  error
}

func (f *fakeConverter) ToUSD(ctx context.Context, amount decimal.Decimal) (*decimal.Decimal, *decimal.Decimal, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	if f.rate == nil {
		return nil, nil, nil
	}
	converted := f.WithRate(amount, *f.rate)
	applied := *f.rate
	return &converted, &applied, nil
}

func (f *fakeConverter) WithRate(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Div(rate).Round(2)
}

// fakeInvalidator records invalidation calls.
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
