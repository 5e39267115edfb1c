package payment

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

func validCreateInput() CreatePaymentInput {
	return CreatePaymentInput{
		StudentID:     "STU-1001",
		StudentName:   "Mona Hassan",
		FeeType:       entity.FeeTypeNewYear,
		Amount:        decimal.NewFromInt(5000),
		Currency:      "EGP",
		ReceiptNumber: "RCPT-2025-0001",
		PaymentMethod: entity.PaymentMethodCash,
		PaymentDate:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		CreatedBy:     uuid.New(),
	}
}

func TestCreatePaymentUseCase_Execute(t *testing.T) {
	t.Run("snapshots USD amount and applied rate", func(t *testing.T) {
		rate := decimal.NewFromInt(50)
		invalidator := &fakeInvalidator{}

		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, &fakeConverter{rate: &rate}, invalidator)
		payment, err := uc.Execute(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if payment.AmountUSD == nil || payment.USDAppliedRate == nil {
			t.Fatal("expected USD fields to be set")
		}
		if want := decimal.NewFromInt(100); !payment.AmountUSD.Equal(want) {
			t.Errorf("expected USD amount %s, got %s", want, payment.AmountUSD)
		}
		if !payment.USDAppliedRate.Equal(rate) {
			t.Errorf("expected applied rate %s, got %s", rate, payment.USDAppliedRate)
		}
		if invalidator.payments != 1 {
			t.Errorf("expected 1 invalidation, got %d", invalidator.payments)
		}
	})

	t.Run("missing active rate stores null USD fields", func(t *testing.T) {
		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, &fakeConverter{}, &fakeInvalidator{})
		payment, err := uc.Execute(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if payment.AmountUSD != nil || payment.USDAppliedRate != nil {
			t.Errorf("expected nil USD fields, got %v / %v", payment.AmountUSD, payment.USDAppliedRate)
		}
	})

	t.Run("converter failure does not block the create", func(t *testing.T) {
		converter := &fakeConverter{err: errors.New("rate lookup timed out")}
		created := false
		repo := &fakePaymentRepo{
			create: func(ctx context.Context, payment *entity.Payment) error {
				created = true
				return nil
			},
		}

		uc := NewCreatePaymentUseCase(repo, converter, &fakeInvalidator{})
		payment, err := uc.Execute(context.Background(), validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !created {
			t.Error("expected payment to be persisted despite conversion failure")
		}
		if payment.AmountUSD != nil {
			t.Error("expected nil USD amount after conversion failure")
		}
	})

	t.Run("duplicate receipt number is rejected", func(t *testing.T) {
		repo := &fakePaymentRepo{
			existsByReceiptNumber: func(ctx context.Context, receiptNumber string) (bool, error) {
				return true, nil
			},
		}

		uc := NewCreatePaymentUseCase(repo, &fakeConverter{}, &fakeInvalidator{})
		_, err := uc.Execute(context.Background(), validCreateInput())
		if !errors.Is(err, domainerror.ErrDuplicateReceiptNumber) {
			t.Errorf("expected ErrDuplicateReceiptNumber, got %v", err)
		}
	})

	t.Run("rejects invalid enums and non-positive amounts", func(t *testing.T) {
		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, &fakeConverter{}, &fakeInvalidator{})

		input := validCreateInput()
		input.FeeType = "TUITION"
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrInvalidFeeType) {
			t.Errorf("expected ErrInvalidFeeType, got %v", err)
		}

		input = validCreateInput()
		input.PaymentMethod = "CARD"
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrInvalidPaymentMethod) {
			t.Errorf("expected ErrInvalidPaymentMethod, got %v", err)
		}

		input = validCreateInput()
		input.Amount = decimal.Zero
		if _, err := uc.Execute(context.Background(), input); !errors.Is(err, domainerror.ErrInvalidPaymentAmount) {
			t.Errorf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("invalidation failure does not fail the create", func(t *testing.T) {
		invalidator := &fakeInvalidator{err: errors.New("redis down")}

		uc := NewCreatePaymentUseCase(&fakePaymentRepo{}, &fakeConverter{}, invalidator)
		if _, err := uc.Execute(context.Background(), validCreateInput()); err != nil {
			t.Errorf("expected success despite invalidation failure, got %v", err)
		}
	})
}

func TestUpdatePaymentUseCase_Execute(t *testing.T) {
	storedRate := decimal.NewFromInt(40)

	existing := func() *entity.Payment {
		amountUSD := decimal.NewFromInt(100)
		p := entity.NewPayment("STU-1001", "Mona Hassan", entity.FeeTypeNewYear, decimal.NewFromInt(4000), "EGP", "RCPT-1", entity.PaymentMethodCash, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), "", uuid.New())
		p.AmountUSD = &amountUSD
		p.USDAppliedRate = &storedRate
		return p
	}

	t.Run("amount update reuses the stored rate snapshot", func(t *testing.T) {
		// The active rate has since moved to 50; the update must still use 40.
		currentRate := decimal.NewFromInt(50)
		repo := &fakePaymentRepo{
			findByID: func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
				return existing(), nil
			},
		}

		uc := NewUpdatePaymentUseCase(repo, &fakeConverter{rate: &currentRate}, &fakeInvalidator{})
		newAmount := decimal.NewFromInt(8000)
		payment, err := uc.Execute(context.Background(), UpdatePaymentInput{ID: uuid.New(), Amount: &newAmount})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.NewFromInt(200); payment.AmountUSD == nil || !payment.AmountUSD.Equal(want) {
			t.Errorf("expected USD amount %s via stored rate, got %v", want, payment.AmountUSD)
		}
		if !payment.USDAppliedRate.Equal(storedRate) {
			t.Errorf("applied rate must stay at the creation snapshot %s, got %s", storedRate, payment.USDAppliedRate)
		}
	})

	t.Run("payment without a snapshot consults the active rate", func(t *testing.T) {
		currentRate := decimal.NewFromInt(50)
		repo := &fakePaymentRepo{
			findByID: func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
				p := existing()
				p.AmountUSD = nil
				p.USDAppliedRate = nil
				return p, nil
			},
		}

		uc := NewUpdatePaymentUseCase(repo, &fakeConverter{rate: &currentRate}, &fakeInvalidator{})
		newAmount := decimal.NewFromInt(5000)
		payment, err := uc.Execute(context.Background(), UpdatePaymentInput{ID: uuid.New(), Amount: &newAmount})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := decimal.NewFromInt(100); payment.AmountUSD == nil || !payment.AmountUSD.Equal(want) {
			t.Errorf("expected USD amount %s via active rate, got %v", want, payment.AmountUSD)
		}
	})

	t.Run("unchanged amount leaves USD fields untouched", func(t *testing.T) {
		repo := &fakePaymentRepo{
			findByID: func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
				return existing(), nil
			},
		}

		uc := NewUpdatePaymentUseCase(repo, &fakeConverter{}, &fakeInvalidator{})
		notes := "corrected student name"
		name := "Mona H. Hassan"
		payment, err := uc.Execute(context.Background(), UpdatePaymentInput{ID: uuid.New(), StudentName: &name, Notes: &notes})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if payment.AmountUSD == nil || !payment.AmountUSD.Equal(decimal.NewFromInt(100)) {
			t.Errorf("USD amount must stay untouched, got %v", payment.AmountUSD)
		}
		if payment.StudentName != name || payment.Notes != notes {
			t.Errorf("expected updated fields, got %q / %q", payment.StudentName, payment.Notes)
		}
	})

	t.Run("missing payment propagates not found", func(t *testing.T) {
		uc := NewUpdatePaymentUseCase(&fakePaymentRepo{}, &fakeConverter{}, &fakeInvalidator{})
		_, err := uc.Execute(context.Background(), UpdatePaymentInput{ID: uuid.New()})
		if !errors.Is(err, domainerror.ErrPaymentNotFound) {
			t.Errorf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("update invalidates the payment caches", func(t *testing.T) {
		invalidator := &fakeInvalidator{}
		repo := &fakePaymentRepo{
			findByID: func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
				return existing(), nil
			},
		}

		uc := NewUpdatePaymentUseCase(repo, &fakeConverter{}, invalidator)
		if _, err := uc.Execute(context.Background(), UpdatePaymentInput{ID: uuid.New()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if invalidator.payments != 1 {
			t.Errorf("expected 1 invalidation, got %d", invalidator.payments)
		}
	})
}

func TestDeletePaymentUseCase_Execute(t *testing.T) {
	t.Run("delete invalidates the payment caches", func(t *testing.T) {
		invalidator := &fakeInvalidator{}
		repo := &fakePaymentRepo{
			findByID: func(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
				return entity.NewPayment("STU-1", "A", entity.FeeTypeOther, decimal.NewFromInt(10), "EGP", "R-1", entity.PaymentMethodCash, time.Now(), "", uuid.Nil), nil
			},
		}
		uc := NewDeletePaymentUseCase(repo, invalidator)

		if err := uc.Execute(context.Background(), uuid.New()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if invalidator.payments != 1 {
			t.Errorf("expected 1 invalidation, got %d", invalidator.payments)
		}
	})

	t.Run("missing payment does not invalidate", func(t *testing.T) {
		invalidator := &fakeInvalidator{}

		uc := NewDeletePaymentUseCase(&fakePaymentRepo{}, invalidator)
		if err := uc.Execute(context.Background(), uuid.New()); !errors.Is(err, domainerror.ErrPaymentNotFound) {
			t.Errorf("expected ErrPaymentNotFound, got %v", err)
		}
		if invalidator.payments != 0 {
			t.Errorf("expected no invalidation, got %d", invalidator.payments)
		}
	})
}
