package cache

import (
	"context"
	"errors"
	"time"

	"github.com/university-finance/backend/internal/application/adapter"
)

// Invalidator implements adapter.CacheInvalidator. It over-invalidates on
// purpose: any payment write clears every payment list page and every report,
// and any expense write does the same for expenses, so no stale aggregate can
// be served after a committed write.
type Invalidator struct {
	cache adapter.ReportCache
	now   func() time.Time
}

// NewInvalidator creates an invalidator over the given cache.
func NewInvalidator(cache adapter.ReportCache) *Invalidator {
	return &Invalidator{cache: cache, now: time.Now}
}

// InvalidatePayments clears the payment list namespace, the report namespace
// and the dashboard entries for today and yesterday.
func (i *Invalidator) InvalidatePayments(ctx context.Context) error {
	return i.sweep(ctx, PaymentsPattern)
}

// InvalidateExpenses clears the expense list namespace, the report namespace
// and the dashboard entries for today and yesterday.
func (i *Invalidator) InvalidateExpenses(ctx context.Context) error {
	return i.sweep(ctx, ExpensesPattern)
}

func (i *Invalidator) sweep(ctx context.Context, listPattern string) error {
	now := i.now()
	return errors.Join(
		i.cache.DeleteByPattern(ctx, listPattern),
		i.cache.DeleteByPattern(ctx, ReportsPattern),
		i.cache.Delete(ctx, DashboardKey(now), DashboardKey(now.AddDate(0, 0, -1))),
	)
}
