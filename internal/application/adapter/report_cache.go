// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by ReportCache.Get when no entry exists for the key.
var ErrCacheMiss = errors.New("cache miss")

// ReportCache defines the key-value cache used as a read-through layer in front
// of list and report queries. Implementations must treat the cache as a pure
// optimization: callers recover from every error by falling through to the
// source of truth.
type ReportCache interface {
	// Get retrieves the raw cached value for the key. Returns ErrCacheMiss when
	// the key does not exist or has expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the value under the key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// DeleteByPattern enumerates every key matching the glob pattern and
	// deletes them in one bulk operation.
	DeleteByPattern(ctx context.Context, pattern string) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
}

// CacheInvalidator clears every cache entry that could have been derived from
// a ledger's rows. It is called as an explicit post-commit step after each
// successful create, update, or delete; callers log and swallow failures since
// a missed invalidation only extends staleness up to the remaining TTL.
type CacheInvalidator interface {
	// InvalidatePayments clears the payments namespace, the shared report
	// namespace, and the dashboard keys for today and yesterday.
	InvalidatePayments(ctx context.Context) error

	// InvalidateExpenses clears the expenses namespace, the shared report
	// namespace, and the dashboard keys for today and yesterday.
	InvalidateExpenses(ctx context.Context) error
}
