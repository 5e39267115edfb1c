package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/university-finance/backend/internal/application/adapter"
)

// ResponseCache caches full response envelopes for read endpoints. A cache
// failure is never surfaced to the caller; reads fall through to the source
// of truth and writes are fire-and-forget.
type ResponseCache struct {
	cache adapter.ReportCache
}

// NewResponseCache creates a response-level cache over the report cache.
func NewResponseCache(cache adapter.ReportCache) *ResponseCache {
	return &ResponseCache{cache: cache}
}

// Fetch returns the cached envelope with its data payload tagged
// cached:true. ok is false on a miss, a backend failure or a corrupt entry.
func (rc *ResponseCache) Fetch(ctx context.Context, key string) (map[string]any, bool) {
	payload, err := rc.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, adapter.ErrCacheMiss) {
			slog.Warn("cache read failed, serving from source", "key", key, "error", err)
		}
		return nil, false
	}

	var envelope map[string]any
	if err := json.Unmarshal(payload, &envelope); err != nil {
		slog.Warn("discarding corrupt cache entry", "key", key, "error", err)
		return nil, false
	}
	if data, ok := envelope["data"].(map[string]any); ok {
		data["cached"] = true
	}
	return envelope, true
}

// Store serializes the envelope and caches it under key. Failures are logged
// and swallowed.
func (rc *ResponseCache) Store(ctx context.Context, key string, envelope any, ttl time.Duration) {
	payload, err := json.Marshal(envelope)
	if err != nil {
		slog.Warn("cache serialization failed", "key", key, "error", err)
		return
	}
	if err := rc.cache.Set(ctx, key, payload, ttl); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
}
