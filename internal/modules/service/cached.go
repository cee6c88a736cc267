package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/OMAR684257931/nawy-apartments/internal/infra/cache"
)

const (
	// List results go stale quickly as units are created.
	listTTL = 5 * time.Minute
	// Single entities and reference data change rarely.
	entityTTL = 10 * time.Minute
)

// cacheGet tries the cache and unmarshals into out. A cache fault is
// treated as a miss and logged; it is never surfaced to the caller.
func cacheGet(ctx context.Context, store cache.Store, log *zap.Logger, key string, out any) bool {
	b, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Warn("cache get failed, falling back to store", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	if err := sonic.Unmarshal(b, out); err != nil {
		log.Warn("cache entry is corrupt, discarding", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// cacheSet populates the cache; happens before the response is returned
// so that a subsequent identical request sees the same bytes.
func cacheSet(ctx context.Context, store cache.Store, log *zap.Logger, key string, value any, ttl time.Duration) {
	b, err := sonic.Marshal(value)
	if err != nil {
		log.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := store.Set(ctx, key, b, ttl); err != nil {
		log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}
