package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lucasmonteiro/vitrine/internal/application/service"
	"github.com/lucasmonteiro/vitrine/internal/domain/i18n"
	"github.com/lucasmonteiro/vitrine/pkg/logger"
)

type redisTranslationCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisTranslationCache stores machine translations under
// "mt:<lang>:<entity>.<id>.<field>". Entries expire so stale
// translations age out even if the worker misses an event.
func NewRedisTranslationCache(rdb *redis.Client, ttl time.Duration, log logger.Logger) service.TranslationCache {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &redisTranslationCache{rdb: rdb, ttl: ttl, logger: log}
}

func cacheKey(target i18n.Language, key string) string {
	return fmt.Sprintf("mt:%s:%s", target, key)
}

func (c *redisTranslationCache) Snapshot(ctx context.Context, target i18n.Language, keys []string) (i18n.Snapshot, error) {
	if len(keys) == 0 {
		return i18n.Snapshot{}, nil
	}

	redisKeys := make([]string, len(keys))
	for i, k := range keys {
		redisKeys[i] = cacheKey(target, k)
	}

	values, err := c.rdb.MGet(ctx, redisKeys...).Result()
	if err != nil {
		return nil, fmt.Errorf("translation cache mget failed: %w", err)
	}

	snapshot := make(i18n.Snapshot, len(keys))
	for i, v := range values {
		s, ok := v.(string)
		if !ok || s == "" {
			continue
		}
		snapshot[keys[i]] = s
	}
	return snapshot, nil
}

func (c *redisTranslationCache) Store(ctx context.Context, target i18n.Language, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	pipe := c.rdb.Pipeline()
	for key, value := range entries {
		pipe.Set(ctx, cacheKey(target, key), value, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("translation cache store failed: %w", err)
	}
	return nil
}
