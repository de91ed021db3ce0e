package redis

import (
	"context"
)

// Load, Store, Invalidate and InvalidatePrefix adapt the provider to crud.Cache.
// Redis errors are logged and reported as misses so reads fall through to the database.

func (r *RedisProvider) Load(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil || len(data) == 0 {
		return nil, false
	}
	return data, true
}

func (r *RedisProvider) Store(ctx context.Context, key string, data []byte) {
	if err := r.SetWithDefaultTTL(ctx, key, data, 0).Err(); err != nil {
		r.logger.Warnw("Failed to store cache entry", "key", key, "error", err)
	}
}

func (r *RedisProvider) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := r.Client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warnw("Failed to delete cache keys", "error", err, "keys", keys)
	}
}

func (r *RedisProvider) InvalidatePrefix(ctx context.Context, prefix string) {
	pattern := prefix + "*"
	var cursor uint64
	deletedCount := 0

	for {
		keys, cur, err := r.Client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			r.logger.Warnw("Redis scan failed during cache invalidation", "error", err, "pattern", pattern)
			return
		}

		if len(keys) > 0 {
			n, err := r.Client.Del(ctx, keys...).Result()
			if err != nil {
				r.logger.Warnw("Failed to delete cache keys", "error", err, "keys", keys)
			} else {
				deletedCount += int(n)
			}
		}

		if cur == 0 {
			break
		}
		cursor = cur
	}

	if deletedCount > 0 {
		r.logger.Debugw("Cache invalidated", "pattern", pattern, "deleted_keys", deletedCount)
	}
}
