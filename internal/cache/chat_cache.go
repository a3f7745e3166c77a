// Package cache provides a Redis read-through layer over the chat data source.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"crossbox/gym-api/internal/domain"
	"crossbox/gym-api/internal/metrics"
	"crossbox/gym-api/internal/repository"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "chat:"

// chatCache wraps a ChatDataSource with Redis. Only successful loads are cached,
// and a Redis outage degrades to direct reads.
type chatCache struct {
	next   repository.ChatDataSource
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *zap.Logger
}

// NewChatCache returns a ChatDataSource that serves repeated reads from Redis for ttl.
func NewChatCache(next repository.ChatDataSource, rdb redis.Cmdable, ttl time.Duration, logger *zap.Logger) repository.ChatDataSource {
	return &chatCache{next: next, rdb: rdb, ttl: ttl, logger: logger}
}

func (c *chatCache) FetchActivePlans(ctx context.Context) ([]domain.Plan, error) {
	return readThrough(ctx, c, keyPrefix+"plans", c.next.FetchActivePlans)
}

func (c *chatCache) FetchDistinctClassNames(ctx context.Context, limit int) ([]string, error) {
	return readThrough(ctx, c, fmt.Sprintf("%sclasses:%d", keyPrefix, limit), func(ctx context.Context) ([]string, error) {
		return c.next.FetchDistinctClassNames(ctx, limit)
	})
}

func (c *chatCache) FetchActiveTrainers(ctx context.Context, limit int) ([]domain.Trainer, error) {
	return readThrough(ctx, c, fmt.Sprintf("%strainers:%d", keyPrefix, limit), func(ctx context.Context) ([]domain.Trainer, error) {
		return c.next.FetchActiveTrainers(ctx, limit)
	})
}

func (c *chatCache) CountActiveMembers(ctx context.Context) (int64, error) {
	return readThrough(ctx, c, keyPrefix+"members", c.next.CountActiveMembers)
}

func (c *chatCache) FetchDistinctBookingClassNames(ctx context.Context, limit int) ([]string, error) {
	return readThrough(ctx, c, fmt.Sprintf("%sbookings:%d", keyPrefix, limit), func(ctx context.Context) ([]string, error) {
		return c.next.FetchDistinctBookingClassNames(ctx, limit)
	})
}

func readThrough[T any](ctx context.Context, c *chatCache, key string, load func(context.Context) (T, error)) (T, error) {
	if val, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var out T
		if err := json.Unmarshal(val, &out); err == nil {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			return out, nil
		}
		c.logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		c.logger.Warn("Cache read failed, loading from store", zap.String("key", key), zap.Error(err))
	} else {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	out, err := load(ctx)
	if err != nil {
		return out, err
	}

	data, err := json.Marshal(out)
	if err != nil {
		c.logger.Warn("Cache encode failed", zap.String("key", key), zap.Error(err))
		return out, nil
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}
