package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"fmt"
	"servicehub/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

// RedisCache holds short lived counters. Booking and payment state is never cached.
type RedisCache interface {
	Increment(ctx context.Context, key string, duration int) (count int64, err error)
	Delete(ctx context.Context, key string) error
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// traced runs fn inside a span tagged with the key and records its error.
func (cache *redisCache) traced(ctx context.Context, operation, key string, fn func(ctx context.Context) error) error {
	ctx, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+"."+operation)
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	err := fn(ctx)
	scope.TraceIfError(err)

	return err
}

func (cache *redisCache) Delete(ctx context.Context, key string) error {
	return cache.traced(ctx, "Delete", key, func(ctx context.Context) error {
		if err := cache.client.Del(ctx, key).Err(); err != nil {
			log.Error().Err(err).Str("key", key).Msg("cache delete failed")

			return fmt.Errorf("failed to delete cache value: %w", err)
		}

		return nil
	})
}

// Increment bumps a counter. INCR and EXPIRE NX run in one MULTI block, so the window is fixed
// from the first hit and a counter never outlives it.
func (cache *redisCache) Increment(ctx context.Context, key string, duration int) (count int64, err error) {
	err = cache.traced(ctx, "Increment", key, func(ctx context.Context) error {
		var incr *redis.IntCmd

		_, err := cache.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, time.Duration(duration)*time.Second)

			return nil
		})
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("cache increment failed")

			return fmt.Errorf("failed to increment cache value: %w", err)
		}

		count = incr.Val()

		return nil
	})

	return count, err
}
