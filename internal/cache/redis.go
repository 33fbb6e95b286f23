package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopbench/storefront-api/internal/logger"
)

// Cache is the small read-through surface the analytics service uses. A miss
// is ("", nil); only transport failures error.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Key(operation, variant string) string
}

type redisCache struct {
	client      *redis.Client
	serviceName string
	log         *logger.Logger
}

func NewRedisCache(addr, serviceName string, baseLog *logger.Logger) Cache {
	cacheLog := baseLog.With("cache", "RedisCache")
	return &redisCache{
		client:      redis.NewClient(&redis.Options{Addr: addr}),
		serviceName: serviceName,
		log:         cacheLog,
	}
}

func (r *redisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCache) Key(operation, variant string) string {
	return fmt.Sprintf("%s:%s:%s", r.serviceName, operation, variant)
}
