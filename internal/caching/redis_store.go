package caching

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCounterStore shares fixed-window counters across service instances
// via INCR with an expiry set when the window opens.
type RedisCounterStore struct {
	client *redis.Client
}

func NewRedisCounterStore(addr, password string, db int) *RedisCounterStore {
	// Accept redis://host:port URLs as well as bare host:port.
	parsedAddr := strings.TrimPrefix(strings.TrimPrefix(addr, "rediss://"), "redis://")

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})
	return &RedisCounterStore{client: client}
}

func (s *RedisCounterStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	cacheKey := "signly:ratelimit:" + key
	count, err := s.client.Incr(ctx, cacheKey).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		s.client.Expire(ctx, cacheKey, window)
	}
	return count, nil
}

// Ping reports Redis connectivity for health checks.
func (s *RedisCounterStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
