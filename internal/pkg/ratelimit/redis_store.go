package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/light-bringer/ecofinds-storefront/internal/pkg/clock"
)

// RedisStore keeps windows in Redis as expiring counters, so every process
// sharing the Redis instance shares the same budget.
type RedisStore struct {
	client redis.UniversalClient
	clock  clock.Clock
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a RedisStore.
func NewRedisStore(client redis.UniversalClient, clk clock.Clock) *RedisStore {
	return &RedisStore{
		client: client,
		clock:  clk,
	}
}

// Increment implements Store.
// A counter without a TTL gets one, so a key never outlives its window even
// if a previous caller failed between INCR and PEXPIRE.
func (s *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pttl = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}

	ttl := pttl.Val()
	if ttl < 0 {
		if err := s.client.PExpire(ctx, key, window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		ttl = window
	}

	return incr.Val(), s.clock.Now().Add(ttl), nil
}
