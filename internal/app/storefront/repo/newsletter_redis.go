package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/light-bringer/ecofinds-storefront/internal/app/storefront/contracts"
)

// Redis keys used by RedisNewsletterSink.
const (
	NewsletterSubscribersKey = "newsletter:subscribers"
	NewsletterSourcesKey     = "newsletter:sources"
)

// RedisNewsletterSink stores subscriptions in Redis.
// Subscribers live in a sorted set scored by first sign-up time; the
// sign-up source is kept in a hash. Re-subscribing does not move an address.
type RedisNewsletterSink struct {
	client redis.UniversalClient
}

var _ contracts.NewsletterSink = (*RedisNewsletterSink)(nil)

// NewRedisNewsletterSink creates a RedisNewsletterSink.
func NewRedisNewsletterSink(client redis.UniversalClient) *RedisNewsletterSink {
	return &RedisNewsletterSink{client: client}
}

// Subscribe implements contracts.NewsletterSink.
func (s *RedisNewsletterSink) Subscribe(ctx context.Context, sub contracts.Subscription) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAddNX(ctx, NewsletterSubscribersKey, redis.Z{
			Score:  float64(sub.SubscribedAt.Unix()),
			Member: sub.Email,
		})
		pipe.HSetNX(ctx, NewsletterSourcesKey, sub.Email, sub.Source)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store subscription: %w", err)
	}
	return nil
}

// SubscribedAt returns when email first subscribed.
func (s *RedisNewsletterSink) SubscribedAt(ctx context.Context, email string) (time.Time, bool, error) {
	score, err := s.client.ZScore(ctx, NewsletterSubscribersKey, email).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return time.Unix(int64(score), 0).UTC(), true, nil
}
