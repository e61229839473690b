// Package ratelimit implements fixed-window request limiting per client.
//
// Counting lives behind the Store interface so that several processes can
// share one window through Redis, or a single process can keep it in memory.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/light-bringer/ecofinds-storefront/internal/pkg/clock"
)

// Policy is a named request budget per window.
type Policy struct {
	Name        string
	MaxRequests int
	Window      time.Duration
}

// Preset policies.
var (
	General = Policy{Name: "general", MaxRequests: 100, Window: time.Minute}
	Strict  = Policy{Name: "strict", MaxRequests: 5, Window: 5 * time.Minute}
)

// Auth returns the policy guarding state-mutating endpoints.
func Auth(maxRequests int, window time.Duration) Policy {
	return Policy{Name: "auth", MaxRequests: maxRequests, Window: window}
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetTime time.Time
}

// RetryAfter returns the whole seconds until the window resets, at least 1.
func (d Decision) RetryAfter(now time.Time) int {
	secs := int(d.ResetTime.Sub(now).Round(time.Second) / time.Second)
	return max(secs, 1)
}

// Limiter applies a Policy using a Store.
type Limiter struct {
	store  Store
	policy Policy
	clock  clock.Clock
}

// New creates a Limiter.
func New(store Store, policy Policy, clk clock.Clock) *Limiter {
	return &Limiter{
		store:  store,
		policy: policy,
		clock:  clk,
	}
}

// Policy returns the limiter's policy.
func (l *Limiter) Policy() Policy {
	return l.policy
}

// Allow counts one request from client.
// On a store error the returned decision allows the request and the error
// is returned alongside it.
func (l *Limiter) Allow(ctx context.Context, client string) (Decision, error) {
	count, resetAt, err := l.store.Increment(ctx, l.key(client), l.policy.Window)
	if err != nil {
		return Decision{
			Allowed:   true,
			Limit:     l.policy.MaxRequests,
			Remaining: l.policy.MaxRequests,
			ResetTime: l.clock.Now().Add(l.policy.Window),
		}, fmt.Errorf("rate limit store: %w", err)
	}

	return Decision{
		Allowed:   count <= int64(l.policy.MaxRequests),
		Limit:     l.policy.MaxRequests,
		Remaining: max(l.policy.MaxRequests-int(count), 0),
		ResetTime: resetAt,
	}, nil
}

func (l *Limiter) key(client string) string {
	return "rl:" + l.policy.Name + ":" + client
}
