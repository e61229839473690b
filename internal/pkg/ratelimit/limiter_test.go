package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/ecofinds-storefront/internal/pkg/clock"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type failingStore struct{ err error }

func (s failingStore) Increment(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, s.err
}

func TestLimiter_AllowsUpToMax(t *testing.T) {
	clk := clock.NewMockClock(epoch)
	l := New(NewMemoryStore(clk), Policy{Name: "test", MaxRequests: 3, Window: time.Minute}, clk)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		d, err := l.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, d.Allowed, "request %d", i)
		assert.Equal(t, 3-i, d.Remaining)
		assert.Equal(t, 3, d.Limit)
		assert.Equal(t, epoch.Add(time.Minute), d.ResetTime)
	}

	d, err := l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
}

func TestLimiter_WindowResets(t *testing.T) {
	clk := clock.NewMockClock(epoch)
	l := New(NewMemoryStore(clk), Policy{Name: "test", MaxRequests: 1, Window: time.Minute}, clk)
	ctx := context.Background()

	d, _ := l.Allow(ctx, "client")
	assert.True(t, d.Allowed)
	d, _ = l.Allow(ctx, "client")
	assert.False(t, d.Allowed)

	clk.Advance(time.Minute)

	d, err := l.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, epoch.Add(2*time.Minute), d.ResetTime)
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	clk := clock.NewMockClock(epoch)
	l := New(NewMemoryStore(clk), Policy{Name: "test", MaxRequests: 1, Window: time.Minute}, clk)
	ctx := context.Background()

	d, _ := l.Allow(ctx, "a")
	assert.True(t, d.Allowed)
	d, _ = l.Allow(ctx, "b")
	assert.True(t, d.Allowed)
}

func TestLimiter_PoliciesDoNotShareCounters(t *testing.T) {
	clk := clock.NewMockClock(epoch)
	store := NewMemoryStore(clk)
	strict := New(store, Policy{Name: "strict", MaxRequests: 1, Window: time.Minute}, clk)
	general := New(store, Policy{Name: "general", MaxRequests: 1, Window: time.Minute}, clk)
	ctx := context.Background()

	d, _ := strict.Allow(ctx, "client")
	assert.True(t, d.Allowed)
	d, _ = general.Allow(ctx, "client")
	assert.True(t, d.Allowed)
}

func TestLimiter_StoreFailureAllows(t *testing.T) {
	clk := clock.NewMockClock(epoch)
	storeErr := errors.New("connection refused")
	l := New(failingStore{err: storeErr}, General, clk)

	d, err := l.Allow(context.Background(), "client")
	require.ErrorIs(t, err, storeErr)
	assert.True(t, d.Allowed)
	assert.Equal(t, General.MaxRequests, d.Remaining)
}

func TestDecision_RetryAfter(t *testing.T) {
	d := Decision{ResetTime: epoch.Add(90 * time.Second)}
	assert.Equal(t, 90, d.RetryAfter(epoch))
	assert.Equal(t, 1, d.RetryAfter(epoch.Add(2*time.Minute)))
}

func TestAuthPolicy(t *testing.T) {
	p := Auth(10, 10*time.Minute)
	assert.Equal(t, "auth", p.Name)
	assert.Equal(t, 10, p.MaxRequests)
	assert.Equal(t, 10*time.Minute, p.Window)
}
