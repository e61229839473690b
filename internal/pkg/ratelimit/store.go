package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/light-bringer/ecofinds-storefront/internal/pkg/clock"
)

// Store counts hits in fixed windows.
type Store interface {
	// Increment records a hit against key and returns the hit count of the
	// current window and when that window ends. A window opens on the first
	// hit after the previous one ended.
	Increment(ctx context.Context, key string, window time.Duration) (count int64, resetAt time.Time, err error)
}

type memoryEntry struct {
	count   int64
	resetAt time.Time
}

// MemoryStore is a process-local Store. Expired windows are swept lazily.
type MemoryStore struct {
	mu         sync.Mutex
	clock      clock.Clock
	entries    map[string]*memoryEntry
	sweepEvery time.Duration
	nextSweep  time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore.
func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock:      clk,
		entries:    make(map[string]*memoryEntry),
		sweepEvery: time.Minute,
		nextSweep:  clk.Now().Add(time.Minute),
	}
}

// Increment implements Store.
func (s *MemoryStore) Increment(_ context.Context, key string, window time.Duration) (int64, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if !now.Before(s.nextSweep) {
		s.sweep(now)
	}

	e, ok := s.entries[key]
	if !ok || !now.Before(e.resetAt) {
		e = &memoryEntry{resetAt: now.Add(window)}
		s.entries[key] = e
	}
	e.count++
	return e.count, e.resetAt, nil
}

// Len returns the number of tracked keys, including expired ones not yet swept.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) sweep(now time.Time) {
	for k, e := range s.entries {
		if !now.Before(e.resetAt) {
			delete(s.entries, k)
		}
	}
	s.nextSweep = now.Add(s.sweepEvery)
}
