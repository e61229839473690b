package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Reloader re-reads the catalog.
type Reloader interface {
	Reload(ctx context.Context) error
}

// DefaultReloadTimeout bounds a single reload.
const DefaultReloadTimeout = 2 * time.Minute

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ReloadScheduler refreshes the catalog on a cron schedule and on demand.
// Runs never overlap; a trigger arriving during a run is skipped.
type ReloadScheduler struct {
	reloader Reloader
	logger   *zap.Logger
	timeout  time.Duration
	sched    *cron.Cron

	running sync.Mutex
}

// NewReloadScheduler creates a scheduler with no schedule.
func NewReloadScheduler(reloader Reloader, logger *zap.Logger) *ReloadScheduler {
	return &ReloadScheduler{
		reloader: reloader,
		logger:   logger.Named("reload"),
		timeout:  DefaultReloadTimeout,
		sched:    cron.New(cron.WithParser(cronParser)),
	}
}

// Schedule adds a cron spec such as "@every 15m" or "0 */5 * * * *".
func (s *ReloadScheduler) Schedule(spec string) error {
	if _, err := s.sched.AddFunc(spec, func() { s.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("invalid reload schedule %q: %w", spec, err)
	}
	return nil
}

// Start runs the schedule in the background.
func (s *ReloadScheduler) Start() {
	s.sched.Start()
}

// Stop halts the schedule and waits for a running reload to finish.
func (s *ReloadScheduler) Stop() {
	<-s.sched.Stop().Done()
}

// RunOnce reloads immediately. It reports false if another reload was
// already running.
func (s *ReloadScheduler) RunOnce(ctx context.Context) bool {
	if !s.running.TryLock() {
		s.logger.Info("catalog reload already in progress, skipping")
		return false
	}
	defer s.running.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// The store logs the outcome itself.
	_ = s.reloader.Reload(ctx)
	return true
}
