package engine

import (
	"context"
	"sync"
	"time"

	"github.com/oraculo-app/oraculo-sync/internal/config"
	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/models"
)

// Scheduler coalesces rapid local mutations into a single remote write and
// serializes sync attempts: at most one remote write is ever in flight or
// pending per client.
//
// Each ScheduleSave restarts the debounce timer, so a burst of N mutations
// inside the window produces exactly one remote write carrying the last
// payload. SyncNow bypasses the delay and cancels any armed timer, so no
// stale delayed write fires after an immediate sync. An in-flight write is
// never cancelled; it completes or fails naturally.
type Scheduler struct {
	remote  RemoteStore
	monitor *Monitor
	delay   time.Duration
	logger  *logger.Logger

	mu         sync.Mutex
	timer      *time.Timer
	inProgress bool
	lastSyncAt time.Time
}

// NewScheduler constructs a Scheduler pushing through remote. A delay of
// zero or less falls back to [config.DefaultDebounceDelay].
func NewScheduler(remote RemoteStore, monitor *Monitor, delay time.Duration, log *logger.Logger) *Scheduler {
	if delay <= 0 {
		delay = config.DefaultDebounceDelay
	}

	return &Scheduler{
		remote:  remote,
		monitor: monitor,
		delay:   delay,
		logger:  log,
	}
}

// ScheduleSave arms (or re-arms) the debounce timer for doc. The mutation
// is immediately marked pending so it survives a crash before the timer
// fires. ctx must outlive the debounce window; pass the application's run
// context, not a request-scoped one.
func (s *Scheduler) ScheduleSave(ctx context.Context, doc *models.StateDocument) {
	s.monitor.MarkPendingSync(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, func() {
		if _, err := s.flush(ctx, doc); err != nil {
			s.logger.Err(err).Msg("debounced sync failed")
		}
	})
}

// SyncNow cancels any armed debounce timer and pushes doc immediately.
// Returns (false, nil) when the attempt was skipped or deferred — another
// write already in flight, offline, unauthenticated, or a guard trip — and
// an error only for unexpected remote-service failures.
func (s *Scheduler) SyncNow(ctx context.Context, doc *models.StateDocument) (bool, error) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.flush(ctx, doc)
}

// Stop cancels any armed debounce timer. Used at shutdown; it does not
// interrupt an in-flight write.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Status returns a point-in-time view of the scheduler and monitor state.
func (s *Scheduler) Status() models.SyncStatus {
	s.mu.Lock()
	inProgress, lastSyncAt := s.inProgress, s.lastSyncAt
	s.mu.Unlock()

	return models.SyncStatus{
		InProgress:  inProgress,
		LastSyncAt:  lastSyncAt,
		PendingSync: s.monitor.PendingSync(),
		Online:      s.monitor.Online(),
	}
}

// flush performs one guarded remote write. The single-flight check and the
// write itself are deliberately not under one lock: the remote call can
// take seconds and ScheduleSave must stay responsive meanwhile.
func (s *Scheduler) flush(ctx context.Context, doc *models.StateDocument) (bool, error) {
	s.mu.Lock()
	if s.inProgress {
		s.mu.Unlock()
		s.logger.Debug().Msg("sync already in flight, skipping attempt")
		return false, nil
	}
	s.inProgress = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inProgress = false
		s.mu.Unlock()
	}()

	ok, err := s.remote.Save(ctx, doc)
	if err != nil {
		return false, err
	}
	if !ok {
		// retryable: the remote adapter has already marked pending-sync
		return false, nil
	}

	now := time.Now()
	s.mu.Lock()
	s.lastSyncAt = now
	s.mu.Unlock()

	s.monitor.Synced(ctx, now)
	s.logger.Debug().Time("synced_at", now).Msg("remote write completed")

	return true, nil
}
