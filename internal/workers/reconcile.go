package workers

import (
	"context"
	"sync"
	"time"

	"github.com/oraculo-app/oraculo-sync/internal/config"
	"github.com/oraculo-app/oraculo-sync/internal/engine"
	"github.com/oraculo-app/oraculo-sync/internal/logger"
)

// ReconcileJob periodically retries a pending remote write. The debounced
// scheduler covers the common case (a mutation followed by connectivity);
// this job covers the long tail: the process that went offline mid-session
// and stayed up, waiting for the network to come back without any further
// local mutations to re-trigger a save.
type ReconcileJob struct {
	docs      engine.DocumentStore
	scheduler *engine.Scheduler
	monitor   *engine.Monitor
	interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewReconcileJob creates a ReconcileJob that pushes the current local
// document through the scheduler whenever a sync is still pending. The job
// is idle until Start is called. A non-positive interval defaults to
// [config.DefaultReconcileInterval].
func NewReconcileJob(docs engine.DocumentStore, scheduler *engine.Scheduler, monitor *engine.Monitor, interval time.Duration, log *logger.Logger) *ReconcileJob {
	if interval <= 0 {
		interval = config.DefaultReconcileInterval
	}
	return &ReconcileJob{
		docs:      docs,
		scheduler: scheduler,
		monitor:   monitor,
		interval:  interval,
		logger:    log,
	}
}

var _ Worker = (*ReconcileJob)(nil)

// Run implements Worker. The job runs under a background context and is
// terminated through Stop, so aggregating it in [Workers] does not block.
func (j *ReconcileJob) Run() {
	j.Start(context.Background())
}

// Start stops any previously running job, then launches a background
// goroutine that checks the pending-sync flag every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *ReconcileJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the job is not running
// (no-op in that case).
func (j *ReconcileJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *ReconcileJob) tick(ctx context.Context) {
	if !j.monitor.PendingSync() {
		return
	}

	doc := j.docs.LoadDocument(ctx)
	synced, err := j.scheduler.SyncNow(ctx, doc)
	if err != nil {
		j.logger.Err(err).Msg("periodic reconcile failed")
		return
	}
	if synced {
		j.logger.Debug().Msg("periodic reconcile pushed pending document")
	}
}
