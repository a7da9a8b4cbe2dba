package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/oraculo-app/oraculo-sync/internal/engine"
	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/models"
	"github.com/stretchr/testify/require"
)

type memFlags struct {
	mu      sync.Mutex
	pending bool
}

func (f *memFlags) PendingSync(context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending
}

func (f *memFlags) SetPendingSync(_ context.Context, pending bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pending = pending
	return nil
}

type countingRemote struct {
	mu    sync.Mutex
	saves int
	ok    bool
}

func (r *countingRemote) Load(context.Context) (*models.RemoteRecord, error) { return nil, nil }

func (r *countingRemote) Save(context.Context, *models.StateDocument) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	return r.ok, nil
}

func (r *countingRemote) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

type fixedDocs struct {
	doc *models.StateDocument
}

func (d *fixedDocs) LoadDocument(context.Context) *models.StateDocument        { return d.doc }
func (d *fixedDocs) SaveDocument(context.Context, *models.StateDocument) bool  { return true }
func (d *fixedDocs) AdoptDocument(context.Context, *models.StateDocument) bool { return true }

func newTestJob(t *testing.T, remote *countingRemote, pending bool) *ReconcileJob {
	t.Helper()

	ctx := context.Background()
	flags := &memFlags{pending: pending}
	monitor := engine.NewMonitor(ctx, flags, logger.Nop())
	scheduler := engine.NewScheduler(remote, monitor, time.Hour, logger.Nop())
	docs := &fixedDocs{doc: models.NewDefaultDocument()}

	return NewReconcileJob(docs, scheduler, monitor, 10*time.Millisecond, logger.Nop())
}

// TestReconcileJob_RetriesWhilePending verifies that a persisted pending
// flag is enough to make the job push the document, even with no further
// local mutations.
func TestReconcileJob_RetriesWhilePending(t *testing.T) {
	remote := &countingRemote{ok: true}
	job := newTestJob(t, remote, true)

	job.Start(context.Background())
	defer job.Stop()

	require.Eventually(t, func() bool { return remote.saveCount() >= 1 },
		time.Second, 5*time.Millisecond)
}

func TestReconcileJob_IdleWithoutPending(t *testing.T) {
	remote := &countingRemote{ok: true}
	job := newTestJob(t, remote, false)

	job.Start(context.Background())
	defer job.Stop()

	time.Sleep(50 * time.Millisecond)
	require.Zero(t, remote.saveCount())
}

// TestReconcileJob_StopsCleanly verifies Stop blocks until the goroutine is
// gone and that a stopped job schedules nothing further.
func TestReconcileJob_StopsCleanly(t *testing.T) {
	remote := &countingRemote{ok: false} // retryable failure keeps pending set
	job := newTestJob(t, remote, true)

	job.Start(context.Background())
	require.Eventually(t, func() bool { return remote.saveCount() >= 1 },
		time.Second, 5*time.Millisecond)

	job.Stop()
	count := remote.saveCount()

	time.Sleep(50 * time.Millisecond)
	require.Equal(t, count, remote.saveCount())
}

func TestReconcileJob_StopWithoutStartIsNoop(t *testing.T) {
	job := newTestJob(t, &countingRemote{}, false)
	job.Stop()
}

// TestReconcileJob_RunsThroughWorkersAggregate verifies the job is a
// Worker and ticks when launched via the Workers aggregate.
func TestReconcileJob_RunsThroughWorkersAggregate(t *testing.T) {
	remote := &countingRemote{ok: true}
	job := newTestJob(t, remote, true)

	NewWorkers(job).Run()
	defer job.Stop()

	require.Eventually(t, func() bool { return remote.saveCount() >= 1 },
		time.Second, 5*time.Millisecond)
}
