package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oraculo-app/oraculo-sync/internal/config"
	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/models"
)

type fakeRemote struct {
	mu    sync.Mutex
	saves []*models.StateDocument
	ok    bool
	err   error
	// when non-nil, Save blocks until the channel is closed
	block chan struct{}
}

func (f *fakeRemote) Load(context.Context) (*models.RemoteRecord, error) {
	return nil, nil
}

func (f *fakeRemote) Save(_ context.Context, doc *models.StateDocument) (bool, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, doc)
	return f.ok, f.err
}

func (f *fakeRemote) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saves)
}

func newTestScheduler(t *testing.T, remote *fakeRemote, delay time.Duration) (*Scheduler, *Monitor) {
	t.Helper()
	monitor := NewMonitor(context.Background(), &stubFlags{}, logger.Nop())
	s := NewScheduler(remote, monitor, delay, logger.Nop())
	t.Cleanup(s.Stop)
	return s, monitor
}

func TestScheduler_NonPositiveDelayFallsBackToConfigDefault(t *testing.T) {
	s, _ := newTestScheduler(t, &fakeRemote{ok: true}, 0)
	require.Equal(t, config.DefaultDebounceDelay, s.delay)

	s, _ = newTestScheduler(t, &fakeRemote{ok: true}, -time.Second)
	require.Equal(t, config.DefaultDebounceDelay, s.delay)
}

func TestScheduler_DebounceCoalescesRapidSaves(t *testing.T) {
	remote := &fakeRemote{ok: true}
	s, _ := newTestScheduler(t, remote, 30*time.Millisecond)
	ctx := context.Background()

	var last *models.StateDocument
	for i := 0; i < 5; i++ {
		last = models.NewDefaultDocument()
		s.ScheduleSave(ctx, last)
	}

	require.Eventually(t, func() bool { return remote.saveCount() == 1 },
		time.Second, 5*time.Millisecond)

	// allow any stray timer to fire before asserting the total
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, 1, remote.saveCount(), "N rapid saves must coalesce into one write")
	assert.Same(t, last, remote.saves[0], "the write must carry the last payload")
}

func TestScheduler_SyncNowCancelsPendingTimer(t *testing.T) {
	remote := &fakeRemote{ok: true}
	s, _ := newTestScheduler(t, remote, 30*time.Millisecond)
	ctx := context.Background()

	s.ScheduleSave(ctx, models.NewDefaultDocument())

	doc := models.NewDefaultDocument()
	ok, err := s.SyncNow(ctx, doc)
	require.NoError(t, err)
	require.True(t, ok)

	// the debounced write must not fire after the immediate sync
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, 1, remote.saveCount())
	assert.Same(t, doc, remote.saves[0])
}

func TestScheduler_SingleFlight(t *testing.T) {
	remote := &fakeRemote{ok: true, block: make(chan struct{})}
	s, _ := newTestScheduler(t, remote, time.Minute)
	ctx := context.Background()

	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		_, _ = s.SyncNow(ctx, models.NewDefaultDocument())
	}()

	require.Eventually(t, func() bool { return s.Status().InProgress },
		time.Second, time.Millisecond)

	// a second attempt while one is in flight is a no-op
	ok, err := s.SyncNow(ctx, models.NewDefaultDocument())
	require.NoError(t, err)
	assert.False(t, ok)

	close(remote.block)
	<-firstDone

	assert.Equal(t, 1, remote.saveCount())
}

func TestScheduler_SuccessClearsPendingAndEmitsSynced(t *testing.T) {
	remote := &fakeRemote{ok: true}
	s, monitor := newTestScheduler(t, remote, time.Minute)
	ctx := context.Background()

	var mu sync.Mutex
	var events []Event
	monitor.Subscribe(func(n Notification) {
		mu.Lock()
		events = append(events, n.Event)
		mu.Unlock()
	})

	s.ScheduleSave(ctx, models.NewDefaultDocument()) // marks pending
	require.True(t, monitor.PendingSync())

	ok, err := s.SyncNow(ctx, models.NewDefaultDocument())
	require.NoError(t, err)
	require.True(t, ok)

	assert.False(t, monitor.PendingSync())
	assert.False(t, s.Status().LastSyncAt.IsZero())

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, events, EventSynced)
}

func TestScheduler_RetryableFailureKeepsPending(t *testing.T) {
	remote := &fakeRemote{ok: false} // deferred: offline or guard trip
	s, monitor := newTestScheduler(t, remote, time.Minute)
	ctx := context.Background()

	s.ScheduleSave(ctx, models.NewDefaultDocument())
	ok, err := s.SyncNow(ctx, models.NewDefaultDocument())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, monitor.PendingSync(), "pending clears only on a successful write")
	assert.True(t, s.Status().LastSyncAt.IsZero())
}

func TestScheduler_UnexpectedErrorPropagates(t *testing.T) {
	remote := &fakeRemote{err: assert.AnError}
	s, _ := newTestScheduler(t, remote, time.Minute)

	_, err := s.SyncNow(context.Background(), models.NewDefaultDocument())
	require.ErrorIs(t, err, assert.AnError)
}

func TestScheduler_OfflineMidDebounceRetriesOnReconnect(t *testing.T) {
	// going offline mid-debounce, then reconnecting: exactly one remote
	// write happens after reconnect, carrying the latest saved document,
	// and the pending flag clears only on that write's success.
	remote := &fakeRemote{ok: false}
	s, monitor := newTestScheduler(t, remote, 20*time.Millisecond)
	ctx := context.Background()

	latest := models.NewDefaultDocument()
	monitor.OnReconnect(func(ctx context.Context) {
		_, _ = s.SyncNow(ctx, latest)
	})

	monitor.SetOnline(ctx, false)
	s.ScheduleSave(ctx, latest)

	// the debounced attempt fires while offline and is deferred
	require.Eventually(t, func() bool { return remote.saveCount() == 1 },
		time.Second, 5*time.Millisecond)
	require.True(t, monitor.PendingSync())

	remote.mu.Lock()
	remote.ok = true
	remote.mu.Unlock()

	monitor.SetOnline(ctx, true)

	require.Eventually(t, func() bool { return remote.saveCount() == 2 },
		time.Second, 5*time.Millisecond)
	assert.Same(t, latest, remote.saves[1])
	assert.False(t, monitor.PendingSync())
}
