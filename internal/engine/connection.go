package engine

import (
	"context"
	"sync"
	"time"

	"github.com/oraculo-app/oraculo-sync/internal/logger"
)

// Event is a connection-monitor notification kind.
type Event string

const (
	// EventOnline fires on an Offline→Online transition.
	EventOnline Event = "online"
	// EventOffline fires on an Online→Offline transition.
	EventOffline Event = "offline"
	// EventPending fires when a local mutation starts awaiting a remote
	// write.
	EventPending Event = "pending"
	// EventSynced fires after a successful remote write.
	EventSynced Event = "synced"
)

// Notification is the payload delivered to subscribers.
type Notification struct {
	Event Event
	At    time.Time
}

// Monitor tracks the Online/Offline connection state and the persisted
// pending-sync flag, and fans notifications out to subscribers. Fan-out
// carries no ordering guarantee between subscribers.
//
// The monitor does not probe the network: SetOnline is fed by whatever
// connectivity signal the platform provides (or by the remote adapter
// observing a transport failure) and that signal is treated as ground
// truth.
type Monitor struct {
	flags  FlagStore
	logger *logger.Logger

	mu        sync.Mutex
	online    bool
	pending   bool
	reconcile func(context.Context)
	subs      map[int64]func(Notification)
	nextSub   int64
}

// NewMonitor constructs a Monitor. The pending flag is restored from the
// flag store so a pending sync survives a process restart; connectivity
// starts optimistic (online) until a signal says otherwise.
func NewMonitor(ctx context.Context, flags FlagStore, log *logger.Logger) *Monitor {
	return &Monitor{
		flags:   flags,
		logger:  log,
		online:  true,
		pending: flags.PendingSync(ctx),
		subs:    make(map[int64]func(Notification)),
	}
}

// Subscribe registers fn for all notifications and returns its unsubscribe
// handle. Handlers run on the goroutine that triggered the transition.
func (m *Monitor) Subscribe(fn func(Notification)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// OnReconnect registers the reconciliation callback invoked on an
// Offline→Online transition while the pending-sync flag is set.
func (m *Monitor) OnReconnect(fn func(context.Context)) {
	m.mu.Lock()
	m.reconcile = fn
	m.mu.Unlock()
}

// Online reports the cached connectivity state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// PendingSync reports whether a local mutation still awaits a successful
// remote write.
func (m *Monitor) PendingSync() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

// SetOnline records a connectivity transition. An Offline→Online
// transition with the pending flag set invokes the reconciliation callback
// exactly once per transition.
func (m *Monitor) SetOnline(ctx context.Context, online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	runReconcile := online && m.pending
	reconcile := m.reconcile
	m.mu.Unlock()

	event := EventOffline
	if online {
		event = EventOnline
	}
	m.logger.Info().Bool("online", online).Msg("connection state changed")
	m.notify(Notification{Event: event, At: time.Now()})

	if runReconcile && reconcile != nil {
		reconcile(ctx)
	}
}

// MarkPendingSync sets and persists the pending flag. Idempotent: marking
// an already-pending monitor emits no duplicate notification.
func (m *Monitor) MarkPendingSync(ctx context.Context) {
	m.mu.Lock()
	if m.pending {
		m.mu.Unlock()
		return
	}
	m.pending = true
	m.mu.Unlock()

	if err := m.flags.SetPendingSync(ctx, true); err != nil {
		m.logger.Err(err).Msg("failed to persist pending-sync flag")
	}
	m.notify(Notification{Event: EventPending, At: time.Now()})
}

// ClearPendingSync clears and persists the pending flag. Idempotent.
func (m *Monitor) ClearPendingSync(ctx context.Context) {
	m.mu.Lock()
	if !m.pending {
		m.mu.Unlock()
		return
	}
	m.pending = false
	m.mu.Unlock()

	if err := m.flags.SetPendingSync(ctx, false); err != nil {
		m.logger.Err(err).Msg("failed to persist pending-sync flag")
	}
}

// Synced clears the pending flag and notifies subscribers that a remote
// write succeeded at the given time.
func (m *Monitor) Synced(ctx context.Context, at time.Time) {
	m.ClearPendingSync(ctx)
	m.notify(Notification{Event: EventSynced, At: at})
}

func (m *Monitor) notify(n Notification) {
	m.mu.Lock()
	handlers := make([]func(Notification), 0, len(m.subs))
	for _, fn := range m.subs {
		handlers = append(handlers, fn)
	}
	m.mu.Unlock()

	for _, fn := range handlers {
		fn(n)
	}
}
