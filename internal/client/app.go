package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oraculo-app/oraculo-sync/internal/adapter"
	"github.com/oraculo-app/oraculo-sync/internal/config"
	"github.com/oraculo-app/oraculo-sync/internal/engine"
	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/internal/store"
	"github.com/oraculo-app/oraculo-sync/internal/utils"
	"github.com/oraculo-app/oraculo-sync/internal/workers"
	"github.com/oraculo-app/oraculo-sync/models"
)

// App wires the agent's components together and drives their lifecycle.
type App struct {
	cfg *config.ClientConfig

	local     store.LocalStorage
	remote    adapter.ServerAdapter
	monitor   *engine.Monitor
	resolver  *engine.Resolver
	scheduler *engine.Scheduler
	reconcile *workers.ReconcileJob
	workers   *workers.Workers

	logger *logger.Logger
}

// NewApp builds the full agent component graph from cfg. A previously saved
// session is restored into the adapter, so a device that was logged in
// before stays logged in across restarts.
func NewApp(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	local, err := store.NewLocalStorage(ctx, cfg.Storage.Local, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	monitor := engine.NewMonitor(ctx, local, log)
	estimator := engine.NewEstimator(engine.DefaultWeights())
	resolver := engine.NewResolver(estimator, local, cfg.Sync.RegressionRatio, log)

	remote, err := adapter.NewHTTPServerAdapter(cfg.Adapter, monitor, estimator, local, local, cfg.Sync.RegressionRatio, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	scheduler := engine.NewScheduler(remote, monitor, cfg.Sync.DebounceDelay, log)
	reconcileJob := workers.NewReconcileJob(local, scheduler, monitor, cfg.Sync.ReconcileInterval, log)

	app := &App{
		cfg:       cfg,
		local:     local,
		remote:    remote,
		monitor:   monitor,
		resolver:  resolver,
		scheduler: scheduler,
		reconcile: reconcileJob,
		workers:   workers.NewWorkers(reconcileJob),
		logger:    log,
	}

	// coming back online flushes whatever mutation went unsynced offline
	monitor.OnReconnect(func(ctx context.Context) {
		doc := local.LoadDocument(ctx)
		if _, err := scheduler.SyncNow(ctx, doc); err != nil {
			log.Err(err).Msg("reconnect sync failed")
		}
	})

	session, err := local.LoadSession(ctx)
	switch {
	case err == nil:
		remote.SetToken(session.Token)
		log.Debug().Int64("user_id", session.UserID).Msg("session restored")
	case errors.Is(err, store.ErrLocalSessionNotFound):
		// nobody logged in on this device yet
	default:
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return app, nil
}

// Run performs the startup reconciliation, launches the background workers
// and blocks until ctx is cancelled. On return all background work is
// stopped and the local database is closed.
func (a *App) Run(ctx context.Context) error {
	unsubscribe := a.monitor.Subscribe(func(n engine.Notification) {
		a.logger.Debug().
			Str("event", string(n.Event)).
			Time("at", n.At).
			Msg("sync state changed")
	})
	defer unsubscribe()

	a.Reconcile(ctx)

	a.workers.Run()
	defer a.reconcile.Stop()

	<-ctx.Done()

	a.scheduler.Stop()
	if err := a.local.Close(); err != nil {
		return fmt.Errorf("close local storage: %w", err)
	}

	return nil
}

// Reconcile runs one startup-style reconciliation pass: load both sides,
// resolve the conflict, and write the winner back to the losing side.
//
// A remote read failure is not fatal — the agent keeps operating on local
// data and the pending-sync machinery picks up from there.
func (a *App) Reconcile(ctx context.Context) {
	record, err := a.remote.Load(ctx)
	if err != nil {
		a.logger.Err(err).Msg("remote load failed during reconciliation")
		return
	}

	localDoc := a.local.LoadDocument(ctx)
	local := engine.Snapshot{Data: localDoc, UpdatedAt: localDoc.UpdatedAt}

	var remote engine.Snapshot
	if record != nil {
		remote = engine.Snapshot{Data: record.Data, UpdatedAt: record.UpdatedAt}
	}

	resolution := a.resolver.Resolve(ctx, local, remote)

	switch resolution.Source {
	case engine.SourceRemote:
		if !a.local.AdoptDocument(ctx, resolution.Data) {
			a.logger.Warn().Msg("could not persist adopted remote document")
		}
	case engine.SourceLocal:
		// push back only when the sides actually diverge: after a clean
		// sync the local UpdatedAt equals the server stamp
		inSync := record != nil && localDoc.UpdatedAt.Equal(record.UpdatedAt)
		if !inSync && a.remote.Token() != "" {
			if _, err := a.scheduler.SyncNow(ctx, resolution.Data); err != nil {
				a.logger.Err(err).Msg("pushing local winner failed")
			}
		}
	}
}

// Register creates an account on the server, stores the returned session
// and pushes the local document so a fresh account starts with this
// device's data.
func (a *App) Register(ctx context.Context, user models.User) error {
	if _, err := a.remote.Register(ctx, user); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	if err := a.persistSession(ctx); err != nil {
		return err
	}

	a.Reconcile(ctx)
	return nil
}

// Login authenticates against the server, stores the returned session and
// reconciles local data with whatever the account already holds.
func (a *App) Login(ctx context.Context, user models.User) error {
	if _, err := a.remote.Login(ctx, user); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := a.persistSession(ctx); err != nil {
		return err
	}

	a.Reconcile(ctx)
	return nil
}

// Logout clears the stored session. Local data stays on the device.
func (a *App) Logout(ctx context.Context) error {
	a.remote.SetToken("")
	if err := a.local.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Document returns the current local state document.
func (a *App) Document(ctx context.Context) *models.StateDocument {
	return a.local.LoadDocument(ctx)
}

// SaveDocument persists a local mutation and schedules the debounced
// remote write. Returns false when local storage is exhausted; the
// document is then not scheduled for sync either, since the local copy is
// the source of truth for remote writes.
func (a *App) SaveDocument(ctx context.Context, doc *models.StateDocument) bool {
	if !a.local.SaveDocument(ctx, doc) {
		return false
	}

	a.scheduler.ScheduleSave(ctx, doc)
	return true
}

// Status reports the current sync engine state for status indicators.
func (a *App) Status() models.SyncStatus {
	return a.scheduler.Status()
}

func (a *App) persistSession(ctx context.Context) error {
	token := a.remote.Token()
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return fmt.Errorf("parse session token: %w", err)
	}

	session := models.Session{
		UserID: userID,
		Token:  token,
		At:     time.Now(),
	}
	if err := a.local.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}
