package store

import (
	"context"

	"github.com/oraculo-app/oraculo-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/local_storage_mock.go -package=mock

// LocalStorage is the agent-side persistence contract. It keeps three
// independent entries — the state document, the pending-sync flag and the
// most recent pre-sync backup — plus the saved session, all in one local
// SQLite database.
//
// The document methods deliberately do not return errors: the local store
// adapter absorbs its own failure modes (missing record, malformed payload,
// storage exhaustion) so the caller never has to handle storage exceptions.
type LocalStorage interface {
	// LoadDocument returns the persisted state document, falling back to a
	// default empty document when no record exists or parsing fails.
	LoadDocument(ctx context.Context) *models.StateDocument

	// SaveDocument stamps doc.UpdatedAt with the current time, persists the
	// document and reports success. A false return means local storage is
	// exhausted; a capacity warning has been logged.
	SaveDocument(ctx context.Context, doc *models.StateDocument) bool

	// AdoptDocument persists a document adopted from the remote store,
	// preserving its UpdatedAt.
	AdoptDocument(ctx context.Context, doc *models.StateDocument) bool

	// SaveBackup replaces the stored pre-sync backup.
	SaveBackup(ctx context.Context, b models.PreSyncBackup) error

	// LoadBackup returns the stored pre-sync backup, or nil when none
	// exists.
	LoadBackup(ctx context.Context) (*models.PreSyncBackup, error)

	// PendingSync reports the persisted pending-sync flag.
	PendingSync(ctx context.Context) bool

	// SetPendingSync persists the pending-sync flag.
	SetPendingSync(ctx context.Context, pending bool) error

	// SaveSession persists the authentication session.
	SaveSession(ctx context.Context, session models.Session) error

	// LoadSession returns the persisted session, or
	// ErrLocalSessionNotFound when no user is logged in on this device.
	LoadSession(ctx context.Context) (models.Session, error)

	// ClearSession removes the persisted session.
	ClearSession(ctx context.Context) error

	// Close releases the underlying database handle.
	Close() error
}
