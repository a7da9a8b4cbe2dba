package engine

import (
	"context"

	"github.com/oraculo-app/oraculo-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// DocumentStore is the local store adapter contract. Implementations absorb
// their own failures: loading falls back to a default empty document and
// saving reports storage exhaustion as false instead of an error, so the UI
// layer never has to handle storage exceptions.
type DocumentStore interface {
	// LoadDocument returns the persisted state document, or a default
	// empty-but-well-formed document when no record exists or the stored
	// payload cannot be parsed. Never returns nil.
	LoadDocument(ctx context.Context) *models.StateDocument

	// SaveDocument stamps doc.UpdatedAt with the current time and persists
	// the document. Returns false when the write failed because local
	// storage is exhausted.
	SaveDocument(ctx context.Context, doc *models.StateDocument) bool

	// AdoptDocument persists a document that arrived from the remote store
	// during reconciliation. Unlike SaveDocument it preserves the
	// document's UpdatedAt — adoption is not a local mutation.
	AdoptDocument(ctx context.Context, doc *models.StateDocument) bool
}

// BackupStore persists the single most recent pre-sync backup. Each write
// replaces the previous snapshot.
type BackupStore interface {
	// SaveBackup replaces the stored backup with b.
	SaveBackup(ctx context.Context, b models.PreSyncBackup) error

	// LoadBackup returns the stored backup, or nil when none exists.
	LoadBackup(ctx context.Context) (*models.PreSyncBackup, error)
}

// FlagStore persists the pending-sync flag across process restarts, so a
// sync attempt interrupted by going offline is retried on the next start.
type FlagStore interface {
	// PendingSync reports the persisted flag value.
	PendingSync(ctx context.Context) bool

	// SetPendingSync persists the flag value.
	SetPendingSync(ctx context.Context, pending bool) error
}

// RemoteStore is the remote store adapter contract.
type RemoteStore interface {
	// Load returns the user's remote record. A nil record with a nil error
	// means "nothing to merge": the user is unauthenticated, the client is
	// offline, or no remote record exists yet. Only genuinely unexpected
	// remote-service failures are returned as errors.
	Load(ctx context.Context) (*models.RemoteRecord, error)

	// Save pushes doc to the remote store behind the anti-regression
	// read-before-write guard. Returns (false, nil) for every retryable
	// condition (offline, unauthenticated, transport failure, guard trip);
	// retryable failures mark the pending-sync flag so a reconnect retries
	// automatically. Unexpected remote-service errors are returned.
	Save(ctx context.Context, doc *models.StateDocument) (bool, error)
}
