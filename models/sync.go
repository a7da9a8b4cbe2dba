package models

import "time"

// RemoteRecord is the server-side envelope for one user's StateDocument.
// There is at most one record per user: writes are upserts keyed by UserID,
// and UpdatedAt is stamped by the server on every write.
type RemoteRecord struct {
	// UserID is the owner of the record.
	UserID int64 `json:"-"`

	// Data is the stored application state document.
	Data *StateDocument `json:"data"`

	// Version is the schema version tag of Data at the time of the write.
	Version string `json:"version"`

	// UpdatedAt is the server-side timestamp of the last upsert.
	UpdatedAt time.Time `json:"updated_at"`
}

// BackupReason tags a PreSyncBackup with the event that produced it.
type BackupReason string

// Backup reasons written by the sync core. They match the recovery
// tooling's expectations, so the literal values are part of the contract.
const (
	// BackupBlockedOverwrite marks the remote document saved when the
	// anti-regression guard refused a remote write.
	BackupBlockedOverwrite BackupReason = "blocked-overwrite"

	// BackupPreOverwrite marks the remote document saved just before a
	// legitimate remote overwrite.
	BackupPreOverwrite BackupReason = "pre-overwrite"

	// BackupLocalOverridden marks the local document saved when conflict
	// resolution discarded it in favor of a richer remote one.
	BackupLocalOverridden BackupReason = "local-overridden-by-richer-remote"
)

// PreSyncBackup is the single most recent safety snapshot taken before a
// potentially destructive overwrite. Each backup-worthy event replaces the
// previous snapshot; the backup is never deleted automatically and exists
// purely for manual recovery, not as an undo stack.
type PreSyncBackup struct {
	// Data is the document snapshot being preserved.
	Data *StateDocument `json:"data"`

	// Reason records which event produced the snapshot.
	Reason BackupReason `json:"reason"`

	// SavedAt is when the snapshot was written.
	SavedAt time.Time `json:"saved_at"`

	// Richness is the richness score of Data at snapshot time, stored so
	// recovery tooling can rank the backup against the live document.
	Richness int `json:"richness"`
}

// SyncStatus is a point-in-time view of the sync scheduler's state,
// exposed to status indicators.
type SyncStatus struct {
	// InProgress reports whether a remote write is currently in flight.
	InProgress bool `json:"in_progress"`

	// LastSyncAt is the time of the last successful remote write, zero if
	// no sync has succeeded this session.
	LastSyncAt time.Time `json:"last_sync_at"`

	// PendingSync reports whether a local mutation still awaits a
	// successful remote write.
	PendingSync bool `json:"pending_sync"`

	// Online reports the connection monitor's cached connectivity state.
	Online bool `json:"online"`
}
