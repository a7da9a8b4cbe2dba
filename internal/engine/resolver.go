package engine

import (
	"context"
	"time"

	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/models"
)

// Source identifies which side of a conflict supplied the winning document.
type Source string

const (
	// SourceLocal means the local document was kept.
	SourceLocal Source = "local"
	// SourceRemote means the remote document was adopted.
	SourceRemote Source = "remote"
)

// Snapshot pairs a document with its last-modified timestamp. For the local
// side the timestamp is the document's own UpdatedAt; for the remote side it
// is the server-managed record timestamp.
type Snapshot struct {
	Data      *models.StateDocument
	UpdatedAt time.Time
}

// Resolution is the outcome of a conflict: the winning document and where
// it came from.
type Resolution struct {
	Source Source
	Data   *models.StateDocument
}

// Resolver decides which of two document snapshots survives a
// reconciliation. The decision order is fixed:
//
//  1. Bootstrap: an empty local document never beats a non-empty remote one
//     (first login on a new device, cleared local storage).
//  2. Anti-regression: a local document much poorer than the remote one
//     loses regardless of timestamps; the discarded local document is
//     backed up first so the user can recover it manually.
//  3. Last-write-wins: the strictly later timestamp wins; ties favor local.
//
// Resolve never mutates its inputs; its only side effect is the rule-2
// backup write.
type Resolver struct {
	estimator *Estimator
	backups   BackupStore
	ratio     float64
	logger    *logger.Logger
}

// NewResolver constructs a Resolver. ratio is the anti-regression
// threshold; values outside (0, 1] fall back to 0.5.
func NewResolver(estimator *Estimator, backups BackupStore, ratio float64, log *logger.Logger) *Resolver {
	if ratio <= 0 || ratio > 1 {
		ratio = 0.5
	}

	return &Resolver{
		estimator: estimator,
		backups:   backups,
		ratio:     ratio,
		logger:    log,
	}
}

// Resolve applies the decision rules to the local and remote snapshots. A
// side with a nil document forfeits automatically.
func (r *Resolver) Resolve(ctx context.Context, local, remote Snapshot) Resolution {
	if remote.Data == nil {
		return Resolution{Source: SourceLocal, Data: local.Data}
	}
	if local.Data == nil {
		return Resolution{Source: SourceRemote, Data: remote.Data}
	}

	localScore := r.estimator.Score(local.Data)
	remoteScore := r.estimator.Score(remote.Data)

	// bootstrap: fires before any timestamp comparison
	if localScore == 0 && remoteScore > 0 {
		r.logger.Info().
			Int("remote_score", remoteScore).
			Msg("empty local document, adopting remote")
		return Resolution{Source: SourceRemote, Data: remote.Data}
	}

	// anti-regression: a much poorer local document must not win on recency
	if remoteScore > 0 && float64(localScore) < float64(remoteScore)*r.ratio {
		backup := models.PreSyncBackup{
			Data:     local.Data.Clone(),
			Reason:   models.BackupLocalOverridden,
			SavedAt:  time.Now().UTC(),
			Richness: localScore,
		}
		if err := r.backups.SaveBackup(ctx, backup); err != nil {
			r.logger.Err(err).Msg("failed to back up overridden local document")
		}

		r.logger.Warn().
			Int("local_score", localScore).
			Int("remote_score", remoteScore).
			Float64("ratio", r.ratio).
			Msg("local document much poorer than remote, adopting remote")
		return Resolution{Source: SourceRemote, Data: remote.Data}
	}

	// last-write-wins, ties favor local
	if remote.UpdatedAt.After(local.UpdatedAt) {
		return Resolution{Source: SourceRemote, Data: remote.Data}
	}

	return Resolution{Source: SourceLocal, Data: local.Data}
}
