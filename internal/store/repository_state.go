package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/models"
)

// stateRepository is the PostgreSQL-backed implementation of
// [StateRepository]. It reads and replaces whole state documents in the
// "state_records" table, one row per user.
type stateRepository struct {
	*DB
	logger *logger.Logger
}

// NewStateRepository constructs a [StateRepository] backed by the provided
// database connection and logger.
func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	logger.Debug().Msg("creating state repository")
	return &stateRepository{
		DB:     db,
		logger: logger,
	}
}

// GetState returns the state record owned by userID.
//
// A user who has never uploaded a document gets [ErrStateRecordNotFound];
// callers translate that into an HTTP 404, which the client treats as a
// normal empty-state outcome rather than a failure.
func (s *stateRepository) GetState(ctx context.Context, userID int64) (models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetStateQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "stateRepository.GetState").
			Int64("user_id", userID).
			Msg("failed to create query")
		return models.RemoteRecord{}, err
	}

	var (
		record  models.RemoteRecord
		payload []byte
	)
	row := s.DB.QueryRowContext(ctx, query, args...)

	if scanErr := row.Scan(&record.UserID, &payload, &record.Version, &record.UpdatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.RemoteRecord{}, ErrStateRecordNotFound
		}
		log.Err(scanErr).
			Str("func", "stateRepository.GetState").
			Int64("user_id", userID).
			Msg("failed to scan state record row")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	var doc models.StateDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		log.Err(err).
			Str("func", "stateRepository.GetState").
			Int64("user_id", userID).
			Msg("failed to decode stored state document")
		return models.RemoteRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	record.Data = &doc

	return record, nil
}

// UpsertState replaces the user's state record with the given document and
// returns the server-assigned updated_at. The timestamp is authoritative:
// clients store it alongside the document so later conflict resolution
// compares server time with server time.
func (s *stateRepository) UpsertState(ctx context.Context, record models.RemoteRecord) (time.Time, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(record.Data)
	if err != nil {
		log.Err(err).
			Str("func", "stateRepository.UpsertState").
			Int64("user_id", record.UserID).
			Msg("failed to encode state document")
		return time.Time{}, fmt.Errorf("encode state document: %w", err)
	}

	query, args, err := buildUpsertStateQuery(record.UserID, payload, record.Version, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "stateRepository.UpsertState").
			Int64("user_id", record.UserID).
			Msg("failed to create query")
		return time.Time{}, err
	}

	var updatedAt time.Time
	row := s.DB.QueryRowContext(ctx, query, args...)

	if scanErr := row.Scan(&updatedAt); scanErr != nil {
		log.Err(scanErr).
			Str("func", "stateRepository.UpsertState").
			Int64("user_id", record.UserID).
			Msg("failed to execute upsert for state record")
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return updatedAt, nil
}
