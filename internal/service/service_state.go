package service

import (
	"context"
	"fmt"
	"time"

	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/internal/store"
	"github.com/oraculo-app/oraculo-sync/models"
)

// stateService is the concrete implementation of StateService. It is a thin
// validation layer in front of the StateRepository: the document itself is
// opaque to the server, which only checks that a document is present and
// routes it to the right user's record.
type stateService struct {
	stateRepository store.StateRepository
	logger          *logger.Logger
}

// NewStateService constructs a StateService wired to the given repository.
func NewStateService(stateRepository store.StateRepository, logger *logger.Logger) StateService {
	return &stateService{
		stateRepository: stateRepository,
		logger:          logger,
	}
}

// GetState returns the state record owned by userID.
//
// Returns ErrInvalidDataProvided for a non-positive userID, or the
// repository error unchanged (store.ErrStateRecordNotFound included, so the
// transport layer can map it to 404).
func (s *stateService) GetState(ctx context.Context, userID int64) (models.RemoteRecord, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("user_id", userID).Msg("invalid user id provided")
		return models.RemoteRecord{}, ErrInvalidDataProvided
	}

	return s.stateRepository.GetState(ctx, userID)
}

// UpsertState replaces the user's state record and returns the
// server-assigned timestamp.
//
// Returns ErrInvalidDataProvided when the record has no owner or no
// document.
func (s *stateService) UpsertState(ctx context.Context, record models.RemoteRecord) (time.Time, error) {
	log := logger.FromContext(ctx)

	if record.UserID <= 0 || record.Data == nil {
		log.Error().Int64("user_id", record.UserID).Msg("invalid state record provided")
		return time.Time{}, ErrInvalidDataProvided
	}

	updatedAt, err := s.stateRepository.UpsertState(ctx, record)
	if err != nil {
		log.Err(err).Int64("user_id", record.UserID).Msg("state upsert ended with error")
		return time.Time{}, fmt.Errorf("state upsert ended with error: %w", err)
	}

	return updatedAt, nil
}
