package store

import (
	"context"

	"github.com/oraculo-app/oraculo-sync/internal/config"
	"github.com/oraculo-app/oraculo-sync/internal/logger"
)

// Storages bundles the server-side repositories behind a single
// construction point.
type Storages struct {
	UserRepository  UserRepository
	StateRepository StateRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// up the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		return nil, err
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		StateRepository: NewStateRepository(db, log),
	}, nil
}
