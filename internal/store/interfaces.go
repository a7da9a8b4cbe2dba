package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/oraculo-app/oraculo-sync/models"
)

// UserRepository manages user accounts on the server.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// StateRepository manages per-user state records on the server. Each user
// owns exactly one record holding the full application state document.
type StateRepository interface {
	// GetState returns the user's state record, or [ErrStateRecordNotFound]
	// if the user has never uploaded one.
	GetState(ctx context.Context, userID int64) (models.RemoteRecord, error)

	// UpsertState replaces the user's state record and returns the
	// authoritative server-side updated_at timestamp.
	UpsertState(ctx context.Context, record models.RemoteRecord) (time.Time, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
