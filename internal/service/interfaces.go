package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/oraculo-app/oraculo-sync/models"
)

// AuthService handles user registration, credential verification and JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// StateService handles reading and replacing a user's server-side state
// document.
type StateService interface {
	// GetState returns the user's state record, or
	// [store.ErrStateRecordNotFound] when none exists yet.
	GetState(ctx context.Context, userID int64) (models.RemoteRecord, error)

	// UpsertState replaces the user's state record and returns the
	// authoritative server-side timestamp.
	UpsertState(ctx context.Context, record models.RemoteRecord) (time.Time, error)
}
