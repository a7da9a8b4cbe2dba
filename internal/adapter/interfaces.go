// Package adapter provides transport-layer abstractions for communicating
// with the Oráculo sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// runtime from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) whose Load and Save methods satisfy
// the sync engine's RemoteStore contract: retryable connectivity failures are
// absorbed (reported through the connection monitor and the pending-sync
// flag) rather than surfaced as errors.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/oraculo-app/oraculo-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the Oráculo
// sync server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login, or after restoring a session.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server with the provided
	// user credentials. On success it stores the returned bearer token via
	// SetToken. Returns an error if the request fails or the server responds
	// with a non-2xx status.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken. Returns an error if the request
	// fails or the server responds with a non-2xx status.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Load fetches the user's state record from the server.
	//
	// A missing record (HTTP 404) and a missing session are both reported as
	// (nil, nil): the user simply has nothing on the server yet. Transport
	// failures flip the connection monitor offline and are also reported as
	// (nil, nil) so that callers fall back to local data. Only unexpected
	// server responses produce an error.
	Load(ctx context.Context) (*models.RemoteRecord, error)

	// Save pushes the document to the server after a read-before-write
	// guard: an overwrite that would replace a much richer remote document
	// is refused, the refused remote copy is preserved as a backup, and Save
	// reports false.
	//
	// Returns (true, nil) on a confirmed write, (false, nil) when the write
	// was refused or must be retried later (offline, unauthorized), and a
	// non-nil error only for unexpected server responses.
	Save(ctx context.Context, doc *models.StateDocument) (bool, error)
}
