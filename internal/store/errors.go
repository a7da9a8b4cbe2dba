package store

import "errors"

// ErrLocalSessionNotFound is returned by LoadSession when no user is
// logged in on this device.
var ErrLocalSessionNotFound = errors.New("local session not found")

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new
	// user fails because a user with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a query expected to match at
	// least one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrStateRecordNotFound is returned when a user has no state record
	// yet. This is a normal empty-state outcome for brand-new accounts,
	// not a failure.
	ErrStateRecordNotFound = errors.New("state record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
