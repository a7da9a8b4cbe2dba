package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/oraculo-app/oraculo-sync/models"
)

// psql is the shared statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	usersTable        = "users"
	stateRecordsTable = "state_records"
)

// buildCreateUserQuery produces the INSERT for a new user account. All
// server-assigned columns are returned so the caller receives the canonical
// database representation of the created account.
func buildCreateUserQuery(user models.User) (string, []any, error) {
	query, args, err := psql.
		Insert(usersTable).
		Columns("login", "password_hash", "name").
		Values(user.Login, user.PasswordHash, user.Name).
		Suffix("RETURNING user_id, login, password_hash, name, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserByLoginQuery produces the SELECT used during login.
func buildFindUserByLoginQuery(login string) (string, []any, error) {
	query, args, err := psql.
		Select("user_id", "login", "password_hash", "name", "created_at").
		From(usersTable).
		Where(sq.Eq{"login": login}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildGetStateQuery produces the SELECT for a user's state record.
func buildGetStateQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select("user_id", "data", "version", "updated_at").
		From(stateRecordsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertStateQuery produces the INSERT ... ON CONFLICT for saving a
// user's state record. One row per user: a conflict on user_id replaces the
// stored payload. The authoritative updated_at is returned so the server can
// echo it back to the client.
func buildUpsertStateQuery(userID int64, data []byte, version string, now time.Time) (string, []any, error) {
	query, args, err := psql.
		Insert(stateRecordsTable).
		Columns("user_id", "data", "version", "updated_at").
		Values(userID, data, version, now).
		Suffix(`ON CONFLICT (user_id) DO UPDATE
			SET data = excluded.data, version = excluded.version, updated_at = excluded.updated_at
			RETURNING updated_at`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
