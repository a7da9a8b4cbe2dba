package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/oraculo-app/oraculo-sync/internal/config"
	"github.com/oraculo-app/oraculo-sync/internal/logger"
	"github.com/oraculo-app/oraculo-sync/models"
)

// Entry names inside the local key-value table. The document, the pending
// flag and the backup are three independent entries on purpose: losing or
// corrupting one must not take the others with it.
const (
	entryDocument    = "document"
	entryBackup      = "backup"
	entryPendingSync = "pending_sync"
	entrySession     = "session"
)

const createLocalSchema = `CREATE TABLE IF NOT EXISTS app_state (
	name     TEXT PRIMARY KEY,
	payload  TEXT NOT NULL,
	saved_at TIMESTAMP NOT NULL
);`

type localSQLiteStorage struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewLocalStorage opens (creating if needed) the agent's SQLite database at
// cfg.Path and ensures the schema exists. An empty path opens an in-memory
// database, which is only useful for tests.
func NewLocalStorage(ctx context.Context, cfg config.Local, log *logger.Logger) (LocalStorage, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				log.Err(err).Str("func", "NewLocalStorage").Msg("error creating local storage dir")
				return nil, fmt.Errorf("create local storage dir: %w", err)
			}
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewLocalStorage").Msg("error opening local database")
		return nil, fmt.Errorf("open local database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewLocalStorage").Msg("error connecting local database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createLocalSchema); err != nil {
		log.Err(err).Str("func", "NewLocalStorage").Msg("error creating local schema")
		return nil, fmt.Errorf("create local schema: %w", err)
	}

	log.Debug().Str("path", path).Msg("local storage ready")

	return &localSQLiteStorage{db: conn, logger: log}, nil
}

func (s *localSQLiteStorage) LoadDocument(ctx context.Context) *models.StateDocument {
	payload, found, err := s.get(ctx, entryDocument)
	if err != nil {
		s.logger.Err(err).Msg("error reading local document, using default")
		return models.NewDefaultDocument()
	}
	if !found {
		return models.NewDefaultDocument()
	}

	var doc models.StateDocument
	if err = json.Unmarshal([]byte(payload), &doc); err != nil {
		s.logger.Err(err).Msg("malformed local document, using default")
		return models.NewDefaultDocument()
	}

	return &doc
}

func (s *localSQLiteStorage) SaveDocument(ctx context.Context, doc *models.StateDocument) bool {
	doc.UpdatedAt = time.Now().UTC()
	return s.persistDocument(ctx, doc)
}

func (s *localSQLiteStorage) AdoptDocument(ctx context.Context, doc *models.StateDocument) bool {
	// no timestamp stamping: adopting a remote document is not a local
	// mutation and must not make it look newer than it is
	return s.persistDocument(ctx, doc)
}

func (s *localSQLiteStorage) persistDocument(ctx context.Context, doc *models.StateDocument) bool {
	payload, err := json.Marshal(doc)
	if err != nil {
		s.logger.Err(err).Msg("error encoding local document")
		return false
	}

	if err = s.upsert(ctx, entryDocument, string(payload)); err != nil {
		if isQuotaExceeded(err) {
			s.logger.Warn().Err(err).Msg("local storage capacity exceeded, document not saved")
		} else {
			s.logger.Err(err).Msg("error writing local document")
		}
		return false
	}

	return true
}

func (s *localSQLiteStorage) SaveBackup(ctx context.Context, b models.PreSyncBackup) error {
	payload, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encode pre-sync backup: %w", err)
	}

	if err = s.upsert(ctx, entryBackup, string(payload)); err != nil {
		return fmt.Errorf("write pre-sync backup: %w", err)
	}

	s.logger.Info().
		Str("reason", string(b.Reason)).
		Int("richness", b.Richness).
		Msg("pre-sync backup saved")

	return nil
}

func (s *localSQLiteStorage) LoadBackup(ctx context.Context) (*models.PreSyncBackup, error) {
	payload, found, err := s.get(ctx, entryBackup)
	if err != nil {
		return nil, fmt.Errorf("read pre-sync backup: %w", err)
	}
	if !found {
		return nil, nil
	}

	var b models.PreSyncBackup
	if err = json.Unmarshal([]byte(payload), &b); err != nil {
		return nil, fmt.Errorf("decode pre-sync backup: %w", err)
	}

	return &b, nil
}

func (s *localSQLiteStorage) PendingSync(ctx context.Context) bool {
	payload, found, err := s.get(ctx, entryPendingSync)
	if err != nil {
		s.logger.Err(err).Msg("error reading pending-sync flag")
		return false
	}

	return found && payload == "1"
}

func (s *localSQLiteStorage) SetPendingSync(ctx context.Context, pending bool) error {
	value := "0"
	if pending {
		value = "1"
	}

	if err := s.upsert(ctx, entryPendingSync, value); err != nil {
		return fmt.Errorf("write pending-sync flag: %w", err)
	}

	return nil
}

func (s *localSQLiteStorage) SaveSession(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = s.upsert(ctx, entrySession, string(payload)); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	return nil
}

func (s *localSQLiteStorage) LoadSession(ctx context.Context) (models.Session, error) {
	payload, found, err := s.get(ctx, entrySession)
	if err != nil {
		return models.Session{}, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return models.Session{}, ErrLocalSessionNotFound
	}

	var session models.Session
	if err = json.Unmarshal([]byte(payload), &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session: %w", err)
	}

	return session, nil
}

func (s *localSQLiteStorage) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE name = ?`, entrySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *localSQLiteStorage) Close() error {
	return s.db.Close()
}

func (s *localSQLiteStorage) upsert(ctx context.Context, name, payload string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO app_state (name, payload, saved_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			payload = excluded.payload,
			saved_at = excluded.saved_at`,
		name, payload, time.Now().UTC())
	return err
}

func (s *localSQLiteStorage) get(ctx context.Context, name string) (payload string, found bool, err error) {
	err = s.db.QueryRowContext(ctx,
		`SELECT payload FROM app_state WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return payload, true, nil
}

// isQuotaExceeded reports whether err is SQLite's disk-full condition.
func isQuotaExceeded(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrFull
}
