// Package sqlite implements store.ProgressionStore over a local SQLite
// file. One writer, single user; each Save replaces the whole record.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/otiyot/gematria/internal/domain"
	"github.com/otiyot/gematria/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS progression (
	system     TEXT PRIMARY KEY,
	state      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS review_log (
	id          TEXT PRIMARY KEY,
	system      TEXT NOT NULL REFERENCES progression(system) ON DELETE CASCADE,
	card_id     TEXT NOT NULL,
	quality     INTEGER NOT NULL,
	reviewed_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_review_log_system ON review_log(system);
`

// Store is the SQLite-backed progression store.
type Store struct {
	db *sqlx.DB
}

var _ store.ProgressionStore = (*Store)(nil)

// Open connects to the database file at path, creating the parent
// directory and the schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.init(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection, applying the schema. Used by tests
// with an in-memory database.
func New(db *sqlx.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return store.NewStoreError("progression", "init", "creating schema", err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get retrieves the record for a system.
func (s *Store) Get(ctx context.Context, system domain.System) (*domain.ProgressionState, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw,
		"SELECT state FROM progression WHERE system = ?", string(system))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrProgressionNotFound
	}
	if err != nil {
		return nil, store.NewStoreError("progression", "get", "querying record", err)
	}

	var state domain.ProgressionState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, store.NewStoreError("progression", "get", "decoding record", err)
	}
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	return &state, nil
}

// Save writes the record, creating or replacing it, and mirrors review
// events into the append-only log.
func (s *Store) Save(ctx context.Context, state *domain.ProgressionState) error {
	if state == nil {
		return fmt.Errorf("%w: nil progression state", store.ErrInvalidEntity)
	}
	if err := state.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return store.NewStoreError("progression", "save", "encoding record", err)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return store.NewStoreError("progression", "save", "beginning transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO progression (system, state, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(system) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		string(state.System), string(raw), time.Now().UTC())
	if err != nil {
		return store.NewStoreError("progression", "save", "writing record", err)
	}

	for _, event := range state.ReviewLog {
		_, err = tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO review_log (id, system, card_id, quality, reviewed_at)
			VALUES (?, ?, ?, ?, ?)`,
			event.ID.String(), string(state.System), event.CardID, int(event.Quality), event.Timestamp.UTC())
		if err != nil {
			return store.NewStoreError("review_log", "save", "appending event", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return store.NewStoreError("progression", "save", "committing", err)
	}
	return nil
}

// Delete removes a system's record; review events go with it via the
// cascading foreign key.
func (s *Store) Delete(ctx context.Context, system domain.System) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM progression WHERE system = ?", string(system))
	if err != nil {
		return store.NewStoreError("progression", "delete", "deleting record", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return store.NewStoreError("progression", "delete", "checking result", err)
	}
	if affected == 0 {
		return store.ErrProgressionNotFound
	}
	return nil
}

type reviewRow struct {
	ID         string    `db:"id"`
	System     string    `db:"system"`
	CardID     string    `db:"card_id"`
	Quality    int       `db:"quality"`
	ReviewedAt time.Time `db:"reviewed_at"`
}

// ReviewLog returns the persisted review events for a system in
// insertion order.
func (s *Store) ReviewLog(ctx context.Context, system domain.System) ([]domain.ReviewEvent, error) {
	var rows []reviewRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, system, card_id, quality, reviewed_at
		FROM review_log WHERE system = ? ORDER BY rowid`, string(system))
	if err != nil {
		return nil, store.NewStoreError("review_log", "get", "querying events", err)
	}

	events := make([]domain.ReviewEvent, 0, len(rows))
	for _, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, store.NewStoreError("review_log", "get", "decoding event id", err)
		}
		events = append(events, domain.ReviewEvent{
			ID:        id,
			CardID:    row.CardID,
			Quality:   domain.ReviewQuality(row.Quality),
			Timestamp: row.ReviewedAt,
		})
	}
	return events, nil
}
