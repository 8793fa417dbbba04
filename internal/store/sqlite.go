// ABOUTME: SQLite implementation of the Store interface using modernc.org/sqlite
// ABOUTME: Provides session/snapshot persistence with automatic schema creation

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite store at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "store")

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating state directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite store initialized", "path", path)
	return s, nil
}

// createSchema creates the state tables if they don't exist
func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS session (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS snapshots (
			entity TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			fetched_at DATETIME NOT NULL
		);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}
	return nil
}

// SaveSession replaces the persisted session fields in a single transaction.
func (s *SQLiteStore) SaveSession(ctx context.Context, fields map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM session"); err != nil {
		return fmt.Errorf("clearing previous session: %w", err)
	}

	for key, value := range fields {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO session (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("inserting session field %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing session: %w", err)
	}
	return nil
}

// LoadSession returns the persisted session fields.
func (s *SQLiteStore) LoadSession(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT key, value FROM session")
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}
	defer rows.Close()

	fields := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning session field: %w", err)
		}
		fields[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session fields: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrNotFound
	}
	return fields, nil
}

// ClearSession removes all persisted session fields.
func (s *SQLiteStore) ClearSession(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM session"); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// SaveSnapshot stores the serialized collection for an entity.
func (s *SQLiteStore) SaveSnapshot(ctx context.Context, entity string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (entity, data, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(entity) DO UPDATE SET data = excluded.data, fetched_at = excluded.fetched_at`,
		entity, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving snapshot %q: %w", entity, err)
	}
	return nil
}

// LoadSnapshot returns the stored snapshot for an entity.
func (s *SQLiteStore) LoadSnapshot(ctx context.Context, entity string) (*Snapshot, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT data, fetched_at FROM snapshots WHERE entity = ?", entity)

	snap := &Snapshot{Entity: entity}
	if err := row.Scan(&snap.Data, &snap.FetchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading snapshot %q: %w", entity, err)
	}
	return snap, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
