package kv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	portsrepo "github.com/costbook/costbook_app/internal/core/ports/repositories"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the embedded persistent store: one kv_entries table of
// JSON text values in a local SQLite database. Access is read-modify-write
// with a single local writer, so no locking beyond SQLite's own is needed.
type SQLiteStore struct {
	db *sql.DB
}

// Ensure implementation matches the port.
var _ portsrepo.KVStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if necessary) the database at dbPath and
// runs schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the JSON value stored under key into dest. An absent key or
// a value that no longer parses is reported as not found; dest is left
// untouched. No schema versioning exists, so malformed equals absent.
func (s *SQLiteStore) Load(ctx context.Context, key string, dest any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load key %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		slog.Warn("Malformed stored value treated as absent",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return false, nil
	}
	return true, nil
}

// Save marshals value and writes it under key, replacing any previous
// value.
func (s *SQLiteStore) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for key %s: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;
	`, key, string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save key %s: %w", key, err)
	}
	return nil
}
