// Package store persists finished session results in SQLite so the
// history tracker survives restarts. The engine itself never touches
// the store; the app feeds results in and loads recent history out.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open creates a Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Results returns a ResultRepo backed by this store.
func (s *Store) Results() *ResultRepo {
	return &ResultRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS session_results (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	operation   TEXT NOT NULL,
	level       INTEGER NOT NULL,
	score       INTEGER NOT NULL,
	accuracy    INTEGER NOT NULL,
	max_streak  INTEGER NOT NULL,
	total_ms    INTEGER NOT NULL,
	grade       TEXT NOT NULL,
	stars       INTEGER NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_session_results_created
	ON session_results (created_at);
CREATE INDEX IF NOT EXISTS idx_session_results_op_level
	ON session_results (operation, level);
`
	_, err := db.ExecContext(context.Background(), schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. ARITHMO_DB environment variable
// 2. $XDG_DATA_HOME/arithmo/arithmo.db
// 3. ~/.local/share/arithmo/arithmo.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ARITHMO_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "arithmo", "arithmo.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
