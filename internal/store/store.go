package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// openDB is swapped in tests.
var openDB = sql.Open

// Store holds the SQLite handle backing the LLM event log.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := openDB("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS llm_request_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at    TEXT    NOT NULL,
			session_id    TEXT    NOT NULL DEFAULT '',
			provider      TEXT    NOT NULL,
			model         TEXT    NOT NULL,
			purpose       TEXT    NOT NULL,
			input_tokens  INTEGER NOT NULL DEFAULT 0,
			output_tokens INTEGER NOT NULL DEFAULT 0,
			latency_ms    INTEGER NOT NULL DEFAULT 0,
			success       INTEGER NOT NULL,
			reached       INTEGER NOT NULL,
			status_code   INTEGER NOT NULL DEFAULT 0,
			error_message TEXT    NOT NULL DEFAULT '',
			request_body  TEXT    NOT NULL DEFAULT '',
			response_body TEXT    NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_llm_events_purpose ON llm_request_events(purpose);
		CREATE INDEX IF NOT EXISTS idx_llm_events_created ON llm_request_events(created_at DESC);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create llm_request_events: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for single-user use.
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

// ResolveDBPath returns the event log path from flagValue, then the YAYI_DB
// environment variable. The log is opt-in, so ok is false when neither is set.
func ResolveDBPath(flagValue string) (path string, ok bool, err error) {
	path = flagValue
	if path == "" {
		path = os.Getenv("YAYI_DB")
	}
	if path == "" {
		return "", false, nil
	}
	if err := EnsureDir(path); err != nil {
		return "", false, fmt.Errorf("create database directory: %w", err)
	}
	return path, true, nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
