// Package store persists the lounge's bank balance and game history in a
// single SQLite database (pure-Go modernc driver).
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gamelounge/internal/logging"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DB manages the lounge database.
type DB struct {
	db     *sql.DB
	dbPath string
	mu     sync.Mutex
}

// Open creates or opens the database at path. ":memory:" opens a private
// in-memory database.
func Open(ctx context.Context, path string) (*DB, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	s := &DB{db: db, dbPath: path}
	if err := s.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	if err := s.runMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logging.Get(logging.CategoryStore).Debug("database opened", zap.String("path", path))
	return s, nil
}

// Close closes the database connection.
func (s *DB) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *DB) Path() string {
	return s.dbPath
}

// initSchema creates the database schema.
func (s *DB) initSchema(ctx context.Context) error {
	schema := `
	-- Single-row bank balance
	CREATE TABLE IF NOT EXISTS bank (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		balance INTEGER NOT NULL,
		updated_at DATETIME NOT NULL
	);

	-- Finished rounds/games
	CREATE TABLE IF NOT EXISTS results (
		id TEXT PRIMARY KEY,
		game TEXT NOT NULL,
		outcome TEXT NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_results_game ON results(game);
	CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}
