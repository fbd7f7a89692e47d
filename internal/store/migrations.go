package store

import (
	"context"
	"fmt"

	"gamelounge/internal/logging"

	"go.uber.org/zap"
)

// Migration adds a column that older databases lack.
type Migration struct {
	Table  string
	Column string
	Def    string
}

// pendingMigrations lists columns added after the first release.
var pendingMigrations = []Migration{
	// Blackjack wager recorded alongside the outcome
	{"results", "wager", "INTEGER NOT NULL DEFAULT 0"},
}

// runMigrations applies any missing columns.
func (s *DB) runMigrations(ctx context.Context) error {
	log := logging.Get(logging.CategoryStore)
	for _, m := range pendingMigrations {
		exists, err := s.columnExists(ctx, m.Table, m.Column)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", m.Table, m.Column, m.Def)
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %s.%s: %w", m.Table, m.Column, err)
		}
		log.Info("migration applied", zap.String("table", m.Table), zap.String("column", m.Column))
	}
	return nil
}

// columnExists checks PRAGMA table_info for column.
func (s *DB) columnExists(ctx context.Context, table, column string) (bool, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, fmt.Errorf("table_info(%s): %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var cid, notnull, pk int
		var name, ctype string
		var dflt any
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}
