package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gamelounge/internal/logging"

	"go.uber.org/zap"
)

// LoadBalance returns the stored bank balance. ok is false when nothing has
// been saved yet.
func (s *DB) LoadBalance(ctx context.Context) (balance int, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, "SELECT balance FROM bank WHERE id = 1").Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("load balance: %w", err)
	}
	return balance, true, nil
}

// SaveBalance upserts the bank balance.
func (s *DB) SaveBalance(ctx context.Context, balance int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bank (id, balance, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET balance = excluded.balance, updated_at = excluded.updated_at`,
		balance, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save balance: %w", err)
	}
	logging.Get(logging.CategoryStore).Debug("balance saved", zap.Int("balance", balance))
	return nil
}

// ClearBalance forgets the stored balance so the next cash-in starts fresh.
func (s *DB) ClearBalance(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM bank"); err != nil {
		return fmt.Errorf("clear balance: %w", err)
	}
	return nil
}
