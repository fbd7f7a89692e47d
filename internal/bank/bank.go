// Package bank moves the blackjack bankroll in and out of persistent storage.
package bank

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gamelounge/internal/logging"

	"go.uber.org/zap"
)

// Store persists a single balance.
type Store interface {
	// LoadBalance returns the saved balance; ok is false when none exists.
	LoadBalance(ctx context.Context) (balance int, ok bool, err error)
	SaveBalance(ctx context.Context, balance int) error
}

// Rules are the money rules applied at cash-in.
type Rules struct {
	StartingCash  int
	DefaultBet    int
	EmergencyCash int
	EmergencyBet  int
}

// DefaultRules mirrors the classic table: 100 to start, bet 10, and a
// 10/2 stake for players who come back broke.
func DefaultRules() Rules {
	return Rules{
		StartingCash:  100,
		DefaultBet:    10,
		EmergencyCash: 10,
		EmergencyBet:  2,
	}
}

// Money is the player's cash and current bet.
type Money struct {
	Cash int
	Bet  int
}

// CashIn loads the player's bankroll. A missing balance starts at
// StartingCash; a balance at or below zero is replaced by emergency funds.
func CashIn(ctx context.Context, s Store, r Rules) (Money, error) {
	log := logging.Get(logging.CategoryBank)

	balance, ok, err := s.LoadBalance(ctx)
	if err != nil {
		return Money{}, fmt.Errorf("cash in: %w", err)
	}

	m := Money{Cash: r.StartingCash, Bet: r.DefaultBet}
	switch {
	case !ok:
		log.Info("no saved balance, starting fresh", zap.Int("cash", m.Cash))
	case balance <= 0:
		m = Money{Cash: r.EmergencyCash, Bet: r.EmergencyBet}
		log.Info("emergency funds granted", zap.Int("saved", balance), zap.Int("cash", m.Cash))
	default:
		m.Cash = balance
		log.Info("cashed in", zap.Int("cash", m.Cash))
	}

	if m.Bet > m.Cash {
		m.Bet = m.Cash
	}
	return m, nil
}

// CashOut saves the player's cash.
func CashOut(ctx context.Context, s Store, m Money) error {
	if err := s.SaveBalance(ctx, m.Cash); err != nil {
		return fmt.Errorf("cash out: %w", err)
	}
	logging.Get(logging.CategoryBank).Info("cashed out", zap.Int("cash", m.Cash))
	return nil
}

// FileStore keeps the balance as a single integer in a text file.
type FileStore struct {
	Path string
}

// NewFileStore returns a FileStore for path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// LoadBalance implements Store. A missing or blank file means no balance.
func (f *FileStore) LoadBalance(ctx context.Context) (int, bool, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read bank file: %w", err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return 0, false, nil
	}
	balance, err := strconv.Atoi(text)
	if err != nil {
		return 0, false, fmt.Errorf("parse bank file %s: %w", f.Path, err)
	}
	return balance, true, nil
}

// SaveBalance implements Store, truncating any previous contents.
func (f *FileStore) SaveBalance(ctx context.Context, balance int) error {
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create bank directory: %w", err)
		}
	}
	if err := os.WriteFile(f.Path, []byte(strconv.Itoa(balance)), 0644); err != nil {
		return fmt.Errorf("write bank file: %w", err)
	}
	return nil
}

// Clear removes the bank file.
func (f *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove bank file: %w", err)
	}
	return nil
}
