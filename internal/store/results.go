package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is one finished round or game.
type Result struct {
	ID        string
	Game      string // blackjack, rps, tictactoe
	Outcome   string // game-specific outcome label
	Detail    string // free-form summary, e.g. "20 vs 18"
	Wager     int
	CreatedAt time.Time
}

// OutcomeCount aggregates results per game and outcome.
type OutcomeCount struct {
	Game    string
	Outcome string
	Count   int
}

// RecordResult stores r, assigning an ID and timestamp when missing.
func (s *DB) RecordResult(ctx context.Context, r Result) (Result, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO results (id, game, outcome, detail, wager, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		r.ID, r.Game, r.Outcome, r.Detail, r.Wager, r.CreatedAt)
	if err != nil {
		return Result{}, fmt.Errorf("record result: %w", err)
	}
	return r, nil
}

// RecentResults returns up to limit results, newest first. An empty game
// returns every game.
func (s *DB) RecentResults(ctx context.Context, game string, limit int) ([]Result, error) {
	query := "SELECT id, game, outcome, detail, wager, created_at FROM results"
	args := []any{}
	if game != "" {
		query += " WHERE game = ?"
		args = append(args, game)
	}
	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.Game, &r.Outcome, &r.Detail, &r.Wager, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Summary counts results per game and outcome.
func (s *DB) Summary(ctx context.Context) ([]OutcomeCount, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT game, outcome, COUNT(*) FROM results GROUP BY game, outcome ORDER BY game, outcome")
	if err != nil {
		return nil, fmt.Errorf("summarize results: %w", err)
	}
	defer rows.Close()

	var out []OutcomeCount
	for rows.Next() {
		var oc OutcomeCount
		if err := rows.Scan(&oc.Game, &oc.Outcome, &oc.Count); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		out = append(out, oc)
	}
	return out, rows.Err()
}
