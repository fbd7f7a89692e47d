package main

import (
	"context"
	"fmt"

	"gamelounge/internal/blackjack"
	"gamelounge/internal/logging"
	"gamelounge/internal/rps"
	"gamelounge/internal/tictactoe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	rpsOpponent string
	rpsTarget   float64
)

var blackjackCmd = &cobra.Command{
	Use:     "blackjack",
	Aliases: []string{"21"},
	Short:   "Play 21 against the dealer",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, playBlackjack)
	},
}

var rpsCmd = &cobra.Command{
	Use:     "rps",
	Aliases: []string{"rpsls"},
	Short:   "Play Rock, Paper, Scissors, Lizard, Spock",
	Long: `Play Rock, Paper, Scissors, Lizard, Spock against a computer personality.

Opponents: computer, hal, femputer, deepblue, warbot, bmo, walle, c3p0.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, playRPS)
	},
}

var tictactoeCmd = &cobra.Command{
	Use:     "tictactoe",
	Aliases: []string{"ttt"},
	Short:   "Play Tic-Tac-Toe against the computer",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, playTicTacToe)
	},
}

// withApp builds the app on the command's streams and closes it after fn.
func withApp(cmd *cobra.Command, fn func(context.Context, *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func playBlackjack(ctx context.Context, a *app) error {
	opts := blackjack.Options{
		Rules:     blackjack.Rules{DealerStand: a.cfg.Blackjack.DealerStand},
		BankRules: a.bankRules(),
		Rand:      a.rng,
	}
	if a.db != nil {
		opts.Recorder = a.db
	}
	s := blackjack.NewSession(a.prompter(), a.bank(), opts)
	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("blackjack: %w", err)
	}
	logging.Get(logging.CategoryBlackjack).Info("left the table", zap.Int("cash", s.Money().Cash))
	return nil
}

func playRPS(ctx context.Context, a *app) error {
	opts := rps.Options{
		Target: a.cfg.RPS.TargetScore,
		Rand:   a.rng,
	}
	if rpsTarget >= 0 {
		opts.Target = rpsTarget
	}
	name := a.cfg.RPS.Opponent
	if rpsOpponent != "" {
		name = rpsOpponent
	}
	if name != "" {
		opp, err := rps.OpponentByName(name, a.rng)
		if err != nil {
			return err
		}
		opts.Opponent = opp
	}
	if a.db != nil {
		opts.Recorder = a.db
	}
	s := rps.NewSession(a.prompter(), opts)
	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("rps: %w", err)
	}
	board := s.Scoreboard()
	logging.Get(logging.CategoryRPS).Info("session over",
		zap.Int("wins", board.PlayerWins()),
		zap.Int("losses", board.ComputerWins()),
		zap.Int("longest_streak", board.LongestStreak()))
	return nil
}

func playTicTacToe(ctx context.Context, a *app) error {
	opts := tictactoe.Options{Rand: a.rng}
	if a.db != nil {
		opts.Recorder = a.db
	}
	s := tictactoe.NewSession(a.prompter(), opts)
	if err := s.Run(ctx); err != nil {
		return fmt.Errorf("tictactoe: %w", err)
	}
	score := s.Score()
	logging.Get(logging.CategoryTicTacToe).Info("session over",
		zap.Float64("player", score.Player),
		zap.Float64("ai", score.AI))
	return nil
}
