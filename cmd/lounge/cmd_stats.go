package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gamelounge/internal/ui"

	"github.com/spf13/cobra"
)

var statsLimit int

var games = []string{"blackjack", "rps", "tictactoe"}

var statsCmd = &cobra.Command{
	Use:       "stats [game]",
	Short:     "Show result history",
	Long:      "Show outcome totals and the most recent results, optionally for one game (blackjack, rps, tictactoe).",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: games,
	RunE: func(cmd *cobra.Command, args []string) error {
		game := ""
		if len(args) == 1 {
			game = args[0]
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			return showStats(ctx, a, game)
		})
	},
}

func showStats(ctx context.Context, a *app, game string) error {
	if a.db == nil {
		return errors.New("history database unavailable")
	}

	counts, err := a.db.Summary(ctx)
	if err != nil {
		return err
	}
	totals := ui.NewSimpleTable("Totals", []string{"Game", "Outcome", "Count"})
	for _, c := range counts {
		if game != "" && c.Game != game {
			continue
		}
		totals.AddRow(c.Game, c.Outcome, strconv.Itoa(c.Count))
	}

	recent, err := a.db.RecentResults(ctx, game, statsLimit)
	if err != nil {
		return err
	}
	history := ui.NewSimpleTable("Recent", []string{"When", "Game", "Outcome", "Detail", "Wager"})
	for _, r := range recent {
		wager := ""
		if r.Wager > 0 {
			wager = strconv.Itoa(r.Wager)
		}
		history.AddRow(r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Game, r.Outcome, r.Detail, wager)
	}

	if len(totals.Rows) == 0 {
		fmt.Fprintln(a.out, "No games recorded yet.")
		return nil
	}
	fmt.Fprintln(a.out, totals.View(a.styles))
	fmt.Fprintln(a.out, history.View(a.styles))
	return nil
}
