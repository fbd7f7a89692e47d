package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"gamelounge/internal/bank"
	"gamelounge/internal/config"
	"gamelounge/internal/console"
	"gamelounge/internal/logging"
	"gamelounge/internal/random"
	"gamelounge/internal/store"
	"gamelounge/internal/ui"

	"go.uber.org/zap"
)

// app bundles everything a game needs from the environment.
type app struct {
	cfg    *config.Config
	rng    *rand.Rand
	styles ui.Styles
	in     io.Reader
	out    io.Writer
	con    *console.Prompter
	db     *store.DB // nil when the history database could not be opened
	log    *zap.Logger
}

// newApp seeds the generator and opens the history database. A database
// failure is logged and play continues without history, unless the bank
// itself lives in SQLite.
func newApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*app, error) {
	rng, used, err := random.FromSeedOrEntropy(seed)
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:    c,
		rng:    rng,
		styles: ui.NewStyles(ui.ThemeByName(c.Display.Theme)),
		in:     in,
		out:    out,
		log:    logging.Get(logging.CategoryBoot),
	}
	a.con = console.New(in, out,
		console.WithWidth(c.Display.Width),
		console.WithStyles(a.styles),
		console.WithPacer(console.NewScaledDelay(c.GetDelay())),
	)
	a.log.Debug("seeded", zap.Uint64("seed", used))

	db, err := store.Open(ctx, c.Store.DatabasePath)
	if err != nil {
		if c.Bank.Backend == "sqlite" {
			return nil, fmt.Errorf("open bank database: %w", err)
		}
		a.log.Warn("history disabled", zap.Error(err))
	} else {
		a.db = db
	}
	return a, nil
}

func (a *app) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// prompter returns the console shared by every game in this run. Its
// scanner buffers ahead, so all line reads must go through it.
func (a *app) prompter() *console.Prompter { return a.con }

// bank returns the configured balance store.
func (a *app) bank() bank.Store {
	if a.cfg.Bank.Backend == "sqlite" && a.db != nil {
		return a.db
	}
	return bank.NewFileStore(a.cfg.Bank.Path)
}

// clearBank forgets the saved balance.
func (a *app) clearBank(ctx context.Context) error {
	if a.cfg.Bank.Backend == "sqlite" && a.db != nil {
		return a.db.ClearBalance(ctx)
	}
	return bank.NewFileStore(a.cfg.Bank.Path).Clear(ctx)
}

func (a *app) bankRules() bank.Rules {
	bj := a.cfg.Blackjack
	return bank.Rules{
		StartingCash:  bj.StartingCash,
		DefaultBet:    bj.DefaultBet,
		EmergencyCash: bj.EmergencyCash,
		EmergencyBet:  bj.EmergencyBet,
	}
}
