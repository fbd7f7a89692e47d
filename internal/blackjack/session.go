package blackjack

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"gamelounge/internal/bank"
	"gamelounge/internal/cards"
	"gamelounge/internal/console"
	"gamelounge/internal/logging"
	"gamelounge/internal/random"
	"gamelounge/internal/store"
	"gamelounge/internal/ui"

	"go.uber.org/zap"
)

// Recorder stores finished rounds.
type Recorder interface {
	RecordResult(ctx context.Context, r store.Result) (store.Result, error)
}

// Options configure a Session.
type Options struct {
	Rules     Rules
	BankRules bank.Rules
	Rand      *rand.Rand
	Recorder  Recorder // optional
	Deck      *cards.Deck
}

// Session is one sitting at the table, from cash-in to cash-out.
type Session struct {
	p     *console.Prompter
	bank  bank.Store
	opts  Options
	table *Table
	money bank.Money
	log   *zap.Logger
}

// NewSession wires a session to a console and a bank.
func NewSession(p *console.Prompter, b bank.Store, opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = random.Fresh()
	}
	if opts.BankRules == (bank.Rules{}) {
		opts.BankRules = bank.DefaultRules()
	}
	deck := opts.Deck
	if deck == nil {
		deck = cards.NewShuffledDeck(opts.Rand)
	}
	return &Session{
		p:     p,
		bank:  b,
		opts:  opts,
		table: NewTable(deck, opts.Rules),
		log:   logging.Get(logging.CategoryBlackjack),
	}
}

// Money returns the player's current bankroll.
func (s *Session) Money() bank.Money { return s.money }

// Run plays rounds until the player cashes out, runs out of money or input
// ends. The balance is saved on the way out.
func (s *Session) Run(ctx context.Context) error {
	money, err := bank.CashIn(ctx, s.bank, s.opts.BankRules)
	if err != nil {
		return err
	}
	s.money = money

	for {
		if err := ctx.Err(); err != nil {
			return s.leave(ctx, false)
		}
		if err := s.table.Deal(); err != nil {
			return err
		}
		s.log.Debug("dealt", zap.Int("player", s.table.PlayerValue()), zap.Int("deck", s.table.deck.Len()))

		cashOut, err := s.playRound(ctx)
		if errors.Is(err, io.EOF) {
			return s.leave(ctx, false)
		}
		if err != nil {
			return err
		}
		if s.money.Cash <= 0 || cashOut {
			return s.leave(ctx, true)
		}
		s.table.PrepareNextRound()
	}
}

// playRound runs the hit/stay loop. It reports whether the player asked to
// cash out.
func (s *Session) playRound(ctx context.Context) (bool, error) {
	for {
		s.p.Pacer().Sleep(console.BaseDelay)
		s.show(false)

		key, err := s.p.AskKey("type your selection: [c]ash out, [h]it, or [s]tay: ")
		if err != nil {
			return false, err
		}

		switch key {
		case "h", "1":
			if err := s.table.Hit(); err != nil {
				return false, err
			}
		case "s", "2":
			if err := s.dealerTurn(); err != nil {
				return false, err
			}
			return false, s.endOfRound(ctx)
		case "c":
			return true, nil
		}

		if s.table.AnyoneBusted() {
			return false, s.endOfRound(ctx)
		}
	}
}

func (s *Session) dealerTurn() error {
	s.show(false)
	s.p.Printf("let's see how the dealer does")
	s.p.Dots(3, 700*time.Millisecond)
	return s.table.DealerPlay(func() {
		s.show(true)
		s.p.Pacer().Sleep(time.Second)
	})
}

func (s *Session) endOfRound(ctx context.Context) error {
	outcome := s.table.Outcome()
	wager := s.money.Bet
	Settle(outcome, &s.money)

	s.show(outcome != Bust)
	s.p.Printf("%s", outcome.Message())

	s.log.Info("round settled",
		zap.String("outcome", outcome.String()),
		zap.Int("player", s.table.PlayerValue()),
		zap.Int("dealer", s.table.DealerValue()),
		zap.Int("cash", s.money.Cash))
	s.record(ctx, outcome, wager)

	if err := s.offerNewBet(outcome != Bust); err != nil {
		return err
	}
	ClampBet(&s.money)
	return nil
}

func (s *Session) offerNewBet(reveal bool) error {
	key, err := s.p.AskKey("type [b]et to change bet amount or press enter to continue: ")
	if err != nil || key != "b" {
		return err
	}
	for s.money.Cash > 0 {
		s.show(reveal)
		line, err := s.p.Ask("new bet amount: ")
		if err != nil {
			return err
		}
		bet, err := ParseBet(line, s.money)
		if err != nil {
			s.log.Debug("bet rejected", zap.Error(err))
			continue
		}
		s.money.Bet = bet
		s.show(reveal)
		return nil
	}
	return nil
}

func (s *Session) record(ctx context.Context, o Outcome, wager int) {
	if s.opts.Recorder == nil {
		return
	}
	_, err := s.opts.Recorder.RecordResult(ctx, store.Result{
		Game:    "blackjack",
		Outcome: o.String(),
		Detail:  fmt.Sprintf("%d vs %d", s.table.PlayerValue(), s.table.DealerValue()),
		Wager:   wager,
	})
	if err != nil {
		s.log.Warn("failed to record result", zap.Error(err))
	}
}

// leave saves the bankroll and, when the player walked away on purpose,
// shows the farewell screen.
func (s *Session) leave(ctx context.Context, farewell bool) error {
	if err := bank.CashOut(context.WithoutCancel(ctx), s.bank, s.money); err != nil {
		return err
	}
	if !farewell {
		return nil
	}
	s.p.Println(endScreen(s.p.Styles(), s.p.Width(), s.money))
	return s.p.Pause(ui.Center("Press enter to exit.", s.p.Width()) + "\n")
}

func (s *Session) show(reveal bool) {
	s.p.Println(screen(s.p.Styles(), s.p.Width(), s.table, s.money, reveal))
}
