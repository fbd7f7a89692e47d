package rps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"gamelounge/internal/console"
	"gamelounge/internal/logging"
	"gamelounge/internal/random"
	"gamelounge/internal/store"
	"gamelounge/internal/ui"

	"go.uber.org/zap"
)

const gameName = "Rock, Paper, Scissors, Lizard, Spock"

const movePrompt = "[r]ock, [p]aper, [sc]issors, [l]izard, [sp]ock, or [q]uit: "

// Recorder stores finished throws.
type Recorder interface {
	RecordResult(ctx context.Context, r store.Result) (store.Result, error)
}

// Options configure a Session.
type Options struct {
	Opponent   Opponent // nil picks a random personality for every match
	Target     float64  // points needed to win a match; 0 plays until quit
	PlayerName string
	Rand       *rand.Rand
	Recorder   Recorder // optional
}

// Session is a sitting at the RPS table. The scoreboard survives across
// matches.
type Session struct {
	p     *console.Prompter
	opts  Options
	board Scoreboard
	log   *zap.Logger
}

// NewSession wires a session to a console.
func NewSession(p *console.Prompter, opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = random.Fresh()
	}
	if opts.PlayerName == "" {
		opts.PlayerName = "You"
	}
	return &Session{p: p, opts: opts, log: logging.Get(logging.CategoryRPS)}
}

// Scoreboard exposes the running tally.
func (s *Session) Scoreboard() *Scoreboard { return &s.board }

// Run plays matches until the player quits or input ends.
func (s *Session) Run(ctx context.Context) error {
	s.p.Println(s.p.Styles().Banner(s.p.Width(), "Welcome to "+gameName+"!"))
	for {
		opp := s.opts.Opponent
		if opp == nil {
			opp = PickOpponent(s.opts.Rand)
		}
		match := NewMatch(s.opts.Target)
		s.log.Info("match started", zap.String("opponent", opp.Name()), zap.Float64("target", match.Target))

		if match.Target > 0 {
			s.p.Center(fmt.Sprintf("%s! %s has challenged you to a match!", s.opts.PlayerName, opp.Name()))
			s.p.Center("Get prepared.")
			s.p.Pacer().Sleep(2 * time.Second)
		}

		quit, err := s.playMatch(ctx, opp, match)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if quit {
			s.goodbye()
			return nil
		}

		s.finishMatch(opp, match)
		again, err := s.p.Choose("Would you like to play another match? (Yes or No) ", []string{"yes", "no"})
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if again != "yes" {
			s.goodbye()
			return nil
		}
	}
}

// playMatch throws until the match is decided. It reports whether the
// player quit.
func (s *Session) playMatch(ctx context.Context, opp Opponent, match *Match) (bool, error) {
	for !match.Over() {
		if ctx.Err() != nil {
			return true, nil
		}
		s.show(opp, match, "", "")

		move, quit, err := s.askMove()
		if err != nil || quit {
			return quit, err
		}
		theirs := opp.Choose()

		s.countdown(opp, match)
		round := match.Play(move, theirs)
		s.board.Record(round.Outcome)
		s.reveal(opp, match, round)
		s.record(ctx, opp, round)

		if !match.Over() {
			if err := s.p.Pause(ui.Center("press [ENTER] when ready.", s.p.Width()) + "\n"); err != nil {
				return false, err
			}
		}
	}
	return false, nil
}

// askMove prompts until the player names a move or quits.
func (s *Session) askMove() (Move, bool, error) {
	for {
		line, err := s.p.Ask(movePrompt)
		if err != nil {
			return 0, false, err
		}

		m, err := ParseMove(line)
		var ambiguous *AmbiguousMoveError
		switch {
		case err == nil:
			return m, false, nil
		case errors.Is(err, ErrQuit):
			return 0, true, nil
		case errors.As(err, &ambiguous):
			names := make([]string, len(ambiguous.Candidates))
			for i, c := range ambiguous.Candidates {
				names[i] = c.Title()
			}
			picked, err := s.p.Disambiguate(names)
			if errors.Is(err, console.ErrNoChoice) {
				continue
			}
			if err != nil {
				return 0, false, err
			}
			m, err := ParseMove(picked)
			if err != nil {
				return 0, false, err
			}
			return m, false, nil
		default:
			s.p.Center(s.p.Styles().Error.Render("invalid"))
		}
	}
}

func (s *Session) countdown(opp Opponent, match *Match) {
	for _, word := range []string{"rock...", "paper...", "scissors..."} {
		s.p.Pacer().Sleep(2 * console.BaseDelay)
		s.show(opp, match, "", "")
		s.p.Center(word)
	}
	s.p.Pacer().Sleep(2 * console.BaseDelay)
}

func (s *Session) reveal(opp Opponent, match *Match, r Round) {
	s.show(opp, match, r.Player.Title(), r.Opponent.Title())
	s.p.Center(fmt.Sprintf("%s chose %s. %s chose %s.", s.opts.PlayerName, r.Player.Title(), opp.Name(), r.Opponent.Title()))

	switch r.Outcome {
	case Win:
		s.p.Center(Verb(r.Player, r.Opponent))
		s.p.Center(s.p.Styles().Success.Render(r.Outcome.Message()))
	case Lose:
		s.p.Center(Verb(r.Opponent, r.Player))
		s.p.Center(s.p.Styles().Error.Render(r.Outcome.Message()))
	default:
		s.p.Center(s.p.Styles().Warning.Render(r.Outcome.Message()))
	}
	s.log.Debug("throw",
		zap.Int("round", r.Number),
		zap.Stringer("player", r.Player),
		zap.Stringer("opponent", r.Opponent),
		zap.Stringer("outcome", r.Outcome))
}

func (s *Session) finishMatch(opp Opponent, match *Match) {
	s.p.Println(s.p.Styles().Banner(s.p.Width(), "We have a winner!"))
	s.p.Println(match.Summary(s.opts.PlayerName, opp.Name()))
	s.p.Blank(1)
	s.p.Println(match.LogTable(s.opts.PlayerName, opp.Name()).View(s.p.Styles()))
	s.log.Info("match finished",
		zap.String("opponent", opp.Name()),
		zap.Stringer("result", match.Result()),
		zap.Int("rounds", len(match.Rounds)))
}

func (s *Session) goodbye() {
	s.p.Println(s.p.Styles().Banner(s.p.Width(), "Thanks for playing "+gameName+". Good bye!"))
}

func (s *Session) show(opp Opponent, match *Match, mine, theirs string) {
	s.p.Println(frame(s.p.Styles(), s.p.Width(), view{
		board:        &s.board,
		match:        match,
		player:       s.opts.PlayerName,
		opponent:     opp.Name(),
		playerMove:   mine,
		opponentMove: theirs,
	}))
}

func (s *Session) record(ctx context.Context, opp Opponent, r Round) {
	if s.opts.Recorder == nil {
		return
	}
	_, err := s.opts.Recorder.RecordResult(ctx, store.Result{
		Game:    "rps",
		Outcome: r.Outcome.String(),
		Detail:  fmt.Sprintf("%s vs %s (%s)", r.Player, r.Opponent, opp.Name()),
	})
	if err != nil {
		s.log.Warn("failed to record result", zap.Error(err))
	}
}
