package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"gamelounge/internal/console"
	"gamelounge/internal/logging"
	"gamelounge/internal/random"
	"gamelounge/internal/store"

	"go.uber.org/zap"
)

// Recorder stores finished games.
type Recorder interface {
	RecordResult(ctx context.Context, r store.Result) (store.Result, error)
}

// Strategy picks the AI's square.
type Strategy func(b Board) (Coord, bool)

// Options configure a Session.
type Options struct {
	Rand     *rand.Rand
	Strategy Strategy // nil uses ChooseMove
	First    Mark     // Player or AI; anything else flips a coin each game
	Recorder Recorder // optional
}

// Session plays games until the player declines a rematch.
type Session struct {
	p     *console.Prompter
	opts  Options
	board Board
	score Score
	log   *zap.Logger
}

// NewSession wires a session to a console.
func NewSession(p *console.Prompter, opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = random.Fresh()
	}
	if opts.Strategy == nil {
		rng := opts.Rand
		opts.Strategy = func(b Board) (Coord, bool) { return ChooseMove(b, rng) }
	}
	return &Session{p: p, opts: opts, log: logging.Get(logging.CategoryTicTacToe)}
}

// Score returns the running tally.
func (s *Session) Score() Score { return s.score }

// Run plays games until the player answers n to "play again?" or input
// ends.
func (s *Session) Run(ctx context.Context) error {
	for {
		result, err := s.playGame()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		s.score.Add(result)
		s.p.Println(boardView(s.p.Styles(), s.p.Width(), s.board, s.score))
		s.p.Blank(1)
		s.p.Center(result.Message())
		s.log.Info("game over", zap.Stringer("result", result), zap.String("board", s.board.String()),
			zap.String("score", scoreLine(s.score)))
		s.record(ctx, result)

		if ctx.Err() != nil {
			return nil
		}
		key, err := s.p.AskKey("play again? ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if key == "n" {
			return nil
		}
	}
}

func (s *Session) firstMover() Mark {
	switch s.opts.First {
	case Player, AI:
		return s.opts.First
	}
	if s.opts.Rand.IntN(2) == 0 {
		return AI
	}
	return Player
}

func (s *Session) playGame() (Result, error) {
	st := s.p.Styles()
	s.p.Blank(1)
	s.p.Println(st.Banner(s.p.Width(), "welcome to tic-tac-toe! use QWE-ASD-ZXC to select a starting square:"))
	s.p.Blank(1)
	s.p.Println(keyDiagram(st, s.p.Width()))
	s.p.Blank(1)

	s.board = NewBoard()
	turn := s.firstMover()
	s.log.Debug("new game", zap.Stringer("first", turn))
	for {
		s.p.Println(boardView(st, s.p.Width(), s.board, s.score))
		s.p.Blank(1)

		if turn == Player {
			if err := s.playerTurn(); err != nil {
				return InProgress, err
			}
		} else {
			if err := s.aiTurn(); err != nil {
				return InProgress, err
			}
		}

		if res := s.board.Result(); res != InProgress {
			return res, nil
		}
		if turn == Player {
			turn = AI
		} else {
			turn = Player
		}
	}
}

func (s *Session) playerTurn() error {
	for {
		line, err := s.p.Ask("")
		if err != nil {
			return err
		}
		c, err := KeyToCoord(line)
		if err != nil {
			s.p.Println("whoops, invalid input! use QWE-ASD-ZXC to select a square.")
			continue
		}
		if err := s.board.Place(c, Player); errors.Is(err, ErrOccupied) {
			s.p.Println("whoops, can't go there! pick another square using QWE-ASD-ZXC.")
			continue
		} else if err != nil {
			return err
		}
		return nil
	}
}

func (s *Session) aiTurn() error {
	timer := logging.StartTimer(logging.CategoryTicTacToe, "ai_move")
	c, ok := s.opts.Strategy(s.board)
	timer.Stop()
	if !ok {
		return nil
	}
	s.p.Pacer().Sleep(2 * console.BaseDelay)
	if err := s.board.Place(c, AI); err != nil {
		return fmt.Errorf("ai move %s: %w", c, err)
	}
	return nil
}

func (s *Session) record(ctx context.Context, r Result) {
	if s.opts.Recorder == nil {
		return
	}
	_, err := s.opts.Recorder.RecordResult(ctx, store.Result{
		Game:    "tictactoe",
		Outcome: r.String(),
		Detail:  s.board.String(),
	})
	if err != nil {
		s.log.Warn("failed to record result", zap.Error(err))
	}
}
