package rps

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"gamelounge/internal/console"
	"gamelounge/internal/random"
	"gamelounge/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRecorder struct {
	results []store.Result
}

func (m *memRecorder) RecordResult(_ context.Context, r store.Result) (store.Result, error) {
	m.results = append(m.results, r)
	return r, nil
}

func play(t *testing.T, input string, opts Options) (*Session, *memRecorder, string) {
	t.Helper()
	var out bytes.Buffer
	rec := &memRecorder{}
	opts.Recorder = rec
	if opts.Rand == nil {
		opts.Rand = random.New(9)
	}
	s := NewSession(console.New(strings.NewReader(input), &out), opts)
	require.NoError(t, s.Run(context.Background()))
	return s, rec, out.String()
}

func TestSessionEndlessQuit(t *testing.T) {
	s, rec, out := play(t, "paper\n\nq\n", Options{Opponent: NewWallE()})

	assert.Contains(t, out, "welcome to RPS(LS)!")
	assert.Contains(t, out, "rock...")
	assert.Contains(t, out, "scissors...")
	assert.Contains(t, out, "You chose Paper. Wall-E chose Rock.")
	assert.Contains(t, out, "Paper covers Rock")
	assert.Contains(t, out, "you win!")
	assert.Contains(t, out, "Good bye!")
	assert.NotContains(t, out, "challenged you")

	assert.Equal(t, 1, s.Scoreboard().PlayerWins())
	require.Len(t, rec.results, 1)
	assert.Equal(t, "rps", rec.results[0].Game)
	assert.Equal(t, "win", rec.results[0].Outcome)
	assert.Equal(t, "paper vs rock (Wall-E)", rec.results[0].Detail)
}

func TestSessionInvalidAndLossAndDraw(t *testing.T) {
	s, _, out := play(t, "banana\nsc\n\nr\n\nq\n", Options{Opponent: NewWallE()})

	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "Rock crushes Scissors")
	assert.Contains(t, out, "you lost...")
	assert.Contains(t, out, "draw!")
	assert.Equal(t, 1, s.Scoreboard().ComputerWins())
	assert.Equal(t, 0, s.Scoreboard().PlayerWins())
}

func TestSessionDisambiguates(t *testing.T) {
	s, _, out := play(t, "s\n3\ns\n2\n\nq\n", Options{Opponent: NewWallE()})

	assert.Contains(t, out, "Did you mean? (1-3)")
	assert.Contains(t, out, "1 Scissors")
	assert.Contains(t, out, "2 Spock")
	assert.Contains(t, out, "Spock vaporizes Rock")
	assert.Equal(t, 1, s.Scoreboard().PlayerWins())
}

func TestSessionMatchToTarget(t *testing.T) {
	_, rec, out := play(t, "p\n\np\nno\n", Options{Opponent: NewWallE(), Target: 2, PlayerName: "Ann"})

	assert.Contains(t, out, "Ann! Wall-E has challenged you to a match!")
	assert.Contains(t, out, "Round 2; Ann: 1 | Wall-E: 0 | Win = 2")
	assert.Contains(t, out, "We have a winner!")
	assert.Contains(t, out, "Ann was the first to reach 2 points. Ann won!")
	assert.Contains(t, out, "Round log")
	assert.Contains(t, out, "Would you like to play another match?")
	assert.Contains(t, out, "Good bye!")
	assert.Len(t, rec.results, 2)
}

func TestSessionSecondMatchKeepsScoreboard(t *testing.T) {
	s, _, out := play(t, "p\ny\nl\nq\n", Options{Opponent: NewWallE(), Target: 1})

	assert.Equal(t, 2, strings.Count(out, "has challenged you to a match!"))
	assert.Equal(t, 1, s.Scoreboard().PlayerWins())
	assert.Equal(t, 1, s.Scoreboard().ComputerWins())
}

func TestSessionRandomOpponentPerMatch(t *testing.T) {
	_, _, out := play(t, "q\n", Options{Target: 10, Rand: random.New(3)})
	assert.Contains(t, out, "has challenged you to a match!")
}

func TestSessionEOF(t *testing.T) {
	s, rec, out := play(t, "rock\n", Options{Opponent: NewHAL()})
	assert.Contains(t, out, "You chose Rock. HAL 9000 chose Rock.")
	assert.NotContains(t, out, "Good bye!")
	assert.Zero(t, s.Scoreboard().PlayerWins())
	require.Len(t, rec.results, 1)
	assert.Equal(t, "draw", rec.results[0].Outcome)
}
