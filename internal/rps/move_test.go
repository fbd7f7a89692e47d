package rps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareAgreesWithBeatsTable(t *testing.T) {
	for _, a := range Moves {
		for _, b := range Moves {
			got := Compare(a, b)
			switch {
			case a == b:
				assert.Equal(t, Draw, got, "%s vs %s", a, b)
			case Beats(a, b):
				assert.Equal(t, Win, got, "%s vs %s", a, b)
			default:
				assert.True(t, Beats(b, a), "%s vs %s has no winner in the table", a, b)
				assert.Equal(t, Lose, got, "%s vs %s", a, b)
			}
		}
	}
}

func TestEveryMoveBeatsTwo(t *testing.T) {
	want := map[Move][]Move{
		Rock:     {Scissors, Lizard},
		Paper:    {Spock, Rock},
		Scissors: {Lizard, Paper},
		Lizard:   {Paper, Spock},
		Spock:    {Scissors, Rock},
	}
	for winner, losers := range want {
		for _, loser := range losers {
			assert.True(t, Beats(winner, loser), "%s should beat %s", winner, loser)
			assert.Equal(t, Win, Compare(winner, loser))
			assert.Equal(t, Lose, Compare(loser, winner))
		}
	}
}

func TestVerb(t *testing.T) {
	assert.Equal(t, "Scissors cuts Paper", Verb(Scissors, Paper))
	assert.Equal(t, "Paper covers Rock", Verb(Paper, Rock))
	assert.Equal(t, "Spock vaporizes Rock", Verb(Spock, Rock))
	assert.Equal(t, "Lizard poisons Spock", Verb(Lizard, Spock))
	assert.Empty(t, Verb(Rock, Paper))
	assert.Empty(t, Verb(Rock, Rock))
}

func TestMoveNames(t *testing.T) {
	assert.Equal(t, "scissors", Scissors.String())
	assert.Equal(t, "Spock", Spock.Title())
	assert.Equal(t, "Move(9)", Move(9).String())
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"r", Rock},
		{"rock", Rock},
		{"ROCK", Rock},
		{"  pa ", Paper},
		{"sc", Scissors},
		{"scissors", Scissors},
		{"sp", Spock},
		{"l", Lizard},
		{"liz", Lizard},
		{"rocky", Rock},
		{"spocky", Spock},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMoveErrors(t *testing.T) {
	_, err := ParseMove("q")
	assert.ErrorIs(t, err, ErrQuit)
	_, err = ParseMove("Quit")
	assert.ErrorIs(t, err, ErrQuit)

	_, err = ParseMove("")
	assert.ErrorIs(t, err, ErrUnknownMove)
	_, err = ParseMove("banana")
	assert.ErrorIs(t, err, ErrUnknownMove)

	_, err = ParseMove("s")
	assert.ErrorIs(t, err, ErrAmbiguousMove)
	var amb *AmbiguousMoveError
	require.True(t, errors.As(err, &amb))
	assert.Equal(t, []Move{Scissors, Spock}, amb.Candidates)
	assert.Contains(t, amb.Error(), "scissors or spock")
}
