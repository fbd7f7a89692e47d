package rps

import (
	"testing"

	"gamelounge/internal/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func throws(o Opponent, n int) []Move {
	out := make([]Move, n)
	for i := range out {
		out[i] = o.Choose()
	}
	return out
}

func TestCyclingOpponents(t *testing.T) {
	assert.Equal(t,
		[]Move{Rock, Paper, Scissors, Spock, Lizard, Rock},
		throws(NewHAL(), 6))
	assert.Equal(t,
		[]Move{Rock, Lizard, Spock, Scissors, Paper, Rock},
		throws(NewFemputer(), 6))
	assert.Equal(t,
		[]Move{Spock, Paper, Lizard, Scissors, Rock, Paper, Scissors, Spock, Lizard, Rock, Spock},
		throws(NewDeepBlue(), 11))
	assert.Equal(t, []Move{Rock, Rock, Rock}, throws(NewWallE(), 3))
}

func TestWeightedBagsStayInRange(t *testing.T) {
	rng := random.New(42)
	tests := []struct {
		opp     Opponent
		allowed []Move
	}{
		{NewWarbot(rng), []Move{Rock, Scissors}},
		{NewBMO(rng), []Move{Paper, Spock, Lizard}},
		{NewC3P0(rng), []Move{Paper, Scissors, Spock, Lizard}},
		{NewComputer(rng), Moves},
	}
	for _, tt := range tests {
		t.Run(tt.opp.Name(), func(t *testing.T) {
			seen := map[Move]bool{}
			for _, m := range throws(tt.opp, 500) {
				assert.Contains(t, tt.allowed, m)
				seen[m] = true
			}
			assert.Len(t, seen, len(tt.allowed), "every allowed move shows up eventually")
		})
	}
}

func TestOpponentByName(t *testing.T) {
	rng := random.New(1)
	for _, name := range []string{"hal", "HAL 9000", "Wall-E", "walle", "deep blue", "C3P0", "warbot cpa"} {
		o, err := OpponentByName(name, rng)
		require.NoError(t, err, name)
		assert.NotEmpty(t, o.Name())
	}

	o, err := OpponentByName("femputer", rng)
	require.NoError(t, err)
	assert.Equal(t, "Femputer", o.Name())

	_, err = OpponentByName("skynet", rng)
	assert.ErrorContains(t, err, "unknown opponent")
}

func TestPickOpponentIsFromRoster(t *testing.T) {
	rng := random.New(7)
	names := map[string]bool{}
	for _, key := range OpponentKeys() {
		o, err := OpponentByName(key, rng)
		require.NoError(t, err)
		names[o.Name()] = true
	}
	assert.Len(t, names, 8)
	for i := 0; i < 50; i++ {
		assert.True(t, names[PickOpponent(rng).Name()])
	}
}
