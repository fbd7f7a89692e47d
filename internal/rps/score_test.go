package rps

import (
	"testing"

	"gamelounge/internal/ui"

	"github.com/stretchr/testify/assert"
)

func TestScoreboard(t *testing.T) {
	var s Scoreboard
	for _, o := range []Outcome{Win, Win, Draw, Win, Lose, Win, Draw} {
		s.Record(o)
	}
	assert.Equal(t, 4, s.PlayerWins())
	assert.Equal(t, 1, s.ComputerWins())
	assert.Equal(t, 1, s.CurrentStreak())
	assert.Equal(t, 3, s.LongestStreak(), "draws do not break a streak")
}

func TestLongestStreakWithoutReading(t *testing.T) {
	var s Scoreboard
	s.Record(Win)
	s.Record(Win)
	s.Record(Lose)
	assert.Equal(t, 0, s.CurrentStreak())
	assert.Equal(t, 2, s.LongestStreak())
}

func TestMatchScoring(t *testing.T) {
	m := NewMatch(2)
	assert.False(t, m.Over())

	r := m.Play(Rock, Rock)
	assert.Equal(t, Draw, r.Outcome)
	assert.Equal(t, 1, r.Number)
	assert.Equal(t, 0.5, m.PlayerScore)
	assert.Equal(t, 0.5, m.OpponentScore)

	m.Play(Paper, Rock)
	assert.False(t, m.Over())
	m.Play(Spock, Scissors)
	assert.True(t, m.Over())
	assert.Equal(t, Win, m.Result())
	assert.Equal(t, 2.5, m.PlayerScore)
	assert.Equal(t, "Ann was the first to reach 2 points. Ann won!", m.Summary("Ann", "BMO"))
}

func TestMatchTie(t *testing.T) {
	m := NewMatch(1)
	m.Play(Rock, Rock)
	m.Play(Lizard, Lizard)
	assert.True(t, m.Over())
	assert.Equal(t, Draw, m.Result())
	assert.Equal(t, "Both reached 1 points. It's a tie.", m.Summary("Ann", "BMO"))
}

func TestEndlessMatch(t *testing.T) {
	m := NewMatch(0)
	for i := 0; i < 30; i++ {
		m.Play(Rock, Scissors)
	}
	assert.False(t, m.Over())
}

func TestLogTable(t *testing.T) {
	m := NewMatch(10)
	m.Play(Rock, Scissors)
	m.Play(Rock, Paper)
	m.Play(Rock, Rock)

	out := m.LogTable("Ann", "HAL 9000").View(ui.NewStyles(ui.LightTheme()))
	assert.Contains(t, out, "RND")
	assert.Contains(t, out, "HAL 9000")
	assert.Contains(t, out, "Scissors")
	assert.Contains(t, out, "Tie")
	assert.Contains(t, out, "Ann")
}
