package rps

import (
	"fmt"
	"strconv"

	"gamelounge/internal/ui"
)

// Scoreboard tracks decided throws. Draws are not logged.
type Scoreboard struct {
	results []Outcome
	current int
	longest int
}

// Record logs a throw.
func (s *Scoreboard) Record(o Outcome) {
	if o == Draw {
		return
	}
	s.results = append(s.results, o)
	if o == Win {
		s.current++
		s.longest = max(s.longest, s.current)
	} else {
		s.current = 0
	}
}

// PlayerWins counts throws the player won.
func (s *Scoreboard) PlayerWins() int { return s.count(Win) }

// ComputerWins counts throws the computer won.
func (s *Scoreboard) ComputerWins() int { return s.count(Lose) }

func (s *Scoreboard) count(o Outcome) int {
	n := 0
	for _, r := range s.results {
		if r == o {
			n++
		}
	}
	return n
}

// CurrentStreak is the number of player wins since the last loss.
func (s *Scoreboard) CurrentStreak() int { return s.current }

// LongestStreak is the best streak seen so far.
func (s *Scoreboard) LongestStreak() int { return s.longest }

// DefaultTarget is the score that ends a match.
const DefaultTarget = 10.0

// Round is one entry in a match log.
type Round struct {
	Number   int
	Player   Move
	Opponent Move
	Outcome  Outcome
}

// Match plays throws until one side reaches Target points. A win is worth
// one point and a draw half a point to each side. A zero Target never ends.
type Match struct {
	Target        float64
	PlayerScore   float64
	OpponentScore float64
	Rounds        []Round
}

// NewMatch starts a match to target points.
func NewMatch(target float64) *Match {
	return &Match{Target: target}
}

// Play scores one throw and appends it to the log.
func (m *Match) Play(player, opponent Move) Round {
	r := Round{
		Number:   len(m.Rounds) + 1,
		Player:   player,
		Opponent: opponent,
		Outcome:  Compare(player, opponent),
	}
	switch r.Outcome {
	case Win:
		m.PlayerScore++
	case Lose:
		m.OpponentScore++
	default:
		m.PlayerScore += 0.5
		m.OpponentScore += 0.5
	}
	m.Rounds = append(m.Rounds, r)
	return r
}

// Over reports whether either side reached the target.
func (m *Match) Over() bool {
	return m.Target > 0 && (m.PlayerScore >= m.Target || m.OpponentScore >= m.Target)
}

// Result is Win, Lose or Draw for a finished match. Both sides reaching the
// target on the same throw is a draw.
func (m *Match) Result() Outcome {
	switch {
	case m.PlayerScore == m.OpponentScore:
		return Draw
	case m.PlayerScore > m.OpponentScore:
		return Win
	}
	return Lose
}

// Summary is the closing line of a finished match.
func (m *Match) Summary(player, opponent string) string {
	target := formatPoints(m.Target)
	switch m.Result() {
	case Win:
		return fmt.Sprintf("%s was the first to reach %s points. %s won!", player, target, player)
	case Lose:
		return fmt.Sprintf("%s was the first to reach %s points. %s won!", opponent, target, opponent)
	}
	return fmt.Sprintf("Both reached %s points. It's a tie.", target)
}

// LogTable renders the round log.
func (m *Match) LogTable(player, opponent string) *ui.SimpleTable {
	t := ui.NewSimpleTable("Round log", []string{"RND", player, opponent, "Result"})
	for _, r := range m.Rounds {
		result := "Tie"
		switch r.Outcome {
		case Win:
			result = player
		case Lose:
			result = opponent
		}
		t.AddRow(strconv.Itoa(r.Number), r.Player.Title(), r.Opponent.Title(), result)
	}
	return t
}

func formatPoints(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
