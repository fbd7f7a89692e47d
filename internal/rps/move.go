// Package rps implements Rock-Paper-Scissors-Lizard-Spock: the move
// engine, the computer personalities, scoring and the console session.
package rps

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Move is one of the five throws. The order is significant: Compare relies
// on it.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
	Spock
	Lizard
)

// Moves lists every throw in comparison order.
var Moves = []Move{Rock, Paper, Scissors, Spock, Lizard}

var moveNames = [...]string{"rock", "paper", "scissors", "spock", "lizard"}

// codes are the short inputs accepted at the prompt.
var codes = map[string]Move{
	"r":  Rock,
	"p":  Paper,
	"sc": Scissors,
	"sp": Spock,
	"l":  Lizard,
}

var titleCaser = cases.Title(language.English)

// String returns the lower-case name.
func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return moveNames[m]
}

// Title returns the display name, e.g. "Scissors".
func (m Move) Title() string {
	return titleCaser.String(m.String())
}

// Outcome is a result from the first player's point of view.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	}
	return "draw"
}

// Message is the line shown after a throw.
func (o Outcome) Message() string {
	switch o {
	case Win:
		return "you win!"
	case Lose:
		return "you lost..."
	}
	return "draw!"
}

// Compare decides a against b. The difference of the two indices modulo
// the number of moves is zero for a draw, odd when a wins and even when b
// wins.
func Compare(a, b Move) Outcome {
	n := Move(len(Moves))
	diff := ((a-b)%n + n) % n
	switch {
	case diff == 0:
		return Draw
	case diff%2 == 1:
		return Win
	}
	return Lose
}

// beats maps each move to the two moves it defeats, with the verb used to
// describe the win.
var beats = map[Move]map[Move]string{
	Rock:     {Scissors: "crushes", Lizard: "crushes"},
	Paper:    {Spock: "disproves", Rock: "covers"},
	Scissors: {Lizard: "decapitates", Paper: "cuts"},
	Lizard:   {Paper: "eats", Spock: "poisons"},
	Spock:    {Scissors: "smashes", Rock: "vaporizes"},
}

// Beats reports whether a defeats b according to the rules table.
func Beats(a, b Move) bool {
	_, ok := beats[a][b]
	return ok
}

// Verb describes a win, e.g. "Scissors cuts Paper". It returns "" when
// winner does not beat loser.
func Verb(winner, loser Move) string {
	verb, ok := beats[winner][loser]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %s %s", winner.Title(), verb, loser.Title())
}

var (
	// ErrQuit is returned by ParseMove for q or quit.
	ErrQuit = errors.New("quit requested")

	// ErrUnknownMove is returned when input names no move.
	ErrUnknownMove = errors.New("unknown move")

	// ErrAmbiguousMove is matched by *AmbiguousMoveError.
	ErrAmbiguousMove = errors.New("ambiguous move")
)

// AmbiguousMoveError carries every move the input could have meant.
type AmbiguousMoveError struct {
	Input      string
	Candidates []Move
}

func (e *AmbiguousMoveError) Error() string {
	names := make([]string, len(e.Candidates))
	for i, m := range e.Candidates {
		names[i] = m.String()
	}
	return fmt.Sprintf("%q could be %s", e.Input, strings.Join(names, " or "))
}

// Is lets errors.Is match ErrAmbiguousMove.
func (e *AmbiguousMoveError) Is(target error) bool {
	return target == ErrAmbiguousMove
}

// ParseMove reads a throw typed by the player. Full names may be shortened
// to any unique prefix; the codes r, p, sc, sp and l also work as prefixes
// of longer input.
func ParseMove(input string) (Move, error) {
	in := strings.ToLower(strings.TrimSpace(input))
	switch in {
	case "":
		return 0, ErrUnknownMove
	case "q", "quit":
		return 0, ErrQuit
	}

	var candidates []Move
	for _, m := range Moves {
		if strings.HasPrefix(m.String(), in) {
			candidates = append(candidates, m)
		}
	}
	switch len(candidates) {
	case 1:
		return candidates[0], nil
	case 0:
	default:
		return 0, &AmbiguousMoveError{Input: in, Candidates: candidates}
	}

	// "rocky" or "sp!" still count.
	for _, code := range []string{"sc", "sp", "r", "p", "l"} {
		if strings.HasPrefix(in, code) {
			return codes[code], nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMove, in)
}
