package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned for keys outside the QWE/ASD/ZXC block.
var ErrInvalidKey = errors.New("invalid key")

// Keymap lays the keyboard over the board.
var Keymap = [Size][Size]string{
	{"q", "w", "e"},
	{"a", "s", "d"},
	{"z", "x", "c"},
}

// KeyToCoord maps a key to its square.
func KeyToCoord(key string) (Coord, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	for r := range Keymap {
		for c := range Keymap[r] {
			if Keymap[r][c] == k {
				return Coord{r, c}, nil
			}
		}
	}
	return Coord{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
}

// Score is the running tally across games. A draw is worth half a point to
// each side.
type Score struct {
	Player float64
	AI     float64
}

// Add scores a finished game.
func (s *Score) Add(r Result) {
	switch r {
	case PlayerWins:
		s.Player++
	case AIWins:
		s.AI++
	case Draw:
		s.Player += 0.5
		s.AI += 0.5
	}
}
