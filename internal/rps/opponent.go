package rps

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Opponent is a computer player.
type Opponent interface {
	Name() string
	Choose() Move
}

// bag picks uniformly from a weighted list of moves.
type bag struct {
	name  string
	moves []Move
	rng   *rand.Rand
}

func (b *bag) Name() string { return b.name }

func (b *bag) Choose() Move { return b.moves[b.rng.IntN(len(b.moves))] }

// sequence replays a fixed list, stepping forward or backward.
type sequence struct {
	name  string
	moves []Move
	idx   int
	step  int
}

func (s *sequence) Name() string { return s.name }

func (s *sequence) Choose() Move {
	n := len(s.moves)
	m := s.moves[((s.idx%n)+n)%n]
	s.idx += s.step
	return m
}

func repeat(m Move, n int) []Move {
	out := make([]Move, n)
	for i := range out {
		out[i] = m
	}
	return out
}

func concat(parts ...[]Move) []Move {
	var out []Move
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// NewComputer throws uniformly at random.
func NewComputer(rng *rand.Rand) Opponent {
	return &bag{name: "Computer", moves: Moves, rng: rng}
}

// NewHAL cycles through the moves in order.
func NewHAL() Opponent {
	return &sequence{name: "HAL 9000", moves: Moves, step: 1}
}

// NewFemputer cycles through the moves in reverse, starting from rock.
func NewFemputer() Opponent {
	return &sequence{name: "Femputer", moves: Moves, step: -1}
}

// NewDeepBlue replays a ten-throw sequence that is harder to spot.
func NewDeepBlue() Opponent {
	return &sequence{
		name: "Deep Blue",
		moves: []Move{Spock, Paper, Lizard, Scissors, Rock,
			Paper, Scissors, Spock, Lizard, Rock},
		step: 1,
	}
}

// NewWarbot only throws weapons.
func NewWarbot(rng *rand.Rand) Opponent {
	return &bag{name: "Warbot CPA", moves: concat(repeat(Rock, 5), repeat(Scissors, 4)), rng: rng}
}

// NewBMO avoids weapons.
func NewBMO(rng *rand.Rand) Opponent {
	return &bag{name: "BMO", moves: concat(repeat(Paper, 4), repeat(Spock, 3), repeat(Lizard, 2)), rng: rng}
}

// NewC3P0 never throws rock.
func NewC3P0(rng *rand.Rand) Opponent {
	return &bag{
		name:  "C3P0",
		moves: concat(repeat(Paper, 3), repeat(Scissors, 2), repeat(Spock, 3), repeat(Lizard, 1)),
		rng:   rng,
	}
}

type wallE struct{}

func (wallE) Name() string { return "Wall-E" }

func (wallE) Choose() Move { return Rock }

// NewWallE always throws rock.
func NewWallE() Opponent { return wallE{} }

type rosterEntry struct {
	key string
	new func(*rand.Rand) Opponent
}

var roster = []rosterEntry{
	{"computer", NewComputer},
	{"hal", func(*rand.Rand) Opponent { return NewHAL() }},
	{"warbot", NewWarbot},
	{"bmo", NewBMO},
	{"walle", func(*rand.Rand) Opponent { return NewWallE() }},
	{"femputer", func(*rand.Rand) Opponent { return NewFemputer() }},
	{"deepblue", func(*rand.Rand) Opponent { return NewDeepBlue() }},
	{"c3p0", NewC3P0},
}

// OpponentKeys lists the names accepted by OpponentByName.
func OpponentKeys() []string {
	keys := make([]string, len(roster))
	for i, e := range roster {
		keys[i] = e.key
	}
	return keys
}

// PickOpponent returns a random personality.
func PickOpponent(rng *rand.Rand) Opponent {
	return roster[rng.IntN(len(roster))].new(rng)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// OpponentByName finds a personality by key ("hal") or display name
// ("HAL 9000").
func OpponentByName(name string, rng *rand.Rand) (Opponent, error) {
	want := normalizeName(name)
	for _, e := range roster {
		o := e.new(rng)
		if want == e.key || want == normalizeName(o.Name()) {
			return o, nil
		}
	}
	return nil, fmt.Errorf("unknown opponent %q (known: %s)", name, strings.Join(OpponentKeys(), ", "))
}
