// Package tictactoe is a 3x3 board against a line-completing AI.
package tictactoe

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
)

// Mark is the content of a square.
type Mark byte

const (
	Blank  Mark = '-'
	Player Mark = 'X'
	AI     Mark = 'O'
)

func (m Mark) String() string { return string(m) }

// Size is the board edge length.
const Size = 3

// Board is indexed [row][col]. The zero value is not a valid board; use
// NewBoard.
type Board [Size][Size]Mark

// Coord addresses a square.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

var (
	// ErrOccupied is returned when placing on a taken square.
	ErrOccupied = errors.New("square already taken")

	// ErrOutOfRange is returned for coordinates off the board.
	ErrOutOfRange = errors.New("square off the board")
)

// NewBoard returns an empty board.
func NewBoard() Board {
	var b Board
	for r := range b {
		for c := range b[r] {
			b[r][c] = Blank
		}
	}
	return b
}

// ParseBoard reads three rows such as "X-O" separated by slashes or
// newlines.
func ParseBoard(s string) (Board, error) {
	rows := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '\n' })
	if len(rows) != Size {
		return Board{}, fmt.Errorf("want %d rows, got %d", Size, len(rows))
	}
	var b Board
	for r, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != Size {
			return Board{}, fmt.Errorf("row %d: want %d squares, got %q", r, Size, row)
		}
		for c := 0; c < Size; c++ {
			switch m := Mark(row[c]); m {
			case Blank, Player, AI:
				b[r][c] = m
			default:
				return Board{}, fmt.Errorf("row %d: bad mark %q", r, row[c])
			}
		}
	}
	return b, nil
}

// String renders the board as "X-O/---/O-X".
func (b Board) String() string {
	rows := make([]string, Size)
	for r := range b {
		var sb strings.Builder
		for _, m := range b[r] {
			sb.WriteByte(byte(m))
		}
		rows[r] = sb.String()
	}
	return strings.Join(rows, "/")
}

// Rotate turns the board 90 degrees clockwise.
func (b Board) Rotate() Board {
	var rot Board
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			rot[r][c] = b[Size-1-c][r]
		}
	}
	return rot
}

// Diagonal returns the top-left to bottom-right diagonal.
func (b Board) Diagonal() [Size]Mark {
	var d [Size]Mark
	for i := range d {
		d[i] = b[i][i]
	}
	return d
}

// At returns the mark at c.
func (b Board) At(c Coord) Mark { return b[c.Row][c.Col] }

// Place puts m on c.
func (b *Board) Place(c Coord, m Mark) error {
	if c.Row < 0 || c.Row >= Size || c.Col < 0 || c.Col >= Size {
		return fmt.Errorf("%w: %s", ErrOutOfRange, c)
	}
	if b[c.Row][c.Col] != Blank {
		return fmt.Errorf("%w: %s", ErrOccupied, c)
	}
	b[c.Row][c.Col] = m
	return nil
}

// Open lists the blank squares in row-major order.
func (b Board) Open() []Coord {
	var open []Coord
	for r := range b {
		for c := range b[r] {
			if b[r][c] == Blank {
				open = append(open, Coord{r, c})
			}
		}
	}
	return open
}

func count(line []Mark, m Mark) int {
	n := 0
	for _, x := range line {
		if x == m {
			n++
		}
	}
	return n
}

func blankIndex(line []Mark) int {
	for i, x := range line {
		if x == Blank {
			return i
		}
	}
	return -1
}

// nearlyComplete reports whether line holds two of m and one blank.
func nearlyComplete(line []Mark, m Mark) bool {
	return count(line, m) == Size-1 && count(line, Blank) == 1
}

// CompletingSquare finds a blank square that would give m three in a line.
// Every row and the main diagonal are scanned in each of the four
// orientations of the board; a template turned along with the board keeps
// hits in the original orientation. The first hit in row-major order wins.
func CompletingSquare(b Board, m Mark) (Coord, bool) {
	var template [Size][Size]bool
	for turn := 0; turn < 4; turn++ {
		for r := range b {
			if nearlyComplete(b[r][:], m) {
				template[r][blankIndex(b[r][:])] = true
			}
		}
		diag := b.Diagonal()
		if nearlyComplete(diag[:], m) {
			i := blankIndex(diag[:])
			template[i][i] = true
		}
		b = b.Rotate()
		template = rotateFlags(template)
	}

	for r := range template {
		for c := range template[r] {
			if template[r][c] {
				return Coord{r, c}, true
			}
		}
	}
	return Coord{}, false
}

func rotateFlags(t [Size][Size]bool) [Size][Size]bool {
	var rot [Size][Size]bool
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			rot[r][c] = t[Size-1-c][r]
		}
	}
	return rot
}

// ChooseMove picks the AI's square: complete its own line if it can,
// otherwise block the player, otherwise any open square. It returns false
// on a full board.
func ChooseMove(b Board, rng *rand.Rand) (Coord, bool) {
	if c, ok := CompletingSquare(b, AI); ok {
		return c, true
	}
	if c, ok := CompletingSquare(b, Player); ok {
		return c, true
	}
	open := b.Open()
	if len(open) == 0 {
		return Coord{}, false
	}
	return open[rng.IntN(len(open))], true
}

// Result is the state of a game.
type Result int

const (
	InProgress Result = iota
	PlayerWins
	AIWins
	Draw
)

func (r Result) String() string {
	switch r {
	case PlayerWins:
		return "player_wins"
	case AIWins:
		return "ai_wins"
	case Draw:
		return "draw"
	}
	return "in_progress"
}

// Message is shown when the game ends.
func (r Result) Message() string {
	switch r {
	case PlayerWins:
		return "player wins"
	case AIWins:
		return "ai wins"
	case Draw:
		return "tie!"
	}
	return ""
}

// Result checks every row and the main diagonal in two orientations, which
// covers all eight lines. A full board without a line is a draw.
func (b Board) Result() Result {
	cur := b
	for turn := 0; turn < 2; turn++ {
		for r := range cur {
			if res := lineWinner(cur[r][:]); res != InProgress {
				return res
			}
		}
		diag := cur.Diagonal()
		if res := lineWinner(diag[:]); res != InProgress {
			return res
		}
		cur = cur.Rotate()
	}
	if len(b.Open()) == 0 {
		return Draw
	}
	return InProgress
}

func lineWinner(line []Mark) Result {
	switch {
	case count(line, Player) == Size:
		return PlayerWins
	case count(line, AI) == Size:
		return AIWins
	}
	return InProgress
}
