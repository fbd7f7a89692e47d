package tictactoe

import (
	"testing"

	"gamelounge/internal/random"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, s string) Board {
	t.Helper()
	b, err := ParseBoard(s)
	require.NoError(t, err)
	return b
}

func TestRotateClockwise(t *testing.T) {
	b := mustBoard(t, "XO-/---/--O")
	want := mustBoard(t, "--X/--O/O--")
	if diff := cmp.Diff(want, b.Rotate()); diff != "" {
		t.Errorf("Rotate() mismatch (-want +got):\n%s", diff)
	}

	four := b.Rotate().Rotate().Rotate().Rotate()
	if diff := cmp.Diff(b, four); diff != "" {
		t.Errorf("four turns should be identity (-want +got):\n%s", diff)
	}
}

func TestDiagonal(t *testing.T) {
	b := mustBoard(t, "X--/-O-/--X")
	assert.Equal(t, [Size]Mark{Player, AI, Player}, b.Diagonal())
}

func TestParseBoardErrors(t *testing.T) {
	for _, s := range []string{"", "---/---", "---/---/--", "---/-?-/---"} {
		_, err := ParseBoard(s)
		assert.Error(t, err, s)
	}
	assert.Equal(t, "X-O/---/O-X", mustBoard(t, "X-O\n---\nO-X").String())
}

func TestPlace(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Place(Coord{1, 1}, Player))
	assert.Equal(t, Player, b.At(Coord{1, 1}))
	assert.ErrorIs(t, b.Place(Coord{1, 1}, AI), ErrOccupied)
	assert.ErrorIs(t, b.Place(Coord{3, 0}, AI), ErrOutOfRange)
	assert.Len(t, b.Open(), 8)
}

func TestCompletingSquareCoversEveryLine(t *testing.T) {
	tests := []struct {
		name  string
		board string
		want  Coord
	}{
		{"top row", "XX-/---/---", Coord{0, 2}},
		{"middle row", "---/X-X/---", Coord{1, 1}},
		{"bottom row", "---/---/-XX", Coord{2, 0}},
		{"left column", "X--/---/X--", Coord{1, 0}},
		{"middle column", "---/-X-/-X-", Coord{0, 1}},
		{"right column", "--X/--X/---", Coord{2, 2}},
		{"main diagonal", "X--/-X-/---", Coord{2, 2}},
		{"anti diagonal", "--X/---/X--", Coord{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CompletingSquare(mustBoard(t, tt.board), Player)
			require.True(t, ok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CompletingSquare mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompletingSquareNone(t *testing.T) {
	for _, s := range []string{"---/---/---", "XO-/---/---", "XOX/---/---", "X--/-O-/--X"} {
		_, ok := CompletingSquare(mustBoard(t, s), Player)
		assert.False(t, ok, s)
	}
}

func TestCompletingSquareFirstInRowMajorOrder(t *testing.T) {
	// (0,2) completes the top row and (2,0) the left column.
	got, ok := CompletingSquare(mustBoard(t, "XX-/X--/---"), Player)
	require.True(t, ok)
	assert.Equal(t, Coord{0, 2}, got)
}

func TestChooseMovePriorities(t *testing.T) {
	rng := random.New(1)

	// AI can win on the middle row and must not block the player instead.
	got, ok := ChooseMove(mustBoard(t, "XX-/OO-/X--"), rng)
	require.True(t, ok)
	assert.Equal(t, Coord{1, 2}, got)

	// No win, so block the player's column.
	got, ok = ChooseMove(mustBoard(t, "X-O/X--/---"), rng)
	require.True(t, ok)
	assert.Equal(t, Coord{2, 0}, got)

	// Nothing forced: any open square.
	b := mustBoard(t, "X--/---/---")
	got, ok = ChooseMove(b, rng)
	require.True(t, ok)
	assert.Equal(t, Blank, b.At(got))

	_, ok = ChooseMove(mustBoard(t, "XOX/XOO/OXX"), rng)
	assert.False(t, ok)
}

func TestResult(t *testing.T) {
	tests := []struct {
		board string
		want  Result
	}{
		{"---/---/---", InProgress},
		{"XXX/OO-/---", PlayerWins},
		{"X--/XO-/XO-", PlayerWins},
		{"O-X/-OX/X-O", AIWins},
		{"X-O/XO-/O--", AIWins},
		{"--O/--O/X-O", AIWins},
		{"XOX/XOO/OXX", Draw},
		{"XO-/OX-/---", InProgress},
	}
	for _, tt := range tests {
		t.Run(tt.board, func(t *testing.T) {
			assert.Equal(t, tt.want, mustBoard(t, tt.board).Result())
		})
	}
}

func TestKeyToCoord(t *testing.T) {
	for r := range Keymap {
		for c := range Keymap[r] {
			got, err := KeyToCoord(Keymap[r][c])
			require.NoError(t, err)
			assert.Equal(t, Coord{r, c}, got)
		}
	}
	got, err := KeyToCoord(" Z ")
	require.NoError(t, err)
	assert.Equal(t, Coord{2, 0}, got)

	for _, k := range []string{"", "p", "qq", "1"} {
		_, err := KeyToCoord(k)
		assert.ErrorIs(t, err, ErrInvalidKey, k)
	}
}

func TestScore(t *testing.T) {
	var s Score
	s.Add(PlayerWins)
	s.Add(Draw)
	s.Add(AIWins)
	s.Add(InProgress)
	assert.Equal(t, Score{Player: 1.5, AI: 1.5}, s)
}
