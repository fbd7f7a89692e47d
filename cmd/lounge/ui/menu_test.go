package ui

import (
	"strings"
	"testing"

	gameui "gamelounge/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	require.True(t, ok)
	return mm, cmd
}

func newMenu() MenuModel {
	return NewMenuModel(gameui.NewStyles(gameui.LightTheme()), 80)
}

func TestMenuHotkeys(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want Choice
	}{
		{runes("t"), ChoiceTicTacToe},
		{runes("2"), ChoiceBlackjack},
		{runes("r"), ChoiceRPS},
		{runes("q"), ChoiceQuit},
		{tea.KeyMsg{Type: tea.KeyEsc}, ChoiceQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ChoiceQuit},
	}
	for _, tt := range tests {
		t.Run(tt.want.String()+"/"+tt.msg.String(), func(t *testing.T) {
			m, cmd := update(t, newMenu(), tt.msg)
			assert.Equal(t, tt.want, m.Chosen())
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestMenuArrowNavigation(t *testing.T) {
	m := newMenu()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.cursor)

	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 2, m.cursor)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ChoiceRPS, m.Chosen())
}

func TestMenuCursorWraps(t *testing.T) {
	m := newMenu()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, len(menuItems)-1, m.cursor)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.cursor)
}

func TestMenuIgnoresOtherKeys(t *testing.T) {
	m, cmd := update(t, newMenu(), runes("x"))
	assert.Nil(t, cmd)
	assert.Equal(t, ChoiceNone, m.Chosen())
}

func TestMenuView(t *testing.T) {
	m := newMenu()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	view := m.View()

	assert.Contains(t, view, "welcome to the game lounge!")
	assert.Contains(t, view, "> [t] Tic-Tac-Toe")
	assert.Contains(t, view, "[2] 21")
	assert.Contains(t, view, "[r] RPS(LS)")
	assert.Contains(t, view, "quit")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 60)
	}
}

func TestChoiceForKey(t *testing.T) {
	tests := map[string]Choice{
		"t": ChoiceTicTacToe,
		"T": ChoiceTicTacToe,
		"2": ChoiceBlackjack,
		"r": ChoiceRPS,
		"q": ChoiceQuit,
		"x": ChoiceNone,
		"":  ChoiceNone,
	}
	for k, want := range tests {
		assert.Equal(t, want, ChoiceForKey(k), "key %q", k)
	}
}

func TestLineView(t *testing.T) {
	out := LineView(gameui.NewStyles(gameui.LightTheme()), 80)
	assert.Contains(t, out, "welcome to the game lounge!")
	for _, line := range []string{"[t] Tic-Tac-Toe", "[2] 21", "[r] RPS(LS)", "[q] quit"} {
		assert.Contains(t, out, line)
	}
	assert.NotContains(t, out, "enter")
}
