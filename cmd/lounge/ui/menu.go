// Package ui holds the launcher's interactive screens.
package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	gameui "gamelounge/internal/ui"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Choice is what the player picked from the menu.
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceTicTacToe
	ChoiceBlackjack
	ChoiceRPS
	ChoiceQuit
)

func (c Choice) String() string {
	switch c {
	case ChoiceTicTacToe:
		return "tictactoe"
	case ChoiceBlackjack:
		return "blackjack"
	case ChoiceRPS:
		return "rps"
	case ChoiceQuit:
		return "quit"
	}
	return "none"
}

type menuItem struct {
	hotkey string
	label  string
	choice Choice
}

var menuItems = []menuItem{
	{"t", "Tic-Tac-Toe", ChoiceTicTacToe},
	{"2", "21", ChoiceBlackjack},
	{"r", "RPS(LS)", ChoiceRPS},
	{"q", "quit", ChoiceQuit},
}

// ChoiceForKey maps a menu hotkey to its choice, or ChoiceNone.
func ChoiceForKey(k string) Choice {
	for _, item := range menuItems {
		if strings.EqualFold(k, item.hotkey) {
			return item.choice
		}
	}
	return ChoiceNone
}

// LineView is the menu as plain lines for input that is not a terminal.
func LineView(styles gameui.Styles, width int) string {
	lines := make([]string, len(menuItems))
	for i, item := range menuItems {
		lines[i] = fmt.Sprintf("[%s] %s", item.hotkey, item.label)
	}
	return styles.Banner(width, "welcome to the game lounge!", "pick a game to play") +
		"\n\n" + gameui.Center(strings.Join(lines, "\n"), width)
}

// KeyMap defines the menu key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	TicTacToe key.Binding
	Blackjack key.Binding
	RPS       key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		TicTacToe: key.NewBinding(key.WithKeys("t", "T")),
		Blackjack: key.NewBinding(key.WithKeys("2")),
		RPS:       key.NewBinding(key.WithKeys("r", "R")),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MenuModel is the launcher menu.
type MenuModel struct {
	cursor int
	chosen Choice
	keys   KeyMap
	help   help.Model
	styles gameui.Styles
	width  int
}

// NewMenuModel builds a menu drawn width columns wide.
func NewMenuModel(styles gameui.Styles, width int) MenuModel {
	return MenuModel{
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: styles,
		width:  width,
	}
}

// Chosen returns the selection, or ChoiceNone while the menu is open.
func (m MenuModel) Chosen() Choice { return m.chosen }

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.pick(ChoiceQuit)
		case key.Matches(msg, m.keys.Up):
			m.cursor = (m.cursor - 1 + len(menuItems)) % len(menuItems)
		case key.Matches(msg, m.keys.Down):
			m.cursor = (m.cursor + 1) % len(menuItems)
		case key.Matches(msg, m.keys.Select):
			return m.pick(menuItems[m.cursor].choice)
		case key.Matches(msg, m.keys.TicTacToe):
			return m.pick(ChoiceTicTacToe)
		case key.Matches(msg, m.keys.Blackjack):
			return m.pick(ChoiceBlackjack)
		case key.Matches(msg, m.keys.RPS):
			return m.pick(ChoiceRPS)
		}
	}
	return m, nil
}

func (m MenuModel) pick(c Choice) (tea.Model, tea.Cmd) {
	m.chosen = c
	return m, tea.Quit
}

// View implements tea.Model.
func (m MenuModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Banner(m.width, "welcome to the game lounge!", "pick a game to play"))
	b.WriteString("\n\n")

	lines := make([]string, len(menuItems))
	for i, item := range menuItems {
		line := fmt.Sprintf("[%s] %s", item.hotkey, item.label)
		if i == m.cursor {
			lines[i] = m.styles.Selected.Render("> " + line)
		} else {
			lines[i] = m.styles.Body.Render("  " + line)
		}
	}
	b.WriteString(gameui.Center(strings.Join(lines, "\n"), m.width))
	b.WriteString("\n\n")
	b.WriteString(gameui.Center(m.help.View(m.keys), m.width))
	b.WriteString("\n")
	return b.String()
}

// RunMenu shows the menu until the player picks something.
func RunMenu(ctx context.Context, in io.Reader, out io.Writer, styles gameui.Styles, width int) (Choice, error) {
	p := tea.NewProgram(NewMenuModel(styles, width),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	final, err := p.Run()
	if err != nil {
		return ChoiceNone, fmt.Errorf("menu: %w", err)
	}
	m, ok := final.(MenuModel)
	if !ok {
		return ChoiceNone, fmt.Errorf("menu: unexpected model %T", final)
	}
	return m.Chosen(), nil
}
