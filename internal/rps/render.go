package rps

import (
	"fmt"
	"strings"

	"gamelounge/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

const handWidth = 14

// hand draws one side of the table. An empty move shows a closed fist.
func hand(s ui.Styles, owner, move string) string {
	if move == "" {
		move = "( ? )"
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Theme.Border).
		Width(handWidth).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center).
		Render(s.Bold.Render(move))
	return lipgloss.JoinVertical(lipgloss.Center, s.Muted.Render(owner), box)
}

// frame renders the banner, the scoreboard and both hands.
func frame(s ui.Styles, width int, v view) string {
	var b strings.Builder
	b.WriteString(s.Banner(width, "welcome to RPS(LS)!"))
	b.WriteString("\n")

	left := fmt.Sprintf("   Player wins: %d", v.board.PlayerWins())
	right := fmt.Sprintf("Computer wins: %d   ", v.board.ComputerWins())
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	b.WriteString(left + strings.Repeat(" ", max(gap, 1)) + right + "\n")
	b.WriteString(ui.Center(fmt.Sprintf("Current streak: %d", v.board.CurrentStreak()), width) + "\n")
	b.WriteString(ui.Center(fmt.Sprintf("Longest streak: %d", v.board.LongestStreak()), width) + "\n")

	if v.match.Target > 0 {
		b.WriteString(ui.Center(fmt.Sprintf("Round %d; %s: %s | %s: %s | Win = %s",
			len(v.match.Rounds)+1,
			v.player, formatPoints(v.match.PlayerScore),
			v.opponent, formatPoints(v.match.OpponentScore),
			formatPoints(v.match.Target)), width) + "\n")
	}
	b.WriteString("\n")

	hands := ui.SideBySide(width/4, hand(s, v.player, v.playerMove), hand(s, v.opponent, v.opponentMove))
	b.WriteString(ui.Center(hands, width) + "\n")
	return b.String()
}

// view is what frame needs to draw one screen.
type view struct {
	board        *Scoreboard
	match        *Match
	player       string
	opponent     string
	playerMove   string
	opponentMove string
}
