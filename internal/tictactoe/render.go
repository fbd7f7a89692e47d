package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"gamelounge/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

func grid(cells [Size][Size]string) string {
	rows := make([]string, 0, 2*Size-1)
	for r := range cells {
		if r > 0 {
			rows = append(rows, "---+---+---")
		}
		line := make([]string, Size)
		for c := range cells[r] {
			line[c] = " " + cells[r][c] + " "
		}
		rows = append(rows, strings.Join(line, "|"))
	}
	return strings.Join(rows, "\n")
}

// keyDiagram shows which key plays which square.
func keyDiagram(s ui.Styles, width int) string {
	var keys [Size][Size]string
	for r := range Keymap {
		for c := range Keymap[r] {
			keys[r][c] = strings.ToUpper(Keymap[r][c])
		}
	}
	keyboard := lipgloss.JoinVertical(lipgloss.Center, s.Muted.Render("K E Y B O A R D"), "", grid(keys))
	arrow := lipgloss.NewStyle().Padding(3, 2).Render("==>")
	board := lipgloss.JoinVertical(lipgloss.Center, s.Muted.Render("B O A R D"), "", grid(keys))
	return ui.Center(lipgloss.JoinHorizontal(lipgloss.Top, keyboard, arrow, board), width)
}

// boardView draws the board with the score either side of it.
func boardView(s ui.Styles, width int, b Board, score Score) string {
	var cells [Size][Size]string
	for r := range b {
		for c := range b[r] {
			switch b[r][c] {
			case Player:
				cells[r][c] = s.Success.Render("X")
			case AI:
				cells[r][c] = s.Error.Render("O")
			default:
				cells[r][c] = s.Muted.Render("-")
			}
		}
	}
	side := (width - 11) / 2
	if side < 12 {
		side = 12
	}
	left := lipgloss.PlaceHorizontal(side, lipgloss.Center, "Player: "+points(score.Player))
	right := lipgloss.PlaceHorizontal(side, lipgloss.Center, "AI: "+points(score.AI))
	board := grid(cells)
	// Score sits level with the middle row.
	pad := strings.Repeat("\n", Size-1)
	return lipgloss.JoinHorizontal(lipgloss.Top, pad+left, board, pad+right)
}

func points(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func scoreLine(score Score) string {
	return fmt.Sprintf("Player: %s | AI: %s", points(score.Player), points(score.AI))
}
