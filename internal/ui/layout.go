package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Center pads every line of text so it sits in the middle of width columns.
// Lines wider than width are left alone.
func Center(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
	return strings.Join(lines, "\n")
}

// Banner renders a boxed title with optional subtitle lines, width columns
// wide including the border.
func (s Styles) Banner(width int, title string, subtitle ...string) string {
	body := []string{title}
	body = append(body, subtitle...)
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	return s.BannerBox.Width(inner).Render(strings.Join(body, "\n"))
}

// SideBySide joins blocks horizontally, top aligned, separated by gap
// spaces.
func SideBySide(gap int, blocks ...string) string {
	if len(blocks) == 0 {
		return ""
	}
	spacer := strings.Repeat(" ", gap)
	parts := make([]string, 0, len(blocks)*2-1)
	for i, b := range blocks {
		if i > 0 && gap > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
