package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestCenter(t *testing.T) {
	got := Center("abcd", 10)
	assert.Equal(t, "   abcd   ", got)

	multi := Center("ab\nabcdef", 8)
	lines := strings.Split(multi, "\n")
	assert.Equal(t, "   ab   ", lines[0])
	assert.Equal(t, " abcdef ", lines[1])

	assert.Equal(t, "too wide", Center("too wide", 4))
}

func TestBanner(t *testing.T) {
	s := NewStyles(LightTheme())
	out := s.Banner(40, "welcome", "have fun")

	assert.Contains(t, out, "welcome")
	assert.Contains(t, out, "have fun")
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 40, lipgloss.Width(line))
	}
}

func TestSideBySide(t *testing.T) {
	out := SideBySide(2, "a\nb", "c")
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "a  c", lines[0])
	assert.Equal(t, "", SideBySide(1))
}
