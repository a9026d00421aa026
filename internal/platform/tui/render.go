package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// lipglossColor converts a palette color to a terminal color.
func lipglossColor(c core.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(c.ANSI()))
}

// styleCache holds one style per attribute seen so far.
var styleCache = map[core.ColorCode]lipgloss.Style{}

// styleFor returns the lipgloss style for an attribute. The default attribute
// renders unstyled so the terminal's own colors show through.
func styleFor(code core.ColorCode) lipgloss.Style {
	if code == core.DefaultCode {
		return lipgloss.NewStyle()
	}
	if s, ok := styleCache[code]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipglossColor(code.Fg)).
		Background(lipglossColor(code.Bg))
	styleCache[code] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same attribute to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same attribute
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Code

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Code != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
