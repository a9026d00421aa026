package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "Score", core.NewColorCode(core.ColorWhite, core.ColorBlack))
	s.Plot(6, 0, '@', core.NewColorCode(core.ColorLightGreen, core.ColorBlack))
	s.Set(0, 1, '*')

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(out, "Score") || !strings.Contains(out, "@") {
		t.Errorf("RenderScreen() = %q, expected text preserved", out)
	}
	if got := lipgloss.Width(lines[0]); got != 10 {
		t.Errorf("visible width = %d, expected 10", got)
	}
}

func TestLipglossColorMapping(t *testing.T) {
	tests := []struct {
		in   core.Color
		want lipgloss.Color
	}{
		{core.ColorBlack, "0"},
		{core.ColorBlue, "4"},
		{core.ColorRed, "1"},
		{core.ColorBrown, "3"},
		{core.ColorLightGreen, "10"},
		{core.ColorYellow, "11"},
		{core.ColorWhite, "15"},
	}
	for _, tt := range tests {
		if got := lipglossColor(tt.in); got != tt.want {
			t.Errorf("lipglossColor(%v) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestStyleForDefaultIsPlain(t *testing.T) {
	if got := styleFor(core.DefaultCode).Render("x"); got != "x" {
		t.Errorf("default style rendered %q, expected plain text", got)
	}
}
