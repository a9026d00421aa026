package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// decodeKey turns a terminal key into the engine's key representation.
func decodeKey(ev *tcell.EventKey) (engine.KeyEvent, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return engine.KeyEvent{Code: engine.KeyUp}, true
	case tcell.KeyDown:
		return engine.KeyEvent{Code: engine.KeyDown}, true
	case tcell.KeyLeft:
		return engine.KeyEvent{Code: engine.KeyLeft}, true
	case tcell.KeyRight:
		return engine.KeyEvent{Code: engine.KeyRight}, true
	case tcell.KeyRune:
		return engine.KeyEvent{Rune: ev.Rune()}, true
	}
	return engine.KeyEvent{}, false
}

// actionForKey maps a decoded key to the action the game understands.
func actionForKey(key engine.KeyEvent) core.Action {
	if d, ok := engine.DirectionForKey(key); ok {
		switch d {
		case engine.DirUp:
			return core.ActionUp
		case engine.DirDown:
			return core.ActionDown
		case engine.DirLeft:
			return core.ActionLeft
		case engine.DirRight:
			return core.ActionRight
		}
	}
	if engine.IsRestartKey(key) {
		return core.ActionRestart
	}
	if key.Rune == 'p' || key.Rune == 'P' {
		return core.ActionPause
	}
	return core.ActionNone
}

func tcellColor(c core.Color) tcell.Color {
	return tcell.PaletteColor(c.ANSI())
}

// styleFor converts an attribute to a tcell style. The default attribute keeps
// the terminal's own colors.
func styleFor(code core.ColorCode) tcell.Style {
	if code == core.DefaultCode {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcellColor(code.Fg)).Background(tcellColor(code.Bg))
}
