package engine

// KeyCode identifies a non-character key.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyR
)

// KeyEvent is a decoded key press: either a raw key code, a unicode rune, or
// both. Producers fill in whichever they know.
type KeyEvent struct {
	Code KeyCode
	Rune rune
}

// IsRestartKey reports whether ev is the restart key (R, any case).
func IsRestartKey(ev KeyEvent) bool {
	return ev.Code == KeyR || ev.Rune == 'r' || ev.Rune == 'R'
}

// DirectionForKey maps arrow keys and WASD to a direction.
func DirectionForKey(ev KeyEvent) (Direction, bool) {
	switch ev.Code {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	}
	switch ev.Rune {
	case 'w', 'W':
		return DirUp, true
	case 's', 'S':
		return DirDown, true
	case 'a', 'A':
		return DirLeft, true
	case 'd', 'D':
		return DirRight, true
	}
	return DirRight, false
}
