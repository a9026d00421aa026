package core

import (
	"strings"
)

// Cell is one character position of the frame buffer.
type Cell struct {
	Rune rune
	Code ColorCode
}

var blankCell = Cell{Rune: ' ', Code: DefaultCode}

// Screen is a 2D character frame buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing games to plot
// characters with a color attribute while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank default-colored cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune with the default attribute at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.Plot(x, y, r, DefaultCode)
}

// Plot places a rune with the given attribute at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Plot(x, y int, r rune, code ColorCode) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Code: code}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, code ColorCode) {
	i := 0
	for _, r := range text {
		s.Plot(x+i, y, r, code)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string, code ColorCode) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, code)
}

// FillRect fills a rectangle with the given rune and attribute.
func (s *Screen) FillRect(r Rect, fill rune, code ColorCode) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Plot(x, y, fill, code)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect, code ColorCode) {
	// Corners
	s.Plot(r.X, r.Y, '┌', code)
	s.Plot(r.Right()-1, r.Y, '┐', code)
	s.Plot(r.X, r.Bottom()-1, '└', code)
	s.Plot(r.Right()-1, r.Bottom()-1, '┘', code)

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Plot(x, r.Y, '─', code)
		s.Plot(x, r.Bottom()-1, '─', code)
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Plot(r.X, y, '│', code)
		s.Plot(r.Right()-1, y, '│', code)
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, code ColorCode) {
	for i := 0; i < length; i++ {
		s.Plot(x+i, y, r, code)
	}
}

// String converts the screen buffer to plain text without attributes.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
