// Package engine implements the snake simulation: movement, growth, collision
// detection, deterministic food placement and scoring. It performs no I/O and
// knows nothing about terminals, so every rule can be tested directly.
package engine

import "golang.org/x/exp/constraints"

// Coord is a grid coordinate. It is unsigned on purpose: a step past the top or
// left edge wraps to a value near the type's maximum, which the regular
// "coordinate >= extent" bounds check then reports as a wall collision.
type Coord = uint16

// Position is a grid cell addressed by row and column.
type Position struct {
	Row Coord
	Col Coord
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four directions in declaration order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// wrapAdd and wrapSub rely on Go's defined modular arithmetic for unsigned
// integers; neither ever clamps.
func wrapAdd[T constraints.Unsigned](v, step T) T { return v + step }

func wrapSub[T constraints.Unsigned](v, step T) T { return v - step }

// Step moves p by one block in direction d using wrapping arithmetic.
// The result may lie outside the grid; callers bounds-check it.
func (p Position) Step(d Direction, block Coord) Position {
	switch d {
	case DirUp:
		p.Row = wrapSub(p.Row, block)
	case DirDown:
		p.Row = wrapAdd(p.Row, block)
	case DirLeft:
		p.Col = wrapSub(p.Col, block)
	case DirRight:
		p.Col = wrapAdd(p.Col, block)
	}
	return p
}
