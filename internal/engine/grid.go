package engine

import (
	"errors"
	"fmt"
)

// Configuration errors returned by Config.Validate and New.
var (
	ErrInvalidGrid   = errors.New("engine: invalid grid")
	ErrInvalidLength = errors.New("engine: invalid initial length")
)

// DefaultInitialLength is the number of segments a fresh snake starts with.
const DefaultInitialLength = 10

// Grid describes the playing field. Rows and Cols are the extents in cells;
// BlockSize is how many cells the head travels per step.
type Grid struct {
	Rows      Coord
	Cols      Coord
	BlockSize Coord
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return int(g.Rows) * int(g.Cols)
}

// Capacity returns the maximum snake length for this grid. It is derived from
// the block footprint and is always strictly smaller than the cell count, so
// there is always at least one free cell for food.
func (g Grid) Capacity() int {
	if g.BlockSize == 0 {
		return 0
	}
	block := int(g.BlockSize)
	capacity := g.Cells() / (block * block)
	return min(capacity, g.Cells()-1)
}

// Center returns the cell where a fresh snake's head is placed.
func (g Grid) Center() Position {
	return Position{Row: g.Rows / 2, Col: g.Cols / 2}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Position) bool {
	return p.Row < g.Rows && p.Col < g.Cols
}

// Config holds everything needed to build an Engine.
type Config struct {
	Grid          Grid
	InitialLength int
}

// ClassicConfig returns the 25x80 text-mode layout with two-cell blocks.
func ClassicConfig() Config {
	return Config{
		Grid: Grid{
			Rows:      25,
			Cols:      80,
			BlockSize: 2,
		},
		InitialLength: DefaultInitialLength,
	}
}

// Validate checks that the configuration describes a playable field.
func (c Config) Validate() error {
	g := c.Grid
	if g.Rows == 0 || g.Cols == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.Rows, g.Cols)
	}
	if g.BlockSize == 0 || g.BlockSize >= g.Rows || g.BlockSize >= g.Cols {
		return fmt.Errorf("%w: block size %d for %dx%d", ErrInvalidGrid, g.BlockSize, g.Rows, g.Cols)
	}
	if c.InitialLength < 1 || c.InitialLength > g.Capacity() {
		return fmt.Errorf("%w: %d (capacity %d)", ErrInvalidLength, c.InitialLength, g.Capacity())
	}
	// The initial body trails to the left of the center head.
	if (c.InitialLength-1)*int(g.BlockSize) > int(g.Center().Col) {
		return fmt.Errorf("%w: %d segments do not fit left of column %d",
			ErrInvalidLength, c.InitialLength, g.Center().Col)
	}
	return nil
}
