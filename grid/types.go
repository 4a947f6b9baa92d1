// Package grid defines core types and sentinel errors for the maze grid
// data model of github.com/mazelab/mazesolve.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// CellType distinguishes walls from walkable passages.
type CellType uint8

const (
	// Wall cells block movement.
	Wall CellType = iota
	// Passage cells are walkable.
	Passage
)

// String returns a human-readable cell label.
func (c CellType) String() string {
	if c == Wall {
		return "Wall"
	}

	return "Passage"
}

// Point addresses a single cell by its (X, Y) coordinates.
// Points compare by value and are used as map keys throughout.
type Point struct {
	X, Y int
}

// Manhattan returns the L1 distance |a.X−b.X| + |a.Y−b.Y| between two points.
// This is the admissible heuristic for 4-connected uniform-cost grids.
func Manhattan(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// NeighborOffsets lists the four cardinal offsets in the fixed expansion
// order used by the search engine: +x, +y, −x, −y.
var NeighborOffsets = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
