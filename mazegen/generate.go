// Package mazegen generates grid mazes with a randomized active-set
// variant of recursive backtracking.
package mazegen

import (
	"github.com/mazelab/mazesolve/grid"
)

// carveOffsets are the two-away jumps inspected when carving. Passages
// live on odd coordinates; the cell between a pair is the wall to break.
var carveOffsets = [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// Generate produces a fully connected maze of the requested size.
//
// Dimensions are clamped to MinDimension and forced odd by incrementing
// even values, so the result may be one cell larger than asked for.
//
// The carve keeps a set of active carved cells seeded with (1,1) and
// repeatedly picks a uniformly random member — not the most recently
// added one, as strict backtracking would. The random pick is what gives
// these mazes their many branches and dead ends; do not swap it for a
// stack. A member with no uncarved two-away neighbor is retired. The
// loop ends when the set is empty, at which point every passage is
// reachable from (1,1).
//
// Generate is a pure function of its inputs and the RNG state.
// Complexity: O(W×H) expected time, O(W×H) memory.
func Generate(width, height int, opts ...Option) (*grid.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	width = normalize(width)
	height = normalize(height)

	cells := make([][]grid.CellType, height)
	for y := range cells {
		cells[y] = make([]grid.CellType, width) // zero value is Wall
	}

	start := grid.Point{X: 1, Y: 1}
	cells[start.Y][start.X] = grid.Passage
	active := []grid.Point{start}

	for len(active) > 0 {
		idx := o.Rand.Intn(len(active))
		c := active[idx]

		candidates := uncarvedTwoAway(cells, width, height, c)
		if len(candidates) == 0 {
			// Retire the cell; swap-delete keeps the pick uniform.
			active[idx] = active[len(active)-1]
			active = active[:len(active)-1]

			continue
		}

		n := candidates[o.Rand.Intn(len(candidates))]
		// Break the wall midway between c and n, then open n itself.
		cells[(c.Y+n.Y)/2][(c.X+n.X)/2] = grid.Passage
		cells[n.Y][n.X] = grid.Passage
		active = append(active, n)
	}

	return grid.New(cells)
}

// uncarvedTwoAway collects the strictly interior, still-walled cells two
// steps away from c in the four cardinal directions.
func uncarvedTwoAway(cells [][]grid.CellType, width, height int, c grid.Point) []grid.Point {
	out := make([]grid.Point, 0, 4)
	for _, d := range carveOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if nx > 0 && nx < width && ny > 0 && ny < height && cells[ny][nx] == grid.Wall {
			out = append(out, grid.Point{X: nx, Y: ny})
		}
	}

	return out
}

// normalize clamps a requested dimension to MinDimension and forces it odd.
func normalize(d int) int {
	if d < MinDimension {
		d = MinDimension
	}
	if d%2 == 0 {
		d++
	}

	return d
}
