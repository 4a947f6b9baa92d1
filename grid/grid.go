package grid

// Grid is an immutable wall/passage raster addressed by Point.
// Construct one with New (or via mazegen.Generate); the cell data is
// deep-copied so no caller can mutate it afterwards.
type Grid struct {
	width, height int
	cells         []CellType // row-major, index y*width + x
}

// New constructs a Grid from a non-empty, rectangular 2D slice of cells.
// The input is deep-copied to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(cells [][]CellType) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]CellType, w*h),
	}
	for y := 0; y < h; y++ {
		copy(g.cells[y*w:(y+1)*w], cells[y])
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the cell type at p. Out-of-bounds points report Wall, so
// callers probing beyond the edge see an impassable boundary.
func (g *Grid) At(p Point) CellType {
	if !g.InBounds(p) {
		return Wall
	}

	return g.cells[p.Y*g.width+p.X]
}

// PassageNeighbors returns the in-bounds Passage neighbors of p in the
// fixed cardinal order +x, +y, −x, −y. The search engine relies on this
// order for reproducible expansion.
// Complexity: O(1).
func (g *Grid) PassageNeighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range NeighborOffsets {
		n := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if g.InBounds(n) && g.At(n) == Passage {
			out = append(out, n)
		}
	}

	return out
}
