package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazelab/mazesolve/grid"
)

const (
	W = grid.Wall
	P = grid.Passage
)

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]grid.CellType
		err   error
	}{
		{"EmptyRows", [][]grid.CellType{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]grid.CellType{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]grid.CellType{{W, P}, {W}}, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.cells)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNew_DeepCopy ensures mutating the input slice does not leak into the Grid.
func TestNew_DeepCopy(t *testing.T) {
	cells := [][]grid.CellType{
		{W, W, W},
		{W, P, W},
		{W, W, W},
	}
	g, err := grid.New(cells)
	require.NoError(t, err)

	cells[1][1] = W
	assert.Equal(t, grid.Passage, g.At(grid.Point{X: 1, Y: 1}),
		"Grid must not alias the caller's slice")
}

func TestInBoundsAndAt(t *testing.T) {
	g, err := grid.New([][]grid.CellType{
		{W, P, W},
		{P, P, P},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())

	assert.True(t, g.InBounds(grid.Point{X: 0, Y: 0}))
	assert.True(t, g.InBounds(grid.Point{X: 2, Y: 1}))
	assert.False(t, g.InBounds(grid.Point{X: 3, Y: 0}))
	assert.False(t, g.InBounds(grid.Point{X: 0, Y: -1}))

	assert.Equal(t, grid.Wall, g.At(grid.Point{X: 0, Y: 0}))
	assert.Equal(t, grid.Passage, g.At(grid.Point{X: 1, Y: 0}))
	// Out-of-bounds lookups behave as walls.
	assert.Equal(t, grid.Wall, g.At(grid.Point{X: -1, Y: 0}))
	assert.Equal(t, grid.Wall, g.At(grid.Point{X: 0, Y: 5}))
}

// TestPassageNeighbors_Order checks both the filtering and the fixed
// +x, +y, −x, −y ordering the engine depends on.
func TestPassageNeighbors_Order(t *testing.T) {
	g, err := grid.New([][]grid.CellType{
		{W, P, W},
		{P, P, P},
		{W, P, W},
	})
	require.NoError(t, err)

	got := g.PassageNeighbors(grid.Point{X: 1, Y: 1})
	want := []grid.Point{
		{X: 2, Y: 1}, // +x
		{X: 1, Y: 2}, // +y
		{X: 0, Y: 1}, // −x
		{X: 1, Y: 0}, // −y
	}
	assert.Equal(t, want, got)

	// A corner cell only sees its in-bounds passage neighbors.
	corner := g.PassageNeighbors(grid.Point{X: 1, Y: 0})
	assert.Equal(t, []grid.Point{{X: 1, Y: 1}}, corner)
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b grid.Point
		want int
	}{
		{grid.Point{X: 0, Y: 0}, grid.Point{X: 0, Y: 0}, 0},
		{grid.Point{X: 1, Y: 1}, grid.Point{X: 4, Y: 5}, 7},
		{grid.Point{X: 4, Y: 5}, grid.Point{X: 1, Y: 1}, 7},
		{grid.Point{X: -2, Y: 3}, grid.Point{X: 2, Y: -3}, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, grid.Manhattan(tc.a, tc.b))
	}
}
