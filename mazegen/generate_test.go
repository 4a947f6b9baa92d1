package mazegen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazelab/mazesolve/grid"
	"github.com/mazelab/mazesolve/mazegen"
)

// TestGenerate_OddNormalization checks the documented dimension policy:
// even values increment, odd values pass through, tiny values clamp.
func TestGenerate_OddNormalization(t *testing.T) {
	cases := []struct {
		name         string
		inW, inH     int
		wantW, wantH int
	}{
		{"EvenBumpsToOdd", 20, 20, 21, 21},
		{"OddUnchanged", 21, 21, 21, 21},
		{"MixedDims", 10, 15, 11, 15},
		{"ClampedToMinimum", 1, 1, mazegen.MinDimension, mazegen.MinDimension},
		{"ZeroClamped", 0, 0, mazegen.MinDimension, mazegen.MinDimension},
		{"NegativeClamped", -7, 3, mazegen.MinDimension, mazegen.MinDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := mazegen.Generate(tc.inW, tc.inH, mazegen.WithSeed(1))
			require.NoError(t, err)
			assert.Equal(t, tc.wantW, g.Width())
			assert.Equal(t, tc.wantH, g.Height())
		})
	}
}

func TestGenerate_OptionErrors(t *testing.T) {
	_, err := mazegen.Generate(9, 9, mazegen.WithRand(nil))
	assert.ErrorIs(t, err, mazegen.ErrOptionViolation)
}

// TestGenerate_Connectivity floods from (1,1) and requires every Passage
// cell to be reached, across several sizes and seeds.
func TestGenerate_Connectivity(t *testing.T) {
	for _, size := range []int{5, 11, 21, 41} {
		for seed := int64(0); seed < 5; seed++ {
			g, err := mazegen.Generate(size, size, mazegen.WithSeed(seed))
			require.NoError(t, err)

			reached := floodFill(g, grid.Point{X: 1, Y: 1})
			for y := 0; y < g.Height(); y++ {
				for x := 0; x < g.Width(); x++ {
					p := grid.Point{X: x, Y: y}
					if g.At(p) == grid.Passage {
						assert.True(t, reached[p],
							"size=%d seed=%d: passage %v unreachable from (1,1)", size, seed, p)
					}
				}
			}
		}
	}
}

// TestGenerate_BorderIsWall verifies the carve never touches the outer ring.
func TestGenerate_BorderIsWall(t *testing.T) {
	g, err := mazegen.Generate(15, 15, mazegen.WithSeed(7))
	require.NoError(t, err)

	for x := 0; x < g.Width(); x++ {
		assert.Equal(t, grid.Wall, g.At(grid.Point{X: x, Y: 0}))
		assert.Equal(t, grid.Wall, g.At(grid.Point{X: x, Y: g.Height() - 1}))
	}
	for y := 0; y < g.Height(); y++ {
		assert.Equal(t, grid.Wall, g.At(grid.Point{X: 0, Y: y}))
		assert.Equal(t, grid.Wall, g.At(grid.Point{X: g.Width() - 1, Y: y}))
	}
}

// TestGenerate_Deterministic requires equal mazes for equal seeds and,
// as a sanity check, different mazes for different seeds.
func TestGenerate_Deterministic(t *testing.T) {
	a, err := mazegen.Generate(21, 21, mazegen.WithSeed(99))
	require.NoError(t, err)
	b, err := mazegen.Generate(21, 21, mazegen.WithSeed(99))
	require.NoError(t, err)
	c, err := mazegen.Generate(21, 21, mazegen.WithRand(rand.New(rand.NewSource(100))))
	require.NoError(t, err)

	assert.True(t, sameCells(a, b), "same seed must reproduce the maze")
	assert.False(t, sameCells(a, c), "different seeds should differ")
}

func sameCells(a, b *grid.Grid) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			p := grid.Point{X: x, Y: y}
			if a.At(p) != b.At(p) {
				return false
			}
		}
	}

	return true
}

func floodFill(g *grid.Grid, start grid.Point) map[grid.Point]bool {
	reached := map[grid.Point]bool{start: true}
	queue := []grid.Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.PassageNeighbors(cur) {
			if !reached[n] {
				reached[n] = true
				queue = append(queue, n)
			}
		}
	}

	return reached
}
