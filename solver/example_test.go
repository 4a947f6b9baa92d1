package solver_test

import (
	"fmt"

	"github.com/mazelab/mazesolve/grid"
	"github.com/mazelab/mazesolve/solver"
)

// ExampleEngine_Step drives BFS over a tiny corridor one step at a time,
// the same way an animation loop would.
func ExampleEngine_Step() {
	const (
		w = grid.Wall
		p = grid.Passage
	)
	g, err := grid.New([][]grid.CellType{
		{w, w, w, w, w},
		{w, p, w, w, w},
		{w, p, w, w, w},
		{w, p, w, w, w},
		{w, w, w, w, w},
	})
	if err != nil {
		fmt.Println("grid:", err)

		return
	}

	eng, err := solver.New(g, grid.Point{X: 1, Y: 1}, grid.Point{X: 1, Y: 3}, solver.BFS)
	if err != nil {
		fmt.Println("solver:", err)

		return
	}

	for {
		res, err := eng.Step()
		if err != nil {
			fmt.Println("step:", err)

			return
		}
		if res.Outcome == solver.Continue {
			continue
		}
		fmt.Println(res.Outcome, res.Path)

		return
	}
	// Output:
	// GoalReached [{1 1} {1 2} {1 3}]
}
