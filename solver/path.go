package solver

import "github.com/mazelab/mazesolve/grid"

// ReconstructPath walks parent links backward from goal until it reaches
// start (the one cell with no recorded parent), then reverses the walk
// into start→goal order.
//
// Returns ErrNoPath if goal was never recorded in parent — the engine
// exhausted its frontier without touching it. A goal equal to start
// yields the single-element path [start].
func ReconstructPath(parent map[grid.Point]grid.Point, start, goal grid.Point) ([]grid.Point, error) {
	if goal != start {
		if _, ok := parent[goal]; !ok {
			return nil, ErrNoPath
		}
	}

	path := []grid.Point{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
