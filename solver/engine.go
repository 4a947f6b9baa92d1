// Package solver implements the steppable maze search engine behind the
// BFS, DFS, Dijkstra, and A* visualizations.
package solver

import (
	"fmt"
	"time"

	"github.com/mazelab/mazesolve/grid"
)

// Engine runs one search over an immutable grid, advancing exactly one
// frontier expansion per Step call. It is the resumable core: callers
// own the cadence, the engine owns the state. Build a fresh Engine for
// every solve attempt; it is not reusable across runs.
//
// An Engine is not safe for concurrent use. One SearchState is active
// at a time; drive it from a single goroutine.
type Engine struct {
	grid  *grid.Grid
	start grid.Point
	goal  grid.Point
	algo  Algorithm
	opts  Options

	frontier frontier
	// parent records the discovery tree; the start has no entry. For
	// BFS/DFS an entry is final (first-visit wins). For Dijkstra/A* a
	// strictly cheaper rediscovery may overwrite it.
	parent map[grid.Point]grid.Point
	// seen is the visited set for BFS/DFS, including the start.
	seen map[grid.Point]bool
	// cost is the best known accumulated cost for Dijkstra/A*,
	// including the start at 0. Doubles as their visited set.
	cost map[grid.Point]int

	steps    int
	outcome  Outcome
	done     bool
	path     []grid.Point
	goalCost int

	started time.Time
	elapsed time.Duration

	initialized bool
}

// New builds an Engine for one solve attempt over g.
// Returns ErrNilGrid, ErrUnknownAlgorithm, or — when start or goal is
// outside the grid or on a wall — ErrOutOfBounds / ErrWallCell.
func New(g *grid.Grid, start, goal grid.Point, algo Algorithm, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, p := range []grid.Point{start, goal} {
		if !g.InBounds(p) {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
		if g.At(p) == grid.Wall {
			return nil, fmt.Errorf("%w: %v", ErrWallCell, p)
		}
	}

	e := &Engine{
		grid:        g,
		start:       start,
		goal:        goal,
		algo:        algo,
		opts:        o,
		parent:      make(map[grid.Point]grid.Point),
		started:     time.Now(),
		initialized: true,
	}

	switch algo {
	case BFS:
		e.frontier = &fifoFrontier{}
		e.seen = map[grid.Point]bool{start: true}
	case DFS:
		e.frontier = &lifoFrontier{}
		e.seen = map[grid.Point]bool{start: true}
	case Dijkstra, AStar:
		e.frontier = &minFrontier{}
		e.cost = map[grid.Point]int{start: 0}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}

	e.frontier.push(frontierItem{cell: start, g: 0, f: e.priority(start, 0)})

	return e, nil
}

// priority computes the frontier ordering key for a cell discovered at
// accumulated cost g. Only heap frontiers consult it.
func (e *Engine) priority(p grid.Point, g int) int {
	if e.algo == AStar {
		return g + grid.Manhattan(p, e.goal)
	}

	return g
}

// Step advances the search by exactly one unit of work: pop one frontier
// element, check it against the goal, and otherwise expand its (at most
// four) neighbors.
//
// The returned StepResult carries Continue plus any newly discovered
// cells, GoalReached plus the start→goal path, or Exhausted. After a
// terminal outcome further calls are no-ops returning the same result.
// Step on an engine not built with New returns ErrNotInitialized.
func (e *Engine) Step() (StepResult, error) {
	if e == nil || !e.initialized {
		return StepResult{}, ErrNotInitialized
	}
	if e.done {
		return StepResult{Outcome: e.outcome, Path: e.path}, nil
	}

	item, ok := e.frontier.pop()
	if !ok {
		e.finish(Exhausted)

		return StepResult{Outcome: Exhausted}, nil
	}

	e.steps++
	e.opts.OnExpand(item.cell)

	if item.cell == e.goal {
		e.goalCost = item.g
		e.path, _ = ReconstructPath(e.parent, e.start, e.goal)
		e.finish(GoalReached)

		return StepResult{Outcome: GoalReached, Path: e.path}, nil
	}

	return StepResult{Outcome: Continue, Visited: e.expand(item)}, nil
}

// expand pushes the expandable neighbors of item and returns the cells
// newly discovered (or, for the cost-based variants, newly improved).
func (e *Engine) expand(item frontierItem) []grid.Point {
	var visited []grid.Point
	for _, n := range e.grid.PassageNeighbors(item.cell) {
		switch e.algo {
		case BFS, DFS:
			// First visit wins; an already-recorded parent is final.
			if e.seen[n] {
				continue
			}
			e.seen[n] = true
			e.parent[n] = item.cell
			e.frontier.push(frontierItem{cell: n, g: item.g + 1})
		case Dijkstra, AStar:
			newCost := item.g + 1
			if best, known := e.cost[n]; known && newCost >= best {
				continue
			}
			// Strictly cheaper (or first) route: re-parent and push a
			// duplicate heap entry rather than decreasing the old key.
			// A stale entry popped later is simply re-expanded; the
			// cost check above keeps that harmless and finite.
			e.cost[n] = newCost
			e.parent[n] = item.cell
			e.frontier.push(frontierItem{cell: n, g: newCost, f: e.priority(n, newCost)})
		}
		visited = append(visited, n)
	}

	return visited
}

// finish freezes the terminal outcome and the elapsed duration.
func (e *Engine) finish(o Outcome) {
	e.outcome = o
	e.done = true
	e.elapsed = time.Since(e.started)
}

// Done reports whether the engine has reached a terminal outcome.
func (e *Engine) Done() bool { return e.done }

// Outcome returns the engine's current outcome classification; it is
// Continue until the search terminates.
func (e *Engine) Outcome() Outcome { return e.outcome }

// Algorithm returns the variant this engine was built with.
func (e *Engine) Algorithm() Algorithm { return e.algo }

// Start returns the start cell.
func (e *Engine) Start() grid.Point { return e.start }

// Goal returns the goal cell.
func (e *Engine) Goal() grid.Point { return e.goal }

// Steps returns the number of frontier pops performed so far.
func (e *Engine) Steps() int { return e.steps }

// VisitedCount returns how many distinct cells the search has touched,
// including the start.
func (e *Engine) VisitedCount() int {
	if e.seen != nil {
		return len(e.seen)
	}

	return len(e.cost)
}

// Cost returns the accumulated step cost at the goal. It is meaningful
// only after GoalReached; Dijkstra and A* report the optimal cost, BFS
// the shortest step count, DFS whatever its path happened to cost.
func (e *Engine) Cost() int { return e.goalCost }

// Path returns a copy of the reconstructed start→goal path, or ErrNoPath
// while the search is unfinished or terminated Exhausted.
func (e *Engine) Path() ([]grid.Point, error) {
	if !e.done || e.outcome != GoalReached {
		return nil, ErrNoPath
	}
	out := make([]grid.Point, len(e.path))
	copy(out, e.path)

	return out, nil
}

// Elapsed returns the wall-clock duration of the solve: live while the
// search runs, frozen at the moment it terminated afterwards.
func (e *Engine) Elapsed() time.Duration {
	if e.done {
		return e.elapsed
	}

	return time.Since(e.started)
}
