// Package solver defines algorithm variants, step outcomes, options,
// and error definitions for the steppable maze search engine.
package solver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mazelab/mazesolve/grid"
)

// Sentinel errors for engine construction and stepping.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to New.
	ErrNilGrid = errors.New("solver: grid is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("solver: cell out of bounds")

	// ErrWallCell is returned when start or goal sits on a Wall cell.
	ErrWallCell = errors.New("solver: cell is a wall")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the
	// four defined variants.
	ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

	// ErrNotInitialized is returned by Step on an engine that was not
	// built with New. This is a programming error at the call site.
	ErrNotInitialized = errors.New("solver: engine not initialized")

	// ErrNoPath marks the terminal "goal unreachable" outcome. It is a
	// result marker, not a failure of the engine itself.
	ErrNoPath = errors.New("solver: no path to goal")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Algorithm selects the search variant the engine runs.
type Algorithm int

const (
	// BFS explores a FIFO frontier; shortest path in step count.
	BFS Algorithm = iota
	// DFS explores a LIFO frontier; finds a path, not the shortest one.
	DFS
	// Dijkstra explores by accumulated cost via a min-priority queue.
	Dijkstra
	// AStar explores by cost plus Manhattan-distance heuristic.
	AStar
)

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case Dijkstra:
		return "Dijkstra"
	case AStar:
		return "A*"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name ("bfs", "dfs", "dijkstra",
// "astar" or "a*") to its Algorithm value.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Outcome classifies the result of a single Step call.
type Outcome int

const (
	// Continue means the frontier advanced and the search is still going.
	Continue Outcome = iota
	// GoalReached means the goal was popped from the frontier; the
	// StepResult carries the reconstructed path.
	GoalReached
	// Exhausted means the frontier drained without reaching the goal.
	Exhausted
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "Continue"
	case GoalReached:
		return "GoalReached"
	case Exhausted:
		return "Exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// StepResult reports what one unit of search work produced.
//
// Visited lists the cells newly discovered during this step, in
// expansion order; a renderer paints these as "frontier expanded here".
// Path is non-nil only when Outcome is GoalReached and runs start→goal.
type StepResult struct {
	Outcome Outcome
	Visited []grid.Point
	Path    []grid.Point
}

// Option configures engine behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks that customize engine execution.
type Options struct {
	// OnExpand is called once per Step with the cell popped from the
	// frontier, before the goal check. Useful for tracing and metrics.
	OnExpand func(p grid.Point)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(grid.Point) {},
	}
}

// WithOnExpand registers a callback invoked for every frontier pop.
func WithOnExpand(fn func(p grid.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
