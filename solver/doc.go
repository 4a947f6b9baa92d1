// Package solver provides a stateful, resumable search engine over a
// maze grid, polymorphic over BFS, DFS, Dijkstra, and A*.
//
// What
//
//   - New(grid, start, goal, algorithm) builds one solve attempt.
//   - Step() advances exactly one frontier expansion and reports:
//   - Continue, with the cells newly discovered this step
//   - GoalReached, with the reconstructed start→goal path
//   - Exhausted, when the frontier drains with no path
//   - Terminal outcomes are idempotent: further Step calls return the
//     same result without mutating state.
//   - ReconstructPath rebuilds start→goal from the parent map.
//
// The four variants share one neighbor-expansion loop; only the frontier
// container differs — FIFO queue (BFS), LIFO stack (DFS), or a min-heap
// keyed by accumulated cost (Dijkstra) or cost plus Manhattan distance
// (A*). Neighbors are always examined in the fixed order +x, +y, −x, −y,
// so runs are reproducible on a given grid.
//
// Cost-based variants use lazy decrease-key: a cheaper rediscovery
// pushes a duplicate heap entry, and stale entries popped later are
// re-expanded. The strict less-than relaxation keeps that finite. On a
// uniform-cost 4-connected grid the Manhattan heuristic is admissible
// and consistent, so A*'s first pop of the goal is optimal and matches
// Dijkstra's cost.
//
// Because Step never blocks and does a small bounded amount of work, a
// caller can drive the engine at any cadence — animate it, pause it,
// resume it — without the engine knowing or caring. See package animate.
//
// Complexity (V = passage cells, E ≤ 4V)
//
//   - BFS/DFS: O(V + E) total across all steps, O(V) memory.
//   - Dijkstra/A*: O((V + E) log V) total, O(V + E) heap memory.
//
// Usage
//
//	eng, err := solver.New(g, start, goal, solver.AStar)
//	if err != nil { ... }
//	for {
//	    res, err := eng.Step()
//	    if err != nil { ... }
//	    if res.Outcome != solver.Continue {
//	        break
//	    }
//	    render(res.Visited)
//	}
//
// Errors
//
//   - ErrNilGrid, ErrOutOfBounds, ErrWallCell, ErrUnknownAlgorithm
//     from New for invalid input.
//   - ErrNotInitialized from Step on a zero-value Engine.
//   - ErrNoPath from Path/ReconstructPath when the goal was unreachable.
package solver
