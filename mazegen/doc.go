// Package mazegen produces wall/passage grids using a randomized
// active-set variant of recursive backtracking.
//
// What
//
//   - Generate(width, height, opts...) returns an immutable *grid.Grid.
//   - Dimensions are forced odd (even values increment) and clamped to
//     MinDimension.
//   - The carve picks a uniformly random member of the active carved
//     set each round instead of the most recent one. Compared with
//     strict stack-based backtracking this yields far more branching
//     and dead ends, which is the point: the searches animated on top
//     of these mazes have something to explore.
//
// Guarantees
//
//   - Every Passage cell is 4-connected to (1,1); the carve only ever
//     extends the single connected component seeded there.
//   - Generation cannot fail for any positive dimensions; the only
//     error source is an invalid Option.
//
// Determinism
//
//	With WithSeed or WithRand, Generate is a pure function of
//	(width, height, seed).
//
// Usage
//
//	g, err := mazegen.Generate(21, 21, mazegen.WithSeed(42))
//	if err != nil { ... }
package mazegen
