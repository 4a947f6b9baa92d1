// Package grid provides the passive maze data model: an immutable raster
// of Wall and Passage cells addressed by integer Point coordinates.
//
// What
//
//   - Grid: dimensions, O(1) cell lookup, in-bounds checks.
//   - PassageNeighbors: 4-connected walkable neighbors in a fixed order.
//   - Manhattan: the L1 metric used as the A* heuristic.
//
// A Grid never changes after construction; generators build the cell
// matrix first and hand it to New, which deep-copies it. Search state
// lives entirely outside this package.
//
// Complexity (W = width, H = height)
//
//   - Construction: O(W×H)
//   - At / InBounds / PassageNeighbors: O(1)
package grid
