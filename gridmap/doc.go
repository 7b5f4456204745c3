// Package gridmap models a fixed-size rectangular terrain grid for an agent
// moving with 8-directional connectivity.
//
// What:
//
//   - Grid stores one Terrain value per cell in a flat row-major arena.
//   - Start, Goal and Agent markers reference cells of the same arena.
//   - Neighbors enumerates up to eight in-bounds neighbours in a fixed order:
//     the four orthogonal cells first (N, S, E, W), then the four diagonals
//     (NE, SW, SE, NW). Out-of-bounds neighbours are silently omitted.
//   - Parse and Load read the plain-text map format (one row per line):
//
//     O  traversable
//     B  blocked
//     U  unknown until observed (priced as traversable)
//     S  start cell (traversable)
//     G  goal cell (traversable)
//
// Why:
//
//   - Planners need cheap, allocation-light adjacency and a single place where
//     discovered terrain is reclassified.
//
// Complexity:
//
//   - InBounds, Index, Coordinate, Terrain: O(1).
//   - Neighbors: O(1) (at most eight cells).
//   - Components: O(R×C), Memory: O(R×C).
//   - Parse: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a referenced cell lies outside the grid.
//   - ErrBadRune: the text format contains an unknown terrain rune.
//   - ErrMissingStart, ErrMissingGoal, ErrDuplicateMarker: S/G marker problems.
package gridmap
