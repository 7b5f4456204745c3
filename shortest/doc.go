// Package shortest is a reference single-source Dijkstra over a terrain grid
// and its edge cost table.
//
// It exists to cross-check the incremental planner: a D* tree built from
// the goal must agree with plain Dijkstra from the goal on every cell the
// planner has finalised.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = rows×cols, E ≤ 4V.
//   - Space: O(V + E) with lazy decrease-key.
//
// Options:
//
//   - WithImpassable(t): edges with cost ≥ t are treated as walls (default
//     costtable.Blocked).
//
// Errors (sentinel):
//
//   - ErrNilGrid, ErrNilCosts: nil inputs.
//   - ErrSourceOutOfBounds: the source cell is outside the grid.
//   - ErrBadImpassable: the threshold is not positive.
package shortest
