package costtable

import (
	"errors"

	"github.com/katalvlaran/dstar/gridmap"
)

// Cost policy constants.
const (
	// Orthogonal is the cost between horizontally or vertically adjacent cells.
	Orthogonal = 1.0
	// Diagonal is the cost between diagonally adjacent cells (≈√2, one decimal).
	Diagonal = 1.4
	// Blocked is the finite sentinel standing in for an impassable edge.
	Blocked = 10000.0
)

// Sentinel errors for cost table operations.
var (
	// ErrUnsetPair indicates a lookup or raise on a pair that was never recorded.
	ErrUnsetPair = errors.New("costtable: edge cost was never initialised")
	// ErrNotAdjacent indicates the two cells are not 8-neighbours.
	ErrNotAdjacent = errors.New("costtable: cells are not adjacent")
	// ErrNegativeCost indicates a negative cost was supplied.
	ErrNegativeCost = errors.New("costtable: negative edge cost")
	// ErrNilGrid indicates Build was called with a nil grid.
	ErrNilGrid = errors.New("costtable: grid is nil")
)

// pairKey is the canonical unordered key: lower cell first.
type pairKey struct {
	a, b gridmap.Cell
}

func keyOf(a, b gridmap.Cell) pairKey {
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		a, b = b, a
	}

	return pairKey{a: a, b: b}
}

// Pair is one recorded edge cost, A ordered before B.
type Pair struct {
	A, B gridmap.Cell
	Cost float64
}

// Table is a mutable, symmetric mapping from adjacent cell pairs to costs.
// The zero value is not usable; construct with New or Build.
// A Table is not safe for concurrent mutation.
type Table struct {
	costs map[pairKey]float64
}
