package costtable

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dstar/gridmap"
)

// New returns an empty Table.
func New() *Table {
	return &Table{costs: make(map[pairKey]float64)}
}

// Build bootstraps a Table covering every adjacent pair of g with the
// policy costs: Orthogonal or Diagonal, or Blocked if either endpoint is
// Blocked. Unknown terrain is priced as traversable.
func Build(g *gridmap.Grid) (*Table, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	t := &Table{costs: make(map[pairKey]float64, g.Size()*4)}
	for i := 0; i < g.Size(); i++ {
		cur := g.Coordinate(i)
		curBlocked := g.Terrain(cur) == gridmap.Blocked
		for _, nb := range g.Neighbors(cur.Row, cur.Col) {
			cost := Orthogonal
			if gridmap.Diagonal(cur, nb) {
				cost = Diagonal
			}
			if curBlocked || g.Terrain(nb) == gridmap.Blocked {
				cost = Blocked
			}
			// pairs are visited from both ends; the first write wins
			if _, err := t.SetOnce(cur, nb, cost); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// SetOnce records cost for {a,b} only if the pair is absent.
// Reports whether the value was stored.
func (t *Table) SetOnce(a, b gridmap.Cell, cost float64) (bool, error) {
	if !gridmap.Adjacent(a, b) {
		return false, fmt.Errorf("%w: %v-%v", ErrNotAdjacent, a, b)
	}
	if cost < 0 {
		return false, fmt.Errorf("%w: %v-%v cost=%g", ErrNegativeCost, a, b, cost)
	}
	k := keyOf(a, b)
	if _, ok := t.costs[k]; ok {
		return false, nil
	}
	t.costs[k] = cost

	return true, nil
}

// Raise overwrites the cost of {a,b}. The pair must already be recorded:
// raising an absent pair means the bootstrap missed it and returns ErrUnsetPair.
func (t *Table) Raise(a, b gridmap.Cell, cost float64) error {
	if cost < 0 {
		return fmt.Errorf("%w: %v-%v cost=%g", ErrNegativeCost, a, b, cost)
	}
	k := keyOf(a, b)
	if _, ok := t.costs[k]; !ok {
		return fmt.Errorf("%w: %v-%v", ErrUnsetPair, a, b)
	}
	t.costs[k] = cost

	return nil
}

// Lookup returns the recorded cost of {a,b}, or ErrUnsetPair.
func (t *Table) Lookup(a, b gridmap.Cell) (float64, error) {
	c, ok := t.costs[keyOf(a, b)]
	if !ok {
		return 0, fmt.Errorf("%w: %v-%v", ErrUnsetPair, a, b)
	}

	return c, nil
}

// Has reports whether {a,b} has a recorded cost.
func (t *Table) Has(a, b gridmap.Cell) bool {
	_, ok := t.costs[keyOf(a, b)]

	return ok
}

// Len returns the number of recorded pairs.
func (t *Table) Len() int { return len(t.costs) }

// Pairs returns every recorded pair sorted by A then B.
func (t *Table) Pairs() []Pair {
	out := make([]Pair, 0, len(t.costs))
	for k, c := range t.costs {
		out = append(out, Pair{A: k.a, B: k.b, Cost: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return less(out[i].A, out[j].A)
		}

		return less(out[i].B, out[j].B)
	})

	return out
}

func less(a, b gridmap.Cell) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}

	return a.Col < b.Col
}
