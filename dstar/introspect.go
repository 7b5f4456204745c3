package dstar

import (
	"sort"

	"github.com/katalvlaran/dstar/costtable"
	"github.com/katalvlaran/dstar/gridmap"
)

// view copies the state of arena slot idx.
func (p *Planner) view(idx int) NodeView {
	n := p.nodes[idx]
	c := p.grid.Coordinate(idx)
	v := NodeView{
		Cell:    c,
		Tag:     n.tag,
		Terrain: p.grid.Terrain(c),
		H:       n.h,
		K:       n.k,
	}
	if n.parent != noParent {
		v.Parent = p.grid.Coordinate(n.parent)
		v.HasParent = true
	}

	return v
}

// Node returns a copy of the search state of cell. ok is false if cell is
// out of bounds.
func (p *Planner) Node(cell gridmap.Cell) (NodeView, bool) {
	if !p.grid.Contains(cell) {
		return NodeView{}, false
	}

	return p.view(p.grid.Index(cell)), true
}

// Frontier returns copies of every queued cell in expansion order
// (ascending k, ties in push order).
func (p *Planner) Frontier() []NodeView {
	idx := make([]int, len(p.open.items))
	copy(idx, p.open.items)
	sort.Slice(idx, func(i, j int) bool {
		a, b := p.nodes[idx[i]], p.nodes[idx[j]]
		if a.k != b.k {
			return a.k < b.k
		}

		return a.seq < b.seq
	})
	out := make([]NodeView, len(idx))
	for i, v := range idx {
		out[i] = p.view(v)
	}

	return out
}

// MinKey returns the smallest frontier key, or Exhausted if the frontier is empty.
func (p *Planner) MinKey() float64 {
	if top, ok := p.open.peek(); ok {
		return p.nodes[top].k
	}

	return Exhausted
}

// Path follows backpointers from the agent toward the goal. The result
// starts at the agent's cell and ends at the goal when a complete chain
// exists; otherwise it stops at the last cell with a backpointer.
// A cycle, which would violate the tree invariant, truncates the walk.
func (p *Planner) Path() []gridmap.Cell {
	goal := p.grid.Index(p.grid.Goal())
	cur := p.grid.Index(p.grid.Agent())
	seen := make(map[int]struct{})
	out := []gridmap.Cell{p.grid.Coordinate(cur)}
	for cur != goal {
		seen[cur] = struct{}{}
		next := p.nodes[cur].parent
		if next == noParent {
			break
		}
		if _, loop := seen[next]; loop {
			break
		}
		out = append(out, p.grid.Coordinate(next))
		cur = next
	}

	return out
}

// PathCost sums edge costs along path. ok is false if any hop is impassable
// or has no recorded cost.
func (p *Planner) PathCost(path []gridmap.Cell) (cost float64, ok bool) {
	for i := 1; i < len(path); i++ {
		c, err := p.costs.Lookup(path[i-1], path[i])
		if err != nil || blockedCost(c) {
			return 0, false
		}
		cost = round1(cost + c)
	}

	return cost, true
}

// Stats returns event counters since construction.
func (p *Planner) Stats() Stats { return p.stats }

// Grid returns the grid the planner mutates as terrain is discovered.
func (p *Planner) Grid() *gridmap.Grid { return p.grid }

// Costs returns the planner's edge cost table.
func (p *Planner) Costs() *costtable.Table { return p.costs }

// blockedCost reports whether c is the impassable sentinel.
func blockedCost(c float64) bool {
	return c >= costtable.Blocked
}
