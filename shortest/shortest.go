package shortest

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dstar/costtable"
	"github.com/katalvlaran/dstar/gridmap"
)

// Sentinel errors returned by Distances.
var (
	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("shortest: grid is nil")
	// ErrNilCosts indicates a nil cost table.
	ErrNilCosts = errors.New("shortest: cost table is nil")
	// ErrSourceOutOfBounds indicates the source cell lies outside the grid.
	ErrSourceOutOfBounds = errors.New("shortest: source cell out of bounds")
	// ErrBadImpassable indicates a non-positive impassable threshold.
	ErrBadImpassable = errors.New("shortest: impassable threshold must be positive")
)

// Unreachable is the distance reported for cells with no passable route.
var Unreachable = math.Inf(1)

// Options configures Distances.
type Options struct {
	// Impassable: edges with cost ≥ Impassable are skipped.
	Impassable float64
}

// Option is a functional option for Distances.
type Option func(*Options)

// WithImpassable sets the wall threshold.
func WithImpassable(t float64) Option {
	return func(o *Options) {
		o.Impassable = t
	}
}

// DefaultOptions treats the blocked sentinel as a wall.
func DefaultOptions() Options {
	return Options{Impassable: costtable.Blocked}
}

// Distances computes the cheapest cost from source to every cell of g.
//
// Returns:
//
//   - dist: row-major slice; Unreachable (+Inf) for cells with no route.
//   - prev: row-major predecessor index toward source, -1 for the source and
//     unreachable cells.
func Distances(g *gridmap.Grid, costs *costtable.Table, source gridmap.Cell, opts ...Option) ([]float64, []int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if costs == nil {
		return nil, nil, ErrNilCosts
	}
	if !g.Contains(source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, source)
	}
	if cfg.Impassable <= 0 {
		return nil, nil, ErrBadImpassable
	}

	r := &runner{
		g:       g,
		costs:   costs,
		options: cfg,
		dist:    make([]float64, g.Size()),
		prev:    make([]int, g.Size()),
		visited: make([]bool, g.Size()),
	}
	r.init(g.Index(source))
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// PathCost returns the cheapest cost between from and to, Unreachable if
// none exists.
func PathCost(g *gridmap.Grid, costs *costtable.Table, from, to gridmap.Cell, opts ...Option) (float64, error) {
	dist, _, err := Distances(g, costs, from, opts...)
	if err != nil {
		return 0, err
	}
	if !g.Contains(to) {
		return 0, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, to)
	}

	return dist[g.Index(to)], nil
}

// runner holds the mutable state for a single Distances execution.
type runner struct {
	g       *gridmap.Grid
	costs   *costtable.Table
	options Options
	dist    []float64
	prev    []int
	visited []bool
	pq      nodePQ
}

// init sets every distance to +Inf and pushes the source at zero.
func (r *runner) init(source int) {
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.prev[i] = -1
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: source, dist: 0})
}

// process pops cells in distance order and relaxes their edges.
// Stale heap entries are skipped via visited.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.idx] {
			continue
		}
		r.visited[item.idx] = true
		if err := r.relax(item.idx); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbour of u through u.
func (r *runner) relax(u int) error {
	uc := r.g.Coordinate(u)
	for _, vc := range r.g.Neighbors(uc.Row, uc.Col) {
		w, err := r.costs.Lookup(uc, vc)
		if err != nil {
			return fmt.Errorf("shortest: relax %v: %w", uc, err)
		}
		if w >= r.options.Impassable {
			continue
		}
		v := r.g.Index(vc)
		nd := r.dist[u] + w
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{idx: v, dist: nd})
	}

	return nil
}

// nodeItem is a cell index with its tentative distance.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
