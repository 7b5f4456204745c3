package dstar

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/dstar/costtable"
	"github.com/katalvlaran/dstar/gridmap"
)

// Planner owns the search state for one agent on one grid. The grid and the
// cost table are mutated in place as obstacles are discovered.
type Planner struct {
	grid    *gridmap.Grid
	costs   *costtable.Table
	options Options
	log     *slog.Logger
	sensor  Sensor

	nodes    []node
	open     *frontier
	seeded   bool
	planned  bool
	maxSteps int
	stats    Stats
}

// New builds a Planner over g. A nil costs table is bootstrapped from g with
// costtable.Build; a supplied table must cover every adjacent pair.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Options must be valid (ErrBadMaxSteps).
//  3. The longest path on g must stay below the sentinel (ErrGridTooLarge).
//  4. costs must cover every adjacent pair (ErrIncompleteCosts).
func New(g *gridmap.Grid, costs *costtable.Table, opts ...Option) (*Planner, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if maxPathCost(g) >= costtable.Blocked {
		return nil, fmt.Errorf("%w: %d×%d cells", ErrGridTooLarge, g.Rows(), g.Cols())
	}

	if costs == nil {
		var err error
		if costs, err = costtable.Build(g); err != nil {
			return nil, err
		}
	} else if err := checkCoverage(g, costs); err != nil {
		return nil, err
	}

	sensor := cfg.Sensor
	if sensor == nil {
		sensor = pessimistic{grid: g}
	}
	maxSteps := cfg.MaxSteps
	if maxSteps == 0 {
		maxSteps = 1024 + 256*g.Size()
	}

	nodes := make([]node, g.Size())
	for i := range nodes {
		nodes[i] = node{tag: TagNew, parent: noParent, pos: -1}
	}

	return &Planner{
		grid:     g,
		costs:    costs,
		options:  cfg,
		log:      cfg.Logger.With(slog.String("component", "dstar")),
		sensor:   sensor,
		nodes:    nodes,
		open:     newFrontier(nodes),
		maxSteps: maxSteps,
	}, nil
}

// checkCoverage verifies the bootstrap contract: every adjacent pair has a cost.
func checkCoverage(g *gridmap.Grid, costs *costtable.Table) error {
	for i := 0; i < g.Size(); i++ {
		a := g.Coordinate(i)
		for _, b := range g.Neighbors(a.Row, a.Col) {
			if !costs.Has(a, b) {
				return fmt.Errorf("%w: %w: %v-%v", ErrIncompleteCosts, costtable.ErrUnsetPair, a, b)
			}
		}
	}

	return nil
}

// Insert queues cell with candidate cost h, applying the tag rules:
//
//	NEW     k = h = candidate; tag → OPEN
//	OPEN    k = min(k, candidate); h = candidate; requeued with the new key
//	CLOSED  k = min(round(h), candidate); h = candidate; tag → OPEN (reopen)
//
// The candidate is clamped to costtable.Blocked.
func (p *Planner) Insert(cell gridmap.Cell, candidate float64) error {
	if !p.grid.Contains(cell) {
		return fmt.Errorf("%w: %v", gridmap.ErrOutOfBounds, cell)
	}
	p.insert(p.grid.Index(cell), candidate)

	return nil
}

func (p *Planner) insert(idx int, candidate float64) {
	candidate = math.Min(candidate, costtable.Blocked)
	n := &p.nodes[idx]
	switch n.tag {
	case TagNew:
		n.k, n.h = candidate, candidate
		n.tag = TagOpen
		p.open.push(idx)
	case TagOpen:
		p.open.remove(idx)
		n.k = math.Min(n.k, candidate)
		n.h = candidate
		p.open.push(idx)
	case TagClosed:
		n.k = math.Min(round1(n.h), candidate)
		n.h = candidate
		n.tag = TagOpen
		p.open.push(idx)
		p.stats.Reopenings++
	}
	p.stats.Insertions++
	p.options.OnInsert(p.view(idx))
}

// Step expands the frontier's minimum-key cell once and returns the new
// minimum key. ok is false (and minK is Exhausted) when the frontier is empty,
// either before or after this expansion, or when the agent's cell has both h
// and k pinned at the blocked sentinel. Once exhausted, further calls change
// nothing.
func (p *Planner) Step() (minK float64, ok bool) {
	// 1) Exhausted: nothing to expand, or the agent is provably cut off.
	if p.open.Len() == 0 {
		return Exhausted, false
	}
	agent := &p.nodes[p.grid.Index(p.grid.Agent())]
	if agent.h == costtable.Blocked && agent.k == costtable.Blocked {
		return Exhausted, false
	}

	// 2) Pop X and close it.
	xi := p.open.popMin()
	x := &p.nodes[xi]
	kOld := x.k
	x.tag = TagClosed
	p.stats.Expansions++
	xc := p.grid.Coordinate(xi)
	neighbors := p.grid.Neighbors(xc.Row, xc.Col)

	// 3) Raise state: try to lower h(X) through neighbours final at kOld.
	if kOld < x.h {
		for _, yc := range neighbors {
			yi := p.grid.Index(yc)
			y := &p.nodes[yi]
			if y.tag == TagNew {
				continue
			}
			if viaY := p.via(yi, xi); y.h <= kOld && x.h > viaY {
				x.parent = yi
				x.h = viaY
			}
		}
	}

	if kOld == x.h {
		// 4) Lower state: propagate h(X) to neighbours.
		for _, yc := range neighbors {
			yi := p.grid.Index(yc)
			y := &p.nodes[yi]
			viaX := p.via(xi, yi)
			if y.tag == TagNew ||
				(y.parent == xi && y.h != viaX) ||
				(y.parent != xi && y.h > viaX) {
				y.parent = xi
				p.insert(yi, viaX)
			}
		}
	} else {
		// 5) Raise correction: push increases outward, requeue X or reopen
		// neighbours that can still lower X.
		for _, yc := range neighbors {
			yi := p.grid.Index(yc)
			y := &p.nodes[yi]
			viaX := p.via(xi, yi)
			switch {
			case y.tag == TagNew || (y.parent == xi && y.h != viaX):
				y.parent = xi
				p.insert(yi, viaX)
			case y.parent != xi && y.h > viaX:
				p.insert(xi, round1(x.h))
			case y.parent != xi && x.h > p.via(yi, xi) && y.tag == TagClosed && y.h > kOld:
				p.insert(yi, round1(y.h))
			}
		}
	}

	view := p.view(xi)
	p.log.Debug("expanded", slog.String("cell", xc.String()),
		slog.Float64("k_old", kOld), slog.Float64("h", view.H), slog.String("tag", view.Tag.String()))
	p.options.OnExpand(view)

	// 6) New minimum key.
	if top, ok := p.open.peek(); ok {
		return p.nodes[top].k, true
	}

	return Exhausted, false
}

// via returns h(from) + cost(from,to), rounded to one decimal and clamped
// to the blocked sentinel. A missing cost is an invariant violation.
func (p *Planner) via(from, to int) float64 {
	a, b := p.grid.Coordinate(from), p.grid.Coordinate(to)
	c, err := p.costs.Lookup(a, b)
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrIncompleteCosts, err))
	}

	return math.Min(round1(p.nodes[from].h+c), costtable.Blocked)
}

// round1 rounds v to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Seed queues the goal with cost zero. Only the first call has an effect;
// Plan calls it implicitly. Callers driving Step by hand seed first.
func (p *Planner) Seed() {
	p.seed()
}

func (p *Planner) seed() {
	if p.seeded {
		return
	}
	p.seeded = true
	p.insert(p.grid.Index(p.grid.Goal()), 0)
}

// Plan seeds the frontier at the goal (once) and expands until the agent's
// cell is CLOSED or the frontier is exhausted. It returns PathFound if the
// agent already stands on the goal, StepContinues if a route is ready, and
// Unreachable otherwise.
func (p *Planner) Plan() (Outcome, error) {
	p.seed()
	ai := p.grid.Index(p.grid.Agent())
	for steps := 0; p.nodes[ai].tag != TagClosed; steps++ {
		if steps >= p.maxSteps {
			return Unreachable, fmt.Errorf("%w: %d expansions", ErrStepLimit, steps)
		}
		if _, ok := p.Step(); !ok {
			break
		}
	}

	p.planned = true
	out := p.outcome()
	p.log.Info("initial plan",
		slog.String("outcome", out.String()),
		slog.Float64("h", p.nodes[ai].h),
		slog.Int("expansions", p.stats.Expansions))

	return out, nil
}

// outcome classifies the agent's current situation without mutating state.
func (p *Planner) outcome() Outcome {
	agent := p.grid.Agent()
	if agent == p.grid.Goal() {
		return PathFound
	}
	n := p.nodes[p.grid.Index(agent)]
	if n.tag == TagNew || n.h >= costtable.Blocked || n.parent == noParent {
		return Unreachable
	}

	return StepContinues
}

// ModifyCost records that cell is blocked: every incident edge is raised to
// the sentinel, the terrain is reclassified, and a CLOSED cell is reopened
// with the sentinel as its candidate so the increase propagates.
func (p *Planner) ModifyCost(cell gridmap.Cell) error {
	if !p.grid.Contains(cell) {
		return fmt.Errorf("%w: %v", gridmap.ErrOutOfBounds, cell)
	}
	for _, nb := range p.grid.Neighbors(cell.Row, cell.Col) {
		if err := p.costs.Raise(cell, nb, costtable.Blocked); err != nil {
			return fmt.Errorf("dstar: modify cost: %w", err)
		}
	}
	if err := p.grid.SetTerrain(cell, gridmap.Blocked); err != nil {
		return err
	}
	idx := p.grid.Index(cell)
	if p.nodes[idx].tag == TagClosed {
		p.insert(idx, costtable.Blocked)
	}
	p.stats.Discoveries++
	p.log.Info("obstacle discovered", slog.String("cell", cell.String()))
	p.options.OnDiscover(cell)

	return nil
}

// repair expands until the frontier minimum reaches h(agent) or the search
// is exhausted.
func (p *Planner) repair() error {
	ai := p.grid.Index(p.grid.Agent())
	for steps := 0; ; steps++ {
		if steps >= p.maxSteps {
			return fmt.Errorf("%w: %d expansions during repair", ErrStepLimit, steps)
		}
		minK, ok := p.Step()
		if !ok || minK >= p.nodes[ai].h {
			return nil
		}
	}
}
