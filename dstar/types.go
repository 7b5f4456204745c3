package dstar

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/dstar/costtable"
	"github.com/katalvlaran/dstar/gridmap"
)

// Sentinel errors returned by the planner.
var (
	// ErrNilGrid indicates New was called with a nil grid.
	ErrNilGrid = errors.New("dstar: grid is nil")

	// ErrIncompleteCosts indicates the cost table misses an adjacent pair.
	ErrIncompleteCosts = errors.New("dstar: cost table does not cover every adjacent pair")

	// ErrGridTooLarge indicates the longest possible path could reach the
	// blocked-cost sentinel, which would make real costs indistinguishable
	// from walls.
	ErrGridTooLarge = errors.New("dstar: grid too large for the blocked-cost sentinel")

	// ErrStepLimit indicates the expansion guard was exceeded.
	ErrStepLimit = errors.New("dstar: expansion step limit exceeded")

	// ErrBadMaxSteps indicates a negative step limit.
	ErrBadMaxSteps = errors.New("dstar: MaxSteps must be non-negative")
)

// Exhausted is the key Step reports when no expansion is possible.
const Exhausted = -1.0

// noParent marks a cell without a backpointer.
const noParent = -1

// Tag is a cell's search-membership status.
type Tag uint8

const (
	// TagNew cells have never entered the frontier.
	TagNew Tag = iota
	// TagOpen cells are currently in the frontier.
	TagOpen
	// TagClosed cells have been expanded and are not queued.
	TagClosed
)

// String returns the upper-case tag name.
func (t Tag) String() string {
	switch t {
	case TagNew:
		return "NEW"
	case TagOpen:
		return "OPEN"
	case TagClosed:
		return "CLOSED"
	default:
		return fmt.Sprintf("Tag(%d)", uint8(t))
	}
}

// Outcome is the result of planning or moving.
type Outcome uint8

const (
	// StepContinues means a route is available and the agent has not arrived.
	StepContinues Outcome = iota
	// PathFound means the agent stands on the goal.
	PathFound
	// Unreachable means expansion proved no route to the goal exists.
	Unreachable
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case StepContinues:
		return "continue"
	case PathFound:
		return "goal reached"
	case Unreachable:
		return "goal unreachable"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// NodeView is a read-only copy of one cell's search state.
type NodeView struct {
	Cell      gridmap.Cell
	Tag       Tag
	Terrain   gridmap.Terrain
	H         float64
	K         float64
	Parent    gridmap.Cell // valid only if HasParent
	HasParent bool
}

// Stats counts planner events since construction.
type Stats struct {
	Expansions  int // cells popped by Step
	Insertions  int // calls to insert, any tag
	Reopenings  int // CLOSED → OPEN transitions
	Discoveries int // obstacle observations handled by ModifyCost
	Moves       int // agent hops
}

// Result is the outcome of Traverse.
type Result struct {
	Outcome Outcome
	Path    []gridmap.Cell // cells actually visited, starting at the initial agent cell
	Cost    float64        // sum of edge costs along Path
	Stats   Stats
}

// Sensor reveals the true terrain of a cell when the agent is about to
// enter it.
type Sensor interface {
	Sense(c gridmap.Cell) gridmap.Terrain
}

// SensorFunc adapts a function to Sensor.
type SensorFunc func(c gridmap.Cell) gridmap.Terrain

// Sense calls f(c).
func (f SensorFunc) Sense(c gridmap.Cell) gridmap.Terrain { return f(c) }

// GroundTruth is a Sensor backed by a fully known grid of the same size.
type GroundTruth struct {
	Grid *gridmap.Grid
}

// Sense returns the terrain recorded in the truth grid; Unknown in the
// truth grid is read as Blocked.
func (g GroundTruth) Sense(c gridmap.Cell) gridmap.Terrain {
	if t := g.Grid.Terrain(c); t != gridmap.Unknown {
		return t
	}

	return gridmap.Blocked
}

// pessimistic treats every Unknown cell as an obstacle once observed.
type pessimistic struct {
	grid *gridmap.Grid
}

func (p pessimistic) Sense(c gridmap.Cell) gridmap.Terrain {
	if p.grid.Terrain(c) == gridmap.Unknown {
		return gridmap.Blocked
	}

	return p.grid.Terrain(c)
}

// Options configures a Planner.
//
//   - Logger: structured logger; defaults to a discarding handler.
//   - Sensor: true-terrain oracle; nil means every Unknown cell is blocked.
//   - MaxSteps: expansion guard per Plan/Advance call; 0 derives a bound
//     from the grid size.
//   - OnExpand, OnInsert, OnDiscover, OnMove: optional hooks, never nil
//     after DefaultOptions.
type Options struct {
	Logger   *slog.Logger
	Sensor   Sensor
	MaxSteps int

	OnExpand   func(NodeView)
	OnInsert   func(NodeView)
	OnDiscover func(gridmap.Cell)
	OnMove     func(gridmap.Cell)

	err error
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger, the pessimistic
// sensor, a derived step limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExpand:   func(NodeView) {},
		OnInsert:   func(NodeView) {},
		OnDiscover: func(gridmap.Cell) {},
		OnMove:     func(gridmap.Cell) {},
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithSensor sets the true-terrain oracle.
func WithSensor(s Sensor) Option {
	return func(o *Options) {
		if s != nil {
			o.Sensor = s
		}
	}
}

// WithMaxSteps sets the expansion guard. Negative values are recorded and
// surface as ErrBadMaxSteps from New.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrBadMaxSteps
			return
		}
		o.MaxSteps = n
	}
}

// WithOnExpand registers a callback run after each cell is popped and processed.
func WithOnExpand(fn func(NodeView)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = chainView(o.OnExpand, fn)
		}
	}
}

// WithOnInsert registers a callback run after each insert or reinsert.
func WithOnInsert(fn func(NodeView)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnInsert = chainView(o.OnInsert, fn)
		}
	}
}

// WithOnDiscover registers a callback run when a blocked cell is observed.
func WithOnDiscover(fn func(gridmap.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = chainCell(o.OnDiscover, fn)
		}
	}
}

// WithOnMove registers a callback run after each agent hop.
func WithOnMove(fn func(gridmap.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMove = chainCell(o.OnMove, fn)
		}
	}
}

// hooks compose so several observers (metrics, rendering) can coexist.
func chainView(prev, next func(NodeView)) func(NodeView) {
	return func(v NodeView) {
		prev(v)
		next(v)
	}
}

func chainCell(prev, next func(gridmap.Cell)) func(gridmap.Cell) {
	return func(c gridmap.Cell) {
		prev(c)
		next(c)
	}
}

// maxPathCost is the most any simple path on g can cost.
func maxPathCost(g *gridmap.Grid) float64 {
	return float64(g.Size()) * costtable.Diagonal
}
