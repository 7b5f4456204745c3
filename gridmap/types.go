// Package gridmap defines core types and sentinel errors
// for the gridmap package of github.com/katalvlaran/dstar.
package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid boundaries.
	ErrOutOfBounds = errors.New("gridmap: cell out of bounds")
	// ErrBadRune indicates an unknown rune in the text map format.
	ErrBadRune = errors.New("gridmap: unknown terrain rune")
	// ErrMissingStart indicates the text map has no 'S' marker.
	ErrMissingStart = errors.New("gridmap: map has no start marker")
	// ErrMissingGoal indicates the text map has no 'G' marker.
	ErrMissingGoal = errors.New("gridmap: map has no goal marker")
	// ErrDuplicateMarker indicates more than one 'S' or 'G' marker.
	ErrDuplicateMarker = errors.New("gridmap: start or goal marker appears more than once")
	// ErrMarkersCoincide indicates start and goal share a cell, which the
	// text map format cannot express.
	ErrMarkersCoincide = errors.New("gridmap: start and goal share a cell")
)

// Terrain is the ground-truth class of a cell as currently known.
type Terrain uint8

const (
	// Traversable cells cost 1.0 orthogonally and 1.4 diagonally.
	Traversable Terrain = iota
	// Blocked cells make every incident edge impassable.
	Blocked
	// Unknown cells are priced as Traversable until the agent observes them.
	Unknown
)

// String returns the single-rune text form of t.
func (t Terrain) String() string {
	switch t {
	case Traversable:
		return "O"
	case Blocked:
		return "B"
	case Unknown:
		return "U"
	default:
		return fmt.Sprintf("Terrain(%d)", uint8(t))
	}
}

// ParseTerrain maps a text-format rune to a Terrain.
// Start and goal markers ('S', 'G') are traversable.
func ParseTerrain(r rune) (Terrain, error) {
	switch r {
	case 'O', 'S', 'G':
		return Traversable, nil
	case 'B':
		return Blocked, nil
	case 'U':
		return Unknown, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadRune, r)
	}
}

// Cell identifies a grid position by row and column.
type Cell struct {
	Row, Col int
}

// String formats the cell as "row,col".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// neighborOffsets is the fixed enumeration order: orthogonals, then diagonals.
// Order only affects tie-breaking between equal-cost routes.
var neighborOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, 1}, {0, -1}, // N, S, E, W
	{-1, 1}, {1, -1}, {1, 1}, {-1, -1}, // NE, SW, SE, NW
}

// Grid is a fixed rows×cols terrain arena with start, goal and agent markers.
// Dimensions never change after construction; terrain may be reclassified
// through SetTerrain when the agent observes a cell.
type Grid struct {
	rows, cols int
	terrain    []Terrain
	start      Cell
	goal       Cell
	agent      Cell
}
