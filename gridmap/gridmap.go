// Package gridmap provides a rectangular terrain grid with 8-connected
// adjacency for single-agent path planning.
package gridmap

// New constructs an all-traversable grid of the given size.
// Start, Goal and Agent default to (0,0).
// Returns ErrEmptyGrid if rows or cols is not positive.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		rows:    rows,
		cols:    cols,
		terrain: make([]Terrain, rows*cols),
	}, nil
}

// FromTerrain constructs a Grid from a non-empty, rectangular 2D slice,
// indexed as values[row][col]. The input is copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromTerrain(values [][]Terrain) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		copy(g.terrain[r*cols:(r+1)*cols], values[r])
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns rows×cols, the number of cells in the arena.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Contains reports whether c lies within the grid boundaries.
func (g *Grid) Contains(c Cell) bool {
	return g.InBounds(c.Row, c.Col)
}

// Index maps c to its row-major arena index: Row*Cols + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// Terrain returns the currently known terrain of c.
// Out-of-bounds cells report Blocked.
func (g *Grid) Terrain(c Cell) Terrain {
	if !g.Contains(c) {
		return Blocked
	}

	return g.terrain[g.Index(c)]
}

// SetTerrain reclassifies c. Used when the agent observes an Unknown cell.
func (g *Grid) SetTerrain(c Cell, t Terrain) error {
	if !g.Contains(c) {
		return ErrOutOfBounds
	}
	g.terrain[g.Index(c)] = t

	return nil
}

// Start returns the start cell.
func (g *Grid) Start() Cell { return g.start }

// Goal returns the goal cell.
func (g *Grid) Goal() Cell { return g.goal }

// Agent returns the agent's current cell.
func (g *Grid) Agent() Cell { return g.agent }

// SetStart sets the start cell and moves the agent onto it.
func (g *Grid) SetStart(c Cell) error {
	if !g.Contains(c) {
		return ErrOutOfBounds
	}
	g.start = c
	g.agent = c

	return nil
}

// SetGoal sets the goal cell.
func (g *Grid) SetGoal(c Cell) error {
	if !g.Contains(c) {
		return ErrOutOfBounds
	}
	g.goal = c

	return nil
}

// SetAgent moves the agent marker to c.
func (g *Grid) SetAgent(c Cell) error {
	if !g.Contains(c) {
		return ErrOutOfBounds
	}
	g.agent = c

	return nil
}

// Neighbors returns the in-bounds 8-neighbours of (row,col) in the fixed
// enumeration order: N, S, E, W, NE, SW, SE, NW.
// Out-of-bounds neighbours are omitted, never reported as an error.
// Complexity: O(1).
func (g *Grid) Neighbors(row, col int) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		out = append(out, Cell{Row: nr, Col: nc})
	}

	return out
}

// Adjacent reports whether a and b are distinct 8-neighbours.
func Adjacent(a, b Cell) bool {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)

	return dr <= 1 && dc <= 1 && (dr+dc) > 0
}

// Diagonal reports whether a and b are diagonal neighbours.
func Diagonal(a, b Cell) bool {
	return abs(a.Row-b.Row) == 1 && abs(a.Col-b.Col) == 1
}

// Clone returns a deep copy of g, markers included.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.terrain = make([]Terrain, len(g.terrain))
	copy(cp.terrain, g.terrain)

	return &cp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
