package gridmap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dstar/gridmap"
)

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

// TestFromTerrain_Errors verifies that FromTerrain rejects empty or ragged inputs.
func TestFromTerrain_Errors(t *testing.T) {
	O := gridmap.Traversable
	cases := []struct {
		name string
		grid [][]gridmap.Terrain
		err  error
	}{
		{"EmptyRows", [][]gridmap.Terrain{}, gridmap.ErrEmptyGrid},
		{"EmptyCols", [][]gridmap.Terrain{{}}, gridmap.ErrEmptyGrid},
		{"NonRectangular", [][]gridmap.Terrain{{O, O}, {O}}, gridmap.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridmap.FromTerrain(tc.grid)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := gridmap.New(0, 3)
	assert.ErrorIs(t, err, gridmap.ErrEmptyGrid)
}

// TestInBounds checks InBounds and Contains on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := gridmap.New(2, 3)
	require.NoError(t, err)

	for _, c := range []gridmap.Cell{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.Contains(c), "Contains(%v)", c)
	}
	for _, c := range []gridmap.Cell{{-1, 0}, {2, 0}, {0, 3}, {1, -1}} {
		assert.False(t, g.Contains(c), "Contains(%v)", c)
	}
	assert.Equal(t, gridmap.Blocked, g.Terrain(gridmap.Cell{Row: 5, Col: 5}))
}

// TestIndexCoordinate_RoundTrip checks the row-major mapping.
func TestIndexCoordinate_RoundTrip(t *testing.T) {
	g, err := gridmap.New(3, 4)
	require.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		assert.Equal(t, i, g.Index(c))
	}
	assert.Equal(t, gridmap.Cell{Row: 2, Col: 1}, g.Coordinate(9))
}

// TestMarkers_OutOfBounds verifies marker setters validate bounds.
func TestMarkers_OutOfBounds(t *testing.T) {
	g, err := gridmap.New(2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, g.SetStart(gridmap.Cell{Row: 2, Col: 0}), gridmap.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetGoal(gridmap.Cell{Row: 0, Col: -1}), gridmap.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetAgent(gridmap.Cell{Row: 9, Col: 9}), gridmap.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetTerrain(gridmap.Cell{Row: 9, Col: 9}, gridmap.Blocked), gridmap.ErrOutOfBounds)

	require.NoError(t, g.SetStart(gridmap.Cell{Row: 1, Col: 1}))
	assert.Equal(t, g.Start(), g.Agent(), "SetStart moves the agent")
}

//----------------------------------------------------------------------------//
// Adjacency
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the fixed N,S,E,W,NE,SW,SE,NW enumeration.
func TestNeighbors_Order(t *testing.T) {
	g, err := gridmap.New(3, 3)
	require.NoError(t, err)

	got := g.Neighbors(1, 1)
	want := []gridmap.Cell{
		{0, 1}, {2, 1}, {1, 2}, {1, 0},
		{0, 2}, {2, 0}, {2, 2}, {0, 0},
	}
	assert.Equal(t, want, got)
}

// TestNeighbors_Corners verifies out-of-bounds neighbours are omitted.
func TestNeighbors_Corners(t *testing.T) {
	g, err := gridmap.New(3, 3)
	require.NoError(t, err)

	assert.Len(t, g.Neighbors(0, 0), 3)
	assert.Len(t, g.Neighbors(0, 1), 5)
	assert.Len(t, g.Neighbors(2, 2), 3)

	single, err := gridmap.New(1, 1)
	require.NoError(t, err)
	assert.Empty(t, single.Neighbors(0, 0))
}

// TestNeighbors_Symmetric verifies adjacency is symmetric across the grid.
func TestNeighbors_Symmetric(t *testing.T) {
	g, err := gridmap.New(4, 5)
	require.NoError(t, err)
	for i := 0; i < g.Size(); i++ {
		a := g.Coordinate(i)
		for _, b := range g.Neighbors(a.Row, a.Col) {
			assert.True(t, gridmap.Adjacent(a, b))
			assert.Contains(t, g.Neighbors(b.Row, b.Col), a)
		}
	}
}

func TestAdjacentDiagonal(t *testing.T) {
	a := gridmap.Cell{Row: 1, Col: 1}
	assert.True(t, gridmap.Adjacent(a, gridmap.Cell{Row: 0, Col: 1}))
	assert.False(t, gridmap.Diagonal(a, gridmap.Cell{Row: 0, Col: 1}))
	assert.True(t, gridmap.Diagonal(a, gridmap.Cell{Row: 2, Col: 2}))
	assert.False(t, gridmap.Adjacent(a, a))
	assert.False(t, gridmap.Adjacent(a, gridmap.Cell{Row: 3, Col: 1}))
}

//----------------------------------------------------------------------------//
// Components
//----------------------------------------------------------------------------//

// TestComponents_DiagonalBridge verifies 8-connectivity joins diagonal cells
// and that Unknown counts as open.
func TestComponents_DiagonalBridge(t *testing.T) {
	g, err := gridmap.ParseString(`
SBB
BUB
BBG
`)
	require.NoError(t, err)
	comps := g.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 3)
	assert.True(t, g.Connected(g.Start(), g.Goal()))
}

func TestComponents_Walled(t *testing.T) {
	g, err := gridmap.ParseString(`
SOB
OOB
BBB
OOG
`)
	require.NoError(t, err)
	assert.Len(t, g.Components(), 2)
	assert.False(t, g.Connected(g.Start(), g.Goal()))
	assert.False(t, g.Connected(g.Start(), gridmap.Cell{Row: 0, Col: 2}), "blocked endpoint")
}

//----------------------------------------------------------------------------//
// Text format
//----------------------------------------------------------------------------//

// TestParse_Markers checks start, goal and terrain classification.
func TestParse_Markers(t *testing.T) {
	g, err := gridmap.ParseString("SOU\nOBO\nOOG\n")
	require.NoError(t, err)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, gridmap.Cell{Row: 0, Col: 0}, g.Start())
	assert.Equal(t, gridmap.Cell{Row: 0, Col: 0}, g.Agent())
	assert.Equal(t, gridmap.Cell{Row: 2, Col: 2}, g.Goal())
	assert.Equal(t, gridmap.Unknown, g.Terrain(gridmap.Cell{Row: 0, Col: 2}))
	assert.Equal(t, gridmap.Blocked, g.Terrain(gridmap.Cell{Row: 1, Col: 1}))
	assert.Equal(t, gridmap.Traversable, g.Terrain(g.Start()))
	assert.Equal(t, gridmap.Traversable, g.Terrain(g.Goal()))
}

// TestParse_Errors verifies malformed maps are rejected with sentinel errors.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "\n\n", gridmap.ErrEmptyGrid},
		{"Ragged", "SOO\nOG\n", gridmap.ErrNonRectangular},
		{"BadRune", "SOX\nOOG\n", gridmap.ErrBadRune},
		{"NoStart", "OOO\nOOG\n", gridmap.ErrMissingStart},
		{"NoGoal", "SOO\nOOO\n", gridmap.ErrMissingGoal},
		{"TwoStarts", "SOS\nOOG\n", gridmap.ErrDuplicateMarker},
		{"TwoGoals", "SOG\nOOG\n", gridmap.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridmap.ParseString(tc.text)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := gridmap.ParseString("SOO\nOOX\nOOG\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2 col 3")
}

// TestFormat_RoundTrip verifies Format reproduces the parsed text.
func TestFormat_RoundTrip(t *testing.T) {
	text := "SOUB\nOBOO\nUOOG\n"
	g, err := gridmap.ParseString(text)
	require.NoError(t, err)
	assert.Equal(t, text, g.String())

	var sb strings.Builder
	require.NoError(t, g.Format(&sb))
	again, err := gridmap.ParseString(sb.String())
	require.NoError(t, err)
	assert.Equal(t, g.Start(), again.Start())
	assert.Equal(t, g.Goal(), again.Goal())
}

// TestFormat_CoincidingMarkers verifies a grid whose start is its goal is
// rejected by Format, while String still prints it.
func TestFormat_CoincidingMarkers(t *testing.T) {
	g, err := gridmap.New(1, 2)
	require.NoError(t, err)
	require.Equal(t, g.Start(), g.Goal())

	var sb strings.Builder
	assert.ErrorIs(t, g.Format(&sb), gridmap.ErrMarkersCoincide)
	assert.Empty(t, sb.String())
	assert.Equal(t, "SO\n", g.String())

	require.NoError(t, g.SetGoal(gridmap.Cell{Row: 0, Col: 1}))
	require.NoError(t, g.Format(&sb))
	assert.Equal(t, "SG\n", sb.String())
}

// TestClone_Independent verifies a clone does not share terrain.
func TestClone_Independent(t *testing.T) {
	g, err := gridmap.ParseString("SU\nOG\n")
	require.NoError(t, err)
	cp := g.Clone()
	require.NoError(t, cp.SetTerrain(gridmap.Cell{Row: 0, Col: 1}, gridmap.Blocked))
	assert.Equal(t, gridmap.Unknown, g.Terrain(gridmap.Cell{Row: 0, Col: 1}))
	assert.Equal(t, gridmap.Blocked, cp.Terrain(gridmap.Cell{Row: 0, Col: 1}))
}

func TestLoad_Missing(t *testing.T) {
	_, err := gridmap.Load("does-not-exist.map")
	assert.Error(t, err)
}
