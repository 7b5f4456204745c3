package costtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dstar/costtable"
	"github.com/katalvlaran/dstar/gridmap"
)

func cell(r, c int) gridmap.Cell { return gridmap.Cell{Row: r, Col: c} }

// TestBuild_PairCount verifies every adjacent pair is recorded exactly once:
// R(C−1) horizontal + (R−1)C vertical + 2(R−1)(C−1) diagonal.
func TestBuild_PairCount(t *testing.T) {
	g, err := gridmap.New(3, 4)
	require.NoError(t, err)
	tbl, err := costtable.Build(g)
	require.NoError(t, err)

	want := 3*3 + 2*4 + 2*2*3
	assert.Equal(t, want, tbl.Len())

	for i := 0; i < g.Size(); i++ {
		a := g.Coordinate(i)
		for _, b := range g.Neighbors(a.Row, a.Col) {
			assert.True(t, tbl.Has(a, b), "missing %v-%v", a, b)
		}
	}
}

// TestBuild_Policy checks orthogonal, diagonal, blocked and unknown pricing.
func TestBuild_Policy(t *testing.T) {
	g, err := gridmap.ParseString("SOU\nOBO\nOOG\n")
	require.NoError(t, err)
	tbl, err := costtable.Build(g)
	require.NoError(t, err)

	cases := []struct {
		name string
		a, b gridmap.Cell
		want float64
	}{
		{"Orthogonal", cell(0, 0), cell(0, 1), costtable.Orthogonal},
		{"Diagonal", cell(2, 1), cell(1, 2), costtable.Diagonal},
		{"IntoBlocked", cell(0, 0), cell(1, 1), costtable.Blocked},
		{"OutOfBlocked", cell(1, 1), cell(2, 1), costtable.Blocked},
		{"UnknownPricedOpen", cell(0, 1), cell(0, 2), costtable.Orthogonal},
		{"UnknownDiagonal", cell(0, 2), cell(1, 1), costtable.Blocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tbl.Lookup(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestLookup_Symmetric verifies cost(A,B) == cost(B,A).
func TestLookup_Symmetric(t *testing.T) {
	tbl := costtable.New()
	ok, err := tbl.SetOnce(cell(1, 1), cell(0, 0), 2.5)
	require.NoError(t, err)
	require.True(t, ok)

	ab, err := tbl.Lookup(cell(0, 0), cell(1, 1))
	require.NoError(t, err)
	ba, err := tbl.Lookup(cell(1, 1), cell(0, 0))
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.Equal(t, 1, tbl.Len())
}

// TestSetOnce_NoClobber verifies a second SetOnce does not overwrite.
func TestSetOnce_NoClobber(t *testing.T) {
	tbl := costtable.New()
	_, err := tbl.SetOnce(cell(0, 0), cell(0, 1), 1)
	require.NoError(t, err)
	ok, err := tbl.SetOnce(cell(0, 1), cell(0, 0), 7)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := tbl.Lookup(cell(0, 0), cell(0, 1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestSetOnce_Rejects(t *testing.T) {
	tbl := costtable.New()
	_, err := tbl.SetOnce(cell(0, 0), cell(0, 2), 1)
	assert.ErrorIs(t, err, costtable.ErrNotAdjacent)
	_, err = tbl.SetOnce(cell(0, 0), cell(0, 0), 1)
	assert.ErrorIs(t, err, costtable.ErrNotAdjacent)
	_, err = tbl.SetOnce(cell(0, 0), cell(0, 1), -1)
	assert.ErrorIs(t, err, costtable.ErrNegativeCost)
}

// TestRaise verifies Raise overwrites present pairs and refuses absent ones.
func TestRaise(t *testing.T) {
	tbl := costtable.New()
	_, err := tbl.SetOnce(cell(0, 0), cell(0, 1), costtable.Orthogonal)
	require.NoError(t, err)

	require.NoError(t, tbl.Raise(cell(0, 1), cell(0, 0), costtable.Blocked))
	got, err := tbl.Lookup(cell(0, 0), cell(0, 1))
	require.NoError(t, err)
	assert.Equal(t, costtable.Blocked, got)

	err = tbl.Raise(cell(1, 1), cell(0, 1), costtable.Blocked)
	assert.ErrorIs(t, err, costtable.ErrUnsetPair)
	assert.False(t, tbl.Has(cell(1, 1), cell(0, 1)), "Raise must not create pairs")
}

// TestLookup_Unset verifies an absent pair is an error, not a sentinel value.
func TestLookup_Unset(t *testing.T) {
	tbl := costtable.New()
	_, err := tbl.Lookup(cell(0, 0), cell(1, 0))
	assert.ErrorIs(t, err, costtable.ErrUnsetPair)
}

func TestBuild_NilGrid(t *testing.T) {
	_, err := costtable.Build(nil)
	assert.ErrorIs(t, err, costtable.ErrNilGrid)
}

// TestPairs_Sorted checks Pairs ordering by first then second cell.
func TestPairs_Sorted(t *testing.T) {
	g, err := gridmap.New(2, 2)
	require.NoError(t, err)
	tbl, err := costtable.Build(g)
	require.NoError(t, err)

	pairs := tbl.Pairs()
	require.Len(t, pairs, 6)
	assert.Equal(t, cell(0, 0), pairs[0].A)
	assert.Equal(t, cell(0, 1), pairs[0].B)
	assert.Equal(t, cell(1, 0), pairs[5].A)
	assert.Equal(t, cell(1, 1), pairs[5].B)
}
