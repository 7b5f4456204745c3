package metrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dstar/dstar"
	"github.com/katalvlaran/dstar/gridmap"
)

func traverse(t *testing.T, r *Recorder, text string) dstar.Result {
	t.Helper()
	g, err := gridmap.ParseString(text)
	require.NoError(t, err)
	p, err := dstar.New(g, nil, r.Options()...)
	require.NoError(t, err)
	res, err := p.Traverse()
	require.NoError(t, err)
	r.Observe(res)

	return res
}

func TestRecorder_CountsMatchStats(t *testing.T) {
	r, err := NewRecorder()
	require.NoError(t, err)

	res := traverse(t, r, "SUG\nOOO\n")
	require.Equal(t, dstar.PathFound, res.Outcome)

	assert.Equal(t, float64(res.Stats.Expansions), testutil.ToFloat64(r.expansions))
	assert.Equal(t, float64(res.Stats.Insertions), testutil.ToFloat64(r.insertions))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.discoveries))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.moves))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.traversals.WithLabelValues("goal reached")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.cost))
}

func TestRecorder_UnreachableSkipsCost(t *testing.T) {
	r, err := NewRecorder()
	require.NoError(t, err)

	res := traverse(t, r, "SB\nBB\nOG\n")
	require.Equal(t, dstar.Unreachable, res.Outcome)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.traversals.WithLabelValues("goal unreachable")))
	expected := `
# HELP dstar_traverse_cost Edge cost accumulated by completed traversals.
# TYPE dstar_traverse_cost histogram
dstar_traverse_cost_bucket{le="1"} 0
dstar_traverse_cost_bucket{le="2"} 0
dstar_traverse_cost_bucket{le="5"} 0
dstar_traverse_cost_bucket{le="10"} 0
dstar_traverse_cost_bucket{le="20"} 0
dstar_traverse_cost_bucket{le="50"} 0
dstar_traverse_cost_bucket{le="100"} 0
dstar_traverse_cost_bucket{le="200"} 0
dstar_traverse_cost_bucket{le="500"} 0
dstar_traverse_cost_bucket{le="1000"} 0
dstar_traverse_cost_bucket{le="+Inf"} 0
dstar_traverse_cost_sum 0
dstar_traverse_cost_count 0
`
	require.NoError(t, testutil.CollectAndCompare(r.cost, strings.NewReader(expected)))
}

func TestRecorder_WriteText(t *testing.T) {
	r, err := NewRecorder()
	require.NoError(t, err)
	traverse(t, r, "SOG\n")

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "dstar_moves_total 2")
	assert.Contains(t, out, `dstar_traversals_total{outcome="goal reached"} 1`)
	assert.Contains(t, out, "dstar_traverse_cost_sum 2")
}

func TestRecorder_PrivateRegistries(t *testing.T) {
	a, err := NewRecorder()
	require.NoError(t, err)
	b, err := NewRecorder()
	require.NoError(t, err)
	assert.NotSame(t, a.Registry(), b.Registry())
}
