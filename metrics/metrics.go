// Package metrics exports planner activity as Prometheus metrics on a
// private registry.
//
// A Recorder is attached to a planner through the hook options returned by
// Options; Observe records the final Result of a traversal. WriteText dumps
// the registry in the text exposition format, which is what the CLI prints
// for --metrics.
package metrics

import (
	"errors"
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/dstar/dstar"
	"github.com/katalvlaran/dstar/gridmap"
)

// ErrRegistrationFailed is returned when a collector cannot be registered.
var ErrRegistrationFailed = errors.New("metrics: collector registration failed")

// Namespace prefixes every metric name.
const Namespace = "dstar"

// CostBuckets spans single hops up to long detours.
var CostBuckets = []float64{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000}

// Recorder counts planner events.
type Recorder struct {
	registry *prometheus.Registry

	expansions  prometheus.Counter
	insertions  prometheus.Counter
	discoveries prometheus.Counter
	moves       prometheus.Counter
	traversals  *prometheus.CounterVec
	cost        prometheus.Histogram
	hops        prometheus.Histogram
}

// NewRecorder registers the planner collectors on a fresh registry.
func NewRecorder() (*Recorder, error) {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		expansions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "expansions_total",
			Help:      "Cells popped from the frontier and expanded.",
		}),
		insertions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "insertions_total",
			Help:      "Frontier inserts and reinserts.",
		}),
		discoveries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "discoveries_total",
			Help:      "Obstacles observed by the agent.",
		}),
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "moves_total",
			Help:      "Agent hops.",
		}),
		traversals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "traversals_total",
			Help:      "Completed traversals by outcome.",
		}, []string{"outcome"}),
		cost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "traverse_cost",
			Help:      "Edge cost accumulated by completed traversals.",
			Buckets:   CostBuckets,
		}),
		hops: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "traverse_hops",
			Help:      "Agent hops taken by completed traversals.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}

	for _, c := range []prometheus.Collector{
		r.expansions, r.insertions, r.discoveries, r.moves, r.traversals, r.cost, r.hops,
	} {
		if err := r.registry.Register(c); err != nil {
			return nil, errors.Join(ErrRegistrationFailed, err)
		}
	}

	return r, nil
}

// Registry exposes the private registry for gathering or serving.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Options returns planner hooks that feed the counters.
func (r *Recorder) Options() []dstar.Option {
	return []dstar.Option{
		dstar.WithOnExpand(func(dstar.NodeView) { r.expansions.Inc() }),
		dstar.WithOnInsert(func(dstar.NodeView) { r.insertions.Inc() }),
		dstar.WithOnDiscover(func(gridmap.Cell) { r.discoveries.Inc() }),
		dstar.WithOnMove(func(gridmap.Cell) { r.moves.Inc() }),
	}
}

// Observe records a finished traversal.
func (r *Recorder) Observe(res dstar.Result) {
	r.traversals.WithLabelValues(res.Outcome.String()).Inc()
	if res.Outcome == dstar.PathFound {
		r.cost.Observe(res.Cost)
	}
	r.hops.Observe(float64(len(res.Path) - 1))
}

// WriteText writes every gathered family in the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
