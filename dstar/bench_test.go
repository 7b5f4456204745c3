package dstar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dstar/dstar"
	"github.com/katalvlaran/dstar/gridmap"
)

// benchGrid builds an n×n map with ~10% walls and ~10% hidden cells,
// start at the top-left and goal at the bottom-right.
func benchGrid(b *testing.B, n int) *gridmap.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	g, err := gridmap.New(n, n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	for i := 0; i < g.Size(); i++ {
		c := g.Coordinate(i)
		switch x := rng.Float64(); {
		case x < 0.1:
			_ = g.SetTerrain(c, gridmap.Blocked)
		case x < 0.2:
			_ = g.SetTerrain(c, gridmap.Unknown)
		}
	}
	_ = g.SetTerrain(gridmap.Cell{}, gridmap.Traversable)
	goal := gridmap.Cell{Row: n - 1, Col: n - 1}
	_ = g.SetTerrain(goal, gridmap.Traversable)
	_ = g.SetGoal(goal)

	return g
}

// BenchmarkPlan measures the initial backward search on an 80×80 map.
// Complexity: O(V log V)
func BenchmarkPlan(b *testing.B) {
	base := benchGrid(b, 80)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := dstar.New(base.Clone(), nil)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		if _, err = p.Plan(); err != nil {
			b.Fatalf("Plan failed: %v", err)
		}
	}
}

// BenchmarkTraverse measures a full walk with repairs on an 80×80 map.
func BenchmarkTraverse(b *testing.B) {
	base := benchGrid(b, 80)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := dstar.New(base.Clone(), nil)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		if _, err = p.Traverse(); err != nil {
			b.Fatalf("Traverse failed: %v", err)
		}
	}
}
