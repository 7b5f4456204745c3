package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dstar/costtable"
	"github.com/katalvlaran/dstar/dstar"
	"github.com/katalvlaran/dstar/gridmap"
	"github.com/katalvlaran/dstar/shortest"
)

func newCostsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "costs <map.txt|scenario.yaml>",
		Short: "Print the bootstrap edge cost table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load(args[0])
			if err != nil {
				return err
			}
			tbl, err := costtable.Build(l.grid)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, pr := range tbl.Pairs() {
				fmt.Fprintf(out, "%v\t%v\t%g\n", pr.A, pr.B, pr.Cost)
			}
			fmt.Fprintf(out, "%d pairs\n", tbl.Len())

			return nil
		},
	}
}

func newOptimalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimal <map.txt|scenario.yaml>",
		Short: "Print the reference Dijkstra cost from start to goal",
		Long: `Computes the cheapest start-to-goal cost on the map as given, pricing
Unknown cells as traversable, and the number of open regions (8-connected
groups of non-blocked cells) on that map. When the input is a scenario with a truth map,
the cost on the truth map (Unknown read as blocked) is printed as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			believed, err := optimalOn(l.grid)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "believed: %s\n", formatCost(believed))
			fmt.Fprintf(out, "regions: %d\n", len(l.grid.Components()))

			if gt, ok := l.sensor.(dstar.GroundTruth); ok {
				truth := gt.Grid.Clone()
				for i := 0; i < truth.Size(); i++ {
					if c := truth.Coordinate(i); truth.Terrain(c) == gridmap.Unknown {
						_ = truth.SetTerrain(c, gridmap.Blocked)
					}
				}
				cost, err := optimalOn(truth)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "truth: %s\n", formatCost(cost))
			}

			return nil
		},
	}
}

// optimalOn is the reference start-to-goal cost on g. Endpoints in
// different open regions are reported unreachable without a search.
func optimalOn(g *gridmap.Grid) (float64, error) {
	if !g.Connected(g.Start(), g.Goal()) {
		return shortest.Unreachable, nil
	}
	tbl, err := costtable.Build(g)
	if err != nil {
		return 0, err
	}

	return shortest.PathCost(g, tbl, g.Start(), g.Goal())
}

func formatCost(c float64) string {
	if math.IsInf(c, 1) {
		return "unreachable"
	}

	return fmt.Sprintf("%.1f", c)
}
