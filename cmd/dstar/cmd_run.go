package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dstar/dstar"
	"github.com/katalvlaran/dstar/gridmap"
	"github.com/katalvlaran/dstar/metrics"
	"github.com/katalvlaran/dstar/render"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var (
		renderEach  bool // redraw the map after every hop
		compact     bool // one glyph per cell
		dumpMetrics bool // print Prometheus text exposition at the end
	)
	cmd := &cobra.Command{
		Use:   "run <map.txt|scenario.yaml>",
		Short: "Walk from start to goal, replanning on discovered obstacles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := load(args[0])
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), root.logLevel, l)
			if err != nil {
				return err
			}
			rec, err := metrics.NewRecorder()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var ropts []render.Option
			if compact {
				ropts = append(ropts, render.WithCompact())
			}

			var p *dstar.Planner
			opts := append([]dstar.Option{dstar.WithLogger(logger)}, l.opts...)
			opts = append(opts, rec.Options()...)
			if renderEach {
				opts = append(opts, dstar.WithOnMove(func(c gridmap.Cell) {
					fmt.Fprintf(out, "-- agent at %v\n", c)
					if err := render.Render(out, p, ropts...); err != nil {
						logger.Warn("render failed", slog.String("cell", c.String()), slog.Any("err", err))
					}
				}))
			}
			if p, err = dstar.New(l.grid, nil, opts...); err != nil {
				return err
			}

			res, err := p.Traverse()
			rec.Observe(res)
			if err != nil {
				return err
			}

			if err := render.Render(out, p, ropts...); err != nil {
				return err
			}
			fmt.Fprintf(out, "outcome: %s\n", res.Outcome)
			fmt.Fprintf(out, "cost: %.1f\n", res.Cost)
			fmt.Fprintf(out, "hops: %d\n", len(res.Path)-1)
			fmt.Fprintf(out, "path: %v\n", res.Path)
			fmt.Fprintf(out, "expansions: %d reopenings: %d discoveries: %d\n",
				res.Stats.Expansions, res.Stats.Reopenings, res.Stats.Discoveries)
			if dumpMetrics {
				return rec.WriteText(out)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&renderEach, "render", false, "redraw the map after every hop")
	cmd.Flags().BoolVar(&compact, "compact", false, "draw one glyph per cell")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "print metrics in Prometheus text format")

	return cmd
}
