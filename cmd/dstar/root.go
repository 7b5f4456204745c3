package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dstar/dstar"
	"github.com/katalvlaran/dstar/gridmap"
	"github.com/katalvlaran/dstar/scenario"
)

// rootOptions holds persistent flags shared by every subcommand.
type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "dstar",
		Short: "Incremental D* replanning on 8-connected terrain grids",
		Long: `Plans a route from S to G on a terrain grid and replans incrementally
whenever the agent discovers that the next cell is blocked.

Examples:
  dstar run maps/corridor.txt --render     # walk and redraw after each hop
  dstar run scenario.yaml --metrics        # walk, then dump Prometheus metrics
  dstar step maps/corridor.txt             # interactive expansion stepper
  dstar costs maps/corridor.txt            # bootstrap edge cost table
  dstar optimal maps/corridor.txt          # reference Dijkstra cost`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level: debug, info, warn, error (default: scenario value, else warn)")

	root.AddCommand(
		newRunCmd(opts),
		newStepCmd(opts),
		newCostsCmd(),
		newOptimalCmd(),
	)

	return root
}

// loaded is a map plus everything a scenario file adds to it.
type loaded struct {
	name   string
	grid   *gridmap.Grid
	sensor dstar.Sensor
	opts   []dstar.Option
	level  string
}

// load reads a scenario when path ends in .yaml/.yml and a bare text map
// otherwise.
func load(path string) (*loaded, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err := scenario.Load(path)
		if err != nil {
			return nil, err
		}
		g, sensor, err := s.Build()
		if err != nil {
			return nil, err
		}
		name := s.Name
		if name == "" {
			name = filepath.Base(path)
		}

		return &loaded{name: name, grid: g, sensor: sensor, opts: s.Options(sensor), level: s.LogLevel}, nil
	default:
		g, err := gridmap.Load(path)
		if err != nil {
			return nil, err
		}

		return &loaded{name: filepath.Base(path), grid: g}, nil
	}
}

// newLogger builds a text logger tagged with a fresh run id. The flag wins
// over the scenario's level; with neither, scenario.DefaultLevel applies.
func newLogger(w io.Writer, flagLevel string, l *loaded) (*slog.Logger, error) {
	text := flagLevel
	if text == "" {
		text = l.level
	}
	lvl, err := scenario.ParseLevel(text)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))

	return logger.With(slog.String("run_id", uuid.NewString()), slog.String("map", l.name)), nil
}
