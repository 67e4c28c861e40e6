package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/johnson/bellmanford"
	"github.com/katalvlaran/johnson/config"
	"github.com/katalvlaran/johnson/core"
	"github.com/katalvlaran/johnson/graphio"
	"github.com/katalvlaran/johnson/johnson"
	"github.com/katalvlaran/johnson/logging"
)

// app carries the resolved configuration and logger from the root command's
// PersistentPreRunE to the subcommands.
type app struct {
	configPath string
	cfg        config.Config
	log        *slog.Logger
	closer     io.Closer
}

// newRootCmd builds the command tree. Each call returns an independent tree,
// so tests can run commands without shared flag state.
func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "johnson",
		Short: "Shortest paths with negative edge weights (Johnson's algorithm)",
		Long: `Compute shortest paths in a directed, edge-weighted graph that may contain
negative weights. A Bellman-Ford run from a virtual source reweights every edge
to be non-negative, then Dijkstra answers the queries.

Input:
  default     a random graph described by the "random" config section
  --pipeline  a graph read from stdin ("V E" then E lines "from to weight")

Subcommands:
  allpairs     shortest paths between every pair of vertices
  sssp         shortest paths from one source
  aux          print the auxiliary graph (stage 1 of the pipeline)
  bellmanford  print potentials and the reweighted graph (stage 2)
  dijkstra     answer queries from a reweighted graph (stage 3)

Examples:
  johnson allpairs --vertices 8 --edges 20 --seed 3
  johnson sssp --pipeline -s 0 < graph.txt
  cat graph.txt | johnson aux --pipeline | johnson bellmanford --pipeline | johnson dijkstra --pipeline -s 0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.closer != nil {
				return a.closer.Close()
			}
			return nil
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.configPath, "config", "c", "", "YAML or TOML config file")
	f.Bool("pipeline", false, "read input from stdin instead of generating a random graph")
	f.Int("workers", 0, "concurrent Dijkstra runs for allpairs (0 = sequential)")
	f.Int("detect-every", 0, "relaxations between negative-cycle rescans (0 = every pass)")
	f.Float64("tolerance", 0, "clamp epsilon for slightly negative reweighted edges")
	f.Int("vertices", 0, "random graph vertex count")
	f.Int("edges", 0, "random graph edge count")
	f.Int64("seed", 0, "random graph seed")
	f.Float64("min-weight", 0, "random graph minimum weight")
	f.Float64("max-weight", 0, "random graph maximum weight")
	f.String("log-level", "", "debug, info, warn or error")
	f.String("log-format", "", "text, json or auto")
	f.String("log-file", "", "rotating log file instead of stderr")

	root.AddCommand(
		newAllPairsCmd(a),
		newSSSPCmd(a),
		newAuxCmd(a),
		newBellmanFordCmd(a),
		newDijkstraCmd(a),
	)

	return root
}

// setup loads the config file, applies explicitly set flags over it,
// validates the result and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	f := cmd.Flags()
	var err error
	set := func(name string, apply func() error) {
		if err == nil && f.Changed(name) {
			err = apply()
		}
	}
	set("pipeline", func() (e error) { a.cfg.Pipeline, e = f.GetBool("pipeline"); return })
	set("workers", func() (e error) { a.cfg.Workers, e = f.GetInt("workers"); return })
	set("detect-every", func() (e error) { a.cfg.DetectEvery, e = f.GetInt("detect-every"); return })
	set("tolerance", func() (e error) { a.cfg.Tolerance, e = f.GetFloat64("tolerance"); return })
	set("vertices", func() (e error) { a.cfg.Random.Vertices, e = f.GetInt("vertices"); return })
	set("edges", func() (e error) { a.cfg.Random.Edges, e = f.GetInt("edges"); return })
	set("seed", func() (e error) { a.cfg.Random.Seed, e = f.GetInt64("seed"); return })
	set("min-weight", func() (e error) { a.cfg.Random.MinWeight, e = f.GetFloat64("min-weight"); return })
	set("max-weight", func() (e error) { a.cfg.Random.MaxWeight, e = f.GetFloat64("max-weight"); return })
	set("log-level", func() (e error) { a.cfg.Log.Level, e = f.GetString("log-level"); return })
	set("log-format", func() (e error) { a.cfg.Log.Format, e = f.GetString("log-format"); return })
	set("log-file", func() (e error) { a.cfg.Log.File, e = f.GetString("log-file"); return })
	if err != nil {
		return err
	}
	if err = a.cfg.Validate(); err != nil {
		return err
	}

	a.log, a.closer, err = logging.New(a.cfg.Log)
	if err != nil {
		return err
	}
	a.log.Debug("configuration resolved",
		slog.Bool("pipeline", a.cfg.Pipeline),
		slog.Int("workers", a.cfg.Workers),
		slog.Int("detect_every", a.cfg.DetectEvery),
	)

	return nil
}

// policy maps DetectEvery to a Bellman-Ford detection policy.
func (a *app) policy() bellmanford.DetectionPolicy {
	if a.cfg.DetectEvery > 0 {
		return bellmanford.EveryN(a.cfg.DetectEvery)
	}

	return bellmanford.EveryPass()
}

// johnsonOptions returns the orchestration options derived from the config.
func (a *app) johnsonOptions() []johnson.Option {
	return []johnson.Option{
		johnson.WithWorkers(a.cfg.Workers),
		johnson.WithDetectionPolicy(a.policy()),
		johnson.WithTolerance(a.cfg.Tolerance),
		johnson.WithLogger(a.log),
	}
}

// readGraph returns the stdin graph in pipeline mode, else a random one.
func (a *app) readGraph(cmd *cobra.Command) (*core.Graph, error) {
	if a.cfg.Pipeline {
		g, err := graphio.ReadGraph(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read graph: %w", err)
		}

		return g, nil
	}

	r := a.cfg.Random
	g, err := graphio.Random(graphio.RandomConfig{
		Vertices:  r.Vertices,
		Edges:     r.Edges,
		Seed:      r.Seed,
		MinWeight: r.MinWeight,
		MaxWeight: r.MaxWeight,
	})
	if err != nil {
		return nil, fmt.Errorf("random graph: %w", err)
	}
	a.log.Info("generated random graph",
		slog.Int("vertices", g.V()),
		slog.Int("edges", g.E()),
		slog.Int64("seed", r.Seed),
	)

	return g, nil
}
