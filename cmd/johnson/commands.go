package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/johnson/bellmanford"
	"github.com/katalvlaran/johnson/core"
	"github.com/katalvlaran/johnson/graphio"
	"github.com/katalvlaran/johnson/johnson"
)

func newAllPairsCmd(a *app) *cobra.Command {
	var fromExchange bool
	cmd := &cobra.Command{
		Use:   "allpairs",
		Short: "Shortest paths between every ordered pair of vertices",
		Long: `Run Johnson's algorithm once and print the shortest path between every
ordered pair. With --exchange the input is the output of "johnson bellmanford".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			var (
				res *johnson.AllPairsResult
				err error
			)
			if fromExchange {
				p, perr := graphio.ReadExchange(cmd.InOrStdin())
				if perr != nil {
					return fmt.Errorf("read exchange: %w", perr)
				}
				res, err = p.AllPairs(cmd.Context(), a.johnsonOptions()...)
			} else {
				g, gerr := a.readGraph(cmd)
				if gerr != nil {
					return gerr
				}
				res, err = johnson.AllPairs(cmd.Context(), g, a.johnsonOptions()...)
			}
			if err != nil {
				return a.fail(cmd, err)
			}
			if err = graphio.WriteAllPairs(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			a.log.Info("all-pairs done",
				slog.String("run_id", res.RunID()),
				slog.String("pairs", humanize.Comma(int64(res.V())*int64(res.V()))),
				slog.Duration("elapsed", time.Since(start)),
			)

			return nil
		},
	}
	cmd.Flags().BoolVar(&fromExchange, "exchange", false, "read the potentials/reweighted-graph exchange format from stdin")

	return cmd
}

func newSSSPCmd(a *app) *cobra.Command {
	var source int
	cmd := &cobra.Command{
		Use:   "sssp",
		Short: "Shortest paths from one source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.readGraph(cmd)
			if err != nil {
				return err
			}
			res, err := johnson.SingleSource(cmd.Context(), g, source, a.johnsonOptions()...)
			if err != nil {
				return a.fail(cmd, err)
			}

			return graphio.WritePaths(cmd.OutOrStdout(), res, g.V())
		},
	}
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex")

	return cmd
}

func newAuxCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "aux",
		Short: "Print the auxiliary graph with a virtual source (pipeline stage 1)",
		Long: `Add vertex V with a zero-weight edge to every vertex and print the result
in graph format. The virtual source is always the last vertex.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.readGraph(cmd)
			if err != nil {
				return err
			}
			aux, err := johnson.BuildAuxiliary(g)
			if err != nil {
				return err
			}
			a.log.Debug("auxiliary graph built",
				slog.Int("vertices", aux.Graph().V()),
				slog.String("edges", humanize.Comma(int64(aux.Graph().E()))),
			)

			return graphio.WriteGraph(cmd.OutOrStdout(), aux.Graph())
		},
	}
}

func newBellmanFordCmd(a *app) *cobra.Command {
	var source int
	cmd := &cobra.Command{
		Use:   "bellmanford",
		Short: "Bellman-Ford shortest paths; in pipeline mode emits potentials and the reweighted graph (stage 2)",
		Long: `In pipeline mode the input is an auxiliary graph from "johnson aux". Bellman-Ford
runs from its virtual source (the last vertex unless --source is given) and the
command prints the potentials and the reweighted original graph.

Otherwise Bellman-Ford runs on a random graph from --source and the paths are
printed. A negative cycle is printed edge by edge and the command fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.readGraph(cmd)
			if err != nil {
				return err
			}
			s := source
			if !cmd.Flags().Changed("source") {
				s = 0
				if a.cfg.Pipeline {
					s = g.V() - 1
				}
			}

			res, err := bellmanford.BellmanFord(g, s,
				bellmanford.WithContext(cmd.Context()),
				bellmanford.WithDetectionPolicy(a.policy()),
				bellmanford.WithLogger(a.log),
			)
			if err != nil {
				return a.fail(cmd, err)
			}
			a.log.Info("bellman-ford done",
				slog.Int("source", s),
				slog.String("relaxations", humanize.Comma(int64(res.Relaxations()))),
			)
			if !a.cfg.Pipeline {
				return graphio.WritePaths(cmd.OutOrStdout(), res, g.V())
			}

			p, err := stripVirtualSource(g, res, s, a.cfg.Tolerance)
			if err != nil {
				return err
			}

			return graphio.WriteExchange(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex (pipeline default: the virtual source)")

	return cmd
}

// stripVirtualSource drops the virtual source s (which must be the last
// vertex) from the auxiliary graph g, takes the remaining distances as
// potentials and reweights the original edges.
func stripVirtualSource(g *core.Graph, res *bellmanford.Result, s int, eps float64) (*johnson.Prepared, error) {
	n := g.V() - 1
	if s != n {
		return nil, fmt.Errorf("%w: exchange output needs the virtual source to be the last vertex %d, got %d",
			core.ErrInvalidInput, n, s)
	}

	orig, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if e.From == s {
			continue
		}
		if e.To == s {
			return nil, fmt.Errorf("%w: edge %v enters the virtual source", core.ErrInvalidInput, e)
		}
		if err = orig.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	h := make(johnson.Potentials, n)
	for v := range h {
		if h[v], err = res.DistTo(v); err != nil {
			return nil, err
		}
	}
	rg, err := johnson.Reweight(orig, h, eps)
	if err != nil {
		return nil, err
	}

	return johnson.NewPrepared(rg, h)
}

func newDijkstraCmd(a *app) *cobra.Command {
	var source int
	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Dijkstra from one source on a reweighted graph (pipeline stage 3)",
		Long: `In pipeline mode the input is the exchange output of "johnson bellmanford";
distances and hop weights are mapped back to the original graph.

Otherwise a random graph is prepared in-process and queried from --source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				p   *johnson.Prepared
				err error
			)
			if a.cfg.Pipeline {
				if p, err = graphio.ReadExchange(cmd.InOrStdin()); err != nil {
					return fmt.Errorf("read exchange: %w", err)
				}
			} else {
				g, gerr := a.readGraph(cmd)
				if gerr != nil {
					return gerr
				}
				if p, err = johnson.Prepare(cmd.Context(), g, a.johnsonOptions()...); err != nil {
					return a.fail(cmd, err)
				}
			}

			res, err := p.SingleSource(cmd.Context(), source, a.johnsonOptions()...)
			if err != nil {
				return err
			}

			return graphio.WritePaths(cmd.OutOrStdout(), res, p.Graph().V())
		},
	}
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex")

	return cmd
}

// fail prints a negative cycle to stdout when err carries one, logs err and
// returns it.
func (a *app) fail(cmd *cobra.Command, err error) error {
	var nce *bellmanford.NegativeCycleError
	if errors.As(err, &nce) {
		if werr := graphio.WriteNegativeCycle(cmd.OutOrStdout(), nce.Cycle); werr != nil {
			return werr
		}
	}
	a.log.Error("command failed", slog.String("command", cmd.Name()), slog.Any("error", err))

	return err
}
