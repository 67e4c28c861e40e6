// File: johnson.go
// Role: orchestration of the Johnson pipeline for one source or all pairs.
// Determinism:
//   - Results do not depend on Workers: each source writes its own slot.
// Concurrency:
//   - The reweighted graph is shared read-only; per-source state is private.

package johnson

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/johnson/bellmanford"
	"github.com/katalvlaran/johnson/core"
	"github.com/katalvlaran/johnson/dijkstra"
)

// Prepared is the product of the first three phases: the potentials and the
// non-negative graph they produce. It is read-only and safe to share between
// goroutines.
type Prepared struct {
	graph *core.Graph
	h     Potentials
}

// NewPrepared wraps an already reweighted graph and its potentials, as read
// back from an exchange file. Every weight must be non-negative.
func NewPrepared(reweighted *core.Graph, h Potentials) (*Prepared, error) {
	if reweighted == nil {
		return nil, core.ErrNilGraph
	}
	if len(h) != reweighted.V() {
		return nil, fmt.Errorf("%w: %d potentials for %d vertices", core.ErrInvalidInput, len(h), reweighted.V())
	}
	for _, e := range reweighted.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: reweighted edge %v is negative", core.ErrInvalidInput, e)
		}
	}

	return &Prepared{graph: reweighted, h: h.Clone()}, nil
}

// Graph returns the reweighted graph.
func (p *Prepared) Graph() *core.Graph { return p.graph }

// Potentials returns a copy of h.
func (p *Prepared) Potentials() Potentials { return p.h.Clone() }

// Prepare builds the auxiliary graph, runs Bellman-Ford from the virtual
// source and reweights g.
//
// Errors:
//   - core.ErrNilGraph / core.ErrInvalidInput for a malformed graph.
//   - *bellmanford.NegativeCycleError (errors.Is ErrNegativeCycle) if g has a negative cycle.
//   - core.ErrInvariantViolation if reweighting yields a negative edge.
//   - ctx.Err() if ctx is done.
func Prepare(ctx context.Context, g *core.Graph, opts ...Option) (*Prepared, error) {
	cfg := buildOptions(opts)

	return prepare(ctx, g, cfg)
}

func prepare(ctx context.Context, g *core.Graph, cfg Options) (*Prepared, error) {
	// 1) Auxiliary graph.
	var aux *Auxiliary
	err := phase(ctx, cfg, phaseAuxiliary, func(ctx context.Context, span trace.Span) error {
		var err error
		aux, err = BuildAuxiliary(g)
		if err == nil {
			span.SetAttributes(
				attribute.Int("vertices", aux.OriginalV()),
				attribute.Int("edges", g.E()),
			)
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	// 2) Potentials from the virtual source.
	var h Potentials
	err = phase(ctx, cfg, phaseBellmanFord, func(ctx context.Context, span trace.Span) error {
		var (
			res *bellmanford.Result
			err error
		)
		h, res, err = aux.Potentials(ctx,
			bellmanford.WithDetectionPolicy(cfg.Policy),
			bellmanford.WithLogger(cfg.Logger),
		)
		if res != nil {
			relaxationsTotal.Add(float64(res.Relaxations()))
			span.SetAttributes(attribute.Int("relaxations", res.Relaxations()))
		}
		var nce *bellmanford.NegativeCycleError
		if errors.As(err, &nce) {
			negativeCyclesTotal.Inc()
			span.SetAttributes(attribute.Int("cycle_length", len(nce.Cycle)))
			cfg.Logger.Warn("negative cycle detected",
				slog.String("run_id", cfg.RunID),
				slog.Int("cycle_length", len(nce.Cycle)),
				slog.Float64("cycle_weight", core.PathWeight(nce.Cycle)),
			)
		}

		return err
	})
	if err != nil {
		return nil, err
	}

	// 3) Non-negative graph.
	var rg *core.Graph
	err = phase(ctx, cfg, phaseReweight, func(ctx context.Context, span trace.Span) error {
		var err error
		rg, err = Reweight(g, h, cfg.Tolerance)

		return err
	})
	if err != nil {
		return nil, err
	}

	return &Prepared{graph: rg, h: h}, nil
}

// SourceResult answers distance and path queries from one source in the
// original graph's weights.
type SourceResult struct {
	tree *core.ShortestPaths // tree on the reweighted graph
	h    Potentials
}

// Source returns the source vertex.
func (r *SourceResult) Source() int { return r.tree.Source() }

// Tree returns the shortest-path tree on the reweighted graph.
func (r *SourceResult) Tree() *core.ShortestPaths { return r.tree }

// DistTo returns the original-weight distance from the source to v, or +Inf
// if v is unreachable.
func (r *SourceResult) DistTo(v int) (float64, error) {
	raw, err := r.tree.DistTo(v)
	if err != nil {
		return 0, err
	}

	return RecoverDistance(raw, r.h[r.tree.Source()], r.h[v]), nil
}

// HasPathTo reports whether v is reachable from the source.
func (r *SourceResult) HasPathTo(v int) (bool, error) { return r.tree.HasPathTo(v) }

// PathTo returns the shortest path to v with original edge weights; nil if
// v is unreachable, empty for the source itself.
func (r *SourceResult) PathTo(v int) ([]core.DirectedEdge, error) {
	path, err := r.tree.PathTo(v)
	if err != nil {
		return nil, err
	}

	return RecoverPath(path, r.h), nil
}

// SingleSource runs Dijkstra from s on the prepared graph.
func (p *Prepared) SingleSource(ctx context.Context, s int, opts ...Option) (*SourceResult, error) {
	cfg := buildOptions(opts)

	return p.singleSource(ctx, s, cfg)
}

func (p *Prepared) singleSource(ctx context.Context, s int, cfg Options) (*SourceResult, error) {
	var tree *core.ShortestPaths
	err := phase(ctx, cfg, phaseDijkstra, func(ctx context.Context, span trace.Span) error {
		span.SetAttributes(attribute.Int("source", s))
		var err error
		tree, err = dijkstra.Dijkstra(p.graph, s,
			dijkstra.WithContext(ctx),
			dijkstra.WithLogger(cfg.Logger),
		)
		dijkstraRunsTotal.Inc()

		return err
	})
	if err != nil {
		return nil, err
	}

	return &SourceResult{tree: tree, h: p.h}, nil
}

// AllPairsResult holds one SourceResult per vertex.
type AllPairsResult struct {
	sources []*SourceResult
	h       Potentials
	runID   string
}

// AllPairs runs Dijkstra from every vertex of the prepared graph, bounded by
// WithWorkers. The first failure cancels the remaining runs.
func (p *Prepared) AllPairs(ctx context.Context, opts ...Option) (*AllPairsResult, error) {
	cfg := buildOptions(opts)

	return p.allPairs(ctx, cfg)
}

func (p *Prepared) allPairs(ctx context.Context, cfg Options) (*AllPairsResult, error) {
	n := p.graph.V()
	out := &AllPairsResult{
		sources: make([]*SourceResult, n),
		h:       p.h,
		runID:   cfg.RunID,
	}

	eg, egCtx := errgroup.WithContext(ctx)
	limit := cfg.Workers
	if limit == 0 {
		limit = 1
	}
	eg.SetLimit(limit)

	for s := 0; s < n; s++ {
		s := s
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return fmt.Errorf("johnson: %w", err)
			}
			res, err := p.singleSource(egCtx, s, cfg)
			if err != nil {
				return err
			}
			out.sources[s] = res

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// SingleSource computes shortest paths from s in g, which may carry negative
// weights. It runs Bellman-Ford once on the auxiliary graph and Dijkstra once.
func SingleSource(ctx context.Context, g *core.Graph, s int, opts ...Option) (*SourceResult, error) {
	cfg := buildOptions(opts)
	start := time.Now()
	cfg.Logger.Info("johnson single-source started", slog.String("run_id", cfg.RunID), slog.Int("source", s))

	res, err := func() (*SourceResult, error) {
		if g == nil {
			return nil, core.ErrNilGraph
		}
		if err := g.ValidateVertex(s); err != nil {
			return nil, fmt.Errorf("johnson: source: %w", err)
		}
		p, err := prepare(ctx, g, cfg)
		if err != nil {
			return nil, err
		}

		return p.singleSource(ctx, s, cfg)
	}()
	finish(cfg, modeSingleSource, start, err)

	return res, err
}

// AllPairs computes shortest paths between every ordered pair of vertices of g.
// A negative cycle anywhere in g aborts the whole computation.
func AllPairs(ctx context.Context, g *core.Graph, opts ...Option) (*AllPairsResult, error) {
	cfg := buildOptions(opts)
	start := time.Now()
	cfg.Logger.Info("johnson all-pairs started", slog.String("run_id", cfg.RunID), slog.Int("workers", cfg.Workers))

	res, err := func() (*AllPairsResult, error) {
		p, err := prepare(ctx, g, cfg)
		if err != nil {
			return nil, err
		}

		return p.allPairs(ctx, cfg)
	}()
	finish(cfg, modeAllPairs, start, err)

	return res, err
}

// V returns the number of vertices.
func (r *AllPairsResult) V() int { return len(r.sources) }

// RunID returns the correlation id of the run that produced r.
func (r *AllPairsResult) RunID() string { return r.runID }

// Potentials returns a copy of the potentials used for reweighting.
func (r *AllPairsResult) Potentials() Potentials { return r.h.Clone() }

// Source returns the single-source result for s.
func (r *AllPairsResult) Source(s int) (*SourceResult, error) {
	if s < 0 || s >= len(r.sources) {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", core.ErrVertexOutOfRange, s, len(r.sources))
	}

	return r.sources[s], nil
}

// Dist returns the shortest distance from s to t, +Inf if unreachable.
func (r *AllPairsResult) Dist(s, t int) (float64, error) {
	src, err := r.Source(s)
	if err != nil {
		return 0, err
	}

	return src.DistTo(t)
}

// HasPath reports whether t is reachable from s.
func (r *AllPairsResult) HasPath(s, t int) (bool, error) {
	src, err := r.Source(s)
	if err != nil {
		return false, err
	}

	return src.HasPathTo(t)
}

// Path returns the shortest s→t path with original weights; nil if unreachable.
func (r *AllPairsResult) Path(s, t int) ([]core.DirectedEdge, error) {
	src, err := r.Source(s)
	if err != nil {
		return nil, err
	}

	return src.PathTo(t)
}

// Pair is one (source, target) entry of an all-pairs result.
type Pair struct {
	Source, Target int
	Dist           float64             // +Inf when unreachable
	Path           []core.DirectedEdge // nil when unreachable
}

// Reachable reports whether the pair has a path.
func (p Pair) Reachable() bool { return !math.IsInf(p.Dist, 1) }

// Pairs lists every ordered pair in source-major, target-minor order.
func (r *AllPairsResult) Pairs() []Pair {
	n := len(r.sources)
	out := make([]Pair, 0, n*n)
	for s, src := range r.sources {
		for t := 0; t < n; t++ {
			d, _ := src.DistTo(t)   // t in range
			path, _ := src.PathTo(t) // tree invariants hold after a successful run
			out = append(out, Pair{Source: s, Target: t, Dist: d, Path: path})
		}
	}

	return out
}

// buildOptions applies opts over DefaultOptions and fills in a run id.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Policy == nil {
		cfg.Policy = bellmanford.EveryPass()
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}

	return cfg
}

// phase runs fn inside a span and records its duration.
func phase(ctx context.Context, cfg Options, name string, fn func(context.Context, trace.Span) error) error {
	ctx, span := tracer.Start(ctx, "johnson."+name,
		trace.WithAttributes(attribute.String("run_id", cfg.RunID)),
	)
	defer span.End()

	start := time.Now()
	err := fn(ctx, span)
	phaseDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return err
	}
	span.SetStatus(codes.Ok, "")

	return nil
}

// finish records the run outcome and logs it.
func finish(cfg Options, mode string, start time.Time, err error) {
	outcome := outcomeOK
	switch {
	case errors.Is(err, bellmanford.ErrNegativeCycle):
		outcome = outcomeNegativeCycle
	case err != nil:
		outcome = outcomeError
	}
	runsTotal.WithLabelValues(mode, outcome).Inc()

	attrs := []any{
		slog.String("run_id", cfg.RunID),
		slog.String("mode", mode),
		slog.String("outcome", outcome),
		slog.Duration("elapsed", time.Since(start)),
	}
	if err != nil && outcome == outcomeError {
		cfg.Logger.Error("johnson run failed", append(attrs, slog.Any("error", err))...)

		return
	}
	cfg.Logger.Info("johnson run finished", attrs...)
}
