// Package johnson computes shortest paths in directed graphs with negative
// edge weights using Johnson's algorithm.
//
// A single Bellman-Ford run from an added virtual source yields a potential
// h(v) for every vertex. Reweighting every edge as
//
//	w'(u,v) = w(u,v) + h(u) - h(v)
//
// makes all weights non-negative without changing which paths are shortest,
// so Dijkstra can then answer single-source or all-pairs queries. Distances
// on the reweighted graph are mapped back with RecoverDistance.
//
// Pipeline (each stage is exposed on its own):
//
//	BuildAuxiliary → Auxiliary.Potentials (Bellman-Ford) → Reweight → Dijkstra per source → RecoverDistance
//
// A negative cycle anywhere in the graph is reachable from the virtual source
// and aborts the whole computation with *bellmanford.NegativeCycleError.
//
// Complexity:
//
//   - Time:  O(V·E) for Bellman-Ford worst case, plus O(V·(V+E) log V) for all pairs.
//   - Space: O(V + E) per run, plus O(V²) for an all-pairs result.
//
// Concurrency:
//
//   - The reweighted graph is read-only once built; AllPairs fans the per-source
//     Dijkstra runs out over an errgroup bounded by WithWorkers.
//   - Every run owns its priority queue and distance arrays.
//
// Observability:
//
//   - Each run gets a run id (uuid) attached to log records and spans.
//   - Phases are traced with OpenTelemetry and timed in Prometheus histograms.
package johnson

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/johnson/bellmanford"
)

// DefaultTolerance is the slack allowed when a reweighted edge comes out
// slightly negative through floating-point rounding.
const DefaultTolerance = 1e-9

// Options configures a Johnson run.
type Options struct {
	Workers   int                         // parallel Dijkstra runs in AllPairs; 0 = sequential
	Policy    bellmanford.DetectionPolicy // negative-cycle rescan policy; nil = EveryPass
	Tolerance float64                     // reweight clamp epsilon
	Logger    *slog.Logger                // diagnostics; default discards
	RunID     string                      // correlation id; generated when empty
}

// Option represents a functional option for configuring a Johnson run.
type Option func(*Options)

// DefaultOptions returns sequential, EveryPass, DefaultTolerance, silent options.
func DefaultOptions() Options {
	return Options{
		Workers:   0,
		Policy:    bellmanford.EveryPass(),
		Tolerance: DefaultTolerance,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers bounds the number of concurrent Dijkstra runs in AllPairs.
// Zero means sequential. Panics on a negative value.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("johnson: workers must be non-negative")
		}
		o.Workers = n
	}
}

// WithDetectionPolicy sets the Bellman-Ford negative-cycle rescan policy.
// A nil policy is ignored.
func WithDetectionPolicy(p bellmanford.DetectionPolicy) Option {
	return func(o *Options) {
		if p != nil {
			o.Policy = p
		}
	}
}

// WithTolerance sets the epsilon under which a negative reweighted edge is
// clamped to zero instead of reported as an invariant violation.
// Panics on a negative or NaN value.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || math.IsNaN(eps) {
			panic("johnson: tolerance must be non-negative")
		}
		o.Tolerance = eps
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRunID fixes the correlation id instead of generating one.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}
