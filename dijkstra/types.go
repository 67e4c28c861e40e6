// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on non-negatively weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// The algorithm maintains an indexed priority queue of vertices to explore and
// relaxes edges in increasing order of distance from the source vertex.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	   • Each vertex is extracted from the priority queue at most once (V extracts).
//	   • Each relaxation is an insert or a decrease-key, O(log V) each.
//	– Space: O(V)
//	   • distTo/edgeTo arrays and a queue that never holds more than V entries.
//
// Options:
//
//	– Ctx:              cancellation; checked once per extracted vertex.
//	– MaxDistance:      cap on distances to explore; vertices beyond it stay unreached.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– Logger:           structured logger for diagnostics (silent by default).
//
// Errors (sentinel):
//
//	– core.ErrNilGraph          if the provided graph pointer is nil.
//	– core.ErrVertexOutOfRange  if the source vertex is outside [0, V).
//	– ErrNegativeWeight         if a negative edge weight is detected (wraps core.ErrInvalidInput).
//	– ErrBadMaxDistance         if MaxDistance < 0.
//	– ErrBadInfThreshold        if InfEdgeThreshold <= 0.
//
// Example usage:
//
//	sp, err := dijkstra.Dijkstra(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	d, _ := sp.DistTo(3)
//	path, _ := sp.PathTo(3)
package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/johnson/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	// It wraps core.ErrInvalidInput: handing Dijkstra a negative edge is a caller bug.
	ErrNegativeWeight = fmt.Errorf("dijkstra: negative edge weight encountered: %w", core.ErrInvalidInput)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Ctx              context.Context // Cancellation; default Background
	MaxDistance      float64         // Maximum distance to explore
	InfEdgeThreshold float64         // Weight threshold above which edges are non-traversable
	Logger           *slog.Logger    // Diagnostics; default discards
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Must pass a non-negative value; negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable (treated as infinite weight).
// Edges with weight ≥ threshold are skipped entirely.
// Must pass a positive value; zero or negative panic with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
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

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - Ctx:              context.Background().
//   - MaxDistance:      +Inf (no distance limit; explore all reachable).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - Logger:           discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
