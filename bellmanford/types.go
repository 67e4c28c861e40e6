// Package bellmanford defines the result, error and configuration types for the
// queue-based Bellman-Ford engine.
//
// Options:
//
//	– Ctx:    cancellation; checked once per dequeued vertex.
//	– Policy: when to rescan the predecessor graph for a negative cycle.
//	– Logger: structured logger for diagnostics (silent by default).
//
// Errors:
//
//	– ErrNegativeCycle   sentinel matched by every *NegativeCycleError.
//	– core.ErrNilGraph   if the graph is nil.
//	– core.ErrVertexOutOfRange if the source is outside [0, V).
package bellmanford

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/johnson/core"
)

// ErrNegativeCycle indicates that a negative cycle is reachable from the source.
// Use errors.As with *NegativeCycleError to obtain the cycle itself.
var ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

// NegativeCycleError carries the offending cycle as evidence.
type NegativeCycleError struct {
	// Cycle is the ordered edge sequence of the cycle; its total weight is negative.
	Cycle []core.DirectedEdge
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, edge := range e.Cycle {
		parts[i] = edge.String()
	}

	return fmt.Sprintf("%s: [%s] weight=%.2f", ErrNegativeCycle.Error(), strings.Join(parts, ", "), core.PathWeight(e.Cycle))
}

// Is lets errors.Is(err, ErrNegativeCycle) match.
func (e *NegativeCycleError) Is(target error) bool {
	return target == ErrNegativeCycle
}

// DetectionPolicy decides, after the relaxations-th edge relaxation (counting
// from zero) on a graph with v vertices, whether to rebuild the predecessor
// graph and search it for a cycle.
type DetectionPolicy func(relaxations, v int) bool

// EveryPass rescans once per full pass, i.e. every v relaxations. It is the
// default and bounds detection latency to O(V) relaxations.
func EveryPass() DetectionPolicy {
	return func(relaxations, v int) bool {
		return v > 0 && relaxations%v == 0
	}
}

// EveryRelaxation rescans after every single relaxation. Useful in tests that
// need detection to happen at a deterministic point.
func EveryRelaxation() DetectionPolicy {
	return func(int, int) bool { return true }
}

// EveryN rescans every n relaxations. n must be positive.
func EveryN(n int) DetectionPolicy {
	if n <= 0 {
		panic("bellmanford: EveryN requires n > 0")
	}

	return func(relaxations, _ int) bool {
		return relaxations%n == 0
	}
}

// Options configures a Bellman-Ford run.
type Options struct {
	Ctx    context.Context // cancellation; default Background
	Policy DetectionPolicy // rescan policy; default EveryPass
	Logger *slog.Logger    // diagnostics; default discards
}

// Option represents a functional option for configuring BellmanFord.
type Option func(*Options)

// DefaultOptions returns Options with a background context, the EveryPass
// policy and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Policy: EveryPass(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDetectionPolicy sets the negative-cycle rescan policy. A nil policy is ignored.
func WithDetectionPolicy(p DetectionPolicy) Option {
	return func(o *Options) {
		if p != nil {
			o.Policy = p
		}
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
