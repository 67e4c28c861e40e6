// Package dfs defines visitation states and options for directed cycle search.
package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the DFS stack.
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// ErrGraphNil is returned when a nil *core.Graph is passed to FindCycle.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of the cycle search.
type Option func(*Options)

// Options holds configurable parameters for the cycle search.
type Options struct {
	// Ctx allows cancellation; checked once per DFS root.
	// Defaults to context.Background().
	Ctx context.Context
}

// DefaultOptions returns Options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for the traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
