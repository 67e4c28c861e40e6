// Package core defines the central Graph, DirectedEdge and ShortestPaths types.
//
// This file declares DirectedEdge, Graph, the sentinel errors and the NewGraph
// constructor.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidInput indicates a malformed graph: negative vertex or edge count,
	// an endpoint outside [0, V) while building, or a non-finite weight.
	ErrInvalidInput = errors.New("core: invalid input")

	// ErrVertexOutOfRange indicates a query for a vertex outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrInvariantViolation indicates that an internal consistency check failed.
	// It is never the caller's fault and is not recoverable.
	ErrInvariantViolation = errors.New("core: invariant violation")

	// ErrNilGraph indicates that a nil *Graph was passed.
	ErrNilGraph = errors.New("core: graph is nil")
)

// DirectedEdge is an immutable weighted arc From → To.
type DirectedEdge struct {
	// From is the tail vertex.
	From int

	// To is the head vertex.
	To int

	// Weight is the edge cost. It may be negative in an input graph, never in a
	// graph handed to Dijkstra.
	Weight float64
}

// String renders the edge as "from->to weight" with two decimals, the form used
// by every report in this module.
func (e DirectedEdge) String() string {
	return fmt.Sprintf("%d->%d %.2f", e.From, e.To, e.Weight)
}

// Graph is an edge-weighted digraph over the dense vertex set [0, V).
//
// mu guards adj and e; v is fixed at construction.
type Graph struct {
	mu sync.RWMutex

	v   int              // vertex count, immutable
	e   int              // edge count, always Σ len(adj[i])
	adj [][]DirectedEdge // adj[from] in insertion order
}

// NewGraph creates an empty Graph with v vertices and no edges.
// Returns ErrInvalidInput if v < 0.
// Complexity: O(V).
func NewGraph(v int) (*Graph, error) {
	if v < 0 {
		return nil, fmt.Errorf("%w: vertex count %d is negative", ErrInvalidInput, v)
	}

	return &Graph{
		v:   v,
		adj: make([][]DirectedEdge, v),
	}, nil
}
