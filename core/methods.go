// File: methods.go
// Role: edge insertion and read-only queries on Graph.
// Determinism:
//   - Adj(v) preserves insertion order; Edges() walks vertices 0..V-1 then each adjacency in order.
// Concurrency:
//   - AddEdge under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// V returns the number of vertices.
func (g *Graph) V() int {
	return g.v
}

// E returns the number of edges.
func (g *Graph) E() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.e
}

// HasVertex reports whether v lies in [0, V).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.v
}

// ValidateVertex returns ErrVertexOutOfRange unless v lies in [0, V).
func (g *Graph) ValidateVertex(v int) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: vertex %d is not between 0 and %d", ErrVertexOutOfRange, v, g.v-1)
	}

	return nil
}

// AddEdge appends the edge from → to with the given weight to from's adjacency
// list and increments E by exactly one.
//
// Returns ErrInvalidInput if an endpoint is outside [0, V) or if weight is NaN
// or infinite.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	// 1) Endpoints must lie in the dense vertex range.
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("%w: edge %d->%d has an endpoint outside [0, %d)", ErrInvalidInput, from, to, g.v)
	}

	// 2) Only finite weights take part in shortest-path arithmetic.
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %d->%d has non-finite weight %v", ErrInvalidInput, from, to, weight)
	}

	g.mu.Lock()
	g.adj[from] = append(g.adj[from], DirectedEdge{From: from, To: to, Weight: weight})
	g.e++
	g.mu.Unlock()

	return nil
}

// Adj returns the outgoing edges of v in insertion order.
//
// The returned slice is a read-only snapshot: callers must not modify it.
// Later AddEdge calls only append, so a held snapshot never changes.
func (g *Graph) Adj(v int) ([]DirectedEdge, error) {
	if err := g.ValidateVertex(v); err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[v], nil
}

// OutDegree returns the number of edges leaving v.
func (g *Graph) OutDegree(v int) (int, error) {
	adj, err := g.Adj(v)
	if err != nil {
		return 0, err
	}

	return len(adj), nil
}

// Edges returns every edge of g: vertices in ascending order, each adjacency
// list in insertion order. The result is a fresh slice.
// Complexity: O(V + E).
func (g *Graph) Edges() []DirectedEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]DirectedEdge, 0, g.e)
	for _, list := range g.adj {
		out = append(out, list...)
	}

	return out
}

// Validate re-checks the structural invariants of g: every endpoint in range,
// every edge stored under its tail, E equal to the adjacency total.
// It returns ErrInvalidInput on the first violation.
func (g *Graph) Validate() error {
	if g == nil {
		return ErrNilGraph
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for from, list := range g.adj {
		for _, e := range list {
			if e.From != from || !g.HasVertex(e.To) {
				return fmt.Errorf("%w: edge %v is stored under vertex %d with V=%d", ErrInvalidInput, e, from, g.v)
			}
		}
		total += len(list)
	}
	if total != g.e {
		return fmt.Errorf("%w: edge count %d disagrees with adjacency total %d", ErrInvalidInput, g.e, total)
	}

	return nil
}

// PathWeight returns the sum of the weights along path.
func PathWeight(path []DirectedEdge) float64 {
	var total float64
	for _, e := range path {
		total += e.Weight
	}

	return total
}
