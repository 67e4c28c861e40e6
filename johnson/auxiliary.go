// File: auxiliary.go
// Role: the auxiliary graph, G plus a virtual source wired to every vertex.
// Determinism:
//   - Original edges keep their adjacency order; the virtual source's edges
//     are appended in vertex order 0..V-1.

package johnson

import (
	"context"
	"fmt"

	"github.com/katalvlaran/johnson/bellmanford"
	"github.com/katalvlaran/johnson/core"
)

// Auxiliary is a graph with V+1 vertices where vertex V is a virtual source
// with a zero-weight edge to every original vertex and no incoming edges.
// It is never mutated after BuildAuxiliary returns.
type Auxiliary struct {
	graph *core.Graph
	v     int // number of original vertices; also the virtual source id
}

// BuildAuxiliary copies g into a V+1 vertex graph and adds the virtual
// source's V zero-weight edges. g is not modified.
//
// Returns core.ErrNilGraph for a nil graph and core.ErrInvalidInput if an
// edge of g has an endpoint outside [0, V).
// Complexity: O(V + E).
func BuildAuxiliary(g *core.Graph) (*Auxiliary, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("johnson: auxiliary: %w", err)
	}

	n := g.V()
	aux, err := g.CloneWithVertices(n + 1)
	if err != nil {
		return nil, fmt.Errorf("johnson: auxiliary: %w", err)
	}
	for v := 0; v < n; v++ {
		if err = aux.AddEdge(n, v, 0); err != nil {
			return nil, fmt.Errorf("johnson: auxiliary: %w", err)
		}
	}

	return &Auxiliary{graph: aux, v: n}, nil
}

// Graph returns the underlying V+1 vertex graph.
func (a *Auxiliary) Graph() *core.Graph { return a.graph }

// Source returns the virtual source id, which equals the original V.
func (a *Auxiliary) Source() int { return a.v }

// OriginalV returns the vertex count of the graph the auxiliary was built from.
func (a *Auxiliary) OriginalV() int { return a.v }

// Potentials runs Bellman-Ford from the virtual source and returns the
// distances of the original vertices as potentials.
//
// On a negative cycle it returns the Bellman-Ford result together with the
// *bellmanford.NegativeCycleError so callers can report the evidence.
func (a *Auxiliary) Potentials(ctx context.Context, opts ...bellmanford.Option) (Potentials, *bellmanford.Result, error) {
	opts = append([]bellmanford.Option{bellmanford.WithContext(ctx)}, opts...)
	res, err := bellmanford.BellmanFord(a.graph, a.v, opts...)
	if err != nil {
		return nil, res, err
	}

	h := make(Potentials, a.v)
	for v := range h {
		d, derr := res.DistTo(v)
		if derr != nil {
			return nil, res, derr
		}
		h[v] = d
	}

	return h, res, nil
}
