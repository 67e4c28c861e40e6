// File: methods_clone.go
// Role: deep copies of a Graph.
// Determinism:
//   - Clone and CloneWithVertices keep every adjacency list in its original order.
// Concurrency:
//   - Read lock on the source graph; no mutation of the source.

package core

import "fmt"

// Clone returns a deep copy of g with identical vertex count, edges and
// adjacency order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone, _ := g.CloneWithVertices(g.v) // same V never fails

	return clone
}

// CloneWithVertices returns a deep copy of g widened to v vertices. The extra
// vertices [g.V(), v) start with empty adjacency lists. It is the base of the
// auxiliary graph construction.
//
// Returns ErrInvalidInput if v < g.V().
// Complexity: O(v + E).
func (g *Graph) CloneWithVertices(v int) (*Graph, error) {
	if v < g.v {
		return nil, fmt.Errorf("%w: cannot shrink a %d-vertex graph to %d", ErrInvalidInput, g.v, v)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		v:   v,
		e:   g.e,
		adj: make([][]DirectedEdge, v),
	}
	for i, list := range g.adj {
		if len(list) == 0 {
			continue
		}
		clone.adj[i] = append(make([]DirectedEdge, 0, len(list)), list...)
	}

	return clone, nil
}
