// File: paths.go
// Role: ShortestPaths, the single-source shortest-path tree produced by the engines.
// Determinism:
//   - PathTo returns edges in source → target order.
// Concurrency:
//   - Immutable after NewShortestPaths; safe for concurrent readers.

package core

import (
	"fmt"
	"math"
)

// ShortestPaths is the shortest-path tree rooted at one source vertex.
//
// distTo[v] is the best known distance from the source (+Inf when unreached).
// edgeTo[v] is the last edge of that path and is meaningful only when
// hasEdge[v] is true; the source and unreached vertices have no parent edge.
type ShortestPaths struct {
	source  int
	distTo  []float64
	edgeTo  []DirectedEdge
	hasEdge []bool
}

// NewShortestPaths wraps the per-vertex arrays computed by an engine.
// The tree takes ownership of the slices; callers must not modify them afterwards.
//
// Returns ErrInvalidInput when the slices disagree in length and
// ErrVertexOutOfRange when source is outside the range they describe.
func NewShortestPaths(source int, distTo []float64, edgeTo []DirectedEdge, hasEdge []bool) (*ShortestPaths, error) {
	n := len(distTo)
	if len(edgeTo) != n || len(hasEdge) != n {
		return nil, fmt.Errorf("%w: distTo/edgeTo/hasEdge lengths %d/%d/%d differ",
			ErrInvalidInput, n, len(edgeTo), len(hasEdge))
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d is not between 0 and %d", ErrVertexOutOfRange, source, n-1)
	}

	return &ShortestPaths{source: source, distTo: distTo, edgeTo: edgeTo, hasEdge: hasEdge}, nil
}

// Source returns the root of the tree.
func (sp *ShortestPaths) Source() int { return sp.source }

// V returns the number of vertices the tree covers.
func (sp *ShortestPaths) V() int { return len(sp.distTo) }

func (sp *ShortestPaths) validate(v int) error {
	if v < 0 || v >= len(sp.distTo) {
		return fmt.Errorf("%w: vertex %d is not between 0 and %d", ErrVertexOutOfRange, v, len(sp.distTo)-1)
	}

	return nil
}

// DistTo returns the length of a shortest path from the source to v,
// or +Inf if v is unreachable.
func (sp *ShortestPaths) DistTo(v int) (float64, error) {
	if err := sp.validate(v); err != nil {
		return 0, err
	}

	return sp.distTo[v], nil
}

// HasPathTo reports whether v is reachable from the source.
func (sp *ShortestPaths) HasPathTo(v int) (bool, error) {
	if err := sp.validate(v); err != nil {
		return false, err
	}

	return sp.distTo[v] < math.Inf(1), nil
}

// EdgeTo returns the parent edge of v in the tree. The boolean is false for the
// source and for unreached vertices.
func (sp *ShortestPaths) EdgeTo(v int) (DirectedEdge, bool, error) {
	if err := sp.validate(v); err != nil {
		return DirectedEdge{}, false, err
	}

	return sp.edgeTo[v], sp.hasEdge[v], nil
}

// PathTo reconstructs a shortest path from the source to v by walking edgeTo
// backward and reversing. It returns nil when v is unreached and an empty,
// non-nil slice when v is the source.
// Complexity: O(path length).
func (sp *ShortestPaths) PathTo(v int) ([]DirectedEdge, error) {
	if err := sp.validate(v); err != nil {
		return nil, err
	}
	if !(sp.distTo[v] < math.Inf(1)) {
		return nil, nil
	}

	// 1) Collect parent edges target → source.
	path := make([]DirectedEdge, 0)
	for cur, steps := v, 0; sp.hasEdge[cur]; steps++ {
		if steps > len(sp.distTo) {
			// A parent chain longer than V revisits a vertex.
			return nil, fmt.Errorf("%w: parent chain from %d does not reach source %d",
				ErrInvariantViolation, v, sp.source)
		}
		e := sp.edgeTo[cur]
		path = append(path, e)
		cur = e.From
	}

	// 2) Reverse into source → target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Check verifies the optimality conditions of the tree against g:
//
//  1. distTo[source] == 0 and the source has no parent edge;
//  2. every other vertex has a parent edge iff it is reached;
//  3. every edge (v,w) of g satisfies distTo[w] ≤ distTo[v] + weight(v,w) + eps;
//  4. every tree edge (v,w) satisfies |distTo[w] − (distTo[v] + weight)| ≤ eps.
//
// eps absorbs floating-point rounding; pass 0 for exact comparison.
// Returns an error wrapping ErrInvariantViolation describing the first failure.
// Complexity: O(V + E).
func (sp *ShortestPaths) Check(g *Graph, eps float64) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.V() != len(sp.distTo) {
		return fmt.Errorf("%w: tree covers %d vertices, graph has %d", ErrInvariantViolation, len(sp.distTo), g.V())
	}

	// 1) Source consistency.
	s := sp.source
	if sp.distTo[s] != 0 || sp.hasEdge[s] {
		return fmt.Errorf("%w: distTo[%d]=%v and edgeTo[%d] inconsistent", ErrInvariantViolation, s, sp.distTo[s], s)
	}

	// 2) distTo/edgeTo agreement.
	inf := math.Inf(1)
	for v := range sp.distTo {
		if v == s {
			continue
		}
		if sp.hasEdge[v] != (sp.distTo[v] < inf) {
			return fmt.Errorf("%w: distTo[%d]=%v and edgeTo[%d] inconsistent", ErrInvariantViolation, v, sp.distTo[v], v)
		}
	}

	// 3) No edge can still be relaxed.
	for _, e := range g.Edges() {
		if sp.distTo[e.From] == inf {
			continue
		}
		if sp.distTo[e.From]+e.Weight < sp.distTo[e.To]-eps {
			return fmt.Errorf("%w: edge %v not relaxed", ErrInvariantViolation, e)
		}
	}

	// 4) Tree edges are tight.
	for w := range sp.distTo {
		if !sp.hasEdge[w] {
			continue
		}
		e := sp.edgeTo[w]
		if e.To != w {
			return fmt.Errorf("%w: edgeTo[%d]=%v does not end at %d", ErrInvariantViolation, w, e, w)
		}
		if math.Abs(sp.distTo[e.From]+e.Weight-sp.distTo[w]) > eps {
			return fmt.Errorf("%w: edge %v on shortest path not tight", ErrInvariantViolation, e)
		}
	}

	return nil
}
