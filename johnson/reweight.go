// File: reweight.go
// Role: the forward transform w' = w + h[u] - h[v] and its inverse.

package johnson

import (
	"fmt"
	"math"

	"github.com/katalvlaran/johnson/core"
)

// Potentials holds h(v) for every original vertex, indexed by vertex id.
// An unreached vertex has potential +Inf.
type Potentials []float64

// Clone returns an independent copy of h.
func (h Potentials) Clone() Potentials {
	return append(Potentials(nil), h...)
}

// Reached reports whether every potential is finite. With a virtual source
// this holds for any graph without a negative cycle.
func (h Potentials) Reached() bool {
	for _, x := range h {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return false
		}
	}

	return true
}

// Reweight returns a copy of g where every edge (u,v,w) becomes
// (u,v, w + h[u] - h[v]). Adjacency order is preserved.
//
// Edges touching a vertex with infinite potential are dropped: such a vertex
// lies beyond the reach of the potentials and Dijkstra treats it as unreachable.
// A result weight in [-eps, 0) is rounding noise and is clamped to 0; anything
// below -eps means h is not a valid potential and yields core.ErrInvariantViolation.
//
// Returns core.ErrInvalidInput if len(h) != g.V() or eps is negative.
// Complexity: O(V + E).
func Reweight(g *core.Graph, h Potentials, eps float64) (*core.Graph, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if len(h) != g.V() {
		return nil, fmt.Errorf("%w: %d potentials for %d vertices", core.ErrInvalidInput, len(h), g.V())
	}
	if eps < 0 || math.IsNaN(eps) {
		return nil, fmt.Errorf("%w: tolerance %v", core.ErrInvalidInput, eps)
	}

	out, err := core.NewGraph(g.V())
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		hu, hv := h[e.From], h[e.To]
		if math.IsInf(hu, 0) || math.IsInf(hv, 0) {
			continue
		}
		w := e.Weight + hu - hv
		if w < 0 {
			if w < -eps {
				return nil, fmt.Errorf("%w: reweighted edge %d->%d is %v (w=%v h[u]=%v h[v]=%v)",
					core.ErrInvariantViolation, e.From, e.To, w, e.Weight, hu, hv)
			}
			w = 0
		}
		if err = out.AddEdge(e.From, e.To, w); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// RecoverDistance undoes the reweighting over a path from u to v:
// raw - h[u] + h[v]. The potential terms telescope, so it applies equally
// to a single edge or a whole path. +Inf stays +Inf.
func RecoverDistance(raw, hFrom, hTo float64) float64 {
	if math.IsInf(raw, 1) {
		return raw
	}

	return raw - hFrom + hTo
}

// RecoverPath maps each edge of a path on the reweighted graph back to its
// original weight. A nil path stays nil.
func RecoverPath(path []core.DirectedEdge, h Potentials) []core.DirectedEdge {
	if path == nil {
		return nil
	}
	out := make([]core.DirectedEdge, len(path))
	for i, e := range path {
		out[i] = core.DirectedEdge{
			From:   e.From,
			To:     e.To,
			Weight: RecoverDistance(e.Weight, h[e.From], h[e.To]),
		}
	}

	return out
}
