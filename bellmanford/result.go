package bellmanford

import (
	"github.com/katalvlaran/johnson/core"
)

// Result is the outcome of a Bellman-Ford run: either a shortest-path tree, or
// a negative cycle that makes every distance undefined.
//
// All distance and path queries fail with *NegativeCycleError when
// HasNegativeCycle reports true.
type Result struct {
	tree        *core.ShortestPaths
	cycle       []core.DirectedEdge
	relaxations int
}

// HasNegativeCycle reports whether a negative cycle is reachable from the source.
func (r *Result) HasNegativeCycle() bool {
	return r.cycle != nil
}

// NegativeCycle returns the detected cycle, or nil if there is none.
func (r *Result) NegativeCycle() []core.DirectedEdge {
	return r.cycle
}

// Relaxations returns how many edge relaxations the run performed.
func (r *Result) Relaxations() int {
	return r.relaxations
}

func (r *Result) cycleErr() error {
	if r.cycle == nil {
		return nil
	}

	return &NegativeCycleError{Cycle: r.cycle}
}

// Tree returns the shortest-path tree, or *NegativeCycleError.
func (r *Result) Tree() (*core.ShortestPaths, error) {
	if err := r.cycleErr(); err != nil {
		return nil, err
	}

	return r.tree, nil
}

// Source returns the vertex the run started from.
func (r *Result) Source() int {
	return r.tree.Source()
}

// DistTo returns the shortest distance from the source to v (+Inf if unreached).
func (r *Result) DistTo(v int) (float64, error) {
	if err := r.cycleErr(); err != nil {
		return 0, err
	}

	return r.tree.DistTo(v)
}

// HasPathTo reports whether v is reachable from the source.
func (r *Result) HasPathTo(v int) (bool, error) {
	if err := r.cycleErr(); err != nil {
		return false, err
	}

	return r.tree.HasPathTo(v)
}

// PathTo returns a shortest path from the source to v, nil if unreached.
func (r *Result) PathTo(v int) ([]core.DirectedEdge, error) {
	if err := r.cycleErr(); err != nil {
		return nil, err
	}

	return r.tree.PathTo(v)
}

// Check verifies the optimality conditions of the run against g: a detected
// cycle must have negative total weight; otherwise the tree must satisfy
// core.ShortestPaths.Check within eps. It is a verification aid for tests and
// debug builds, never required for correct operation.
func (r *Result) Check(g *core.Graph, eps float64) error {
	if r.cycle != nil {
		if w := core.PathWeight(r.cycle); !(w < 0) {
			return invariantf("weight of negative cycle = %v", w)
		}

		return nil
	}

	return r.tree.Check(g, eps)
}
