// File: detector.go
// Role: negative-cycle detection over the predecessor (edgeTo) subgraph.
// Determinism:
//   - The predecessor graph lists parents in vertex order; dfs.FindCycle is deterministic.

package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/johnson/core"
	"github.com/katalvlaran/johnson/dfs"
)

// PredecessorGraph builds the digraph on len(edgeTo) vertices that contains
// exactly the recorded parent edges: edgeTo[v] for every v with hasEdge[v].
// Every vertex has at most one incoming edge, so the graph has at most V edges.
func PredecessorGraph(edgeTo []core.DirectedEdge, hasEdge []bool) (*core.Graph, error) {
	spt, err := core.NewGraph(len(edgeTo))
	if err != nil {
		return nil, err
	}
	for v, e := range edgeTo {
		if !hasEdge[v] {
			continue
		}
		if err = spt.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return spt, nil
}

// FindNegativeCycle snapshots the predecessor graph and searches it for a
// cycle. Any cycle in a Bellman-Ford predecessor graph has negative weight; a
// non-negative one signals an internal error and is reported as
// core.ErrInvariantViolation.
//
// Returns (nil, nil) when the predecessor graph is acyclic.
// Complexity: O(V).
func FindNegativeCycle(edgeTo []core.DirectedEdge, hasEdge []bool) ([]core.DirectedEdge, error) {
	// 1) Predecessor subgraph from the current snapshot.
	spt, err := PredecessorGraph(edgeTo, hasEdge)
	if err != nil {
		return nil, err
	}

	// 2) Directed cycle search.
	cycle, err := dfs.FindCycle(spt)
	if err != nil || cycle == nil {
		return nil, err
	}

	// 3) Sanity: predecessor cycles are negative.
	if w := core.PathWeight(cycle); !(w < 0) {
		return nil, invariantf("predecessor cycle %v has weight %v", dfs.Vertices(cycle), w)
	}

	return cycle, nil
}

func invariantf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: bellmanford: %s", core.ErrInvariantViolation, fmt.Sprintf(format, args...))
}
