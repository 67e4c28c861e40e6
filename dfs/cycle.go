// Package dfs implements directed cycle detection for core.Graph.
// FindCycle walks the graph depth-first with an explicit stack, marking each
// vertex White (unvisited), Gray (on the stack) or Black (finished). An edge
// into a Gray vertex closes a cycle; the cycle is recovered from the DFS tree
// edges recorded on the way down.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (state, tree edges, explicit stack)
package dfs

import (
	"fmt"

	"github.com/katalvlaran/johnson/core"
)

// frame is one level of the explicit DFS stack: the vertex and the index of
// the next outgoing edge to examine.
type frame struct {
	v    int
	next int
}

// FindCycle searches g for a directed cycle.
//
// Roots are tried in ascending vertex order and edges in adjacency order, so
// the returned cycle is deterministic for a given graph. The cycle is the
// ordered edge sequence w→…→v→w that starts at the vertex w the closing back
// edge points to. A self-loop is a one-edge cycle.
//
// Returns (nil, nil) if g is acyclic, (nil, ErrGraphNil) if g is nil, and a
// wrapped context error if the traversal is cancelled.
func FindCycle(g *core.Graph, opts ...Option) ([]core.DirectedEdge, error) {
	// 1) Nil graph has nothing to walk.
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Per-vertex state, DFS tree edges and the explicit stack.
	n := g.V()
	state := make([]uint8, n)
	edgeTo := make([]core.DirectedEdge, n)
	stack := make([]frame, 0, n)

	// 3) Launch a DFS from each vertex that is still White.
	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		if err := cfg.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("dfs: FindCycle: %w", err)
		}

		state[root] = Gray
		stack = append(stack, frame{v: root})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			adj, err := g.Adj(top.v)
			if err != nil {
				return nil, fmt.Errorf("dfs: FindCycle: %w", err)
			}

			// 3a) All edges explored: finish the vertex and pop.
			if top.next == len(adj) {
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			e := adj[top.next]
			top.next++

			// 3b) White: descend. Gray: back edge closes a cycle. Black: already finished.
			switch state[e.To] {
			case White:
				edgeTo[e.To] = e
				state[e.To] = Gray
				stack = append(stack, frame{v: e.To})
			case Gray:
				return traceCycle(e, edgeTo), nil
			}
		}
	}

	return nil, nil
}

// traceCycle rebuilds the cycle closed by the back edge closing = v→w, where w
// is still on the stack: follow tree edges from v back to w, then reverse.
func traceCycle(closing core.DirectedEdge, edgeTo []core.DirectedEdge) []core.DirectedEdge {
	cycle := []core.DirectedEdge{closing}
	for cur := closing.From; cur != closing.To; {
		e := edgeTo[cur]
		cycle = append(cycle, e)
		cur = e.From
	}

	// Collected as v→w, u→v, …, w→x; reverse into w→x, …, v→w.
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return cycle
}
