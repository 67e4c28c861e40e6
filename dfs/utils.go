// Package dfs provides helpers for working with cycles returned by FindCycle.
package dfs

import "github.com/katalvlaran/johnson/core"

// CanonicalCycle returns a rotation of cycle that starts with the edge leaving
// its smallest vertex. The edge order along the cycle is preserved. A nil or
// empty input is returned unchanged.
// Time Complexity: O(L).
func CanonicalCycle(cycle []core.DirectedEdge) []core.DirectedEdge {
	if len(cycle) == 0 {
		return cycle
	}

	// 1) Locate the edge with the minimal tail vertex.
	k := 0
	for i, e := range cycle {
		if e.From < cycle[k].From {
			k = i
		}
	}

	// 2) Rotate into a fresh slice.
	out := make([]core.DirectedEdge, 0, len(cycle))
	out = append(out, cycle[k:]...)
	out = append(out, cycle[:k]...)

	return out
}

// Vertices returns the vertex sequence of a cycle, closed by repeating the
// first vertex: [v0, v1, …, v0].
func Vertices(cycle []core.DirectedEdge) []int {
	if len(cycle) == 0 {
		return nil
	}
	out := make([]int, 0, len(cycle)+1)
	for _, e := range cycle {
		out = append(out, e.From)
	}

	return append(out, cycle[0].From)
}
