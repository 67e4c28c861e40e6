// Package core provides the dense, index-addressed directed graph used by every
// shortest-path engine in this module, together with the shortest-path tree
// those engines produce.
//
// The Graph G = (V,E) is deliberately minimal:
//
//   - Vertices are the integers 0..V-1; they carry no payload.
//   - Edges are immutable DirectedEdge values (From, To, Weight float64).
//   - Adjacency is an ordered slice per vertex; insertion order is preserved so
//     that every algorithm is deterministic and test output is reproducible.
//   - Edges are only ever added; there is no removal.
//   - E() always equals the sum of the adjacency-list lengths.
//
// Why a dense graph?
//
//   - Bellman-Ford, Dijkstra and the reweighting transform all index per-vertex
//     arrays (distTo, edgeTo, onQueue, potentials); dense ids make those O(1).
//   - The auxiliary graph of Johnson's algorithm is simply "one more vertex".
//
// Shortest-path trees:
//
//	ShortestPaths stores distTo[v] (+Inf when unreached) and the parent edge
//	edgeTo[v] for a single source. PathTo walks the parent edges back to the
//	source. Check verifies the optimality conditions:
//
//	  • distTo[s] == 0 and s has no parent edge;
//	  • every edge (v,w) satisfies distTo[w] ≤ distTo[v] + weight(v,w);
//	  • every tree edge (v,w) satisfies distTo[w] == distTo[v] + weight(v,w).
//
// Errors:
//
//	ErrInvalidInput       – malformed graph (negative V, bad endpoint, non-finite weight).
//	ErrVertexOutOfRange   – a query referenced a vertex outside [0, V).
//	ErrInvariantViolation – an internal consistency check failed.
//	ErrNilGraph           – a nil *Graph was passed.
//
// Concurrency:
//
//	Graph guards its adjacency with a sync.RWMutex. Slices returned by Adj are
//	read-only snapshots: AddEdge only appends, so a snapshot never changes under
//	a reader. ShortestPaths is read-only after construction.
package core
