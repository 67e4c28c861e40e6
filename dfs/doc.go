// Package dfs implements directed cycle search on a core.Graph using an
// iterative depth-first traversal with three-colour vertex marking.
//
// What:
//
//   - FindCycle: returns the first directed cycle reachable in vertex order
//     0..V-1, as the ordered sequence of its edges, or nil when g is acyclic.
//   - CanonicalCycle: rotates a cycle so that it starts at its smallest vertex,
//     giving a stable form for reports and comparisons.
//
// Why:
//
//   - Negative-cycle detection in Bellman-Ford reduces to a cycle search over
//     the predecessor subgraph (at most one outgoing edge per vertex).
//   - An explicit stack avoids recursion-depth limits on long parent chains.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers (Gray == on the DFS stack).
//   - Option / Options: functional options (WithContext).
//
// Complexity:
//
//   - FindCycle: Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil: a nil *core.Graph was passed.
//   - context errors, wrapped, when the traversal is cancelled.
package dfs
