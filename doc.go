// Package johnson is an in-memory toolkit for shortest paths in directed
// graphs whose edge weights may be negative.
//
// 🚀 What is in the box?
//
//	• Core primitives: dense-int directed graphs, edges, shortest-path trees
//	• Cycle search: iterative three-colour DFS
//	• Bellman-Ford: queue-based relaxation with pluggable negative-cycle detection
//	• Dijkstra: indexed priority queue with decrease-key
//	• Johnson: virtual source, reweighting, single-source and all-pairs queries
//	• I/O: edge-list and exchange formats, path reports, seeded random graphs
//
// ✨ Why?
//
//   - Negative weights are first class; negative cycles come back as evidence, not a bool
//   - Deterministic output for a fixed input order
//   - Context-aware engines; all-pairs runs fan out over a bounded worker pool
//
// Packages:
//
//	core/         Graph, DirectedEdge, ShortestPaths and sentinel errors
//	dfs/          directed cycle search
//	bellmanford/  Bellman-Ford engine and negative-cycle detector
//	dijkstra/     Dijkstra engine and IndexMinPQ
//	johnson/      auxiliary graph, reweight transform, orchestration
//	graphio/      text formats and random graphs
//	config/       YAML / TOML configuration
//	logging/      slog setup with rotating files
//	cmd/johnson/  command-line front end
//
// Quick ASCII example:
//
//	0 ──4──▶ 1
//	│        ▲
//	5       -3
//	▼        │
//	2 ───────┘
//
// has a shortest 0→1 distance of 2 via vertex 2.
//
//	go install github.com/katalvlaran/johnson/cmd/johnson@latest
package johnson
