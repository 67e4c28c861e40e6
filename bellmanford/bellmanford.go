// Package bellmanford implements the queue-based Bellman-Ford single-source
// shortest-path algorithm with periodic negative-cycle detection.
//
// A vertex is queued whenever its distance improves and it is not already
// queued; dequeuing a vertex relaxes all of its outgoing edges. Without a
// negative cycle every vertex is relaxed a bounded number of times and the
// queue drains. With one, relaxation never stabilizes, so after the edge
// relaxations selected by the DetectionPolicy (default: every V) the
// predecessor graph is rebuilt from edgeTo and searched for a cycle.
//
// Complexity:
//
//   - Time:  O(V·E) worst case; typically far less on sparse inputs.
//   - Each rescan costs O(V); the default policy runs one per V relaxations.
//   - Space: O(V) for distTo, edgeTo, the queue and the rescan snapshot.
package bellmanford

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/johnson/core"
)

// BellmanFord computes shortest paths from source to every vertex of g. Edge
// weights may be negative.
//
// Returns:
//
//   - (*Result, nil): no negative cycle reachable; the tree is queryable.
//   - (*Result, *NegativeCycleError): a negative cycle is reachable; the result
//     carries the cycle and every distance/path query fails with the same error.
//   - (nil, err): invalid input (core.ErrNilGraph, core.ErrVertexOutOfRange) or
//     a cancelled context.
//
// The DetectionPolicy must fire infinitely often (every built-in policy does);
// otherwise a reachable negative cycle keeps the run going until Ctx is done.
func BellmanFord(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and source.
	if g == nil {
		return nil, core.ErrNilGraph
	}
	if err := g.ValidateVertex(source); err != nil {
		return nil, fmt.Errorf("bellmanford: source: %w", err)
	}

	// 3) Initialize per-run state: distTo = +Inf except the source.
	n := g.V()
	r := &runner{
		g:       g,
		cfg:     cfg,
		distTo:  make([]float64, n),
		edgeTo:  make([]core.DirectedEdge, n),
		hasEdge: make([]bool, n),
		queue:   newVertexQueue(n),
	}
	for v := range r.distTo {
		r.distTo[v] = math.Inf(1)
	}
	r.distTo[source] = 0
	r.queue.enqueue(source)

	cfg.Logger.Debug("bellman-ford started",
		slog.Int("vertices", n),
		slog.Int("edges", g.E()),
		slog.Int("source", source),
	)

	// 4) Relax until the queue drains or a negative cycle shows up.
	if err := r.process(); err != nil {
		return nil, err
	}

	tree, err := core.NewShortestPaths(source, r.distTo, r.edgeTo, r.hasEdge)
	if err != nil {
		return nil, err
	}
	res := &Result{tree: tree, cycle: r.cycle, relaxations: r.cost}

	if r.cycle != nil {
		cfg.Logger.Debug("bellman-ford found negative cycle",
			slog.Int("relaxations", r.cost),
			slog.Int("cycle_length", len(r.cycle)),
			slog.Float64("cycle_weight", core.PathWeight(r.cycle)),
		)

		return res, &NegativeCycleError{Cycle: r.cycle}
	}
	cfg.Logger.Debug("bellman-ford finished", slog.Int("relaxations", r.cost))

	return res, nil
}

// runner holds the mutable state for a single Bellman-Ford execution.
type runner struct {
	g       *core.Graph         // input graph; read-only
	cfg     Options             // configuration
	distTo  []float64           // distTo[v] = length of best known source→v path
	edgeTo  []core.DirectedEdge // edgeTo[v] = last edge on that path
	hasEdge []bool              // hasEdge[v] = edgeTo[v] is set
	queue   *vertexQueue        // vertices whose distance changed
	cost    int                 // relaxations so far
	cycle   []core.DirectedEdge // negative cycle, once found
}

// process is the main loop: dequeue, relax, repeat.
func (r *runner) process() error {
	for r.queue.len() > 0 && r.cycle == nil {
		if err := r.cfg.Ctx.Err(); err != nil {
			return fmt.Errorf("bellmanford: %w", err)
		}
		v := r.queue.dequeue()
		if err := r.relax(v); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every edge leaving v, improving distTo/edgeTo and queueing
// heads whose distance dropped. After each relaxation the detection policy may
// trigger a predecessor-graph rescan; relaxation stops as soon as a cycle is found.
func (r *runner) relax(v int) error {
	adj, err := r.g.Adj(v)
	if err != nil {
		return fmt.Errorf("bellmanford: adjacency of %d: %w", v, err)
	}

	n := r.g.V()
	for _, e := range adj {
		w := e.To
		if cand := r.distTo[v] + e.Weight; r.distTo[w] > cand {
			r.distTo[w] = cand
			r.edgeTo[w] = e
			r.hasEdge[w] = true
			if !r.queue.has(w) {
				r.queue.enqueue(w)
			}
		}

		detect := r.cfg.Policy(r.cost, n)
		r.cost++
		if !detect {
			continue
		}
		cycle, err := FindNegativeCycle(r.edgeTo, r.hasEdge)
		if err != nil {
			return err
		}
		if cycle != nil {
			r.cycle = cycle
			return nil
		}
	}

	return nil
}
