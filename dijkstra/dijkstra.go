// File: dijkstra.go
// Role: Dijkstra single-source shortest paths over core.Graph using IndexMinPQ.
// Notes:
//   - An upfront O(E) scan rejects negative weights before any relaxation.
//   - Edges with weight >= InfEdgeThreshold are impassable walls.
//   - Relaxations past MaxDistance are skipped.
//   - True decrease-key keeps at most V entries in the queue.

package dijkstra

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/johnson/core"
)

// Dijkstra computes shortest distances from source to all other vertices of g.
//
// Returns the shortest-path tree; unreached vertices have distance +Inf and
// no parent edge.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (core.ErrNilGraph).
//  2. source must lie in [0, V) (core.ErrVertexOutOfRange).
//  3. No edge in g can have negative weight (ErrNegativeWeight); checked
//     before any relaxation.
//
// Options customization:
//
//   - WithContext(ctx): abort between extractions when ctx is done.
//   - WithMaxDistance(x): vertices with distance > x are not explored (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func Dijkstra(g *core.Graph, source int, opts ...Option) (*core.ShortestPaths, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil.
	if g == nil {
		return nil, core.ErrNilGraph
	}

	// 3) Validate source lies in the vertex range.
	if err := g.ValidateVertex(source); err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d->%d weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Prepare per-run state. Every array and the queue are private to this run.
	n := g.V()
	r := &runner{
		g:       g,
		options: cfg,
		distTo:  make([]float64, n),
		edgeTo:  make([]core.DirectedEdge, n),
		hasEdge: make([]bool, n),
		pq:      NewIndexMinPQ(n),
	}

	// 6) Initialize algorithm state and run main loop.
	if err := r.init(source); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}
	cfg.Logger.Debug("dijkstra finished",
		slog.Int("source", source),
		slog.Int("settled", r.settled),
	)

	return core.NewShortestPaths(source, r.distTo, r.edgeTo, r.hasEdge)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph         // The input graph; read-only within Dijkstra.
	options Options             // Configuration options (thresholds, ctx, logger).
	distTo  []float64           // distTo[v] = current best distance from source.
	edgeTo  []core.DirectedEdge // edgeTo[v] = last edge on the best path to v.
	hasEdge []bool              // hasEdge[v] = edgeTo[v] is set.
	pq      *IndexMinPQ         // Vertices reached but not yet settled.
	settled int                 // Number of extracted vertices.
}

// init sets distTo[v] = +Inf for all v, distTo[source] = 0 and queues the source.
func (r *runner) init(source int) error {
	for v := range r.distTo {
		r.distTo[v] = math.Inf(1)
	}
	r.distTo[source] = 0

	return r.pq.Insert(source, 0)
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the
// unsettled vertex with the minimum distance and relaxes its outgoing edges.
// The loop ends when the queue is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}

		// 1) Extract the closest unsettled vertex; its distance is final.
		v, _ := r.pq.DelMin()
		r.settled++

		// 2) Relax all outgoing edges from v.
		if err := r.relax(v); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving v. If a shorter path to its head w is found,
// distTo[w] and edgeTo[w] are updated, then w is inserted into the queue the
// first time it is reached or its key is decreased otherwise.
func (r *runner) relax(v int) error {
	adj, err := r.g.Adj(v)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get adjacency of %d: %w", v, err)
	}

	for _, e := range adj {
		w := e.To

		// Skip any edge that is marked as impassable by InfEdgeThreshold.
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		// Candidate distance source → … → v → w.
		cand := r.distTo[v] + e.Weight
		if cand > r.options.MaxDistance {
			continue
		}

		// Strictly better only: equal distances keep the first parent found.
		if cand >= r.distTo[w] {
			continue
		}
		r.distTo[w] = cand
		r.edgeTo[w] = e
		r.hasEdge[w] = true

		if r.pq.Contains(w) {
			err = r.pq.DecreaseKey(w, cand)
		} else {
			err = r.pq.Insert(w, cand)
		}
		if err != nil {
			return fmt.Errorf("dijkstra: relax %v: %w", e, err)
		}
	}

	return nil
}
