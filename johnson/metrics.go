package johnson

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

// tracer spans every phase of a run. No exporter is installed here; the
// global provider decides where spans go.
var tracer = otel.Tracer("github.com/katalvlaran/johnson/johnson")

// Phase and outcome label values.
const (
	phaseAuxiliary   = "auxiliary"
	phaseBellmanFord = "bellman_ford"
	phaseReweight    = "reweight"
	phaseDijkstra    = "dijkstra"

	modeSingleSource = "single_source"
	modeAllPairs     = "all_pairs"

	outcomeOK            = "ok"
	outcomeNegativeCycle = "negative_cycle"
	outcomeError         = "error"
)

var (
	// runsTotal counts orchestrated runs.
	// Labels: mode (single_source, all_pairs), outcome (ok, negative_cycle, error)
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "johnson",
		Name:      "runs_total",
		Help:      "Johnson runs by mode and outcome",
	}, []string{"mode", "outcome"})

	// phaseDuration times each pipeline phase.
	// Labels: phase
	phaseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "johnson",
		Name:      "phase_duration_seconds",
		Help:      "Duration of Johnson pipeline phases in seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"phase"})

	// relaxationsTotal accumulates Bellman-Ford relaxations from the virtual source.
	relaxationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "johnson",
		Subsystem: "bellman_ford",
		Name:      "relaxations_total",
		Help:      "Edge relaxations performed by Bellman-Ford",
	})

	// negativeCyclesTotal counts runs aborted by a negative cycle.
	negativeCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "johnson",
		Subsystem: "bellman_ford",
		Name:      "negative_cycles_total",
		Help:      "Negative cycles detected",
	})

	// dijkstraRunsTotal counts per-source Dijkstra runs.
	dijkstraRunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "johnson",
		Subsystem: "dijkstra",
		Name:      "runs_total",
		Help:      "Single-source Dijkstra runs on reweighted graphs",
	})
)
