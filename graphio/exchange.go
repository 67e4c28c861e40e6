// File: exchange.go
// Role: the potential/reweighted-graph exchange format between pipeline stages.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/johnson/core"
	"github.com/katalvlaran/johnson/johnson"
)

// Section headers of the exchange format.
const (
	headerPotentials = "Point weight"
	headerReweighted = "New Edge weight"
)

// WriteExchange writes the potentials and the reweighted graph produced by
// johnson.Prepare. Unreached potentials are written as 0.0; both sections
// repeat the original "V E" counts.
func WriteExchange(w io.Writer, p *johnson.Prepared) error {
	if p == nil {
		return core.ErrNilGraph
	}
	g, h := p.Graph(), p.Potentials()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n", headerPotentials, g.V(), g.E())
	for v, x := range h {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			x = 0
		}
		fmt.Fprintf(bw, "%d %s\n", v, formatWeight(x))
	}
	fmt.Fprintf(bw, "%s\n%d %d\n", headerReweighted, g.V(), g.E())
	writeEdges(bw, g.Edges())

	return bw.Flush()
}

// ReadExchange parses the output of WriteExchange and returns the prepared
// graph, ready for Dijkstra queries. Potential lines may come in any vertex
// order but every vertex must appear exactly once.
func ReadExchange(r io.Reader) (*johnson.Prepared, error) {
	t := newTokens(r)

	// 1) Potentials section.
	if err := t.expect("Point", "weight"); err != nil {
		return nil, err
	}
	v, _, err := t.counts()
	if err != nil {
		return nil, err
	}
	h := make(johnson.Potentials, v)
	seen := make([]bool, v)
	for i := 0; i < v; i++ {
		vertex, err := t.int("potential vertex")
		if err != nil {
			return nil, err
		}
		if vertex < 0 || vertex >= v {
			return nil, fmt.Errorf("%w: potential for vertex %d outside [0,%d)", core.ErrInvalidInput, vertex, v)
		}
		if seen[vertex] {
			return nil, fmt.Errorf("%w: duplicate potential for vertex %d", core.ErrInvalidInput, vertex)
		}
		seen[vertex] = true
		if h[vertex], err = t.float("potential"); err != nil {
			return nil, err
		}
	}

	// 2) Reweighted graph section.
	if err = t.expect("New", "Edge", "weight"); err != nil {
		return nil, err
	}
	g, err := t.graph()
	if err != nil {
		return nil, err
	}
	if g.V() != v {
		return nil, fmt.Errorf("%w: %d potentials for a %d-vertex graph", core.ErrInvalidInput, v, g.V())
	}

	return johnson.NewPrepared(g, h)
}
