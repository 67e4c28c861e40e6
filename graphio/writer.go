// File: writer.go
// Role: edge-list and exchange writers.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/johnson/core"
)

// formatWeight renders a weight losslessly; integral values keep a ".0"
// suffix so the output always reads as a decimal.
func formatWeight(w float64) string {
	s := strconv.FormatFloat(w, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}

	return s
}

// WriteGraph writes g in "V E (from to weight)*" format, one edge per line in
// adjacency order. ReadGraph(WriteGraph(g)) reproduces g exactly.
func WriteGraph(w io.Writer, g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.V(), g.E())
	writeEdges(bw, g.Edges())

	return bw.Flush()
}

func writeEdges(bw *bufio.Writer, edges []core.DirectedEdge) {
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %s\n", e.From, e.To, formatWeight(e.Weight))
	}
}
