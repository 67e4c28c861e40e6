// File: report.go
// Role: human-readable path reports.
// Format:
//   - "s to t (d)" then one "from->to w" hop per edge, values in "% .2f" so
//     non-negative numbers keep a leading space and columns line up.
//   - Unreachable targets print "no path".

package graphio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/johnson/core"
	"github.com/katalvlaran/johnson/johnson"
)

// PathSource is anything that answers single-source distance and path
// queries: *core.ShortestPaths, *bellmanford.Result and *johnson.SourceResult.
type PathSource interface {
	Source() int
	DistTo(v int) (float64, error)
	HasPathTo(v int) (bool, error)
	PathTo(v int) ([]core.DirectedEdge, error)
}

// WritePaths reports the path from src's source to every vertex in [0, v).
func WritePaths(w io.Writer, src PathSource, v int) error {
	bw := bufio.NewWriter(w)
	if err := writeSource(bw, src, v, "%d to %d         no path\n"); err != nil {
		return err
	}

	return bw.Flush()
}

// WriteAllPairs reports every ordered pair, one block per source separated by
// a blank line.
func WriteAllPairs(w io.Writer, res *johnson.AllPairsResult) error {
	bw := bufio.NewWriter(w)
	n := res.V()
	for s := 0; s < n; s++ {
		src, err := res.Source(s)
		if err != nil {
			return err
		}
		if err = writeSource(bw, src, n, "%d to %d\tno path\n"); err != nil {
			return err
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

func writeSource(bw *bufio.Writer, src PathSource, v int, noPath string) error {
	s := src.Source()
	for t := 0; t < v; t++ {
		ok, err := src.HasPathTo(t)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(bw, noPath, s, t)
			continue
		}
		d, err := src.DistTo(t)
		if err != nil {
			return err
		}
		path, err := src.PathTo(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%d to %d (% .2f)  ", s, t, d)
		for _, e := range path {
			fmt.Fprintf(bw, "%d->%d % .2f\t", e.From, e.To, e.Weight)
		}
		bw.WriteString("\n")
	}

	return nil
}

// WriteNegativeCycle prints the cycle's edges one per line followed by its
// total weight.
func WriteNegativeCycle(w io.Writer, cycle []core.DirectedEdge) error {
	bw := bufio.NewWriter(w)
	for _, e := range cycle {
		fmt.Fprintln(bw, e)
	}
	fmt.Fprintf(bw, "negative cycle weight %.2f\n", core.PathWeight(cycle))

	return bw.Flush()
}
