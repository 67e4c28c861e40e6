// File: reader.go
// Role: token reader and the edge-list graph parser.

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/johnson/core"
)

// ErrFormat indicates a missing or unparsable token. It wraps core.ErrInvalidInput.
var ErrFormat = fmt.Errorf("graphio: malformed input: %w", core.ErrInvalidInput)

// tokens yields whitespace-separated words and remembers how many it has read,
// so errors can point at the offending token.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

func (t *tokens) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("graphio: reading %s: %w", what, err)
		}

		return "", fmt.Errorf("%w: unexpected end of input, want %s", ErrFormat, what)
	}
	t.pos++

	return t.sc.Text(), nil
}

func (t *tokens) int(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s): %q is not an integer", ErrFormat, t.pos, what, s)
	}

	return n, nil
}

func (t *tokens) float(what string) (float64, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s): %q is not a number", ErrFormat, t.pos, what, s)
	}

	return x, nil
}

// expect consumes the given words verbatim.
func (t *tokens) expect(words ...string) error {
	for _, w := range words {
		s, err := t.next(strconv.Quote(w))
		if err != nil {
			return err
		}
		if s != w {
			return fmt.Errorf("%w: token %d: got %q, want %q", ErrFormat, t.pos, s, w)
		}
	}

	return nil
}

// counts reads a "V E" header and rejects negative values.
func (t *tokens) counts() (int, int, error) {
	v, err := t.int("vertex count")
	if err != nil {
		return 0, 0, err
	}
	e, err := t.int("edge count")
	if err != nil {
		return 0, 0, err
	}
	if v < 0 || e < 0 {
		return 0, 0, fmt.Errorf("%w: negative counts V=%d E=%d", core.ErrInvalidInput, v, e)
	}

	return v, e, nil
}

// edges reads e "from to weight" triples into g.
func (t *tokens) edges(g *core.Graph, e int) error {
	for i := 0; i < e; i++ {
		from, err := t.int("edge source")
		if err != nil {
			return err
		}
		to, err := t.int("edge target")
		if err != nil {
			return err
		}
		w, err := t.float("edge weight")
		if err != nil {
			return err
		}
		if err = g.AddEdge(from, to, w); err != nil {
			return fmt.Errorf("graphio: edge %d: %w", i, err)
		}
	}

	return nil
}

// ReadGraph parses a graph in "V E (from to weight)*" format. Trailing input
// after the last edge is ignored so a graph can be followed by other data.
//
// Errors wrap core.ErrInvalidInput for negative counts, out-of-range
// endpoints, non-finite weights and malformed tokens.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	return newTokens(r).graph()
}

func (t *tokens) graph() (*core.Graph, error) {
	v, e, err := t.counts()
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(v)
	if err != nil {
		return nil, err
	}
	if err = t.edges(g, e); err != nil {
		return nil, err
	}

	return g, nil
}
