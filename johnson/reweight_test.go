package johnson_test

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/johnson/core"
	"github.com/katalvlaran/johnson/johnson"
)

func TestBuildAuxiliary(t *testing.T) {
	g := diamond(t)
	aux, err := johnson.BuildAuxiliary(g)
	require.NoError(t, err)

	ag := aux.Graph()
	assert.Equal(t, 5, ag.V())
	assert.Equal(t, 9, ag.E())
	assert.Equal(t, 4, aux.Source())
	assert.Equal(t, 4, aux.OriginalV())

	adj, err := ag.Adj(4)
	require.NoError(t, err)
	require.Len(t, adj, 4)
	for v, e := range adj {
		assert.Equal(t, core.DirectedEdge{From: 4, To: v, Weight: 0}, e)
	}
	for v := 0; v < 5; v++ {
		list, err := ag.Adj(v)
		require.NoError(t, err)
		for _, e := range list {
			assert.NotEqual(t, 4, e.To, "virtual source has no incoming edges")
		}
	}

	// Original adjacency order is kept and g is untouched.
	orig, err := g.Adj(1)
	require.NoError(t, err)
	copied, err := ag.Adj(1)
	require.NoError(t, err)
	assert.Equal(t, orig, copied)
	assert.Equal(t, 4, g.V())
	assert.Equal(t, 5, g.E())

	_, err = johnson.BuildAuxiliary(nil)
	require.ErrorIs(t, err, core.ErrNilGraph)
}

func TestBuildAuxiliary_Idempotent(t *testing.T) {
	g := triangle(t)
	a1, err := johnson.BuildAuxiliary(g)
	require.NoError(t, err)
	a2, err := johnson.BuildAuxiliary(g)
	require.NoError(t, err)

	key := func(es []core.DirectedEdge) []core.DirectedEdge {
		sort.Slice(es, func(i, j int) bool {
			if es[i].From != es[j].From {
				return es[i].From < es[j].From
			}
			if es[i].To != es[j].To {
				return es[i].To < es[j].To
			}
			return es[i].Weight < es[j].Weight
		})
		return es
	}
	assert.Equal(t, a1.Graph().V(), a2.Graph().V())
	assert.Equal(t, a1.Graph().E(), a2.Graph().E())
	assert.Equal(t, key(a1.Graph().Edges()), key(a2.Graph().Edges()))
}

func TestPotentials(t *testing.T) {
	aux, err := johnson.BuildAuxiliary(build(t, 3,
		core.DirectedEdge{From: 0, To: 1, Weight: -2},
		core.DirectedEdge{From: 1, To: 2, Weight: -1},
	))
	require.NoError(t, err)
	h, res, err := aux.Potentials(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, johnson.Potentials{0, -2, -3}, h)
	assert.True(t, h.Reached())

	for _, x := range h {
		assert.LessOrEqual(t, x, 0.0, "potentials from a zero-weight virtual source never exceed 0")
	}
}

func TestReweight_NonNegativeAndRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for round := 0; round < 20; round++ {
		n := 1 + rng.Intn(10)
		g, err := randomNoNegCycle(rng, n, 3*n)
		require.NoError(t, err)

		p := mustPrepare(t, g)
		h := p.Potentials()
		rg := p.Graph()
		require.Equal(t, g.E(), rg.E())

		orig, re := g.Edges(), rg.Edges()
		for i, e := range re {
			assert.GreaterOrEqual(t, e.Weight, -eps)
			// Integer weights and potentials make the inverse exact.
			back := johnson.RecoverDistance(e.Weight, h[e.From], h[e.To])
			assert.Equal(t, orig[i].Weight, back, "round %d edge %v", round, orig[i])
		}
	}
}

func TestReweight_Errors(t *testing.T) {
	g := build(t, 2, core.DirectedEdge{From: 0, To: 1, Weight: 1})

	_, err := johnson.Reweight(g, johnson.Potentials{0}, eps)
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = johnson.Reweight(g, johnson.Potentials{0, 0}, -1)
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = johnson.Reweight(nil, nil, eps)
	require.ErrorIs(t, err, core.ErrNilGraph)

	// 1 + 0 - 10 = -9: not a valid potential.
	_, err = johnson.Reweight(g, johnson.Potentials{0, 10}, eps)
	require.ErrorIs(t, err, core.ErrInvariantViolation)
}

func TestReweight_ClampAndUnreached(t *testing.T) {
	g := build(t, 3,
		core.DirectedEdge{From: 0, To: 1, Weight: 1},
		core.DirectedEdge{From: 1, To: 2, Weight: 1},
	)
	// 0→1 becomes 1 + 0 - (1 + 1e-12), inside the tolerance.
	rg, err := johnson.Reweight(g, johnson.Potentials{0, 1 + 1e-12, math.Inf(1)}, eps)
	require.NoError(t, err)
	require.Equal(t, 1, rg.E(), "edge into the unreached vertex is dropped")
	assert.Equal(t, 0.0, rg.Edges()[0].Weight)
}

func TestRecoverDistance(t *testing.T) {
	assert.Equal(t, 4.0, johnson.RecoverDistance(6, 3, 1))
	assert.True(t, math.IsInf(johnson.RecoverDistance(math.Inf(1), 3, 1), 1))
	assert.Nil(t, johnson.RecoverPath(nil, johnson.Potentials{0}))
}

func TestNewPrepared(t *testing.T) {
	g := build(t, 2, core.DirectedEdge{From: 0, To: 1, Weight: 3})
	p, err := johnson.NewPrepared(g, johnson.Potentials{0, -1})
	require.NoError(t, err)

	res, err := p.SingleSource(context.Background(), 0)
	require.NoError(t, err)
	d, err := res.DistTo(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d) // 3 - 0 + (-1)

	neg := build(t, 2, core.DirectedEdge{From: 0, To: 1, Weight: -3})
	_, err = johnson.NewPrepared(neg, johnson.Potentials{0, 0})
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = johnson.NewPrepared(g, johnson.Potentials{0})
	require.ErrorIs(t, err, core.ErrInvalidInput)
}
