package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/johnson/core"
)

// TestNewGraph_NegativeVertexCount ensures a negative V is rejected as invalid input.
func TestNewGraph_NegativeVertexCount(t *testing.T) {
	g, err := core.NewGraph(-1)
	require.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Nil(t, g)
}

// TestNewGraph_Empty covers the zero-vertex graph.
func TestNewGraph_Empty(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.V())
	assert.Equal(t, 0, g.E())
	assert.Empty(t, g.Edges())
	assert.False(t, g.HasVertex(0))
}

// TestAddEdge_Bounds checks that both endpoints must lie in [0, V).
func TestAddEdge_Bounds(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrInvalidInput)
	require.ErrorIs(t, g.AddEdge(0, 3, 1), core.ErrInvalidInput)
	assert.Equal(t, 0, g.E(), "rejected edges must not be counted")
}

// TestAddEdge_NonFiniteWeight rejects NaN and ±Inf weights.
func TestAddEdge_NonFiniteWeight(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		require.ErrorIs(t, g.AddEdge(0, 1, w), core.ErrInvalidInput)
	}
	assert.Equal(t, 0, g.E())
}

// TestDirectedEdge_String pins the report rendering of an edge.
func TestDirectedEdge_String(t *testing.T) {
	e := core.DirectedEdge{From: 2, To: 0, Weight: -1.5}
	assert.Equal(t, "2->0 -1.50", e.String())
}
