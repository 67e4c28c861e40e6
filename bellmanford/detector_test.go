package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/johnson/bellmanford"
	"github.com/katalvlaran/johnson/core"
	"github.com/katalvlaran/johnson/dfs"
)

// TestPredecessorGraph keeps exactly the recorded parent edges.
func TestPredecessorGraph(t *testing.T) {
	edgeTo := []core.DirectedEdge{{}, {From: 0, To: 1, Weight: 1}, {}, {From: 1, To: 3, Weight: 2}}
	hasEdge := []bool{false, true, false, true}

	spt, err := bellmanford.PredecessorGraph(edgeTo, hasEdge)
	require.NoError(t, err)
	assert.Equal(t, 4, spt.V())
	assert.Equal(t, []core.DirectedEdge{edgeTo[1], edgeTo[3]}, spt.Edges())
}

// TestFindNegativeCycle_Acyclic returns nothing for a proper tree.
func TestFindNegativeCycle_Acyclic(t *testing.T) {
	edgeTo := []core.DirectedEdge{{}, {From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: -1}}
	cycle, err := bellmanford.FindNegativeCycle(edgeTo, []bool{false, true, true})
	require.NoError(t, err)
	assert.Nil(t, cycle)
}

// TestFindNegativeCycle_Cycle finds the parent cycle 1→2→3→1.
func TestFindNegativeCycle_Cycle(t *testing.T) {
	edgeTo := []core.DirectedEdge{
		{},
		{From: 3, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: -4},
		{From: 2, To: 3, Weight: 1},
	}
	cycle, err := bellmanford.FindNegativeCycle(edgeTo, []bool{false, true, true, true})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 1}, dfs.Vertices(dfs.CanonicalCycle(cycle)))
	assert.InDelta(t, -2.0, core.PathWeight(cycle), 1e-12)
}

// TestFindNegativeCycle_NonNegativeIsInvariantViolation: a non-negative parent cycle cannot come
// from a correct relaxation sequence.
func TestFindNegativeCycle_NonNegativeIsInvariantViolation(t *testing.T) {
	edgeTo := []core.DirectedEdge{{From: 1, To: 0, Weight: 1}, {From: 0, To: 1, Weight: 1}}
	_, err := bellmanford.FindNegativeCycle(edgeTo, []bool{true, true})
	require.ErrorIs(t, err, core.ErrInvariantViolation)
}
