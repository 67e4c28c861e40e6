package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/johnson/core"
)

// diamondTree returns the hand-computed shortest-path tree of newDiamond from vertex 0.
func diamondTree(t *testing.T) *core.ShortestPaths {
	t.Helper()
	dist := []float64{0, 1, 3, 4}
	edgeTo := []core.DirectedEdge{
		{},
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 1},
	}
	sp, err := core.NewShortestPaths(0, dist, edgeTo, []bool{false, true, true, true})
	require.NoError(t, err)

	return sp
}

// TestNewShortestPaths_Validation rejects mismatched slices and bad sources.
func TestNewShortestPaths_Validation(t *testing.T) {
	_, err := core.NewShortestPaths(0, make([]float64, 2), make([]core.DirectedEdge, 1), make([]bool, 2))
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = core.NewShortestPaths(2, make([]float64, 2), make([]core.DirectedEdge, 2), make([]bool, 2))
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestShortestPaths_PathTo reconstructs 0→1→2→3.
func TestShortestPaths_PathTo(t *testing.T) {
	sp := diamondTree(t)

	path, err := sp.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []core.DirectedEdge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 1},
	}, path)
	assert.InDelta(t, 4.0, core.PathWeight(path), 1e-12)

	self, err := sp.PathTo(0)
	require.NoError(t, err)
	assert.NotNil(t, self)
	assert.Empty(t, self)
}

// TestShortestPaths_Unreached covers +Inf distance and nil path.
func TestShortestPaths_Unreached(t *testing.T) {
	sp, err := core.NewShortestPaths(0,
		[]float64{0, math.Inf(1)},
		make([]core.DirectedEdge, 2),
		[]bool{false, false},
	)
	require.NoError(t, err)

	ok, err := sp.HasPathTo(1)
	require.NoError(t, err)
	assert.False(t, ok)

	d, err := sp.DistTo(1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))

	path, err := sp.PathTo(1)
	require.NoError(t, err)
	assert.Nil(t, path)

	_, has, err := sp.EdgeTo(1)
	require.NoError(t, err)
	assert.False(t, has)
}

// TestShortestPaths_OutOfRange reports IndexError for every accessor.
func TestShortestPaths_OutOfRange(t *testing.T) {
	sp := diamondTree(t)
	_, err := sp.DistTo(4)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = sp.HasPathTo(-1)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, err = sp.PathTo(9)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
	_, _, err = sp.EdgeTo(4)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

// TestShortestPaths_Check accepts the optimal tree and rejects a non-relaxed one.
func TestShortestPaths_Check(t *testing.T) {
	g := newDiamond(t)
	require.NoError(t, diamondTree(t).Check(g, 0))

	// Claim dist[3] = 7 via 1→3: the edge 2→3 is then still relaxable.
	bad, err := core.NewShortestPaths(0,
		[]float64{0, 1, 3, 7},
		[]core.DirectedEdge{{}, {From: 0, To: 1, Weight: 1}, {From: 1, To: 2, Weight: 2}, {From: 1, To: 3, Weight: 6}},
		[]bool{false, true, true, true},
	)
	require.NoError(t, err)
	require.ErrorIs(t, bad.Check(g, 1e-9), core.ErrInvariantViolation)
}

// TestShortestPaths_PathToParentCycle guards PathTo against a corrupted parent chain.
func TestShortestPaths_PathToParentCycle(t *testing.T) {
	sp, err := core.NewShortestPaths(0,
		[]float64{0, 1, 1},
		[]core.DirectedEdge{{}, {From: 2, To: 1}, {From: 1, To: 2}},
		[]bool{false, true, true},
	)
	require.NoError(t, err)

	_, err = sp.PathTo(1)
	require.ErrorIs(t, err, core.ErrInvariantViolation)
}
