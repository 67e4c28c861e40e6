package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/johnson/bellmanford"
	"github.com/katalvlaran/johnson/core"
)

const diamond = "4 5\n0 1 1.0\n0 2 4.0\n1 2 2.0\n2 3 1.0\n1 3 6.0\n"

// run executes the command tree with the given stdin and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSSSP_Pipeline(t *testing.T) {
	out, err := run(t, diamond, "sssp", "--pipeline", "-s", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "0 to 3 ( 4.00)  0->1  1.00\t1->2  2.00\t2->3  1.00\t\n")
	assert.Contains(t, out, "0 to 1 ( 1.00)  0->1  1.00\t\n")
}

func TestAllPairs_Pipeline(t *testing.T) {
	out, err := run(t, diamond, "allpairs", "--pipeline", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "1 to 3 ( 3.00)  1->2  2.00\t2->3  1.00\t\n")
	assert.Contains(t, out, "3 to 0\tno path\n")
}

func TestThreeStageChain(t *testing.T) {
	g := "3 3\n0 1 4\n0 2 5\n2 1 -3\n"

	stage1, err := run(t, g, "aux", "--pipeline")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stage1, "4 6\n"))
	assert.Contains(t, stage1, "3 0 0.0\n3 1 0.0\n3 2 0.0\n")

	stage2, err := run(t, stage1, "bellmanford", "--pipeline")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stage2, "Point weight\n3 3\n"))
	assert.Contains(t, stage2, "New Edge weight\n3 3\n")

	stage3, err := run(t, stage2, "dijkstra", "--pipeline", "-s", "0")
	require.NoError(t, err)
	assert.Contains(t, stage3, "0 to 1 ( 2.00)  0->2  5.00\t2->1 -3.00\t\n")

	all, err := run(t, stage2, "allpairs", "--exchange")
	require.NoError(t, err)
	assert.Contains(t, all, "2 to 1 (-3.00)  2->1 -3.00\t\n")
}

func TestNegativeCycleFails(t *testing.T) {
	out, err := run(t, "3 3\n0 1 1\n1 2 -3\n2 0 1\n", "allpairs", "--pipeline")
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
	assert.Contains(t, out, "negative cycle weight -1.00")

	_, err = run(t, "3 3\n0 1 1\n1 2 -3\n2 0 1\n", "bellmanford", "--pipeline", "-s", "0", "--detect-every", "1")
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestRandomInputIsDeterministic(t *testing.T) {
	a, err := run(t, "", "allpairs", "--vertices", "5", "--edges", "12", "--seed", "9")
	require.NoError(t, err)
	b, err := run(t, "", "allpairs", "--vertices", "5", "--edges", "12", "--seed", "9", "--workers", "3")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "4 to 4 ( 0.00)")
}

func TestBellmanFord_RandomReport(t *testing.T) {
	out, err := run(t, "", "bellmanford", "--vertices", "4", "--edges", "6", "-s", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 to 1 ( 0.00)")
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "johnson.toml")
	require.NoError(t, os.WriteFile(path, []byte("pipeline = true\n"), 0o600))

	out, err := run(t, diamond, "sssp", "--config", path, "-s", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 to 3 ( 3.00)")

	// --pipeline=false beats the file: the random default graph has 6 vertices.
	out, err = run(t, diamond, "sssp", "--config", path, "--pipeline=false")
	require.NoError(t, err)
	assert.Contains(t, out, "0 to 5")
}

func TestBadInput(t *testing.T) {
	_, err := run(t, "2 1\n0 5 1.0\n", "sssp", "--pipeline")
	require.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = run(t, diamond, "sssp", "--pipeline", "-s", "9")
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = run(t, "", "allpairs", "--workers", "-1")
	require.Error(t, err)

	_, err = run(t, diamond, "bellmanford", "--pipeline", "-s", "0")
	require.ErrorIs(t, err, core.ErrInvalidInput, "exchange output needs the virtual source last")
}
