package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/johnson/core"
	"github.com/katalvlaran/johnson/dfs"
)

// ExampleFindCycle finds the cycle 1→2→3→1 behind the tail 0→1.
func ExampleFindCycle() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 1, -5)

	cycle, err := dfs.FindCycle(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dfs.Vertices(cycle), core.PathWeight(cycle))
	// Output: [1 2 3 1] -3
}
