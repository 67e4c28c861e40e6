package core_test

import (
	"fmt"

	"github.com/katalvlaran/johnson/core"
)

// ExampleGraph demonstrates building a small digraph and walking its adjacency.
func ExampleGraph() {
	// 1) Three vertices 0, 1, 2.
	g, _ := core.NewGraph(3)

	// 2) Edges keep their insertion order; negative weights are allowed.
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, -3)
	_ = g.AddEdge(0, 2, 4)

	// 3) Inspect.
	fmt.Println("V:", g.V(), "E:", g.E())
	adj, _ := g.Adj(0)
	for _, e := range adj {
		fmt.Println(e)
	}

	// Output:
	// V: 3 E: 3
	// 0->1 1.00
	// 0->2 4.00
}
