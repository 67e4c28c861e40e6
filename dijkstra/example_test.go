// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/johnson/core"
	"github.com/katalvlaran/johnson/dijkstra"
)

// ExampleDijkstra demonstrates computing shortest paths and walking the tree.
// Complexity: O((V+E) log V).
func ExampleDijkstra() {
	// 1) Build a directed graph with 4 vertices.
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 4)
	_ = g.AddEdge(1, 2, 2)
	_ = g.AddEdge(2, 3, 1)

	// 2) Run from vertex 0.
	sp, err := dijkstra.Dijkstra(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the distance and the path to 3.
	d, _ := sp.DistTo(3)
	path, _ := sp.PathTo(3)
	fmt.Printf("dist[3]=%.2f\n", d)
	for _, e := range path {
		fmt.Println(e)
	}
	// Output:
	// dist[3]=4.00
	// 0->1 1.00
	// 1->2 2.00
	// 2->3 1.00
}

// ExampleWithMaxDistance shows how a distance cap leaves far vertices unreached.
func ExampleWithMaxDistance() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(1, 2, 2)

	sp, _ := dijkstra.Dijkstra(g, 0, dijkstra.WithMaxDistance(3))
	ok1, _ := sp.HasPathTo(1)
	ok2, _ := sp.HasPathTo(2)
	fmt.Println(ok1, ok2)
	// Output: true false
}
