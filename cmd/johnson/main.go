// Command johnson computes shortest paths in directed graphs with negative
// edge weights using Johnson's algorithm.
//
// Input is either a random graph (default) or, with --pipeline, a graph read
// from stdin. The stages can also be chained as separate processes:
//
//	cat g.txt | johnson aux --pipeline | johnson bellmanford --pipeline | johnson dijkstra --pipeline -s 0
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "johnson:", err)
		os.Exit(1)
	}
}
