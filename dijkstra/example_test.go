// Package dijkstra_test provides runnable examples for shortest-path queries
// against a compiled graph.
package dijkstra_test

import (
	"fmt"

	"github.com/ckibe-opt/compiledgraph/compiled"
	"github.com/ckibe-opt/compiledgraph/core"
	"github.com/ckibe-opt/compiledgraph/dijkstra"
)

// ExampleFrom demonstrates single-source distances keyed by the original
// identifiers. Complexity: O((V+E) log V).
func ExampleFrom() {
	// 1) Build and compile a small undirected square.
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 7)
	cg, err := compiled.Compile[string](g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Compute all distances from "A". Unreachable vertices are omitted.
	dist, err := dijkstra.From(cg, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("dist[B]=%.0f dist[C]=%.0f dist[D]=%.0f\n", dist["B"], dist["C"], dist["D"])
	// Output:
	// dist[B]=2 dist[C]=1 dist[D]=5
}

// ExampleBetween demonstrates a point-to-point query answered by the
// bidirectional search, path included.
func ExampleBetween() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 2)
	g.AddEdge("A", "C", 1)
	g.AddEdge("B", "D", 3)
	g.AddEdge("C", "D", 7)
	cg, err := compiled.Compile[string](g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dijkstra.Between(cg, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("found=%t distance=%.0f path=%v\n", res.Found, res.Distance, res.Path)
	// Output:
	// found=true distance=5 path=[A B D]
}
