package core_test

import (
	"fmt"

	"github.com/katalvlaran/ndissect/core"
)

// ExampleInducedSubgraph shows how recursive algorithms carve out a side of
// a split without touching the input graph.
func ExampleInducedSubgraph() {
	g := core.NewGraph()
	_ = g.AddVertex("A", 1)
	_ = g.AddVertex("B", 2)
	_ = g.AddVertex("C", 3)
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")

	h := core.InducedSubgraph(g, core.NewVertexSet("A", "B"))
	fmt.Println(h.Vertices(), h.EdgeCount(), h.TotalCost())
	fmt.Println(g.Vertices(), g.EdgeCount(), g.TotalCost())
	// Output:
	// [A B] 1 3
	// [A B C] 2 6
}
