package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/ndissect/bfs"
	"github.com/katalvlaran/ndissect/core"
)

// ExampleBFS_levels shows the level layering of a small path graph.
func ExampleBFS_levels() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddVertex(id, 1)
	}
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("B", "D")

	res, _ := bfs.BFS(g, "A")
	fmt.Println(res.Order)
	fmt.Println(res.LevelSizes())
	fmt.Println(res.Levels())
	// Output:
	// [A B C D]
	// [1 1 2]
	// [[A] [B] [C D]]
}
