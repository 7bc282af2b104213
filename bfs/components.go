package bfs

import (
	"context"

	"github.com/katalvlaran/ndissect/core"
)

// Components partitions g into connected components, one BFS per unseen
// vertex. Seeds are taken in sorted ID order, so the result is ordered by
// each component's smallest vertex ID.
//
// Returns ErrGraphNil for a nil graph and ctx.Err() on cancellation.
// Complexity: O(V + E).
func Components(ctx context.Context, g *core.Graph) ([]core.VertexSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	seen := make(map[string]bool, g.VertexCount())
	var comps []core.VertexSet
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id, WithContext(ctx))
		if err != nil {
			return nil, err
		}
		comp := core.NewVertexSet(res.Order...)
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
