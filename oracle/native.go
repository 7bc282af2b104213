package oracle

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ndissect/bfs"
	"github.com/katalvlaran/ndissect/core"
)

// Native implements Graph on top of core.Graph and the bfs package.
type Native struct{}

var _ Graph = Native{}

// ConnectedComponents delegates to bfs.Components.
// Complexity: O(V + E).
func (Native) ConnectedComponents(ctx context.Context, g *core.Graph) ([]core.VertexSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	comps, err := bfs.Components(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("oracle: components: %w", err)
	}

	return comps, nil
}

// BFSTree runs bfs.BFS from root and canonicalizes the parent links.
// Complexity: O(V + E).
func (Native) BFSTree(ctx context.Context, g *core.Graph, root string) (*Levels, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %q", ErrRootNotFound, root)
	}
	res, err := bfs.BFS(g, root, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("oracle: bfs from %q: %w", root, err)
	}

	return newLevels(g, root, res.Depth)
}

// CheckPlanar applies the Euler edge bound.
func (Native) CheckPlanar(g *core.Graph) error { return eulerBound(g) }
