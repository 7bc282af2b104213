// Package oracle defines the graph and matrix primitives consumed by the
// separator, tree and elimination packages, together with default
// implementations.
//
// The algorithms in this module never compute connected components, BFS trees
// or dense inverses themselves; they call a Graph or an Inverter supplied
// through functional options, so the primitives can be swapped (native
// core/bfs code, gonum, or a test double).
package oracle

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/ndissect/core"
	"github.com/katalvlaran/ndissect/matrix"
)

// Sentinel errors for oracle implementations.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("oracle: graph is nil")

	// ErrRootNotFound is returned when the BFS root is not a vertex of the graph.
	ErrRootNotFound = errors.New("oracle: root vertex not found")

	// ErrNonPlanar is returned by CheckPlanar when the graph violates a
	// necessary planarity condition.
	ErrNonPlanar = errors.New("oracle: graph is not planar")
)

// Graph is the GraphOracle: connected components, breadth-first levels and a
// planarity precondition check.
type Graph interface {
	// ConnectedComponents partitions g; components are ordered by their
	// smallest vertex ID.
	ConnectedComponents(ctx context.Context, g *core.Graph) ([]core.VertexSet, error)

	// BFSTree runs breadth-first search from root over root's component.
	BFSTree(ctx context.Context, g *core.Graph, root string) (*Levels, error)

	// CheckPlanar returns ErrNonPlanar when g cannot be planar.
	CheckPlanar(g *core.Graph) error
}

// Inverter is the MatrixBlockOracle: dense inversion of a square block.
// Implementations return an error wrapping matrix.ErrSingular when the block
// is singular or numerically so.
type Inverter interface {
	Invert(m matrix.Matrix) (*matrix.Dense, error)
}

// Levels is a breadth-first tree over the component of Root.
//   - Depth[v] is the BFS level of v (Root has level 0).
//   - Parent[v] is the smallest-ID neighbor of v one level closer to Root;
//     Root has no entry.
//   - Sizes[l] is the number of vertices at level l.
type Levels struct {
	Root   string
	Depth  map[string]int
	Parent map[string]string
	Sizes  []int
}

// MaxLevel returns the deepest level, or -1 when empty.
func (l *Levels) MaxLevel() int { return len(l.Sizes) - 1 }

// Level returns the vertices at level k in sorted order.
func (l *Levels) Level(k int) []string {
	var out []string
	for id, d := range l.Depth {
		if d == k {
			out = append(out, id)
		}
	}
	sort.Strings(out)

	return out
}

// newLevels derives Sizes and canonical Parent links from a depth map, so
// every implementation reports the same tree for the same graph.
func newLevels(g *core.Graph, root string, depth map[string]int) (*Levels, error) {
	lv := &Levels{
		Root:   root,
		Depth:  depth,
		Parent: make(map[string]string, len(depth)),
	}
	deepest := -1
	for _, d := range depth {
		if d > deepest {
			deepest = d
		}
	}
	lv.Sizes = make([]int, deepest+1)
	for id, d := range depth {
		lv.Sizes[d]++
		if d == 0 {
			continue
		}
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, err
		}
		for _, nb := range nbrs { // sorted: first hit is the smallest ID
			if nd, ok := depth[nb]; ok && nd == d-1 {
				lv.Parent[id] = nb
				break
			}
		}
	}

	return lv, nil
}

// eulerBound checks |E| ≤ 3|V| − 6 for |V| ≥ 3, the edge bound every simple
// planar graph satisfies.
func eulerBound(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	v, e := g.VertexCount(), g.EdgeCount()
	if v >= 3 && e > 3*v-6 {
		return fmt.Errorf("%w: %d edges exceed 3·%d−6", ErrNonPlanar, e, v)
	}

	return nil
}
