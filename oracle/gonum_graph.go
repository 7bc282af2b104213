package oracle

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/ndissect/core"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
)

// Gonum implements Graph with gonum's graph packages. Vertices are mapped to
// int64 node IDs by their position in the sorted vertex list.
type Gonum struct{}

var _ Graph = Gonum{}

// gonumView is a core.Graph mirrored into a simple.UndirectedGraph.
type gonumView struct {
	ug  *simple.UndirectedGraph
	ids []string         // node ID → vertex ID
	pos map[string]int64 // vertex ID → node ID
}

// toGonum copies g into a gonum undirected graph.
// Complexity: O(V + E).
func toGonum(g *core.Graph) *gonumView {
	ids := g.Vertices()
	v := &gonumView{
		ug:  simple.NewUndirectedGraph(),
		ids: ids,
		pos: make(map[string]int64, len(ids)),
	}
	for i, id := range ids {
		v.pos[id] = int64(i)
		v.ug.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		v.ug.SetEdge(v.ug.NewEdge(simple.Node(v.pos[e.From]), simple.Node(v.pos[e.To])))
	}

	return v
}

// ConnectedComponents uses topo.ConnectedComponents and orders the result
// by smallest vertex ID to match Native.
func (Gonum) ConnectedComponents(ctx context.Context, g *core.Graph) ([]core.VertexSet, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	view := toGonum(g)
	raw := topo.ConnectedComponents(view.ug)

	comps := make([]core.VertexSet, 0, len(raw))
	mins := make([]int64, 0, len(raw))
	for _, nodes := range raw {
		set := make(core.VertexSet, len(nodes))
		lowest := int64(-1)
		for _, n := range nodes {
			set.Add(view.ids[n.ID()])
			if lowest < 0 || n.ID() < lowest {
				lowest = n.ID()
			}
		}
		comps = append(comps, set)
		mins = append(mins, lowest)
	}
	// node IDs follow sorted vertex order, so ordering by min node ID orders by min vertex ID
	sort.Sort(byMin{comps: comps, mins: mins})

	return comps, nil
}

type byMin struct {
	comps []core.VertexSet
	mins  []int64
}

func (b byMin) Len() int           { return len(b.comps) }
func (b byMin) Less(i, j int) bool { return b.mins[i] < b.mins[j] }
func (b byMin) Swap(i, j int) {
	b.comps[i], b.comps[j] = b.comps[j], b.comps[i]
	b.mins[i], b.mins[j] = b.mins[j], b.mins[i]
}

// BFSTree walks traverse.BreadthFirst from root, recording the depth passed
// to the until callback, and stops early when ctx is cancelled.
func (Gonum) BFSTree(ctx context.Context, g *core.Graph, root string) (*Levels, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(root) {
		return nil, fmt.Errorf("%w: %q", ErrRootNotFound, root)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	view := toGonum(g)
	depth := make(map[string]int, len(view.ids))

	var walker traverse.BreadthFirst
	walker.Walk(view.ug, simple.Node(view.pos[root]), func(n graph.Node, d int) bool {
		depth[view.ids[n.ID()]] = d
		return ctx.Err() != nil
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return newLevels(g, root, depth)
}

// CheckPlanar applies the Euler edge bound.
func (Gonum) CheckPlanar(g *core.Graph) error { return eulerBound(g) }
