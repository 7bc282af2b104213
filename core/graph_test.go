// Package core_test verifies vertex/edge lifecycle, cost policy and views.
package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndissect/core"
	"github.com/stretchr/testify/require"
)

// square builds the 4-cycle a-b-c-d-a with costs 1..4.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddVertex(id, float64(i+1)))
	}
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	require.NoError(t, g.AddEdge("c", "d"))
	require.NoError(t, g.AddEdge("d", "a"))

	return g
}

func TestAddVertexValidation(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex("", 1), core.ErrEmptyVertexID)         // empty ID
	require.ErrorIs(t, g.AddVertex("x", -1), core.ErrInvalidCost)         // negative cost
	require.ErrorIs(t, g.AddVertex("x", math.NaN()), core.ErrInvalidCost) // NaN cost
	require.ErrorIs(t, g.AddVertex("x", math.Inf(1)), core.ErrInvalidCost)

	require.NoError(t, g.AddVertex("x", 0))                          // zero cost is legal
	require.ErrorIs(t, g.AddVertex("x", 2), core.ErrDuplicateVertex) // duplicate
	require.Equal(t, 1, g.VertexCount())
}

func TestAddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a", 1))
	require.NoError(t, g.AddVertex("b", 1))

	require.ErrorIs(t, g.AddEdge("", "a"), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge("a", "a"), core.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge("a", "zz"), core.ErrVertexNotFound)

	require.NoError(t, g.AddEdge("a", "b"))
	require.ErrorIs(t, g.AddEdge("b", "a"), core.ErrDuplicateEdge) // mirror counts as duplicate
	require.Equal(t, 1, g.EdgeCount())
	require.True(t, g.HasEdge("a", "b"))
	require.True(t, g.HasEdge("b", "a"))
}

func TestQueriesAreSorted(t *testing.T) {
	g := square(t)

	require.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())

	nbrs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	require.Equal(t, []string{"b", "d"}, nbrs)

	require.Equal(t, []core.Edge{
		{From: "a", To: "b"},
		{From: "a", To: "d"},
		{From: "b", To: "c"},
		{From: "c", To: "d"},
	}, g.Edges())

	deg, err := g.Degree("c")
	require.NoError(t, err)
	require.Equal(t, 2, deg)

	_, err = g.NeighborIDs("zz")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestCosts(t *testing.T) {
	g := square(t)

	c, err := g.Cost("c")
	require.NoError(t, err)
	require.Equal(t, 3.0, c)

	_, err = g.Cost("zz")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	require.Equal(t, 10.0, g.TotalCost())
	require.Equal(t, 5.0, g.CostOf(core.NewVertexSet("a", "d", "ghost"))) // unknown IDs ignored
}

func TestInducedSubgraph(t *testing.T) {
	g := square(t)

	h := core.InducedSubgraph(g, core.NewVertexSet("a", "b", "c"))
	require.Equal(t, []string{"a", "b", "c"}, h.Vertices())
	require.Equal(t, 2, h.EdgeCount()) // a-b, b-c; a-d and c-d dropped
	require.False(t, h.HasEdge("c", "d"))

	cost, err := h.Cost("b")
	require.NoError(t, err)
	require.Equal(t, 2.0, cost)

	// the source graph is untouched
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())

	empty := core.InducedSubgraph(g, nil)
	require.Equal(t, 0, empty.VertexCount())
	require.Equal(t, 0, empty.EdgeCount())
}

func TestCloneIndependence(t *testing.T) {
	g := square(t)
	c := g.Clone()
	require.NoError(t, c.AddVertex("e", 1))
	require.NoError(t, c.AddEdge("a", "e"))

	require.False(t, g.HasVertex("e"))
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, 5, c.EdgeCount())
}
