package oracle_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ndissect/core"
	"github.com/katalvlaran/ndissect/matrix"
	"github.com/katalvlaran/ndissect/oracle"
	"github.com/stretchr/testify/require"
)

// randomGraph builds n vertices with roughly m random edges (no loops, no duplicates).
func randomGraph(t *testing.T, rng *rand.Rand, n, m int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%02d", i), 1))
	}
	for k := 0; k < m; k++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		a, b := fmt.Sprintf("v%02d", u), fmt.Sprintf("v%02d", v)
		if g.HasEdge(a, b) {
			continue
		}
		require.NoError(t, g.AddEdge(a, b))
	}

	return g
}

func TestGraphOracles_Agree(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(11))
	oracles := []oracle.Graph{oracle.Native{}, oracle.Gonum{}}

	for trial := 0; trial < 30; trial++ {
		g := randomGraph(t, rng, 5+rng.Intn(20), rng.Intn(30))

		nc, err := oracles[0].ConnectedComponents(ctx, g)
		require.NoError(t, err)
		gc, err := oracles[1].ConnectedComponents(ctx, g)
		require.NoError(t, err)
		require.Equal(t, len(nc), len(gc))
		for i := range nc {
			require.True(t, nc[i].Equal(gc[i]), "trial %d component %d", trial, i)
		}

		root := g.Vertices()[rng.Intn(g.VertexCount())]
		nl, err := oracles[0].BFSTree(ctx, g, root)
		require.NoError(t, err)
		gl, err := oracles[1].BFSTree(ctx, g, root)
		require.NoError(t, err)
		require.Equal(t, nl.Depth, gl.Depth)
		require.Equal(t, nl.Parent, gl.Parent)
		require.Equal(t, nl.Sizes, gl.Sizes)
	}
}

func TestGraphOracles_NilContext(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "x"} {
		require.NoError(t, g.AddVertex(id, 1))
	}
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	var ctx context.Context
	for _, o := range []oracle.Graph{oracle.Native{}, oracle.Gonum{}} {
		comps, err := o.ConnectedComponents(ctx, g)
		require.NoError(t, err)
		require.Len(t, comps, 2)
		require.Equal(t, []string{"a", "b", "c"}, comps[0].Sorted())

		lv, err := o.BFSTree(ctx, g, "a")
		require.NoError(t, err)
		require.Equal(t, 2, lv.Depth["c"])
	}
}

func TestBFSTree_Levels(t *testing.T) {
	// a - b - d
	//  \     /
	//    c --
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d", "z"} {
		require.NoError(t, g.AddVertex(id, 1))
	}
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "c"))
	require.NoError(t, g.AddEdge("b", "d"))
	require.NoError(t, g.AddEdge("c", "d"))

	for _, o := range []oracle.Graph{oracle.Native{}, oracle.Gonum{}} {
		lv, err := o.BFSTree(context.Background(), g, "a")
		require.NoError(t, err)
		require.Equal(t, []int{1, 2, 1}, lv.Sizes)
		require.Equal(t, 2, lv.MaxLevel())
		require.Equal(t, []string{"b", "c"}, lv.Level(1))
		require.Equal(t, "b", lv.Parent["d"]) // smallest-ID parent
		_, reached := lv.Depth["z"]
		require.False(t, reached) // other component

		_, err = o.BFSTree(context.Background(), g, "nope")
		require.ErrorIs(t, err, oracle.ErrRootNotFound)
		_, err = o.BFSTree(context.Background(), nil, "a")
		require.ErrorIs(t, err, oracle.ErrGraphNil)
	}
}

func TestCheckPlanar_EulerBound(t *testing.T) {
	k5 := core.NewGraph()
	ids := []string{"1", "2", "3", "4", "5"}
	for _, id := range ids {
		require.NoError(t, k5.AddVertex(id, 1))
	}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			require.NoError(t, k5.AddEdge(ids[i], ids[j]))
		}
	}
	require.ErrorIs(t, oracle.Native{}.CheckPlanar(k5), oracle.ErrNonPlanar)
	require.ErrorIs(t, oracle.Gonum{}.CheckPlanar(k5), oracle.ErrNonPlanar)

	// K4 is planar: 6 ≤ 3·4−6
	k4 := core.InducedSubgraph(k5, core.NewVertexSet("1", "2", "3", "4"))
	require.NoError(t, oracle.Native{}.CheckPlanar(k4))
}

func TestInverters(t *testing.T) {
	a, err := matrix.NewDenseFrom([][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	})
	require.NoError(t, err)
	id, _ := matrix.NewIdentity(3)

	for _, inv := range []oracle.Inverter{oracle.LUInverter{}, oracle.GonumInverter{}} {
		x, err := inv.Invert(a)
		require.NoError(t, err)
		prod, err := matrix.Mul(a, x)
		require.NoError(t, err)
		ok, err := matrix.AllClose(prod, id, 0, 1e-12)
		require.NoError(t, err)
		require.True(t, ok)
	}

	sing, err := matrix.NewDenseFrom([][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)
	for _, inv := range []oracle.Inverter{oracle.LUInverter{}, oracle.GonumInverter{}} {
		_, err = inv.Invert(sing)
		require.ErrorIs(t, err, matrix.ErrSingular)
	}

	ill, err := matrix.NewDenseFrom([][]float64{{1, 0}, {0, 1e-9}})
	require.NoError(t, err)
	_, err = oracle.GonumInverter{MaxCond: 1e6}.Invert(ill)
	require.ErrorIs(t, err, matrix.ErrSingular) // over the configured condition limit
	_, err = oracle.GonumInverter{}.Invert(ill)
	require.NoError(t, err)
}
