// Package builder_test verifies topology counts, ID schemes, cost policies and
// error sentinels of every constructor.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/ndissect/builder"
	"github.com/katalvlaran/ndissect/core"
	"github.com/stretchr/testify/require"
)

func TestBuilders_Counts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		con   builder.Constructor
		wantV int
		wantE int
	}{
		{"Path1", builder.Path(1), 1, 0},
		{"Path9", builder.Path(9), 9, 8},
		{"Cycle6", builder.Cycle(6), 6, 6},
		{"Star5", builder.Star(5), 5, 4},
		{"Wheel6", builder.Wheel(6), 6, 10},
		{"K5", builder.Complete(5), 5, 10},
		{"Grid1x1", builder.Grid(1, 1), 1, 0},
		{"Grid5x5", builder.Grid(5, 5), 25, 40},
		{"Grid3x4", builder.Grid(3, 4), 12, 17},
		{"TriGrid3x3", builder.TriGrid(3, 3), 9, 16},
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron, false), 4, 6},
		{"Cube", builder.PlatonicSolid(builder.Cube, false), 8, 12},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron, false), 6, 12},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron, false), 20, 30},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron, false), 12, 30},
		{"TetraCenter", builder.PlatonicSolid(builder.Tetrahedron, true), 5, 10},
		{"SparseFull", builder.RandomSparse(6, 1), 6, 15},
		{"SparseEmpty", builder.RandomSparse(6, 0), 6, 0},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.Build(tc.con)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.VertexCount())
			require.Equal(t, tc.wantE, g.EdgeCount())
			require.Equal(t, float64(tc.wantV)*builder.DefaultVertexCost, g.TotalCost())
		})
	}
}

func TestPlatonic_Regular(t *testing.T) {
	degree := map[builder.PlatonicName]int{
		builder.Tetrahedron:  3,
		builder.Cube:         3,
		builder.Octahedron:   4,
		builder.Dodecahedron: 3,
		builder.Icosahedron:  5,
	}
	for name, want := range degree {
		g, err := builder.Build(builder.PlatonicSolid(name, false))
		require.NoError(t, err, name.String())
		for _, id := range g.Vertices() {
			d, err := g.Degree(id)
			require.NoError(t, err)
			require.Equal(t, want, d, "%s vertex %s", name, id)
		}
	}
}

func TestGrid_IDsAndEdges(t *testing.T) {
	g, err := builder.Build(builder.Grid(2, 3))
	require.NoError(t, err)

	require.Equal(t, []string{"0,0", "0,1", "0,2", "1,0", "1,1", "1,2"}, g.Vertices())
	require.True(t, g.HasEdge("0,0", "0,1"))
	require.True(t, g.HasEdge("0,0", "1,0"))
	require.False(t, g.HasEdge("0,0", "1,1"))
	require.Equal(t, "1,2", builder.GridID(1, 2))

	tri, err := builder.Build(builder.TriGrid(2, 3))
	require.NoError(t, err)
	require.True(t, tri.HasEdge("0,0", "1,1"))
	require.False(t, tri.HasEdge("0,1", "1,0")) // only the down-right diagonal
}

func TestIDSchemes(t *testing.T) {
	g, err := builder.Build(builder.Path(3), builder.WithSymbNumb("v"))
	require.NoError(t, err)
	require.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())

	g, err = builder.Build(builder.Path(12), builder.WithPaddedIDs(2))
	require.NoError(t, err)
	ids := g.Vertices()
	require.Equal(t, "00", ids[0])
	require.Equal(t, "11", ids[11])
	require.True(t, g.HasEdge("09", "10"))

	g, err = builder.Build(builder.Star(3), builder.WithSymbolIDs())
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C", builder.CenterVertexID}, g.Vertices())

	require.Equal(t, "42", builder.DefaultIDFn(42))
	require.Equal(t, "007", builder.PaddedIDFn(3)(7))
	require.Panics(t, func() { builder.SymbolIDFn(26) })
	require.Panics(t, func() { builder.PaddedIDFn(0) })
}

func TestCostOptions(t *testing.T) {
	g, err := builder.Build(builder.Path(4), builder.WithUniformCost(2.5))
	require.NoError(t, err)
	require.Equal(t, 10.0, g.TotalCost())

	g, err = builder.Build(builder.Path(5),
		builder.WithSymbNumb("v"),
		builder.WithCosts(map[string]float64{"v0": 10}, 1))
	require.NoError(t, err)
	c, err := g.Cost("v0")
	require.NoError(t, err)
	require.Equal(t, 10.0, c)
	require.Equal(t, 14.0, g.TotalCost())

	// Random costs need a seed; same seed, same costs.
	_, err = builder.Build(builder.Grid(2, 2), builder.WithRandomCost(1, 5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	a, err := builder.Build(builder.Grid(3, 3), builder.WithRandomCost(1, 5), builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.Build(builder.Grid(3, 3), builder.WithSeed(7), builder.WithRandomCost(1, 5))
	require.NoError(t, err)
	for _, id := range a.Vertices() {
		ca, _ := a.Cost(id)
		cb, _ := b.Cost(id)
		require.Equal(t, ca, cb)
		require.GreaterOrEqual(t, ca, 1.0)
		require.Less(t, ca, 5.0)
	}

	require.Panics(t, func() { builder.WithUniformCost(-1) })
	require.Panics(t, func() { builder.WithRandomCost(3, 1) })
	require.Panics(t, func() { builder.WithCostFn(nil) })
	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}

func TestRandomSparse_Deterministic(t *testing.T) {
	a, err := builder.Build(builder.RandomSparse(20, 0.2), builder.WithSeed(3))
	require.NoError(t, err)
	b, err := builder.Build(builder.RandomSparse(20, 0.2), builder.WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, a.Edges(), b.Edges())
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"Path0", builder.Path(0), builder.ErrTooFewVertices},
		{"Cycle2", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star1", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel3", builder.Wheel(3), builder.ErrTooFewVertices},
		{"K0", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid0", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"TriGrid0", builder.TriGrid(3, 0), builder.ErrTooFewVertices},
		{"SparseP", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"SparseRNG", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"Platonic", builder.PlatonicSolid(builder.PlatonicName(99), false), builder.ErrOptionViolation},
	}
	for _, tc := range cases {
		_, err := builder.Build(tc.con)
		require.ErrorIs(t, err, tc.want, tc.name)
	}

	// Two constructors that reuse IDs collide in core.
	_, err := builder.BuildGraph(nil, builder.Path(3), builder.Path(3))
	require.True(t, errors.Is(err, core.ErrDuplicateVertex))

	_, err = builder.BuildGraph(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_Compose(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSymbNumb("p")},
		builder.Grid(2, 2),
		builder.Path(3),
	)
	require.NoError(t, err)
	require.Equal(t, 7, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
}
