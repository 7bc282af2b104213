package nd_test

import (
	"bytes"
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/ndissect/builder"
	"github.com/katalvlaran/ndissect/core"
	"github.com/katalvlaran/ndissect/elim"
	"github.com/katalvlaran/ndissect/matrix"
	"github.com/katalvlaran/ndissect/nd"
	"github.com/katalvlaran/ndissect/septree"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, con builder.Constructor, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.Build(con, opts...)
	require.NoError(t, err)

	return g
}

// requireSolves checks L·x ≈ b for a random b.
func requireSolves(t *testing.T, f *nd.Factorization, L *matrix.Dense, rng *rand.Rand) {
	t.Helper()
	b := make([]float64, L.Rows())
	for i := range b {
		b[i] = rng.Float64()*2 - 1
	}
	x, err := f.Solve(b)
	require.NoError(t, err)
	lx, err := matrix.MatVec(L, x)
	require.NoError(t, err)
	for i := range b {
		require.InDelta(t, b[i], lx[i], 1e-8, "row %d", i)
	}
}

func TestFactorize_Grid(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(1))
	for _, g := range []*core.Graph{
		build(t, builder.Grid(5, 5)),
		build(t, builder.Grid(7, 4)),
		build(t, builder.TriGrid(6, 6)),
		build(t, builder.Path(12)),
		build(t, builder.PlatonicSolid(builder.Icosahedron, true)),
	} {
		L, err := nd.Laplacian(g, nil, 1)
		require.NoError(t, err)

		f, err := nd.Factorize(ctx, g, L, nil)
		require.NoError(t, err)
		require.Equal(t, g.VertexCount(), f.N)
		require.Len(t, f.Rows(), g.VertexCount())
		require.Empty(t, f.Steps[len(f.Steps)-1].C)

		// Every step reproduces its active matrix.
		for k, s := range f.Steps {
			require.Len(t, s.F, len(s.Block.Vertices))
			got, err := s.Factor.Reconstruct()
			require.NoError(t, err)
			ok, err := matrix.AllClose(got, s.Matrix, 1e-9, 1e-9)
			require.NoError(t, err)
			require.True(t, ok, "step %d", k)
		}
		requireSolves(t, f, L, rng)
	}
}

func TestFactorize_Disconnected(t *testing.T) {
	// "r,c" grid IDs and decimal path IDs do not collide.
	g, err := builder.BuildGraph(nil, builder.Grid(4, 4), builder.Path(9))
	require.NoError(t, err)
	L, err := nd.Laplacian(g, nil, 1)
	require.NoError(t, err)

	f, err := nd.Factorize(context.Background(), g, L, nil)
	require.NoError(t, err)
	require.False(t, f.Tree.IsLeaf())
	require.Zero(t, f.Tree.Separator.Len())
	for _, s := range f.Steps {
		require.Less(t, len(s.F), 16, "block %v", s.Block.Vertices)
	}
	requireSolves(t, f, L, rand.New(rand.NewSource(3)))
}

func TestFactorize_StepsFollowTree(t *testing.T) {
	g := build(t, builder.Grid(5, 5))
	L, err := nd.Laplacian(g, nil, 0.5)
	require.NoError(t, err)
	f, err := nd.Factorize(context.Background(), g, L, nil)
	require.NoError(t, err)

	blocks := septree.EliminationOrder(f.Tree)
	require.Len(t, f.Steps, len(blocks))
	idx := nd.DefaultIndex(g)
	remaining := g.VertexCount()
	for k, s := range f.Steps {
		require.Equal(t, blocks[k], s.Block)
		for i, id := range s.Block.Vertices {
			require.Equal(t, idx[id], s.F[i])
		}
		remaining -= len(s.F)
		require.Len(t, s.C, remaining)
	}
	// The top separator is eliminated last.
	require.True(t, f.Steps[len(f.Steps)-1].Block.Separator)
	require.Zero(t, f.Steps[len(f.Steps)-1].Block.Depth)
}

func TestFactorize_CustomIndex(t *testing.T) {
	g := build(t, builder.Grid(3, 3))
	ids := g.Vertices()
	// Reverse rows, embedded in a larger matrix with one extra row.
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = len(ids) - 1 - i
	}
	base, err := nd.Laplacian(g, index, 1)
	require.NoError(t, err)
	L, err := matrix.NewDense(len(ids)+1, len(ids)+1)
	require.NoError(t, err)
	base.Do(func(i, j int, v float64) bool {
		require.NoError(t, L.Set(i, j, v))
		return true
	})
	require.NoError(t, L.Set(len(ids), len(ids), 5))

	f, err := nd.Factorize(context.Background(), g, L, index)
	require.NoError(t, err)
	require.Equal(t, len(ids)+1, f.N)

	b := make([]float64, f.N)
	for i := range b {
		b[i] = float64(i + 1)
	}
	x, err := f.Solve(b)
	require.NoError(t, err)
	require.Zero(t, x[len(ids)]) // row outside the index
	lx, err := matrix.MatVec(base, x[:len(ids)])
	require.NoError(t, err)
	for i := range lx {
		require.InDelta(t, b[i], lx[i], 1e-9)
	}
}

func TestFactorize_Errors(t *testing.T) {
	ctx := context.Background()
	g := build(t, builder.Path(4), builder.WithSymbNumb("v"))
	L, err := nd.Laplacian(g, nil, 1)
	require.NoError(t, err)

	_, err = nd.Factorize(ctx, nil, L, nil)
	require.ErrorIs(t, err, nd.ErrGraphNil)

	_, err = nd.Factorize(ctx, g, nil, nil)
	require.ErrorIs(t, err, elim.ErrInvalidInput)

	bad := []map[string]int{
		{"v0": 0, "v1": 1, "v2": 2},                   // missing vertex
		{"v0": 0, "v1": 1, "v2": 2, "v3": 2},          // shared row
		{"v0": 0, "v1": 1, "v2": 2, "v3": 4},          // out of range
		{"v0": 0, "v1": 1, "v2": 2, "x": 3},           // unknown vertex
		{"v0": 0, "v1": 1, "v2": 2, "v3": 3, "x": -1}, // extra entry
	}
	for i, index := range bad {
		_, err = nd.Factorize(ctx, g, L, index)
		require.ErrorIs(t, err, nd.ErrInvalidIndex, "case %d", i)
	}

	// Zero shift: the Laplacian is singular, and so is the last block.
	sing, err := nd.Laplacian(g, nil, 0)
	require.NoError(t, err)
	_, err = nd.Factorize(ctx, g, sing, nil)
	require.ErrorIs(t, err, elim.ErrSingularBlock)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, err = nd.Factorize(cctx, g, L, nil)
	require.ErrorIs(t, err, context.Canceled)

	_, err = nd.NewFactorizer(nd.WithTreeBuilder(nil))
	require.ErrorIs(t, err, nd.ErrOptionViolation)
	_, err = nd.NewFactorizer(nd.WithEliminator(nil))
	require.ErrorIs(t, err, nd.ErrOptionViolation)

	f, err := nd.Factorize(ctx, g, L, nil)
	require.NoError(t, err)
	_, err = f.Solve([]float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestFactorize_EmptyGraph(t *testing.T) {
	L, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	f, err := nd.Factorize(context.Background(), core.NewGraph(), L, map[string]int{})
	require.NoError(t, err)
	require.Empty(t, f.Steps)

	x, err := f.Solve([]float64{3, 4})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, x)
}

func TestFactorizer_Options(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	tb, err := septree.NewBuilder(septree.WithParallelism(4), septree.WithLogger(logger))
	require.NoError(t, err)
	el, err := elim.NewEliminator(elim.WithSymmetryTolerance(1e-6))
	require.NoError(t, err)
	fz, err := nd.NewFactorizer(nd.WithTreeBuilder(tb), nd.WithEliminator(el), nd.WithLogger(logger))
	require.NoError(t, err)

	g := build(t, builder.Grid(6, 6), builder.WithRandomCost(1, 3), builder.WithSeed(5))
	L, err := nd.Laplacian(g, nil, 2)
	require.NoError(t, err)
	f, err := fz.Factorize(context.Background(), g, L, nil)
	require.NoError(t, err)
	requireSolves(t, f, L, rand.New(rand.NewSource(2)))

	require.Contains(t, buf.String(), "eliminated block")
	require.Contains(t, buf.String(), "nested dissection done")
}

func TestLaplacian(t *testing.T) {
	g := build(t, builder.Path(3), builder.WithSymbNumb("v"))
	L, err := nd.Laplacian(g, nil, 0.5)
	require.NoError(t, err)
	want, err := matrix.NewDenseFrom([][]float64{
		{1.5, -1, 0},
		{-1, 2.5, -1},
		{0, -1, 1.5},
	})
	require.NoError(t, err)
	ok, err := matrix.AllClose(L, want, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = nd.Laplacian(nil, nil, 1)
	require.ErrorIs(t, err, nd.ErrGraphNil)
	_, err = nd.Laplacian(g, nil, math.NaN())
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = nd.Laplacian(g, map[string]int{"v0": 0}, 1)
	require.ErrorIs(t, err, nd.ErrInvalidIndex)
}
