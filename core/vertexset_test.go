package core_test

import (
	"testing"

	"github.com/katalvlaran/ndissect/core"
	"github.com/stretchr/testify/require"
)

func TestVertexSetAlgebra(t *testing.T) {
	s := core.NewVertexSet("a", "b", "c", "a")
	u := core.NewVertexSet("c", "d")

	require.Equal(t, 3, s.Len())
	require.True(t, s.Has("a"))
	require.False(t, s.Has("d"))

	require.Equal(t, []string{"a", "b", "c", "d"}, s.Union(u).Sorted())
	require.Equal(t, []string{"c"}, s.Intersect(u).Sorted())
	require.Equal(t, []string{"a", "b"}, s.Minus(u).Sorted())

	require.True(t, s.Equal(core.NewVertexSet("c", "b", "a")))
	require.False(t, s.Equal(u))

	c := s.Clone()
	c.Add("z")
	require.False(t, s.Has("z")) // clone is independent
}

func TestVertexSetNilIsEmpty(t *testing.T) {
	var s core.VertexSet

	require.Equal(t, 0, s.Len())
	require.False(t, s.Has("a"))
	require.Empty(t, s.Sorted())
	require.True(t, s.Equal(core.NewVertexSet()))
	require.Equal(t, []string{"a"}, s.Union(core.NewVertexSet("a")).Sorted())
}
