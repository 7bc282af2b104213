// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndissect/matrix"
	"github.com/stretchr/testify/require"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func TestNewDense_Validation(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	_, err = matrix.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf) // finite-only policy
}

func TestDense_CloneIndependent(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 100))

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
	require.Equal(t, []float64{3, 4}, m.RawRow(1))
	require.Nil(t, m.RawRow(5))
}

func TestDense_Induced(t *testing.T) {
	m := mustDense(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	sub, err := m.Induced([]int{2, 0}, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, "[8, 9]\n[2, 3]\n", sub.String()) // order of index lists is kept

	empty, err := m.Induced(nil, []int{0})
	require.NoError(t, err)
	require.Equal(t, 0, empty.Rows())
	require.Equal(t, 1, empty.Cols())

	_, err = m.Induced([]int{3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_Do(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	sum, visited := 0.0, 0
	m.Do(func(_, _ int, v float64) bool {
		sum += v
		visited++
		return visited < 3 // stop after three cells
	})
	require.Equal(t, 6.0, sum)
	require.Equal(t, 3, visited)
}
