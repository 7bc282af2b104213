// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ndissect/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSymmetric(t *testing.T) {
	sym := mustDense(t, [][]float64{{2, 1}, {1, 2}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym := mustDense(t, [][]float64{{2, 1}, {1.1, 2}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 0.2)) // within tolerance

	require.ErrorIs(t, matrix.ValidateSymmetric(mustDense(t, [][]float64{{1, 2}}), 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateIndexSets(t *testing.T) {
	require.NoError(t, matrix.ValidateIndexSet(nil, 0))
	require.NoError(t, matrix.ValidateIndexSet([]int{2, 0, 1}, 3))
	require.ErrorIs(t, matrix.ValidateIndexSet([]int{3}, 3), matrix.ErrOutOfRange)
	require.ErrorIs(t, matrix.ValidateIndexSet([]int{1, 1}, 3), matrix.ErrDuplicateIndex)

	require.NoError(t, matrix.ValidateDisjoint([]int{0, 1}, []int{2, 3}))
	require.ErrorIs(t, matrix.ValidateDisjoint([]int{0, 1}, []int{1}), matrix.ErrOverlappingIndex)
}
