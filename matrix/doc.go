// Package matrix provides the dense linear algebra used by block elimination.
//
// The matrix package provides:
//
//   - Dense: a row-major matrix with bounds-checked At/Set and a finite-value policy.
//   - Block: a view of a matrix restricted to explicit row/column index sets,
//     validated once at construction (range, duplicates).
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, BlockDiag, AllClose.
//   - LU with partial pivoting (relative pivot tolerance, WithEpsilon), Solve and Inverse.
//   - Validators shared by callers: ValidateSymmetric, ValidateIndexSet, ValidateDisjoint, ...
//
// All matrices are dense; storage is O(r·c). Errors are package sentinels
// (ErrSingular, ErrAsymmetry, ErrDimensionMismatch, ...) wrapped with the
// operation name, so callers branch with errors.Is.
package matrix
