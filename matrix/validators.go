// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/symmetry/index checks here.
//
// Determinism & Performance:
//  - All checks are pure and deterministic.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil (including a typed
// nil *Dense or *Block stored in the interface).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *Block:
		if v == nil || v.base == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Assumes m non-nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
func ValidateVecLen(x []float64, n int) error {
	if x == nil && n > 0 {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape - Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil - Composite: NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Returns ErrNilMatrix/ErrDimensionMismatch on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSymmetric", ErrDimensionMismatch)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if tol < 0 {
		tol = -tol
	}

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric",
					fmt.Errorf("|A[%d,%d]-A[%d,%d]| = %g: %w", i, j, j, i, math.Abs(aij-aji), ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateIndexSet checks that every index lies in [0,n) and none repeats.
// An empty set is valid.
// Complexity: O(len(idx)).
func ValidateIndexSet(idx []int, n int) error {
	seen := make(map[int]struct{}, len(idx))
	for _, k := range idx {
		if k < 0 || k >= n {
			return validatorErrorf("ValidateIndexSet", fmt.Errorf("index %d not in [0,%d): %w", k, n, ErrOutOfRange))
		}
		if _, dup := seen[k]; dup {
			return validatorErrorf("ValidateIndexSet", fmt.Errorf("index %d: %w", k, ErrDuplicateIndex))
		}
		seen[k] = struct{}{}
	}

	return nil
}

// ValidateDisjoint checks that a and b share no index.
// Complexity: O(len(a)+len(b)).
func ValidateDisjoint(a, b []int) error {
	in := make(map[int]struct{}, len(a))
	for _, k := range a {
		in[k] = struct{}{}
	}
	for _, k := range b {
		if _, ok := in[k]; ok {
			return validatorErrorf("ValidateDisjoint", fmt.Errorf("index %d: %w", k, ErrOverlappingIndex))
		}
	}

	return nil
}
