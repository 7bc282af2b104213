// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms return these sentinels (possibly wrapped with an
// operation tag) and tests check them via errors.Is. No algorithm panics on
// user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, or a
	// non-square input where a square one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (Set, ingestion, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when no acceptable pivot exists during LU
	// factorization, i.e. the matrix is singular or numerically so.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDuplicateIndex indicates an index set that lists the same index twice.
	ErrDuplicateIndex = errors.New("matrix: duplicate index in index set")

	// ErrOverlappingIndex indicates two index sets that were required to be disjoint share an index.
	ErrOverlappingIndex = errors.New("matrix: index sets overlap")

	// ErrRaggedRows indicates a row-slice literal whose rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")
)
