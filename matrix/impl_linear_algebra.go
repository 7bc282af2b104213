// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, subtraction, matrix multiplication,
// transpose, block-diagonal assembly and LU-based solves and inversion.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast-path over the flat buffer and a generic
//     At/Set fallback with the same loop order.
//   - Results are always freshly allocated *Dense values; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opInverse   = "Inverse"
	opLU        = "LU"
	opSolve     = "Solve"
	opMatVec    = "MatVec"
	opAllClose  = "AllClose"
	opBlockDiag = "BlockDiag"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m as a *Dense, copying when m has another dynamic type.
// A *Dense input is returned as-is (no copy); callers must not mutate it.
func asDense(m Matrix) (*Dense, error) {
	switch v := m.(type) {
	case *Dense:
		return v, nil
	case *Block:
		return v.Materialize()
	}
	out := newDenseZeroOK(m.Rows(), m.Cols())
	var x float64
	var err error
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if x, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = x
		}
	}

	return out, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: materialize both as Dense, single flat loop 0..n-1.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newDenseZeroOK(da.r, da.c)
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul returns the product a·b.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop order i→k→j.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res := newDenseZeroOK(aRows, bCols)
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newDenseZeroOK(d.c, d.r)
	res.validateNaNInf = d.validateNaNInf
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha·m.
// Errors: ErrNilMatrix, ErrNaNInf for a non-finite alpha.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := d.copyDense()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if x[j] != 0 {
				acc += d.data[base+j] * x[j]
			}
		}
		y[i] = acc
	}

	return y, nil
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]| for all (i,j).
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}

// BlockDiag assembles [[a, 0], [0, b]]. Either operand may be nil (treated as
// a zero-area block), so BlockDiag(a, nil) is a copy of a.
// Complexity: O((ra+rb)·(ca+cb)).
func BlockDiag(a, b Matrix) (*Dense, error) {
	parts := make([]*Dense, 0, 2)
	for _, m := range []Matrix{a, b} {
		if ValidateNotNil(m) != nil {
			continue
		}
		d, err := asDense(m)
		if err != nil {
			return nil, matrixErrorf(opBlockDiag, err)
		}
		parts = append(parts, d)
	}

	rows, cols := 0, 0
	for _, p := range parts {
		rows += p.r
		cols += p.c
	}
	res := newDenseZeroOK(rows, cols)
	r0, c0 := 0, 0
	for _, p := range parts {
		for i := 0; i < p.r; i++ {
			copy(res.data[(r0+i)*cols+c0:(r0+i)*cols+c0+p.c], p.data[i*p.c:(i+1)*p.c])
		}
		r0 += p.r
		c0 += p.c
	}

	return res, nil
}

// LUFactors holds P·A = L·U, where row i of P·A is row Perm[i] of A.
type LUFactors struct {
	L    *Dense // unit lower triangular
	U    *Dense // upper triangular
	Perm []int  // row permutation
}

// LU computes the factorization P·A = L·U with partial (row) pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy A; scale = max|A[i,j]|.
//   - Stage 2: For each column k pick the first row p ≥ k maximizing |A[p,k]|,
//     reject it when |A[p,k]| ≤ eps·scale, swap rows, eliminate below.
//
// Inputs:
//   - m: square Matrix (n×n).
//   - opts: WithEpsilon sets the relative pivot tolerance (default DefaultEpsilon).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (no acceptable pivot),
//     ErrNaNInf (invalid epsilon).
//
// Determinism:
//   - Ties between equal pivot candidates go to the lowest row.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err = ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	a := src.copyDense()
	n := a.r

	scale := 0.0
	for _, v := range a.data {
		if av := math.Abs(v); av > scale {
			scale = av
		}
	}
	thresh := o.eps * scale

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p   int
		best, pivot  float64
		factor       float64
		baseK, baseI int
	)
	for k = 0; k < n; k++ {
		p, best = k, math.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if v := math.Abs(a.data[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= thresh || best == 0 {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: pivot %g: %w", k, best, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		baseK = k * n
		pivot = a.data[baseK+k]
		for i = k + 1; i < n; i++ {
			baseI = i * n
			factor = a.data[baseI+k] / pivot
			a.data[baseI+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[baseI+j] -= factor * a.data[baseK+j]
			}
		}
	}

	L := newDenseZeroOK(n, n)
	U := newDenseZeroOK(n, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = a.data[i*n+j]
			case j == i:
				L.data[i*n+j] = 1
				U.data[i*n+j] = a.data[i*n+j]
			default:
				U.data[i*n+j] = a.data[i*n+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm}, nil
}

// Solve returns x with A·x = b using the stored factors.
// Errors: ErrDimensionMismatch when len(b) differs from the order of A.
// Complexity: O(n^2).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	n := f.L.r
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	y := make([]float64, n)
	x := make([]float64, n)
	f.solveInto(b, y, x)

	return x, nil
}

// solveInto runs forward then backward substitution with caller-provided scratch.
func (f *LUFactors) solveInto(b, y, x []float64) {
	n := f.L.r
	var i, k, base int
	var sum float64
	// Forward substitution: L*y = P*b
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += f.L.data[base+k] * y[k]
		}
		y[i] = b[f.Perm[i]] - sum
	}
	// Backward substitution: U*x = y
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += f.U.data[base+k] * x[k]
		}
		x[i] = (y[i] - sum) / f.U.data[base+i]
	}
}

// Inverse returns m⁻¹ computed column by column from the pivoted LU factors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (from LU).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := f.L.r
	inv := newDenseZeroOK(n, n)
	e := make([]float64, n)
	y := make([]float64, n)
	x := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		for i = range e {
			e[i] = 0
		}
		e[col] = 1
		f.solveInto(e, y, x)
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
