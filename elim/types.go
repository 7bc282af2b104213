package elim

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ndissect/matrix"
	"github.com/katalvlaran/ndissect/oracle"
)

// Sentinel errors for block elimination.
var (
	// ErrInvalidInput is returned for nil or non-square L, empty F,
	// out-of-range, repeated or overlapping indices, and asymmetric blocks.
	ErrInvalidInput = errors.New("elim: invalid input")

	// ErrSingularBlock is returned when L_FF cannot be inverted. It also
	// matches matrix.ErrSingular.
	ErrSingularBlock = errors.New("elim: singular pivot block")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("elim: invalid option supplied")
)

// DefaultSymmetryTolerance is the symmetry tolerance relative to max|L|.
const DefaultSymmetryTolerance = matrix.DefaultSymmetryTolerance

// Factorization is the result of one elimination step.
type Factorization struct {
	// F and C are the index sets as given, in the caller's order.
	F, C []int

	// BT, W, B are (|F|+|C|)-square with BT·W·B = L[F∪C, F∪C].
	BT, W, B *matrix.Dense

	// Schur is Sc (|C|×|C|) and Coupling is X (|C|×|F|); both nil when C is empty.
	Schur    *matrix.Dense
	Coupling *matrix.Dense

	// InvFF is L_FF⁻¹ as returned by the inverter.
	InvFF *matrix.Dense
}

// Order returns F followed by C, the row order of BT, W and B.
func (f *Factorization) Order() []int {
	out := make([]int, 0, len(f.F)+len(f.C))
	out = append(out, f.F...)

	return append(out, f.C...)
}

// Reconstruct returns BT·W·B.
func (f *Factorization) Reconstruct() (*matrix.Dense, error) {
	bw, err := matrix.Mul(f.BT, f.W)
	if err != nil {
		return nil, fmt.Errorf("elim: reconstruct: %w", err)
	}
	out, err := matrix.Mul(bw, f.B)
	if err != nil {
		return nil, fmt.Errorf("elim: reconstruct: %w", err)
	}

	return out, nil
}

// Option configures an Eliminator.
type Option func(*options)

type options struct {
	inverter oracle.Inverter
	symTol   float64
	checkSym bool
	err      error
}

func defaultOptions() options {
	return options{
		inverter: oracle.LUInverter{},
		symTol:   DefaultSymmetryTolerance,
		checkSym: true,
	}
}

// WithInverter sets the MatrixBlockOracle used for L_FF⁻¹.
func WithInverter(inv oracle.Inverter) Option {
	return func(o *options) {
		if inv == nil {
			o.err = fmt.Errorf("%w: inverter is nil", ErrOptionViolation)
			return
		}
		o.inverter = inv
	}
}

// WithSymmetryTolerance sets the symmetry tolerance, relative to max|L|.
func WithSymmetryTolerance(tol float64) Option {
	return func(o *options) {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			o.err = fmt.Errorf("%w: symmetry tolerance %g", ErrOptionViolation, tol)
			return
		}
		o.symTol = tol
	}
}

// WithoutSymmetryCheck skips the symmetry validation of L[F∪C, F∪C].
func WithoutSymmetryCheck() Option {
	return func(o *options) { o.checkSym = false }
}
