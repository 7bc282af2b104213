package elim

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ndissect/matrix"
	"github.com/katalvlaran/ndissect/oracle"
)

// Eliminator is a configured BlockEliminator; safe for concurrent use when
// its inverter is.
type Eliminator struct {
	inverter oracle.Inverter
	symTol   float64
	checkSym bool
}

// NewEliminator applies opts over the defaults (oracle.LUInverter,
// DefaultSymmetryTolerance, symmetry check on).
func NewEliminator(opts ...Option) (*Eliminator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Eliminator{inverter: o.inverter, symTol: o.symTol, checkSym: o.checkSym}, nil
}

// Eliminate runs an Eliminator with default options.
func Eliminate(L matrix.Matrix, F, C []int) (*Factorization, error) {
	e, err := NewEliminator()
	if err != nil {
		return nil, err
	}

	return e.Eliminate(L, F, C)
}

// SchurComplement returns Sc = L_CC − L_CF·L_FF⁻¹·L_FC with default options.
// An empty C yields a 0×0 matrix.
func SchurComplement(L matrix.Matrix, F, C []int) (*matrix.Dense, error) {
	f, err := Eliminate(L, F, C)
	if err != nil {
		return nil, err
	}
	if f.Schur == nil {
		return matrix.BlockDiag(nil, nil)
	}

	return f.Schur, nil
}

// Eliminate factors L[F∪C, F∪C] as BT·W·B.
//
// Implementation:
//   - Stage 1: validate L, F and C; optionally check symmetry of L[F∪C, F∪C].
//   - Stage 2: invert L_FF through the inverter.
//   - Stage 3: X = L_CF·L_FF⁻¹, Sc = L_CC − X·L_FC.
//   - Stage 4: assemble W = blockdiag(L_FF, Sc), BT = [[I,0],[X,I]], B = BTᵗ.
//
// Errors: ErrInvalidInput, ErrSingularBlock.
//
// Complexity: O(|F|³ + |F|²·|C| + |F|·|C|²).
func (e *Eliminator) Eliminate(L matrix.Matrix, F, C []int) (*Factorization, error) {
	if err := e.validate(L, F, C); err != nil {
		return nil, err
	}

	lff, err := part(L, F, F)
	if err != nil {
		return nil, err
	}
	inv, err := e.inverter.Invert(lff)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%w: %w", ErrSingularBlock, err)
		}
		return nil, fmt.Errorf("elim: invert L_FF: %w", err)
	}

	nf, nc := len(F), len(C)
	f := &Factorization{
		F:     append([]int(nil), F...),
		C:     append([]int(nil), C...),
		InvFF: inv,
	}
	if nc == 0 {
		f.W = lff
		if f.BT, err = matrix.NewIdentity(nf); err != nil {
			return nil, fmt.Errorf("elim: %w", err)
		}
		f.B = f.BT.Clone().(*matrix.Dense)
		return f, nil
	}

	lcf, err := part(L, C, F)
	if err != nil {
		return nil, err
	}
	lfc, err := part(L, F, C)
	if err != nil {
		return nil, err
	}
	lcc, err := part(L, C, C)
	if err != nil {
		return nil, err
	}

	if f.Coupling, err = matrix.Mul(lcf, inv); err != nil {
		return nil, fmt.Errorf("elim: coupling: %w", err)
	}
	xl, err := matrix.Mul(f.Coupling, lfc)
	if err != nil {
		return nil, fmt.Errorf("elim: schur: %w", err)
	}
	if f.Schur, err = matrix.Sub(lcc, xl); err != nil {
		return nil, fmt.Errorf("elim: schur: %w", err)
	}

	if f.W, err = matrix.BlockDiag(lff, f.Schur); err != nil {
		return nil, fmt.Errorf("elim: W: %w", err)
	}
	if f.BT, err = lowerFactor(f.Coupling, nf, nc); err != nil {
		return nil, err
	}
	if f.B, err = matrix.Transpose(f.BT); err != nil {
		return nil, fmt.Errorf("elim: B: %w", err)
	}

	return f, nil
}

// validate checks shapes, index sets and (optionally) symmetry.
func (e *Eliminator) validate(L matrix.Matrix, F, C []int) error {
	if err := matrix.ValidateSquareNonNil(L); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if len(F) == 0 {
		return fmt.Errorf("%w: F is empty", ErrInvalidInput)
	}
	n := L.Rows()
	if err := matrix.ValidateIndexSet(F, n); err != nil {
		return fmt.Errorf("%w: F: %w", ErrInvalidInput, err)
	}
	if err := matrix.ValidateIndexSet(C, n); err != nil {
		return fmt.Errorf("%w: C: %w", ErrInvalidInput, err)
	}
	if err := matrix.ValidateDisjoint(F, C); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !e.checkSym {
		return nil
	}

	idx := append(append([]int(nil), F...), C...)
	sub, err := part(L, idx, idx)
	if err != nil {
		return err
	}
	if err = matrix.ValidateSymmetric(sub, e.symTol*scale(sub)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return nil
}

// part copies L[rows, cols] into a Dense.
func part(L matrix.Matrix, rows, cols []int) (*matrix.Dense, error) {
	b, err := matrix.NewBlock(L, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	d, err := b.Materialize()
	if err != nil {
		return nil, fmt.Errorf("elim: %w", err)
	}

	return d, nil
}

// scale returns max(1, max|m[i,j]|).
func scale(m *matrix.Dense) float64 {
	s := 1.0
	m.Do(func(_, _ int, v float64) bool {
		s = math.Max(s, math.Abs(v))
		return true
	})

	return s
}

// lowerFactor builds [[I,0],[X,I]] of order nf+nc.
func lowerFactor(x *matrix.Dense, nf, nc int) (*matrix.Dense, error) {
	bt, err := matrix.NewIdentity(nf + nc)
	if err != nil {
		return nil, fmt.Errorf("elim: BT: %w", err)
	}
	var v float64
	for i := 0; i < nc; i++ {
		for j := 0; j < nf; j++ {
			if v, err = x.At(i, j); err != nil {
				return nil, fmt.Errorf("elim: BT: %w", err)
			}
			if err = bt.Set(nf+i, j, v); err != nil {
				return nil, fmt.Errorf("elim: BT: %w", err)
			}
		}
	}

	return bt, nil
}
