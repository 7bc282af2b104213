package nd

import (
	"fmt"

	"github.com/katalvlaran/ndissect/matrix"
)

// Rows returns the global rows covered by the factorization, in elimination
// order.
func (f *Factorization) Rows() []int {
	var out []int
	for _, s := range f.Steps {
		out = append(out, s.F...)
	}

	return out
}

// Solve returns x with L[A,A]·x[A] = b[A], where A = Rows(); entries of x
// outside A are zero.
//
// Implementation:
//   - Forward sweep: per step, r_C −= X·r_F and u_F = L_FF⁻¹·r_F.
//   - Backward sweep, last step first: x_F = u_F − Xᵗ·x_C.
//
// Complexity: O(Σ (|F|² + |F|·|C|)) over the steps.
func (f *Factorization) Solve(b []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(b, f.N); err != nil {
		return nil, fmt.Errorf("nd: solve: %w", err)
	}
	r := append([]float64(nil), b...)
	u := make([][]float64, len(f.Steps))

	var err error
	for k, s := range f.Steps {
		rf := gather(r, s.F)
		if u[k], err = matrix.MatVec(s.Factor.InvFF, rf); err != nil {
			return nil, fmt.Errorf("nd: solve step %d: %w", k, err)
		}
		if len(s.C) == 0 {
			continue
		}
		xr, err := matrix.MatVec(s.Factor.Coupling, rf)
		if err != nil {
			return nil, fmt.Errorf("nd: solve step %d: %w", k, err)
		}
		for i, row := range s.C {
			r[row] -= xr[i]
		}
	}

	x := make([]float64, f.N)
	for k := len(f.Steps) - 1; k >= 0; k-- {
		s := f.Steps[k]
		xf := u[k]
		if len(s.C) > 0 {
			xt, err := matrix.Transpose(s.Factor.Coupling)
			if err != nil {
				return nil, fmt.Errorf("nd: solve step %d: %w", k, err)
			}
			corr, err := matrix.MatVec(xt, gather(x, s.C))
			if err != nil {
				return nil, fmt.Errorf("nd: solve step %d: %w", k, err)
			}
			for i := range xf {
				xf[i] -= corr[i]
			}
		}
		for i, row := range s.F {
			x[row] = xf[i]
		}
	}

	return x, nil
}

func gather(v []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = v[row]
	}

	return out
}
