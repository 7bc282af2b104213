package oracle

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/ndissect/matrix"
	"gonum.org/v1/gonum/mat"
)

// DefaultMaxCond is the 1-norm condition number above which GonumInverter
// reports a block as singular.
const DefaultMaxCond = 1e12

// LUInverter inverts through matrix.Inverse (LU with partial pivoting).
// Epsilon is the relative pivot tolerance; zero selects matrix.DefaultEpsilon.
type LUInverter struct {
	Epsilon float64
}

var _ Inverter = LUInverter{}

// Invert returns m⁻¹ or an error wrapping matrix.ErrSingular.
func (inv LUInverter) Invert(m matrix.Matrix) (*matrix.Dense, error) {
	var opts []matrix.Option
	if inv.Epsilon > 0 {
		opts = append(opts, matrix.WithEpsilon(inv.Epsilon))
	}

	return matrix.Inverse(m, opts...)
}

// GonumInverter inverts with gonum's mat.Dense.Inverse, guarded by mat.Cond.
// MaxCond ≤ 0 selects DefaultMaxCond.
type GonumInverter struct {
	MaxCond float64
}

var _ Inverter = GonumInverter{}

// Invert returns m⁻¹ or an error wrapping matrix.ErrSingular when the block
// is singular or its condition number exceeds MaxCond.
func (inv GonumInverter) Invert(m matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return nil, fmt.Errorf("GonumInverter: %w", err)
	}
	n := m.Rows()
	if n == 0 {
		return matrix.BlockDiag(nil, nil)
	}

	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("GonumInverter: %w", err)
			}
			data = append(data, v)
		}
	}
	a := mat.NewDense(n, n, data)

	limit := inv.MaxCond
	if limit <= 0 {
		limit = DefaultMaxCond
	}
	if c := mat.Cond(a, 1); math.IsInf(c, 1) || math.IsNaN(c) || c > limit {
		return nil, fmt.Errorf("GonumInverter: condition number %g: %w", c, matrix.ErrSingular)
	}

	var out mat.Dense
	if err := out.Inverse(a); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, fmt.Errorf("GonumInverter: %v: %w", err, matrix.ErrSingular)
		}
		return nil, fmt.Errorf("GonumInverter: %w", err)
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = mat.Row(nil, i, &out)
	}

	return matrix.NewDenseFrom(rows)
}
