// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for factorization kernels.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Invalid parameters are recorded and surfaced as errors at call time.
package matrix

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative pivot tolerance used by LU: a pivot p is
	// rejected as singular when |p| ≤ eps·max|A[i,j]|.
	DefaultEpsilon = 1e-12

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true

	// DefaultSymmetryTolerance is the absolute tolerance used by symmetric checks.
	DefaultSymmetryTolerance = 1e-9
)

// Option mutates Options.
type Option func(*Options)

// Options holds kernel configuration.
type Options struct {
	eps float64 // relative pivot tolerance
	err error   // first invalid option, surfaced by gatherOptions
}

// WithEpsilon sets the relative pivot tolerance of LU/Inverse/Solve.
// eps must be finite and ≥ 0; eps == 0 only rejects exact zero pivots.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
			o.err = fmt.Errorf("WithEpsilon(%g): %w", eps, ErrNaNInf)
			return
		}
		o.eps = eps
	}
}

// gatherOptions applies user options on top of defaults.
func gatherOptions(user ...Option) (Options, error) {
	o := Options{eps: DefaultEpsilon}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
