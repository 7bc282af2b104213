// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority when several validations fail:
//   • ErrTooFewVertices     - size/domain checks first (n, rows, cols).
//   • ErrInvalidProbability - then probability ranges.
//   • ErrNeedRandSource     - then RNG presence for stochastic builders.
//   • ErrConstructFailed    - only after all strategies are exhausted.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or cost function
// requires a non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not construct a
// topology (nil constructor, missing edge table, ...).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown enumerated option value that must
// surface as an error rather than a panic (e.g. an unknown Platonic solid).
var ErrOptionViolation = errors.New("builder: invalid option value")
