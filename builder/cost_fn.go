// Package builder provides helper functions and types for configuring
// vertex-cost distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// CostFn produces the cost of vertex id given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type CostFn func(id string, rng *rand.Rand) float64

// DefaultCostFn always returns DefaultVertexCost.
// Complexity: O(1). Never panics.
func DefaultCostFn(_ string, _ *rand.Rand) float64 {
	return DefaultVertexCost
}

// ConstantCostFn returns a CostFn that always yields value.
// Panics if value is negative, NaN or infinite.
func ConstantCostFn(value float64) CostFn {
	mustCost("ConstantCostFn", value)
	return func(_ string, _ *rand.Rand) float64 {
		return value
	}
}

// UniformCostFn returns a CostFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultVertexCost; WithRandomCost turns that case
// into ErrNeedRandSource before any vertex is added.
func UniformCostFn(min, max float64) CostFn {
	mustCost("UniformCostFn", min)
	mustCost("UniformCostFn", max)
	if max < min {
		panic(fmt.Sprintf("UniformCostFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(_ string, rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultVertexCost
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}
