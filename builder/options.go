// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCostFn overrides the per-vertex cost generator. The function must be
// deterministic for a given RNG state. Panics on nil.
func WithCostFn(fn CostFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCostFn(nil)")
	}
	return func(c *builderConfig) {
		c.costFn = fn
		c.costNeedsRand = false
	}
}

// WithUniformCost gives every vertex the same cost. Panics if cost is
// negative, NaN or infinite.
func WithUniformCost(cost float64) BuilderOption {
	return WithCostFn(ConstantCostFn(cost))
}

// WithRandomCost draws each vertex cost uniformly from [lo, hi).
// Constructors fail with ErrNeedRandSource unless WithSeed or WithRand is
// also given. Panics on an invalid interval.
func WithRandomCost(lo, hi float64) BuilderOption {
	fn := UniformCostFn(lo, hi)
	return func(c *builderConfig) {
		c.costFn = fn
		c.costNeedsRand = true
	}
}

// WithCosts assigns costs by vertex ID; IDs missing from costs get def.
// Panics if any value is negative, NaN or infinite.
func WithCosts(costs map[string]float64, def float64) BuilderOption {
	mustCost("WithCosts", def)
	own := make(map[string]float64, len(costs))
	for id, v := range costs {
		mustCost("WithCosts", v)
		own[id] = v
	}

	return WithCostFn(func(id string, _ *rand.Rand) float64 {
		if v, ok := own[id]; ok {
			return v
		}
		return def
	})
}

// mustCost panics unless v is a legal vertex cost.
func mustCost(where string, v float64) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("builder: %s: cost must be finite and ≥ 0, got %g", where, v))
	}
}
