// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn   = DefaultIDFn   ("0","1","2",...)
//   • rng    = nil           (pure/deterministic unless seeded)
//   • costFn = DefaultCostFn (every vertex costs DefaultVertexCost)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ndissect/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Vertex cost generator, called once per added vertex.
	costFn CostFn
	// costNeedsRand marks cost functions that cannot run without rng.
	costNeedsRand bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		rng:    nil,
		costFn: DefaultCostFn,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// checkCostSource rejects random cost functions without an RNG, so that a
// missing WithSeed surfaces as ErrNeedRandSource instead of silent defaults.
func (cfg builderConfig) checkCostSource(method string) error {
	if cfg.costNeedsRand && cfg.rng == nil {
		return fmt.Errorf("%s: random vertex costs: %w", method, ErrNeedRandSource)
	}

	return nil
}

// addVertex inserts id with the configured cost and wraps failures with method.
func (cfg builderConfig) addVertex(g *core.Graph, method, id string) error {
	c := cfg.costFn(id, cfg.rng)
	if err := g.AddVertex(id, c); err != nil {
		return fmt.Errorf("%s: AddVertex(%s, %g): %w", method, id, c, err)
	}

	return nil
}

// addEdge inserts {u,v} and wraps failures with method.
func addEdge(g *core.Graph, method, u, v string) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s): %w", method, u, v, err)
	}

	return nil
}
