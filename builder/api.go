// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndissect/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Assign every new vertex its cost through cfg.costFn.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration from
// bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...) or
//     core sentinels (core.ErrDuplicateVertex when two constructors collide).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Build is BuildGraph for the common single-constructor case.
func Build(con Constructor, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, con)
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add vertices via cfg.idFn (except documented fixed IDs like "r,c" or "Center").
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.
//
// Cycle(n)             C_n, n ≥ 3.
// Path(n)              P_n, n ≥ 1.
// Star(n)              "Center" plus n-1 leaves, n ≥ 2.
// Wheel(n)             C_{n-1} plus "Center", n ≥ 4.
// Complete(n)          K_n, n ≥ 1 (non-planar for n ≥ 5).
// Grid(rows, cols)     4-neighbour lattice with IDs "r,c".
// TriGrid(rows, cols)  Grid plus one diagonal per cell (maximal-ish planar).
// RandomSparse(n, p)   Erdős–Rényi G(n,p); needs an RNG for 0 < p < 1.
// PlatonicSolid(name, withCenter)
