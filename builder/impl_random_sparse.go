// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • 0 < p < 1 requires cfg.rng (else ErrNeedRandSource); p ∈ {0,1} is
//     deterministic without it.
//   • Pairs i<j are visited in lexicographic order; one draw per pair.
//   • The result is generally NOT planar; use it for oracle cross-checks and
//     for exercising the planarity guard.
//
// Complexity: O(n²) pair checks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndissect/core"
)

// RandomSparse returns a Constructor that builds G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomSparse, n, MinRandomSparseNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := cfg.checkCostSource(MethodRandomSparse); err != nil {
			return err
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := cfg.addVertex(g, MethodRandomSparse, ids[i]); err != nil {
				return err
			}
		}

		var keep bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == MaxProbability:
					keep = true
				case p == MinProbability:
					keep = false
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
