// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits every pair i<j in lexicographic (i, j) order.
//   • K_n is planar only for n ≤ 4; Complete(5) is the canonical
//     non-planar fixture.
//
// Complexity: O(n) vertices + O(n²) edges; O(n) extra for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndissect/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := cfg.checkCostSource(MethodComplete); err != nil {
			return err
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := cfg.addVertex(g, MethodComplete, ids[i]); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
