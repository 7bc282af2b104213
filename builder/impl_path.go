// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)—i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndissect/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := cfg.checkCostSource(MethodPath); err != nil {
			return err
		}

		prev := ""
		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := cfg.addVertex(g, MethodPath, id); err != nil {
				return err
			}
			if i > 0 {
				if err := addEdge(g, MethodPath, prev, id); err != nil {
					return err
				}
			}
			prev = id
		}

		return nil
	}
}
