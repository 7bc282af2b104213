// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds hub vertex with fixed ID "Center".
//   - Adds leaves via cfg.idFn in ascending index order for i = 1..n-1.
//   - Emits spokes in stable order Center - leaf[i].
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndissect/core"
)

// Star returns a Constructor that builds a star with one hub "Center" and
// n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := cfg.checkCostSource(MethodStar); err != nil {
			return err
		}
		if err := cfg.addVertex(g, MethodStar, CenterVertexID); err != nil {
			return err
		}

		var leaf string
		for i := 1; i < n; i++ {
			leaf = cfg.idFn(i)
			if err := cfg.addVertex(g, MethodStar, leaf); err != nil {
				return err
			}
			if err := addEdge(g, MethodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
