// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical model:
//   • Wₙ = Cₙ₋₁ + "Center", i.e., a cycle of size (n-1) plus a hub vertex.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Builds the rim via the Cycle logic with IDs cfg.idFn(0..n-2).
//   • Adds hub vertex with fixed ID "Center".
//   • Emits spokes from "Center" to each rim vertex in index order.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndissect/core"
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := ring(g, cfg, MethodWheel, n-1); err != nil {
			return err
		}
		if err := cfg.addVertex(g, MethodWheel, CenterVertexID); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, MethodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
