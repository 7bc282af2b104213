// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i - (i+1)%n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndissect/core"
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, MethodCycle, n)
	}
}

// ring adds n vertices cfg.idFn(0..n-1) joined in a closed cycle.
// Callers validate n ≥ 3.
func ring(g *core.Graph, cfg builderConfig, method string, n int) error {
	if err := cfg.checkCostSource(method); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := cfg.addVertex(g, method, cfg.idFn(i)); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		if err := addEdge(g, method, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
			return err
		}
	}

	return nil
}
