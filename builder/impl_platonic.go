// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// impl_platonic.go - PlatonicSolid(name, withCenter) constructor.
//
// Contract:
//   • Shell vertices are cfg.idFn(0..V-1), edges from platonicShell.
//   • withCenter adds "Center" joined to every shell vertex. No solid is
//     outerplanar, so every stellated variant is non-planar
//     (Tetrahedron+Center is K5).
//
// Complexity: O(V+E) for the chosen solid; stable emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndissect/core"
)

// PlatonicSolid returns a Constructor for the named solid.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, edges, ok := platonicShell(name)
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		if err := cfg.checkCostSource(MethodPlatonicSolid); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			if err := cfg.addVertex(g, MethodPlatonicSolid, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for _, ch := range edges {
			if err := addEdge(g, MethodPlatonicSolid, cfg.idFn(ch.U), cfg.idFn(ch.V)); err != nil {
				return err
			}
		}

		if !withCenter {
			return nil
		}
		if err := cfg.addVertex(g, MethodPlatonicSolid, CenterVertexID); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, MethodPlatonicSolid, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
