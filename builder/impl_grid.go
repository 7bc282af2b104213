// SPDX-License-Identifier: MIT
// Package: ndissect/builder
//
// impl_grid.go - Grid(rows, cols) and TriGrid(rows, cols).
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighbourhood (right & bottom neighbours per cell).
//   • Vertex IDs use the fixed scheme "r,c" (row-major order), a deliberate
//     exception to cfg.idFn to keep coordinates explicit.
//   • TriGrid adds the (r,c)—(r+1,c+1) diagonal of every cell; the result is
//     still planar and has the 2D finite-element stencil shape.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertices are added in row-major order, costs from cfg.costFn.
//   • For each (r,c) edges are emitted Right, Bottom, then (TriGrid) Diagonal.
//
// Complexity:
//   • Time: O(rows*cols); Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ndissect/core"
)

// GridID returns the "r,c" vertex ID used by Grid and TriGrid.
func GridID(r, c int) string {
	return fmt.Sprintf(GridIDFormat, r, c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return lattice(g, cfg, MethodGrid, rows, cols, false)
	}
}

// TriGrid returns a Constructor that builds a rows×cols grid with one
// diagonal per cell.
func TriGrid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return lattice(g, cfg, MethodTriGrid, rows, cols, true)
	}
}

// lattice is the shared body of Grid and TriGrid.
func lattice(g *core.Graph, cfg builderConfig, method string, rows, cols int, diagonal bool) error {
	if rows < MinGridDim || cols < MinGridDim {
		return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			method, rows, cols, MinGridDim, ErrTooFewVertices)
	}
	if err := cfg.checkCostSource(method); err != nil {
		return err
	}

	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			if err := cfg.addVertex(g, method, GridID(r, c)); err != nil {
				return err
			}
		}
	}

	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			u := GridID(r, c)
			if c+1 < cols {
				if err := addEdge(g, method, u, GridID(r, c+1)); err != nil {
					return err
				}
			}
			if r+1 < rows {
				if err := addEdge(g, method, u, GridID(r+1, c)); err != nil {
					return err
				}
			}
			if diagonal && r+1 < rows && c+1 < cols {
				if err := addEdge(g, method, u, GridID(r+1, c+1)); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
