// Package ndissect is nested dissection for vertex-costed planar graphs:
// balanced separators, separator trees and block elimination of the matrices
// bound to the graph's vertices.
//
// Subpackages, bottom-up:
//
//	core/      - thread-safe Graph with vertex costs, VertexSet algebra
//	bfs/       - breadth-first traversal with depth and parent maps
//	matrix/    - dense matrices, index-set blocks, LU and inversion
//	oracle/    - graph (components, BFS levels, planarity bound) and inverter oracles, native and gonum
//	builder/   - deterministic graph constructors (grids, paths, Platonic solids, …)
//	separator/ - Lipton–Tarjan level separator (Find)
//	septree/   - recursive separator tree and its elimination order
//	elim/      - one block elimination L = BT·W·B with Schur complement
//	nd/        - full nested-dissection factorization and solve
//	graphio/   - YAML graph documents and tree export
//
// The ndissect command (cmd/ndissect) drives all of it from the shell.
//
// Quick start:
//
//	g, _ := builder.Build(builder.Grid(16, 16))
//	L, _ := nd.Laplacian(g, nil, 1)
//	f, _ := nd.Factorize(ctx, g, L, nil)
//	x, _ := f.Solve(b)
package ndissect
