// Package builder assembles deterministic vertex-costed fixture graphs for
// nested dissection: grids, paths, cycles, stars, wheels, complete graphs,
// Platonic solids and seeded random graphs.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID scheme and cost function.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – PaddedIDFn:        zero-padded decimals, so lexical order is numeric order.
//     – SymbolIDFn:        single letters ("A","B",…).
//     – SymbolNumberIDFn:  prefixed decimals ("v0","v1",…).
//   - Vertex-cost distributions (CostFn implementations):
//     – DefaultCostFn:     constant DefaultVertexCost.
//     – ConstantCostFn:    fixed user-provided value.
//     – UniformCostFn:     uniform ∼U[min,max), needs an RNG.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (errors.Is friendly).
//   - Same inputs, options and seed give identical graphs.
//
// Planar fixtures (Grid, TriGrid, Path, Cycle, Star, Wheel, PlatonicSolid) feed
// the separator and nested-dissection tests; Complete(5) and RandomSparse are
// the non-planar counterparts.
package builder
