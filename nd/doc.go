// Package nd drives nested-dissection factorization of the symmetric matrix
// attached to a vertex-costed planar graph.
//
// Factorize builds the separator tree of the graph, takes its elimination
// order, and eliminates one block at a time: each step factors the current
// active matrix as BT·W·B with the block as F and every later vertex as C,
// then continues on the Schur complement. The step factors are enough to
// solve L·x = b (Solve) without touching L again.
//
// Rows of L are bound to vertices through an index map (vertex ID → row).
// Laplacian assembles the shifted graph Laplacian, the usual matrix for this
// purpose.
package nd
