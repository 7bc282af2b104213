// Package core provides the vertex-weighted, undirected, thread-safe Graph
// used by every algorithm in ndissect.
//
// The Graph G = (V, E) models the planar graph behind a sparse symmetric
// system: each vertex carries a non-negative Cost (its weight in separator
// balance computations), edges are undirected and simple.
//
//   - No self-loops (AddEdge(v, v) → ErrLoopNotAllowed)
//   - No parallel edges (second AddEdge(u, v) → ErrDuplicateEdge)
//   - Costs are finite and ≥ 0 (else ErrInvalidCost)
//   - Deterministic iteration: Vertices(), NeighborIDs(), Edges() are sorted
//   - Separate sync.RWMutex for vertices (muVert) and adjacency (muEdgeAdj)
//
// Algorithms never mutate a caller's graph. Recursive procedures derive new
// graphs with InducedSubgraph, which copies costs and the edges whose
// endpoints are both kept.
//
// VertexSet is the set type shared by components, separators and tree nodes:
//
//	s := core.NewVertexSet("a", "b")
//	s.Add("c")
//	s.Sorted() // [a b c]
//
// Core Methods:
//
//	AddVertex(id string, cost float64) error   // O(1)
//	AddEdge(u, v string) error                 // O(1)
//	HasVertex(id) / HasEdge(u, v)              // O(1)
//	Cost(id) (float64, error)                  // O(1)
//	Vertices() []string                        // O(V·log V)
//	NeighborIDs(id) ([]string, error)          // O(d·log d)
//	Edges() []Edge                             // O(E·log E)
//	TotalCost() / CostOf(VertexSet)            // O(V)
//	InducedSubgraph(g, keep) *Graph            // O(V + E)
//
// Errors:
//
//	ErrEmptyVertexID    – zero-length vertex ID
//	ErrVertexNotFound   – missing vertex
//	ErrDuplicateVertex  – vertex already present
//	ErrInvalidCost      – negative, NaN or ±Inf cost
//	ErrLoopNotAllowed   – self-loop
//	ErrDuplicateEdge    – parallel edge
package core
