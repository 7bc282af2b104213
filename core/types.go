// Package core defines the central Graph, Vertex and Edge types and the
// sentinel errors of the package.
//
// All core APIs use two sync.RWMutex locks (muVert for the vertex catalog,
// muEdgeAdj for adjacency) acquired in the order muVert → muEdgeAdj, so
// concurrent readers (for example sibling subtree builders) never contend
// on writes they do not perform.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates AddVertex was called for an ID already present.
	ErrDuplicateVertex = errors.New("core: vertex already exists")

	// ErrInvalidCost indicates a negative, NaN or infinite vertex cost.
	ErrInvalidCost = errors.New("core: vertex cost must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was attempted.
	ErrDuplicateEdge = errors.New("core: edge already exists")
)

// Vertex is a graph node with its separator cost.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string

	// Cost is the non-negative weight used for separator balance.
	Cost float64
}

// Edge is an undirected edge; From < To lexicographically in every value
// returned by the package.
type Edge struct {
	From string
	To   string
}

// Graph is a simple undirected graph with vertex costs.
//
// muVert protects vertices; muEdgeAdj protects adjacency and edgeCount.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards adjacency and edgeCount

	vertices  map[string]*Vertex             // vertex ID → Vertex
	adjacency map[string]map[string]struct{} // u → set of neighbors v (mirrored)
	edgeCount int                            // number of undirected edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string]map[string]struct{}),
	}
}
