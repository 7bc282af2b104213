// File: methods_vertices.go
// Role: Vertex lifecycle & queries, cost aggregation.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert → muEdgeAdj).
package core

import (
	"fmt"
	"math"
	"sort"
)

// AddVertex inserts a new vertex with the given cost.
//
// Implementation:
//   - Stage 1: Validate ID and cost (fail fast, no partial work).
//   - Stage 2: Under muVert, reject duplicates and register the vertex.
//   - Stage 3: Under muEdgeAdj, bootstrap the (empty) neighbor set.
//
// Errors:
//   - ErrEmptyVertexID, ErrInvalidCost, ErrDuplicateVertex.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddVertex(id string, cost float64) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("AddVertex(%s, %v): %w", id, cost, ErrInvalidCost)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return fmt.Errorf("AddVertex(%s): %w", id, ErrDuplicateVertex)
	}
	g.vertices[id] = &Vertex{ID: id, Cost: cost}

	g.muEdgeAdj.Lock()
	g.adjacency[id] = make(map[string]struct{})
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Cost returns the cost of vertex id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Cost(id string) (float64, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return 0, fmt.Errorf("Cost(%s): %w", id, ErrVertexNotFound)
	}

	return v.Cost, nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Use it for reproducible traversal seeds and stable test assertions.
//
// Complexity: Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexSet returns the vertex catalog as a fresh VertexSet.
// Complexity: O(V).
func (g *Graph) VertexSet() VertexSet {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make(VertexSet, len(g.vertices))
	for id := range g.vertices {
		out[id] = struct{}{}
	}

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// TotalCost returns the sum of all vertex costs.
//
// Determinism:
//   - Summation runs over sorted IDs so the floating-point result is stable.
//
// Complexity: Time O(V log V), Space O(V).
func (g *Graph) TotalCost() float64 {
	ids := g.Vertices()

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	var sum float64
	for _, id := range ids {
		sum += g.vertices[id].Cost
	}

	return sum
}

// CostOf returns the summed cost of the vertices of s that exist in g.
// IDs absent from g contribute nothing.
//
// Complexity: Time O(|s| log |s|).
func (g *Graph) CostOf(s VertexSet) float64 {
	ids := s.Sorted()

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	var sum float64
	for _, id := range ids {
		if v, ok := g.vertices[id]; ok {
			sum += v.Cost
		}
	}

	return sum
}
