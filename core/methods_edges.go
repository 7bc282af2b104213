// File: methods_edges.go
// Role: Edge lifecycle & neighborhood queries.
//
// Determinism:
//   - NeighborIDs() returns IDs sorted lexicographically ascending.
//   - Edges() returns edges sorted by (From, To), each with From < To.
//
// Concurrency:
//   - Mutations under muEdgeAdj write lock, reads under its read lock.
package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v with an undirected edge.
//
// Implementation:
//   - Stage 1: Validate IDs and reject self-loops.
//   - Stage 2: Check both endpoints exist under muVert read lock.
//   - Stage 3: Under muEdgeAdj, reject duplicates and mirror the adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound, ErrDuplicateEdge.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("AddEdge(%s, %s): %w", u, v, ErrLoopNotAllowed)
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[u]; !ok {
		return fmt.Errorf("AddEdge(%s, %s): %s: %w", u, v, u, ErrVertexNotFound)
	}
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("AddEdge(%s, %s): %s: %w", u, v, v, ErrVertexNotFound)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[u][v]; dup {
		return fmt.Errorf("AddEdge(%s, %s): %w", u, v, ErrDuplicateEdge)
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.edgeCount
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("NeighborIDs(%s): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("Degree(%s): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// Edges returns every edge once, normalized to From < To and sorted by
// (From, To).
//
// Complexity: Time O(E log E), Space O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	g.muEdgeAdj.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
