// File: view.go
// Role: Non-mutating graph views (induced subgraphs, clones).
//
// Concurrency:
//   - Read locks on the source only; the result is a fresh graph instance.
package core

// InducedSubgraph returns a new Graph holding the vertices of g that are in
// keep (with their costs) and every edge of g whose endpoints are both kept.
// IDs in keep that are absent from g are ignored. The input graph is not
// mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep VertexSet) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for id, v := range g.vertices {
		if keep.Has(id) {
			out.vertices[id] = &Vertex{ID: v.ID, Cost: v.Cost}
			out.adjacency[id] = make(map[string]struct{})
		}
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for u := range out.vertices {
		for v := range g.adjacency[u] {
			if _, ok := out.vertices[v]; !ok {
				continue
			}
			out.adjacency[u][v] = struct{}{}
			if u < v {
				out.edgeCount++
			}
		}
	}

	return out
}

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return InducedSubgraph(g, g.VertexSet())
}
