// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, visit order,
// and the level structure used by level-based separator search.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Levels / LevelSizes / MaxLevel: the BFS layering of the reached vertices
//   - Components partitions a graph into connected components.
//
// Determinism
//
//	core.Graph.NeighborIDs returns neighbors sorted by ID and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//	Components seeds from vertices in sorted order.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "0,0", bfs.WithContext(ctx), bfs.WithMaxDepth(3))
//	sizes := res.LevelSizes()
//	comps, err := bfs.Components(ctx, g)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
