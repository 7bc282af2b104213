// Package septree builds the recursive separator tree of a vertex-costed
// planar graph and derives the block elimination order it implies.
//
// Build asks a separator.Finder for a split, induces the two overlapping
// sides and recurses until a side is small (≤ 2 vertices), already balanced,
// degenerate, or at the depth budget. The returned tree is immutable.
//
// EliminationOrder walks the tree in post-order: each vertex belongs to the
// shallowest separator that contains it, or to its leaf when no separator
// does, so the resulting blocks partition the vertex set and inner
// separators are eliminated before the separators that enclose them.
//
// Sibling subtrees may be built concurrently (WithParallelism); the tree is
// the same whatever the setting.
package septree
