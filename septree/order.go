package septree

import "github.com/katalvlaran/ndissect/core"

// EliminationOrder returns the blocks of root in post-order (left subtree,
// right subtree, then the node's own block). A vertex is owned by the
// shallowest node whose separator holds it, or by its leaf; empty blocks are
// dropped. The blocks partition root.Nodes.
func EliminationOrder(root *Node) []Block {
	var out []Block
	collect(root, core.NewVertexSet(), &out)

	return out
}

func collect(n *Node, claimed core.VertexSet, out *[]Block) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		if own := n.Nodes.Minus(claimed); own.Len() > 0 {
			*out = append(*out, Block{Vertices: own.Sorted(), Depth: n.Depth})
		}
		return
	}

	own := n.Separator.Minus(claimed)
	inner := claimed.Union(own)
	collect(n.Left, inner, out)
	collect(n.Right, inner, out)
	if own.Len() > 0 {
		*out = append(*out, Block{Vertices: own.Sorted(), Depth: n.Depth, Separator: true})
	}
}

// Stats returns the shape summary of the tree rooted at root.
func Stats(root *Node) TreeStats {
	var s TreeStats
	root.Walk(func(n *Node) bool {
		if n.Depth+1 > s.Height {
			s.Height = n.Depth + 1
		}
		if n.IsLeaf() {
			s.Leaves++
			if n.Nodes.Len() > s.MaxLeaf {
				s.MaxLeaf = n.Nodes.Len()
			}
			return true
		}
		s.Internal++
		if n.Separator.Len() > s.MaxSeparator {
			s.MaxSeparator = n.Separator.Len()
		}
		return true
	})

	return s
}
