package graphio

import (
	"io"

	"github.com/katalvlaran/ndissect/septree"
)

// TreeNode is the YAML form of a separator tree node. Leaves list their
// vertices; internal nodes list their separator and children.
type TreeNode struct {
	Depth     int       `yaml:"depth"`
	Size      int       `yaml:"size"`
	Separator []string  `yaml:"separator,omitempty,flow"`
	Vertices  []string  `yaml:"vertices,omitempty,flow"`
	Left      *TreeNode `yaml:"left,omitempty"`
	Right     *TreeNode `yaml:"right,omitempty"`
}

// NewTreeNode converts the subtree rooted at n; nil gives nil.
func NewTreeNode(n *septree.Node) *TreeNode {
	if n == nil {
		return nil
	}
	out := &TreeNode{Depth: n.Depth, Size: n.Nodes.Len()}
	if n.IsLeaf() {
		out.Vertices = n.Nodes.Sorted()
		return out
	}
	out.Separator = n.Separator.Sorted()
	out.Left = NewTreeNode(n.Left)
	out.Right = NewTreeNode(n.Right)

	return out
}

// WriteTree encodes the tree rooted at root.
func WriteTree(w io.Writer, root *septree.Node) error {
	if root == nil {
		return ErrGraphNil
	}

	return encode(w, NewTreeNode(root))
}
