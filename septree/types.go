package septree

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/ndissect/core"
	"github.com/katalvlaran/ndissect/separator"
)

// Sentinel errors for tree construction.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("septree: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("septree: invalid option supplied")
)

const (
	// DefaultMaxDepth bounds the recursion; nodes at this depth become leaves.
	DefaultMaxDepth = 256

	// DefaultParallelism builds the tree sequentially.
	DefaultParallelism = 1

	// leafSize is the largest vertex count that is never split.
	leafSize = 2
)

// Node is one vertex of the separator tree.
//
// A leaf has an empty Separator and nil children; Nodes is its vertex set.
// An internal node has both children and Nodes = Left.Nodes ∪ Right.Nodes;
// its Separator is empty when the children are disjoint groups of components.
type Node struct {
	Separator core.VertexSet
	Left      *Node
	Right     *Node
	Nodes     core.VertexSet
	Depth     int
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Walk visits the subtree in pre-order (node, left, right). Returning false
// from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	n.Left.Walk(fn)
	n.Right.Walk(fn)
}

// Block is one step of the elimination order.
type Block struct {
	// Vertices are the block's vertex IDs in sorted order.
	Vertices []string
	// Depth is the depth of the tree node that owns the block.
	Depth int
	// Separator reports whether the block comes from an internal node's
	// separator rather than from a leaf.
	Separator bool
}

// TreeStats summarizes a tree.
type TreeStats struct {
	Height       int // number of levels, 0 for a nil tree
	Internal     int
	Leaves       int
	MaxSeparator int // largest separator
	MaxLeaf      int // largest leaf vertex set
}

// Option configures a Builder.
type Option func(*options)

type options struct {
	finder      *separator.Finder
	maxDepth    int
	parallelism int
	logger      *log.Logger
	err         error
}

func defaultOptions() options {
	return options{
		maxDepth:    DefaultMaxDepth,
		parallelism: DefaultParallelism,
		logger:      log.Default(),
	}
}

// WithFinder sets the separator finder used at every node. Without it the
// builder uses separator.NewFinder() with its defaults.
func WithFinder(f *separator.Finder) Option {
	return func(o *options) {
		if f == nil {
			o.err = fmt.Errorf("%w: finder is nil", ErrOptionViolation)
			return
		}
		o.finder = f
	}
}

// WithMaxDepth sets the depth budget. Zero makes the root a leaf; negative
// values are an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d < 0", ErrOptionViolation, d)
			return
		}
		o.maxDepth = d
	}
}

// WithParallelism bounds how many subtrees are built at once (≥ 1).
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: parallelism %d < 1", ErrOptionViolation, n)
			return
		}
		o.parallelism = n
	}
}

// WithLogger sets the logger for degenerate-split (debug) and depth-budget
// (warn) messages.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
