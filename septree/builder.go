package septree

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/ndissect/core"
	"github.com/katalvlaran/ndissect/separator"
	"golang.org/x/sync/errgroup"
)

// Builder is a configured SeparatorTreeBuilder; safe for concurrent use.
type Builder struct {
	finder      *separator.Finder
	maxDepth    int
	parallelism int
	logger      *log.Logger
}

// NewBuilder applies opts over the defaults.
func NewBuilder(opts ...Option) (*Builder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.finder == nil {
		f, err := separator.NewFinder(separator.WithLogger(o.logger))
		if err != nil {
			return nil, fmt.Errorf("septree: %w", err)
		}
		o.finder = f
	}

	return &Builder{
		finder:      o.finder,
		maxDepth:    o.maxDepth,
		parallelism: o.parallelism,
		logger:      o.logger,
	}, nil
}

// Build runs a Builder made from opts.
func Build(ctx context.Context, g *core.Graph, opts ...Option) (*Node, error) {
	b, err := NewBuilder(opts...)
	if err != nil {
		return nil, err
	}

	return b.Build(ctx, g)
}

// Build returns the separator tree of g. g is not modified.
//
// A subgraph becomes a leaf when it has at most two vertices, when the finder
// reports a single balanced component, when it sits at the depth budget, or
// when the split is degenerate (a side without edges, or a side as large as
// the subgraph). A balanced subgraph with several components is split
// between groups of whole components under an empty separator.
//
// Errors: ErrGraphNil, finder errors, ctx.Err().
func (b *Builder) Build(ctx context.Context, g *core.Graph) (*Node, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// tokens holds the extra goroutines beyond the caller; nil means sequential.
	var tokens chan struct{}
	if b.parallelism > 1 {
		tokens = make(chan struct{}, b.parallelism-1)
	}

	return b.build(ctx, g, 0, tokens)
}

func (b *Builder) build(ctx context.Context, g *core.Graph, depth int, tokens chan struct{}) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nodes := g.VertexSet()
	leaf := &Node{Separator: core.NewVertexSet(), Nodes: nodes, Depth: depth}
	if nodes.Len() <= leafSize {
		return leaf, nil
	}
	if depth >= b.maxDepth {
		b.logger.Warn("depth budget reached", "depth", depth, "vertices", nodes.Len())
		return leaf, nil
	}

	res, err := b.finder.Find(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("septree: depth %d: %w", depth, err)
	}
	if res.Trivial {
		if len(res.Components) < 2 {
			return leaf, nil
		}
		return b.componentSplit(ctx, g, res.Components, depth, tokens)
	}

	h1 := core.InducedSubgraph(g, res.Component1)
	h2 := core.InducedSubgraph(g, res.Component2)
	n := g.VertexCount()
	if h1.EdgeCount() == 0 || h2.EdgeCount() == 0 || h1.VertexCount() >= n || h2.VertexCount() >= n {
		b.logger.Debug("degenerate split",
			"depth", depth, "vertices", n,
			"side1", h1.VertexCount(), "side2", h2.VertexCount(),
			"edges1", h1.EdgeCount(), "edges2", h2.EdgeCount())
		return leaf, nil
	}

	left, right, err := b.children(ctx, h1, h2, depth+1, tokens)
	if err != nil {
		return nil, err
	}

	return &Node{
		Separator: res.Separator,
		Left:      left,
		Right:     right,
		Nodes:     left.Nodes.Union(right.Nodes),
		Depth:     depth,
	}, nil
}

// componentSplit returns an internal node with an empty separator whose
// sides are two groups of whole components. Components are taken costliest
// first (stable) and each goes to the side with the lower cost, then the
// fewer vertices, so both sides are non-empty and strictly smaller than g.
func (b *Builder) componentSplit(ctx context.Context, g *core.Graph, comps []core.VertexSet, depth int, tokens chan struct{}) (*Node, error) {
	order := make([]int, len(comps))
	costs := make([]float64, len(comps))
	for i, c := range comps {
		order[i] = i
		costs[i] = g.CostOf(c)
	}
	sort.SliceStable(order, func(i, j int) bool { return costs[order[i]] > costs[order[j]] })

	sides := [2]core.VertexSet{core.NewVertexSet(), core.NewVertexSet()}
	var sideCost [2]float64
	for _, i := range order {
		k := 0
		if sideCost[1] < sideCost[0] || (sideCost[1] == sideCost[0] && sides[1].Len() < sides[0].Len()) {
			k = 1
		}
		for id := range comps[i] {
			sides[k].Add(id)
		}
		sideCost[k] += costs[i]
	}
	b.logger.Debug("component split",
		"depth", depth, "components", len(comps),
		"side1", sides[0].Len(), "side2", sides[1].Len())

	left, right, err := b.children(ctx,
		core.InducedSubgraph(g, sides[0]), core.InducedSubgraph(g, sides[1]), depth+1, tokens)
	if err != nil {
		return nil, err
	}

	return &Node{
		Separator: core.NewVertexSet(),
		Left:      left,
		Right:     right,
		Nodes:     left.Nodes.Union(right.Nodes),
		Depth:     depth,
	}, nil
}

// children builds both subtrees, handing the left one to a new goroutine
// when a token is free.
func (b *Builder) children(ctx context.Context, h1, h2 *core.Graph, depth int, tokens chan struct{}) (*Node, *Node, error) {
	select {
	case tokens <- struct{}{}:
	default:
		left, err := b.build(ctx, h1, depth, tokens)
		if err != nil {
			return nil, nil, err
		}
		right, err := b.build(ctx, h2, depth, tokens)
		if err != nil {
			return nil, nil, err
		}
		return left, right, nil
	}

	var left, right *Node
	eg, ectx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer func() { <-tokens }()
		var err error
		left, err = b.build(ectx, h1, depth, tokens)
		return err
	})
	eg.Go(func() error {
		var err error
		right, err = b.build(ectx, h2, depth, tokens)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}

	return left, right, nil
}
