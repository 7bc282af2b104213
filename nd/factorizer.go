package nd

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/ndissect/core"
	"github.com/katalvlaran/ndissect/elim"
	"github.com/katalvlaran/ndissect/matrix"
	"github.com/katalvlaran/ndissect/septree"
)

// Factorizer is a configured NestedDissectionFactorizer.
type Factorizer struct {
	tree   *septree.Builder
	elim   *elim.Eliminator
	logger *log.Logger
}

// NewFactorizer applies opts over the defaults: septree.NewBuilder() and
// elim.NewEliminator() with their own defaults, log.Default().
func NewFactorizer(opts ...Option) (*Factorizer, error) {
	o := options{logger: log.Default()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}
	var err error
	if o.tree == nil {
		if o.tree, err = septree.NewBuilder(septree.WithLogger(o.logger)); err != nil {
			return nil, fmt.Errorf("nd: %w", err)
		}
	}
	if o.elim == nil {
		if o.elim, err = elim.NewEliminator(); err != nil {
			return nil, fmt.Errorf("nd: %w", err)
		}
	}

	return &Factorizer{tree: o.tree, elim: o.elim, logger: o.logger}, nil
}

// Factorize runs a Factorizer made from opts.
func Factorize(ctx context.Context, g *core.Graph, L matrix.Matrix, index map[string]int, opts ...Option) (*Factorization, error) {
	f, err := NewFactorizer(opts...)
	if err != nil {
		return nil, err
	}

	return f.Factorize(ctx, g, L, index)
}

// Factorize eliminates the rows of L bound to g's vertices in the order given
// by g's separator tree. A nil index selects DefaultIndex(g).
//
// Implementation:
//   - Stage 1: validate L and index; build the tree; list its blocks.
//   - Stage 2: gather L over all indexed rows in elimination order.
//   - Stage 3: for each block, eliminate the leading |block| rows of the
//     active matrix and continue on its Schur complement.
//
// Errors: ErrGraphNil, ErrInvalidIndex, elim.ErrInvalidInput,
// elim.ErrSingularBlock, tree errors, ctx.Err().
func (f *Factorizer) Factorize(ctx context.Context, g *core.Graph, L matrix.Matrix, index map[string]int) (*Factorization, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := matrix.ValidateSquareNonNil(L); err != nil {
		return nil, fmt.Errorf("nd: %w: %w", elim.ErrInvalidInput, err)
	}
	if index == nil {
		index = DefaultIndex(g)
	}
	if err := validateIndex(g, index, L.Rows()); err != nil {
		return nil, err
	}

	start := time.Now()
	root, err := f.tree.Build(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("nd: tree: %w", err)
	}
	blocks := septree.EliminationOrder(root)
	out := &Factorization{Tree: root, N: L.Rows(), Steps: make([]Step, 0, len(blocks))}
	if len(blocks) == 0 {
		return out, nil
	}

	act := make([]int, 0, len(index))
	for _, b := range blocks {
		for _, id := range b.Vertices {
			act = append(act, index[id])
		}
	}
	blk, err := matrix.NewBlock(L, act, act)
	if err != nil {
		return nil, fmt.Errorf("nd: %w", err)
	}
	cur, err := blk.Materialize()
	if err != nil {
		return nil, fmt.Errorf("nd: %w", err)
	}

	for k, b := range blocks {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		nf := len(b.Vertices)
		fac, err := f.elim.Eliminate(cur, span(0, nf), span(nf, len(act)))
		if err != nil {
			return nil, fmt.Errorf("nd: step %d (depth %d, %d rows): %w", k, b.Depth, nf, err)
		}
		step := Step{
			Block:  b,
			F:      append([]int(nil), act[:nf]...),
			C:      append([]int(nil), act[nf:]...),
			Matrix: cur,
			Factor: fac,
		}
		out.Steps = append(out.Steps, step)
		f.logger.Debug("eliminated block",
			"step", k, "depth", b.Depth, "separator", b.Separator,
			"f", nf, "c", len(step.C))

		act = act[nf:]
		cur = fac.Schur
	}

	f.logger.Info("nested dissection done",
		"vertices", g.VertexCount(),
		"steps", len(out.Steps),
		"height", septree.Stats(root).Height,
		"elapsed", time.Since(start))

	return out, nil
}

// span returns [lo, hi).
func span(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}

	return out
}
