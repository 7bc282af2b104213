package nd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/ndissect/core"
	"github.com/katalvlaran/ndissect/elim"
	"github.com/katalvlaran/ndissect/matrix"
	"github.com/katalvlaran/ndissect/septree"
)

// Sentinel errors for nested-dissection factorization.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("nd: graph is nil")

	// ErrInvalidIndex is returned when the vertex→row index is not an
	// injective map of every vertex into the rows of L.
	ErrInvalidIndex = errors.New("nd: invalid vertex index")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("nd: invalid option supplied")
)

// Step is one block elimination.
type Step struct {
	// Block is the tree block eliminated by this step.
	Block septree.Block

	// F and C are global row indices of L: the eliminated rows and the rows
	// still active afterwards.
	F, C []int

	// Matrix is the active matrix before the step, in F-then-C order.
	Matrix *matrix.Dense

	// Factor is the elimination of Matrix with local F = [0,|F|).
	Factor *elim.Factorization
}

// Factorization is the full sequence of steps for one graph.
type Factorization struct {
	Tree  *septree.Node
	Steps []Step

	// N is the order of L; Solve expects vectors of this length.
	N int
}

// Option configures a Factorizer.
type Option func(*options)

type options struct {
	tree   *septree.Builder
	elim   *elim.Eliminator
	logger *log.Logger
	err    error
}

// WithTreeBuilder sets the separator tree builder.
func WithTreeBuilder(b *septree.Builder) Option {
	return func(o *options) {
		if b == nil {
			o.err = fmt.Errorf("%w: tree builder is nil", ErrOptionViolation)
			return
		}
		o.tree = b
	}
}

// WithEliminator sets the block eliminator.
func WithEliminator(e *elim.Eliminator) Option {
	return func(o *options) {
		if e == nil {
			o.err = fmt.Errorf("%w: eliminator is nil", ErrOptionViolation)
			return
		}
		o.elim = e
	}
}

// WithLogger sets the logger for per-step (debug) and summary (info) output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// DefaultIndex maps each vertex to its position in g.Vertices().
func DefaultIndex(g *core.Graph) map[string]int {
	ids := g.Vertices()
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	return idx
}

// validateIndex checks that index maps exactly the vertices of g,
// injectively, into [0,n).
func validateIndex(g *core.Graph, index map[string]int, n int) error {
	if len(index) != g.VertexCount() {
		return fmt.Errorf("%w: %d entries for %d vertices", ErrInvalidIndex, len(index), g.VertexCount())
	}
	used := make(map[int]string, len(index))
	for _, id := range g.Vertices() {
		row, ok := index[id]
		if !ok {
			return fmt.Errorf("%w: vertex %q has no row", ErrInvalidIndex, id)
		}
		if row < 0 || row >= n {
			return fmt.Errorf("%w: vertex %q row %d not in [0,%d)", ErrInvalidIndex, id, row, n)
		}
		if other, dup := used[row]; dup {
			return fmt.Errorf("%w: row %d shared by %q and %q", ErrInvalidIndex, row, other, id)
		}
		used[row] = id
	}

	return nil
}
