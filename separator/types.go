package separator

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/ndissect/core"
	"github.com/katalvlaran/ndissect/oracle"
)

// Sentinel errors for separator search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("separator: graph is nil")

	// ErrInvalidInput is returned when the graph violates a checked
	// precondition (planarity under WithPlanarityCheck).
	ErrInvalidInput = errors.New("separator: invalid input")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("separator: invalid option supplied")
)

// Mode selects how the critical level l1 is found.
type Mode int

const (
	// ModeLevelCount accumulates per-level vertex counts against half the
	// target component's cost. This is the classical behavior.
	ModeLevelCount Mode = iota

	// ModeLevelCost accumulates per-level vertex costs instead, so the cut
	// balances cost even when costs are not uniform.
	ModeLevelCost
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLevelCount:
		return "level-count"
	case ModeLevelCost:
		return "level-cost"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "level-count":
		return ModeLevelCount, nil
	case "level-cost":
		return ModeLevelCost, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Result is one separator split.
//
// For a non-trivial result Component1 ∪ Component2 = V(g) and
// Component1 ∩ Component2 = Separator. For a trivial result Component1 holds
// every vertex and Separator/Component2 are empty.
type Result struct {
	Separator  core.VertexSet
	Component1 core.VertexSet
	Component2 core.VertexSet

	// Trivial reports that no single component of g needs a separator.
	Trivial bool

	// Components lists the connected components of g in smallest-ID order.
	// It is set whenever g has at least two vertices; for a trivial result
	// with two or more entries the caller dissects g component-wise.
	Components []core.VertexSet

	// Root is the BFS root inside the target component.
	Root string

	// L0, L1, L2 are the Lipton–Tarjan levels; the cut is taken at L1.
	L0, L1, L2 int

	// LevelSizes[l] is the number of target-component vertices at BFS level l.
	LevelSizes []int

	// TargetCost is the cost of the component that was split; TotalCost is
	// the cost of g.
	TargetCost float64
	TotalCost  float64
}

// Option configures a Finder.
type Option func(*options)

type options struct {
	oracle      oracle.Graph
	mode        Mode
	checkPlanar bool
	logger      *log.Logger
	err         error
}

func defaultOptions() options {
	return options{
		oracle: oracle.Native{},
		mode:   ModeLevelCount,
		logger: log.Default(),
	}
}

// WithGraphOracle injects the connected-component / BFS provider.
// A nil oracle is an ErrOptionViolation.
func WithGraphOracle(o oracle.Graph) Option {
	return func(opts *options) {
		if o == nil {
			opts.err = fmt.Errorf("%w: graph oracle is nil", ErrOptionViolation)
			return
		}
		opts.oracle = o
	}
}

// WithMode selects the critical-level rule.
func WithMode(m Mode) Option {
	return func(opts *options) {
		if m != ModeLevelCount && m != ModeLevelCost {
			opts.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		opts.mode = m
	}
}

// WithPlanarityCheck makes Find reject graphs that fail oracle.Graph.CheckPlanar.
func WithPlanarityCheck(enabled bool) Option {
	return func(opts *options) { opts.checkPlanar = enabled }
}

// WithLogger sets the logger used for per-split debug output.
func WithLogger(l *log.Logger) Option {
	return func(opts *options) {
		if l != nil {
			opts.logger = l
		}
	}
}

// Find runs a Finder built from opts; a convenience for one-off calls.
func Find(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	f, err := NewFinder(opts...)
	if err != nil {
		return nil, err
	}

	return f.Find(ctx, g)
}
