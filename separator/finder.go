package separator

import (
	"context"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/ndissect/core"
	"github.com/katalvlaran/ndissect/oracle"
)

// Finder is a configured SeparatorFinder. It holds no per-call state and is
// safe for concurrent use.
type Finder struct {
	oracle      oracle.Graph
	mode        Mode
	checkPlanar bool
	logger      *log.Logger
}

// NewFinder applies opts over the defaults (oracle.Native, ModeLevelCount,
// no planarity check, log.Default()).
func NewFinder(opts ...Option) (*Finder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Finder{
		oracle:      o.oracle,
		mode:        o.mode,
		checkPlanar: o.checkPlanar,
		logger:      o.logger,
	}, nil
}

// Mode returns the configured critical-level rule.
func (f *Finder) Mode() Mode { return f.mode }

// Find computes one split of g.
//
// Implementation:
//   - Stage 1: components and their costs. If no component costs more than
//     2/3 of g's total cost, no component needs a separator and the result
//     is Trivial; Components then lets the caller split g between them.
//   - Stage 2: the costliest component is the target (ties: smallest vertex ID).
//   - Stage 3: BFS levels from the target's smallest vertex ID.
//   - Stage 4: critical level l1, then the bounding levels l0 and l2.
//   - Stage 5: the separator is level l1; Component1 = levels ≤ l1,
//     Component2 = levels > l1 plus the separator. Vertices outside the target
//     join whichever side is cheaper at that point (ties to Component2).
//
// Empty and single-vertex graphs, and graphs of zero total cost, are trivial.
//
// Errors: ErrGraphNil, ErrInvalidInput (planarity check), wrapped oracle
// errors, ctx.Err().
//
// Complexity: O(V + E) plus oracle cost.
func (f *Finder) Find(ctx context.Context, g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.checkPlanar {
		if err := f.oracle.CheckPlanar(g); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	all := g.VertexSet()
	res := &Result{TotalCost: g.TotalCost()}
	if all.Len() <= 1 {
		return trivial(res, all), nil
	}

	// Stage 1–2: component costs and target selection.
	comps, err := f.oracle.ConnectedComponents(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("separator: components: %w", err)
	}
	res.Components = comps
	if res.TotalCost == 0 {
		return trivial(res, all), nil
	}
	target, balanced := -1, true
	for i, c := range comps {
		cost := g.CostOf(c)
		if 3*cost > 2*res.TotalCost {
			balanced = false
		}
		if target < 0 || cost > res.TargetCost {
			target, res.TargetCost = i, cost
		}
	}
	if balanced {
		return trivial(res, all), nil
	}
	tc := comps[target]

	// Stage 3: BFS levels inside the target.
	res.Root = tc.Sorted()[0]
	lv, err := f.oracle.BFSTree(ctx, g, res.Root)
	if err != nil {
		return nil, fmt.Errorf("separator: bfs from %q: %w", res.Root, err)
	}
	res.LevelSizes = lv.Sizes

	// Stage 4: critical level and bounds.
	weights, err := f.levelWeights(g, lv)
	if err != nil {
		return nil, err
	}
	res.L1 = criticalLevel(weights, res.TargetCost/2)
	k := 0
	for l := 0; l <= res.L1; l++ {
		k += lv.Sizes[l]
	}
	res.L0 = lowerLevel(lv.Sizes, res.L1, k)
	res.L2 = upperLevel(lv.Sizes, res.L1, tc.Len()-k)

	// Stage 5: separator and the two overlapping sides.
	res.Separator = core.NewVertexSet()
	res.Component1 = core.NewVertexSet()
	res.Component2 = core.NewVertexSet()
	for id, d := range lv.Depth {
		switch {
		case d == res.L1:
			res.Separator.Add(id)
			res.Component1.Add(id)
			res.Component2.Add(id)
		case d < res.L1:
			res.Component1.Add(id)
		default:
			res.Component2.Add(id)
		}
	}
	cost1, cost2 := g.CostOf(res.Component1), g.CostOf(res.Component2)
	for i, c := range comps {
		if i == target {
			continue
		}
		cc := g.CostOf(c)
		if cost1 < cost2 {
			for id := range c {
				res.Component1.Add(id)
			}
			cost1 += cc
		} else {
			for id := range c {
				res.Component2.Add(id)
			}
			cost2 += cc
		}
	}

	f.logger.Debug("separator split",
		"mode", f.mode,
		"vertices", all.Len(),
		"root", res.Root,
		"levels", len(lv.Sizes),
		"l0", res.L0, "l1", res.L1, "l2", res.L2,
		"separator", res.Separator.Len(),
		"cost1", cost1, "cost2", cost2,
	)

	return res, nil
}

// trivial fills res as the non-splitting result over all.
func trivial(res *Result, all core.VertexSet) *Result {
	res.Trivial = true
	res.Component1 = all
	res.Separator = core.NewVertexSet()
	res.Component2 = core.NewVertexSet()
	res.TargetCost = res.TotalCost

	return res
}

// levelWeights returns the per-level quantity accumulated by the mode:
// vertex counts (ModeLevelCount) or vertex costs (ModeLevelCost).
func (f *Finder) levelWeights(g *core.Graph, lv *oracle.Levels) ([]float64, error) {
	w := make([]float64, len(lv.Sizes))
	if f.mode == ModeLevelCount {
		for l, s := range lv.Sizes {
			w[l] = float64(s)
		}
		return w, nil
	}
	for id, d := range lv.Depth {
		c, err := g.Cost(id)
		if err != nil {
			return nil, fmt.Errorf("separator: %w", err)
		}
		w[d] += c
	}

	return w, nil
}

// criticalLevel returns the first level at which the running sum of weights
// exceeds half, or the deepest level when it never does.
func criticalLevel(weights []float64, half float64) int {
	var sum float64
	for l, w := range weights {
		if sum+w > half {
			return l
		}
		sum += w
	}

	return len(weights) - 1
}

// lowerLevel returns the largest l ≤ l1 with sizes[l] + 2(l1−l) ≤ 2√k,
// falling back to l1.
func lowerLevel(sizes []int, l1, k int) int {
	bound := 2 * math.Sqrt(float64(k))
	for l := l1; l >= 0; l-- {
		if float64(sizes[l]+2*(l1-l)) <= bound {
			return l
		}
	}

	return l1
}

// upperLevel returns the smallest l > l1 with sizes[l] + 2(l−l1−1) ≤ 2√rest,
// falling back to l1+1.
func upperLevel(sizes []int, l1, rest int) int {
	if rest < 0 {
		rest = 0
	}
	bound := 2 * math.Sqrt(float64(rest))
	for l := l1 + 1; l < len(sizes); l++ {
		if float64(sizes[l]+2*(l-l1-1)) <= bound {
			return l
		}
	}

	return l1 + 1
}
