package nd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ndissect/core"
	"github.com/katalvlaran/ndissect/matrix"
)

// Laplacian returns D − A + shift·I for g, with rows bound by index (nil
// selects DefaultIndex). The result is symmetric, and positive definite for
// shift > 0.
//
// Errors: ErrGraphNil, ErrInvalidIndex, matrix.ErrInvalidDimensions for an
// empty graph, matrix.ErrNaNInf for a non-finite shift.
func Laplacian(g *core.Graph, index map[string]int, shift float64) (*matrix.Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if math.IsNaN(shift) || math.IsInf(shift, 0) {
		return nil, fmt.Errorf("nd: laplacian shift: %w", matrix.ErrNaNInf)
	}
	n := g.VertexCount()
	if index == nil {
		index = DefaultIndex(g)
	}
	if err := validateIndex(g, index, n); err != nil {
		return nil, err
	}
	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("nd: laplacian: %w", err)
	}

	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("nd: laplacian: %w", err)
		}
		i := index[id]
		if err = L.Set(i, i, float64(d)+shift); err != nil {
			return nil, fmt.Errorf("nd: laplacian: %w", err)
		}
	}
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		if err = L.Set(i, j, -1); err != nil {
			return nil, fmt.Errorf("nd: laplacian: %w", err)
		}
		if err = L.Set(j, i, -1); err != nil {
			return nil, fmt.Errorf("nd: laplacian: %w", err)
		}
	}

	return L, nil
}
