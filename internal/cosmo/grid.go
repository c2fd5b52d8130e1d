package cosmo

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ErrEmptyGrid is returned when a generator is asked to evaluate a
// formula over a grid with no samples.
var ErrEmptyGrid = errors.New("cosmo: empty sampling grid")

// Grid is an ordered sequence of sample positions (redshift or model
// parameter values). A Grid is immutable once constructed; Refine
// returns a new Grid rather than mutating the receiver.
type Grid struct {
	zs []float64
}

// NewGrid returns n evenly spaced samples over [lo, hi], endpoints
// included.
func NewGrid(lo, hi float64, n int) (Grid, error) {
	if n < 2 {
		return Grid{}, fmt.Errorf("cosmo: grid needs at least 2 samples, got %d", n)
	}
	if hi <= lo {
		return Grid{}, fmt.Errorf("cosmo: invalid grid range [%g, %g]", lo, hi)
	}
	return Grid{zs: floats.Span(make([]float64, n), lo, hi)}, nil
}

// Refine returns a copy of the grid with n extra evenly spaced samples
// inserted over [lo, hi], clipped to the grid's own range. The result
// stays sorted. Generators whose figures hinge on a narrow transition
// region use this to guarantee resolution there regardless of the base
// sampling step.
func (g Grid) Refine(lo, hi float64, n int) Grid {
	if g.Len() == 0 || n < 1 || hi <= lo {
		return g
	}
	min, max := g.zs[0], g.zs[g.Len()-1]
	extra := floats.Span(make([]float64, n+1), lo, hi)
	merged := make([]float64, 0, g.Len()+n+1)
	merged = append(merged, g.zs...)
	for _, z := range extra {
		if z >= min && z <= max {
			merged = append(merged, z)
		}
	}
	sort.Float64s(merged)
	return Grid{zs: merged}
}

// Len returns the number of samples.
func (g Grid) Len() int { return len(g.zs) }

// Values returns the samples. The returned slice is shared with the
// grid and must not be modified.
func (g Grid) Values() []float64 { return g.zs }

// Min returns the smallest sample, or 0 for an empty grid.
func (g Grid) Min() float64 {
	if len(g.zs) == 0 {
		return 0
	}
	return g.zs[0]
}

// Max returns the largest sample, or 0 for an empty grid.
func (g Grid) Max() float64 {
	if len(g.zs) == 0 {
		return 0
	}
	return g.zs[len(g.zs)-1]
}
