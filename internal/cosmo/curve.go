package cosmo

// Curve is a sampled function: equal-length domain and value slices
// plus a label identifying the parameter set that produced it. Curves
// are built by Sample, which enforces the length invariant by
// construction.
type Curve struct {
	Z     []float64
	V     []float64
	Label string
}

// Sample evaluates f pointwise over the grid and returns the labeled
// curve. An empty grid fails fast with ErrEmptyGrid so callers never
// render a degenerate plot.
func Sample(g Grid, label string, f func(z float64) float64) (Curve, error) {
	if g.Len() == 0 {
		return Curve{}, ErrEmptyGrid
	}
	zs := g.Values()
	vs := make([]float64, len(zs))
	for i, z := range zs {
		vs[i] = f(z)
	}
	return Curve{Z: zs, V: vs, Label: label}, nil
}
