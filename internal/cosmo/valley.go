package cosmo

import (
	"math"
	"math/rand"
)

// ValleyModel is the phenomenological attractor-variance landscape
// over the (tau*H0, omega) plane: a base variance with an inverted
// Gaussian valley in R = tau*H0*omega, plus a penalty outside the
// physically reasonable parameter box.
type ValleyModel struct {
	Center  float64 // valley center in R
	Width   float64 // valley width in R
	Base    float64 // variance far from the valley
	Depth   float64 // variance reduction at the valley center
	Penalty float64 // added variance for extreme parameters
	Floor   float64 // lower clamp on the returned variance
}

// DefaultValley returns the landscape at its published parameters.
func DefaultValley() ValleyModel {
	return ValleyModel{
		Center:  2.0,
		Width:   3.0,
		Base:    0.15,
		Depth:   0.12,
		Penalty: 0.1,
		Floor:   0.01,
	}
}

// Variance returns the deterministic attractor variance at a point.
func (m ValleyModel) Variance(tauH0, omega float64) float64 {
	r := Resilience(tauH0, omega)
	d := (r - m.Center) / m.Width
	v := m.Base - m.Depth*math.Exp(-d*d)
	if tauH0 < 0.3 || tauH0 > 6 {
		v += m.Penalty
	}
	if omega < 0.5 || omega > 6 {
		v += m.Penalty
	}
	return math.Max(m.Floor, v)
}

// jitterSeed fixes the pseudo-random jitter so that reruns produce
// numerically identical surfaces.
const jitterSeed = 42

// jitterSigma is the standard deviation of the per-sample jitter added
// by ValleySurface.
const jitterSigma = 0.01

// ValleySurface evaluates the variance landscape over the full
// parameter grid and returns one row per omega sample, each of length
// tau.Len(). A small Gaussian jitter from a fixed-seed source is added
// in row-major order, so two calls with the same grids return
// identical matrices.
func (m ValleyModel) ValleySurface(tau, omega Grid) ([][]float64, error) {
	if tau.Len() == 0 || omega.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	rng := rand.New(rand.NewSource(jitterSeed))
	rows := make([][]float64, omega.Len())
	for i, o := range omega.Values() {
		row := make([]float64, tau.Len())
		for j, t := range tau.Values() {
			v := m.Variance(t, o) + jitterSigma*rng.NormFloat64()
			row[j] = math.Max(m.Floor, v)
		}
		rows[i] = row
	}
	return rows, nil
}
