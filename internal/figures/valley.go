package figures

import (
	"image/color"

	"cosmofig/internal/chart"
	"cosmofig/internal/cosmo"
)

// ResilienceValley renders the attractor-variance landscape over the
// (τH0, ω) plane as a 3D surface, with the optimal line R = 2 drawn on
// top and the stability band R ∈ [0.5, 3.5] hatched on the floor.
func ResilienceValley(dir string) error {
	tau, err := cosmo.NewGrid(0.2, 5.0, 80)
	if err != nil {
		return err
	}
	omega, err := cosmo.NewGrid(0.5, 5.5, 80)
	if err != nil {
		return err
	}

	model := cosmo.DefaultValley()
	variance, err := model.ValleySurface(tau, omega)
	if err != nil {
		return err
	}

	s, err := chart.NewSurface(
		"Resilience Valley: Stability in (τH0, ω) Space",
		"Memory Time τH0",
		"Frequency ω",
		"Variance σ²",
		tau.Values(), omega.Values(), variance,
		chart.WithView(25, 135),
		chart.WithColormap(chart.Viridis().Reversed()),
		chart.WithColorbar("Attractor Variance σ²"),
	)
	if err != nil {
		return err
	}

	// Optimal line: omega = 2/tau keeps R at the valley center. Points
	// whose omega leaves the plotted range are dropped.
	lineTau, err := cosmo.NewGrid(0.3, 4.0, 100)
	if err != nil {
		return err
	}
	var lx, ly, lz []float64
	for _, t := range lineTau.Values() {
		o := model.Center / t
		if o < omega.Min() || o > omega.Max() {
			continue
		}
		lx = append(lx, t)
		ly = append(ly, o)
		lz = append(lz, model.Variance(t, o))
	}
	if err := s.AddLine("R = τH0·ω = 2 (optimal)", lx, ly, lz,
		chart.LineStyle{Color: colRed, Width: 2.5}); err != nil {
		return err
	}

	// Stability band hatched on the floor, one segment per sampled tau.
	bandTau, err := cosmo.NewGrid(0.3, 4.0, 50)
	if err != nil {
		return err
	}
	bandStyle := chart.LineStyle{Color: color.NRGBA{A: 77}, Width: 1}
	for i, t := range bandTau.Values() {
		if i%5 != 0 {
			continue
		}
		lo := cosmo.BandLo / t
		hi := cosmo.BandHi / t
		if lo > omega.Max() || hi < omega.Min() {
			continue
		}
		lo = max(lo, omega.Min())
		hi = min(hi, omega.Max())
		s.AddFloorSegment(t, lo, hi, 0.03, bandStyle)
	}

	return writePair(dir, "figura3_valle_resiliencia", wideW, wideH, s)
}
