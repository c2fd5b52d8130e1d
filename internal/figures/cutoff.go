package figures

import (
	"image/color"

	"cosmofig/internal/chart"
	"cosmofig/internal/cosmo"
)

// GeometricCutoff renders the noise-suppression sigmoid S(z) at its
// nominal center together with early/late variants, shading the active
// noise region under the nominal curve and marking the half-activation
// point.
func GeometricCutoff(dir string) error {
	grid, err := cosmo.NewGrid(0, 10, 500)
	if err != nil {
		return err
	}
	nominal := cosmo.NominalCutoff()
	// The figure exists to show the transition is smooth, so guarantee
	// sampling density across it rather than relying on the base step.
	grid = grid.Refine(nominal.ZC-4*nominal.Width, nominal.ZC+4*nominal.Width, 200)

	variants := []struct {
		cutoff cosmo.Cutoff
		label  string
		style  chart.LineStyle
	}{
		{nominal, "Nominal: zc = 4.0, Δz = 0.5",
			chart.LineStyle{Color: colBlue, Width: 2.5}},
		{cosmo.Cutoff{ZC: 3.0, Width: 0.5}, "Early: zc = 3.0, Δz = 0.5",
			chart.LineStyle{Color: color.NRGBA{G: 128, A: 179}, Width: 1.5, Dash: []float64{6, 4}}},
		{cosmo.Cutoff{ZC: 5.0, Width: 0.5}, "Late: zc = 5.0, Δz = 0.5",
			chart.LineStyle{Color: color.NRGBA{R: 255, A: 179}, Width: 1.5, Dash: []float64{6, 4}}},
	}

	p := chart.New(
		"Geometric Noise Suppression Window",
		"Redshift z",
		"Cutoff Function S(z)",
		chart.WithXRange(0, 10),
		chart.WithYRange(-0.05, 1.05),
		chart.WithLegend(chart.UpperRight),
	)
	p.AddHLine(0.5, chart.LineStyle{Color: colGray, Width: 0.8, Dash: []float64{1, 3}})
	p.AddVLine(nominal.ZC, chart.LineStyle{Color: colGray, Width: 0.8, Dash: []float64{1, 3}})

	for i, v := range variants {
		curve, err := cosmo.Sample(grid, v.label, v.cutoff.Eval)
		if err != nil {
			return err
		}
		if i == 0 {
			fill := color.NRGBA{B: 255, A: 51}
			if err := p.FillToZero("Active noise region", curve.Z, curve.V, fill); err != nil {
				return err
			}
		}
		if err := p.AddSeries(curve.Label, curve.Z, curve.V, v.style); err != nil {
			return err
		}
	}

	p.Annotate("S(zc) = 0.5", nominal.ZC, 0.5, nominal.ZC+1, 0.65)

	return writePair(dir, "figura2_cutoff_geometrico", stdW, stdH, p)
}
