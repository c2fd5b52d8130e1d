package figures

import (
	"fmt"
	"image/color"

	"cosmofig/internal/chart"
	"cosmofig/internal/cosmo"
)

// EquationOfState renders the w(z) overlay for every published
// oscillation amplitude, with the A = 0 curve drawn dashed as the LCDM
// reference.
func EquationOfState(dir string) error {
	grid, err := cosmo.NewGrid(0, 2.5, 500)
	if err != nil {
		return err
	}

	labels := []string{"ΛCDM (A = 0)", "A = 0.01", "A = 0.02", "A = 0.03 (max)"}
	colors := []color.Color{colBlack, colBlue, colGreen, colRed}
	if len(labels) != len(cosmo.Amplitudes) {
		return fmt.Errorf("figures: %d labels for %d amplitudes", len(labels), len(cosmo.Amplitudes))
	}

	p := chart.New(
		"Log-Oscillatory Dark Energy (ω = 2.5, zτ = 2.0)",
		"Redshift z",
		"Equation of State w(z)",
		chart.WithXRange(0, 2.5),
		chart.WithYRange(-1.04, -0.96),
		chart.WithLegend(chart.UpperRight),
	)
	p.AddHLine(cosmo.W0, chart.LineStyle{Color: colGray, Width: 0.8, Dash: []float64{1, 3}})

	for i, a := range cosmo.Amplitudes {
		eos := cosmo.DampedOscillator(a)
		curve, err := cosmo.Sample(grid, labels[i], eos.Eval)
		if err != nil {
			return err
		}
		st := chart.LineStyle{Color: colors[i], Width: 2}
		if a == 0 {
			st.Dash = []float64{6, 4}
		}
		if err := p.AddSeries(curve.Label, curve.Z, curve.V, st); err != nil {
			return err
		}
	}

	return writePair(dir, "figura1_wz_amplitudes", stdW, stdH, p)
}
