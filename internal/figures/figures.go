// Package figures defines the three preprint figures and writes each
// one as a vector PDF and a raster PNG with fixed basenames.
package figures

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"cosmofig/internal/chart"
)

// Export geometry. Figure sizes are in points (7 x 4.5 in for the
// curve figures, 10 x 7 in for the surface); PNGs are rasterized at
// publication density.
const (
	exportDPI = 150

	stdW, stdH   = 504.0, 324.0
	wideW, wideH = 720.0, 504.0
)

// Palette shared by the figures.
var (
	colBlack = color.NRGBA{A: 255}
	colBlue  = color.NRGBA{B: 255, A: 255}
	colGreen = color.NRGBA{G: 128, A: 255}
	colRed   = color.NRGBA{R: 255, A: 255}
	colGray  = color.NRGBA{R: 128, G: 128, B: 128, A: 128}
)

type drawable interface {
	Draw(c chart.Canvas) error
}

// writePair runs one draw pass per backend and writes <base>.png and
// <base>.pdf into dir, overwriting existing files.
func writePair(dir, base string, w, h float64, d drawable) error {
	raster, err := chart.NewRaster(w, h, exportDPI)
	if err != nil {
		return err
	}
	if err := d.Draw(raster); err != nil {
		return err
	}
	if err := raster.WritePNG(filepath.Join(dir, base+".png")); err != nil {
		return err
	}

	pdf, err := chart.NewPDF(w, h)
	if err != nil {
		return err
	}
	if err := d.Draw(pdf); err != nil {
		return err
	}
	if err := pdf.WriteFile(filepath.Join(dir, base+".pdf")); err != nil {
		return err
	}

	slog.Debug("figure written", "base", base, "dir", dir)
	return nil
}

// RenderAll regenerates every figure into dir, creating it if needed.
// Figures are independent; the first failure stops the run and is
// returned to the caller.
func RenderAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("figures: creating output directory: %w", err)
	}

	steps := []struct {
		name string
		fn   func(string) error
	}{
		{"equation of state", EquationOfState},
		{"geometric cutoff", GeometricCutoff},
		{"resilience valley", ResilienceValley},
	}
	for _, s := range steps {
		if err := s.fn(dir); err != nil {
			return fmt.Errorf("figures: %s: %w", s.name, err)
		}
		slog.Info("figure generated", "figure", s.name, "dir", dir)
	}
	return nil
}
