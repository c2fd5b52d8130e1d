package chart

import (
	"errors"
	"image/color"
	"testing"
)

func TestAddSeriesValidation(t *testing.T) {
	p := New("t", "x", "y")

	if err := p.AddSeries("a", nil, nil, LineStyle{}); err == nil {
		t.Error("empty series accepted")
	}
	if err := p.AddSeries("a", []float64{1, 2}, []float64{1}, LineStyle{}); err == nil {
		t.Error("mismatched lengths accepted")
	}
	if err := p.AddSeries("a", []float64{1, 2}, []float64{3, 4}, LineStyle{}); err != nil {
		t.Fatalf("valid series rejected: %v", err)
	}
	if err := p.AddSeries("a", []float64{1, 2}, []float64{3, 4}, LineStyle{}); err == nil {
		t.Error("duplicate label accepted")
	}
	if err := p.FillToZero("a", []float64{1, 2}, []float64{3, 4}, color.Black); err == nil {
		t.Error("fill label colliding with series label accepted")
	}
}

func TestDrawWithoutSeries(t *testing.T) {
	p := New("t", "x", "y")
	c, err := NewRaster(100, 80, 72)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	if err := p.Draw(c); !errors.Is(err, ErrNoSeries) {
		t.Errorf("Draw on empty plot: err = %v, want ErrNoSeries", err)
	}
}

func TestDrawMarksPixels(t *testing.T) {
	p := New("title", "x", "y", WithXRange(0, 1), WithYRange(0, 1))
	if err := p.AddSeries("diag", []float64{0, 1}, []float64{0, 1},
		LineStyle{Color: color.NRGBA{R: 255, A: 255}, Width: 2}); err != nil {
		t.Fatalf("AddSeries: %v", err)
	}

	c, err := NewRaster(200, 150, 72)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	if err := p.Draw(c); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	// The canvas must no longer be blank white.
	pm := c.Pixmap()
	touched := 0
	for y := 0; y < pm.Height(); y += 2 {
		for x := 0; x < pm.Width(); x += 2 {
			px := pm.GetPixel(x, y)
			if px.R < 0.99 || px.G < 0.99 || px.B < 0.99 {
				touched++
			}
		}
	}
	if touched < 50 {
		t.Errorf("only %d non-white probe pixels after Draw", touched)
	}
}

func TestRasterVerticalText(t *testing.T) {
	c, err := NewRaster(100, 100, 72)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	c.Text("variance", 50, 50, TextStyle{
		Color: color.Black, Size: 12, AX: 0.5, AY: 0.5, Vertical: true,
	})

	pm := c.Pixmap()
	touched := 0
	for y := 0; y < pm.Height(); y++ {
		for x := 0; x < pm.Width(); x++ {
			px := pm.GetPixel(x, y)
			if px.R < 0.9 {
				touched++
			}
		}
	}
	if touched == 0 {
		t.Error("vertical text drew no pixels")
	}
}

func TestSurfaceValidation(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1}
	good := [][]float64{{1, 2, 3}, {4, 5, 6}}

	if _, err := NewSurface("t", "x", "y", "z", x, y, good); err != nil {
		t.Fatalf("valid surface rejected: %v", err)
	}
	if _, err := NewSurface("t", "x", "y", "z", x, y, [][]float64{{1, 2, 3}}); err == nil {
		t.Error("row-count mismatch accepted")
	}
	if _, err := NewSurface("t", "x", "y", "z", x, y, [][]float64{{1, 2}, {3, 4}}); err == nil {
		t.Error("row-length mismatch accepted")
	}
	if _, err := NewSurface("t", "x", "y", "z", nil, y, nil); err == nil {
		t.Error("empty x axis accepted")
	}

	s, err := NewSurface("t", "x", "y", "z", x, y, good)
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if err := s.AddLine("l", []float64{0, 1}, []float64{0, 1}, []float64{1}, LineStyle{}); err == nil {
		t.Error("mismatched line lengths accepted")
	}
	if err := s.AddLine("l", []float64{0, 1}, []float64{0, 1}, []float64{1, 2}, LineStyle{}); err != nil {
		t.Fatalf("valid line rejected: %v", err)
	}
	if err := s.AddLine("l", []float64{0, 1}, []float64{0, 1}, []float64{1, 2}, LineStyle{}); err == nil {
		t.Error("duplicate line label accepted")
	}
}

func TestSurfaceDrawMarksPixels(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 2}
	z := [][]float64{
		{0.1, 0.2, 0.3, 0.4},
		{0.2, 0.1, 0.2, 0.3},
		{0.3, 0.2, 0.1, 0.2},
	}
	s, err := NewSurface("t", "x", "y", "z", x, y, z, WithView(25, 135), WithColorbar("z"))
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}

	c, err := NewRaster(300, 210, 72)
	if err != nil {
		t.Fatalf("NewRaster: %v", err)
	}
	if err := s.Draw(c); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	pm := c.Pixmap()
	touched := 0
	for yy := 0; yy < pm.Height(); yy += 2 {
		for xx := 0; xx < pm.Width(); xx += 2 {
			px := pm.GetPixel(xx, yy)
			if px.R < 0.99 || px.G < 0.99 || px.B < 0.99 {
				touched++
			}
		}
	}
	if touched < 100 {
		t.Errorf("only %d non-white probe pixels after surface Draw", touched)
	}
}
