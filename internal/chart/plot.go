package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrNoSeries is returned when a plot is drawn with nothing on it.
var ErrNoSeries = errors.New("chart: plot has no series")

// LegendLoc selects the legend corner.
type LegendLoc int

// Legend corners.
const (
	UpperRight LegendLoc = iota
	UpperLeft
)

// Option configures a Plot during creation.
type Option func(*Plot)

// WithXRange fixes the x axis limits instead of deriving them from the
// data.
func WithXRange(lo, hi float64) Option {
	return func(p *Plot) { p.xlo, p.xhi, p.xset = lo, hi, true }
}

// WithYRange fixes the y axis limits.
func WithYRange(lo, hi float64) Option {
	return func(p *Plot) { p.ylo, p.yhi, p.yset = lo, hi, true }
}

// WithLegend moves the legend to the given corner.
func WithLegend(loc LegendLoc) Option {
	return func(p *Plot) { p.legendLoc = loc }
}

type series struct {
	label string
	x, y  []float64
	st    LineStyle
}

type refLine struct {
	at float64
	st LineStyle
}

type fillRegion struct {
	label string
	x, y  []float64
	col   color.Color
}

type note struct {
	text       string
	atX, atY   float64 // arrow tip, data coordinates
	textX      float64 // text position, data coordinates
	textY      float64
}

// Plot is a 2D line figure: titled axes with ticks and grid lines,
// overlaid series, reference lines, filled regions, a legend and
// arrow annotations. Construct with New, populate, then Draw onto one
// or more canvases.
type Plot struct {
	title, xlabel, ylabel string

	xlo, xhi, ylo, yhi float64
	xset, yset         bool

	series    []series
	hlines    []refLine
	vlines    []refLine
	fills     []fillRegion
	notes     []note
	legendLoc LegendLoc
}

// New creates an empty plot.
func New(title, xlabel, ylabel string, opts ...Option) *Plot {
	p := &Plot{title: title, xlabel: xlabel, ylabel: ylabel}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AddSeries overlays a labeled curve. Labels identify legend entries
// and must be unique within the plot.
func (p *Plot) AddSeries(label string, x, y []float64, st LineStyle) error {
	if len(x) == 0 {
		return fmt.Errorf("chart: series %q has no samples", label)
	}
	if len(x) != len(y) {
		return fmt.Errorf("chart: series %q has mismatched lengths %d and %d", label, len(x), len(y))
	}
	if p.hasLabel(label) {
		return fmt.Errorf("chart: duplicate series label %q", label)
	}
	p.series = append(p.series, series{label: label, x: x, y: y, st: st})
	return nil
}

// AddHLine draws a horizontal reference line across the plot.
func (p *Plot) AddHLine(y float64, st LineStyle) {
	p.hlines = append(p.hlines, refLine{at: y, st: st})
}

// AddVLine draws a vertical reference line across the plot.
func (p *Plot) AddVLine(x float64, st LineStyle) {
	p.vlines = append(p.vlines, refLine{at: x, st: st})
}

// FillToZero shades the region between a curve and y = 0. A non-empty
// label adds a legend entry.
func (p *Plot) FillToZero(label string, x, y []float64, col color.Color) error {
	if len(x) < 2 || len(x) != len(y) {
		return fmt.Errorf("chart: fill region %q needs matched samples", label)
	}
	if label != "" && p.hasLabel(label) {
		return fmt.Errorf("chart: duplicate series label %q", label)
	}
	p.fills = append(p.fills, fillRegion{label: label, x: x, y: y, col: col})
	return nil
}

// Annotate places text at (textX, textY) with an arrow pointing to
// (atX, atY), all in data coordinates.
func (p *Plot) Annotate(text string, atX, atY, textX, textY float64) {
	p.notes = append(p.notes, note{text: text, atX: atX, atY: atY, textX: textX, textY: textY})
}

func (p *Plot) hasLabel(label string) bool {
	for _, s := range p.series {
		if s.label == label {
			return true
		}
	}
	for _, f := range p.fills {
		if f.label == label {
			return true
		}
	}
	return false
}

// Layout constants, in points.
const (
	marginLeft   = 50.0
	marginRight  = 12.0
	marginTop    = 28.0
	marginBottom = 40.0

	titleSize  = 13.0
	labelSize  = 12.0
	tickSize   = 10.0
	legendSize = 10.0
	noteSize   = 11.0
)

var (
	frameColor = color.NRGBA{A: 255}
	gridColor  = color.NRGBA{R: 128, G: 128, B: 128, A: 77}
	tickColor  = color.NRGBA{A: 255}
)

// Draw renders the plot onto the canvas.
func (p *Plot) Draw(c Canvas) error {
	if len(p.series) == 0 {
		return ErrNoSeries
	}

	w, h := c.Size()
	xlo, xhi, ylo, yhi := p.limits()
	if xhi <= xlo || yhi <= ylo {
		return fmt.Errorf("chart: degenerate axis range [%g, %g] x [%g, %g]", xlo, xhi, ylo, yhi)
	}

	px := func(x float64) float64 {
		return marginLeft + (x-xlo)/(xhi-xlo)*(w-marginLeft-marginRight)
	}
	py := func(y float64) float64 {
		return h - marginBottom - (y-ylo)/(yhi-ylo)*(h-marginTop-marginBottom)
	}

	xticks := ticks(xlo, xhi, 6)
	yticks := ticks(ylo, yhi, 6)

	// Grid behind everything else.
	gridStyle := LineStyle{Color: gridColor, Width: 0.5, Dash: []float64{2, 3}}
	for _, t := range xticks {
		c.Line([]Point{{px(t), py(ylo)}, {px(t), py(yhi)}}, gridStyle)
	}
	for _, t := range yticks {
		c.Line([]Point{{px(xlo), py(t)}, {px(xhi), py(t)}}, gridStyle)
	}

	for _, f := range p.fills {
		pts := make([]Point, 0, len(f.x)+2)
		for i := range f.x {
			pts = append(pts, Point{px(f.x[i]), py(f.y[i])})
		}
		pts = append(pts, Point{px(f.x[len(f.x)-1]), py(0)}, Point{px(f.x[0]), py(0)})
		c.Fill(pts, f.col)
	}

	for _, l := range p.hlines {
		c.Line([]Point{{px(xlo), py(l.at)}, {px(xhi), py(l.at)}}, l.st)
	}
	for _, l := range p.vlines {
		c.Line([]Point{{px(l.at), py(ylo)}, {px(l.at), py(yhi)}}, l.st)
	}

	for _, s := range p.series {
		pts := make([]Point, len(s.x))
		for i := range s.x {
			pts[i] = Point{px(s.x[i]), py(s.y[i])}
		}
		c.Line(pts, s.st)
	}

	p.drawFrame(c, px, py, xlo, xhi, ylo, yhi, xticks, yticks)
	p.drawLegend(c, w)

	for _, n := range p.notes {
		p.drawNote(c, n, px, py)
	}
	return nil
}

// limits returns the axis ranges, deriving unset ones from the data
// with a 5% pad.
func (p *Plot) limits() (xlo, xhi, ylo, yhi float64) {
	xlo, xhi, ylo, yhi = p.xlo, p.xhi, p.ylo, p.yhi
	if p.xset && p.yset {
		return
	}
	dxlo, dxhi := math.Inf(1), math.Inf(-1)
	dylo, dyhi := math.Inf(1), math.Inf(-1)
	for _, s := range p.series {
		for i := range s.x {
			dxlo = math.Min(dxlo, s.x[i])
			dxhi = math.Max(dxhi, s.x[i])
			dylo = math.Min(dylo, s.y[i])
			dyhi = math.Max(dyhi, s.y[i])
		}
	}
	if !p.xset {
		pad := 0.05 * (dxhi - dxlo)
		xlo, xhi = dxlo-pad, dxhi+pad
	}
	if !p.yset {
		pad := 0.05 * (dyhi - dylo)
		if pad == 0 {
			pad = 1
		}
		ylo, yhi = dylo-pad, dyhi+pad
	}
	return
}

func (p *Plot) drawFrame(c Canvas, px, py func(float64) float64, xlo, xhi, ylo, yhi float64, xticks, yticks []float64) {
	_, h := c.Size()
	frame := LineStyle{Color: frameColor, Width: 1}
	x0, x1 := px(xlo), px(xhi)
	y0, y1 := py(ylo), py(yhi)
	c.Line([]Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}, frame)

	tickStyle := LineStyle{Color: tickColor, Width: 0.8}
	for _, t := range xticks {
		c.Line([]Point{{px(t), y0}, {px(t), y0 + 4}}, tickStyle)
		c.Text(formatTick(t), px(t), y0+6, TextStyle{Color: tickColor, Size: tickSize, AX: 0.5, AY: 0})
	}
	for _, t := range yticks {
		c.Line([]Point{{x0 - 4, py(t)}, {x0, py(t)}}, tickStyle)
		c.Text(formatTick(t), x0-6, py(t), TextStyle{Color: tickColor, Size: tickSize, AX: 1, AY: 0.5})
	}

	mid := (x0 + x1) / 2
	c.Text(p.title, mid, marginTop-10, TextStyle{Color: tickColor, Size: titleSize, AX: 0.5, AY: 1})
	c.Text(p.xlabel, mid, h-marginBottom+20, TextStyle{Color: tickColor, Size: labelSize, AX: 0.5, AY: 0})
	c.Text(p.ylabel, 12, (y0+y1)/2, TextStyle{Color: tickColor, Size: labelSize, AX: 0.5, AY: 0.5, Vertical: true})
}

func (p *Plot) drawLegend(c Canvas, w float64) {
	type entry struct {
		label string
		st    LineStyle
		fill  color.Color
	}
	var entries []entry
	for _, s := range p.series {
		entries = append(entries, entry{label: s.label, st: s.st})
	}
	for _, f := range p.fills {
		if f.label != "" {
			entries = append(entries, entry{label: f.label, fill: f.col})
		}
	}
	if len(entries) == 0 {
		return
	}

	maxW := 0.0
	for _, e := range entries {
		maxW = math.Max(maxW, c.TextWidth(e.label, legendSize))
	}
	const (
		sample = 18.0
		gap    = 5.0
		rowH   = 14.0
		pad    = 6.0
	)
	boxW := pad + sample + gap + maxW + pad
	boxH := pad + rowH*float64(len(entries)) + 2

	var x0 float64
	switch p.legendLoc {
	case UpperLeft:
		x0 = marginLeft + 8
	default:
		x0 = w - marginRight - 8 - boxW
	}
	y0 := marginTop + 8

	c.Fill([]Point{{x0, y0}, {x0 + boxW, y0}, {x0 + boxW, y0 + boxH}, {x0, y0 + boxH}},
		color.NRGBA{R: 255, G: 255, B: 255, A: 242})
	c.Line([]Point{{x0, y0}, {x0 + boxW, y0}, {x0 + boxW, y0 + boxH}, {x0, y0 + boxH}, {x0, y0}},
		LineStyle{Color: color.NRGBA{R: 160, G: 160, B: 160, A: 255}, Width: 0.8})

	for i, e := range entries {
		cy := y0 + pad + rowH*float64(i) + rowH/2 - 2
		if e.fill != nil {
			c.Fill([]Point{
				{x0 + pad, cy - 4}, {x0 + pad + sample, cy - 4},
				{x0 + pad + sample, cy + 4}, {x0 + pad, cy + 4},
			}, e.fill)
		} else {
			c.Line([]Point{{x0 + pad, cy}, {x0 + pad + sample, cy}}, e.st)
		}
		c.Text(e.label, x0+pad+sample+gap, cy, TextStyle{Color: tickColor, Size: legendSize, AX: 0, AY: 0.5})
	}
}

func (p *Plot) drawNote(c Canvas, n note, px, py func(float64) float64) {
	tx, ty := px(n.textX), py(n.textY)
	ax, ay := px(n.atX), py(n.atY)
	c.Text(n.text, tx, ty, TextStyle{Color: tickColor, Size: noteSize, AX: 0, AY: 0.5})

	// Arrow from just left of the text to the target point.
	sx, sy := tx-3, ty
	dx, dy := ax-sx, ay-sy
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return
	}
	ux, uy := dx/dist, dy/dist
	c.Line([]Point{{sx, sy}, {ax, ay}}, LineStyle{Color: tickColor, Width: 1.2})

	// Arrowhead.
	const head = 5.0
	bx, by := ax-ux*head, ay-uy*head
	nx, ny := -uy, ux
	c.Fill([]Point{
		{ax, ay},
		{bx + nx*head/2, by + ny*head/2},
		{bx - nx*head/2, by - ny*head/2},
	}, tickColor)
}
