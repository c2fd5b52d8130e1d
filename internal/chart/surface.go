package chart

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// SurfaceOption configures a Surface during creation.
type SurfaceOption func(*Surface)

// WithView sets the camera elevation and azimuth, in degrees.
func WithView(elev, azim float64) SurfaceOption {
	return func(s *Surface) { s.elev, s.azim = elev, azim }
}

// WithColormap sets the colormap used for the surface quads and the
// colorbar.
func WithColormap(m Colormap) SurfaceOption {
	return func(s *Surface) { s.cmap = m }
}

// WithColorbar adds a labeled colorbar on the right side.
func WithColorbar(label string) SurfaceOption {
	return func(s *Surface) { s.barLabel, s.bar = label, true }
}

type line3 struct {
	label   string
	x, y, z []float64
	st      LineStyle
}

type floorSeg struct {
	x, y1, y2, z float64
	st           LineStyle
}

// Surface renders a scalar field over a 2D parameter grid as a shaded
// 3D surface: grid quads filled back-to-front with colormap colors,
// plus optional overlay polylines, floor segments, a legend and a
// colorbar.
type Surface struct {
	title, xlabel, ylabel, zlabel string

	x, y []float64   // axis samples
	z    [][]float64 // len(y) rows of len(x) values

	elev, azim float64 // degrees
	cmap       Colormap
	bar        bool
	barLabel   string

	lines []line3
	floor []floorSeg
}

// NewSurface creates a surface figure over the given grid. z must hold
// one row per y sample, each of x's length.
func NewSurface(title, xlabel, ylabel, zlabel string, x, y []float64, z [][]float64, opts ...SurfaceOption) (*Surface, error) {
	if len(x) < 2 || len(y) < 2 {
		return nil, fmt.Errorf("chart: surface grid needs at least 2x2 samples, got %dx%d", len(x), len(y))
	}
	if len(z) != len(y) {
		return nil, fmt.Errorf("chart: surface has %d rows, want %d", len(z), len(y))
	}
	for i, row := range z {
		if len(row) != len(x) {
			return nil, fmt.Errorf("chart: surface row %d has %d values, want %d", i, len(row), len(x))
		}
	}
	s := &Surface{
		title: title, xlabel: xlabel, ylabel: ylabel, zlabel: zlabel,
		x: x, y: y, z: z,
		elev: 30, azim: 120,
		cmap: Viridis(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AddLine overlays a labeled 3D polyline, drawn after the surface.
func (s *Surface) AddLine(label string, x, y, z []float64, st LineStyle) error {
	if len(x) < 2 || len(x) != len(y) || len(x) != len(z) {
		return fmt.Errorf("chart: surface line %q needs matched samples", label)
	}
	for _, l := range s.lines {
		if l.label == label {
			return fmt.Errorf("chart: duplicate line label %q", label)
		}
	}
	s.lines = append(s.lines, line3{label: label, x: x, y: y, z: z, st: st})
	return nil
}

// AddFloorSegment draws a line from (x, y1) to (x, y2) at height z,
// used to hatch a region of the parameter plane.
func (s *Surface) AddFloorSegment(x, y1, y2, z float64, st LineStyle) {
	s.floor = append(s.floor, floorSeg{x: x, y1: y1, y2: y2, z: z, st: st})
}

// projector maps data coordinates to screen points.
type projector struct {
	xlo, xhi, ylo, yhi, zlo, zhi float64
	sinAz, cosAz, sinEl, cosEl   float64
	scale, cx, cy                float64
}

// unit normalizes data coordinates into the view box.
func (pr *projector) unit(x, y, z float64) (u, v, w float64) {
	u = (x-pr.xlo)/(pr.xhi-pr.xlo) - 0.5
	v = (y-pr.ylo)/(pr.yhi-pr.ylo) - 0.5
	w = (z-pr.zlo)/(pr.zhi-pr.zlo)*0.5 - 0.25
	return
}

// view rotates a view-box point into screen-plane coordinates plus a
// depth component along the viewing direction.
func (pr *projector) view(u, v, w float64) (sx, sy, depth float64) {
	d := u*pr.cosAz + v*pr.sinAz
	sx = -u*pr.sinAz + v*pr.cosAz
	sy = -d*pr.sinEl + w*pr.cosEl
	depth = d*pr.cosEl + w*pr.sinEl
	return
}

// point projects data coordinates onto the canvas.
func (pr *projector) point(x, y, z float64) (Point, float64) {
	sx, sy, depth := pr.view(pr.unit(x, y, z))
	return Point{X: pr.cx + pr.scale*sx, Y: pr.cy - pr.scale*sy}, depth
}

// Draw renders the surface onto the canvas.
func (s *Surface) Draw(c Canvas) error {
	w, h := c.Size()

	pr := s.newProjector(w, h)
	s.drawBox(c, pr)
	s.drawQuads(c, pr)
	s.drawFloor(c, pr)
	s.drawLines(c, pr)
	s.drawAxes(c, pr)
	s.drawLegend(c)
	if s.bar {
		s.drawColorbar(c, pr)
	}

	c.Text(s.title, w/2, 14, TextStyle{Color: tickColor, Size: titleSize, AX: 0.5, AY: 0})
	return nil
}

func (s *Surface) newProjector(w, h float64) *projector {
	pr := &projector{
		xlo: s.x[0], xhi: s.x[len(s.x)-1],
		ylo: s.y[0], yhi: s.y[len(s.y)-1],
		sinAz: math.Sin(s.azim * math.Pi / 180),
		cosAz: math.Cos(s.azim * math.Pi / 180),
		sinEl: math.Sin(s.elev * math.Pi / 180),
		cosEl: math.Cos(s.elev * math.Pi / 180),
	}

	// z range covers the surface plus overlays.
	pr.zlo, pr.zhi = math.Inf(1), math.Inf(-1)
	for _, row := range s.z {
		for _, v := range row {
			pr.zlo = math.Min(pr.zlo, v)
			pr.zhi = math.Max(pr.zhi, v)
		}
	}
	for _, l := range s.lines {
		for _, v := range l.z {
			pr.zlo = math.Min(pr.zlo, v)
			pr.zhi = math.Max(pr.zhi, v)
		}
	}
	for _, f := range s.floor {
		pr.zlo = math.Min(pr.zlo, f.z)
		pr.zhi = math.Max(pr.zhi, f.z)
	}
	if pr.zhi <= pr.zlo {
		pr.zhi = pr.zlo + 1
	}

	// Fit the padded view box into the drawing area, leaving room for
	// the title and, when present, the colorbar.
	right := 24.0
	if s.bar {
		right = 96
	}
	availX0, availY0 := 30.0, 34.0
	availX1, availY1 := w-right, h-26

	minSX, maxSX := math.Inf(1), math.Inf(-1)
	minSY, maxSY := math.Inf(1), math.Inf(-1)
	const pad = 0.34
	for _, u := range []float64{-0.5 - pad, 0.5 + pad} {
		for _, v := range []float64{-0.5 - pad, 0.5 + pad} {
			for _, ww := range []float64{-0.3, 0.32} {
				sx, sy, _ := pr.view(u, v, ww)
				minSX, maxSX = math.Min(minSX, sx), math.Max(maxSX, sx)
				minSY, maxSY = math.Min(minSY, sy), math.Max(maxSY, sy)
			}
		}
	}
	pr.scale = math.Min((availX1-availX0)/(maxSX-minSX), (availY1-availY0)/(maxSY-minSY))
	pr.cx = (availX0+availX1)/2 - pr.scale*(minSX+maxSX)/2
	pr.cy = (availY0+availY1)/2 + pr.scale*(minSY+maxSY)/2
	return pr
}

// drawBox draws the floor outline and the rear vertical edges.
func (s *Surface) drawBox(c Canvas, pr *projector) {
	st := LineStyle{Color: color.NRGBA{R: 150, G: 150, B: 150, A: 255}, Width: 0.7}
	corners := [4][2]float64{
		{pr.xlo, pr.ylo}, {pr.xhi, pr.ylo}, {pr.xhi, pr.yhi}, {pr.xlo, pr.yhi},
	}
	var pts [5]Point
	for i, cr := range corners {
		pts[i], _ = pr.point(cr[0], cr[1], pr.zlo)
	}
	pts[4] = pts[0]
	c.Line(pts[:], st)

	// Vertical edge at the corner farthest from the camera, where the
	// z ticks live without crossing the surface.
	bx, by := s.backCorner(pr)
	bot, _ := pr.point(bx, by, pr.zlo)
	top, _ := pr.point(bx, by, pr.zhi)
	c.Line([]Point{bot, top}, st)
}

// backCorner returns the floor corner with the smallest depth.
func (s *Surface) backCorner(pr *projector) (x, y float64) {
	best := math.Inf(1)
	for _, cx := range []float64{pr.xlo, pr.xhi} {
		for _, cy := range []float64{pr.ylo, pr.yhi} {
			_, depth := pr.point(cx, cy, pr.zlo)
			if depth < best {
				best = depth
				x, y = cx, cy
			}
		}
	}
	return
}

// drawQuads fills the surface cells back to front.
func (s *Surface) drawQuads(c Canvas, pr *projector) {
	type quad struct {
		pts   [4]Point
		depth float64
		col   color.Color
	}
	quads := make([]quad, 0, (len(s.y)-1)*(len(s.x)-1))
	for i := 0; i < len(s.y)-1; i++ {
		for j := 0; j < len(s.x)-1; j++ {
			var q quad
			zsum := 0.0
			for k, idx := range [4][2]int{{i, j}, {i, j + 1}, {i + 1, j + 1}, {i + 1, j}} {
				zv := s.z[idx[0]][idx[1]]
				zsum += zv
				var d float64
				q.pts[k], d = pr.point(s.x[idx[1]], s.y[idx[0]], zv)
				q.depth += d
			}
			q.depth /= 4
			t := (zsum/4 - pr.zlo) / (pr.zhi - pr.zlo)
			col := nrgba(s.cmap.At(t))
			col.A = 217
			q.col = col
			quads = append(quads, q)
		}
	}
	sort.Slice(quads, func(a, b int) bool { return quads[a].depth < quads[b].depth })
	for _, q := range quads {
		c.Fill(q.pts[:], q.col)
	}
}

func (s *Surface) drawFloor(c Canvas, pr *projector) {
	for _, f := range s.floor {
		a, _ := pr.point(f.x, f.y1, f.z)
		b, _ := pr.point(f.x, f.y2, f.z)
		c.Line([]Point{a, b}, f.st)
	}
}

func (s *Surface) drawLines(c Canvas, pr *projector) {
	for _, l := range s.lines {
		pts := make([]Point, len(l.x))
		for i := range l.x {
			pts[i], _ = pr.point(l.x[i], l.y[i], l.z[i])
		}
		c.Line(pts, l.st)
	}
}

// drawAxes draws tick marks and axis titles along the two near floor
// edges and the rear vertical edge.
func (s *Surface) drawAxes(c Canvas, pr *projector) {
	// x ticks along the y = ylo edge, pushed outward in y.
	out := 0.08 * (pr.yhi - pr.ylo)
	for _, t := range ticks(pr.xlo, pr.xhi, 5) {
		p, _ := pr.point(t, pr.ylo-out, pr.zlo)
		c.Text(formatTick(t), p.X, p.Y, TextStyle{Color: tickColor, Size: tickSize, AX: 0.5, AY: 0.5})
	}
	p, _ := pr.point((pr.xlo+pr.xhi)/2, pr.ylo-3.2*out, pr.zlo)
	c.Text(s.xlabel, p.X, p.Y, TextStyle{Color: tickColor, Size: labelSize, AX: 0.5, AY: 0.5})

	// y ticks along the x = xlo edge.
	outX := 0.08 * (pr.xhi - pr.xlo)
	for _, t := range ticks(pr.ylo, pr.yhi, 5) {
		p, _ := pr.point(pr.xlo-outX, t, pr.zlo)
		c.Text(formatTick(t), p.X, p.Y, TextStyle{Color: tickColor, Size: tickSize, AX: 0.5, AY: 0.5})
	}
	p, _ = pr.point(pr.xlo-3.2*outX, (pr.ylo+pr.yhi)/2, pr.zlo)
	c.Text(s.ylabel, p.X, p.Y, TextStyle{Color: tickColor, Size: labelSize, AX: 0.5, AY: 0.5})

	// z ticks on the rear vertical edge.
	bx, by := s.backCorner(pr)
	for _, t := range ticks(pr.zlo, pr.zhi, 4) {
		p, _ := pr.point(bx, by, t)
		c.Text(formatTick(t), p.X-6, p.Y, TextStyle{Color: tickColor, Size: tickSize, AX: 1, AY: 0.5})
	}
	top, _ := pr.point(bx, by, pr.zhi)
	c.Text(s.zlabel, top.X-6, top.Y-14, TextStyle{Color: tickColor, Size: labelSize, AX: 1, AY: 0.5})
}

func (s *Surface) drawLegend(c Canvas) {
	if len(s.lines) == 0 {
		return
	}
	const (
		sample = 18.0
		gap    = 5.0
		rowH   = 14.0
	)
	x0, y0 := 36.0, 30.0
	for i, l := range s.lines {
		cy := y0 + rowH*float64(i)
		c.Line([]Point{{x0, cy}, {x0 + sample, cy}}, l.st)
		c.Text(l.label, x0+sample+gap, cy, TextStyle{Color: tickColor, Size: legendSize, AX: 0, AY: 0.5})
	}
}

// drawColorbar renders a vertical gradient bar keyed to the z range.
func (s *Surface) drawColorbar(c Canvas, pr *projector) {
	w, h := c.Size()
	x0 := w - 70
	barW := 16.0
	y0, y1 := h*0.25, h*0.75

	const strips = 64
	for i := 0; i < strips; i++ {
		t0 := float64(i) / strips
		t1 := float64(i+1) / strips
		// Strip 0 is at the bottom of the bar.
		ya := y1 - (y1-y0)*t1
		yb := y1 - (y1-y0)*t0
		c.Fill([]Point{{x0, ya}, {x0 + barW, ya}, {x0 + barW, yb}, {x0, yb}}, s.cmap.At(t0))
	}
	c.Line([]Point{{x0, y0}, {x0 + barW, y0}, {x0 + barW, y1}, {x0, y1}, {x0, y0}},
		LineStyle{Color: frameColor, Width: 0.8})

	for _, f := range []struct {
		t float64
		v float64
	}{{0, pr.zlo}, {0.5, (pr.zlo + pr.zhi) / 2}, {1, pr.zhi}} {
		ty := y1 - (y1-y0)*f.t
		c.Line([]Point{{x0 + barW, ty}, {x0 + barW + 3, ty}}, LineStyle{Color: frameColor, Width: 0.8})
		c.Text(formatTick(f.v), x0+barW+5, ty, TextStyle{Color: tickColor, Size: tickSize, AX: 0, AY: 0.5})
	}
	if s.barLabel != "" {
		c.Text(s.barLabel, w-8, (y0+y1)/2, TextStyle{Color: tickColor, Size: tickSize, AX: 0.5, AY: 0.5, Vertical: true})
	}
}
