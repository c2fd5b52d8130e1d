package chart

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Raster is the PNG backend: a gg drawing context at a fixed pixel
// density over the points-based layout.
type Raster struct {
	dc    *gg.Context
	pm    *gg.Pixmap
	src   *text.FontSource
	w, h  float64 // size in points
	scale float64 // pixels per point
}

// NewRaster creates a raster canvas of w x h points rendered at the
// given dots-per-inch density.
func NewRaster(w, h, dpi float64) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("chart: invalid raster size %gx%g", w, h)
	}
	if dpi <= 0 {
		return nil, fmt.Errorf("chart: invalid density %g dpi", dpi)
	}
	src, err := fontSource()
	if err != nil {
		return nil, err
	}

	scale := dpi / 72
	wPx := int(math.Round(w * scale))
	hPx := int(math.Round(h * scale))
	pm := gg.NewPixmap(wPx, hPx)
	dc := gg.NewContext(wPx, hPx, gg.WithPixmap(pm))
	dc.ClearWithColor(gg.White)

	return &Raster{dc: dc, pm: pm, src: src, w: w, h: h, scale: scale}, nil
}

// Size returns the canvas dimensions in points.
func (r *Raster) Size() (w, h float64) { return r.w, r.h }

// Pixmap exposes the backing pixel buffer, mainly for tests.
func (r *Raster) Pixmap() *gg.Pixmap { return r.pm }

// WritePNG encodes the canvas to a PNG file, overwriting any existing
// file at the path.
func (r *Raster) WritePNG(path string) error {
	if err := r.pm.SavePNG(path); err != nil {
		return fmt.Errorf("chart: writing %s: %w", path, err)
	}
	return nil
}

// Line strokes a polyline.
func (r *Raster) Line(pts []Point, st LineStyle) {
	if len(pts) < 2 {
		return
	}
	r.dc.SetColor(nrgba(st.Color))
	r.dc.SetLineWidth(st.Width * r.scale)
	if len(st.Dash) > 0 {
		dash := make([]float64, len(st.Dash))
		for i, d := range st.Dash {
			dash[i] = d * r.scale
		}
		r.dc.SetDash(dash...)
	} else {
		r.dc.ClearDash()
	}
	r.dc.MoveTo(pts[0].X*r.scale, pts[0].Y*r.scale)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X*r.scale, p.Y*r.scale)
	}
	_ = r.dc.Stroke()
	r.dc.ClearDash()
}

// Fill fills a polygon.
func (r *Raster) Fill(pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	r.dc.SetColor(nrgba(c))
	r.dc.MoveTo(pts[0].X*r.scale, pts[0].Y*r.scale)
	for _, p := range pts[1:] {
		r.dc.LineTo(p.X*r.scale, p.Y*r.scale)
	}
	r.dc.ClosePath()
	_ = r.dc.Fill()
}

// Text draws an anchored string.
func (r *Raster) Text(s string, x, y float64, st TextStyle) {
	if s == "" {
		return
	}
	face := r.src.Face(st.Size * r.scale)
	w, _ := text.Measure(s, face)
	m := face.Metrics()
	h := m.Ascent + m.Descent

	if st.Vertical {
		r.drawVertical(s, face, x*r.scale, y*r.scale, w, h, m.Ascent, st)
		return
	}

	left := x*r.scale - w*st.AX
	baseline := y*r.scale + m.Ascent - h*st.AY
	r.dc.SetFont(face)
	r.dc.SetColor(nrgba(st.Color))
	r.dc.DrawString(s, left, baseline)
}

// drawVertical renders the string into an offscreen image and blits it
// rotated 90 degrees counter-clockwise. gg draws text straight to the
// pixmap without applying the transform stack, so rotation has to
// happen at the pixel level.
func (r *Raster) drawVertical(s string, face text.Face, x, y, w, h, ascent float64, st TextStyle) {
	ow := int(math.Ceil(w)) + 2
	oh := int(math.Ceil(h)) + 2
	if ow <= 2 || oh <= 2 {
		return
	}
	off := image.NewRGBA(image.Rect(0, 0, ow, oh))
	text.Draw(off, s, face, 1, 1+ascent, nrgba(st.Color))

	for sy := 0; sy < oh; sy++ {
		for sx := 0; sx < ow; sx++ {
			c := off.RGBAAt(sx, sy)
			if c.A == 0 {
				continue
			}
			// Anchor offset in the text box, rotated CCW into screen space.
			dx := int(math.Round(x + (float64(sy) - h*st.AY)))
			dy := int(math.Round(y - (float64(sx) - w*st.AX)))
			if dx < 0 || dy < 0 || dx >= r.pm.Width() || dy >= r.pm.Height() {
				continue
			}
			// Source-over blend of the premultiplied glyph pixel.
			a := float64(c.A) / 255
			dst := r.pm.GetPixel(dx, dy)
			r.pm.SetPixel(dx, dy, gg.RGBA2(
				float64(c.R)/255+dst.R*(1-a),
				float64(c.G)/255+dst.G*(1-a),
				float64(c.B)/255+dst.B*(1-a),
				1,
			))
		}
	}
}

// TextWidth returns the advance width of s at the given size, in
// points.
func (r *Raster) TextWidth(s string, size float64) float64 {
	face := r.src.Face(size * r.scale)
	w, _ := text.Measure(s, face)
	return w / r.scale
}
