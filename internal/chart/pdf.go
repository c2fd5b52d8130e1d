package chart

import (
	"fmt"
	"image/color"

	"github.com/go-pdf/fpdf"
	"golang.org/x/image/font/gofont/goregular"
)

// fontFamily is the name the embedded face is registered under in the
// PDF document.
const fontFamily = "goregular"

// PDF is the vector backend: a single-page fpdf document sized in
// points. A PDF canvas is single-use; WriteFile closes the document.
type PDF struct {
	doc  *fpdf.Fpdf
	w, h float64
}

// NewPDF creates a vector canvas of w x h points with the embedded
// figure font registered and selected.
func NewPDF(w, h float64) (*PDF, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("chart: invalid page size %gx%g", w, h)
	}
	doc := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "pt",
		Size:    fpdf.SizeType{Wd: w, Ht: h},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)
	doc.AddPage()
	doc.SetFont(fontFamily, "", 11)
	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("chart: creating pdf canvas: %w", err)
	}
	return &PDF{doc: doc, w: w, h: h}, nil
}

// Size returns the page dimensions in points.
func (p *PDF) Size() (w, h float64) { return p.w, p.h }

// WriteFile writes the document, overwriting any existing file at the
// path, and closes the canvas.
func (p *PDF) WriteFile(path string) error {
	if err := p.doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("chart: writing %s: %w", path, err)
	}
	return nil
}

// nrgba normalizes a color to non-premultiplied 8-bit channels.
func nrgba(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Line strokes a polyline.
func (p *PDF) Line(pts []Point, st LineStyle) {
	if len(pts) < 2 {
		return
	}
	c := nrgba(st.Color)
	p.doc.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.doc.SetLineWidth(st.Width)
	p.doc.SetAlpha(float64(c.A)/255, "Normal")
	if len(st.Dash) > 0 {
		p.doc.SetDashPattern(st.Dash, 0)
	}
	p.doc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.doc.LineTo(pt.X, pt.Y)
	}
	p.doc.DrawPath("D")
	if len(st.Dash) > 0 {
		p.doc.SetDashPattern([]float64{}, 0)
	}
	p.doc.SetAlpha(1, "Normal")
}

// Fill fills a polygon.
func (p *PDF) Fill(pts []Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c := nrgba(col)
	p.doc.SetFillColor(int(c.R), int(c.G), int(c.B))
	p.doc.SetAlpha(float64(c.A)/255, "Normal")
	p.doc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.doc.LineTo(pt.X, pt.Y)
	}
	p.doc.ClosePath()
	p.doc.DrawPath("F")
	p.doc.SetAlpha(1, "Normal")
}

// Text draws an anchored string.
func (p *PDF) Text(s string, x, y float64, st TextStyle) {
	if s == "" {
		return
	}
	c := nrgba(st.Color)
	p.doc.SetFont(fontFamily, "", st.Size)
	p.doc.SetTextColor(int(c.R), int(c.G), int(c.B))

	w := p.doc.GetStringWidth(s)
	ascent := 0.8 * st.Size
	h := st.Size

	if st.Vertical {
		p.doc.TransformBegin()
		p.doc.TransformRotate(90, x, y)
	}
	p.doc.Text(x-w*st.AX, y+ascent-h*st.AY, s)
	if st.Vertical {
		p.doc.TransformEnd()
	}
}

// TextWidth returns the advance width of s at the given size.
func (p *PDF) TextWidth(s string, size float64) float64 {
	p.doc.SetFont(fontFamily, "", size)
	return p.doc.GetStringWidth(s)
}
