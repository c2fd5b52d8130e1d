package chart

import "image/color"

// Colormap maps a normalized value in [0, 1] to a color by linear
// interpolation between fixed stops.
type Colormap struct {
	stops    [][3]uint8
	reversed bool
}

// Viridis returns the perceptually uniform colormap used for the
// surface figure.
func Viridis() Colormap {
	return Colormap{stops: [][3]uint8{
		{68, 1, 84},
		{72, 40, 120},
		{62, 74, 137},
		{49, 104, 142},
		{38, 130, 142},
		{31, 158, 137},
		{53, 183, 121},
		{109, 205, 89},
		{180, 222, 44},
		{253, 231, 37},
	}}
}

// Reversed returns the colormap with its direction flipped.
func (m Colormap) Reversed() Colormap {
	m.reversed = !m.reversed
	return m
}

// At returns the color for t, clamped to [0, 1].
func (m Colormap) At(t float64) color.Color {
	if len(m.stops) == 0 {
		return color.Black
	}
	if m.reversed {
		t = 1 - t
	}
	if t <= 0 {
		s := m.stops[0]
		return color.NRGBA{R: s[0], G: s[1], B: s[2], A: 255}
	}
	if t >= 1 {
		s := m.stops[len(m.stops)-1]
		return color.NRGBA{R: s[0], G: s[1], B: s[2], A: 255}
	}
	pos := t * float64(len(m.stops)-1)
	i := int(pos)
	f := pos - float64(i)
	a, b := m.stops[i], m.stops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + f*(float64(y)-float64(x)) + 0.5)
	}
	return color.NRGBA{R: lerp(a[0], b[0]), G: lerp(a[1], b[1]), B: lerp(a[2], b[2]), A: 255}
}
