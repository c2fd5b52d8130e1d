package chart

import "image/color"

// Point is a position on a canvas, in points, origin top-left,
// y increasing downward.
type Point struct {
	X, Y float64
}

// LineStyle describes how a polyline is stroked.
type LineStyle struct {
	Color color.Color
	Width float64   // stroke width in points
	Dash  []float64 // on/off lengths in points; nil strokes solid
}

// TextStyle describes how a string is drawn. AX and AY anchor the
// text box relative to the given position: (0, 0) puts the top-left
// corner there, (0.5, 0.5) centers the box, (1, 1) puts the
// bottom-right corner there. Vertical rotates the box 90 degrees
// counter-clockwise about the anchor point, so the text reads
// bottom-to-top.
type TextStyle struct {
	Color    color.Color
	Size     float64 // font size in points
	AX, AY   float64
	Vertical bool
}

// Canvas is the drawing surface shared by the raster and vector
// backends. Coordinates are in points regardless of backend density.
type Canvas interface {
	// Size returns the canvas dimensions in points.
	Size() (w, h float64)

	// Line strokes a polyline through the given points.
	Line(pts []Point, st LineStyle)

	// Fill fills the polygon described by the given points. The color's
	// alpha is honored.
	Fill(pts []Point, c color.Color)

	// Text draws s anchored at (x, y).
	Text(s string, x, y float64, st TextStyle)

	// TextWidth returns the advance width of s at the given size.
	TextWidth(s string, size float64) float64
}
