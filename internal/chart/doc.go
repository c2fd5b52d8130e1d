// Package chart is a small publication-figure toolkit: 2D line plots
// with grids, legends and annotations, and a 3D surface projector.
//
// Figures are laid out in typographic points and drawn through the
// Canvas interface, which has two implementations: Raster renders
// through github.com/gogpu/gg at a configurable pixel density for PNG
// export, and PDF renders through github.com/go-pdf/fpdf for vector
// export. Running the same draw pass over both backends is how a
// figure gets its matching .png and .pdf artifacts.
package chart
