// Package render adapts pitch geometry onto a 2D raster canvas. The Canvas
// interface is the seam between the drawing code and the backend; the gg
// implementation in this package rasterizes to PNG.
package render

import (
	"image/color"
	"io"

	"github.com/pitchkit/pitchkit/internal/domain/geometry"
)

// Canvas is the drawing-primitive surface the overlay code targets.
// Coordinates are field units within the axis limits the canvas was built
// with; the implementation owns the mapping to pixels.
type Canvas interface {
	Line(a, b geometry.Point, s LineStyle)
	Polyline(pts []geometry.Point, s LineStyle)
	Rect(r geometry.Rect, s ShapeStyle)
	Circle(c geometry.Circle, s ShapeStyle)
	Arc(a geometry.Arc, s LineStyle)
	FillRect(r geometry.Rect, fill color.Color)
	Arrow(from, to geometry.Point, s ArrowStyle)
	Text(at geometry.Point, text string, s TextStyle)

	// EncodePNG writes the rendered image.
	EncodePNG(w io.Writer) error
}
