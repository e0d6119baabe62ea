package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/pitchkit/pitchkit/internal/domain/geometry"
)

// Default raster configuration.
const (
	defaultPixelsPerUnit = 10
	defaultMaxPixels     = 16 << 20
	arcDegreesPerSegment = 3
	minArcSegments       = 8
)

// Option applies a configuration option to the Context.
type Option func(*Context)

// WithPixelsPerUnit sets the raster density. Non-positive values are ignored.
func WithPixelsPerUnit(ppu float64) Option {
	return func(c *Context) {
		if ppu > 0 {
			c.ppu = ppu
		}
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(bg color.Color) Option {
	return func(c *Context) {
		if bg != nil {
			c.background = bg
		}
	}
}

// WithMaxPixels caps the total image area.
func WithMaxPixels(maxPixels int) Option {
	return func(c *Context) {
		if maxPixels > 0 {
			c.maxPixels = maxPixels
		}
	}
}

// Context rasterizes field-unit drawing calls onto a gg canvas. The y axis
// points up in field coordinates and down in the raster, so the context
// flips it.
type Context struct {
	dc         *gg.Context
	xmin, ymax float64
	ppu        float64
	background color.Color
	maxPixels  int
}

// NewContext allocates a canvas covering the given axis limits.
func NewContext(xlim, ylim [2]float64, opts ...Option) (*Context, error) {
	c := &Context{
		ppu:        defaultPixelsPerUnit,
		background: color.NRGBA{255, 255, 255, 255},
		maxPixels:  defaultMaxPixels,
	}
	for _, opt := range opts {
		opt(c)
	}

	if xlim[1] <= xlim[0] || ylim[1] <= ylim[0] {
		return nil, fmt.Errorf("%w: x=%v y=%v", ErrBadViewport, xlim, ylim)
	}
	w := int(math.Ceil((xlim[1] - xlim[0]) * c.ppu))
	h := int(math.Ceil((ylim[1] - ylim[0]) * c.ppu))
	if w*h > c.maxPixels {
		return nil, fmt.Errorf("%w: %dx%d > %d", ErrImageTooLarge, w, h, c.maxPixels)
	}

	c.xmin = xlim[0]
	c.ymax = ylim[1]
	c.dc = gg.NewContext(w, h)
	c.dc.SetColor(c.background)
	c.dc.Clear()
	return c, nil
}

// Size reports the raster dimensions in pixels.
func (c *Context) Size() (w, h int) {
	return c.dc.Width(), c.dc.Height()
}

// px and py map field coordinates to raster coordinates.
func (c *Context) px(x float64) float64 { return (x - c.xmin) * c.ppu }
func (c *Context) py(y float64) float64 { return (c.ymax - y) * c.ppu }

// finite reports whether every value is a real number. gg's rasterizer does
// not terminate on non-finite path coordinates, so every primitive drops
// such input instead of passing it through.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func finitePoints(pts []geometry.Point) bool {
	for _, p := range pts {
		if !finite(p.X, p.Y) {
			return false
		}
	}
	return true
}

// Line strokes a single segment.
func (c *Context) Line(a, b geometry.Point, s LineStyle) {
	if !finite(a.X, a.Y, b.X, b.Y) {
		return
	}
	c.dc.SetColor(s.Color)
	c.dc.SetLineWidth(s.Width)
	c.dc.DrawLine(c.px(a.X), c.py(a.Y), c.px(b.X), c.py(b.Y))
	c.dc.Stroke()
}

// Polyline strokes consecutive segments through pts.
func (c *Context) Polyline(pts []geometry.Point, s LineStyle) {
	if len(pts) < 2 || !finitePoints(pts) {
		return
	}
	c.dc.SetColor(s.Color)
	c.dc.SetLineWidth(s.Width)
	c.dc.MoveTo(c.px(pts[0].X), c.py(pts[0].Y))
	for _, p := range pts[1:] {
		c.dc.LineTo(c.px(p.X), c.py(p.Y))
	}
	c.dc.Stroke()
}

// Rect draws a rectangle with the style's fill and stroke passes.
func (c *Context) Rect(r geometry.Rect, s ShapeStyle) {
	n := r.Normalize()
	if !finite(n.XY.X, n.XY.Y, n.Width, n.Height) {
		return
	}
	c.dc.DrawRectangle(c.px(n.XY.X), c.py(n.XY.Y+n.Height), n.Width*c.ppu, n.Height*c.ppu)
	c.paint(s)
}

// Circle draws a circle with the style's fill and stroke passes.
func (c *Context) Circle(circ geometry.Circle, s ShapeStyle) {
	if !finite(circ.Center.X, circ.Center.Y, circ.Radius) {
		return
	}
	c.dc.DrawCircle(c.px(circ.Center.X), c.py(circ.Center.Y), circ.Radius*c.ppu)
	c.paint(s)
}

// Arc strokes an arc as a sampled polyline.
func (c *Context) Arc(a geometry.Arc, s LineStyle) {
	span := math.Abs(a.Theta2 - a.Theta1)
	n := int(span / arcDegreesPerSegment)
	if n < minArcSegments {
		n = minArcSegments
	}
	c.Polyline(a.Points(n+1), s)
}

// FillRect fills a rectangle with a flat color and no stroke.
func (c *Context) FillRect(r geometry.Rect, fill color.Color) {
	n := r.Normalize()
	if !finite(n.XY.X, n.XY.Y, n.Width, n.Height) {
		return
	}
	c.dc.SetColor(fill)
	c.dc.DrawRectangle(c.px(n.XY.X), c.py(n.XY.Y+n.Height), n.Width*c.ppu, n.Height*c.ppu)
	c.dc.Fill()
}

// Arrow draws a filled arrow from from to to. The head is part of the total
// length, so short arrows collapse to just a head.
func (c *Context) Arrow(from, to geometry.Point, s ArrowStyle) {
	if !finite(from.X, from.Y, to.X, to.Y) {
		return
	}
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	// Perpendicular unit vector.
	nx, ny := -uy, ux

	headLen := math.Min(s.HeadLength, length)
	neck := geometry.Point{X: to.X - ux*headLen, Y: to.Y - uy*headLen}

	c.dc.SetColor(s.Fill)

	if length > headLen {
		half := s.Width / 2
		quad := []geometry.Point{
			{X: from.X + nx*half, Y: from.Y + ny*half},
			{X: neck.X + nx*half, Y: neck.Y + ny*half},
			{X: neck.X - nx*half, Y: neck.Y - ny*half},
			{X: from.X - nx*half, Y: from.Y - ny*half},
		}
		c.fillPoly(quad)
	}

	halfHead := s.HeadWidth / 2
	head := []geometry.Point{
		to,
		{X: neck.X + nx*halfHead, Y: neck.Y + ny*halfHead},
		{X: neck.X - nx*halfHead, Y: neck.Y - ny*halfHead},
	}
	c.fillPoly(head)
}

// Text draws a label centered on the given point.
func (c *Context) Text(at geometry.Point, text string, s TextStyle) {
	if !finite(at.X, at.Y) {
		return
	}
	c.dc.SetColor(s.Color)
	c.dc.DrawStringAnchored(text, c.px(at.X), c.py(at.Y), 0.5, 0.5)
}

// EncodePNG writes the rendered image to w.
func (c *Context) EncodePNG(w io.Writer) error {
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}
	return nil
}

func (c *Context) fillPoly(pts []geometry.Point) {
	c.dc.MoveTo(c.px(pts[0].X), c.py(pts[0].Y))
	for _, p := range pts[1:] {
		c.dc.LineTo(c.px(p.X), c.py(p.Y))
	}
	c.dc.ClosePath()
	c.dc.Fill()
}

func (c *Context) paint(s ShapeStyle) {
	switch {
	case s.Fill != nil && s.Stroke != nil:
		c.dc.SetColor(s.Fill)
		c.dc.FillPreserve()
		c.dc.SetColor(s.Stroke)
		c.dc.SetLineWidth(s.LineWidth)
		c.dc.Stroke()
	case s.Fill != nil:
		c.dc.SetColor(s.Fill)
		c.dc.Fill()
	case s.Stroke != nil:
		c.dc.SetColor(s.Stroke)
		c.dc.SetLineWidth(s.LineWidth)
		c.dc.Stroke()
	default:
		c.dc.ClearPath()
	}
}
