package render

import (
	"github.com/pitchkit/pitchkit/internal/domain/geometry"
	"github.com/pitchkit/pitchkit/internal/domain/overlay"
	"github.com/pitchkit/pitchkit/internal/domain/pitch"
)

const titleOffset = 1 // field units above the border

// DrawPitch renders every pitch marking in z-order: filled border first,
// then the inner lines, spots and arcs on top.
func DrawPitch(c Canvas, p *pitch.Pitch, t Theme) {
	lay := p.Layout()
	stroke := t.PitchStroke()
	lines := ShapeStyle{LineWidth: t.LineWidth, Stroke: t.PitchLine}
	dots := ShapeStyle{Fill: t.PitchLine}

	c.Rect(lay.Border, t.PitchShape())
	c.Line(lay.HalfwayLine[0], lay.HalfwayLine[1], stroke)
	c.Circle(lay.CenterCircle, lines)

	for _, box := range lay.PenaltyBoxes {
		c.Rect(box, lines)
	}
	for _, box := range lay.SixYardBoxes {
		c.Rect(box, lines)
	}
	for _, a := range lay.PenaltyArcs {
		c.Arc(a, stroke)
	}
	for _, a := range lay.CornerArcs {
		c.Arc(a, stroke)
	}

	c.Circle(lay.CenterSpot, dots)
	for _, s := range lay.PenaltySpots {
		c.Circle(s, dots)
	}
	for _, post := range lay.GoalPosts {
		c.Circle(post, dots)
	}

	if title := p.Title(); title != "" {
		b := lay.Border.Normalize()
		at := geometry.Point{X: b.XY.X + b.Width/2, Y: b.XY.Y + b.Height + titleOffset}
		c.Text(at, title, TextStyle{Color: t.PitchLine})
	}
}

// DrawArrows renders pass or velocity arrows.
func DrawArrows(c Canvas, arrows []overlay.Arrow, s ArrowStyle) {
	for _, a := range arrows {
		c.Arrow(a.From, a.To, s)
	}
}

// DrawDots renders event or player dots.
func DrawDots(c Canvas, pts []geometry.Point, s DotStyle) {
	style := ShapeStyle{LineWidth: s.EdgeWidth, Fill: s.Fill, Stroke: s.Edge}
	for _, p := range pts {
		c.Circle(geometry.Circle{Center: p, Radius: s.Radius}, style)
	}
}

// DrawLabels centers one label per point. Extra labels are ignored.
func DrawLabels(c Canvas, pts []geometry.Point, labels []string, s TextStyle) {
	for i, p := range pts {
		if i >= len(labels) {
			return
		}
		c.Text(p, labels[i], s)
	}
}

// DrawSurface fills one rectangle per grid cell, colored by its level band.
// Cells outside the value range stay transparent.
func DrawSurface(c Canvas, p *pitch.Pitch, g overlay.ContourGrid, t Theme) {
	dx, dy := g.CellSize()
	if p.Vertical() {
		dx, dy = dy, dx
	}
	for i, col := range g.Band {
		for j, band := range col {
			if band < 0 {
				continue
			}
			center := p.Project(geometry.Point{X: g.Xs[i], Y: g.Ys[j]})
			cell := geometry.Rect{
				XY:     geometry.Point{X: center.X - dx/2, Y: center.Y - dy/2},
				Width:  dx,
				Height: dy,
			}
			c.FillRect(cell, t.SurfaceColor(g.Normalized(band)))
		}
	}
}
