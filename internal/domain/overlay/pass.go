// Package overlay translates match-event objects (passes, points, tracking
// frames, control surfaces) into draw-ready geometry on a given pitch. All
// values are transient; nothing survives the plotting call that used it.
package overlay

import (
	"github.com/pitchkit/pitchkit/internal/domain/geometry"
	"github.com/pitchkit/pitchkit/internal/domain/pitch"
)

// Pass is a start and end position in provider coordinates.
type Pass struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// PointMark is a single event location, e.g. a shot.
type PointMark struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Arrow is a directed segment in drawn pitch coordinates.
type Arrow struct {
	From geometry.Point
	To   geometry.Point
}

// Passes maps pass coordinates onto the drawn pitch frame. When adjust is
// true, provider coordinates run through the pitch scale mapper; otherwise
// they are taken as field units already. Vertical pitches flip y across the
// provider midline before transposing.
func Passes(p *pitch.Pitch, passes []Pass, adjust bool) []Arrow {
	m := p.Mapper()
	out := make([]Arrow, 0, len(passes))
	for _, ps := range passes {
		y1, y2 := ps.Y1, ps.Y2
		if p.Vertical() {
			y1 = m.FlipY(y1)
			y2 = m.FlipY(y2)
		}
		from := geometry.Point{X: ps.X1, Y: y1}
		to := geometry.Point{X: ps.X2, Y: y2}
		if adjust {
			from = geometry.Point{X: m.AdjustX(from.X), Y: m.AdjustY(from.Y)}
			to = geometry.Point{X: m.AdjustX(to.X), Y: m.AdjustY(to.Y)}
		}
		out = append(out, Arrow{From: p.Project(from), To: p.Project(to)})
	}
	return out
}

// Points maps event locations onto the drawn pitch frame, with the same
// adjustment rules as Passes.
func Points(p *pitch.Pitch, marks []PointMark, adjust bool) []geometry.Point {
	m := p.Mapper()
	out := make([]geometry.Point, 0, len(marks))
	for _, mk := range marks {
		y := mk.Y
		if p.Vertical() {
			y = m.FlipY(y)
		}
		pt := geometry.Point{X: mk.X, Y: y}
		if adjust {
			pt = geometry.Point{X: m.AdjustX(pt.X), Y: m.AdjustY(pt.Y)}
		}
		out = append(out, p.Project(pt))
	}
	return out
}
