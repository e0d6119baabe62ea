package pitch

import (
	"math"

	"github.com/pitchkit/pitchkit/internal/domain/geometry"
)

// Marking radii in field units, matching the conventional rendering of
// spots, posts and corner quarter-circles.
const (
	spotRadius   = 0.3
	cornerRadius = 0.5
)

// Layout is the full set of marking shapes for one pitch, in a horizontal
// frame with the origin at the bottom-left corner. Vertical pitches are
// produced by Swap.
type Layout struct {
	Border       geometry.Rect
	PenaltyBoxes [2]geometry.Rect
	SixYardBoxes [2]geometry.Rect

	HalfwayLine [2]geometry.Point

	CenterCircle geometry.Circle
	CenterSpot   geometry.Circle
	PenaltySpots [2]geometry.Circle
	GoalPosts    [4]geometry.Circle

	// PenaltyArcs holds the circle segments outside each penalty box. They
	// can be absent when the circle radius fits inside the box.
	PenaltyArcs []geometry.Arc

	CornerArcs [4]geometry.Arc
}

// Layout computes every marking from the pitch dimensions. The result is
// symmetric about the pitch center by construction.
func (p *Pitch) Layout() Layout {
	l, w, d := p.length, p.width, p.dims

	lay := Layout{
		Border: geometry.Rect{XY: geometry.Point{}, Width: l, Height: w},

		PenaltyBoxes: [2]geometry.Rect{
			{XY: geometry.Point{X: 0, Y: w/2 - d.PenaltyWidth/2}, Width: d.PenaltyLength, Height: d.PenaltyWidth},
			{XY: geometry.Point{X: l, Y: w/2 - d.PenaltyWidth/2}, Width: -d.PenaltyLength, Height: d.PenaltyWidth},
		},

		SixYardBoxes: [2]geometry.Rect{
			{XY: geometry.Point{X: 0, Y: w/2 - d.SixWidth/2}, Width: d.SixLength, Height: d.SixWidth},
			{XY: geometry.Point{X: l, Y: w/2 - d.SixWidth/2}, Width: -d.SixLength, Height: d.SixWidth},
		},

		HalfwayLine: [2]geometry.Point{{X: l / 2, Y: 0}, {X: l / 2, Y: w}},

		CenterCircle: geometry.Circle{Center: geometry.Point{X: l / 2, Y: w / 2}, Radius: d.CircleRadius},
		CenterSpot:   geometry.Circle{Center: geometry.Point{X: l / 2, Y: w / 2}, Radius: spotRadius},

		PenaltySpots: [2]geometry.Circle{
			{Center: geometry.Point{X: d.PenaltySpot, Y: w / 2}, Radius: spotRadius},
			{Center: geometry.Point{X: l - d.PenaltySpot, Y: w / 2}, Radius: spotRadius},
		},

		GoalPosts: [4]geometry.Circle{
			{Center: geometry.Point{X: 0, Y: w/2 + d.GoalSize/2}, Radius: spotRadius},
			{Center: geometry.Point{X: 0, Y: w/2 - d.GoalSize/2}, Radius: spotRadius},
			{Center: geometry.Point{X: l, Y: w/2 + d.GoalSize/2}, Radius: spotRadius},
			{Center: geometry.Point{X: l, Y: w/2 - d.GoalSize/2}, Radius: spotRadius},
		},

		CornerArcs: [4]geometry.Arc{
			{Center: geometry.Point{X: 0, Y: 0}, Radius: cornerRadius, Theta1: 0, Theta2: 90},
			{Center: geometry.Point{X: 0, Y: w}, Radius: cornerRadius, Theta1: -90, Theta2: 0},
			{Center: geometry.Point{X: l, Y: w}, Radius: cornerRadius, Theta1: 180, Theta2: 270},
			{Center: geometry.Point{X: l, Y: 0}, Radius: cornerRadius, Theta1: 90, Theta2: 180},
		},
	}

	// The penalty arc is the part of the circle around the spot that pokes
	// out of the box. It vanishes when the box edge is beyond the radius.
	if edge := d.PenaltyLength - d.PenaltySpot; edge < d.CircleRadius {
		half := math.Acos(edge/d.CircleRadius) * 180 / math.Pi
		lay.PenaltyArcs = []geometry.Arc{
			{Center: lay.PenaltySpots[0].Center, Radius: d.CircleRadius, Theta1: -half, Theta2: half},
			{Center: lay.PenaltySpots[1].Center, Radius: d.CircleRadius, Theta1: 180 - half, Theta2: 180 + half},
		}
	}

	if p.vert {
		return lay.Swap()
	}
	return lay
}

// Swap transposes the whole layout across the x=y diagonal.
func (lay Layout) Swap() Layout {
	out := lay
	out.Border = lay.Border.Swap()
	for i, r := range lay.PenaltyBoxes {
		out.PenaltyBoxes[i] = r.Swap()
	}
	for i, r := range lay.SixYardBoxes {
		out.SixYardBoxes[i] = r.Swap()
	}
	out.HalfwayLine = [2]geometry.Point{lay.HalfwayLine[0].Swap(), lay.HalfwayLine[1].Swap()}
	out.CenterCircle = lay.CenterCircle.Swap()
	out.CenterSpot = lay.CenterSpot.Swap()
	for i, c := range lay.PenaltySpots {
		out.PenaltySpots[i] = c.Swap()
	}
	for i, c := range lay.GoalPosts {
		out.GoalPosts[i] = c.Swap()
	}
	out.PenaltyArcs = make([]geometry.Arc, len(lay.PenaltyArcs))
	for i, a := range lay.PenaltyArcs {
		out.PenaltyArcs[i] = a.Swap()
	}
	for i, a := range lay.CornerArcs {
		out.CornerArcs[i] = a.Swap()
	}
	return out
}
