// Package geometry holds the closed-form shape math shared by the pitch
// layout and overlay code. Everything here is stateless.
package geometry

import "math"

// Point is a position in pitch coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Swap returns p with its axes transposed. Used for vertical pitches.
func (p Point) Swap() Point {
	return Point{X: p.Y, Y: p.X}
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
// Width and Height may be negative; Normalize resolves that.
type Rect struct {
	XY     Point
	Width  float64
	Height float64
}

// Normalize returns an equivalent rectangle with non-negative extents.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.XY.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.XY.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Swap transposes the rectangle across the x=y diagonal.
func (r Rect) Swap() Rect {
	return Rect{XY: r.XY.Swap(), Width: r.Height, Height: r.Width}
}

// Contains reports whether p lies inside or on the boundary of r.
func (r Rect) Contains(p Point) bool {
	n := r.Normalize()
	return p.X >= n.XY.X && p.X <= n.XY.X+n.Width &&
		p.Y >= n.XY.Y && p.Y <= n.XY.Y+n.Height
}

// Circle is a center plus radius.
type Circle struct {
	Center Point
	Radius float64
}

// Swap transposes the circle's center.
func (c Circle) Swap() Circle {
	return Circle{Center: c.Center.Swap(), Radius: c.Radius}
}

// Arc is a circular arc from Theta1 to Theta2, in degrees measured
// counter-clockwise from the positive x axis.
type Arc struct {
	Center Point
	Radius float64
	Theta1 float64
	Theta2 float64
}

// Swap transposes the arc: the center swaps axes and the sweep is mirrored
// across the x=y diagonal (angle a maps to 90-a).
func (a Arc) Swap() Arc {
	return Arc{
		Center: a.Center.Swap(),
		Radius: a.Radius,
		Theta1: 90 - a.Theta2,
		Theta2: 90 - a.Theta1,
	}
}

// Points samples n evenly spaced points along the arc, endpoints included.
// n must be at least 2; smaller values yield just the endpoints.
func (a Arc) Points(n int) []Point {
	if n < 2 {
		n = 2
	}
	t1 := a.Theta1 * math.Pi / 180
	t2 := a.Theta2 * math.Pi / 180
	step := (t2 - t1) / float64(n-1)

	pts := make([]Point, n)
	for i := range pts {
		t := t1 + step*float64(i)
		pts[i] = Point{
			X: a.Center.X + a.Radius*math.Cos(t),
			Y: a.Center.Y + a.Radius*math.Sin(t),
		}
	}
	return pts
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n < 2 collapses to a single start value.
func Linspace(start, stop float64, n int) []float64 {
	if n < 2 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	// Pin the endpoint; accumulated float error should not leak past stop.
	out[n-1] = stop
	return out
}
