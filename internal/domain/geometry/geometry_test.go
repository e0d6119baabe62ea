package geometry_test

import (
	"math"
	"testing"

	"github.com/pitchkit/pitchkit/internal/domain/geometry"
	. "github.com/smartystreets/goconvey/convey"
)

const eps = 1e-9

func TestArcPoints(t *testing.T) {
	Convey("Given a quarter arc around the origin", t, func() {
		arc := geometry.Arc{Center: geometry.Point{}, Radius: 2, Theta1: 0, Theta2: 90}

		Convey("When sampling it with several points", func() {
			pts := arc.Points(9)

			Convey("Then the endpoints lie exactly on the requested angles", func() {
				So(pts[0].X, ShouldAlmostEqual, 2, eps)
				So(pts[0].Y, ShouldAlmostEqual, 0, eps)
				So(pts[len(pts)-1].X, ShouldAlmostEqual, 0, eps)
				So(pts[len(pts)-1].Y, ShouldAlmostEqual, 2, eps)
			})

			Convey("And every sample sits on the circle", func() {
				for _, p := range pts {
					So(math.Hypot(p.X, p.Y), ShouldAlmostEqual, 2, eps)
				}
			})

			Convey("And the samples are evenly spaced in angle", func() {
				for i := 1; i < len(pts); i++ {
					a := math.Atan2(pts[i].Y, pts[i].X) - math.Atan2(pts[i-1].Y, pts[i-1].X)
					So(a, ShouldAlmostEqual, math.Pi/2/8, eps)
				}
			})
		})

		Convey("When sampling with fewer than two points", func() {
			pts := arc.Points(1)

			Convey("Then it still returns both endpoints", func() {
				So(len(pts), ShouldEqual, 2)
			})
		})
	})

	Convey("Given an arc with a negative sweep", t, func() {
		arc := geometry.Arc{Center: geometry.Point{X: 1, Y: 1}, Radius: 1, Theta1: -90, Theta2: 0}

		Convey("When sampled", func() {
			pts := arc.Points(5)

			Convey("Then all points stay at the radius from the center", func() {
				for _, p := range pts {
					So(math.Hypot(p.X-1, p.Y-1), ShouldAlmostEqual, 1, eps)
				}
			})
		})
	})
}

func TestArcSwap(t *testing.T) {
	Convey("Given an arc", t, func() {
		arc := geometry.Arc{Center: geometry.Point{X: 3, Y: 7}, Radius: 2, Theta1: 0, Theta2: 90}

		Convey("When swapped", func() {
			sw := arc.Swap()

			Convey("Then its points are the transposed originals", func() {
				orig := arc.Points(7)
				swapped := sw.Points(7)
				for i := range orig {
					// The swept direction reverses under transposition.
					mirror := swapped[len(swapped)-1-i]
					So(mirror.X, ShouldAlmostEqual, orig[i].Y, eps)
					So(mirror.Y, ShouldAlmostEqual, orig[i].X, eps)
				}
			})
		})
	})
}

func TestRect(t *testing.T) {
	Convey("Given a rectangle with negative extents", t, func() {
		r := geometry.Rect{XY: geometry.Point{X: 10, Y: 4}, Width: -6, Height: 2}

		Convey("When normalized", func() {
			n := r.Normalize()

			Convey("Then the anchor moves and the extents turn positive", func() {
				So(n.XY.X, ShouldAlmostEqual, 4, eps)
				So(n.Width, ShouldAlmostEqual, 6, eps)
				So(n.Height, ShouldAlmostEqual, 2, eps)
			})
		})

		Convey("When testing containment", func() {
			Convey("Then points inside and on the edge are contained", func() {
				So(r.Contains(geometry.Point{X: 7, Y: 5}), ShouldBeTrue)
				So(r.Contains(geometry.Point{X: 4, Y: 4}), ShouldBeTrue)
				So(r.Contains(geometry.Point{X: 11, Y: 5}), ShouldBeFalse)
			})
		})

		Convey("When swapped", func() {
			sw := r.Swap()

			Convey("Then width and height trade places", func() {
				So(sw.Width, ShouldAlmostEqual, r.Height, eps)
				So(sw.Height, ShouldAlmostEqual, r.Width, eps)
				So(sw.XY.X, ShouldAlmostEqual, r.XY.Y, eps)
			})
		})
	})
}

func TestLinspace(t *testing.T) {
	Convey("Given a range", t, func() {
		Convey("When spread over five points", func() {
			vals := geometry.Linspace(0, 1, 5)

			Convey("Then the spacing is uniform and the endpoints exact", func() {
				So(len(vals), ShouldEqual, 5)
				So(vals[0], ShouldEqual, 0)
				So(vals[4], ShouldEqual, 1)
				So(vals[2], ShouldAlmostEqual, 0.5, eps)
			})
		})

		Convey("When asked for fewer than two points", func() {
			vals := geometry.Linspace(3, 9, 1)

			Convey("Then only the start survives", func() {
				So(vals, ShouldResemble, []float64{3})
			})
		})
	})
}
