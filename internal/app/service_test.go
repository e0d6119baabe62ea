package service_test

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"math"
	"testing"

	"github.com/pitchkit/pitchkit/internal/adapters/render"
	service "github.com/pitchkit/pitchkit/internal/app"
	"github.com/pitchkit/pitchkit/internal/domain/overlay"
	"github.com/pitchkit/pitchkit/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func pngMagic(b []byte) bool {
	return len(b) > 8 && bytes.Equal(b[:8], []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'})
}

func TestRenderPitch(t *testing.T) {
	Convey("Given a render service", t, func() {
		svc := service.New()
		ctx := context.Background()

		Convey("When rendering a bare pitch", func() {
			job := service.Job{Kind: service.KindPitch}
			img, err := svc.Render(ctx, job)

			Convey("Then it returns a PNG", func() {
				So(err, ShouldBeNil)
				So(pngMagic(img), ShouldBeTrue)
			})

			Convey("And the stats reflect the render", func() {
				_, _ = svc.Render(ctx, job) // cache hit, not a new render
				stats := svc.GetStats()
				So(stats["rendersTotal"], ShouldEqual, int64(1))
				So(stats["cacheEntries"], ShouldEqual, 1)
			})
		})

		Convey("When rendering a vertical StatsBomb pitch with a title", func() {
			img, err := svc.Render(ctx, service.Job{
				Kind: service.KindPitch,
				Pitch: service.PitchSpec{
					Scale:    "statsbomb",
					Vertical: true,
					Title:    "home v away",
				},
			})

			Convey("Then it renders fine", func() {
				So(err, ShouldBeNil)
				So(pngMagic(img), ShouldBeTrue)
			})
		})

		Convey("When the job kind is unknown", func() {
			_, err := svc.Render(ctx, service.Job{Kind: "heatmap"})

			Convey("Then it is rejected", func() {
				So(errors.Is(err, service.ErrBadJob), ShouldBeTrue)
			})
		})

		Convey("When the scale name is unknown", func() {
			_, err := svc.Render(ctx, service.Job{
				Kind:  service.KindPitch,
				Pitch: service.PitchSpec{Scale: "wyscout"},
			})

			Convey("Then it is rejected", func() {
				So(errors.Is(err, service.ErrBadJob), ShouldBeTrue)
			})
		})

		Convey("When the service carries pitch defaults", func() {
			cfgd := service.New(service.WithPitchDefaults(service.PitchSpec{
				Scale: "metric", Length: 105, Width: 68, Padding: 2,
			}))
			img, err := cfgd.Render(ctx, service.Job{Kind: service.KindPitch})
			So(err, ShouldBeNil)

			Convey("Then an empty job renders on the configured field", func() {
				// (105 + 2*2) x (68 + 2*2) field units at 10 px per unit.
				dims, err := png.DecodeConfig(bytes.NewReader(img))
				So(err, ShouldBeNil)
				So(dims.Width, ShouldEqual, 1090)
				So(dims.Height, ShouldEqual, 720)
			})

			Convey("And explicit job settings still win", func() {
				img, err := cfgd.Render(ctx, service.Job{
					Kind:  service.KindPitch,
					Pitch: service.PitchSpec{Length: 120, Width: 80, Padding: 5},
				})
				So(err, ShouldBeNil)
				dims, err := png.DecodeConfig(bytes.NewReader(img))
				So(err, ShouldBeNil)
				So(dims.Width, ShouldEqual, 1300)
				So(dims.Height, ShouldEqual, 900)
			})
		})

		Convey("When the image would exceed the pixel budget", func() {
			small := service.New(service.WithMaxPixels(100))
			_, err := small.Render(ctx, service.Job{Kind: service.KindPitch})

			Convey("Then the size kind surfaces", func() {
				So(errors.Is(err, render.ErrImageTooLarge), ShouldBeTrue)
			})
		})
	})
}

func TestRenderOverlays(t *testing.T) {
	Convey("Given a render service", t, func() {
		svc := service.New()
		ctx := context.Background()

		Convey("When rendering passes and shot points", func() {
			img, err := svc.Render(ctx, service.Job{
				Kind:   service.KindPasses,
				Passes: []overlay.Pass{{X1: 60, Y1: 60, X2: 25, Y2: 25}, {X1: 20, Y1: 20, X2: 50, Y2: 50}},
				Points: []overlay.PointMark{{X: 90, Y: 50}},
				Labels: []string{"9"},
			})

			Convey("Then it renders fine", func() {
				So(err, ShouldBeNil)
				So(pngMagic(img), ShouldBeTrue)
			})
		})

		Convey("When rendering a tracking frame with velocity vectors", func() {
			img, err := svc.Render(ctx, service.Job{
				Kind: service.KindFrame,
				Pitch: service.PitchSpec{
					Length: 105, Width: 68, Scale: "metric", Markings: "metric", Padding: 2,
				},
				Frame: &overlay.Frame{
					HomePlayers: []overlay.Position{{XYZ: []float64{-10, 3, 0}, Delta: []float64{0.1, 0, 0}}},
					AwayPlayers: []overlay.Position{{XYZ: []float64{8, -6, 0}}},
					Ball:        overlay.Position{XYZ: []float64{0, 0, 0}},
				},
				Deltas:    true,
				Framerate: 25,
				Labels:    []string{"7", "10"},
			})

			Convey("Then it renders fine", func() {
				So(err, ShouldBeNil)
				So(pngMagic(img), ShouldBeTrue)
			})
		})

		Convey("When the frame is malformed", func() {
			_, err := svc.Render(ctx, service.Job{
				Kind:  service.KindFrame,
				Frame: &overlay.Frame{Ball: overlay.Position{XYZ: []float64{1}}},
			})

			Convey("Then the frame kind surfaces", func() {
				So(errors.Is(err, overlay.ErrBadFrame), ShouldBeTrue)
			})
		})

		Convey("When rendering a control surface with passes on top", func() {
			img, err := svc.Render(ctx, service.Job{
				Kind: service.KindSurface,
				Pitch: service.PitchSpec{
					Length: 105, Width: 68, Scale: "metric", Markings: "metric",
				},
				Surface: overlay.Surface{
					{-1, -0.5, 0}, {0, 0.5, 1}, {0.5, 1, -0.25}, {0.1, -0.9, 0.4},
				},
				Levels: 10,
				Passes: []overlay.Pass{{X1: 10, Y1: 10, X2: 40, Y2: 30}},
			})

			Convey("Then it renders fine", func() {
				So(err, ShouldBeNil)
				So(pngMagic(img), ShouldBeTrue)
			})
		})

		Convey("When a point coordinate is not a number", func() {
			_, err := svc.Render(ctx, service.Job{
				Kind:   service.KindPasses,
				Points: []overlay.PointMark{{X: math.NaN(), Y: math.Inf(1)}},
			})

			Convey("Then the job is rejected before drawing", func() {
				So(errors.Is(err, service.ErrBadJob), ShouldBeTrue)
			})
		})

		Convey("When a pass coordinate would overflow once rescaled", func() {
			_, err := svc.Render(ctx, service.Job{
				Kind:   service.KindPasses,
				Passes: []overlay.Pass{{X1: 1e308, Y1: 0, X2: 0, Y2: 0}},
			})

			Convey("Then the job is rejected before drawing", func() {
				So(errors.Is(err, service.ErrBadJob), ShouldBeTrue)
			})
		})

		Convey("When a frame carries a non-finite delta", func() {
			_, err := svc.Render(ctx, service.Job{
				Kind: service.KindFrame,
				Frame: &overlay.Frame{
					HomePlayers: []overlay.Position{{XYZ: []float64{0, 0, 0}, Delta: []float64{math.NaN(), 0, 0}}},
					Ball:        overlay.Position{XYZ: []float64{0, 0, 0}},
				},
				Deltas: true,
			})

			Convey("Then the frame kind surfaces", func() {
				So(errors.Is(err, overlay.ErrBadFrame), ShouldBeTrue)
			})
		})

		Convey("When the surface is ragged", func() {
			_, err := svc.Render(ctx, service.Job{
				Kind:    service.KindSurface,
				Surface: overlay.Surface{{1, 2}, {3}},
			})

			Convey("Then the surface kind surfaces", func() {
				So(errors.Is(err, overlay.ErrBadSurface), ShouldBeTrue)
			})
		})
	})
}
