// Command pitchgen renders a sample pitch image straight through the render
// service, without the HTTP layer. Useful for eyeballing theme or layout
// changes.
package main

import (
	"context"
	"flag"
	"os"

	service "github.com/pitchkit/pitchkit/internal/app"
	"github.com/pitchkit/pitchkit/internal/domain/overlay"
	"github.com/pitchkit/pitchkit/pkg/logger"
)

// Default sample configuration constants.
const (
	defaultLength = 120
	defaultWidth  = 80
	defaultPPU    = 10
	outFileMode   = 0o644
)

func main() {
	var (
		out      = flag.String("out", "pitch.png", "Output PNG path")
		length   = flag.Float64("length", defaultLength, "Field length")
		width    = flag.Float64("width", defaultWidth, "Field width")
		scale    = flag.String("scale", "opta", "Provider scale: opta, statsbomb, metric")
		markings = flag.String("markings", "yard", "Marking dimensions: yard, metric")
		vertical = flag.Bool("vertical", false, "Draw the pitch vertically")
		title    = flag.String("title", "", "Title text above the pitch")
		ppu      = flag.Float64("ppu", defaultPPU, "Pixels per field unit")
		passes   = flag.Bool("passes", false, "Overlay a few sample passes")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	ctx := context.Background()
	log := logger.Get()

	job := service.Job{
		Kind: service.KindPitch,
		Pitch: service.PitchSpec{
			Length:   *length,
			Width:    *width,
			Scale:    *scale,
			Markings: *markings,
			Vertical: *vertical,
			Title:    *title,
		},
	}
	if *passes {
		job.Kind = service.KindPasses
		job.Passes = []overlay.Pass{
			{X1: 60, Y1: 60, X2: 25, Y2: 25},
			{X1: 20, Y1: 20, X2: 50, Y2: 50},
		}
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithPixelsPerUnit(*ppu),
	)

	img, err := svc.Render(ctx, job)
	if err != nil {
		log.Error(ctx, "render failed", logger.Error(err))
		os.Exit(1)
	}
	if err := os.WriteFile(*out, img, outFileMode); err != nil {
		log.Error(ctx, "write failed", logger.String("path", *out), logger.Error(err))
		os.Exit(1)
	}
	log.Info(ctx, "wrote image", logger.String("path", *out), logger.Int("bytes", len(img)))
}
