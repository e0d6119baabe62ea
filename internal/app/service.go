// Package service renders pitch images for the HTTP API. It owns the
// composition order (pitch, surface, passes, points, frame) and the render
// cache; all geometry lives in the domain packages.
package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pitchkit/pitchkit/internal/adapters/render"
	"github.com/pitchkit/pitchkit/internal/domain/geometry"
	"github.com/pitchkit/pitchkit/internal/domain/overlay"
	"github.com/pitchkit/pitchkit/internal/domain/pitch"
	"github.com/pitchkit/pitchkit/internal/domain/scale"
	"github.com/pitchkit/pitchkit/pkg/logger"
	"github.com/pitchkit/pitchkit/pkg/metrics"
)

// Default render configuration.
const (
	defaultPixelsPerUnit = 10
	defaultFramerate     = 25
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTheme overrides the render cosmetics.
func WithTheme(t render.Theme) Option {
	return func(s *Service) {
		s.theme = t
	}
}

// WithPixelsPerUnit sets the raster density.
func WithPixelsPerUnit(ppu float64) Option {
	return func(s *Service) {
		if ppu > 0 {
			s.ppu = ppu
		}
	}
}

// WithMaxPixels caps the rendered image area.
func WithMaxPixels(maxPixels int) Option {
	return func(s *Service) {
		if maxPixels > 0 {
			s.maxPixels = maxPixels
		}
	}
}

// WithCache swaps the render cache implementation.
func WithCache(c Cache) Option {
	return func(s *Service) {
		if c != nil {
			s.cache = c
		}
	}
}

// WithPitchDefaults sets the pitch settings applied when a job leaves them
// empty. Zero-valued fields keep the built-in defaults.
func WithPitchDefaults(spec PitchSpec) Option {
	return func(s *Service) {
		s.pitchDefaults = spec
	}
}

// WithSurfaceLevels sets the default contour band count.
func WithSurfaceLevels(levels int) Option {
	return func(s *Service) {
		if levels >= 2 {
			s.surfaceLevels = levels
		}
	}
}

// Service renders jobs into PNG images.
type Service struct {
	mu sync.RWMutex

	theme         render.Theme
	ppu           float64
	maxPixels     int
	cache         Cache
	surfaceLevels int
	pitchDefaults PitchSpec

	// Stats
	renders      map[string]int64
	lastDuration time.Duration
	lastBytes    int

	logger logger.Logger
}

// New creates a render service with configuration options.
func New(opts ...Option) *Service {
	s := &Service{
		theme:         render.DefaultTheme(),
		ppu:           defaultPixelsPerUnit,
		maxPixels:     0, // render.Context default applies
		cache:         NewInMemoryCache(),
		surfaceLevels: overlay.DefaultLevels,
		renders:       make(map[string]int64),
		logger:        logger.Get(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Render validates and draws one job, returning the encoded PNG.
func (s *Service) Render(ctx context.Context, job Job) ([]byte, error) {
	if err := job.Validate(); err != nil {
		metrics.RecordRenderError(job.Kind)
		return nil, err
	}

	key := job.digest()
	if img, ok := s.cache.Get(ctx, key); ok {
		metrics.RecordCacheHit()
		return img, nil
	}
	metrics.RecordCacheMiss()

	start := time.Now()
	img, err := s.draw(job)
	if err != nil {
		metrics.RecordRenderError(job.Kind)
		s.logger.Warn(ctx, "render failed",
			logger.String("kind", job.Kind), logger.Error(err))
		return nil, err
	}
	elapsed := time.Since(start)

	s.cache.Put(ctx, key, img)
	metrics.RecordRender(job.Kind, elapsed, len(img))
	metrics.UpdateCacheSize(s.cache.Size())

	s.mu.Lock()
	s.renders[job.Kind]++
	s.lastDuration = elapsed
	s.lastBytes = len(img)
	s.mu.Unlock()

	s.logger.Debug(ctx, "rendered image",
		logger.String("kind", job.Kind),
		logger.Duration("elapsed", elapsed),
		logger.Int("bytes", len(img)))
	return img, nil
}

func (s *Service) draw(job Job) ([]byte, error) {
	p, err := s.buildPitch(job.Pitch)
	if err != nil {
		return nil, err
	}

	xmin, xmax := p.XLim()
	ymin, ymax := p.YLim()
	ctxOpts := []render.Option{
		render.WithPixelsPerUnit(s.ppu),
		render.WithBackground(s.theme.Background),
	}
	if s.maxPixels > 0 {
		ctxOpts = append(ctxOpts, render.WithMaxPixels(s.maxPixels))
	}
	canvas, err := render.NewContext([2]float64{xmin, xmax}, [2]float64{ymin, ymax}, ctxOpts...)
	if err != nil {
		return nil, err
	}

	render.DrawPitch(canvas, p, s.theme)

	if job.Surface != nil {
		rng := overlay.DefaultRange()
		if job.SurfaceRange != nil {
			rng = *job.SurfaceRange
		}
		levels := job.Levels
		if levels < 2 {
			levels = s.surfaceLevels
		}
		grid, err := job.Surface.Contour(p.Length(), p.Width(), rng, levels)
		if err != nil {
			return nil, err
		}
		render.DrawSurface(canvas, p, grid, s.theme)
	}

	adjust := job.AdjustCoords()
	if len(job.Passes) > 0 {
		render.DrawArrows(canvas, overlay.Passes(p, job.Passes, adjust), s.theme.Pass)
	}
	if len(job.Points) > 0 {
		pts := overlay.Points(p, job.Points, adjust)
		render.DrawDots(canvas, pts, s.theme.Point)
		render.DrawLabels(canvas, pts, job.Labels, s.theme.Label)
	}

	if job.Frame != nil {
		s.drawFrame(canvas, p, job)
	}

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *Service) drawFrame(canvas render.Canvas, p *pitch.Pitch, job Job) {
	home, away, ball := job.Frame.Dots(p.Length(), p.Width())
	home = s.project(p, home)
	away = s.project(p, away)

	if job.Deltas {
		framerate := job.Framerate
		if framerate <= 0 {
			framerate = defaultFramerate
		}
		vectors := job.Frame.Vectors(p.Length(), p.Width(), framerate)
		for i := range vectors {
			vectors[i].From = p.Project(vectors[i].From)
			vectors[i].To = p.Project(vectors[i].To)
		}
		render.DrawArrows(canvas, vectors, s.theme.Vector)
	}

	render.DrawDots(canvas, home, s.theme.Home)
	render.DrawDots(canvas, away, s.theme.Away)
	render.DrawDots(canvas, []geometry.Point{p.Project(ball)}, s.theme.Ball)

	if len(job.Labels) > 0 {
		render.DrawLabels(canvas, append(home, away...), job.Labels, s.theme.Label)
	}
}

func (s *Service) project(p *pitch.Pitch, pts []geometry.Point) []geometry.Point {
	for i := range pts {
		pts[i] = p.Project(pts[i])
	}
	return pts
}

func (s *Service) buildPitch(spec PitchSpec) (*pitch.Pitch, error) {
	// Service-level defaults fill whatever the job left empty.
	if spec.Scale == "" {
		spec.Scale = s.pitchDefaults.Scale
	}
	if spec.Markings == "" {
		spec.Markings = s.pitchDefaults.Markings
	}
	if spec.Length == 0 {
		spec.Length = s.pitchDefaults.Length
	}
	if spec.Width == 0 {
		spec.Width = s.pitchDefaults.Width
	}
	if spec.Padding == 0 {
		spec.Padding = s.pitchDefaults.Padding
	}

	var opts []pitch.Option

	switch spec.Scale {
	case "", "opta":
		opts = append(opts, pitch.WithScale(scale.Opta()))
	case "statsbomb":
		opts = append(opts, pitch.WithScale(scale.StatsBomb()))
	case "metric":
		opts = append(opts, pitch.WithScale(scale.Metric()))
	default:
		return nil, fmt.Errorf("%w: unknown scale %q", ErrBadJob, spec.Scale)
	}

	switch spec.Markings {
	case "", "yard":
		opts = append(opts, pitch.WithDimensions(pitch.YardDimensions()))
	case "metric":
		opts = append(opts, pitch.WithDimensions(pitch.MetricDimensions()))
	default:
		return nil, fmt.Errorf("%w: unknown markings %q", ErrBadJob, spec.Markings)
	}

	if spec.Length > 0 {
		opts = append(opts, pitch.WithLength(spec.Length))
	}
	if spec.Width > 0 {
		opts = append(opts, pitch.WithWidth(spec.Width))
	}
	if spec.Padding > 0 {
		opts = append(opts, pitch.WithPadding(spec.Padding))
	}
	opts = append(opts, pitch.WithVertical(spec.Vertical), pitch.WithTitle(spec.Title))

	p := pitch.New(opts...)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	perKind := make(map[string]int64, len(s.renders))
	var total int64
	for k, v := range s.renders {
		perKind[k] = v
		total += v
	}
	return map[string]interface{}{
		"rendersTotal":   total,
		"rendersPerKind": perKind,
		"lastDurationMs": s.lastDuration.Milliseconds(),
		"lastBytes":      s.lastBytes,
		"cacheEntries":   s.cache.Size(),
	}
}
