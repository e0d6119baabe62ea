package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"github.com/pitchkit/pitchkit/internal/domain/overlay"
)

// Render kinds, used for metrics labels and stats.
const (
	KindPitch   = "pitch"
	KindPasses  = "passes"
	KindFrame   = "frame"
	KindSurface = "surface"
)

// maxCoordinate bounds input coordinates. Provider scales top out at a few
// hundred units; anything past this overflows to infinity once rescaled.
const maxCoordinate = 1e6

// PitchSpec selects the field a job is drawn on. Zero values fall back to
// the service defaults (120x80 field, Opta scale, yard markings).
type PitchSpec struct {
	Length   float64 `json:"length,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Scale    string  `json:"scale,omitempty"`    // opta, statsbomb, metric
	Markings string  `json:"markings,omitempty"` // yard, metric
	Vertical bool    `json:"vertical,omitempty"`
	Padding  float64 `json:"padding,omitempty"`
	Title    string  `json:"title,omitempty"`
}

// Job is one render request: a pitch plus any overlays, drawn bottom-up in
// the order surface, passes, points, frame.
type Job struct {
	Kind  string    `json:"kind"`
	Pitch PitchSpec `json:"pitch"`

	Passes []overlay.Pass      `json:"passes,omitempty"`
	Points []overlay.PointMark `json:"points,omitempty"`
	Labels []string            `json:"labels,omitempty"`

	// Adjust runs pass/point coordinates through the provider scale mapper.
	// Defaults to true; pre-adjusted data sets it to false.
	Adjust *bool `json:"adjust,omitempty"`

	Frame     *overlay.Frame `json:"frame,omitempty"`
	Deltas    bool           `json:"deltas,omitempty"`
	Framerate float64        `json:"framerate,omitempty"`

	Surface      overlay.Surface `json:"surface,omitempty"`
	SurfaceRange *[2]float64     `json:"surface_range,omitempty"`
	Levels       int             `json:"levels,omitempty"`
}

// AdjustCoords reports whether provider adjustment applies (default true).
func (j Job) AdjustCoords() bool {
	return j.Adjust == nil || *j.Adjust
}

// Validate rejects jobs the renderer cannot express.
func (j Job) Validate() error {
	switch j.Kind {
	case KindPitch, KindPasses, KindFrame, KindSurface:
	default:
		return fmt.Errorf("%w: kind %q", ErrBadJob, j.Kind)
	}
	if j.Pitch.Length < 0 || j.Pitch.Width < 0 || j.Pitch.Padding < 0 {
		return fmt.Errorf("%w: negative pitch dimensions", ErrBadJob)
	}
	for _, p := range j.Passes {
		if !coordOK(p.X1, p.Y1, p.X2, p.Y2) {
			return fmt.Errorf("%w: pass coordinate out of range", ErrBadJob)
		}
	}
	for _, m := range j.Points {
		if !coordOK(m.X, m.Y) {
			return fmt.Errorf("%w: point coordinate out of range", ErrBadJob)
		}
	}
	if j.Frame != nil {
		if err := j.Frame.Validate(); err != nil {
			return err
		}
	}
	if j.Surface != nil {
		if err := j.Surface.Validate(); err != nil {
			return err
		}
		if j.SurfaceRange != nil && j.SurfaceRange[1] <= j.SurfaceRange[0] {
			return fmt.Errorf("%w: surface range %v", ErrBadJob, *j.SurfaceRange)
		}
	}
	return nil
}

func coordOK(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.Abs(v) > maxCoordinate {
			return false
		}
	}
	return true
}

// digest is a stable cache key over the whole job.
func (j Job) digest() string {
	b, err := json.Marshal(j)
	if err != nil {
		// Marshal of these types cannot fail; fall back to uncacheable.
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
