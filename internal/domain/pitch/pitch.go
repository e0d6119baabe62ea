// Package pitch computes the line coordinates of a soccer pitch for
// arbitrary field dimensions and provider scales. A Pitch is immutable after
// construction; Layout derives every marking from the configured dimensions.
package pitch

import (
	"fmt"

	"github.com/pitchkit/pitchkit/internal/domain/geometry"
	"github.com/pitchkit/pitchkit/internal/domain/scale"
)

// Default field configuration. Length and width follow the common
// provider convention of a 120x80 yard field.
const (
	defaultLength  = 120
	defaultWidth   = 80
	defaultPadding = 5
)

// Option applies a configuration option to the Pitch.
type Option func(*Pitch)

// WithLength sets the field length. Non-positive values are ignored.
func WithLength(length float64) Option {
	return func(p *Pitch) {
		if length > 0 {
			p.length = length
		}
	}
}

// WithWidth sets the field width. Non-positive values are ignored.
func WithWidth(width float64) Option {
	return func(p *Pitch) {
		if width > 0 {
			p.width = width
		}
	}
}

// WithScale sets the provider coordinate system used to adjust spatial data.
func WithScale(s scale.Scale) Option {
	return func(p *Pitch) {
		if s.Valid() {
			p.scale = s
		}
	}
}

// WithDimensions overrides the interior marking dimensions.
func WithDimensions(d Dimensions) Option {
	return func(p *Pitch) {
		if d.Valid() {
			p.dims = d
		}
	}
}

// WithVertical rotates the pitch a quarter turn so play runs bottom to top.
func WithVertical(vert bool) Option {
	return func(p *Pitch) {
		p.vert = vert
	}
}

// WithPadding sets the margin added around the field by the axis limits.
func WithPadding(padding float64) Option {
	return func(p *Pitch) {
		if padding >= 0 {
			p.padding = padding
		}
	}
}

// WithTitle sets an optional title drawn above the pitch.
func WithTitle(title string) Option {
	return func(p *Pitch) {
		p.title = title
	}
}

// Pitch is a soccer field with configurable dimensions and provider scale.
type Pitch struct {
	length  float64
	width   float64
	scale   scale.Scale
	dims    Dimensions
	vert    bool
	padding float64
	title   string
}

// New creates a Pitch with provider defaults (120x80 yard field, Opta
// 100x100 scale) and applies the given options.
func New(opts ...Option) *Pitch {
	p := &Pitch{
		length:  defaultLength,
		width:   defaultWidth,
		scale:   scale.Opta(),
		dims:    YardDimensions(),
		padding: defaultPadding,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Validate checks that the configured dimensions can produce a sane layout.
func (p *Pitch) Validate() error {
	if p.length <= 0 || p.width <= 0 {
		return fmt.Errorf("%w: length=%g width=%g", ErrInvalidDimensions, p.length, p.width)
	}
	if !p.scale.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidScale, p.scale)
	}
	if !p.dims.Valid() {
		return fmt.Errorf("%w: markings must be positive", ErrInvalidDimensions)
	}
	if p.dims.PenaltyWidth > p.width || p.dims.PenaltyLength*2 > p.length {
		return fmt.Errorf("%w: penalty boxes exceed the field", ErrInvalidDimensions)
	}
	return nil
}

// Length and Width report the field extents in field units.
func (p *Pitch) Length() float64 { return p.length }
func (p *Pitch) Width() float64  { return p.width }

// Vertical reports whether the pitch is drawn rotated.
func (p *Pitch) Vertical() bool { return p.vert }

// Title returns the optional title text.
func (p *Pitch) Title() string { return p.title }

// Scale returns the provider coordinate system.
func (p *Pitch) Scale() scale.Scale { return p.scale }

// Mapper returns the provider-to-field coordinate mapper.
func (p *Pitch) Mapper() scale.Mapper {
	return scale.NewMapper(p.length, p.width, p.scale)
}

// AdjustX rescales a provider x coordinate into field units.
func (p *Pitch) AdjustX(x float64) float64 { return p.Mapper().AdjustX(x) }

// AdjustY rescales a provider y coordinate into field units.
func (p *Pitch) AdjustY(y float64) float64 { return p.Mapper().AdjustY(y) }

// XLim returns the horizontal axis limits including padding. For vertical
// pitches the width runs along x.
func (p *Pitch) XLim() (min, max float64) {
	if p.vert {
		return -p.padding, p.width + p.padding
	}
	return -p.padding, p.length + p.padding
}

// YLim returns the vertical axis limits including padding.
func (p *Pitch) YLim() (min, max float64) {
	if p.vert {
		return -p.padding, p.length + p.padding
	}
	return -p.padding, p.width + p.padding
}

// Project maps a point from a horizontal-pitch frame into the drawn frame,
// transposing the axes when the pitch is vertical.
func (p *Pitch) Project(pt geometry.Point) geometry.Point {
	if p.vert {
		return pt.Swap()
	}
	return pt
}

func (p *Pitch) String() string {
	return fmt.Sprintf("Pitch(%gx%g)", p.length, p.width)
}
