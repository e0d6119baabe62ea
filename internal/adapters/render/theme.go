package render

import (
	"fmt"
	"image/color"

	"github.com/pitchkit/pitchkit/internal/domain/geometry"
)

// LineStyle strokes segments and arcs.
type LineStyle struct {
	Width float64
	Color color.Color
}

// ShapeStyle strokes and optionally fills closed shapes. A nil Fill or
// Stroke skips that pass.
type ShapeStyle struct {
	LineWidth float64
	Stroke    color.Color
	Fill      color.Color
}

// ArrowStyle draws a filled arrow whose total length includes the head.
// Widths are in field units.
type ArrowStyle struct {
	Width      float64
	HeadWidth  float64
	HeadLength float64
	Fill       color.Color
}

// DotStyle draws a filled, edged dot for players and balls.
type DotStyle struct {
	Radius    float64
	EdgeWidth float64
	Fill      color.Color
	Edge      color.Color
}

// TextStyle colors label text.
type TextStyle struct {
	Color color.Color
}

// Theme bundles every cosmetic choice one render uses. Zero value is not
// usable; start from DefaultTheme.
type Theme struct {
	// Pitch markings.
	PitchFill  color.Color
	PitchLine  color.Color
	LineWidth  float64
	Background color.Color

	// Pass arrows.
	Pass ArrowStyle

	// Velocity vectors on tracking frames.
	Vector ArrowStyle

	// Event points (shots etc.).
	Point DotStyle

	// Tracking dots.
	Home DotStyle
	Away DotStyle
	Ball DotStyle

	// Player labels.
	Label TextStyle

	// Surface contours.
	SurfaceAlpha uint8
}

// DefaultTheme mirrors the classic cosmetics: white pitch with black lines,
// translucent blue passes and points, red/blue/yellow tracking dots.
func DefaultTheme() Theme {
	return Theme{
		PitchFill:  color.NRGBA{255, 255, 255, 255},
		PitchLine:  color.NRGBA{0, 0, 0, 255},
		LineWidth:  1,
		Background: color.NRGBA{255, 255, 255, 255},

		Pass: ArrowStyle{
			Width:      0.5,
			HeadWidth:  2,
			HeadLength: 2,
			Fill:       color.NRGBA{0, 0, 255, 153},
		},

		Vector: ArrowStyle{
			Width:      0.1,
			HeadWidth:  1,
			HeadLength: 1,
			Fill:       color.NRGBA{0, 0, 0, 204},
		},

		Point: DotStyle{
			Radius: 1,
			Fill:   color.NRGBA{0, 0, 255, 153},
		},

		Home: DotStyle{
			Radius:    1,
			EdgeWidth: 0.8,
			Fill:      color.NRGBA{220, 40, 40, 255},
			Edge:      color.NRGBA{255, 255, 255, 255},
		},
		Away: DotStyle{
			Radius:    1,
			EdgeWidth: 0.8,
			Fill:      color.NRGBA{40, 40, 220, 255},
			Edge:      color.NRGBA{255, 255, 255, 255},
		},
		Ball: DotStyle{
			Radius:    0.5,
			EdgeWidth: 0.8,
			Fill:      color.NRGBA{240, 220, 40, 255},
			Edge:      color.NRGBA{0, 0, 0, 255},
		},

		Label: TextStyle{Color: color.NRGBA{255, 255, 255, 255}},

		SurfaceAlpha: 102,
	}
}

// DarkTheme draws light lines on a dark field, for dashboard backgrounds.
func DarkTheme() Theme {
	t := DefaultTheme()
	t.PitchFill = color.NRGBA{24, 34, 26, 255}
	t.PitchLine = color.NRGBA{235, 235, 235, 255}
	t.Background = color.NRGBA{16, 16, 16, 255}
	t.Vector.Fill = color.NRGBA{235, 235, 235, 204}
	return t
}

// NamedTheme resolves a theme by name. The empty name means classic.
func NamedTheme(name string) (Theme, error) {
	switch name {
	case "", "classic":
		return DefaultTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// PitchShape returns the stroke-and-fill style used for pitch markings.
func (t Theme) PitchShape() ShapeStyle {
	return ShapeStyle{LineWidth: t.LineWidth, Stroke: t.PitchLine, Fill: t.PitchFill}
}

// PitchStroke returns the stroke-only style used for inner markings.
func (t Theme) PitchStroke() LineStyle {
	return LineStyle{Width: t.LineWidth, Color: t.PitchLine}
}

// SurfaceColor maps a normalized band value in [0,1] onto a diverging
// red-white-blue ramp with the theme's overlay alpha. Low values read hot.
func (t Theme) SurfaceColor(v float64) color.Color {
	v = clamp01(v)
	var r, g, b float64
	if v < 0.5 {
		// red to white
		s := v * 2
		r, g, b = 1, s, s
	} else {
		// white to blue
		s := (v - 0.5) * 2
		r, g, b = 1-s, 1-s, 1
	}
	return color.NRGBA{
		R: uint8(geometry.Lerp(0, 255, r)),
		G: uint8(geometry.Lerp(0, 255, g)),
		B: uint8(geometry.Lerp(0, 255, b)),
		A: t.SurfaceAlpha,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
