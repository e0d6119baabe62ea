// Package scale maps provider coordinate systems onto pitch render
// coordinates. Providers ship positions in their own units (Opta normalizes
// to 100x100, StatsBomb to 120x80); the Mapper rescales those linearly into
// the real dimensions of the pitch being drawn.
package scale

// Scale is a provider's target coordinate system.
type Scale struct {
	X float64
	Y float64
}

// Stock provider scales.
func Opta() Scale      { return Scale{X: 100, Y: 100} }
func StatsBomb() Scale { return Scale{X: 120, Y: 80} }
func Metric() Scale    { return Scale{X: 105, Y: 68} }

// Valid reports whether both axes are positive.
func (s Scale) Valid() bool {
	return s.X > 0 && s.Y > 0
}

// Mapper rescales provider coordinates into a length x width pitch.
type Mapper struct {
	length float64
	width  float64
	scale  Scale
}

// NewMapper builds a mapper for the given pitch dimensions and provider
// scale. Callers validate dimensions; a zero scale axis would divide by zero
// so Valid should be checked first.
func NewMapper(length, width float64, s Scale) Mapper {
	return Mapper{length: length, width: width, scale: s}
}

// AdjustX rescales a provider x coordinate into pitch units.
func (m Mapper) AdjustX(x float64) float64 {
	return x * (m.length / m.scale.X)
}

// AdjustY rescales a provider y coordinate into pitch units.
func (m Mapper) AdjustY(y float64) float64 {
	return y * (m.width / m.scale.Y)
}

// InvertX maps a pitch x coordinate back into provider units.
func (m Mapper) InvertX(x float64) float64 {
	return x * (m.scale.X / m.length)
}

// InvertY maps a pitch y coordinate back into provider units.
func (m Mapper) InvertY(y float64) float64 {
	return y * (m.scale.Y / m.width)
}

// FlipY mirrors a provider y coordinate across the pitch midline, still in
// provider units. Vertical pitches flip y before swapping axes.
func (m Mapper) FlipY(y float64) float64 {
	return m.scale.Y - y
}
