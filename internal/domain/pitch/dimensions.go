package pitch

// Dimensions describes the interior markings of a pitch, in the same units
// as the pitch length and width.
type Dimensions struct {
	// PenaltyLength and PenaltyWidth size the penalty box.
	PenaltyLength float64
	PenaltyWidth  float64

	// SixLength and SixWidth size the six-yard box.
	SixLength float64
	SixWidth  float64

	// PenaltySpot is the distance from the goal line to the penalty spot.
	PenaltySpot float64

	// CircleRadius is the radius of the center circle and penalty arcs.
	CircleRadius float64

	// GoalSize is the distance between the goal posts.
	GoalSize float64
}

// YardDimensions are the standard markings for a pitch measured in yards.
func YardDimensions() Dimensions {
	return Dimensions{
		PenaltyLength: 18,
		PenaltyWidth:  18*2 + 8,
		SixLength:     6,
		SixWidth:      6*2 + 8,
		PenaltySpot:   12,
		CircleRadius:  10,
		GoalSize:      8,
	}
}

// MetricDimensions are the laws-of-the-game markings in meters.
func MetricDimensions() Dimensions {
	return Dimensions{
		PenaltyLength: 16.5,
		PenaltyWidth:  16.5*2 + 7.32,
		SixLength:     5.5,
		SixWidth:      5.5*2 + 7.32,
		PenaltySpot:   11,
		CircleRadius:  9.15,
		GoalSize:      7.32,
	}
}

// Valid reports whether every marking dimension is positive.
func (d Dimensions) Valid() bool {
	return d.PenaltyLength > 0 && d.PenaltyWidth > 0 &&
		d.SixLength > 0 && d.SixWidth > 0 &&
		d.PenaltySpot > 0 && d.CircleRadius > 0 && d.GoalSize > 0
}
