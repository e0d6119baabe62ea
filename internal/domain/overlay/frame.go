package overlay

import (
	"fmt"
	"math"

	"github.com/pitchkit/pitchkit/internal/domain/geometry"
)

// maxCoordinate bounds tracked positions and deltas, in meters. Real pitches
// are two orders of magnitude smaller; anything past this is corrupt input.
const maxCoordinate = 1e6

// Position is one tracked object at one instant. Providers center the
// coordinate origin at the pitch center; XYZ is position in meters and Delta
// is per-frame displacement. Only x and y are used.
type Position struct {
	XYZ   []float64 `json:"xyz"`
	Delta []float64 `json:"delta,omitempty"`
}

// Frame is a collection of player and ball positions at one time instant.
type Frame struct {
	HomePlayers []Position `json:"homePlayers"`
	AwayPlayers []Position `json:"awayPlayers"`
	Ball        Position   `json:"ball"`
}

// Validate checks that every position carries at least a finite, bounded
// x and y, and that any delta present is finite too.
func (f Frame) Validate() error {
	check := func(side string, ps []Position) error {
		for i, p := range ps {
			if len(p.XYZ) < 2 {
				return fmt.Errorf("%w: %s[%d] has %d coordinates", ErrBadFrame, side, i, len(p.XYZ))
			}
			if !coordOK(p.XYZ[0], p.XYZ[1]) {
				return fmt.Errorf("%w: %s[%d] position out of range", ErrBadFrame, side, i)
			}
			if len(p.Delta) >= 2 && !coordOK(p.Delta[0], p.Delta[1]) {
				return fmt.Errorf("%w: %s[%d] delta out of range", ErrBadFrame, side, i)
			}
		}
		return nil
	}
	if err := check("homePlayers", f.HomePlayers); err != nil {
		return err
	}
	if err := check("awayPlayers", f.AwayPlayers); err != nil {
		return err
	}
	if len(f.Ball.XYZ) < 2 {
		return fmt.Errorf("%w: ball has %d coordinates", ErrBadFrame, len(f.Ball.XYZ))
	}
	if !coordOK(f.Ball.XYZ[0], f.Ball.XYZ[1]) {
		return fmt.Errorf("%w: ball position out of range", ErrBadFrame)
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

// point shifts a center-origin position into field coordinates.
func (p Position) point(length, width float64) geometry.Point {
	return geometry.Point{X: p.XYZ[0] + length/2, Y: p.XYZ[1] + width/2}
}

// Dots resolves all frame positions into field coordinates on a pitch of the
// given size. Validate must have passed first.
func (f Frame) Dots(length, width float64) (home, away []geometry.Point, ball geometry.Point) {
	home = make([]geometry.Point, len(f.HomePlayers))
	for i, p := range f.HomePlayers {
		home[i] = p.point(length, width)
	}
	away = make([]geometry.Point, len(f.AwayPlayers))
	for i, p := range f.AwayPlayers {
		away[i] = p.point(length, width)
	}
	return home, away, f.Ball.point(length, width)
}

// Vectors derives velocity arrows for every player that carries a delta.
// Deltas are per-frame displacements, so the arrow spans one second of
// movement when multiplied by the capture framerate.
func (f Frame) Vectors(length, width, framerate float64) []Arrow {
	var out []Arrow
	for _, side := range [2][]Position{f.HomePlayers, f.AwayPlayers} {
		for _, p := range side {
			if len(p.Delta) < 2 {
				continue
			}
			from := p.point(length, width)
			to := from.Add(geometry.Point{X: p.Delta[0] * framerate, Y: p.Delta[1] * framerate})
			out = append(out, Arrow{From: from, To: to})
		}
	}
	return out
}
