package overlay

import (
	"fmt"
	"math"

	"github.com/pitchkit/pitchkit/internal/domain/geometry"
)

// Default contour configuration, mirroring common pitch-control plots:
// values in [-1,1] split into 25 level bands.
const (
	DefaultLevels = 25
)

// DefaultRange is the value range a surface covers unless overridden.
func DefaultRange() [2]float64 { return [2]float64{-1, 1} }

// Surface is a 2D scalar field over the pitch area, indexed [x][y]: the
// outer slice runs along the pitch length, the inner along the width.
type Surface [][]float64

// Validate checks the grid is rectangular, at least 2x2, and finite.
func (s Surface) Validate() error {
	if len(s) < 2 {
		return fmt.Errorf("%w: need at least 2 columns, got %d", ErrBadSurface, len(s))
	}
	rows := len(s[0])
	if rows < 2 {
		return fmt.Errorf("%w: need at least 2 rows, got %d", ErrBadSurface, rows)
	}
	for i, col := range s {
		if len(col) != rows {
			return fmt.Errorf("%w: column %d has %d rows, want %d", ErrBadSurface, i, len(col), rows)
		}
		for j, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: non-finite value at [%d][%d]", ErrBadSurface, i, j)
			}
		}
	}
	return nil
}

// ContourGrid is a surface quantized into filled level bands, positioned in
// field coordinates. Band holds, per grid cell, the index into Levels of the
// band the cell value falls in, or -1 when the value is outside the range.
type ContourGrid struct {
	// Xs and Ys are the grid sample positions along length and width.
	Xs []float64
	Ys []float64

	// Levels are the band boundaries; len(Levels)-1 bands exist.
	Levels []float64

	Band [][]int
}

// CellSize returns the extent of one grid cell in field units.
func (g ContourGrid) CellSize() (dx, dy float64) {
	return g.Xs[1] - g.Xs[0], g.Ys[1] - g.Ys[0]
}

// BandCount returns the number of fill bands.
func (g ContourGrid) BandCount() int { return len(g.Levels) - 1 }

// Normalized returns the band's midpoint value scaled to [0,1] across the
// full range, for palette lookup.
func (g ContourGrid) Normalized(band int) float64 {
	lo, hi := g.Levels[0], g.Levels[len(g.Levels)-1]
	mid := (g.Levels[band] + g.Levels[band+1]) / 2
	return (mid - lo) / (hi - lo)
}

// Contour spreads the surface over a length x width field and quantizes it
// into levels-1 filled bands across rng. Values outside rng map to band -1
// and are not drawn.
func (s Surface) Contour(length, width float64, rng [2]float64, levels int) (ContourGrid, error) {
	if err := s.Validate(); err != nil {
		return ContourGrid{}, err
	}
	if rng[1] <= rng[0] {
		return ContourGrid{}, fmt.Errorf("%w: range [%g,%g]", ErrBadSurface, rng[0], rng[1])
	}
	if levels < 2 {
		levels = DefaultLevels
	}

	xBins, yBins := len(s), len(s[0])
	g := ContourGrid{
		Xs:     geometry.Linspace(0, length, xBins),
		Ys:     geometry.Linspace(0, width, yBins),
		Levels: geometry.Linspace(rng[0], rng[1], levels),
		Band:   make([][]int, xBins),
	}

	span := rng[1] - rng[0]
	bands := levels - 1
	for i, col := range s {
		g.Band[i] = make([]int, yBins)
		for j, v := range col {
			if v < rng[0] || v > rng[1] {
				g.Band[i][j] = -1
				continue
			}
			b := int((v - rng[0]) / span * float64(bands))
			if b == bands { // top of range belongs to the last band
				b = bands - 1
			}
			g.Band[i][j] = b
		}
	}
	return g, nil
}
