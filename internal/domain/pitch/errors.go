package pitch

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidDimensions = errors.New("invalid pitch dimensions")
	ErrInvalidScale      = errors.New("invalid provider scale")
)
