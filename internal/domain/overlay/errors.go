package overlay

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrBadSurface = errors.New("bad surface grid")
	ErrBadFrame   = errors.New("bad tracking frame")
)
