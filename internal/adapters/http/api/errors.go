package api

import (
	"errors"
	"fmt"

	"github.com/pitchkit/pitchkit/internal/domain/overlay"
	"github.com/pitchkit/pitchkit/internal/domain/pitch"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrRender     = errors.New("render failed")
)

// inputErrorKinds lists the domain sentinels that indicate bad client input
// rather than a server fault.
func inputErrorKinds() []error {
	return []error{
		overlay.ErrBadSurface,
		overlay.ErrBadFrame,
		pitch.ErrInvalidDimensions,
		pitch.ErrInvalidScale,
	}
}

// wrapKind tags err with an operation and a sentinel kind so callers can use
// errors.Is on the kind while keeping the cause.
func wrapKind(op string, kind, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", op, kind)
	}
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
