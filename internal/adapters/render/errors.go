package render

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrImageTooLarge = errors.New("image exceeds pixel budget")
	ErrBadViewport   = errors.New("bad viewport")
	ErrEncodeFailed  = errors.New("png encode failed")
)
