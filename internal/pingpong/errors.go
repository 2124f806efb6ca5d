package pingpong

import "errors"

// The two domain error kinds. Both are non-retryable; the transport layer
// translates them into user-facing text. Backend failures propagate
// unchanged and are not reinterpreted here.
var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidMatch   = errors.New("invalid match registration")
)
