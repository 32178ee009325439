package wlframe

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned when a size constraint can not be
	// satisfied, such as a maximum size smaller than the minimum.
	ErrInvalidConfig = errors.New("invalid decoration config")

	// ErrDestroyed is returned by every operation on a Frame after it
	// has been closed.
	ErrDestroyed = errors.New("frame destroyed")

	// ErrNotConfigured is returned when drawing is attempted before
	// the compositor's first configure has been acknowledged.
	ErrNotConfigured = errors.New("frame not configured")
)
