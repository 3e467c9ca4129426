package assets

import "errors"

// Sentinel errors for style lookups.
var (
	// ErrStyleNotFound indicates the requested style does not exist.
	ErrStyleNotFound = errors.New("style not found")

	// ErrInvalidStyleName indicates the name contains path separators,
	// dots or is empty.
	ErrInvalidStyleName = errors.New("invalid style name")
)
