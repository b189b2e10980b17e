package axis

import "errors"

// Sentinel errors for axis package.
var (
	// ErrInvalidPosition is returned for a Position outside Top..End.
	ErrInvalidPosition = errors.New("axis: invalid position")

	// ErrInvalidTickType is returned for an unknown tick type.
	ErrInvalidTickType = errors.New("axis: invalid tick type")

	// ErrInvalidLabelCount is returned when a vertical axis is configured
	// with fewer than one segment.
	ErrInvalidLabelCount = errors.New("axis: label count must be positive")
)
