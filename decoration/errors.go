package decoration

import "errors"

var (
	// ErrInvalidRange is returned for a threshold range with start > end
	// or a bound that is not a finite number.
	ErrInvalidRange = errors.New("decoration: invalid threshold range")

	// ErrInvalidPosition is returned when a label position cannot be parsed.
	ErrInvalidPosition = errors.New("decoration: invalid label position")

	// ErrInvalidThickness is returned for a negative minimum thickness.
	ErrInvalidThickness = errors.New("decoration: minimum thickness must not be negative")
)
