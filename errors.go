package chart

import (
	"errors"
	"fmt"
)

// Sentinel errors for chart package.
var (
	// ErrInvalidModel is returned when a chart or axis model breaks its
	// invariants. Use errors.As with *ModelError for the offending field.
	ErrInvalidModel = errors.New("chart: invalid model")

	// ErrNilCanvas is returned when a nil Canvas is substituted.
	ErrNilCanvas = errors.New("chart: nil canvas")
)

// ModelError describes which model field broke an invariant.
type ModelError struct {
	Field  string
	Reason string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("chart: invalid model: %s %s", e.Field, e.Reason)
}

// Is reports ErrInvalidModel as the matching sentinel.
func (e *ModelError) Is(target error) bool {
	return target == ErrInvalidModel
}
