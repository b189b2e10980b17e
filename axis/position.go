package axis

import (
	"fmt"
	"strings"
)

// Position says which edge of the dataset an axis is attached to.
// Start and End follow the layout direction: Start is the left edge in
// left-to-right layouts and the right edge in right-to-left layouts.
type Position int

const (
	Top Position = iota
	Bottom
	Start
	End
)

var positionNames = [...]string{
	Top:    "Top",
	Bottom: "Bottom",
	Start:  "Start",
	End:    "End",
}

func (p Position) String() string {
	if p.valid() {
		return positionNames[p]
	}
	return "Unknown"
}

func (p Position) valid() bool {
	return p >= Top && p <= End
}

// IsHorizontal reports whether the axis runs along X (Top or Bottom).
func (p Position) IsHorizontal() bool {
	return p == Top || p == Bottom
}

// IsVertical reports whether the axis runs along Y (Start or End).
func (p Position) IsVertical() bool {
	return p == Start || p == End
}

// IsLeft reports whether a vertical axis sits on the left edge for the
// given layout direction.
func (p Position) IsLeft(rtl bool) bool {
	return (p == Start) != rtl
}

// ownsLine reports whether the axis line lies inside the axis bounds.
// Bottom and Start axes draw the line in their own bounds; Top and End axes
// draw it just inside the dataset, flush with the shared edge.
func (p Position) ownsLine() bool {
	return p == Bottom || p == Start
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("axis: invalid position %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is
// case-insensitive.
func (p *Position) UnmarshalText(b []byte) error {
	for i, name := range positionNames {
		if strings.EqualFold(string(b), name) {
			*p = Position(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidPosition, b)
}

// TickType selects where ticks sit relative to data segments.
type TickType int

const (
	// Minor ticks mark boundaries between segments: one more tick than
	// entries, the first flush with the leading edge.
	Minor TickType = iota

	// Major ticks mark segment centers: one tick per entry.
	Major
)

func (t TickType) String() string {
	switch t {
	case Minor:
		return "Minor"
	case Major:
		return "Major"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t TickType) MarshalText() ([]byte, error) {
	if t != Minor && t != Major {
		return nil, fmt.Errorf("axis: invalid tick type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TickType) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "minor":
		*t = Minor
	case "major":
		*t = Major
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTickType, b)
	}
	return nil
}
