package decoration

import (
	"fmt"
	"strings"

	"github.com/gogpu/chart/component"
)

// LabelHorizontalPosition says which end of the band a label is attached to.
// Start is the left end in left-to-right layouts and the right end in
// right-to-left layouts.
type LabelHorizontalPosition int

const (
	LabelStart LabelHorizontalPosition = iota
	LabelEnd
)

func (p LabelHorizontalPosition) String() string {
	switch p {
	case LabelStart:
		return "Start"
	case LabelEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Position returns the text position used to draw a label placed at p.
func (p LabelHorizontalPosition) Position() component.HorizontalPosition {
	if p == LabelEnd {
		return component.HorizontalEnd
	}
	return component.HorizontalStart
}

// MarshalText implements encoding.TextMarshaler.
func (p LabelHorizontalPosition) MarshalText() ([]byte, error) {
	if p != LabelStart && p != LabelEnd {
		return nil, fmt.Errorf("decoration: invalid horizontal position %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *LabelHorizontalPosition) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "start":
		*p = LabelStart
	case "end":
		*p = LabelEnd
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPosition, b)
	}
	return nil
}

// LabelVerticalPosition says whether a label sits above (Top) or below
// (Bottom) the band.
type LabelVerticalPosition int

const (
	LabelTop LabelVerticalPosition = iota
	LabelBottom
)

func (p LabelVerticalPosition) String() string {
	switch p {
	case LabelTop:
		return "Top"
	case LabelBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Position returns the text position used to draw a label placed at p.
func (p LabelVerticalPosition) Position() component.VerticalPosition {
	if p == LabelBottom {
		return component.VerticalBottom
	}
	return component.VerticalTop
}

// MarshalText implements encoding.TextMarshaler.
func (p LabelVerticalPosition) MarshalText() ([]byte, error) {
	if p != LabelTop && p != LabelBottom {
		return nil, fmt.Errorf("decoration: invalid vertical position %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *LabelVerticalPosition) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "top":
		*p = LabelTop
	case "bottom":
		*p = LabelBottom
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPosition, b)
	}
	return nil
}
