package text

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// Direction specifies text direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return "Unknown"
	}
}

// DetectDirection returns the base direction of s using the Unicode
// bidirectional algorithm. Text whose runs are all right-to-left resolves to
// DirectionRTL, all left-to-right to DirectionLTR; empty or mixed text keeps
// fallback.
func DetectDirection(s string, fallback Direction) Direction {
	if s == "" {
		return fallback
	}
	def := bidi.LeftToRight
	if fallback == DirectionRTL {
		def = bidi.RightToLeft
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(def)); err != nil {
		return fallback
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return fallback
	}

	var ltr, rtl bool
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			rtl = true
		} else {
			ltr = true
		}
	}
	switch {
	case rtl && !ltr:
		return DirectionRTL
	case ltr && !rtl:
		return DirectionLTR
	default:
		return fallback
	}
}

func mapDirection(d Direction) di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
