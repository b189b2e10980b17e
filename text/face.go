package text

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a FontSource bound to a pixel size and direction.
// Face is a lightweight value and safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
	config faceConfig
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the size of this face in pixels.
func (f *Face) Size() float64 { return f.size }

// Direction returns the text direction for this face.
func (f *Face) Direction() Direction { return f.config.direction }

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	if f == nil || f.size == 0 {
		return Metrics{}
	}
	var buf sfnt.Buffer
	m, err := f.source.font.Metrics(&buf, floatToFixed(f.size), f.config.hinting)
	if err != nil {
		return Metrics{}
	}

	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	gap := fixedToFloat(m.Height) - ascent - descent
	if gap < 0 {
		gap = 0
	}
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   gap,
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// Advance returns the total advance width of s in pixels.
// The width comes from HarfBuzz shaping; if the font cannot be shaped the
// sum of nominal glyph advances is used instead.
func (f *Face) Advance(s string) float64 {
	if f == nil || s == "" || f.size == 0 {
		return 0
	}
	if w, ok := shapedAdvance(s, f); ok {
		return w
	}
	return f.nominalAdvance(s)
}

func (f *Face) nominalAdvance(s string) float64 {
	var buf sfnt.Buffer
	ppem := floatToFixed(f.size)
	total := 0.0
	for _, r := range s {
		gid, err := f.source.font.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.source.font.GlyphAdvance(&buf, gid, ppem, f.config.hinting)
		if err != nil {
			continue
		}
		total += fixedToFloat(adv)
	}
	return total
}

// Measure returns the advance width and line height of s.
func Measure(s string, face *Face) (width, height float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	return face.Advance(s), face.Metrics().LineHeight()
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
