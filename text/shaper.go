package text

import (
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// hbPool pools HarfbuzzShaper instances. A HarfbuzzShaper keeps an internal
// buffer and is not safe for concurrent use.
var hbPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// shapedAdvance shapes s with face and returns the summed glyph advances.
func shapedAdvance(s string, face *Face) (float64, bool) {
	font, err := face.source.shaping()
	if err != nil || font == nil {
		return 0, false
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: mapDirection(face.config.direction),
		Face:      gtfont.NewFace(font),
		Size:      floatToFixed(face.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage(face.config.language),
	}

	hb := hbPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	hbPool.Put(hb)

	var w float64
	for _, g := range out.Glyphs {
		w += fixedToFloat(g.Advance)
	}
	return w, true
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
