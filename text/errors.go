package text

import "errors"

// ErrEmptyFontData is returned by NewFontSource when font data is empty.
var ErrEmptyFontData = errors.New("text: empty font data")
