// Package text provides font loading, measurement, wrapping and drawing
// for chart labels.
//
// A FontSource is a parsed font file shared across the application; Face
// binds it to a pixel size and direction. Advances are computed by HarfBuzz
// shaping (github.com/go-text/typesetting) so kerning and right-to-left
// scripts measure the same way they render. Glyphs are rasterized with
// golang.org/x/image/font/opentype.
//
//	source := text.DefaultSource()
//	face := source.Face(14)
//	lines := text.Wrap("Monthly revenue", face, 60, 2)
package text
