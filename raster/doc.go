// Package raster implements chart.Canvas on an in-memory RGBA image.
//
// Shapes are filled with the anti-aliasing rasterizer from
// golang.org/x/image/vector; text is drawn with the glyph outlines of the
// face's font source. The result can be encoded as PNG.
package raster
