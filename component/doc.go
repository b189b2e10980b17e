// Package component provides the drawable primitives axes and decorations
// are built from: filled shapes, lines, ticks and text labels.
//
// Components are plain value structs. Their style is re-applied to the
// canvas on every call, so two charts never share mutable paint state; use
// the factory functions (DefaultLine, DefaultTick, DefaultLabel, ...) to get
// a fresh default per chart.
package component
