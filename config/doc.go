// Package config loads chart descriptions from YAML or TOML files.
//
// A Config holds canvas size, measurement parameters, the data model, and
// the axes and threshold lines to draw. Enumerations such as axis
// positions are written by name ("bottom", "major", "top") and parsed with
// the same TextUnmarshaler implementations for both formats.
//
// Example YAML:
//
//	width: 640
//	height: 400
//	model:
//	  max_x: 11
//	  max_y: 100
//	  step: 1
//	  entry_count: 12
//	axes:
//	  - position: bottom
//	    tick_type: major
//	  - position: start
//	    label_count: 5
//	thresholds:
//	  - start: 40
//	    end: 60
//	    label: target
package config
