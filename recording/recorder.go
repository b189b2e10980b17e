package recording

import (
	"github.com/gogpu/chart"
	"github.com/gogpu/chart/text"
)

// Recorder is a chart.Canvas that captures drawing operations.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ chart.Canvas = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
	}
}

// Width implements chart.Canvas.
func (r *Recorder) Width() int { return r.width }

// Height implements chart.Canvas.
func (r *Recorder) Height() int { return r.height }

// FillRect implements chart.Canvas.
func (r *Recorder) FillRect(rect chart.Rect, c chart.RGBA) {
	if rect.Empty() {
		return
	}
	r.commands = append(r.commands, FillRect{Rect: rect, Color: c})
}

// FillPath implements chart.Canvas.
func (r *Recorder) FillPath(p *chart.Path, c chart.RGBA) {
	if p == nil || p.Empty() {
		return
	}
	r.commands = append(r.commands, FillPath{Path: p.Clone(), Color: c})
}

// StrokeLine implements chart.Canvas.
func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, c chart.RGBA) {
	if width <= 0 {
		return
	}
	r.commands = append(r.commands, StrokeLine{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

// DrawText implements chart.Canvas.
func (r *Recorder) DrawText(s string, x, baseline float64, face *text.Face, c chart.RGBA) {
	if s == "" || face == nil {
		return
	}
	r.commands = append(r.commands, DrawText{Text: s, X: x, Baseline: baseline, Face: face, Color: c})
}

// Commands returns the recorded commands in draw order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	clear(r.commands)
	r.commands = r.commands[:0]
}

// FillRects returns the recorded FillRect commands in draw order.
func (r *Recorder) FillRects() []FillRect {
	return collect[FillRect](r.commands)
}

// FillPaths returns the recorded FillPath commands in draw order.
func (r *Recorder) FillPaths() []FillPath {
	return collect[FillPath](r.commands)
}

// Lines returns the recorded StrokeLine commands in draw order.
func (r *Recorder) Lines() []StrokeLine {
	return collect[StrokeLine](r.commands)
}

// Texts returns the recorded DrawText commands in draw order.
func (r *Recorder) Texts() []DrawText {
	return collect[DrawText](r.commands)
}

// Playback replays the recorded commands onto c in order.
func (r *Recorder) Playback(c chart.Canvas) {
	for _, cmd := range r.commands {
		cmd.replay(c)
	}
}

func collect[T Command](cmds []Command) []T {
	var out []T
	for _, cmd := range cmds {
		if t, ok := cmd.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
