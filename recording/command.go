package recording

import (
	"github.com/gogpu/chart"
	"github.com/gogpu/chart/text"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdFillRect   CommandType = iota // Fill a rectangle
	CmdFillPath                      // Fill a path
	CmdStrokeLine                    // Stroke a line segment
	CmdDrawText                      // Draw text
)

var commandTypeNames = [...]string{
	CmdFillRect:   "FillRect",
	CmdFillPath:   "FillPath",
	CmdStrokeLine: "StrokeLine",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	// replay issues the command on c.
	replay(c chart.Canvas)
}

// FillRect fills a rectangle with a solid color.
type FillRect struct {
	Rect  chart.Rect
	Color chart.RGBA
}

// Type implements Command.
func (FillRect) Type() CommandType { return CmdFillRect }

func (cmd FillRect) replay(c chart.Canvas) { c.FillRect(cmd.Rect, cmd.Color) }

// FillPath fills a path with a solid color. Path is a private copy.
type FillPath struct {
	Path  *chart.Path
	Color chart.RGBA
}

// Type implements Command.
func (FillPath) Type() CommandType { return CmdFillPath }

func (cmd FillPath) replay(c chart.Canvas) { c.FillPath(cmd.Path, cmd.Color) }

// StrokeLine strokes a line segment.
type StrokeLine struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          chart.RGBA
}

// Type implements Command.
func (StrokeLine) Type() CommandType { return CmdStrokeLine }

func (cmd StrokeLine) replay(c chart.Canvas) {
	c.StrokeLine(cmd.X1, cmd.Y1, cmd.X2, cmd.Y2, cmd.Width, cmd.Color)
}

// DrawText draws a single line of text at a baseline origin.
type DrawText struct {
	Text     string
	X        float64
	Baseline float64
	Face     *text.Face
	Color    chart.RGBA
}

// Type implements Command.
func (DrawText) Type() CommandType { return CmdDrawText }

func (cmd DrawText) replay(c chart.Canvas) {
	c.DrawText(cmd.Text, cmd.X, cmd.Baseline, cmd.Face, cmd.Color)
}

// Width returns the advance width of the drawn text.
func (cmd DrawText) Width() float64 {
	return cmd.Face.Advance(cmd.Text)
}

// CenterX returns the horizontal center of the drawn text.
func (cmd DrawText) CenterX() float64 {
	return cmd.X + cmd.Width()/2
}
