package plane

import (
	"image/color"
)

// Kind identifies the shape a Command draws.
type Kind int

const (
	KindLine Kind = iota
	KindCircle
	KindDisc
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindDisc:
		return "disc"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Style selects color and stroke width from a Palette.
type Style int

const (
	StyleGrid Style = iota
	StyleAxis
	StyleCircle
	StyleRay
	StyleMarker
	StyleLabel
	styleCount
)

// Command is one drawing instruction in pixel coordinates.
//
// Lines use (X1,Y1)-(X2,Y2). Circles and discs are centred at (X1,Y1) with
// radius R. Text is drawn with its baseline starting at (X1,Y1).
type Command struct {
	Kind   Kind
	Style  Style
	X1, Y1 float64
	X2, Y2 float64
	R      float64
	Text   string
}

// Drawing is the full output of one render.
type Drawing struct {
	Viewport  Viewport
	Transform Transform
	Commands  []Command
}

func (d *Drawing) line(s Style, x1, y1, x2, y2 float64) {
	d.Commands = append(d.Commands, Command{Kind: KindLine, Style: s, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// Canvas is a drawing backend.
type Canvas interface {
	Line(x1, y1, x2, y2 float64, s Style) error
	Circle(cx, cy, r float64, s Style) error
	Disc(cx, cy, r float64, s Style) error
	Text(s string, x, y float64, st Style) error
}

// Replay sends every command to c in order and stops at the first error.
func (d Drawing) Replay(c Canvas) error {
	for _, cmd := range d.Commands {
		var err error
		switch cmd.Kind {
		case KindLine:
			err = c.Line(cmd.X1, cmd.Y1, cmd.X2, cmd.Y2, cmd.Style)
		case KindCircle:
			err = c.Circle(cmd.X1, cmd.Y1, cmd.R, cmd.Style)
		case KindDisc:
			err = c.Disc(cmd.X1, cmd.Y1, cmd.R, cmd.Style)
		case KindText:
			err = c.Text(cmd.Text, cmd.X1, cmd.Y1, cmd.Style)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Pen is the color and stroke width used for a Style.
type Pen struct {
	Color color.RGBA
	Width float64
}

// Palette maps styles to pens.
type Palette [styleCount]Pen

var (
	lightGray = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	black     = color.RGBA{A: 255}
	blue      = color.RGBA{B: 255, A: 255}
	magenta   = color.RGBA{R: 255, B: 255, A: 255}
	red       = color.RGBA{R: 255, A: 255}
)

// DefaultPalette: light gray grid, bold black axes, blue circle, magenta ray,
// red marker and label.
var DefaultPalette = Palette{
	StyleGrid:   {Color: lightGray, Width: 1},
	StyleAxis:   {Color: black, Width: 2},
	StyleCircle: {Color: blue, Width: 1},
	StyleRay:    {Color: magenta, Width: 1},
	StyleMarker: {Color: red, Width: 1},
	StyleLabel:  {Color: red, Width: 1},
}

// Pen returns the pen for s, falling back to the grid pen.
func (p *Palette) Pen(s Style) Pen {
	if s < 0 || s >= styleCount {
		return p[StyleGrid]
	}
	return p[s]
}
