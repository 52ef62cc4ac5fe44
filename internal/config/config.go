package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iburimskiy/circle-through-point/internal/plane"
)

const (
	WindowTitle = "Circle through point (x, y)"

	// Canvas size at startup; the control bar sits above it.
	CanvasWidth  = 800
	CanvasHeight = 800

	ControlBarHeight = 80

	WindowWidth  = CanvasWidth
	WindowHeight = CanvasHeight + ControlBarHeight

	// Control widgets
	RowHeight     = 28
	Row1Y         = 10
	Row2Y         = 46
	Margin        = 10
	LabelWidth    = 24
	FieldWidth    = 64
	DropdownWidth = 84
	ButtonWidth   = 84
	ButtonGap     = 8

	FontSize = 15

	// MinWindowWidth fits the control row: three labels, two fields, the
	// dropdown and three buttons.
	MinWindowWidth  = 2*Margin + 4*LabelWidth + 2*FieldWidth + DropdownWidth + 3*ButtonWidth + 8*ButtonGap
	MinWindowHeight = ControlBarHeight + 12*RowHeight

	// Audio feedback
	ToneMillis = 180
	BuzzMillis = 250

	SnapshotName = "circle.png"
)

// Options are the runtime settings taken from the command line.
type Options struct {
	Grid    int
	Sound   bool
	Verbose bool

	// Render, when set, draws one frame to this PNG file and exits.
	Render string
	Size   Size
	// X and Y are the point for Render; nil leaves the point unset.
	X, Y *int
}

// Size is a WIDTHxHEIGHT flag value.
type Size struct {
	Width, Height int
}

func (s *Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func (s *Size) Set(v string) error {
	w, h, ok := strings.Cut(strings.ToLower(v), "x")
	if !ok {
		return fmt.Errorf("size %q: want WIDTHxHEIGHT", v)
	}
	wi, err := strconv.Atoi(w)
	if err != nil || wi <= 0 {
		return fmt.Errorf("size %q: bad width", v)
	}
	hi, err := strconv.Atoi(h)
	if err != nil || hi <= 0 {
		return fmt.Errorf("size %q: bad height", v)
	}
	s.Width, s.Height = wi, hi
	return nil
}

// intFlag records whether an int flag was given at all.
type intFlag struct {
	v **int
}

func (f intFlag) String() string {
	if f.v == nil || *f.v == nil {
		return ""
	}
	return strconv.Itoa(**f.v)
}

func (f intFlag) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return err
	}
	v := int(n)
	*f.v = &v
	return nil
}

// ErrPartialPoint is returned when only one of -x and -y is given.
var ErrPartialPoint = errors.New("-x and -y must be given together")

// Parse reads options from args (without the program name).
func Parse(name string, args []string, out io.Writer) (Options, error) {
	o := Options{
		Grid: plane.DefaultDensity,
		Size: Size{CanvasWidth, CanvasHeight},
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&o.Grid, "grid", o.Grid, fmt.Sprintf("initial grid density, one of %v", plane.Densities))
	fs.BoolVar(&o.Sound, "sound", false, "play a tone on compute")
	fs.BoolVar(&o.Verbose, "v", false, "debug logging")
	fs.StringVar(&o.Render, "render", "", "render once to this PNG file and exit")
	fs.Var(&o.Size, "size", "canvas size for -render")
	fs.Var(intFlag{&o.X}, "x", "point x for -render")
	fs.Var(intFlag{&o.Y}, "y", "point y for -render")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if !plane.ValidDensity(o.Grid) {
		return o, fmt.Errorf("grid %d: %w", o.Grid, plane.ErrUnknownDensity)
	}
	if (o.X == nil) != (o.Y == nil) {
		return o, ErrPartialPoint
	}
	return o, nil
}

// Target is the point requested by -x and -y.
func (o Options) Target() plane.Target {
	if o.X == nil || o.Y == nil {
		return plane.Unset
	}
	return plane.At(*o.X, *o.Y)
}
