package plane

import (
	"math"
)

const (
	// MarkerRadius is the pixel radius of the filled point marker.
	MarkerRadius = 5
	// LabelOffset is the pixel distance of the coordinate label from the marker.
	LabelOffset = 6
)

// Viewport is the size of the drawing surface in pixels.
type Viewport struct {
	Width, Height int
}

// Transform maps logical coordinates to pixels for one paint.
type Transform struct {
	OffsetX, OffsetY int
	// Scale is pixels per logical unit, never below 1.
	Scale int
}

// NewTransform centres the origin in vp and fits n cells to each edge.
func NewTransform(vp Viewport, n int) Transform {
	if n < 1 {
		n = DefaultDensity
	}
	scale := min(vp.Width, vp.Height) / (2 * n)
	if scale < 1 {
		scale = 1
	}
	return Transform{
		OffsetX: vp.Width / 2,
		OffsetY: vp.Height / 2,
		Scale:   scale,
	}
}

// Project returns the pixel position of p. Screen Y grows downward.
func (t Transform) Project(p Point) (px, py int) {
	return t.OffsetX + p.X*t.Scale, t.OffsetY - p.Y*t.Scale
}

// RadiusPixels is the rounded pixel radius of the circle through p.
func (t Transform) RadiusPixels(p Point) int {
	return int(math.Round(Measure(p).Radius * float64(t.Scale)))
}

// Renderer holds the drawing state of one coordinate plane.
type Renderer struct {
	target  Target
	density int
	dirty   bool
}

// NewRenderer returns a renderer with no point and the default density.
func NewRenderer() *Renderer {
	return &Renderer{
		density: DefaultDensity,
		dirty:   true,
	}
}

// SetPoint sets the point to (x, y).
func (r *Renderer) SetPoint(x, y int) {
	r.target = At(x, y)
	r.dirty = true
}

// ClearPoint unsets the point.
func (r *Renderer) ClearPoint() {
	r.target = Unset
	r.dirty = true
}

// SetGridDensity switches to n cells per half axis. Values outside
// Densities are ignored.
func (r *Renderer) SetGridDensity(n int) {
	if !ValidDensity(n) || n == r.density {
		return
	}
	r.density = n
	r.dirty = true
}

// Target returns the current point, possibly unset.
func (r *Renderer) Target() Target { return r.target }

// GridDensity returns the number of cells from the origin to each edge.
func (r *Renderer) GridDensity() int { return r.density }

// Dirty reports whether state changed since the last Clean.
func (r *Renderer) Dirty() bool { return r.dirty }

// Clean acknowledges that the current state has been painted.
func (r *Renderer) Clean() { r.dirty = false }

// Render produces the drawing for vp from the current state.
func (r *Renderer) Render(vp Viewport) Drawing {
	return Render(r.target, r.density, vp)
}

// Render is the stateless form of Renderer.Render.
func Render(target Target, n int, vp Viewport) Drawing {
	t := NewTransform(vp, n)
	if n < 1 {
		n = DefaultDensity
	}
	w, h := float64(vp.Width), float64(vp.Height)

	d := Drawing{
		Viewport:  vp,
		Transform: t,
		Commands:  make([]Command, 0, 4*n+10),
	}

	for i := -n; i <= n; i++ {
		x := float64(t.OffsetX + i*t.Scale)
		y := float64(t.OffsetY - i*t.Scale)
		d.line(StyleGrid, x, 0, x, h)
		d.line(StyleGrid, 0, y, w, y)
	}

	ox, oy := float64(t.OffsetX), float64(t.OffsetY)
	d.line(StyleAxis, 0, oy, w, oy)
	d.line(StyleAxis, ox, 0, ox, h)

	p, ok := target.Point()
	if !ok {
		return d
	}
	px, py := t.Project(p)
	fx, fy := float64(px), float64(py)

	d.Commands = append(d.Commands,
		Command{Kind: KindCircle, Style: StyleCircle, X1: ox, Y1: oy, R: float64(t.RadiusPixels(p))},
		Command{Kind: KindLine, Style: StyleRay, X1: ox, Y1: oy, X2: fx, Y2: fy},
		Command{Kind: KindDisc, Style: StyleMarker, X1: fx, Y1: fy, R: MarkerRadius},
		Command{Kind: KindText, Style: StyleLabel, X1: fx + LabelOffset, Y1: fy - LabelOffset, Text: p.String()},
	)
	return d
}
