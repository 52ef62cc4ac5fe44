package plane

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultDensity is the grid density restored by reset.
const DefaultDensity = 10

// Densities lists the grid densities the renderer accepts, in menu order.
var Densities = []int{10, 15, 20, 30, 40, 50}

// ErrUnknownDensity is returned for density labels outside Densities.
var ErrUnknownDensity = errors.New("unknown grid density")

// Point is a position in the logical coordinate system.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Target is either a Point or unset. The zero value is unset.
type Target struct {
	p   Point
	set bool
}

// Unset is the empty Target.
var Unset = Target{}

// At returns a Target holding (x, y).
func At(x, y int) Target {
	return Target{p: Point{X: x, Y: y}, set: true}
}

// Point returns the held point and whether the target is set.
func (t Target) Point() (Point, bool) {
	return t.p, t.set
}

// IsSet reports whether the target holds a point.
func (t Target) IsSet() bool { return t.set }

// Metrics are the polar values of a point relative to the origin.
type Metrics struct {
	Radius float64
	// Angle in degrees, in [0, 360).
	Angle float64
}

// Measure computes radius and angle for p.
func Measure(p Point) Metrics {
	x, y := float64(p.X), float64(p.Y)
	deg := math.Atan2(y, x) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	// tiny negative angles round up to exactly 360
	if deg >= 360 {
		deg -= 360
	}
	return Metrics{
		Radius: math.Hypot(x, y),
		Angle:  deg,
	}
}

// Metrics returns the metrics of the target; ok is false when unset.
func (t Target) Metrics() (m Metrics, ok bool) {
	if !t.set {
		return Metrics{}, false
	}
	return Measure(t.p), true
}

// ValidDensity reports whether n is one of Densities.
func ValidDensity(n int) bool {
	for _, d := range Densities {
		if d == n {
			return true
		}
	}
	return false
}

// DensityLabel formats n the way the density menu shows it, e.g. "20x20".
func DensityLabel(n int) string {
	return fmt.Sprintf("%dx%d", n, n)
}

// DensityLabels returns the menu entries for Densities.
func DensityLabels() []string {
	out := make([]string, len(Densities))
	for i, d := range Densities {
		out[i] = DensityLabel(d)
	}
	return out
}

// ParseDensity parses a menu label such as "30x30".
func ParseDensity(label string) (int, error) {
	head, _, ok := strings.Cut(strings.TrimSpace(label), "x")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDensity, label)
	}
	n, err := strconv.Atoi(head)
	if err != nil || !ValidDensity(n) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDensity, label)
	}
	return n, nil
}
