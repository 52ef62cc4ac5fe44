// Package control holds the state of the input surface: the two coordinate
// fields, the density selection and the result labels. It validates what the
// user typed and forwards it to a plane.Renderer.
package control

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iburimskiy/circle-through-point/internal/plane"
)

// Field identifies a coordinate text field.
type Field int

const (
	FieldX Field = iota
	FieldY
)

func (f Field) String() string {
	if f == FieldY {
		return "y"
	}
	return "x"
}

const (
	radiusPrefix = "Radius: "
	anglePrefix  = "Angle: "

	// maxFieldLen bounds what a text field accepts.
	maxFieldLen = 12
)

// RadiusLabel formats a radius the way the result label shows it.
func RadiusLabel(r float64) string {
	return fmt.Sprintf("%s%.2f", radiusPrefix, r)
}

// AngleLabel formats an angle in degrees the way the result label shows it.
func AngleLabel(deg float64) string {
	return fmt.Sprintf("%s%.2f°", anglePrefix, deg)
}

// Session is the control surface of one window.
type Session struct {
	renderer *plane.Renderer
	log      *slog.Logger

	fields  [2]string
	focus   Field
	density int // index into plane.Densities

	radius string
	angle  string
	done   bool
}

// NewSession creates a session driving r. A nil logger discards output.
func NewSession(r *plane.Renderer, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Session{renderer: r, log: log}
	s.clearLabels()
	s.density = densityIndex(r.GridDensity())
	return s
}

func densityIndex(n int) int {
	for i, d := range plane.Densities {
		if d == n {
			return i
		}
	}
	return 0
}

func (s *Session) Renderer() *plane.Renderer { return s.renderer }

func (s *Session) Text(f Field) string { return s.fields[f] }

// SetText replaces the content of field f.
func (s *Session) SetText(f Field, v string) { s.fields[f] = v }

func (s *Session) Focused() Field { return s.focus }

func (s *Session) Focus(f Field) { s.focus = f }

// FocusNext moves the focus to the other field.
func (s *Session) FocusNext() {
	if s.focus == FieldX {
		s.focus = FieldY
	} else {
		s.focus = FieldX
	}
}

// Type appends r to the focused field. Control characters are dropped.
func (s *Session) Type(r rune) {
	if r < ' ' || r == utf8.RuneError {
		return
	}
	cur := s.fields[s.focus]
	if utf8.RuneCountInString(cur) >= maxFieldLen {
		return
	}
	s.fields[s.focus] = cur + string(r)
}

// Backspace removes the last character of the focused field.
func (s *Session) Backspace() {
	cur := s.fields[s.focus]
	if cur == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(cur)
	s.fields[s.focus] = cur[:len(cur)-size]
}

func (s *Session) RadiusText() string { return s.radius }

func (s *Session) AngleText() string { return s.angle }

// DensityIndex is the selected entry of plane.Densities.
func (s *Session) DensityIndex() int { return s.density }

func parseField(f Field, v string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return 0, &InputError{Field: f, Value: v, Err: err}
	}
	return int(n), nil
}

// Compute parses both fields, updates the labels and sets the point.
// On a parse failure nothing changes and the error matches ErrInvalidInput.
func (s *Session) Compute() (plane.Metrics, error) {
	x, err := parseField(FieldX, s.fields[FieldX])
	if err != nil {
		s.log.Debug("rejecting input", "err", err)
		return plane.Metrics{}, err
	}
	y, err := parseField(FieldY, s.fields[FieldY])
	if err != nil {
		s.log.Debug("rejecting input", "err", err)
		return plane.Metrics{}, err
	}

	m := plane.Measure(plane.Point{X: x, Y: y})
	s.radius = RadiusLabel(m.Radius)
	s.angle = AngleLabel(m.Angle)
	s.renderer.SetPoint(x, y)
	s.log.Info("point set", "x", x, "y", y, "radius", m.Radius, "angle", m.Angle)
	return m, nil
}

// Reset clears the fields, labels and point and restores the default density.
func (s *Session) Reset() {
	s.fields = [2]string{}
	s.focus = FieldX
	s.density = 0
	s.clearLabels()
	s.renderer.ClearPoint()
	s.renderer.SetGridDensity(plane.DefaultDensity)
	s.log.Debug("reset")
}

func (s *Session) clearLabels() {
	s.radius = radiusPrefix
	s.angle = anglePrefix
}

// SelectDensity selects entry i of plane.Densities. Out of range indexes
// are ignored.
func (s *Session) SelectDensity(i int) {
	if i < 0 || i >= len(plane.Densities) {
		return
	}
	s.density = i
	s.renderer.SetGridDensity(plane.Densities[i])
	s.log.Debug("grid density", "n", plane.Densities[i])
}

// SelectDensityLabel selects a density by its menu label, e.g. "20x20".
func (s *Session) SelectDensityLabel(label string) error {
	n, err := plane.ParseDensity(label)
	if err != nil {
		return err
	}
	s.SelectDensity(densityIndex(n))
	return nil
}

// Exit marks the session finished.
func (s *Session) Exit() {
	s.done = true
	s.log.Debug("exit requested")
}

func (s *Session) Done() bool { return s.done }
