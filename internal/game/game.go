// Package game is the ebiten window: the control bar with its fields,
// dropdown and buttons, and the canvas the coordinate plane is painted on.
package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/circle-through-point/internal/config"
	"github.com/iburimskiy/circle-through-point/internal/control"
	"github.com/iburimskiy/circle-through-point/internal/export"
	"github.com/iburimskiy/circle-through-point/internal/plane"
)

const (
	caretBlinkTicks = 30
	repeatDelay     = 30
	repeatInterval  = 3
)

type game struct {
	session *control.Session
	log     *slog.Logger
	dialogs dialogs
	sound   sound

	face     *text.GoTextFace
	canvas   *ebiten.Image
	canvasVP plane.Viewport

	// layout
	width, height int
	labels        []fieldLabel
	fields        [2]textField
	density       dropdown
	compute       button
	reset         button
	exit          button
	radiusRect    image.Rectangle
	angleRect     image.Rectangle

	ticks   int
	lastErr error
}

type fieldLabel struct {
	rect image.Rectangle
	text string
}

// NewGame builds the window state around s.
func NewGame(s *control.Session, opts config.Options, log *slog.Logger) (*game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	g := &game{
		session: s,
		log:     log,
		dialogs: zenityDialogs{},
		sound:   newSound(opts.Sound, log),
		face:    &text.GoTextFace{Source: src, Size: config.FontSize},
		width:   config.WindowWidth,
		height:  config.WindowHeight,
	}
	g.layoutControls()
	return g, nil
}

func (g *game) layoutControls() {
	row := func(x, w int) image.Rectangle {
		return image.Rect(x, config.Row1Y, x+w, config.Row1Y+config.RowHeight)
	}
	x := config.Margin
	next := func(w int) image.Rectangle {
		r := row(x, w)
		x += w + config.ButtonGap
		return r
	}

	g.labels = g.labels[:0]
	g.labels = append(g.labels, fieldLabel{next(config.LabelWidth), "X:"})
	g.fields[control.FieldX].rect = next(config.FieldWidth)
	g.labels = append(g.labels, fieldLabel{next(config.LabelWidth), "Y:"})
	g.fields[control.FieldY].rect = next(config.FieldWidth)
	g.labels = append(g.labels, fieldLabel{next(2 * config.LabelWidth), "Grid:"})
	g.density = dropdown{rect: next(config.DropdownWidth), options: plane.DensityLabels(), hover: -1}
	g.compute = button{rect: next(config.ButtonWidth), label: "Compute"}
	g.reset = button{rect: next(config.ButtonWidth), label: "Reset"}
	g.exit = button{rect: next(config.ButtonWidth), label: "Exit"}

	half := (max(g.width, config.MinWindowWidth) - 2*config.Margin) / 2
	g.radiusRect = image.Rect(config.Margin, config.Row2Y, config.Margin+half, config.Row2Y+config.RowHeight)
	g.angleRect = image.Rect(config.Margin+half, config.Row2Y, config.Margin+2*half, config.Row2Y+config.RowHeight)
}

func (g *game) viewport() plane.Viewport {
	return plane.Viewport{
		Width:  max(g.width, 1),
		Height: max(g.height-config.ControlBarHeight, 1),
	}
}

func (g *game) Update() error {
	g.ticks++

	mx, my := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	// The open list lies on top of everything else and takes the click.
	choice, consumed := g.density.update(mx, my, pressed)
	if choice >= 0 {
		g.session.SelectDensity(choice)
	}
	if consumed {
		pressed = false
	}

	if pressed {
		for f := range g.fields {
			if contains(g.fields[f].rect, mx, my) {
				g.session.Focus(control.Field(f))
			}
		}
	}

	if g.compute.update(mx, my, pressed, released) {
		g.doCompute()
	}
	if g.reset.update(mx, my, pressed, released) {
		g.doReset()
	}
	if g.exit.update(mx, my, pressed, released) {
		g.session.Exit()
	}

	g.handleKeys()

	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) handleKeys() {
	for _, r := range ebiten.AppendInputChars(nil) {
		g.session.Type(r)
	}
	if repeating(ebiten.KeyBackspace) {
		g.session.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.session.FocusNext()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.doCompute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.density.open {
			g.density.open = false
		} else {
			g.session.Exit()
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.doSnapshot()
	}
}

func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func (g *game) doCompute() {
	m, err := g.session.Compute()
	if err != nil {
		if !errors.Is(err, control.ErrInvalidInput) {
			g.lastErr = err
			return
		}
		g.sound.reject()
		if derr := g.dialogs.Error(control.InvalidInputMessage); derr != nil {
			g.log.Error("error dialog failed", "err", derr)
			g.lastErr = err
		}
		return
	}
	g.lastErr = nil
	g.sound.confirm(m.Angle)
}

func (g *game) doReset() {
	g.session.Reset()
	g.density.open = false
	g.lastErr = nil
}

func (g *game) doSnapshot() {
	path, err := g.dialogs.SavePath(config.SnapshotName)
	if err != nil {
		g.log.Error("save dialog failed", "err", err)
		g.lastErr = err
		return
	}
	if path == "" {
		return
	}
	d := g.session.Renderer().Render(g.viewport())
	if err := export.SavePNG(path, d); err != nil {
		g.log.Error("snapshot failed", "path", path, "err", err)
		g.lastErr = err
		_ = g.dialogs.Error(err.Error())
		return
	}
	g.log.Info("snapshot saved", "path", path)
}

// paintPlane re-rasterizes the plane when its state or size changed.
func (g *game) paintPlane() {
	vp := g.viewport()
	r := g.session.Renderer()
	if g.canvas != nil && vp == g.canvasVP && !r.Dirty() {
		return
	}
	if g.canvas == nil || vp != g.canvasVP {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(vp.Width, vp.Height)
		g.canvasVP = vp
	}
	g.canvas.Fill(color.White)
	c := &canvas{dst: g.canvas, face: g.face, palette: &plane.DefaultPalette}
	if err := r.Render(vp).Replay(c); err != nil {
		g.lastErr = err
	}
	r.Clean()
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(barColor)

	g.paintPlane()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, config.ControlBarHeight)
	screen.DrawImage(g.canvas, op)

	g.drawControls(screen)
	g.density.drawList(screen, g.face, g.session.DensityIndex())
}

func (g *game) drawControls(screen *ebiten.Image) {
	for _, l := range g.labels {
		drawText(screen, g.face, l.text, l.rect, 0, inkColor)
	}
	caret := (g.ticks/caretBlinkTicks)%2 == 0
	for f := range g.fields {
		field := control.Field(f)
		g.fields[f].draw(screen, g.face, g.session.Text(field), g.session.Focused() == field, caret)
	}
	g.density.draw(screen, g.face, g.session.DensityIndex())
	g.compute.draw(screen, g.face)
	g.reset.draw(screen, g.face)
	g.exit.draw(screen, g.face)

	drawText(screen, g.face, g.session.RadiusText(), g.radiusRect, 0, inkColor)
	angle := g.session.AngleText()
	if g.lastErr != nil {
		angle += "    Error: " + g.lastErr.Error()
	}
	drawText(screen, g.face, angle, g.angleRect, 0, inkColor)
}

// Layout follows the window so the canvas can be resized.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	relayout := outsideWidth != g.width
	g.width, g.height = outsideWidth, outsideHeight
	if relayout {
		g.layoutControls()
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the user exits.
func Run(s *control.Session, opts config.Options, log *slog.Logger) error {
	g, err := NewGame(s, opts, log)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(config.MinWindowWidth, config.MinWindowHeight, -1, -1)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
