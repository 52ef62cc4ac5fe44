package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	barColor      = color.RGBA{R: 236, G: 238, B: 242, A: 255}
	borderColor   = color.RGBA{R: 150, G: 160, B: 175, A: 255}
	focusColor    = color.RGBA{R: 70, G: 110, B: 190, A: 255}
	inkColor      = color.RGBA{R: 20, G: 20, B: 28, A: 255}
	fieldColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	buttonNormal  = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	buttonHovered = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	buttonPressed = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	buttonInk     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	optionHover   = color.RGBA{R: 210, G: 222, B: 245, A: 255}
)

func contains(r image.Rectangle, x, y int) bool {
	return image.Pt(x, y).In(r)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func strokeRect(dst *ebiten.Image, r image.Rectangle, width float32, c color.Color) {
	vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), width, c, false)
}

// drawText draws s vertically centred in r, starting at r.Min.X+pad or
// horizontally centred when pad is negative.
func drawText(dst *ebiten.Image, face text.Face, s string, r image.Rectangle, pad int, c color.Color) {
	w, h := text.Measure(s, face, 0)
	x := float64(r.Min.X + pad)
	if pad < 0 {
		x = float64(r.Min.X) + (float64(r.Dx())-w)/2
	}
	y := float64(r.Min.Y) + (float64(r.Dy())-h)/2
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

type button struct {
	rect    image.Rectangle
	label   string
	hovered bool
	pressed bool
}

// update tracks hover and press state and reports a completed click:
// pressed and released while the cursor stays on the button.
func (b *button) update(mx, my int, justPressed, justReleased bool) bool {
	b.hovered = contains(b.rect, mx, my)
	if b.hovered && justPressed {
		b.pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *button) draw(dst *ebiten.Image, face text.Face) {
	var bg color.Color
	switch {
	case b.pressed:
		bg = buttonPressed
	case b.hovered:
		bg = buttonHovered
	default:
		bg = buttonNormal
	}
	fillRect(dst, b.rect, bg)
	strokeRect(dst, b.rect, 2, borderColor)
	drawText(dst, face, b.label, b.rect, -1, buttonInk)
}

type textField struct {
	rect image.Rectangle
}

func (f *textField) draw(dst *ebiten.Image, face text.Face, value string, focused, caret bool) {
	fillRect(dst, f.rect, fieldColor)
	border := borderColor
	if focused {
		border = focusColor
	}
	strokeRect(dst, f.rect, 1, border)
	if focused && caret {
		value += "|"
	}
	drawText(dst, face, value, f.rect, 4, inkColor)
}

type dropdown struct {
	rect    image.Rectangle
	options []string
	open    bool
	hover   int
}

func (d *dropdown) optionRect(i int) image.Rectangle {
	h := d.rect.Dy()
	return image.Rect(d.rect.Min.X, d.rect.Max.Y+i*h, d.rect.Max.X, d.rect.Max.Y+(i+1)*h)
}

// update handles a click and returns the chosen option index, or -1.
// consumed is true when the click belonged to the dropdown.
func (d *dropdown) update(mx, my int, justPressed bool) (choice int, consumed bool) {
	d.hover = -1
	if d.open {
		for i := range d.options {
			if contains(d.optionRect(i), mx, my) {
				d.hover = i
			}
		}
	}
	if !justPressed {
		return -1, false
	}
	if contains(d.rect, mx, my) {
		d.open = !d.open
		return -1, true
	}
	if d.open {
		d.open = false
		return d.hover, true
	}
	return -1, false
}

func (d *dropdown) draw(dst *ebiten.Image, face text.Face, selected int) {
	fillRect(dst, d.rect, fieldColor)
	strokeRect(dst, d.rect, 1, borderColor)
	if selected >= 0 && selected < len(d.options) {
		drawText(dst, face, d.options[selected], d.rect, 6, inkColor)
	}
	// arrow
	ax := float32(d.rect.Max.X - 14)
	ay := float32(d.rect.Min.Y + d.rect.Dy()/2)
	vector.StrokeLine(dst, ax-4, ay-2, ax, ay+2, 1.5, inkColor, true)
	vector.StrokeLine(dst, ax, ay+2, ax+4, ay-2, 1.5, inkColor, true)
}

// drawList draws the open option list. It is called after the canvas so the
// list overlaps it.
func (d *dropdown) drawList(dst *ebiten.Image, face text.Face, selected int) {
	if !d.open {
		return
	}
	for i, opt := range d.options {
		r := d.optionRect(i)
		bg := color.Color(fieldColor)
		if i == d.hover || (d.hover < 0 && i == selected) {
			bg = optionHover
		}
		fillRect(dst, r, bg)
		strokeRect(dst, r, 1, borderColor)
		drawText(dst, face, opt, r, 6, inkColor)
	}
}
