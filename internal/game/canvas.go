package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/circle-through-point/internal/plane"
)

// canvas draws plane commands onto an ebiten image.
type canvas struct {
	dst     *ebiten.Image
	face    *text.GoTextFace
	palette *plane.Palette
}

func (c *canvas) Line(x1, y1, x2, y2 float64, s plane.Style) error {
	p := c.palette.Pen(s)
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(p.Width), p.Color, true)
	return nil
}

func (c *canvas) Circle(cx, cy, r float64, s plane.Style) error {
	if r <= 0 {
		return nil
	}
	p := c.palette.Pen(s)
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r), float32(p.Width), p.Color, true)
	return nil
}

func (c *canvas) Disc(cx, cy, r float64, s plane.Style) error {
	p := c.palette.Pen(s)
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), p.Color, true)
	return nil
}

// Text draws str with its baseline at y.
func (c *canvas) Text(str string, x, y float64, s plane.Style) error {
	p := c.palette.Pen(s)
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-c.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(p.Color)
	text.Draw(c.dst, str, c.face, op)
	return nil
}
