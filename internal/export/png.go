// Package export rasterizes a plane.Drawing off screen and writes it as PNG.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/circle-through-point/internal/plane"
)

// LabelSize is the font size of the coordinate label in points.
const LabelSize = 14

// canvas draws plane commands onto a gg context.
type canvas struct {
	dc      *gg.Context
	palette *plane.Palette
}

func (c *canvas) pen(s plane.Style) {
	p := c.palette.Pen(s)
	c.dc.SetColor(p.Color)
	c.dc.SetLineWidth(p.Width)
}

func (c *canvas) Line(x1, y1, x2, y2 float64, s plane.Style) error {
	c.pen(s)
	c.dc.DrawLine(x1, y1, x2, y2)
	return c.dc.Stroke()
}

func (c *canvas) Circle(cx, cy, r float64, s plane.Style) error {
	if r <= 0 {
		return nil
	}
	c.pen(s)
	c.dc.DrawCircle(cx, cy, r)
	return c.dc.Stroke()
}

func (c *canvas) Disc(cx, cy, r float64, s plane.Style) error {
	c.pen(s)
	c.dc.DrawCircle(cx, cy, r)
	return c.dc.Fill()
}

func (c *canvas) Text(str string, x, y float64, s plane.Style) error {
	c.pen(s)
	c.dc.DrawString(str, x, y)
	return nil
}

// EncodePNG rasterizes d on a white background and writes it to w.
func EncodePNG(w io.Writer, d plane.Drawing) error {
	if d.Viewport.Width <= 0 || d.Viewport.Height <= 0 {
		return fmt.Errorf("export: empty viewport %dx%d", d.Viewport.Width, d.Viewport.Height)
	}

	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("export: load font: %w", err)
	}
	defer func() { _ = source.Close() }()

	dc := gg.NewContext(d.Viewport.Width, d.Viewport.Height)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.White)
	dc.SetFont(source.Face(LabelSize))

	c := &canvas{dc: dc, palette: &plane.DefaultPalette}
	if err := d.Replay(c); err != nil {
		return fmt.Errorf("export: draw: %w", err)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	return nil
}

// SavePNG writes d to the file at path, replacing it if present.
func SavePNG(path string, d plane.Drawing) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	bw := bufio.NewWriter(f)
	if err := EncodePNG(bw, d); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: %w", err)
	}
	return f.Close()
}
