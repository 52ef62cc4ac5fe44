package export

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/circle-through-point/internal/plane"
)

func decode(t *testing.T, b []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return img
}

func gray(img image.Image, x, y int) uint32 {
	r, g, b, _ := img.At(x, y).RGBA()
	return (r + g + b) / 3 >> 8
}

func TestEncodePNG(t *testing.T) {
	vp := plane.Viewport{Width: 200, Height: 160}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, plane.Render(plane.Unset, 10, vp)); err != nil {
		t.Fatal(err)
	}
	img := decode(t, buf.Bytes())

	if got := img.Bounds().Size(); got != image.Pt(200, 160) {
		t.Fatalf("size = %v", got)
	}
	// scale is 8: (104,84) sits inside a cell, (100,80) is where the axes cross
	if v := gray(img, 104, 84); v < 200 {
		t.Errorf("cell interior is %d, want near white", v)
	}
	if v := gray(img, 100, 80); v > 100 {
		t.Errorf("axis crossing is %d, want dark", v)
	}
}

func TestEncodePNGMarker(t *testing.T) {
	vp := plane.Viewport{Width: 200, Height: 200}
	d := plane.Render(plane.At(3, 4), 10, vp)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, d); err != nil {
		t.Fatal(err)
	}
	img := decode(t, buf.Bytes())

	px, py := d.Transform.Project(plane.Point{X: 3, Y: 4})
	r, g, b, _ := img.At(px, py).RGBA()
	if r>>8 < 200 || g>>8 > 80 || b>>8 > 80 {
		t.Errorf("marker pixel = %d,%d,%d, want red", r>>8, g>>8, b>>8)
	}
}

func TestEncodePNGEmptyViewport(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, plane.Drawing{}); err == nil {
		t.Fatal("expected error for empty viewport")
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plane.png")
	d := plane.Render(plane.At(-2, 1), 15, plane.Viewport{Width: 120, Height: 90})
	if err := SavePNG(path, d); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := decode(t, b).Bounds().Dx(); got != 120 {
		t.Errorf("width = %d", got)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "plane.png")
	d := plane.Render(plane.Unset, 10, plane.Viewport{Width: 10, Height: 10})
	if err := SavePNG(path, d); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
