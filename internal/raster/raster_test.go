package raster

import (
	"image/color"
	"testing"

	"github.com/Faultbox/wirebender/pkg/batch"
)

var (
	bg  = batch.RGB(10, 20, 30)
	red = batch.RGB(255, 0, 0)
)

func rgba(c batch.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func TestRasterizeEmpty(t *testing.T) {
	img := Rasterize(batch.New(), 4, 4, bg)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := img.RGBAAt(x, y); got != rgba(bg) {
				t.Fatalf("pixel (%d, %d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestRasterizeTopHalf(t *testing.T) {
	b := batch.New()
	// y is up in device coordinates, so this covers the top rows.
	b.Rect(-1, 0, 2, 1, red)

	img := Rasterize(b, 8, 8, bg)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, rgba(red)},
		{7, 3, rgba(red)},
		{0, 4, rgba(bg)},
		{7, 7, rgba(bg)},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterizeLaterShapesOnTop(t *testing.T) {
	blue := batch.RGB(0, 0, 255)
	b := batch.New()
	b.Rect(-1, -1, 2, 2, red)
	b.Rect(0, -1, 1, 2, blue)

	img := Rasterize(b, 8, 8, bg)
	if got := img.RGBAAt(1, 4); got != rgba(red) {
		t.Errorf("left pixel = %v, want red", got)
	}
	if got := img.RGBAAt(6, 4); got != rgba(blue) {
		t.Errorf("right pixel = %v, want blue", got)
	}
}

func TestRasterizeMixedWinding(t *testing.T) {
	// Two triangles of one color covering the same square with opposite
	// winding must not cancel out.
	b := batch.New()
	v := []batch.Vertex{
		{X: -1, Y: -1, R: 255}, {X: 1, Y: -1, R: 255}, {X: 1, Y: 1, R: 255}, {X: -1, Y: 1, R: 255},
	}
	b.Append([]uint32{0, 1, 2, 2, 3, 0, 0, 2, 1, 0, 3, 2}, v)

	img := Rasterize(b, 4, 4, bg)
	if got := img.RGBAAt(3, 0); got != rgba(red) {
		t.Errorf("pixel (3, 0) = %v, want red", got)
	}
	if got := img.RGBAAt(0, 3); got != rgba(red) {
		t.Errorf("pixel (0, 3) = %v, want red", got)
	}
}

func TestRasterizeCircle(t *testing.T) {
	b := batch.New()
	b.Circle(0, 0, 0.5, 32, red)

	img := Rasterize(b, 16, 16, bg)
	if got := img.RGBAAt(8, 8); got != rgba(red) {
		t.Errorf("center = %v, want red", got)
	}
	if got := img.RGBAAt(0, 0); got != rgba(bg) {
		t.Errorf("corner = %v, want background", got)
	}
}
