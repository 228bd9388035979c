// Package raster draws a batch into an image on the CPU, for snapshots
// taken without a GPU.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/Faultbox/wirebender/pkg/batch"
	wmath "github.com/Faultbox/wirebender/pkg/math"
)

// Rasterize fills every indexed triangle of b, in order, into a w x h image
// cleared to bg. Vertices are in normalized device coordinates with y up.
// A triangle takes the color of its first vertex.
func Rasterize(b *batch.Batch, w, h int, bg batch.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opaque(bg)), image.Point{}, draw.Src)

	r := &runner{z: vector.NewRasterizer(w, h), img: img, w: w, h: h}
	r.z.DrawOp = draw.Over

	idx := b.Indices()
	verts := b.Vertices()
	for i := 0; i+2 < len(idx); i += 3 {
		v0, v1, v2 := verts[idx[i]], verts[idx[i+1]], verts[idx[i+2]]
		r.triangle(r.pixel(v0), r.pixel(v1), r.pixel(v2), batch.Color{R: v0.R, G: v0.G, B: v0.B})
	}
	r.flush()
	return img
}

// runner groups consecutive triangles of one color into a single path.
type runner struct {
	z    *vector.Rasterizer
	img  *image.RGBA
	w, h int

	pending bool
	color   batch.Color
}

func (r *runner) pixel(v batch.Vertex) wmath.Vec2 {
	return wmath.Vec2{
		X: (v.X + 1) / 2 * float32(r.w),
		Y: (1 - v.Y) / 2 * float32(r.h),
	}
}

func (r *runner) triangle(a, b, c wmath.Vec2, col batch.Color) {
	area := wmath.TriangleArea(a, b, c)
	if area == 0 {
		return
	}
	if r.pending && col != r.color {
		r.flush()
	}
	// Coverage of one path accumulates with sign, so every triangle is
	// wound the same way to keep overlaps filled.
	if area < 0 {
		b, c = c, b
	}
	r.z.MoveTo(a.X, a.Y)
	r.z.LineTo(b.X, b.Y)
	r.z.LineTo(c.X, c.Y)
	r.z.ClosePath()
	r.pending = true
	r.color = col
}

func (r *runner) flush() {
	if !r.pending {
		return
	}
	src := image.NewUniform(opaque(r.color))
	r.z.Draw(r.img, r.img.Bounds(), src, image.Point{})
	r.z.Reset(r.w, r.h)
	r.pending = false
}

func opaque(c batch.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
