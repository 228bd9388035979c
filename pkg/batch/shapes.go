package batch

import "math"

// quad is the two-triangle index pattern shared by rects and thick lines.
var quad = [6]uint32{0, 1, 2, 2, 3, 0}

// Rect appends an axis-aligned filled rectangle.
// Vertices: (x,y), (x+w,y), (x+w,y+h), (x,y+h).
func (b *Batch) Rect(x, y, w, h float64, c Color) {
	n := b.base()
	v := []Vertex{
		vertex(x, y, c),
		vertex(x+w, y, c),
		vertex(x+w, y+h, c),
		vertex(x, y+h, c),
	}
	i := make([]uint32, len(quad))
	for j, q := range quad {
		i[j] = n + q
	}
	b.Append(i, v)
}

// RectLine appends a rectangular frame. ti is the thickness inside the
// rectangle, to the thickness outside of it.
func (b *Batch) RectLine(x, y, w, h, ti, to float64, c Color) {
	b.Rect(x-to, y, ti+to, h, c)
	b.Rect(x, y-to, w, ti+to, c)
	b.Rect(x, y+h-ti, w, ti+to, c)
	b.Rect(x+w-ti, y, ti+to, h, c)
}

// Line appends a segment of the given thickness starting at (x,y) and
// running length units along angle.
func (b *Batch) Line(x, y, angle, length, thickness float64, c Color) {
	dx := math.Sin(angle) * thickness / 2
	dy := math.Cos(angle) * thickness / 2
	ex := x + math.Cos(angle)*length
	ey := y + math.Sin(angle)*length

	n := b.base()
	v := []Vertex{
		vertex(x-dx, y+dy, c),
		vertex(x+dx, y-dy, c),
		vertex(ex+dx, ey-dy, c),
		vertex(ex-dx, ey+dy, c),
	}
	i := make([]uint32, len(quad))
	for j, q := range quad {
		i[j] = n + q
	}
	b.Append(i, v)
}

// Circle appends a triangle fan of n triangles: the center followed by n
// rim points at angles 2*pi*j/n.
func (b *Batch) Circle(x, y, r float64, n int, c Color) {
	n = max(n, MinClosedSegments)
	base := b.base()

	i := make([]uint32, 0, n*3)
	for j := 0; j < n-1; j++ {
		i = append(i, base, base+uint32(j)+1, base+uint32(j)+2)
	}
	i = append(i, base, base+uint32(n), base+1)

	da := math.Pi * 2 / float64(n)
	v := make([]Vertex, 0, n+1)
	v = append(v, vertex(x, y, c))
	for j := 0; j < n; j++ {
		a := da * float64(j)
		v = append(v, vertex(x+math.Cos(a)*r, y+math.Sin(a)*r, c))
	}

	b.Append(i, v)
}

// PieSlice appends a fan over the sweep starting at offset: the center
// followed by n rim points, n-1 triangles.
func (b *Batch) PieSlice(x, y, r, offset, sweep float64, n int, c Color) {
	n = max(n, MinSliceSegments)
	base := b.base()

	i := make([]uint32, 0, (n-1)*3)
	for j := 0; j < n-1; j++ {
		i = append(i, base, base+uint32(j)+1, base+uint32(j)+2)
	}

	da := sweep / float64(n-1)
	v := make([]Vertex, 0, n+1)
	v = append(v, vertex(x, y, c))
	for j := 0; j < n; j++ {
		a := da*float64(j) + offset
		v = append(v, vertex(x+math.Cos(a)*r, y+math.Sin(a)*r, c))
	}

	b.Append(i, v)
}

// Ring appends a closed band of thickness t centered on radius r. Vertices
// alternate inner/outer for each of the n angular steps, with one quad per
// step; the last quad closes back onto the first step.
func (b *Batch) Ring(x, y, r, t float64, n int, c Color) {
	n = max(n, MinClosedSegments)
	base := b.base()

	i := make([]uint32, 0, n*6)
	for j := 0; j < n-1; j++ {
		i = appendBandQuad(i, base+uint32(j)*2)
	}
	last := base + uint32(n)*2
	i = append(i, last-2, last-1, base+1, base+1, base+2, last-2)

	v := bandVertices(x, y, r, t, 0, math.Pi*2/float64(n), n, c)
	b.Append(i, v)
}

// RingSlice appends a band of thickness t centered on radius r over the
// sweep starting at offset: n angular steps, n-1 quads.
func (b *Batch) RingSlice(x, y, r, t, offset, sweep float64, n int, c Color) {
	n = max(n, MinSliceSegments)
	base := b.base()

	i := make([]uint32, 0, (n-1)*6)
	for j := 0; j < n-1; j++ {
		i = appendBandQuad(i, base+uint32(j)*2)
	}

	v := bandVertices(x, y, r, t, offset, sweep/float64(n-1), n, c)
	b.Append(i, v)
}

// appendBandQuad appends the two triangles joining step k (vertices k, k+1)
// to step k+1 (vertices k+2, k+3).
func appendBandQuad(i []uint32, k uint32) []uint32 {
	return append(i, k, k+1, k+3, k+3, k+2, k)
}

func bandVertices(x, y, r, t, offset, da float64, n int, c Color) []Vertex {
	r0 := r - t/2
	r1 := r + t/2
	v := make([]Vertex, 0, n*2)
	for j := 0; j < n; j++ {
		a := da*float64(j) + offset
		cos, sin := math.Cos(a), math.Sin(a)
		v = append(v,
			vertex(x+cos*r0, y+sin*r0, c),
			vertex(x+cos*r1, y+sin*r1, c),
		)
	}
	return v
}
