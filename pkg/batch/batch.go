// Package batch provides a growable indexed vertex buffer and the
// tessellation primitives used to fill it.
//
// A Batch is mode-agnostic: the same index list can be drawn as triangles or
// as line segments by the consumer. A Batch is owned by a single goroutine.
package batch

import (
	wmath "github.com/Faultbox/wirebender/pkg/math"
)

// Vertex is a 2D position with an 8-bit RGB color.
type Vertex struct {
	X, Y    float32
	R, G, B uint8
}

// Color is an 8-bit RGB color (0-255 per channel).
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Minimum segment counts for tessellated shapes.
const (
	MinClosedSegments = 3 // Circle, Ring
	MinSliceSegments  = 2 // PieSlice, RingSlice
)

// Batch holds indices and vertices appended since the last Clear.
// Counts are slice lengths; capacities grow by doubling, starting at 1.
type Batch struct {
	indices  []uint32
	vertices []Vertex
}

// New creates an empty batch.
func New() *Batch {
	return &Batch{}
}

// Clear resets the counts to zero. Capacity is retained.
func (b *Batch) Clear() {
	b.indices = b.indices[:0]
	b.vertices = b.vertices[:0]
}

// Release drops the backing storage.
func (b *Batch) Release() {
	b.indices = nil
	b.vertices = nil
}

// Indices returns the current index list. The slice aliases the batch
// storage and is valid until the next Append or Clear.
func (b *Batch) Indices() []uint32 {
	return b.indices
}

// Vertices returns the current vertex list. The slice aliases the batch
// storage and is valid until the next Append or Clear.
func (b *Batch) Vertices() []Vertex {
	return b.vertices
}

// IndexCount returns the number of indices.
func (b *Batch) IndexCount() int {
	return len(b.indices)
}

// VertexCount returns the number of vertices.
func (b *Batch) VertexCount() int {
	return len(b.vertices)
}

// IndexCap returns the allocated index capacity.
func (b *Batch) IndexCap() int {
	return cap(b.indices)
}

// VertexCap returns the allocated vertex capacity.
func (b *Batch) VertexCap() int {
	return cap(b.vertices)
}

// Append appends raw indices and vertices. Indices are stored as given, so
// they must already account for the vertex count at the time of the call.
// Either slice may be nil.
func (b *Batch) Append(indices []uint32, vertices []Vertex) {
	b.indices = appendGrow(b.indices, indices)
	b.vertices = appendGrow(b.vertices, vertices)
}

// Transform maps every vertex from index from onwards through m.
func (b *Batch) Transform(from int, m wmath.Mat3) {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(b.vertices); i++ {
		v := &b.vertices[i]
		p := m.TransformPoint(wmath.Vec2{X: v.X, Y: v.Y})
		v.X, v.Y = p.X, p.Y
	}
}

// appendGrow appends src to dst, doubling the capacity of dst until the
// result fits.
func appendGrow[T any](dst, src []T) []T {
	need := len(dst) + len(src)
	if need > cap(dst) {
		c := cap(dst)
		if c == 0 {
			c = 1
		}
		for c < need {
			c *= 2
		}
		grown := make([]T, len(dst), c)
		copy(grown, dst)
		dst = grown
	}
	return append(dst, src...)
}

func (b *Batch) base() uint32 {
	return uint32(len(b.vertices))
}

func vertex(x, y float64, c Color) Vertex {
	return Vertex{X: float32(x), Y: float32(y), R: c.R, G: c.G, B: c.B}
}

