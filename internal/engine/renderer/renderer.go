// Package renderer draws batches with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/wirebender/internal/engine/shader"
	"github.com/Faultbox/wirebender/internal/logger"
	"github.com/Faultbox/wirebender/pkg/batch"
)

// Mode selects how a batch's index list is drawn.
type Mode int

// Modes.
const (
	Triangles Mode = iota
	Lines
)

func (m Mode) primitive() uint32 {
	if m == Lines {
		return gl.LINES
	}
	return gl.TRIANGLES
}

func (m Mode) String() string {
	if m == Lines {
		return "lines"
	}
	return "triangles"
}

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background batch.Color
	Samples    int
}

// vertexStride is the byte size of one batch.Vertex: two float32 and three
// bytes, padded to four-byte alignment.
const vertexStride = int32(unsafe.Sizeof(batch.Vertex{}))

// Renderer owns the GL objects that draw a batch.
// It must be used from the thread holding the GL context.
type Renderer struct {
	config Config
	log    *zap.Logger

	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32

	// Buffer capacities in bytes; uploads reallocate only on growth.
	vboSize int
	eboSize int
}

// New creates a renderer. The GL context must be current.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	if cfg.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	bg := cfg.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)

	var err error
	r.program, err = shader.CompileProgram(shader.FlatVertex, shader.FlatFragment)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.createBuffers()
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// The element buffer binding is part of the VAO state.
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.UNSIGNED_BYTE, true, vertexStride, unsafe.Offsetof(batch.Vertex{}.R))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
		zap.Uint32("ebo", r.ebo),
		zap.Int32("stride", vertexStride),
	)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize sets the viewport to the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns the viewport width over its height.
func (r *Renderer) Aspect() float64 {
	if r.config.Height == 0 {
		return 1
	}
	return float64(r.config.Width) / float64(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Draw uploads b and draws its index list in mode.
func (r *Renderer) Draw(b *batch.Batch, mode Mode) {
	n := b.IndexCount()
	if n == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.vao)

	verts := b.Vertices()
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	r.vboSize = upload(gl.ARRAY_BUFFER, r.vboSize, len(verts)*int(vertexStride), unsafe.Pointer(&verts[0]))

	idx := b.Indices()
	r.eboSize = upload(gl.ELEMENT_ARRAY_BUFFER, r.eboSize, len(idx)*4, unsafe.Pointer(&idx[0]))

	gl.DrawElements(mode.primitive(), int32(n), gl.UNSIGNED_INT, nil)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// upload writes size bytes to the bound buffer, reallocating it when it is
// smaller than size. It returns the buffer capacity.
func upload(target uint32, capacity, size int, data unsafe.Pointer) int {
	if size > capacity {
		gl.BufferData(target, size, data, gl.STREAM_DRAW)
		return size
	}
	gl.BufferSubData(target, 0, size, data)
	return capacity
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.Flush()
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
