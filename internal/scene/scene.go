// Package scene tessellates the machine and its wire into a batch, framed so
// the wire fits the viewport.
package scene

import (
	"math"

	"github.com/Faultbox/wirebender/internal/config"
	"github.com/Faultbox/wirebender/pkg/batch"
	wmath "github.com/Faultbox/wirebender/pkg/math"
	"github.com/Faultbox/wirebender/pkg/wire"
)

// HubRadius is the drawn radius of each hub.
const HubRadius = 0.5

// HubArea covers both hubs. Framing always keeps it in view.
var HubArea = wire.Rect{X: -HubRadius, Y: -1 - HubRadius, W: 2 * HubRadius, H: 2 + 2*HubRadius}

// feedLength is how far the feed wire is drawn behind the hubs.
const feedLength = 99

// Style holds colors and tessellation detail.
type Style struct {
	Background batch.Color
	Wire       batch.Color
	Active     batch.Color
	Feed       batch.Color
	Hub        batch.Color
	HubRim     batch.Color
	Progress   batch.Color
	Outline    batch.Color

	Thickness      float64 // drawn wire thickness in wire units
	RimThickness   float64
	CircleSegments int
	SliceSegments  int
	Margin         float64 // wire units kept free around the framed rect
}

// DefaultStyle returns the standard palette.
func DefaultStyle() Style {
	return Style{
		Background: batch.RGB(24, 26, 33),
		Wire:       batch.RGB(200, 200, 210),
		Active:     batch.RGB(240, 180, 60),
		Feed:       batch.RGB(140, 140, 150),
		Hub:        batch.RGB(70, 90, 120),
		HubRim:     batch.RGB(110, 140, 180),
		Progress:   batch.RGB(240, 180, 60),
		Outline:    batch.RGB(220, 60, 60),

		Thickness:      0.9,
		RimThickness:   0.06,
		CircleSegments: 48,
		SliceSegments:  16,
		Margin:         0.5,
	}
}

// StyleFrom returns the default palette with detail and margin taken from
// the render settings.
func StyleFrom(r config.RenderConfig) Style {
	s := DefaultStyle()
	s.CircleSegments = r.CircleSegments
	s.SliceSegments = r.SliceSegments
	s.Margin = r.Margin
	return s
}

// Frame returns the transform mapping r, widened to include HubArea and
// padded by margin, into normalized device coordinates. aspect is the
// viewport width over its height; the shorter side is stretched so wire
// units stay square.
func Frame(r wire.Rect, aspect, margin float64) wmath.Mat3 {
	view := r.Union(HubArea)
	cx, cy := view.Center()
	hw := view.W/2 + margin
	hh := view.H/2 + margin

	if aspect > 0 {
		if hw/hh < aspect {
			hw = hh * aspect
		} else {
			hh = hw / aspect
		}
	}

	return wmath.Scale(float32(1/hw), float32(1/hh)).Mul(wmath.Translate(float32(-cx), float32(-cy)))
}

// Builder tessellates wires with a Style.
type Builder struct {
	Style Style
}

// NewBuilder returns a Builder using s.
func NewBuilder(s Style) Builder {
	return Builder{Style: s}
}

// Build appends the feed wire, the hubs and every traced op of p to b,
// framed on view. When highlightActive is set the op at the hubs uses the
// active color. The returned transform is the framing applied.
func (bl Builder) Build(b *batch.Batch, p wire.Program, highlightActive bool, view wire.Rect, aspect float64) wmath.Mat3 {
	s := bl.Style
	from := b.VertexCount()

	b.Line(-feedLength, 0, 0, feedLength, s.Thickness, s.Feed)

	for _, y := range []float64{1, -1} {
		b.Circle(0, y, HubRadius, s.CircleSegments, s.Hub)
		b.Ring(0, y, HubRadius, s.RimThickness, s.CircleSegments, s.HubRim)
	}

	for k, seg := range wire.Trace(p) {
		c := s.Wire
		if highlightActive && k == 0 {
			c = s.Active
		}
		appendSegment(b, seg, s, c)
	}

	m := Frame(view, aspect, s.Margin)
	b.Transform(from, m)
	return m
}

func appendSegment(b *batch.Batch, seg wire.Segment, s Style, c batch.Color) {
	if !seg.IsBend() {
		b.Line(seg.From.X, seg.From.Y, seg.Angle(), wire.Quarter, s.Thickness, c)
		return
	}
	offset, sweep := seg.ArcSpan(1)
	b.RingSlice(seg.CX, seg.CY, 1, s.Thickness, offset, sweep, s.SliceSegments, c)
}

// Progress appends a pie indicator at (x, y) in device coordinates, filled
// clockwise from twelve o'clock by fraction t in [0, 1].
func (bl Builder) Progress(b *batch.Batch, x, y, r, t float64) {
	t = math.Max(0, math.Min(1, t))
	if t == 0 {
		return
	}
	sweep := 2 * math.Pi * t
	b.PieSlice(x, y, r, math.Pi/2-sweep, sweep, bl.Style.SliceSegments, bl.Style.Progress)
}

// Outline appends a frame around r, given in wire units, mapped through m.
func (bl Builder) Outline(b *batch.Batch, r wire.Rect, m wmath.Mat3) {
	from := b.VertexCount()
	t := bl.Style.RimThickness
	b.RectLine(r.X, r.Y, r.W, r.H, t/2, t/2, bl.Style.Outline)
	b.Transform(from, m)
}
