package collide

import (
	"math"

	"github.com/Faultbox/wirebender/pkg/wire"
)

// CurvesPerOp is the number of contour curves emitted for every op.
const CurvesPerOp = 4

// BoundaryCurves is the number of fixed curves describing the hubs and the
// feed wire.
const BoundaryCurves = 6

// feedStart is the x coordinate far behind the hubs where the feed wire
// begins.
const feedStart = -99

// contour appends the four curves outlining s.
func contour(dst []Curve, s wire.Segment, sm float64) []Curve {
	if s.IsBend() {
		offset, sweep := s.ArcSpan(sm)
		return appendArc(dst, s.CX, s.CY, offset, sweep, sm)
	}
	return appendLine(dst, Line{
		X:      s.From.X,
		Y:      s.From.Y,
		Angle:  s.Angle(),
		Length: wire.Quarter * sm,
	}, sm)
}

// appendLine outlines a centerline of thickness t: both long edges and the
// two end caps.
func appendLine(dst []Curve, c Line, t float64) []Curve {
	right := c.Angle - math.Pi/2
	left := c.Angle + math.Pi/2

	x1 := c.X + math.Cos(right)*t/2
	y1 := c.Y + math.Sin(right)*t/2
	x2 := c.X + math.Cos(left)*t/2
	y2 := c.Y + math.Sin(left)*t/2
	x3 := x1 + math.Cos(c.Angle)*c.Length
	y3 := y1 + math.Sin(c.Angle)*c.Length

	return append(dst,
		Line{X: x1, Y: y1, Angle: c.Angle, Length: c.Length},
		Line{X: x2, Y: y2, Angle: c.Angle, Length: c.Length},
		Line{X: x1, Y: y1, Angle: left, Length: t},
		Line{X: x3, Y: y3, Angle: left, Length: t},
	)
}

// appendArc outlines a bend of thickness t around a unit circle: the
// radial caps at both ends of the span and the inner and outer arcs.
func appendArc(dst []Curve, cx, cy, offset, sweep, t float64) []Curve {
	r := 1 - t/2
	end := offset + sweep

	return append(dst,
		Line{X: cx + math.Cos(offset)*r, Y: cy + math.Sin(offset)*r, Angle: offset, Length: t},
		Line{X: cx + math.Cos(end)*r, Y: cy + math.Sin(end)*r, Angle: end, Length: t},
		Arc{X: cx, Y: cy, R: r, Offset: offset, Sweep: sweep},
		Arc{X: cx, Y: cy, R: r + t, Offset: offset, Sweep: sweep},
	)
}

// boundary returns the hub circles and the contour of the feed wire that
// enters between them from the far left.
func boundary(sm float64) [BoundaryCurves]Curve {
	return [BoundaryCurves]Curve{
		Arc{X: 0, Y: 1, R: sm / 2, Offset: 0, Sweep: 2 * math.Pi * sm},
		Arc{X: 0, Y: -1, R: sm / 2, Offset: 0, Sweep: 2 * math.Pi * sm},
		Line{X: feedStart, Y: -sm / 2, Angle: 0, Length: -feedStart - 1 + sm},
		Line{X: feedStart, Y: sm / 2, Angle: 0, Length: -feedStart - 1 + sm},
		Line{X: feedStart, Y: -sm / 2, Angle: math.Pi / 2, Length: sm},
		Line{X: sm - 1, Y: -sm / 2, Angle: math.Pi / 2, Length: sm},
	}
}
