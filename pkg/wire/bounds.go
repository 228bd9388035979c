package wire

import "math"

// Rect is an axis aligned rectangle in wire units.
type Rect struct {
	X, Y, W, H float64
}

// bulge is how far a bend reaches past its end joint, measured along the
// direction the wire travelled before the bend.
const bulge = 0.5

// Bounds returns the rectangle covering the joints of p together with the
// origin. After a bend the joint is pushed out by the bend's bulge along the
// previous direction of travel.
func Bounds(p Program) Rect {
	var minX, minY, maxX, maxY float64
	prev := Origin.Dir
	for _, s := range Trace(p) {
		x, y := s.To.X, s.To.Y
		if s.IsBend() {
			switch prev {
			case Right:
				x += bulge
			case Left:
				x -= bulge
			case Up:
				y += bulge
			case Down:
				y -= bulge
			}
		}
		prev = s.To.Dir

		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Lerp interpolates linearly from r to to. t is not clamped.
func (r Rect) Lerp(to Rect, t float64) Rect {
	return Rect{
		X: r.X + (to.X-r.X)*t,
		Y: r.Y + (to.Y-r.Y)*t,
		W: r.W + (to.W-r.W)*t,
		H: r.H + (to.H-r.H)*t,
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.W, o.X+o.W)
	maxY := math.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}
