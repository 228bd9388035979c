package collide

import "math"

// Coincident is the intersection count CircleCircle reports for two
// descriptions of the same circle.
const Coincident = -1

// Collide reports whether two curves intersect. The result does not depend
// on the order of the arguments.
func Collide(a, b Curve) bool {
	switch a := a.(type) {
	case Line:
		switch b := b.(type) {
		case Line:
			return LineLine(a, b)
		case Arc:
			return LineArc(a, b)
		}
	case Arc:
		switch b := b.(type) {
		case Line:
			return LineArc(b, a)
		case Arc:
			return ArcArc(a, b)
		}
	}
	return false
}

// LineLine reports whether two segments intersect. Segments with the same
// angle only collide when an end of one meets the other within Epsilon.
func LineLine(a, b Line) bool {
	if IsZero(a.Angle - b.Angle) {
		return parallel(a, b)
	}

	ca, sa := math.Cos(a.Angle), math.Sin(a.Angle)
	cb, sb := math.Cos(b.Angle), math.Sin(b.Angle)

	var la, lb float64
	if math.Abs(ca) > math.Abs(sa) {
		tan := sa / ca
		lb = (a.Y - b.Y + tan*(b.X-a.X)) / (sb - tan*cb)
		la = (b.X - a.X + cb*lb) / ca
	} else {
		ctg := ca / sa
		lb = (a.X - b.X + ctg*(b.Y-a.Y)) / (cb - ctg*sb)
		la = (b.Y - a.Y + sb*lb) / sa
	}
	return la >= 0 && la <= a.Length && lb >= 0 && lb <= b.Length
}

func parallel(a, b Line) bool {
	ae, be := a.End(), b.End()
	start := Point{a.X, a.Y}
	bStart := Point{b.X, b.Y}

	l := dist(start, bStart)
	la := dist(start, be)
	lb := dist(bStart, ae)
	if l > a.Length && l > b.Length && la > a.Length && lb > b.Length {
		return false
	}

	along := func(x Line, d float64) Point {
		d = math.Min(d, x.Length)
		return Point{x.X + math.Cos(x.Angle)*d, x.Y + math.Sin(x.Angle)*d}
	}
	return same(along(a, l), bStart) ||
		same(along(b, l), start) ||
		same(along(a, la), be) ||
		same(along(b, lb), ae)
}

// LineArc reports whether a segment crosses an arc.
func LineArc(l Line, a Arc) bool {
	c, s := math.Cos(l.Angle), math.Sin(l.Angle)
	dx, dy := l.X-a.X, l.Y-a.Y

	// |P + t*dir - C|^2 = r^2 with |dir| = 1.
	B := 2 * (c*dx + s*dy)
	C := dx*dx + dy*dy - a.R*a.R
	roots, n := quadratic(1, B, C)

	for _, t := range roots[:n] {
		if t < 0 || t > l.Length {
			continue
		}
		p := Point{l.X + c*t, l.Y + s*t}
		if a.Contains(angleFrom(p, a.X, a.Y)) {
			return true
		}
	}
	return false
}

// ArcArc reports whether two arcs intersect. Arcs on the same circle collide
// when their spans overlap.
func ArcArc(a, b Arc) bool {
	pts, n := CircleCircle(a.Circle(), b.Circle())
	if n == Coincident {
		return !(a.Offset > b.Offset+b.Sweep || a.Offset+a.Sweep < b.Offset)
	}
	for _, p := range pts[:n] {
		if a.Contains(angleFrom(p, a.X, a.Y)) && b.Contains(angleFrom(p, b.X, b.Y)) {
			return true
		}
	}
	return false
}

// CircleCircle intersects two circles. It returns the number of points found,
// 0 to 2, or Coincident when both describe the same circle. The radical axis
// is solved for the coordinate along which the centers differ most.
func CircleCircle(a, b Circle) ([2]Point, int) {
	var pts [2]Point
	dx, dy := b.X-a.X, b.Y-a.Y
	k := a.R*a.R - b.R*b.R - a.X*a.X + b.X*b.X - a.Y*a.Y + b.Y*b.Y

	switch {
	case !IsZero(dx) && math.Abs(dx) > math.Abs(dy):
		// x = m*y + x0
		m := (a.Y - b.Y) / dx
		x0 := k / dx / 2
		A := m*m + 1
		B := 2 * (m*x0 - m*a.X - a.Y)
		C := x0*x0 - 2*x0*a.X + a.X*a.X + a.Y*a.Y - a.R*a.R
		ys, n := quadratic(A, B, C)
		for i, y := range ys[:n] {
			pts[i] = Point{m*y + x0, y}
		}
		return pts, n

	case !IsZero(dy):
		// y = m*x + y0
		m := (a.X - b.X) / dy
		y0 := k / dy / 2
		A := m*m + 1
		B := 2 * (m*y0 - m*a.Y - a.X)
		C := y0*y0 - 2*y0*a.Y + a.X*a.X + a.Y*a.Y - a.R*a.R
		xs, n := quadratic(A, B, C)
		for i, x := range xs[:n] {
			pts[i] = Point{x, m*x + y0}
		}
		return pts, n

	case IsZero(a.R - b.R):
		return pts, Coincident
	}
	return pts, 0
}

// quadratic solves A*x^2 + B*x + C = 0. A discriminant within Epsilon of
// zero yields a single root.
func quadratic(A, B, C float64) ([2]float64, int) {
	var roots [2]float64
	D := B*B - 4*A*C
	switch {
	case IsZero(D):
		roots[0] = -B / (2 * A)
		return roots, 1
	case D > 0:
		sq := math.Sqrt(D)
		roots[0] = (-B + sq) / (2 * A)
		roots[1] = (-B - sq) / (2 * A)
		return roots, 2
	}
	return roots, 0
}

func dist(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func same(a, b Point) bool {
	return IsZero(a.X-b.X) && IsZero(a.Y-b.Y)
}
