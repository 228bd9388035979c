// Package collide decides whether a wire program describes a physically
// possible wire. The wire is rebuilt as the contour of a thick path made of
// lines and arcs, and every pair of pieces that should not touch is tested
// for intersection.
package collide

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance below which a value counts as zero in every test.
const Epsilon = 1.0 / 1024

// IsZero reports whether |x| < Epsilon.
func IsZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// Curve is a piece of a wire contour: a Line or an Arc.
type Curve interface {
	curve()
	String() string
}

// Line is a directed segment starting at (X, Y).
type Line struct {
	X, Y   float64
	Angle  float64
	Length float64
}

func (Line) curve() {}

func (l Line) String() string {
	return fmt.Sprintf("line x=%.4f y=%.4f angle=%.4f length=%.4f", l.X, l.Y, l.Angle, l.Length)
}

// End returns the far end of l.
func (l Line) End() Point {
	return Point{
		X: l.X + math.Cos(l.Angle)*l.Length,
		Y: l.Y + math.Sin(l.Angle)*l.Length,
	}
}

// Arc is the part of a circle swept counter-clockwise from Offset by Sweep.
type Arc struct {
	X, Y   float64
	R      float64
	Offset float64
	Sweep  float64
}

func (Arc) curve() {}

func (a Arc) String() string {
	return fmt.Sprintf("arc x=%.4f y=%.4f r=%.4f offset=%.4f sweep=%.4f", a.X, a.Y, a.R, a.Offset, a.Sweep)
}

// Contains reports whether the direction theta, in [0, 2*pi), lies within a.
// Spans are compared as given, without wrapping.
func (a Arc) Contains(theta float64) bool {
	return theta >= a.Offset && theta <= a.Offset+a.Sweep
}

// Circle returns the circle a lies on.
func (a Arc) Circle() Circle {
	return Circle{X: a.X, Y: a.Y, R: a.R}
}

// Circle is a full circle.
type Circle struct {
	X, Y, R float64
}

// Point is a position in wire units.
type Point struct {
	X, Y float64
}

// angleFrom returns the direction of p seen from (cx, cy) in [0, 2*pi).
func angleFrom(p Point, cx, cy float64) float64 {
	z := math.Atan2(p.Y-cy, p.X-cx)
	if z < 0 {
		z += 2 * math.Pi
	}
	return z
}
