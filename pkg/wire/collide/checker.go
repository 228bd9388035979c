package collide

import (
	"errors"
	"fmt"

	"github.com/Faultbox/wirebender/pkg/wire"
)

// DefaultSizeMultiplier shrinks the wire just enough for neighbouring pieces
// to stop touching.
const DefaultSizeMultiplier = 0.99

// ErrSizeMultiplier is returned for size multipliers outside (0, 1).
var ErrSizeMultiplier = errors.New("size multiplier must be in (0, 1)")

// Checker tests wire programs for self intersection. It is immutable and
// safe for concurrent use.
type Checker struct {
	sm       float64
	boundary [BoundaryCurves]Curve
}

// NewChecker returns a Checker that shrinks wire pieces by sm.
func NewChecker(sm float64) (*Checker, error) {
	if !(sm > 0 && sm < 1) {
		return nil, fmt.Errorf("%w: got %v", ErrSizeMultiplier, sm)
	}
	return &Checker{sm: sm, boundary: boundary(sm)}, nil
}

// Default returns a Checker using DefaultSizeMultiplier.
func Default() *Checker {
	c, _ := NewChecker(DefaultSizeMultiplier)
	return c
}

// SizeMultiplier returns the shrink factor of c.
func (c *Checker) SizeMultiplier() float64 {
	return c.sm
}

// Curves returns the contour of p, CurvesPerOp curves per op in trace order,
// followed by the BoundaryCurves fixed curves.
func (c *Checker) Curves(p wire.Program) []Curve {
	curves := make([]Curve, 0, len(p)*CurvesPerOp+BoundaryCurves)
	for _, s := range wire.Trace(p) {
		curves = contour(curves, s, c.sm)
	}
	return append(curves, c.boundary[:]...)
}

// Collision identifies the first intersecting pair found in a program's
// contour. A and B index the slice returned by Curves. Boundary is set when
// B is one of the hub or feed wire curves.
type Collision struct {
	A, B     int
	Boundary bool
}

// Detect returns the first colliding pair of curves in p. Every pair of
// distinct ops is compared, then every curve of the wire against the fixed
// boundary.
func (c *Checker) Detect(p wire.Program) (Collision, bool) {
	curves := c.Curves(p)
	n := len(p)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := 0; k < CurvesPerOp; k++ {
				for g := 0; g < CurvesPerOp; g++ {
					a, b := i*CurvesPerOp+k, j*CurvesPerOp+g
					if Collide(curves[a], curves[b]) {
						return Collision{A: a, B: b}, true
					}
				}
			}
		}
	}

	wireEnd := n * CurvesPerOp
	for a := 0; a < wireEnd; a++ {
		for b := wireEnd; b < len(curves); b++ {
			if Collide(curves[a], curves[b]) {
				return Collision{A: a, B: b, Boundary: true}, true
			}
		}
	}
	return Collision{}, false
}

// IsValid reports whether p describes a wire that does not intersect itself,
// the hubs or the feed wire.
func (c *Checker) IsValid(p wire.Program) bool {
	_, hit := c.Detect(p)
	return !hit
}

// IsValidString parses s and checks it. Malformed programs return an error
// wrapping wire.ErrInvalidOp.
func (c *Checker) IsValidString(s string) (bool, error) {
	p, err := wire.Parse(s)
	if err != nil {
		return false, err
	}
	return c.IsValid(p), nil
}
