package wire

import "math"

// Dir is the direction of travel of the cursor.
type Dir uint8

// Directions.
const (
	Right Dir = iota
	Up
	Left
	Down
)

func (d Dir) String() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	default:
		return "invalid"
	}
}

// Angle returns the heading of d in radians, in [0, 2*pi).
func (d Dir) Angle() float64 {
	return dirAngles[d]
}

var dirAngles = [4]float64{
	Right: 0,
	Up:    math.Pi / 2,
	Left:  math.Pi,
	Down:  math.Pi * 3 / 2,
}

// Quarter is the length of a roll and the arc length of a bend.
const Quarter = math.Pi / 2

// Cursor is a joint position on the wire with its direction of travel.
type Cursor struct {
	X, Y float64
	Dir  Dir
}

// Origin is the cursor at the hubs, pointing away from the feed.
var Origin = Cursor{X: 0, Y: 0, Dir: Right}

// Segment is one traced operation.
type Segment struct {
	Op   Op
	From Cursor
	To   Cursor

	// Bends only: the center of the unit circle the wire wraps around and
	// the angle of From as seen from it.
	CX, CY float64
	Start  float64
}

// IsBend reports whether s is a bend.
func (s Segment) IsBend() bool {
	return s.Op != Roll
}

// CCW reports whether the bend turns counter-clockwise.
func (s Segment) CCW() bool {
	return s.Op == BendUp
}

// Angle returns the heading of a roll.
func (s Segment) Angle() float64 {
	return s.From.Dir.Angle()
}

// ArcSpan returns the start angle and sweep of a bend whose quarter turn
// is shrunk by sm. Counter-clockwise bends keep their start at the cursor;
// clockwise ones keep their end there.
func (s Segment) ArcSpan(sm float64) (offset, sweep float64) {
	sweep = Quarter * sm
	if s.CCW() {
		return s.Start, sweep
	}
	return s.Start - sweep, sweep
}

// bendStep describes a bend relative to the cursor.
type bendStep struct {
	cx, cy float64 // center offset
	start  float64 // angle of the cursor seen from the center
	dx, dy float64 // cursor displacement
	next   Dir
}

// bends is indexed by [dir][0 = BendUp, 1 = BendDown].
var bends = [4][2]bendStep{
	Right: {
		{cx: 0, cy: 1, start: math.Pi * 3 / 2, dx: 1, dy: 1, next: Up},
		{cx: 0, cy: -1, start: math.Pi / 2, dx: 1, dy: -1, next: Down},
	},
	Up: {
		{cx: -1, cy: 0, start: 0, dx: -1, dy: 1, next: Left},
		{cx: 1, cy: 0, start: math.Pi, dx: 1, dy: 1, next: Right},
	},
	Left: {
		{cx: 0, cy: -1, start: math.Pi / 2, dx: -1, dy: -1, next: Down},
		{cx: 0, cy: 1, start: math.Pi * 3 / 2, dx: -1, dy: 1, next: Up},
	},
	Down: {
		{cx: 1, cy: 0, start: math.Pi, dx: 1, dy: -1, next: Right},
		{cx: -1, cy: 0, start: math.Pi * 2, dx: -1, dy: -1, next: Left},
	},
}

// rolls holds the cursor displacement of a roll per direction.
var rolls = [4][2]float64{
	Right: {Quarter, 0},
	Up:    {0, Quarter},
	Left:  {-Quarter, 0},
	Down:  {0, -Quarter},
}

// Step applies op to c.
func Step(c Cursor, op Op) Segment {
	s := Segment{Op: op, From: c, To: c}
	if op == Roll {
		d := rolls[c.Dir]
		s.To.X += d[0]
		s.To.Y += d[1]
		return s
	}

	k := 0
	if op == BendDown {
		k = 1
	}
	b := bends[c.Dir][k]
	s.CX = c.X + b.cx
	s.CY = c.Y + b.cy
	s.Start = b.start
	s.To = Cursor{X: c.X + b.dx, Y: c.Y + b.dy, Dir: b.next}
	return s
}

// Trace walks p from its newest op to its oldest, starting at Origin.
// Segment k describes p[len(p)-1-k].
func Trace(p Program) []Segment {
	segs := make([]Segment, 0, len(p))
	c := Origin
	for i := len(p) - 1; i >= 0; i-- {
		s := Step(c, p[i])
		segs = append(segs, s)
		c = s.To
	}
	return segs
}
