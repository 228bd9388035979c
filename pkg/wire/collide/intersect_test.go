package collide

import (
	"math"
	"testing"
)

func TestIsZero(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{0, true},
		{0.0009, true},
		{-0.0009, true},
		{Epsilon, false},
		{0.001, false},
		{-1, false},
	}

	for _, tt := range tests {
		if got := IsZero(tt.x); got != tt.want {
			t.Errorf("IsZero(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

var pairTests = []struct {
	name string
	a, b Curve
	want bool
}{
	{"crossing lines", Line{0, 0, 0, 2}, Line{1, -1, math.Pi / 2, 2}, true},
	{"lines short of each other", Line{0, 0, 0, 1}, Line{2, -1, math.Pi / 2, 2}, false},
	{"vertical against diagonal", Line{0, -1, math.Pi / 2, 2}, Line{-1, -1, math.Pi / 4, 3}, true},
	{"collinear overlap", Line{0, 0, 0, 2}, Line{1, 0, 0, 2}, true},
	{"parallel offset", Line{0, 0, 0, 1}, Line{0, 1, 0, 1}, false},
	{"collinear apart", Line{0, 0, 0, 1}, Line{3, 0, 0, 1}, false},

	{"line through circle", Line{-2, 0, 0, 4}, Arc{0, 0, 1, 0, 2 * math.Pi}, true},
	{"line misses arc span", Line{-2, 0, 0, 4}, Arc{0, 0, 1, math.Pi / 4, math.Pi / 2}, false},
	{"line stops inside circle", Line{-3, 0, 0, 1.5}, Arc{0, 0, 1, 0, 2 * math.Pi}, false},
	{"tangent line", Line{-2, 1, 0, 4}, Arc{0, 0, 1, 0, math.Pi}, true},

	{"crossing arcs", Arc{0, 0, 1, 0, math.Pi}, Arc{1, 0, 1, 0, 2 * math.Pi}, true},
	{"arcs crossing outside span", Arc{0, 0, 1, 0, math.Pi}, Arc{1, 0, 1, math.Pi * 3 / 2, math.Pi / 4}, false},
	{"same circle overlapping spans", Arc{0, 0, 1, 0, 1}, Arc{0, 0, 1, 0.5, 1}, true},
	{"same circle disjoint spans", Arc{0, 0, 1, 0, 1}, Arc{0, 0, 1, 2, 1}, false},
	{"concentric", Arc{0, 0, 1, 0, 2 * math.Pi}, Arc{0, 0, 2, 0, 2 * math.Pi}, false},
}

func TestCollide(t *testing.T) {
	for _, tt := range pairTests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Collide(tt.a, tt.b); got != tt.want {
				t.Errorf("Collide(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCollideSymmetric(t *testing.T) {
	for _, tt := range pairTests {
		t.Run(tt.name, func(t *testing.T) {
			ab, ba := Collide(tt.a, tt.b), Collide(tt.b, tt.a)
			if ab != ba {
				t.Errorf("Collide(a, b) = %v but Collide(b, a) = %v", ab, ba)
			}
		})
	}
}

func TestCircleCircle(t *testing.T) {
	tests := []struct {
		name string
		a, b Circle
		n    int
		pts  []Point
	}{
		{"tangent along x", Circle{0, 0, 1}, Circle{2, 0, 1}, 1, []Point{{1, 0}}},
		{"tangent along y", Circle{0, 0, 1}, Circle{0, 2, 1}, 1, []Point{{0, 1}}},
		{"two points", Circle{0, 0, 1}, Circle{1, 0, 1}, 2, []Point{{0.5, math.Sqrt(3) / 2}, {0.5, -math.Sqrt(3) / 2}}},
		{"apart", Circle{0, 0, 1}, Circle{5, 0, 1}, 0, nil},
		{"concentric", Circle{0, 0, 1}, Circle{0, 0, 2}, 0, nil},
		{"same circle", Circle{0, 0, 1}, Circle{0, 0, 1}, Coincident, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts, n := CircleCircle(tt.a, tt.b)
			if n != tt.n {
				t.Fatalf("CircleCircle() n = %d, want %d", n, tt.n)
			}
			for i, want := range tt.pts {
				if math.Abs(pts[i].X-want.X) > 1e-9 || math.Abs(pts[i].Y-want.Y) > 1e-9 {
					t.Errorf("CircleCircle() point %d = %+v, want %+v", i, pts[i], want)
				}
			}
		})
	}
}

func TestArcContains(t *testing.T) {
	a := Arc{Offset: math.Pi / 2, Sweep: math.Pi / 2}
	tests := []struct {
		theta float64
		want  bool
	}{
		{math.Pi / 2, true},
		{math.Pi * 3 / 4, true},
		{math.Pi, true},
		{0, false},
		{math.Pi * 3 / 2, false},
	}

	for _, tt := range tests {
		if got := a.Contains(tt.theta); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.theta, got, tt.want)
		}
	}
}
