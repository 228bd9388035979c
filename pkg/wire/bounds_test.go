package wire

import (
	"math"
	"testing"
)

func rectNear(a, b Rect) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.W, b.W) && near(a.H, b.H)
}

func TestBounds(t *testing.T) {
	tests := []struct {
		in   string
		want Rect
	}{
		{"", Rect{}},
		{"R", Rect{0, 0, math.Pi / 2, 0}},
		{"RR", Rect{0, 0, math.Pi, 0}},
		{"U", Rect{0, 0, 1.5, 1}},
		{"D", Rect{0, -1, 1.5, 1}},
		// The second bend leaves upward travel, bulging to y = 2.5.
		{"UU", Rect{0, 0, 1.5, 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Bounds(MustParse(tt.in)); !rectNear(got, tt.want) {
				t.Errorf("Bounds(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBoundsMirror(t *testing.T) {
	for _, s := range []string{"U", "UR", "RUU", "URD"} {
		p := MustParse(s)
		a, b := Bounds(p), Bounds(p.Mirror())
		if !near(a.W, b.W) || !near(a.H, b.H) || !near(a.Y, -(b.Y+b.H)) {
			t.Errorf("Bounds(%q) = %+v not mirrored by %+v", s, a, b)
		}
	}
}

func TestLerp(t *testing.T) {
	a := Rect{0, 0, 2, 2}
	b := Rect{2, -2, 4, 6}

	tests := []struct {
		t    float64
		want Rect
	}{
		{0, a},
		{1, b},
		{0.5, Rect{1, -1, 3, 4}},
	}

	for _, tt := range tests {
		if got := a.Lerp(b, tt.t); !rectNear(got, tt.want) {
			t.Errorf("Lerp(%v) = %+v, want %+v", tt.t, got, tt.want)
		}
	}
}

func TestUnion(t *testing.T) {
	got := Rect{0, 0, 1, 1}.Union(Rect{-1, 0.5, 1, 2})
	want := Rect{-1, 0, 2, 2.5}
	if !rectNear(got, want) {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}
