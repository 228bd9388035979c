package math

import "testing"

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	if got := (Vec2{3, 4}).Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Cross(t *testing.T) {
	tests := []struct {
		a, b Vec2
		want float32
	}{
		{Vec2{1, 0}, Vec2{0, 1}, 1},
		{Vec2{0, 1}, Vec2{1, 0}, -1},
		{Vec2{2, 2}, Vec2{1, 1}, 0},
	}

	for _, tt := range tests {
		if got := tt.a.Cross(tt.b); got != tt.want {
			t.Errorf("%v.Cross(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVec2Lerp(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{2, -4}
	if got := a.Lerp(b, 0.5); got != (Vec2{1, -2}) {
		t.Errorf("Vec2.Lerp(0.5) = %v, want {1 -2}", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Vec2.Lerp(1) = %v, want %v", got, b)
	}
}

func TestTriangleArea(t *testing.T) {
	a, b, c := Vec2{0, 0}, Vec2{2, 0}, Vec2{0, 1}
	if got := TriangleArea(a, b, c); got != 1 {
		t.Errorf("TriangleArea(ccw) = %v, want 1", got)
	}
	if got := TriangleArea(a, c, b); got != -1 {
		t.Errorf("TriangleArea(cw) = %v, want -1", got)
	}
}
