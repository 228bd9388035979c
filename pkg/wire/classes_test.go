package wire

import (
	"errors"
	"testing"
)

func TestProgramAt(t *testing.T) {
	tests := []struct {
		index, l int
		want     string
	}{
		{0, 0, ""},
		{0, 3, "RRR"},
		{1, 3, "URR"},
		{2, 3, "DRR"},
		{3, 3, "RUR"},
		{26, 3, "DDD"},
	}

	for _, tt := range tests {
		if got := ProgramAt(tt.index, tt.l).String(); got != tt.want {
			t.Errorf("ProgramAt(%d, %d) = %s, want %s", tt.index, tt.l, got, tt.want)
		}
	}
}

func TestIndexOfRoundTrip(t *testing.T) {
	const l = 4
	for i := 0; i < Count(l); i++ {
		if got := IndexOf(ProgramAt(i, l)); got != i {
			t.Fatalf("IndexOf(ProgramAt(%d)) = %d", i, got)
		}
	}
}

func TestCountClasses(t *testing.T) {
	tests := []struct {
		l    int
		want int
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{3, 10},
	}

	for _, tt := range tests {
		got, err := CountClasses(tt.l)
		if err != nil {
			t.Fatalf("CountClasses(%d) error = %v", tt.l, err)
		}
		if got != tt.want {
			t.Errorf("CountClasses(%d) = %d, want %d", tt.l, got, tt.want)
		}
	}
}

func TestClasses(t *testing.T) {
	reps, err := Classes(2)
	if err != nil {
		t.Fatalf("Classes(2) error = %v", err)
	}
	want := []string{"RR", "UR", "UU", "DU"}
	if len(reps) != len(want) {
		t.Fatalf("Classes(2) = %v, want %v", reps, want)
	}
	for i, p := range reps {
		if p.String() != want[i] {
			t.Errorf("Classes(2)[%d] = %s, want %s", i, p, want[i])
		}
	}
}

func TestEnumerateLengthLimit(t *testing.T) {
	for _, l := range []int{-1, MaxEnumerateLength + 1} {
		if _, err := CountClasses(l); !errors.Is(err, ErrLength) {
			t.Errorf("CountClasses(%d) error = %v, want ErrLength", l, err)
		}
		if _, err := Classes(l); !errors.Is(err, ErrLength) {
			t.Errorf("Classes(%d) error = %v, want ErrLength", l, err)
		}
	}
}
