package wire

import (
	"errors"
	"testing"
)

// rejectSet rejects the listed programs and accepts everything else.
type rejectSet map[string]bool

func (r rejectSet) IsValid(p Program) bool {
	return !r[p.String()]
}

func applyAll(t *testing.T, topo *Topology, actions ...Action) {
	t.Helper()
	for _, a := range actions {
		if _, err := topo.Apply(a); err != nil {
			t.Fatalf("Apply(%v) error = %v", a, err)
		}
	}
}

func TestTopologyEmpty(t *testing.T) {
	topo := NewTopology(nil)
	if _, ok := topo.Active(); ok {
		t.Errorf("Active() reported an op on an empty wire")
	}
	if got := topo.Program().String(); got != "" {
		t.Errorf("Program() = %q, want empty", got)
	}

	if _, err := topo.Apply(ActionBendUp); !errors.Is(err, ErrNoActiveSegment) {
		t.Errorf("Apply(bend-up) error = %v, want ErrNoActiveSegment", err)
	}
	if _, err := topo.Apply(ActionRetract); !errors.Is(err, ErrNothingToRetract) {
		t.Errorf("Apply(retract) error = %v, want ErrNothingToRetract", err)
	}
	if _, err := topo.Apply(Action(99)); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Apply(99) error = %v, want ErrUnknownAction", err)
	}
}

func TestTopologyCandidate(t *testing.T) {
	topo := NewTopology(nil)
	applyAll(t, topo, ActionExtend, ActionExtend, ActionBendUp)

	tests := []struct {
		a    Action
		want string
	}{
		{ActionExtend, "RUR"},
		{ActionBendUp, "RU"},
		{ActionBendDown, "RD"},
		{ActionRetract, "R"},
	}

	for _, tt := range tests {
		got, err := topo.Candidate(tt.a)
		if err != nil {
			t.Fatalf("Candidate(%v) error = %v", tt.a, err)
		}
		if got.String() != tt.want {
			t.Errorf("Candidate(%v) = %s, want %s", tt.a, got, tt.want)
		}
	}

	if got := topo.Program().String(); got != "RU" {
		t.Errorf("Candidate() modified the wire: %s", got)
	}
}

func TestTopologyApply(t *testing.T) {
	topo := NewTopology(nil)

	steps := []struct {
		a         Action
		committed string
		active    Op
	}{
		{ActionExtend, "", Roll},
		{ActionExtend, "R", Roll},
		{ActionBendDown, "R", BendDown},
		{ActionExtend, "RD", Roll},
		{ActionRetract, "R", BendDown},
		{ActionRetract, "", Roll},
	}

	for i, s := range steps {
		ok, err := topo.Apply(s.a)
		if err != nil || !ok {
			t.Fatalf("step %d: Apply(%v) = %v, %v", i, s.a, ok, err)
		}
		if got := topo.Committed().String(); got != s.committed {
			t.Errorf("step %d: Committed() = %q, want %q", i, got, s.committed)
		}
		if op, ok := topo.Active(); !ok || op != s.active {
			t.Errorf("step %d: Active() = %v, %v, want %v", i, op, ok, s.active)
		}
	}

	applyAll(t, topo, ActionRetract)
	if _, ok := topo.Active(); ok || topo.Len() != 0 {
		t.Errorf("wire not empty after final retract: %s", topo.Program())
	}
}

func TestTopologyRejection(t *testing.T) {
	topo := NewTopology(rejectSet{"RU": true, "RRR": true})
	applyAll(t, topo, ActionExtend, ActionExtend)

	for _, a := range []Action{ActionBendUp, ActionExtend} {
		ok, err := topo.Apply(a)
		if err != nil {
			t.Fatalf("Apply(%v) error = %v", a, err)
		}
		if ok {
			t.Errorf("Apply(%v) accepted a rejected program", a)
		}
		if got := topo.Program().String(); got != "RR" {
			t.Errorf("rejected Apply(%v) changed the wire to %s", a, got)
		}
	}

	ok, _ := topo.Apply(ActionBendDown)
	if !ok || topo.Program().String() != "RD" {
		t.Errorf("Apply(bend-down) = %v, wire %s, want RD", ok, topo.Program())
	}
}

// Whenever nothing is held by the hubs the committed part must be empty.
func TestTopologyActiveInvariant(t *testing.T) {
	topo := NewTopology(nil)
	actions := []Action{
		ActionExtend, ActionBendUp, ActionExtend, ActionExtend, ActionBendDown,
		ActionRetract, ActionRetract, ActionRetract, ActionRetract, ActionRetract,
	}
	for _, a := range actions {
		topo.Apply(a)
		if _, ok := topo.Active(); !ok && len(topo.Committed()) != 0 {
			t.Fatalf("after %v: committed %s with no active op", a, topo.Committed())
		}
	}
}

func TestCommittedIsCopy(t *testing.T) {
	topo := NewTopology(nil)
	applyAll(t, topo, ActionExtend, ActionExtend)
	c := topo.Committed()
	c[0] = BendUp
	if got := topo.Program().String(); got != "RR" {
		t.Errorf("Committed() exposed internal storage: %s", got)
	}
}
