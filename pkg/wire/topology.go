package wire

import "errors"

// Action is a mutation requested of the machine.
type Action uint8

// Actions. The directional intents up, down, left and right map to them in
// this order.
const (
	ActionBendUp Action = iota
	ActionBendDown
	ActionRetract
	ActionExtend
)

func (a Action) String() string {
	switch a {
	case ActionBendUp:
		return "bend-up"
	case ActionBendDown:
		return "bend-down"
	case ActionRetract:
		return "retract"
	case ActionExtend:
		return "extend"
	default:
		return "unknown"
	}
}

var (
	// ErrNoActiveSegment is returned when bending with no wire at the hubs.
	ErrNoActiveSegment = errors.New("no active segment to bend")
	// ErrNothingToRetract is returned when retracting an empty wire.
	ErrNothingToRetract = errors.New("nothing to retract")
	// ErrUnknownAction is returned for actions outside the defined set.
	ErrUnknownAction = errors.New("unknown action")
)

// Validator decides whether a program describes a physically possible wire.
type Validator interface {
	IsValid(p Program) bool
}

// Topology is the wire produced so far: committed ops that have been rolled
// away from the hubs plus the active op still held by them. Whenever there
// is no active op the committed program is empty.
//
// A Topology is not safe for concurrent use.
type Topology struct {
	v         Validator
	committed Program
	active    Op
	hasActive bool
}

// NewTopology returns an empty topology checked by v.
func NewTopology(v Validator) *Topology {
	return &Topology{v: v}
}

// Committed returns a copy of the committed ops.
func (t *Topology) Committed() Program {
	return t.committed.Clone()
}

// Active returns the op at the hubs, if any.
func (t *Topology) Active() (Op, bool) {
	return t.active, t.hasActive
}

// Program returns the full wire, committed ops followed by the active op.
func (t *Topology) Program() Program {
	p := make(Program, 0, len(t.committed)+1)
	p = append(p, t.committed...)
	if t.hasActive {
		p = append(p, t.active)
	}
	return p
}

// Len returns the number of ops in the full wire.
func (t *Topology) Len() int {
	if t.hasActive {
		return len(t.committed) + 1
	}
	return 0
}

// Candidate returns the program the wire would have after a.
func (t *Topology) Candidate(a Action) (Program, error) {
	switch a {
	case ActionExtend:
		return append(t.Program(), Roll), nil
	case ActionBendUp, ActionBendDown:
		if !t.hasActive {
			return nil, ErrNoActiveSegment
		}
		op := BendUp
		if a == ActionBendDown {
			op = BendDown
		}
		return append(t.Committed(), op), nil
	case ActionRetract:
		if !t.hasActive {
			return nil, ErrNothingToRetract
		}
		return t.Committed(), nil
	default:
		return nil, ErrUnknownAction
	}
}

// Apply validates the candidate program of a and commits it when valid.
// A rejected mutation leaves t unchanged and reports accepted == false with
// a nil error.
func (t *Topology) Apply(a Action) (accepted bool, err error) {
	next, err := t.Candidate(a)
	if err != nil {
		return false, err
	}
	if t.v != nil && !t.v.IsValid(next) {
		return false, nil
	}
	t.set(next)
	return true, nil
}

// Reset drops the whole wire.
func (t *Topology) Reset() {
	t.committed = nil
	t.active = 0
	t.hasActive = false
}

// set splits p into committed ops and the active op.
func (t *Topology) set(p Program) {
	if len(p) == 0 {
		t.Reset()
		return
	}
	t.committed = p[:len(p)-1].Clone()
	t.active = p[len(p)-1]
	t.hasActive = true
}
