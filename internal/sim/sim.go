// Package sim runs the bending machine: it turns directional intents into
// validated wire mutations and animates the camera between wire shapes.
package sim

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wirebender/internal/logger"
	"github.com/Faultbox/wirebender/internal/scene"
	"github.com/Faultbox/wirebender/pkg/batch"
	"github.com/Faultbox/wirebender/pkg/wire"
	"github.com/Faultbox/wirebender/pkg/wire/collide"
)

// Intent is a directional command from the operator.
type Intent uint8

// Intents.
const (
	IntentUp Intent = iota
	IntentDown
	IntentLeft
	IntentRight
)

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	default:
		return "unknown"
	}
}

// Action returns the machine action an intent requests.
func (i Intent) Action() wire.Action {
	switch i {
	case IntentUp:
		return wire.ActionBendUp
	case IntentDown:
		return wire.ActionBendDown
	case IntentLeft:
		return wire.ActionRetract
	default:
		return wire.ActionExtend
	}
}

// Outcome is the result of handling an intent.
type Outcome uint8

// Outcomes.
const (
	Accepted Outcome = iota // the wire changed
	Rejected                // the new wire would intersect itself
	Busy                    // an animation is still running
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Busy:
		return "busy"
	default:
		return "unknown"
	}
}

// Options configures a Machine.
type Options struct {
	SizeMultiplier float64
	Duration       time.Duration // length of the camera animation
	Style          scene.Style
	Log            *zap.Logger // defaults to a "sim" child of the global logger
}

// animation moves the camera from one framing to the next.
type animation struct {
	on     bool
	start  time.Time
	action wire.Action
	from   wire.Rect
	to     wire.Rect
}

// Machine is the state of one simulated bending machine.
// A Machine is not safe for concurrent use.
type Machine struct {
	topo     *wire.Topology
	checker  *collide.Checker
	builder  scene.Builder
	duration time.Duration
	log      *zap.Logger

	view wire.Rect
	anim animation
}

// New creates a machine holding no wire.
func New(opts Options) (*Machine, error) {
	checker, err := collide.NewChecker(opts.SizeMultiplier)
	if err != nil {
		return nil, fmt.Errorf("creating checker: %w", err)
	}

	log := opts.Log
	if log == nil {
		log = logger.Named("sim")
	}

	return &Machine{
		topo:     wire.NewTopology(checker),
		checker:  checker,
		builder:  scene.NewBuilder(opts.Style),
		duration: opts.Duration,
		log:      log,
	}, nil
}

// Program returns the current wire.
func (m *Machine) Program() wire.Program {
	return m.topo.Program()
}

// Topology exposes the wire state for read access.
func (m *Machine) Topology() *wire.Topology {
	return m.topo
}

// Animating reports whether a camera animation is running.
func (m *Machine) Animating() bool {
	return m.anim.on
}

// Handle applies the action requested by in. Intents arriving while an
// animation runs are dropped. Precondition failures, such as bending with
// no wire, are returned as errors.
func (m *Machine) Handle(in Intent, now time.Time) (Outcome, error) {
	if m.anim.on {
		return Busy, nil
	}

	action := in.Action()
	candidate, err := m.topo.Candidate(action)
	if err != nil {
		m.log.Debug("action not applicable",
			zap.Stringer("intent", in),
			zap.Stringer("action", action),
			zap.Error(err),
		)
		return Rejected, fmt.Errorf("%s: %w", action, err)
	}

	accepted, err := m.topo.Apply(action)
	if err != nil {
		return Rejected, fmt.Errorf("%s: %w", action, err)
	}
	if !accepted {
		hit, _ := m.checker.Detect(candidate)
		m.log.Info("mutation rejected",
			zap.Stringer("action", action),
			zap.Stringer("candidate", candidate),
			zap.Int("curve_a", hit.A),
			zap.Int("curve_b", hit.B),
			zap.Bool("boundary", hit.Boundary),
		)
		return Rejected, nil
	}

	m.log.Debug("mutation applied",
		zap.Stringer("action", action),
		zap.Stringer("program", candidate),
	)
	m.startAnimation(action, now)
	return Accepted, nil
}

func (m *Machine) startAnimation(action wire.Action, now time.Time) {
	to := wire.Bounds(m.topo.Program())
	if m.duration <= 0 {
		m.view = to
		return
	}
	m.anim = animation{on: true, start: now, action: action, from: m.view, to: to}
}

// progress returns how far the running animation is, in [0, 1].
func (m *Machine) progress(now time.Time) float64 {
	if !m.anim.on || m.duration <= 0 {
		return 1
	}
	t := float64(now.Sub(m.anim.start)) / float64(m.duration)
	return min(max(t, 0), 1)
}

// Update finishes the running animation once its time is up.
func (m *Machine) Update(now time.Time) {
	if m.anim.on && m.progress(now) >= 1 {
		m.view = m.anim.to
		m.anim = animation{}
	}
}

// View returns the framed rectangle at time now.
func (m *Machine) View(now time.Time) wire.Rect {
	if !m.anim.on {
		return m.view
	}
	return m.anim.from.Lerp(m.anim.to, m.progress(now))
}

// Draw refills b with the current frame. aspect is the viewport width over
// its height.
func (m *Machine) Draw(b *batch.Batch, aspect float64, now time.Time) {
	b.Clear()
	_, hasActive := m.topo.Active()
	m.builder.Build(b, m.topo.Program(), hasActive, m.View(now), aspect)
	if m.anim.on {
		m.builder.Progress(b, 0.9, 0.85, 0.06, m.progress(now))
	}
}

// Reset drops the wire and any running animation.
func (m *Machine) Reset() {
	m.topo.Reset()
	m.view = wire.Rect{}
	m.anim = animation{}
}
