package sim

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Faultbox/wirebender/internal/scene"
	"github.com/Faultbox/wirebender/pkg/batch"
	"github.com/Faultbox/wirebender/pkg/wire"
)

const anim = 100 * time.Millisecond

func newMachine(t *testing.T, d time.Duration) (*Machine, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	m, err := New(Options{
		SizeMultiplier: 0.99,
		Duration:       d,
		Style:          scene.DefaultStyle(),
		Log:            zap.New(core),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m, logs
}

// drive handles each intent after the previous animation has finished.
func drive(t *testing.T, m *Machine, start time.Time, intents ...Intent) time.Time {
	t.Helper()
	now := start
	for _, in := range intents {
		if _, err := m.Handle(in, now); err != nil {
			t.Fatalf("Handle(%v) error = %v", in, err)
		}
		now = now.Add(anim)
		m.Update(now)
	}
	return now
}

func TestNewRejectsSizeMultiplier(t *testing.T) {
	if _, err := New(Options{SizeMultiplier: 1.2}); err == nil {
		t.Error("New() accepted size multiplier 1.2")
	}
}

func TestIntentAction(t *testing.T) {
	tests := []struct {
		in   Intent
		want wire.Action
	}{
		{IntentUp, wire.ActionBendUp},
		{IntentDown, wire.ActionBendDown},
		{IntentLeft, wire.ActionRetract},
		{IntentRight, wire.ActionExtend},
	}

	for _, tt := range tests {
		if got := tt.in.Action(); got != tt.want {
			t.Errorf("%v.Action() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHandleBuildsWire(t *testing.T) {
	m, _ := newMachine(t, anim)
	drive(t, m, time.Unix(0, 0), IntentRight, IntentRight, IntentUp)

	if got := m.Program().String(); got != "RU" {
		t.Errorf("Program() = %s, want RU", got)
	}
}

func TestHandleDebounce(t *testing.T) {
	m, _ := newMachine(t, anim)
	now := time.Unix(0, 0)

	if out, _ := m.Handle(IntentRight, now); out != Accepted {
		t.Fatalf("Handle(right) = %v, want accepted", out)
	}
	if !m.Animating() {
		t.Fatal("Animating() = false after an accepted action")
	}

	mid := now.Add(anim / 2)
	m.Update(mid)
	if out, _ := m.Handle(IntentRight, mid); out != Busy {
		t.Errorf("Handle() during animation = %v, want busy", out)
	}
	if got := m.Program().String(); got != "R" {
		t.Errorf("Program() = %s, want R", got)
	}

	end := now.Add(anim)
	m.Update(end)
	if m.Animating() {
		t.Error("Animating() = true after the duration elapsed")
	}
	if out, _ := m.Handle(IntentRight, end); out != Accepted {
		t.Errorf("Handle() after animation = %v, want accepted", out)
	}
}

func TestHandleRejectsCollision(t *testing.T) {
	m, logs := newMachine(t, anim)
	now := drive(t, m, time.Unix(0, 0), IntentRight, IntentUp, IntentRight, IntentUp, IntentRight, IntentUp)
	if got := m.Program().String(); got != "UUU" {
		t.Fatalf("Program() = %s, want UUU", got)
	}

	out, err := m.Handle(IntentRight, now)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	// UUUR hits the upper hub.
	if out != Rejected {
		t.Errorf("Handle(right) = %v, want rejected", out)
	}
	if got := m.Program().String(); got != "UUU" {
		t.Errorf("rejected Handle() changed the wire to %s", got)
	}
	if m.Animating() {
		t.Error("rejected Handle() started an animation")
	}

	entries := logs.FilterMessage("mutation rejected").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d rejections, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["candidate"]; got != "UUUR" {
		t.Errorf("rejection candidate = %v, want UUUR", got)
	}
	if got := entries[0].ContextMap()["boundary"]; got != true {
		t.Errorf("rejection boundary = %v, want true", got)
	}
}

func TestHandlePrecondition(t *testing.T) {
	m, _ := newMachine(t, anim)

	out, err := m.Handle(IntentUp, time.Unix(0, 0))
	if !errors.Is(err, wire.ErrNoActiveSegment) {
		t.Errorf("Handle(up) error = %v, want ErrNoActiveSegment", err)
	}
	if out != Rejected {
		t.Errorf("Handle(up) = %v, want rejected", out)
	}

	if _, err := m.Handle(IntentLeft, time.Unix(0, 0)); !errors.Is(err, wire.ErrNothingToRetract) {
		t.Errorf("Handle(left) error = %v, want ErrNothingToRetract", err)
	}
}

func TestViewAnimates(t *testing.T) {
	m, _ := newMachine(t, anim)
	start := time.Unix(0, 0)
	m.Handle(IntentRight, start)

	want := wire.Bounds(wire.MustParse("R"))
	mid := m.View(start.Add(anim / 2))
	if mid.W <= 0 || mid.W >= want.W {
		t.Errorf("View() halfway W = %v, want between 0 and %v", mid.W, want.W)
	}

	m.Update(start.Add(anim))
	if got := m.View(start.Add(anim)); got != want {
		t.Errorf("View() after animation = %+v, want %+v", got, want)
	}
}

func TestZeroDurationSkipsAnimation(t *testing.T) {
	m, _ := newMachine(t, 0)
	now := time.Unix(0, 0)
	m.Handle(IntentRight, now)
	if m.Animating() {
		t.Error("Animating() = true with zero duration")
	}
	if out, _ := m.Handle(IntentRight, now); out != Accepted {
		t.Errorf("second Handle() = %v, want accepted", out)
	}
}

func TestDraw(t *testing.T) {
	m, _ := newMachine(t, anim)
	b := batch.New()
	now := time.Unix(0, 0)

	m.Draw(b, 1, now)
	empty := b.VertexCount()

	m.Handle(IntentRight, now)
	m.Draw(b, 1, now.Add(anim/2))
	style := scene.DefaultStyle()
	// One roll plus the progress pie.
	if got, want := b.VertexCount(), empty+4+style.SliceSegments+1; got != want {
		t.Errorf("VertexCount() while animating = %d, want %d", got, want)
	}

	m.Update(now.Add(anim))
	m.Draw(b, 1, now.Add(anim))
	if got, want := b.VertexCount(), empty+4; got != want {
		t.Errorf("VertexCount() after animation = %d, want %d", got, want)
	}
}

func TestReset(t *testing.T) {
	m, _ := newMachine(t, anim)
	drive(t, m, time.Unix(0, 0), IntentRight, IntentRight)
	m.Reset()
	if m.Program().String() != "" || m.Animating() {
		t.Errorf("Reset() left wire %s", m.Program())
	}
}
