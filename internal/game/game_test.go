package game

import (
	"testing"

	"github.com/Faultbox/wirebender/internal/engine/input"
	"github.com/Faultbox/wirebender/internal/sim"
)

func TestIntentFor(t *testing.T) {
	tests := []struct {
		cmd    input.Command
		want   sim.Intent
		wantOK bool
	}{
		{input.CommandUp, sim.IntentUp, true},
		{input.CommandDown, sim.IntentDown, true},
		{input.CommandLeft, sim.IntentLeft, true},
		{input.CommandRight, sim.IntentRight, true},
		{input.CommandQuit, 0, false},
		{input.CommandScreenshot, 0, false},
		{input.CommandWireframe, 0, false},
	}
	for _, tt := range tests {
		got, ok := intentFor(tt.cmd)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("intentFor(%v) = %v, %v, want %v, %v", tt.cmd, got, ok, tt.want, tt.wantOK)
		}
	}
}
