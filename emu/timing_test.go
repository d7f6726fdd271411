package emu

import "testing"

// TestTiming_Defaults tests the production board clocks
func TestTiming_Defaults(t *testing.T) {
	timing := DefaultTiming()

	if timing.CPUClockHz != 2000000 {
		t.Errorf("CPUClockHz: expected 2000000, got %d", timing.CPUClockHz)
	}
	if timing.FPS != 60 {
		t.Errorf("FPS: expected 60, got %d", timing.FPS)
	}
	if timing.InterruptsPerFrame != 2 {
		t.Errorf("InterruptsPerFrame: expected 2, got %d", timing.InterruptsPerFrame)
	}
}

// TestTiming_CyclesPerInterrupt tests the half-frame cycle budget
func TestTiming_CyclesPerInterrupt(t *testing.T) {
	timing := DefaultTiming()

	if got := timing.CyclesPerInterrupt(); got != 16666 {
		t.Errorf("CyclesPerInterrupt: expected 16666, got %d", got)
	}
}

// TestTiming_InterruptPeriod tests the beam interrupt spacing
func TestTiming_InterruptPeriod(t *testing.T) {
	timing := DefaultTiming()

	if got := timing.InterruptPeriod(); got != 8333333 {
		t.Errorf("InterruptPeriod: expected 8333333ns, got %d", got)
	}

	// Two interrupts per frame land within a 60Hz frame time
	frame := timing.InterruptPeriod() * int64(timing.InterruptsPerFrame)
	if frame > 16666667 {
		t.Errorf("Frame time %dns exceeds a 60Hz frame", frame)
	}
}
