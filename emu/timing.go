package emu

import "time"

// Timing holds the board's clock configuration. Unlike console
// hardware there is a single region: every cabinet runs a 2MHz 8080
// against a 60Hz raster with two beam interrupts per frame.
type Timing struct {
	CPUClockHz         int
	FPS                int
	InterruptsPerFrame int
}

// DefaultTiming returns the production board clocks.
func DefaultTiming() Timing {
	return Timing{
		CPUClockHz:         2000000,
		FPS:                60,
		InterruptsPerFrame: 2,
	}
}

// CyclesPerInterrupt returns the CPU cycle budget between beam
// interrupts, 16666 cycles on the production board.
func (t Timing) CyclesPerInterrupt() int {
	return t.CPUClockHz / (t.FPS * t.InterruptsPerFrame)
}

// InterruptPeriod returns the emulated-clock spacing of beam
// interrupts in nanoseconds.
func (t Timing) InterruptPeriod() int64 {
	return int64(time.Second) / int64(t.FPS*t.InterruptsPerFrame)
}
