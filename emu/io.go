package emu

import (
	"sync"
	"sync/atomic"
)

// VideoSource supplies the I/O controller with video RAM snapshots at
// vertical blank. Memory implements it; tests substitute small fakes.
type VideoSource interface {
	// VideoLength returns the size of video RAM in bytes.
	VideoLength() int
	// ScreenWidth returns the visible raster width in pixels.
	ScreenWidth() int
	// ScreenHeight returns the visible raster height in pixels.
	ScreenHeight() int
	// VideoSnapshot copies the current video RAM into dst and returns
	// the number of bytes copied.
	VideoSnapshot(dst []byte) int
}

// Port assignments. The 8080 sees the shift register, sound triggers
// and switch banks through seven ports. Ports 2 and 3 decode
// differently for IN and OUT.
const (
	PortInput0      = 0 // read: self test + P1 controls
	PortInput1      = 1 // read: coin, start and P1 controls
	PortInput2      = 2 // read: DIP switches, tilt, P2 controls
	PortShiftAmount = 2 // write: shift result offset
	PortShiftResult = 3 // read: shifted result
	PortSound1      = 3 // write: discrete audio bank 1
	PortShiftData   = 4 // write: next shift register byte
	PortSound2      = 5 // write: discrete audio bank 2
	PortWatchdog    = 6 // write: watchdog reset
)

// IO emulates the board's custom I/O hardware: the shift register, the
// discrete-audio trigger latches, the beam interrupt generator and the
// video RAM snapshot handed to renderers. Backends compose around an IO
// rather than deriving from it; Read, Write and ServiceInterrupts run
// on the emulation context while Blit may run on a render context.
type IO struct {
	shifter ShiftRegister
	sound1  SoundLatch
	sound2  SoundLatch

	video VideoSource

	// Interrupt generator state, driven by ServiceInterrupts.
	nextInterrupt ISR
	lastTime      int64
	quit          atomic.Bool

	// Snapshot of video RAM taken at vertical blank. The mutex covers
	// every access: the refresh on the emulation context and Blit on
	// the render context.
	mu       sync.Mutex
	snapshot []byte

	// Blit output bytes for set and clear pixels.
	foreground uint8
	background uint8

	// Scratch plane for BlitRGBA, allocated on first use.
	plane []byte
}

// NewIO creates the I/O hardware backed by the given video source.
func NewIO(video VideoSource) *IO {
	return &IO{
		// The UFO circuit free-runs while port 3 bit 0 is held up.
		sound1:        NewSoundLatch(0x01),
		sound2:        NewSoundLatch(0x00),
		video:         video,
		nextInterrupt: ISRMid,
		snapshot:      make([]byte, video.VideoLength()),
		foreground:    0xFF,
	}
}

// SetPalette sets the bytes Blit writes for set and clear pixels.
// The monitor is monochrome so any 8-bit encoding works; the default is
// 0xFF on 0x00.
func (i *IO) SetPalette(foreground, background uint8) {
	i.foreground = foreground
	i.background = background
}

// Read returns the value of an input port. Only the shift register
// result is produced here; the switch bank ports read as 0 and are
// merged with Input state by the bus.
func (i *IO) Read(port uint8) uint8 {
	if port == PortShiftResult {
		return i.shifter.Result()
	}
	return 0
}

// Write dispatches an output port write and returns the audio triggers
// it fired, if any, in the low 8 bits of the mask. Writes to unmapped
// ports are discarded.
func (i *IO) Write(port uint8, data uint8) TriggerMask {
	switch port {
	case PortShiftAmount:
		i.shifter.SetAmount(data)
	case PortSound1:
		return TriggerMask(i.sound1.Triggers(data))
	case PortShiftData:
		i.shifter.Shift(data)
	case PortSound2:
		return TriggerMask(i.sound2.Triggers(data))
	case PortWatchdog:
		// The game strobes the watchdog every frame; there is no
		// timer to reset here.
	}
	return 0
}
