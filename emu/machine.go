package emu

import (
	"image"

	emucore "github.com/user-none/eblitui/api"
)

// Compile-time interface checks.
var _ emucore.SaveStater = (*Machine)(nil)
var _ emucore.MemoryInspector = (*Machine)(nil)
var _ emucore.MemoryMapper = (*Machine)(nil)

// CPU is the processor the machine drives. Instruction execution lives
// outside this module; any 8080 core can attach by executing against
// the machine's Bus and implementing these two methods.
type CPU interface {
	// Step executes one instruction and returns the clock cycles it
	// consumed, at least one.
	Step() int
	// Interrupt delivers a beam interrupt. ISRMid vectors through
	// RST 1, ISREnd through RST 2. Whether it is taken is the core's
	// business; the 8080 masks interrupts with DI.
	Interrupt(isr ISR)
}

// Machine wires the board together: memory, I/O hardware, switch state
// and an attached CPU, clocked at the production cadence.
type Machine struct {
	cpu    CPU
	mem    *Memory
	io     *IO
	input  *Input
	bus    *Bus
	timing Timing

	cycles uint64 // total CPU cycles executed
	clock  int64  // emulated nanoseconds elapsed
	halted bool

	framebuffer *image.RGBA
}

// NewMachine assembles a machine from a configuration. Attach an 8080
// core with AttachCPU before running; a machine without one still
// generates display timing, which is enough for harnesses and tests.
func NewMachine(cfg Config) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mem := NewMemory()
	io := NewIO(mem)
	io.SetPalette(cfg.Foreground, cfg.Background)
	input := NewInput(cfg.DIPSwitches())

	return &Machine{
		mem:         mem,
		io:          io,
		input:       input,
		bus:         NewBus(mem, io, input),
		timing:      DefaultTiming(),
		framebuffer: image.NewRGBA(image.Rect(0, 0, ScreenWidth, ScreenHeight)),
	}, nil
}

// AttachCPU connects a CPU core to the machine.
func (m *Machine) AttachCPU(cpu CPU) {
	m.cpu = cpu
}

// Bus returns the CPU-facing bus.
func (m *Machine) Bus() *Bus { return m.bus }

// IO returns the I/O hardware.
func (m *Machine) IO() *IO { return m.io }

// Memory returns board memory.
func (m *Machine) Memory() *Memory { return m.mem }

// Input returns the switch state.
func (m *Machine) Input() *Input { return m.input }

// Timing returns the board clock configuration.
func (m *Machine) Timing() Timing { return m.timing }

// RunFrame advances the machine by one video frame: two half frames of
// CPU execution, each ending at a beam interrupt. Reports whether the
// machine is still running; once a quit is observed it stays halted.
func (m *Machine) RunFrame() bool {
	if m.halted {
		return false
	}

	budget := uint64(m.timing.CyclesPerInterrupt())
	period := m.timing.InterruptPeriod()

	for n := 0; n < m.timing.InterruptsPerFrame; n++ {
		target := m.cycles + budget
		if m.cpu != nil {
			for m.cycles < target {
				step := m.cpu.Step()
				if step < 1 {
					step = 1
				}
				m.cycles += uint64(step)
			}
		} else {
			m.cycles = target
		}

		m.clock += period
		switch isr := m.io.ServiceInterrupts(m.clock, m.cycles); isr {
		case ISRQuit:
			m.halted = true
			return false
		case ISRMid, ISREnd:
			if m.cpu != nil {
				m.cpu.Interrupt(isr)
			}
		}
	}
	return true
}

// Halted reports whether the machine has observed a quit.
func (m *Machine) Halted() bool {
	return m.halted
}

// GetCycles returns the total CPU cycles executed.
func (m *Machine) GetCycles() uint64 {
	return m.cycles
}

// GetClock returns the emulated nanoseconds elapsed.
func (m *Machine) GetClock() int64 {
	return m.clock
}

// RenderFrame unpacks the latest video snapshot into the machine's
// framebuffer. Safe to call from a render goroutine while RunFrame is
// executing elsewhere.
func (m *Machine) RenderFrame() {
	m.io.BlitRGBA(m.framebuffer)
}

// GetFramebuffer returns raw RGBA pixel data for the last rendered
// frame.
func (m *Machine) GetFramebuffer() []byte {
	return m.framebuffer.Pix
}

// GetFramebufferStride returns the stride (bytes per row) of the
// framebuffer.
func (m *Machine) GetFramebufferStride() int {
	return m.framebuffer.Stride
}

// =============================================================================
// MemoryInspector interface
// =============================================================================

// ramWindow is the span of work plus video RAM exposed to inspection
// as a flat address space starting at 0.
const ramWindow = vramEnd - ramStart

// ReadMemory reads from a flat address into buf and returns the number
// of bytes read. Flat mapping for RetroAchievements:
// 0x0000-0x1FFF -> work + video RAM (8KB at $2000)
func (m *Machine) ReadMemory(addr uint32, buf []byte) uint32 {
	var count uint32
	for i := range buf {
		cur := addr + uint32(i)
		if cur >= ramWindow {
			return count
		}
		buf[i] = m.mem.bytes[ramStart+cur]
		count++
	}
	return count
}

// =============================================================================
// MemoryMapper interface
// =============================================================================

// MemoryMap returns a list of available memory regions with sizes.
func (m *Machine) MemoryMap() []emucore.MemoryRegion {
	return []emucore.MemoryRegion{
		{Type: emucore.MemorySystemRAM, Size: ramWindow},
	}
}

// ReadRegion returns a copy of the specified memory region.
func (m *Machine) ReadRegion(regionType int) []byte {
	switch regionType {
	case emucore.MemorySystemRAM:
		out := make([]byte, ramWindow)
		copy(out, m.mem.bytes[ramStart:vramEnd])
		return out
	default:
		return nil
	}
}

// WriteRegion writes data to the specified memory region.
func (m *Machine) WriteRegion(regionType int, data []byte) {
	switch regionType {
	case emucore.MemorySystemRAM:
		copy(m.mem.bytes[ramStart:vramEnd], data)
	}
}
