package emu

// Bus gives an external 8080 core the board's view of memory and I/O.
// Input port reads merge the switch banks with the shift register the
// way the board's demux does. Output port writes pass through the I/O
// hardware and the audio triggers they fire accumulate until a backend
// drains them, typically once per frame.
type Bus struct {
	mem      *Memory
	io       *IO
	input    *Input
	triggers TriggerMask
}

// NewBus creates a bus bridging memory, I/O and switch state.
func NewBus(mem *Memory, io *IO, input *Input) *Bus {
	return &Bus{mem: mem, io: io, input: input}
}

func (b *Bus) Fetch(addr uint16) uint8      { return b.mem.Get(addr) }
func (b *Bus) Read(addr uint16) uint8       { return b.mem.Get(addr) }
func (b *Bus) Write(addr uint16, val uint8) { b.mem.Set(addr, val) }

// In services an IN instruction.
func (b *Bus) In(port uint8) uint8 {
	switch port {
	case PortInput0, PortInput1, PortInput2:
		return b.input.Port(port)
	}
	return b.io.Read(port)
}

// Out services an OUT instruction.
func (b *Bus) Out(port uint8, val uint8) {
	b.triggers |= SampleTriggers(port, b.io.Write(port, val))
}

// TakeTriggers returns the audio triggers accumulated since the last
// call and clears them.
func (b *Bus) TakeTriggers() TriggerMask {
	t := b.triggers
	b.triggers = 0
	return t
}
