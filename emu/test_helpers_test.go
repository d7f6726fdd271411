package emu

// createTestROM creates an 8KB test program image. Every byte derives
// from the seed and its offset so different seeds produce ROMs with
// different checksums.
func createTestROM(seed uint8) []byte {
	rom := make([]byte, 0x2000)
	for i := range rom {
		rom[i] = seed + uint8(i)
	}
	return rom
}

// createTestMachine builds a Machine with the default configuration
// and a test ROM loaded.
func createTestMachine() *Machine {
	m, _ := NewMachine(DefaultConfig())
	m.Memory().Load(0, createTestROM(1))
	return m
}

// scriptedCPU is a CPU stand-in that burns a fixed cycle count per
// instruction and records the interrupts delivered to it.
type scriptedCPU struct {
	cycles     int
	steps      int
	interrupts []ISR
}

func (c *scriptedCPU) Step() int {
	c.steps++
	return c.cycles
}

func (c *scriptedCPU) Interrupt(isr ISR) {
	c.interrupts = append(c.interrupts, isr)
}

// testVideo is a small VideoSource with hand-checkable geometry for
// blit tests. Width times height must be a multiple of 8; each group
// of height bits fills one output column bottom to top.
type testVideo struct {
	w, h int
	vram []byte
}

func newTestVideo(w, h int) *testVideo {
	return &testVideo{w: w, h: h, vram: make([]byte, w*h/8)}
}

func (v *testVideo) VideoLength() int  { return len(v.vram) }
func (v *testVideo) ScreenWidth() int  { return v.w }
func (v *testVideo) ScreenHeight() int { return v.h }

func (v *testVideo) VideoSnapshot(dst []byte) int {
	return copy(dst, v.vram)
}
