package emu

import (
	"fmt"
	"hash/crc32"
)

// Memory map:
//
//	$0000-$1FFF: ROM (8KB, four 2KB images)
//	$2000-$23FF: work RAM (1KB)
//	$2400-$3FFF: video RAM (7KB, one bit per pixel)
//	$4000-$FFFF: unpopulated
const (
	romEnd    = 0x2000
	ramStart  = 0x2000
	vramStart = 0x2400
	vramEnd   = 0x4000
)

// VRAMLength is the size of the video RAM window in bytes
// (256x224 pixels at 8 pixels per byte).
const VRAMLength = vramEnd - vramStart

// Compile-time interface check.
var _ VideoSource = (*Memory)(nil)

// Memory implements the board's 64KB address space.
type Memory struct {
	bytes [0x10000]uint8
}

// NewMemory creates board memory with every cell cleared.
func NewMemory() *Memory {
	return &Memory{}
}

// Load copies a program image into memory at the given offset. The
// board's ROM ships as four 2KB images loaded back to back from $0000.
func (m *Memory) Load(offset uint16, image []byte) error {
	if len(image) > len(m.bytes)-int(offset) {
		return fmt.Errorf("image of %d bytes does not fit at offset 0x%04X", len(image), offset)
	}
	copy(m.bytes[offset:], image)
	return nil
}

// Get reads a byte from memory.
func (m *Memory) Get(addr uint16) uint8 {
	return m.bytes[addr]
}

// Set writes a byte to memory. Writes into the ROM window are ignored.
func (m *Memory) Set(addr uint16, val uint8) {
	if addr < romEnd {
		return
	}
	m.bytes[addr] = val
}

// VideoLength returns the size of the video RAM window in bytes.
func (m *Memory) VideoLength() int {
	return VRAMLength
}

// ScreenWidth returns the visible raster width in pixels.
func (m *Memory) ScreenWidth() int {
	return ScreenWidth
}

// ScreenHeight returns the visible raster height in pixels.
func (m *Memory) ScreenHeight() int {
	return ScreenHeight
}

// VideoSnapshot copies the current video RAM into dst and returns the
// number of bytes copied.
func (m *Memory) VideoSnapshot(dst []byte) int {
	return copy(dst, m.bytes[vramStart:vramEnd])
}

// GetROMCRC32 returns the CRC32 checksum of the ROM window.
// Used for save state verification to ensure states are loaded with the
// correct program.
func (m *Memory) GetROMCRC32() uint32 {
	return crc32.ChecksumIEEE(m.bytes[:romEnd])
}
