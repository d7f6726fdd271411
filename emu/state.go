package emu

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

// Save state format constants
const (
	stateVersion    = 1
	stateMagic      = "SpaceInvSave"
	stateHeaderSize = 22 // magic(12) + version(2) + romCRC(4) + dataCRC(4)
)

// SerializeSize returns the total size in bytes needed for a save state.
func SerializeSize() int {
	// Header: 22 bytes
	// Memory: 8KB work + video RAM
	// IO: shift register (3), sound latches (2), scheduler (9), snapshot
	// Input: 3 port bytes
	// Clock: cycles (8) + elapsed time (8)

	return stateHeaderSize + // 22
		ramWindow + // work + video RAM (8KB)
		1 + // shift amount
		2 + // shift data
		1 + // sound latch 1
		1 + // sound latch 2
		1 + // next interrupt
		8 + // last observed time
		VRAMLength + // video snapshot
		3 + // input ports
		8 + // cycles
		8 // clock
}

// Serialize creates a save state and returns it as a byte slice.
// The quit token is session state and is not captured.
func (m *Machine) Serialize() ([]byte, error) {
	size := SerializeSize()
	data := make([]byte, size)

	// Write header
	copy(data[0:12], stateMagic)
	binary.LittleEndian.PutUint16(data[12:14], stateVersion)
	binary.LittleEndian.PutUint32(data[14:18], m.mem.GetROMCRC32())
	// Data CRC will be written at the end

	offset := stateHeaderSize
	offset = m.serializeMemory(data, offset)
	offset = m.serializeIO(data, offset)
	offset = m.serializeInput(data, offset)
	offset = m.serializeClock(data, offset)

	// Calculate and write data CRC32 (over everything after header)
	dataCRC := crc32.ChecksumIEEE(data[stateHeaderSize:])
	binary.LittleEndian.PutUint32(data[18:22], dataCRC)

	return data, nil
}

// Deserialize restores machine state from a save state byte slice.
func (m *Machine) Deserialize(data []byte) error {
	if err := m.VerifyState(data); err != nil {
		return err
	}

	offset := stateHeaderSize
	offset = m.deserializeMemory(data, offset)
	offset = m.deserializeIO(data, offset)
	offset = m.deserializeInput(data, offset)
	offset = m.deserializeClock(data, offset)

	return nil
}

// VerifyState checks if a save state is valid without loading it.
func (m *Machine) VerifyState(data []byte) error {
	// Check minimum length (must be at least header + expected state data)
	expectedSize := SerializeSize()
	if len(data) < expectedSize {
		return errors.New("save state too short")
	}

	// Check magic bytes
	if string(data[0:12]) != stateMagic {
		return errors.New("invalid save state magic")
	}

	// Check version
	version := binary.LittleEndian.Uint16(data[12:14])
	if version > stateVersion {
		return errors.New("unsupported save state version")
	}

	// Check ROM CRC32
	romCRC := binary.LittleEndian.Uint32(data[14:18])
	if romCRC != m.mem.GetROMCRC32() {
		return errors.New("save state is for a different ROM")
	}

	// Check data CRC32
	expectedCRC := binary.LittleEndian.Uint32(data[18:22])
	actualCRC := crc32.ChecksumIEEE(data[stateHeaderSize:])
	if expectedCRC != actualCRC {
		return errors.New("save state data is corrupted")
	}

	return nil
}

// serializeMemory writes the RAM window to the data buffer
func (m *Machine) serializeMemory(data []byte, offset int) int {
	copy(data[offset:], m.mem.bytes[ramStart:vramEnd])
	return offset + ramWindow
}

// deserializeMemory reads the RAM window from the data buffer
func (m *Machine) deserializeMemory(data []byte, offset int) int {
	copy(m.mem.bytes[ramStart:vramEnd], data[offset:offset+ramWindow])
	return offset + ramWindow
}

// serializeIO writes I/O hardware state to the data buffer
func (m *Machine) serializeIO(data []byte, offset int) int {
	data[offset] = m.io.shifter.amount
	offset++
	binary.LittleEndian.PutUint16(data[offset:], m.io.shifter.data)
	offset += 2
	data[offset] = m.io.sound1.prev
	offset++
	data[offset] = m.io.sound2.prev
	offset++
	data[offset] = uint8(m.io.nextInterrupt)
	offset++
	binary.LittleEndian.PutUint64(data[offset:], uint64(m.io.lastTime))
	offset += 8

	m.io.mu.Lock()
	copy(data[offset:], m.io.snapshot)
	m.io.mu.Unlock()
	offset += VRAMLength

	return offset
}

// deserializeIO reads I/O hardware state from the data buffer
func (m *Machine) deserializeIO(data []byte, offset int) int {
	m.io.shifter.amount = data[offset]
	offset++
	m.io.shifter.data = binary.LittleEndian.Uint16(data[offset:])
	offset += 2
	m.io.sound1.prev = data[offset]
	offset++
	m.io.sound2.prev = data[offset]
	offset++
	m.io.nextInterrupt = ISR(data[offset])
	offset++
	m.io.lastTime = int64(binary.LittleEndian.Uint64(data[offset:]))
	offset += 8

	m.io.mu.Lock()
	copy(m.io.snapshot, data[offset:offset+VRAMLength])
	m.io.mu.Unlock()
	offset += VRAMLength

	return offset
}

// serializeInput writes Input state to the data buffer
func (m *Machine) serializeInput(data []byte, offset int) int {
	data[offset] = m.input.Port0
	offset++
	data[offset] = m.input.Port1
	offset++
	data[offset] = m.input.Port2
	offset++
	return offset
}

// deserializeInput reads Input state from the data buffer
func (m *Machine) deserializeInput(data []byte, offset int) int {
	m.input.Port0 = data[offset]
	offset++
	m.input.Port1 = data[offset]
	offset++
	m.input.Port2 = data[offset]
	offset++
	return offset
}

// serializeClock writes clock counters to the data buffer
func (m *Machine) serializeClock(data []byte, offset int) int {
	binary.LittleEndian.PutUint64(data[offset:], m.cycles)
	offset += 8
	binary.LittleEndian.PutUint64(data[offset:], uint64(m.clock))
	offset += 8
	return offset
}

// deserializeClock reads clock counters from the data buffer
func (m *Machine) deserializeClock(data []byte, offset int) int {
	m.cycles = binary.LittleEndian.Uint64(data[offset:])
	offset += 8
	m.clock = int64(binary.LittleEndian.Uint64(data[offset:]))
	offset += 8
	return offset
}
