package emu

// ShiftRegister emulates the dedicated 16-bit shift hardware the cabinet
// carries because the 8080 has no multi-bit shift instructions. The game
// feeds it bytes and an offset through output ports and reads the shifted
// result back through an input port.
//
// Register layout after two writes (b1 newest, b0 oldest):
//
//	Bit:    15 ........ 8  7 ........ 0
//	Value:  b1            b0
//
// Reading with offset N returns bits [15-N .. 8-N].
type ShiftRegister struct {
	amount uint8  // result offset, 3 bits
	data   uint16 // two most recent bytes
}

// SetAmount sets the result offset. Only the low 3 bits are wired.
func (s *ShiftRegister) SetAmount(value uint8) {
	s.amount = value & 0x07
}

// Shift loads the next byte. The previous newest byte moves to the low
// half and the oldest byte falls off.
func (s *ShiftRegister) Shift(value uint8) {
	s.data = s.data>>8 | uint16(value)<<8
}

// Result returns the register contents shifted by the current offset.
func (s *ShiftRegister) Result() uint8 {
	return uint8(s.data >> (8 - s.amount))
}

// GetAmount returns the current result offset.
func (s *ShiftRegister) GetAmount() uint8 {
	return s.amount
}

// GetData returns the raw 16-bit register contents.
func (s *ShiftRegister) GetData() uint16 {
	return s.data
}
