package emu

// The cabinet's sounds come from discrete analog circuits, not a sound
// chip. Writing a 1 to a port bit closes the trigger line for that
// circuit; the emulation reports which circuits fired so a backend can
// start the matching sample. Most lines are one-shot and only fire on a
// 0 to 1 transition. The UFO line is level-held: the circuit free-runs
// for as long as the bit stays up, so it re-fires every write until the
// game drops the bit.

// TriggerMask reports audio circuits fired by a port write. Bits 0-7
// are sample slots 0-7 (port 3), bits 8-15 are slots 8-15 (port 5).
// IO.Write returns the written port's triggers in the low 8 bits;
// SampleTriggers shifts them into table position.
type TriggerMask uint16

// Has reports whether the given sample slot fired.
func (t TriggerMask) Has(slot int) bool {
	return t&(1<<slot) != 0
}

// Sample slots. Slots 0-7 map to port 3 bits 0-7, slots 8-15 to
// port 5 bits 0-7. Slot 13 is the cocktail-mode screen flip line,
// which shares the trigger path but drives no sample.
const (
	SampleUFO          = 0 // repeats while the UFO is on screen
	SampleShot         = 1
	SamplePlayerDie    = 2
	SampleInvaderDie   = 3
	SampleExtendedPlay = 4
	SampleAmpEnable    = 5
	SampleFleet1       = 8
	SampleFleet2       = 9
	SampleFleet3       = 10
	SampleFleet4       = 11
	SampleUFOHit       = 12
)

// SampleFiles maps sample slots to canonical resource names. Backends
// load whatever assets they ship under these names; empty slots have no
// sample wired on the real board.
var SampleFiles = [16]string{
	SampleUFO:        "ufo_highpitch.wav",
	SampleShot:       "shoot.wav",
	SamplePlayerDie:  "explosion.wav",
	SampleInvaderDie: "invaderkilled.wav",
	SampleFleet1:     "fastinvader1.wav",
	SampleFleet2:     "fastinvader2.wav",
	SampleFleet3:     "fastinvader3.wav",
	SampleFleet4:     "fastinvader4.wav",
	SampleUFOHit:     "ufo_lowpitch.wav",
}

// SampleTriggers positions a port's trigger mask within the 16-slot
// sample table: port 3 occupies slots 0-7, port 5 slots 8-15. Other
// ports carry no audio lines.
func SampleTriggers(port uint8, mask TriggerMask) TriggerMask {
	switch port {
	case PortSound1:
		return mask & 0xFF
	case PortSound2:
		return (mask & 0xFF) << 8
	}
	return 0
}

// SoundLatch is the previous-byte memory behind one discrete-audio
// port. It turns raw port writes into trigger masks, firing a bit on
// its rising edge. Bits in holdMask instead fire whenever the bit is up
// in either the current or previous write (level-held circuits).
type SoundLatch struct {
	prev     uint8
	holdMask uint8
}

// NewSoundLatch creates a latch with the given level-held bits.
func NewSoundLatch(holdMask uint8) SoundLatch {
	return SoundLatch{holdMask: holdMask}
}

// Triggers records a port write and returns the bits that fired.
func (l *SoundLatch) Triggers(data uint8) uint8 {
	rising := data &^ l.prev
	held := (data | l.prev) & l.holdMask
	l.prev = data
	return rising&^l.holdMask | held
}

// GetPrev returns the previously written byte.
func (l *SoundLatch) GetPrev() uint8 {
	return l.prev
}
