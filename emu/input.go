package emu

// DIPSwitches holds the cabinet's option switch settings. They are
// read by game code through port 2 (and bit 0 of port 0) and would be
// set on the board before power up.
type DIPSwitches struct {
	Ships       int  // starting ships, 3 to 6
	BonusAt1000 bool // extra ship at 1000 points instead of 1500
	CoinInfoOff bool // hide the coin info line on the demo screen
	SelfTest    bool // request the power up self test
}

// Input holds the cabinet's switch state (directly usable as port
// values). All switches are active high. The backend samples its host
// input devices and mirrors them here; which host key drives which
// switch is the backend's policy.
type Input struct {
	Port0 uint8 // INP0: self test + P1 controls (bits 1-3 wired high)
	Port1 uint8 // INP1: coin, starts, P1 controls (bit 3 wired high)
	Port2 uint8 // INP2: DIP switches, tilt, P2 controls
}

// NewInput creates switch state with everything released and the given
// DIP settings applied.
func NewInput(dips DIPSwitches) *Input {
	i := &Input{
		Port0: 0x0E, // bits 1-3 always read 1
		Port1: 0x08, // bit 3 always reads 1
	}
	i.SetDIP(dips)
	return i
}

// SetCredit updates the coin deposit switch.
// Port 1 bit 0: 1 while a coin is deposited.
func (i *Input) SetCredit(deposited bool) {
	i.Port1 &^= 0x01
	if deposited {
		i.Port1 |= 0x01
	}
}

// SetStart updates the start buttons.
// Port 1 bit 2: 1P start, bit 1: 2P start.
func (i *Input) SetStart(onePlayer, twoPlayer bool) {
	i.Port1 &^= 0x06
	if onePlayer {
		i.Port1 |= 0x04
	}
	if twoPlayer {
		i.Port1 |= 0x02
	}
}

// SetP1 updates Player 1 control state.
// Port 1 bits (mirrored on port 0):
//
//	Bit 4: fire
//	Bit 5: left
//	Bit 6: right
func (i *Input) SetP1(fire, left, right bool) {
	i.Port0 &^= 0x70
	i.Port1 &^= 0x70
	var bits uint8
	if fire {
		bits |= 0x10
	}
	if left {
		bits |= 0x20
	}
	if right {
		bits |= 0x40
	}
	i.Port0 |= bits
	i.Port1 |= bits
}

// SetP2 updates Player 2 control state.
// Port 2 bits:
//
//	Bit 4: fire
//	Bit 5: left
//	Bit 6: right
func (i *Input) SetP2(fire, left, right bool) {
	i.Port2 &^= 0x70
	if fire {
		i.Port2 |= 0x10
	}
	if left {
		i.Port2 |= 0x20
	}
	if right {
		i.Port2 |= 0x40
	}
}

// SetTilt updates the cabinet tilt switch.
// Port 2 bit 2: 1 while tilted.
func (i *Input) SetTilt(tilted bool) {
	i.Port2 &^= 0x04
	if tilted {
		i.Port2 |= 0x04
	}
}

// SetDIP applies option switch settings, preserving the control bits.
// Port 2 bits:
//
//	Bit 0-1: starting ships (00 = 3 ... 11 = 6)
//	Bit 3:   0 = extra ship at 1500, 1 = extra ship at 1000
//	Bit 7:   1 = coin info hidden on demo screen
//
// Port 0 bit 0 carries the self test request.
func (i *Input) SetDIP(dips DIPSwitches) {
	ships := dips.Ships
	if ships < 3 {
		ships = 3
	}
	if ships > 6 {
		ships = 6
	}

	i.Port2 &^= 0x8B
	i.Port2 |= uint8(ships - 3)
	if dips.BonusAt1000 {
		i.Port2 |= 0x08
	}
	if dips.CoinInfoOff {
		i.Port2 |= 0x80
	}

	i.Port0 &^= 0x01
	if dips.SelfTest {
		i.Port0 |= 0x01
	}
}

// Port returns the assembled value of an input port, or 0 for ports
// with no switches attached.
func (i *Input) Port(port uint8) uint8 {
	switch port {
	case PortInput0:
		return i.Port0
	case PortInput1:
		return i.Port1
	case PortInput2:
		return i.Port2
	}
	return 0
}
