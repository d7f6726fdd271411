package emu

import "testing"

// TestInput_DefaultState tests the power-up port values: everything
// released, always-high bits set
func TestInput_DefaultState(t *testing.T) {
	in := NewInput(DIPSwitches{Ships: 3})

	if in.Port0 != 0x0E {
		t.Errorf("Default Port0: expected 0x0E, got 0x%02X", in.Port0)
	}
	if in.Port1 != 0x08 {
		t.Errorf("Default Port1: expected 0x08, got 0x%02X", in.Port1)
	}
	if in.Port2 != 0x00 {
		t.Errorf("Default Port2: expected 0x00, got 0x%02X", in.Port2)
	}
}

// TestInput_Credit tests the coin deposit switch on port 1 bit 0
func TestInput_Credit(t *testing.T) {
	in := NewInput(DIPSwitches{Ships: 3})

	in.SetCredit(true)
	if in.Port1 != 0x09 {
		t.Errorf("Coin deposited: expected Port1=0x09, got 0x%02X", in.Port1)
	}

	in.SetCredit(false)
	if in.Port1 != 0x08 {
		t.Errorf("Coin released: expected Port1=0x08, got 0x%02X", in.Port1)
	}
}

// TestInput_StartButtons tests the start switches on port 1
func TestInput_StartButtons(t *testing.T) {
	in := NewInput(DIPSwitches{Ships: 3})

	testCases := []struct {
		onePlayer, twoPlayer bool
		expected             uint8
	}{
		{true, false, 0x0C},  // 1P start: bit 2
		{false, true, 0x0A},  // 2P start: bit 1
		{true, true, 0x0E},   // both held
		{false, false, 0x08}, // released
	}

	for i, tc := range testCases {
		in.SetStart(tc.onePlayer, tc.twoPlayer)
		if in.Port1 != tc.expected {
			t.Errorf("Test %d: expected Port1=0x%02X, got 0x%02X", i, tc.expected, in.Port1)
		}
	}
}

// TestInput_P1Controls tests that player 1 controls mirror onto both
// port 0 and port 1
func TestInput_P1Controls(t *testing.T) {
	in := NewInput(DIPSwitches{Ships: 3})

	testCases := []struct {
		fire, left, right bool
		expectedPort0     uint8
		expectedPort1     uint8
	}{
		{true, false, false, 0x1E, 0x18},  // fire: bit 4
		{false, true, false, 0x2E, 0x28},  // left: bit 5
		{false, false, true, 0x4E, 0x48},  // right: bit 6
		{true, true, true, 0x7E, 0x78},    // all held
		{false, false, false, 0x0E, 0x08}, // released
	}

	for i, tc := range testCases {
		in.SetP1(tc.fire, tc.left, tc.right)
		if in.Port0 != tc.expectedPort0 {
			t.Errorf("Test %d: expected Port0=0x%02X, got 0x%02X", i, tc.expectedPort0, in.Port0)
		}
		if in.Port1 != tc.expectedPort1 {
			t.Errorf("Test %d: expected Port1=0x%02X, got 0x%02X", i, tc.expectedPort1, in.Port1)
		}
	}
}

// TestInput_P2Controls tests player 2 controls on port 2
func TestInput_P2Controls(t *testing.T) {
	in := NewInput(DIPSwitches{Ships: 3})

	in.SetP2(true, false, true)
	if in.Port2 != 0x50 {
		t.Errorf("P2 fire+right: expected Port2=0x50, got 0x%02X", in.Port2)
	}

	// P2 controls do not leak onto the player 1 ports
	if in.Port0 != 0x0E || in.Port1 != 0x08 {
		t.Errorf("P1 ports after P2 input: expected 0x0E/0x08, got 0x%02X/0x%02X",
			in.Port0, in.Port1)
	}

	in.SetP2(false, false, false)
	if in.Port2 != 0x00 {
		t.Errorf("P2 released: expected Port2=0x00, got 0x%02X", in.Port2)
	}
}

// TestInput_Tilt tests the tilt switch on port 2 bit 2
func TestInput_Tilt(t *testing.T) {
	in := NewInput(DIPSwitches{Ships: 3})

	in.SetTilt(true)
	if in.Port2 != 0x04 {
		t.Errorf("Tilted: expected Port2=0x04, got 0x%02X", in.Port2)
	}

	in.SetTilt(false)
	if in.Port2 != 0x00 {
		t.Errorf("Settled: expected Port2=0x00, got 0x%02X", in.Port2)
	}
}

// TestInput_DIPShips tests the starting ship count encoding and range
// clamping
func TestInput_DIPShips(t *testing.T) {
	testCases := []struct {
		ships    int
		expected uint8
	}{
		{3, 0x00},
		{4, 0x01},
		{5, 0x02},
		{6, 0x03},
		{0, 0x00}, // below range clamps to 3
		{9, 0x03}, // above range clamps to 6
	}

	for i, tc := range testCases {
		in := NewInput(DIPSwitches{Ships: tc.ships})
		if got := in.Port2 & 0x03; got != tc.expected {
			t.Errorf("Test %d: %d ships: expected bits 0x%02X, got 0x%02X",
				i, tc.ships, tc.expected, got)
		}
	}
}

// TestInput_DIPOptions tests the bonus, coin info and self test switches
func TestInput_DIPOptions(t *testing.T) {
	in := NewInput(DIPSwitches{
		Ships:       4,
		BonusAt1000: true,
		CoinInfoOff: true,
		SelfTest:    true,
	})

	if in.Port2 != 0x89 {
		t.Errorf("Port2: expected 0x89 (ships 4, bonus, coin info), got 0x%02X", in.Port2)
	}
	if in.Port0&0x01 == 0 {
		t.Error("Self test bit should be set on port 0")
	}
}

// TestInput_DIPPreservesControls tests that changing switches mid game
// does not clear held controls
func TestInput_DIPPreservesControls(t *testing.T) {
	in := NewInput(DIPSwitches{Ships: 3})

	in.SetP2(true, false, false) // P2 fire held
	in.SetTilt(true)
	in.SetDIP(DIPSwitches{Ships: 6, BonusAt1000: true})

	// Ships and bonus bits updated, fire and tilt untouched
	if in.Port2 != 0x1F {
		t.Errorf("Port2: expected 0x1F, got 0x%02X", in.Port2)
	}
}

// TestInput_PortAccessor tests assembled port reads
func TestInput_PortAccessor(t *testing.T) {
	in := NewInput(DIPSwitches{Ships: 5})
	in.SetCredit(true)
	in.SetP2(false, true, false)

	if got := in.Port(PortInput0); got != in.Port0 {
		t.Errorf("Port(0): expected 0x%02X, got 0x%02X", in.Port0, got)
	}
	if got := in.Port(PortInput1); got != 0x09 {
		t.Errorf("Port(1): expected 0x09, got 0x%02X", got)
	}
	if got := in.Port(PortInput2); got != 0x22 {
		t.Errorf("Port(2): expected 0x22, got 0x%02X", got)
	}
	if got := in.Port(7); got != 0 {
		t.Errorf("Port(7): expected 0x00, got 0x%02X", got)
	}
}
