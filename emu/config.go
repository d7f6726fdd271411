package emu

import (
	"encoding/json"
	"fmt"
)

// Config holds machine configuration: the cabinet's DIP switch
// settings plus video options. Start from DefaultConfig; the zero
// value fails validation.
type Config struct {
	Ships       int  `json:"ships"`       // starting ships, 3 to 6
	BonusAt1000 bool `json:"bonusAt1000"` // extra ship at 1000 points instead of 1500
	CoinInfoOff bool `json:"coinInfoOff"` // hide the coin info line on the demo screen
	SelfTest    bool `json:"selfTest"`    // request the power up self test

	Foreground uint8 `json:"foreground"` // blit byte for set pixels
	Background uint8 `json:"background"` // blit byte for clear pixels
}

// DefaultConfig returns the production cabinet settings: three ships,
// extra ship at 1500, coin info shown, white on black video.
func DefaultConfig() Config {
	return Config{
		Ships:      3,
		Foreground: 0xFF,
	}
}

// ParseConfig decodes a JSON machine configuration. Fields absent from
// the document keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parsing machine config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that the configuration is realizable on the board.
func (c Config) Validate() error {
	if c.Ships < 3 || c.Ships > 6 {
		return fmt.Errorf("ships must be 3 to 6, got %d", c.Ships)
	}
	return nil
}

// DIPSwitches returns the option switch settings the configuration
// selects.
func (c Config) DIPSwitches() DIPSwitches {
	return DIPSwitches{
		Ships:       c.Ships,
		BonusAt1000: c.BonusAt1000,
		CoinInfoOff: c.CoinInfoOff,
		SelfTest:    c.SelfTest,
	}
}
