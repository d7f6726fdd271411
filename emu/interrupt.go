package emu

// ISR identifies the interrupt the board raises at a beam position.
// The display hardware fires twice per frame: once when the beam
// crosses mid screen and once at the start of vertical blank. The game
// redraws the half of the playfield the beam has just left.
type ISR uint8

const (
	ISRNone ISR = iota // nothing due
	ISRMid             // beam at mid screen, vectors through RST 1
	ISREnd             // vertical blank, vectors through RST 2
	ISRQuit            // shutdown requested
)

func (i ISR) String() string {
	switch i {
	case ISRNone:
		return "None"
	case ISRMid:
		return "Mid"
	case ISREnd:
		return "End"
	case ISRQuit:
		return "Quit"
	}
	return "Unknown"
}

// ServiceInterrupts advances the interrupt generator. The caller runs
// it periodically with its current run time in nanoseconds and total
// cycle count; the generator only reacts when the time has moved, so
// calling it more often than the interrupt cadence is harmless. A
// return of ISRMid or ISREnd is the interrupt now due; at ISREnd the
// video snapshot is refreshed for renderers. Once a quit has been
// requested every call returns ISRQuit.
//
// The cycle count is informational. Pacing is the caller's job:
// Machine calls at the board's 120Hz interrupt cadence.
func (i *IO) ServiceInterrupts(currTime int64, cycles uint64) ISR {
	if i.quit.Load() {
		return ISRQuit
	}
	if currTime == i.lastTime {
		return ISRNone
	}
	i.lastTime = currTime

	isr := i.nextInterrupt
	if isr == ISRMid {
		i.nextInterrupt = ISREnd
	} else {
		i.nextInterrupt = ISRMid
		// Vertical blank: capture the frame the game just finished.
		i.mu.Lock()
		i.video.VideoSnapshot(i.snapshot)
		i.mu.Unlock()
	}
	return isr
}

// RequestQuit signals shutdown. The request is one-shot and cannot be
// withdrawn; ServiceInterrupts reports ISRQuit from the next call on.
// Safe to call from any goroutine.
func (i *IO) RequestQuit() {
	i.quit.Store(true)
}

// QuitRequested reports whether shutdown has been requested.
func (i *IO) QuitRequested() bool {
	return i.quit.Load()
}
