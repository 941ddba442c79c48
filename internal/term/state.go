package term

// State identifies what the terminal is currently doing.
type State int

const (
	// StateIdle shows the last message and waits for the next operation.
	StateIdle State = iota
	// StateTyping reveals the current message one character at a time.
	StateTyping
	// StateAwaitingContinue blinks a prompt until the user presses enter.
	StateAwaitingContinue
	// StateAwaitingInput captures a line of input with a blinking cursor.
	StateAwaitingInput
	// StateArtDisplay shows a centered ascii-art block for a fixed time.
	StateArtDisplay
	// StateClosed is terminal: every operation on a closed terminal fails.
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTyping:
		return "typing"
	case StateAwaitingContinue:
		return "awaiting-continue"
	case StateAwaitingInput:
		return "awaiting-input"
	case StateArtDisplay:
		return "art-display"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// pending records which state follows once typing completes.
type pending int

const (
	pendNone pending = iota
	pendContinue
	pendInput
	pendHold
)
