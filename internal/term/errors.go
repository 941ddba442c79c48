package term

import "errors"

// Domain errors for terminal operations.
var (
	// ErrClosed indicates an operation on a closed terminal.
	ErrClosed = errors.New("term: terminal is closed")

	// ErrBusy indicates a new message while the previous one still
	// awaits user interaction.
	ErrBusy = errors.New("term: terminal is awaiting user interaction")

	// ErrEmptyInput indicates input submission with an empty line.
	ErrEmptyInput = errors.New("term: input line is empty")

	// ErrWrongState indicates a transition that is not legal in the
	// terminal's current state.
	ErrWrongState = errors.New("term: operation not valid in current state")
)
