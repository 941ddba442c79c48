package script

import "errors"

// Validation errors for scripts.
var (
	// ErrNoSteps indicates an empty script.
	ErrNoSteps = errors.New("no steps")

	// ErrBadStep indicates a step with zero or multiple actions.
	ErrBadStep = errors.New("step must carry exactly one action")

	// ErrBadDuration indicates a timed step without a positive time.
	ErrBadDuration = errors.New("duration must be positive")

	// ErrUnknownArt indicates an art name missing from the registry.
	ErrUnknownArt = errors.New("unknown art")

	// ErrUnknownColor indicates an unresolvable color name.
	ErrUnknownColor = errors.New("unknown color")

	// ErrBadFont indicates a font step with no positive size.
	ErrBadFont = errors.New("font step needs a positive size")
)
