package text

import "errors"

// Domain errors for reflow operations.
var (
	// ErrInvalidBudget indicates a column budget below one character.
	ErrInvalidBudget = errors.New("text: column budget must be at least 1")
)
