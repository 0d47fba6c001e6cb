package terminal

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("terminal: aborted")
	// ErrNotBound is returned by Run when no controller registered a handler.
	ErrNotBound = errors.New("terminal: no submit handler bound")
)
