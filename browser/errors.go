package browser

import "errors"

// Standard error types that can be used with errors.Is()
var (
	// ErrCommandUnavailable is returned when a command is dispatched while
	// its gate flag is false.
	ErrCommandUnavailable = errors.New("command is not available")

	// ErrNoSelection is returned when an object-addressed command is
	// dispatched with no usable selection.
	ErrNoSelection = errors.New("no resource is selected")

	// ErrSessionClosed is returned when the session closes while a command
	// is in flight.
	ErrSessionClosed = errors.New("session is closed")
)
